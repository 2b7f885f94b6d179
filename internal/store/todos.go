package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/codycoggins/istari/internal/api"
	"github.com/codycoggins/istari/internal/model"
)

type Todos struct {
	*Collection[model.Todo]
	api *api.Client
}

func NewTodos(client *api.Client, logger *zap.Logger) *Todos {
	return &Todos{
		Collection: NewCollection("todos", client.ListTodos, logger),
		api:        client,
	}
}

// Visible applies the completed-before-today display filter.
func (s *Todos) Visible(now time.Time) []model.Todo {
	return model.VisibleTodos(s.Items(), now)
}

func (s *Todos) Complete(ctx context.Context, id int64) error {
	if err := s.api.CompleteTodo(ctx, id); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

func (s *Todos) Reopen(ctx context.Context, id int64) error {
	if err := s.api.ReopenTodo(ctx, id); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

func (s *Todos) Update(ctx context.Context, id int64, update api.TodoUpdate) error {
	if err := s.api.UpdateTodo(ctx, id, update); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}
