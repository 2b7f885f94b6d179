package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/codycoggins/istari/internal/api"
	"github.com/codycoggins/istari/internal/model"
)

type Notifications struct {
	*Collection[model.Notification]
	api *api.Client
}

func NewNotifications(client *api.Client, limit int, logger *zap.Logger) *Notifications {
	fetch := func(ctx context.Context) ([]model.Notification, error) {
		return client.ListNotifications(ctx, limit, false)
	}
	return &Notifications{
		Collection: NewCollection("notifications", fetch, logger),
		api:        client,
	}
}

// UnreadCount asks the server for the badge value without pulling the
// whole list.
func (s *Notifications) UnreadCount(ctx context.Context) (int, error) {
	return s.api.UnreadCount(ctx)
}

func (s *Notifications) Unread() int {
	return model.CountUnread(s.Items())
}

func (s *Notifications) MarkRead(ctx context.Context, id int64) error {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

func (s *Notifications) MarkAllRead(ctx context.Context) (int, error) {
	count, err := s.api.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	s.Refresh(ctx)
	return count, nil
}
