package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/codycoggins/istari/internal/api"
	"github.com/codycoggins/istari/internal/model"
)

type Digests struct {
	*Collection[model.Digest]
	api *api.Client
}

func NewDigests(client *api.Client, limit int, logger *zap.Logger) *Digests {
	fetch := func(ctx context.Context) ([]model.Digest, error) {
		return client.ListDigests(ctx, limit)
	}
	return &Digests{
		Collection: NewCollection("digests", fetch, logger),
		api:        client,
	}
}

func (s *Digests) MarkReviewed(ctx context.Context, id int64) error {
	if err := s.api.ReviewDigest(ctx, id); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}
