package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/codycoggins/istari/internal/model"
)

func (c *Client) ListDigests(ctx context.Context, limit int) ([]model.Digest, error) {
	var out struct {
		Digests []model.Digest `json:"digests"`
	}
	if err := c.do(ctx, http.MethodGet, "/digests/?limit="+strconv.Itoa(limit), nil, &out); err != nil {
		return nil, err
	}
	return out.Digests, nil
}

func (c *Client) ReviewDigest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/digests/%d/review", id), nil, nil)
}
