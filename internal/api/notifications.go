package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/codycoggins/istari/internal/model"
)

func (c *Client) ListNotifications(ctx context.Context, limit int, unreadOnly bool) ([]model.Notification, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if unreadOnly {
		params.Set("unread_only", "true")
	}
	var out struct {
		Notifications []model.Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/notifications/?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/notifications/unread/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

// MarkAllRead returns how many notifications the server flipped.
func (c *Client) MarkAllRead(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodPost, "/notifications/read-all", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
