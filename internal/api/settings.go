package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) GetSettings(ctx context.Context) (map[string]string, error) {
	var out struct {
		Settings map[string]string `json:"settings"`
	}
	if err := c.do(ctx, http.MethodGet, "/settings/", nil, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

func (c *Client) UpdateSetting(ctx context.Context, key, value string) error {
	body := struct {
		Value string `json:"value"`
	}{Value: value}
	return c.do(ctx, http.MethodPut, "/settings/"+url.PathEscape(key), body, nil)
}
