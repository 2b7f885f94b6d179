// Package config resolves runtime configuration from flags, env, and an
// optional config file via viper.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIBase string
	WSURL   string

	TodoPollInterval         time.Duration
	NotificationPollInterval time.Duration
	DigestPollInterval       time.Duration

	NotificationLimit int
	DigestLimit       int

	ReconnectBase time.Duration
	ReconnectCap  time.Duration

	DesktopNotifications bool
	LogLevel             string
	LogFile              string
}

func Default() Config {
	return Config{
		APIBase:                  "http://localhost:8000/api",
		TodoPollInterval:         15 * time.Second,
		NotificationPollInterval: 60 * time.Second,
		DigestPollInterval:       60 * time.Second,
		NotificationLimit:        20,
		DigestLimit:              10,
		ReconnectBase:            time.Second,
		ReconnectCap:             30 * time.Second,
		DesktopNotifications:     false,
		LogLevel:                 "info",
		LogFile:                  "istari.log",
	}
}

func SetDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("api_base", def.APIBase)
	v.SetDefault("ws_url", "")
	v.SetDefault("poll.todos", def.TodoPollInterval)
	v.SetDefault("poll.notifications", def.NotificationPollInterval)
	v.SetDefault("poll.digests", def.DigestPollInterval)
	v.SetDefault("limits.notifications", def.NotificationLimit)
	v.SetDefault("limits.digests", def.DigestLimit)
	v.SetDefault("reconnect.base", def.ReconnectBase)
	v.SetDefault("reconnect.cap", def.ReconnectCap)
	v.SetDefault("desktop_notifications", def.DesktopNotifications)
	v.SetDefault("logging.level", def.LogLevel)
	v.SetDefault("logging.file", def.LogFile)
}

func FromViper(v *viper.Viper) Config {
	cfg := Config{
		APIBase:                  strings.TrimRight(v.GetString("api_base"), "/"),
		WSURL:                    v.GetString("ws_url"),
		TodoPollInterval:         v.GetDuration("poll.todos"),
		NotificationPollInterval: v.GetDuration("poll.notifications"),
		DigestPollInterval:       v.GetDuration("poll.digests"),
		NotificationLimit:        v.GetInt("limits.notifications"),
		DigestLimit:              v.GetInt("limits.digests"),
		ReconnectBase:            v.GetDuration("reconnect.base"),
		ReconnectCap:             v.GetDuration("reconnect.cap"),
		DesktopNotifications:     v.GetBool("desktop_notifications"),
		LogLevel:                 v.GetString("logging.level"),
		LogFile:                  v.GetString("logging.file"),
	}
	if cfg.WSURL == "" {
		cfg.WSURL = DeriveWSURL(cfg.APIBase)
	}
	return cfg
}

// DeriveWSURL maps the API base to the chat socket endpoint, mirroring
// the transport security of the base: https becomes wss, http becomes ws.
func DeriveWSURL(apiBase string) string {
	base := strings.TrimRight(apiBase, "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + "/chat/ws"
}
