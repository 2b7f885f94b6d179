package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.TodoPollInterval != 15*time.Second {
		t.Fatalf("unexpected todo poll interval: %v", cfg.TodoPollInterval)
	}
	if cfg.NotificationPollInterval != 60*time.Second || cfg.DigestPollInterval != 60*time.Second {
		t.Fatalf("unexpected poll intervals: %+v", cfg)
	}
	if cfg.ReconnectBase != time.Second || cfg.ReconnectCap != 30*time.Second {
		t.Fatalf("unexpected reconnect schedule: %+v", cfg)
	}
}

func TestFromViperDerivesWSURL(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("api_base", "https://istari.example.com/api/")

	cfg := FromViper(v)
	if cfg.APIBase != "https://istari.example.com/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIBase)
	}
	if cfg.WSURL != "wss://istari.example.com/api/chat/ws" {
		t.Fatalf("unexpected derived ws url: %q", cfg.WSURL)
	}
}

func TestFromViperExplicitWSURLWins(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("ws_url", "ws://other-host:9000/chat/ws")

	cfg := FromViper(v)
	if cfg.WSURL != "ws://other-host:9000/chat/ws" {
		t.Fatalf("explicit ws url must win, got %q", cfg.WSURL)
	}
}

func TestDeriveWSURL(t *testing.T) {
	cases := map[string]string{
		"http://localhost:8000/api": "ws://localhost:8000/api/chat/ws",
		"https://host/api":          "wss://host/api/chat/ws",
	}
	for in, want := range cases {
		if got := DeriveWSURL(in); got != want {
			t.Fatalf("DeriveWSURL(%q) = %q, want %q", in, got, want)
		}
	}
}
