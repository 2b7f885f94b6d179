package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/codycoggins/istari/internal/api"
)

// Setting keys the client reads.
const (
	SettingFocusMode       = "focus_mode"
	SettingQuietHoursStart = "quiet_hours_start"
	SettingQuietHoursEnd   = "quiet_hours_end"
)

// Settings is the odd store out: fetched once, never polled, and a
// successful write updates just that key locally instead of triggering
// a full refresh. Settings have no derived fields and the write echoes
// the canonical value, so the round trip buys nothing.
type Settings struct {
	mu      sync.Mutex
	api     *api.Client
	logger  *zap.Logger
	values  map[string]string
	loading bool
}

func NewSettings(client *api.Client, logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Settings{
		api:     client,
		logger:  logger,
		values:  make(map[string]string),
		loading: true,
	}
}

// Load fetches all settings. Like collection refreshes it swallows
// failures, keeping whatever was loaded before.
func (s *Settings) Load(ctx context.Context) {
	values, err := s.api.GetSettings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.logger.Debug("settings load failed", zap.Error(err))
		return
	}
	s.values = values
}

func (s *Settings) Update(ctx context.Context, key, value string) error {
	if err := s.api.UpdateSetting(ctx, key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Settings) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *Settings) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *Settings) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Settings) FocusMode() bool {
	return s.Get(SettingFocusMode) == "true"
}
