package model

import (
	"encoding/json"
	"time"
)

// Digest is a processed batch of externally-sourced information (gmail,
// calendar, staleness sweeps) awaiting review. reviewed is monotonic:
// once true no client operation reverts it.
type Digest struct {
	ID             int64           `json:"id"`
	Source         string          `json:"source"`
	ContentSummary string          `json:"content_summary"`
	ItemsJSON      json.RawMessage `json:"items_json,omitempty"`
	Reviewed       bool            `json:"reviewed"`
	ReviewedAt     *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
