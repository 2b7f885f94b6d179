package model

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn. User messages get a client-generated id on
// send; assistant messages carry the server-assigned id. Immutable once
// appended, ordered by append order, in-memory for the session only.
type Message struct {
	ID            string    `json:"id"`
	Role          Role      `json:"role"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	TodoCreated   bool      `json:"todo_created,omitempty"`
	MemoryCreated bool      `json:"memory_created,omitempty"`
}
