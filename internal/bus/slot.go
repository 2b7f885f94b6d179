// Package bus carries the single cross-panel hook: the todo panel asks
// the assistant a question through a function only the chat wiring can
// supply. One slot, last registration wins, no queueing.
package bus

import "sync"

type AskSlot struct {
	mu sync.Mutex
	fn func(message string)
}

// Register stores the callback, replacing any previous one. Passing nil
// clears the slot.
func (s *AskSlot) Register(fn func(message string)) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

// Invoke calls the registered function with message. Invoking an empty
// slot is a safe no-op; the return value tells the caller whether
// anything happened.
func (s *AskSlot) Invoke(message string) bool {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(message)
	return true
}

func (s *AskSlot) Registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}
