package testutil

import (
	"sync"

	"imgdrop/internal/app/status"
)

// StatusRecorder keeps every message shown, in order.
type StatusRecorder struct {
	mu       sync.Mutex
	messages []status.Message
}

func (r *StatusRecorder) Show(msg status.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *StatusRecorder) Messages() []status.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]status.Message(nil), r.messages...)
}

func (r *StatusRecorder) ByKind(kind status.Kind) []status.Message {
	var out []status.Message
	for _, m := range r.Messages() {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}
