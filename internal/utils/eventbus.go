package utils

import (
	"sync"
)

const EventUploadCompleted = "upload.completed"

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Handler func(event Event)

// EventBus delivers events synchronously to the handlers subscribed to the
// event name, in subscription order.
type EventBus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]Handler),
	}
}

func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	handlers := append([]Handler(nil), eb.subscribers[event]...)
	eb.mu.RUnlock()

	e := Event{Event: event, Data: data}
	for _, h := range handlers {
		h(e)
	}
}

func (eb *EventBus) Subscribe(event string, handler Handler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers[event] = append(eb.subscribers[event], handler)
}

func (eb *EventBus) HasSubscribers(event string) bool {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers[event]) > 0
}
