package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_PublishDeliversInOrder(t *testing.T) {
	bus := NewEventBus()

	var got []string
	bus.Subscribe(EventUploadCompleted, func(e Event) {
		got = append(got, "first:"+e.Data.(string))
	})
	bus.Subscribe(EventUploadCompleted, func(e Event) {
		got = append(got, "second:"+e.Data.(string))
	})
	bus.Subscribe("other", func(e Event) {
		got = append(got, "other")
	})

	bus.Publish(EventUploadCompleted, "cat.png")

	assert.Equal(t, []string{"first:cat.png", "second:cat.png"}, got)
	assert.True(t, bus.HasSubscribers("other"))
	assert.False(t, bus.HasSubscribers("missing"))
}

func TestEventBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	assert.NotPanics(t, func() {
		bus.Publish(EventUploadCompleted, nil)
	})
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Op: "upload", StatusCode: 403}
	assert.Equal(t, "upload: status 403 Forbidden", err.Error())

	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(301))
	assert.False(t, IsSuccess(500))
}
