package utils

import (
	"github.com/sasha-s/go-deadlock"
)

// Topic fans values out to every current subscriber. Publish blocks until
// each subscriber has room for the value.
type Topic[T any] struct {
	subscribers map[chan T]struct{}
	closed      bool
	mutex       deadlock.Mutex
}

func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{
		subscribers: make(map[chan T]struct{}),
	}
}

func (t *Topic[T]) Publish(value T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.closed {
		return
	}

	for subscriber := range t.subscribers {
		subscriber <- value
	}
}

// Close ends every subscription. Values published afterwards are dropped.
func (t *Topic[T]) Close() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.closed {
		return
	}

	t.closed = true
	for subscriber := range t.subscribers {
		close(subscriber)
		delete(t.subscribers, subscriber)
	}
}

type Subscriber[T any] struct {
	channel chan T
	topic   *Topic[T]
}

// Subscribe registers a subscriber whose channel holds up to size values.
func (t *Topic[T]) Subscribe(size int) *Subscriber[T] {
	channel := make(chan T, size)
	t.mutex.Lock()
	if t.closed {
		close(channel)
	} else {
		t.subscribers[channel] = struct{}{}
	}
	t.mutex.Unlock()

	return &Subscriber[T]{channel, t}
}

// Recv is closed once the topic is.
func (t *Subscriber[T]) Recv() <-chan T {
	return t.channel
}

func (t *Subscriber[T]) Done() {
	topic := t.topic
	topic.mutex.Lock()
	if _, ok := topic.subscribers[t.channel]; ok {
		delete(topic.subscribers, t.channel)
		close(t.channel)
	}
	topic.mutex.Unlock()
}
