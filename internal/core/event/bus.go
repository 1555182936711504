package event

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Bus is a double-buffered, ordered event queue. Events emitted during tick N
// (by the host, by handlers, or by loader goroutines) are delivered during
// tick N+1, oldest-first, regardless of type. SwapBuffers is called once at
// tick start by the input system.
type Bus struct {
	mu       sync.Mutex // protects back and handlers; Emit may come from any goroutine
	front    []any
	back     []any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]any, 0, 16),
		back:     make([]any, 0, 16),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event into the back buffer (delivered next tick).
func Emit[T any](b *Bus, event T) {
	b.mu.Lock()
	b.back = append(b.back, event)
	b.mu.Unlock()
}

// Subscribe registers a typed handler for events of type T. Handlers for the
// same type run in registration order.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// SwapBuffers rotates back→front and clears the new back buffer.
func (b *Bus) SwapBuffers() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.front)
	b.front, b.back = b.back, b.front[:0]
}

// Pending returns the number of events waiting for the next swap.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.back)
}

// DispatchAll delivers all front-buffer events in emission order. A panicking
// handler is recovered and reported in the returned error; remaining events
// are still delivered.
func (b *Bus) DispatchAll() error {
	var errs []error
	for _, ev := range b.front {
		b.mu.Lock()
		handlers := b.handlers[reflect.TypeOf(ev)]
		b.mu.Unlock()
		for _, h := range handlers {
			if err := safeCall(h, ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func safeCall(h func(any), ev any) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler panic for %T: %v", ev, rec)
		}
	}()
	h(ev)
	return nil
}
