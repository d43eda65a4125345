package provider

import (
	"context"
	"sync"
)

// stream fans values out to subscribers. Each subscriber holds at most one
// pending value; a newer value replaces an unread one.
type stream[T any] struct {
	mu     sync.Mutex
	latest *T
	subs   map[int]chan T
	nextID int
}

func newStream[T any]() *stream[T] {
	return &stream[T]{subs: make(map[int]chan T)}
}

func (s *stream[T]) subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	if s.latest != nil {
		ch <- *s.latest
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *stream[T]) publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = &v
	for _, ch := range s.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}

func (s *stream[T]) subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
