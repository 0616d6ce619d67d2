/*
Package store holds application state as a series of immutable snapshots.

A Store owns a state value of type S. The state is never modified in place:
actions of type A are applied by a pure reducer function, which returns the
next state. A single goroutine per store applies the actions in the order in
which they are dispatched, so reducers never run concurrently. Every new
state is broadcast to the subscribers of the store.

	st := store.New(ctx, collection.PanelState{}, collection.Reduce, ordtree.Tree[collection.PanelEntry].Same)
	ch, _ := st.Subscribe(ctx, 8)
	st.Dispatch(ctx, collection.LoadFiles{Files: files})
	state := <-ch

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// ErrClosed is returned for operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Reducer computes the state following state after applying action. It must
// not modify state.
type Reducer[S, A any] func(state S, action A) S

type envelope[S, A any] struct {
	action A
	done   chan S
}

// Store is a container for state snapshots. Create it with New.
type Store[S, A any] struct {
	reduce  Reducer[S, A]
	same    func(a, b S) bool
	actions chan envelope[S, A]
	cast    *caster.Caster
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once
	mu      sync.RWMutex // guards state
	state   S
}

// New creates a store with an initial state and starts its coordinating
// goroutine. The store is closed when ctx is cancelled or Close is called.
//
// same reports whether two states are the same snapshot; states for which it
// reports true are not published to subscribers. If same is nil, every state
// produced by reduce is published.
func New[S, A any](ctx context.Context, initial S, reduce Reducer[S, A], same func(a, b S) bool) *Store[S, A] {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &Store[S, A]{
		reduce:  reduce,
		same:    same,
		actions: make(chan envelope[S, A]),
		cast:    caster.New(nil),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
		state:   initial,
	}
	go s.loop(ctx)
	return s
}

func (s *Store[S, A]) loop(ctx context.Context) {
	defer close(s.stopped)
	defer s.cast.Close()
	tracer().Infof("store: started")
	for {
		select {
		case <-ctx.Done():
			tracer().Infof("store: context done: %v", ctx.Err())
			s.once.Do(func() { close(s.quit) })
			return
		case <-s.quit:
			tracer().Infof("store: closed")
			return
		case env := <-s.actions:
			prev := s.State()
			next := s.reduce(prev, env.action)
			if s.same != nil && s.same(prev, next) {
				tracer().Debugf("store: action %T did not change state", env.action)
				env.done <- next
				continue
			}
			s.mu.Lock()
			s.state = next
			s.mu.Unlock()
			s.cast.Pub(next)
			env.done <- next
		}
	}
}

// State returns the current state.
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch hands action to the store and waits until it has been applied.
// It returns the resulting state.
func (s *Store[S, A]) Dispatch(ctx context.Context, action A) (S, error) {
	var zero S
	if ctx == nil {
		ctx = context.Background()
	}
	env := envelope[S, A]{action: action, done: make(chan S, 1)}
	select {
	case <-s.quit:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	case s.actions <- env:
	}
	select {
	case next := <-env.done:
		return next, nil
	case <-s.stopped:
		// the loop may have finished the action before stopping
		select {
		case next := <-env.done:
			return next, nil
		default:
			return zero, ErrClosed
		}
	}
}

// Subscribe registers a subscriber for new states. The returned channel
// receives every state published after the call and is closed when ctx is
// done or the store is closed. capacity is the channel's buffer size.
//
// Subscribers have to keep up with the store: publishing a state waits for
// every subscriber to accept it.
func (s *Store[S, A]) Subscribe(ctx context.Context, capacity uint) (<-chan S, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-s.quit:
		return nil, ErrClosed
	default:
	}
	sub, ok := s.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan S, capacity)
	go func() {
		defer close(out)
		for msg := range sub {
			state, ok := msg.(S)
			if !ok {
				continue
			}
			select {
			case out <- state:
			case <-ctx.Done(): // caster unsubscribes sub by itself
				return
			}
		}
	}()
	return out, nil
}

// Close stops the store. Pending and future dispatches fail with ErrClosed,
// subscriber channels are closed.
func (s *Store[S, A]) Close() {
	s.once.Do(func() { close(s.quit) })
	<-s.stopped
}
