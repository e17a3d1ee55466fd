// Package task provides a minimal future for fire-and-continue background work.
package task

import (
	"context"
	"sync"
)

// Task tracks a unit of background work that cannot be cancelled once started.
type Task struct {
	done chan struct{}
	once sync.Once
	err  error
}

// Go runs fn in a new goroutine and returns a Task that completes with its error.
func Go(fn func() error) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		t.finish(fn())
	}()
	return t
}

// Completed returns a Task that has already finished with err.
func Completed(err error) *Task {
	t := &Task{done: make(chan struct{})}
	t.finish(err)
	return t
}

func (t *Task) finish(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Done is closed when the work has finished. A nil Task counts as finished without error.
func (t *Task) Done() <-chan struct{} {
	if t == nil {
		return closed
	}
	return t.done
}

// Wait blocks until the work finishes or ctx is done. Giving up on the wait does not stop the work.
func (t *Task) Wait(ctx context.Context) error {
	if t == nil {
		return nil
	}
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the result of the work, or nil while it is still running.
func (t *Task) Err() error {
	if t == nil {
		return nil
	}
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}
