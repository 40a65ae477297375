package transport

import (
	"context"
	"errors"
	"sync/atomic"
)

const (
	taskPending int32 = iota
	taskDelivered
	taskCanceled
)

// Task is the handle of one in-flight asynchronous call. Once Cancel wins the
// race against completion, the completion callback only ever sees ErrCanceled.
type Task struct {
	ctx    context.Context
	cancel context.CancelFunc
	state  atomic.Int32
	done   chan struct{}
}

func newTask(parent context.Context) *Task {
	ctx, cancel := context.WithCancel(parent)
	return &Task{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Cancel aborts the call. It is a no-op once the result has been delivered.
func (t *Task) Cancel() {
	t.state.CompareAndSwap(taskPending, taskCanceled)
	t.cancel()
}

// Canceled reports whether the task was cancelled before its result was delivered.
func (t *Task) Canceled() bool {
	return t.state.Load() == taskCanceled
}

// Done is closed after the completion callback has returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the completion callback has returned.
func (t *Task) Wait() {
	<-t.done
}

// complete commits the task to delivered unless it was cancelled first and
// runs deliver exactly once.
func (t *Task) complete(deliver func(canceled bool)) {
	defer close(t.done)
	defer t.cancel()

	if errors.Is(t.ctx.Err(), context.Canceled) {
		t.state.CompareAndSwap(taskPending, taskCanceled)
	}
	canceled := !t.state.CompareAndSwap(taskPending, taskDelivered)

	deliver(canceled)
}
