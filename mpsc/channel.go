package mpsc

import (
	outcome "github.com/mlenders/outcomeq"
)

// Sender is the producer handle of a channel pair. A Sender may be shared by
// any number of goroutines; every Send feeds the same underlying queue as a
// single, indivisible insertion.
type Sender[T any] struct {
	queue *Queue[T]
}

// Receiver is the consumer handle of a channel pair. It is intended for a
// single logical consumer.
type Receiver[T any] struct {
	queue *Queue[T]
}

// NewChannel returns a connected sender/receiver pair sharing one queue.
func NewChannel[T any](opts ...Option) (*Sender[T], *Receiver[T]) {
	q := NewQueue[T](opts...)
	return &Sender[T]{queue: q}, &Receiver[T]{queue: q}
}

// Send hands value to the shared queue. It cannot fail and never blocks
// beyond the queue's lock hand-off.
func (s *Sender[T]) Send(value T) {
	s.queue.Enqueue(value)
}

// TryReceive returns the oldest value sent and true, or the zero value and
// false when no data is available yet.
func (r *Receiver[T]) TryReceive() (zero T, _ bool) {
	res := r.queue.Dequeue()
	if res.IsFailure() {
		return zero, false
	}
	return res.Value(), true
}

// ReceiveOutcome exposes the untranslated dequeue outcome for callers that
// want to compose it with the outcome combinators.
func (r *Receiver[T]) ReceiveOutcome() *outcome.Outcome[T, EmptyQueueError] {
	return r.queue.Dequeue()
}
