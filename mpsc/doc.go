// Package mpsc provides a mutex-guarded FIFO queue for any number of
// concurrent producers and a single logical consumer, together with thin
// sender/receiver handles that share one queue.
//
// Every operation is synchronous and completes in bounded time: Dequeue
// reports the absence of data through an outcome carrying EmptyQueueError
// instead of blocking until data arrives. The lock totally orders all
// enqueue and dequeue operations, so the consumer observes some interleaving
// of the producers' insertions and always receives the oldest not-yet-removed
// element. No relative order between different producers is promised beyond
// that serialisation point.
//
// There is no capacity limit, no close/shutdown lifecycle and no multi-
// consumer fan-out; the only state the queue has is "has pending items" or
// "empty".
package mpsc
