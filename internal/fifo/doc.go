// Package fifo provides the unlocked linked-list storage backing the mpsc
// queue. It only maintains the sequence; mutual exclusion is the caller's
// responsibility, which keeps the critical sections in the queue as small as
// the mutation itself.
package fifo
