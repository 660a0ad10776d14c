package fifo

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked first-in-first-out sequence. The zero value is an
// empty list ready for use. List performs no locking of its own; callers
// serialise access.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// PushBack appends value at the tail.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.len == 0 {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// PopFront removes and returns the oldest value. The removed node is fully
// unlinked and cleared so the list retains no alias to the handed-over value.
func (l *List[T]) PopFront() (zero T, _ bool) {
	if l.len == 0 {
		return zero, false
	}

	current := l.head
	l.head = current.next
	if l.head == nil {
		l.tail = nil
	}
	l.len--

	value := current.value
	current.value = zero
	current.next = nil

	return value, true
}

// Len returns the number of stored values.
func (l *List[T]) Len() int {
	return l.len
}
