// Package stack provides the LIFO behind the iterative document walk.
package stack

import "iter"

// Stack is a last-in first-out slice of T. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// New returns a stack with room for capacity items before it grows.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push adds items in order, leaving the last one on top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// PushReverse adds items so the first one is on top; popping then yields
// them in their original order.
func (s *Stack[T]) PushReverse(items ...T) {
	for i := len(items) - 1; i >= 0; i-- {
		s.items = append(s.items, items[i])
	}
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}

	top := s.items[n-1]
	s.items[n-1] = zero // release the reference for the collector
	s.items = s.items[:n-1]
	return top, true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Drain pops items until the stack is empty. Items pushed while ranging are
// popped too, which is what a depth-first walk needs.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := s.Pop()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
