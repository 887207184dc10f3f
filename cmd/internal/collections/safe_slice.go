package collections

import (
	"errors"
	"sync"
)

// SafeSlice is a slice that can be appended to by many goroutines.
type SafeSlice[T any] struct {
	sync.Mutex
	slice []T
}

func (ss *SafeSlice[T]) GetCopy() []T {
	ss.Lock()
	defer ss.Unlock()
	cpy := make([]T, len(ss.slice))
	copy(cpy, ss.slice)
	return cpy
}

func (ss *SafeSlice[T]) Append(val ...T) {
	ss.Lock()
	defer ss.Unlock()
	ss.slice = append(ss.slice, val...)
}

func (ss *SafeSlice[T]) Len() int {
	ss.Lock()
	defer ss.Unlock()
	return len(ss.slice)
}

// SafeErrorSlice collects the errors of concurrent renders so they can all be reported together.
type SafeErrorSlice struct {
	SafeSlice[error]
}

// Join returns every collected error joined into one, or nil if there were none.
func (ss *SafeErrorSlice) Join() error {
	return errors.Join(ss.GetCopy()...)
}
