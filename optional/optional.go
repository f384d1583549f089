package optional

import "fmt"

// Optional holds either a value (Some) or nothing (None).
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }
func None[T any]() Optional[T]    { return Optional[T]{} }

// Get returns the held value, or the zero value of T for None.
func (o Optional[T]) Get() T       { return o.value }
func (o Optional[T]) IsNone() bool { return !o.ok }
func (o Optional[T]) IsSome() bool { return o.ok }

func (o Optional[T]) Unpack() (T, bool) { return o.value, o.ok }

func (o Optional[T]) OrElse(v T) T {
	if o.ok {
		return o.value
	}
	return v
}

// Some stores the held value into receiver and reports whether there was one.
func (o Optional[T]) Some(receiver *T) bool {
	if o.ok {
		*receiver = o.value
	}
	return o.ok
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
