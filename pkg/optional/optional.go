// Package optional contains an explicit "present or absent" value wrapper.
package optional

// Optional holds a value of type T or nothing. The zero value is None.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps the given value.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an empty Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// IsSome reports whether the value is present.
func (o Optional[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Optional[T]) IsNone() bool { return !o.ok }

// Get returns the value and a boolean flag indicating whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// OrElse returns the value if present, otherwise the fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}
