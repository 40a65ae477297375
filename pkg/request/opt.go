package request

// Opt is a call argument that is either present or absent. The zero value is
// absent, so optional fields of a params struct can simply be left out.
type Opt[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

// FromPtr turns a nil pointer into an absent value.
func FromPtr[T any](v *T) Opt[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Opt[T]) IsSet() bool {
	return o.ok
}

// Or returns the value when present and fallback otherwise.
func (o Opt[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
