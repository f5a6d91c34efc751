// Package opt carries the Present/Absent distinction for stored cell
// values. A sparse store must tell "never written" apart from "written as
// nothing"; encoding both as a zero value would collapse the two, so reads
// and writes traffic in Val wrappers instead of sentinels.
package opt

type Val[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Val[T] {
	return Val[T]{value: v, present: true}
}

// None is the absent value. Writing it to a store deletes the entry,
// reading an unset cell returns it.
func None[T any]() Val[T] {
	return Val[T]{}
}

func (v Val[T]) Present() bool {
	return v.present
}

func (v Val[T]) Get() (T, bool) {
	return v.value, v.present
}

// MustGet returns the wrapped value and panics on None. Reserved for
// callers that already checked Present.
func (v Val[T]) MustGet() T {
	if !v.present {
		panic("opt: MustGet on absent value")
	}
	return v.value
}

// GetOr returns the wrapped value, or fallback when absent.
func (v Val[T]) GetOr(fallback T) T {
	if !v.present {
		return fallback
	}
	return v.value
}
