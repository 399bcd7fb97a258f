package app

// Editor takes the current value and returns the edited one. ok is false when
// the edit was cancelled; the caller then keeps the current value.
type Editor[T any] func(current T) (edited T, ok bool)

// Accept returns an Editor that accepts the current value unchanged.
func Accept[T any]() Editor[T] {
	return func(current T) (T, bool) {
		return current, true
	}
}

// Cancel returns an Editor that always cancels.
func Cancel[T any]() Editor[T] {
	return func(current T) (T, bool) {
		return current, false
	}
}

// Replace returns an Editor that answers with v.
func Replace[T any](v T) Editor[T] {
	return func(T) (T, bool) {
		return v, true
	}
}
