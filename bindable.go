package skincfg

// Bindable is the observable single-value container a resolved lookup is
// returned in. A fresh Bindable is created for every resolve call; results
// are never cached across calls. Two Bindables compare equal only when they
// are the same instance (pointer identity).
//
// A Bindable is not safe for concurrent use; like resolution itself it is
// synchronous relative to its owner.
type Bindable[V any] struct {
	value    V
	null     bool
	onChange []func(V)
}

func newBindable[V any](value V, null bool) *Bindable[V] {
	return &Bindable[V]{value: value, null: null}
}

// Value returns the held value. ok is false when the value is explicitly
// null, i.e. a source defined the key but assigned no value to it.
func (b *Bindable[V]) Value() (value V, ok bool) {
	if b.null {
		var zero V
		return zero, false
	}
	return b.value, true
}

// IsNull reports whether the container holds an explicitly null value.
func (b *Bindable[V]) IsNull() bool {
	return b.null
}

// Set replaces the held value and notifies subscribers in registration
// order.
func (b *Bindable[V]) Set(value V) {
	b.value = value
	b.null = false
	for _, fn := range b.onChange {
		fn(value)
	}
}

// OnChange registers a callback invoked whenever Set replaces the value.
func (b *Bindable[V]) OnChange(fn func(V)) {
	b.onChange = append(b.onChange, fn)
}
