package results

import (
	"log/slog"
)

// Valued is the outcome of an operation that produces a value of type T
// along with diagnostics. The value is fixed at construction.
type Valued[T any] struct {
	bag
	value    T
	hasValue bool
}

// NewValued creates a result without a value. Value returns the zero T.
func NewValued[T any](messages ...*Message) *Valued[T] {
	v := &Valued[T]{bag: newBag(len(messages))}
	v.AddRange(messages...)
	return v
}

func Of[T any](value T, messages ...*Message) *Valued[T] {
	v := NewValued[T](messages...)
	v.value = value
	v.hasValue = true
	return v
}

func EmptyOf[T any]() *Valued[T] {
	return NewValued[T]()
}

func ErrorOf[T any](text string) *Valued[T] {
	return NewValued[T](NewError(text))
}

func WarningOf[T any](text string) *Valued[T] {
	return NewValued[T](NewWarning(text))
}

func (v *Valued[T]) Value() T {
	if v == nil {
		var zero T
		return zero
	}
	return v.value
}

func (v *Valued[T]) HasValue() bool {
	return v != nil && v.hasValue
}

func (v *Valued[T]) Unwrap() (T, error) {
	if v == nil {
		return v.Value(), nil
	}
	return v.value, v.Err()
}

// And keeps v's value and appends other's messages after v's. other may be
// of either family.
func (v *Valued[T]) And(other Reporter) *Valued[T] {
	return &Valued[T]{
		bag:      concat(messagesOf(v), messagesOf(other)),
		value:    v.Value(),
		hasValue: v.HasValue(),
	}
}

// AndAlso is the short-circuit form of And: when v is invalid it is returned
// as is and next is never called.
func (v *Valued[T]) AndAlso(next func() Reporter) *Valued[T] {
	if v != nil && !v.IsValid() {
		return v
	}
	if next == nil {
		return v.And(nil)
	}
	return v.And(next())
}

// Discard drops the value and keeps the messages.
func (v *Valued[T]) Discard() *Result {
	return &Result{bag: concat(messagesOf(v))}
}

// AndValued combines a valueless result with a valued one. r's messages come
// first and the value is taken from v.
func AndValued[T any](r *Result, v *Valued[T]) *Valued[T] {
	return &Valued[T]{
		bag:      concat(messagesOf(r), messagesOf(v)),
		value:    v.Value(),
		hasValue: v.HasValue(),
	}
}

// Combine applies aggregate to the values of a and b and concatenates their
// messages. aggregate always runs, whatever the validity of a and b.
func Combine[T, U, O any](a *Valued[T], b *Valued[U], aggregate func(T, U) O) *Valued[O] {
	return &Valued[O]{
		bag:      concat(messagesOf(a), messagesOf(b)),
		value:    aggregate(a.Value(), b.Value()),
		hasValue: true,
	}
}

func (v *Valued[T]) LogValue() slog.Value {
	attrs := v.logAttrs()
	if v.hasValue {
		attrs = append(attrs, slog.Any("value", v.value))
	}
	return slog.GroupValue(attrs...)
}
