package results

import (
	"iter"
	"log/slog"
)

// Result is the outcome of an operation that produces diagnostics only.
//
// A Result is filled through Add* calls by a single writer and then treated
// as an immutable value: And, AndAlso, Join and WithValue never modify their
// operands.
type Result struct {
	bag
}

func New(messages ...*Message) *Result {
	r := &Result{bag: newBag(len(messages))}
	r.AddRange(messages...)
	return r
}

func FromSeq(messages iter.Seq[*Message]) *Result {
	r := New()
	r.AddAll(messages)
	return r
}

func Empty() *Result {
	return New()
}

func Error(text string) *Result {
	return New(NewError(text))
}

func Warning(text string) *Result {
	return New(NewWarning(text))
}

// FromError converts err into error messages, one per joined error.
// A nil error, including a typed nil pointer, gives an empty result. Any
// other error yields at least one error message.
func FromError(err error) *Result {
	r := New()
	if IsNil(err) {
		return r
	}
	for _, e := range GetErrors(err) {
		if !IsNil(e) {
			r.AddError(e.Error())
		}
	}
	if r.Len() == 0 {
		r.AddError(err.Error())
	}
	return r
}

// And returns a new result holding r's messages followed by other's.
func (r *Result) And(other *Result) *Result {
	return &Result{bag: concat(messagesOf(r), messagesOf(other))}
}

// AndAlso is the short-circuit form of And: when r is invalid it is returned
// as is and next is never called.
func (r *Result) AndAlso(next func() *Result) *Result {
	if r != nil && !r.IsValid() {
		return r
	}
	if next == nil {
		return r.And(nil)
	}
	return r.And(next())
}

// Join folds And over rs from left to right. Values carried by valued
// results are not kept.
func Join(rs ...Reporter) *Result {
	lists := make([][]*Message, 0, len(rs))
	for _, r := range rs {
		lists = append(lists, messagesOf(r))
	}
	return &Result{bag: concat(lists...)}
}

// WithValue lifts r into a valued result sharing r's messages.
func WithValue[T any](r *Result, value T) *Valued[T] {
	return &Valued[T]{
		bag:      concat(messagesOf(r)),
		value:    value,
		hasValue: true,
	}
}

func (r *Result) LogValue() slog.Value {
	return slog.GroupValue(r.logAttrs()...)
}
