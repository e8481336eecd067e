package chain

import (
	"context"

	"github.com/ib-77/results/pkg/results"
	"github.com/ib-77/results/pkg/results/solo"
)

// Chain wraps a results.Valued with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res *results.Valued[T]
}

func Start[T any](ctx context.Context, r *results.Valued[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, results.Of(v))
}

func (c Chain[T]) Result() *results.Valued[T] {
	return c.res
}

func (c Chain[T]) IsValid() bool {
	return c.res.IsValid()
}

// Then composes functions that already return a results.Valued[T]
func (c Chain[T]) Then(onValid func(ctx context.Context, t T) *results.Valued[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onValid)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the value of a valid chain
func (c Chain[T]) Map(onValid func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onValid)}
}

// Validate runs validators against the value, accumulating their messages.
// Once an error is recorded the remaining validators are skipped.
func (c Chain[T]) Validate(validators ...func(ctx context.Context, t T) *results.Result) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.ValidateAll(c.ctx, c.res, true, validators...)}
}

func (c Chain[T]) And(other results.Reporter) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.And(other)}
}

// AndAlso calls next only if the chain is still valid.
func (c Chain[T]) AndAlso(next func(ctx context.Context, t T) results.Reporter) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.AndAlso(func() results.Reporter {
		return next(c.ctx, c.res.Value())
	})}
}

// Ensure triggers side effects without changing the result
func (c Chain[T]) Ensure(onValid func(context.Context, T),
	onInvalid func(context.Context, []*results.Message)) Chain[T] {

	if c.res.IsValid() {
		if onValid != nil {
			onValid(c.ctx, c.res.Value())
		}
		return c
	}

	if onInvalid != nil {
		onInvalid(c.ctx, c.res.Messages())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onValid func(context.Context, T) T,
	onInvalid func(context.Context, []*results.Message) T,
) T {
	return solo.Finally(c.ctx, c.res, onValid, onInvalid)
}

// ThenTo chains a function that switches to results.Valued[U]
func ThenTo[T, U any](c Chain[T], onValid func(context.Context, T) *results.Valued[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onValid)}
}

// MapTo chains a pure transformation function
func MapTo[T, U any](c Chain[T], onValid func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onValid)}
}

// FinallyTo collapses the chain into a value of another type
func FinallyTo[T, U any](c Chain[T], onValid func(context.Context, T) U,
	onInvalid func(context.Context, []*results.Message) U) U {
	return solo.Finally(c.ctx, c.res, onValid, onInvalid)
}
