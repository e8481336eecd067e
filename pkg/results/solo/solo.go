package solo

import (
	"context"

	"github.com/ib-77/results/pkg/results"
)

func Succeed[T any](input T) *results.Valued[T] {
	return results.Of(input)
}

func Fail[T any](errMsg string) *results.Valued[T] {
	return results.ErrorOf[T](errMsg)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) *results.Valued[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input *results.Valued[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) *results.Valued[T] {

	if input.IsValid() {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			return input.And(results.Error(errMsg))
		}
	}
	return input
}

// Check runs every check against the value and collects all their messages.
func Check[T any](ctx context.Context, input *results.Valued[T],
	checks ...func(ctx context.Context, in T) *results.Result) *results.Valued[T] {
	return ValidateAll(ctx, input, false, checks...)
}

func ValidateAll[T any](
	ctx context.Context,
	input *results.Valued[T],
	breakOnError bool, // skip remaining validators once invalid
	validators ...func(ctx context.Context, in T) *results.Result) *results.Valued[T] {

	if len(validators) == 0 || ctx.Err() != nil {
		return input
	}

	finalResult := input
	for _, validator := range validators {
		if ctx.Err() != nil {
			return finalResult
		}

		if breakOnError {
			finalResult = finalResult.AndAlso(func() results.Reporter {
				return validator(ctx, input.Value())
			})
		} else {
			finalResult = finalResult.And(validator(ctx, input.Value()))
		}
	}
	return finalResult
}

func Switch[In any, Out any](ctx context.Context,
	input *results.Valued[In],
	onValid func(ctx context.Context, r In) *results.Valued[Out]) *results.Valued[Out] {

	if input.IsValid() {
		return results.AndValued(input.Discard(), onValid(ctx, input.Value()))
	}
	return carry[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input *results.Valued[In],
	onValid func(ctx context.Context, r In) Out) *results.Valued[Out] {

	if input.IsValid() {
		return results.Of(onValid(ctx, input.Value()), input.Messages()...)
	}
	return carry[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input *results.Valued[T],
	onValid func(ctx context.Context, r *results.Valued[T])) *results.Valued[T] {

	if input.IsValid() {
		onValid(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input *results.Valued[T],
	condition func(ctx context.Context, r *results.Valued[T]) bool,
	onValidAndCondition func(ctx context.Context, r *results.Valued[T])) *results.Valued[T] {

	if input.IsValid() {
		if condition(ctx, input) {
			onValidAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input *results.Valued[T],
	onValid func(ctx context.Context, r T),
	onInvalid func(ctx context.Context, messages []*results.Message)) *results.Valued[T] {

	if input.IsValid() {
		onValid(ctx, input.Value())
	} else {
		onInvalid(ctx, input.Messages())
	}

	return input
}

// Try calls onTryExecute for a valid input. A returned error becomes one
// error message per joined error and the result carries no value. A typed
// nil error is treated as success, the same way results.FromError treats it.
func Try[In any, Out any](ctx context.Context, input *results.Valued[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) *results.Valued[Out] {

	if !input.IsValid() {
		return carry[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Value())
	if !results.IsNil(err) {
		return carry[In, Out](input).And(results.FromError(err))
	}

	return results.Of(out, input.Messages()...)
}

func FailOnError[T any](ctx context.Context, input *results.Valued[T],
	maybeErr func(ctx context.Context, in T) error) *results.Valued[T] {
	if input.IsValid() {
		if err := maybeErr(ctx, input.Value()); !results.IsNil(err) {
			return input.And(results.FromError(err))
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input *results.Valued[In],
	onValid func(ctx context.Context, r In) Out,
	onInvalid func(ctx context.Context, messages []*results.Message) Out) Out {

	if input.IsValid() {
		return onValid(ctx, input.Value())
	}
	return onInvalid(ctx, input.Messages())
}

// carry moves the messages of input into a value-less result of another type.
func carry[In, Out any](input *results.Valued[In]) *results.Valued[Out] {
	return results.NewValued[Out](input.Messages()...)
}
