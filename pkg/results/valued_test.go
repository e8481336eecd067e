package results

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValued_DefaultIsValid(t *testing.T) {
	t.Parallel()

	actual := NewValued[int]()
	assert.True(t, actual.IsValid())
	assert.True(t, Truthy(actual))
	assert.Equal(t, 0, actual.Value())
	assert.False(t, actual.HasValue())
}

func TestValued_WithoutErrorsIsValid(t *testing.T) {
	t.Parallel()

	actual := NewValued[int](NewMessage(SeverityWarning, "a"))
	assert.True(t, actual.IsValid())
}

func TestValued_WithErrorsIsInvalid(t *testing.T) {
	t.Parallel()

	actual := NewValued[int](NewMessage(SeverityError, "a"))
	assert.False(t, actual.IsValid())
	assert.False(t, Truthy(actual))
}

func TestValued_InitialisedWithMessages(t *testing.T) {
	t.Parallel()

	a := NewMessage(SeverityWarning, "a")
	b := NewMessage(SeverityError, "b")

	for _, actual := range []*Valued[int]{NewValued[int](a, b), Of(9, a, b)} {
		msgs := actual.Messages()
		require.Len(t, msgs, 2)
		assert.Same(t, a, msgs[0])
		assert.Same(t, b, msgs[1])
	}
	assert.Equal(t, 9, Of(9, a, b).Value())
}

func TestValued_Of(t *testing.T) {
	t.Parallel()

	actual := Of("x")
	assert.True(t, actual.IsValid())
	assert.True(t, actual.HasValue())
	assert.Equal(t, "x", actual.Value())
	assert.Empty(t, actual.Messages())

	zero := Of(0)
	assert.True(t, zero.HasValue())
}

func TestValued_NamedConstructors(t *testing.T) {
	t.Parallel()

	empty := EmptyOf[int]()
	assert.True(t, empty.IsValid())
	assert.Empty(t, empty.Messages())
	assert.Equal(t, 0, empty.Value())

	e := ErrorOf[int]("test")
	assert.False(t, e.IsValid())
	require.Len(t, e.Messages(), 1)
	assert.Equal(t, SeverityError, e.Messages()[0].Severity())
	assert.Equal(t, "test", e.Messages()[0].Text())

	w := WarningOf[int]("test")
	assert.True(t, w.IsValid())
	require.Len(t, w.Messages(), 1)
	assert.Equal(t, SeverityWarning, w.Messages()[0].Severity())
}

func TestValued_AndKeepsFirstValue(t *testing.T) {
	t.Parallel()

	a := Of(0)
	b := Of(1)

	actual := a.And(b)
	assert.Equal(t, 0, actual.Value())
	assert.True(t, actual.HasValue())
}

func TestValued_AndWithValueless(t *testing.T) {
	t.Parallel()

	m1, m2 := NewWarning("v"), NewError("r")
	actual := Of(5, m1).And(New(m2))

	assert.Equal(t, 5, actual.Value())
	assert.Equal(t, []*Message{m1, m2}, actual.Messages())
	assert.False(t, actual.IsValid())
}

func TestValued_AndOtherValueType(t *testing.T) {
	t.Parallel()

	m1, m2 := NewWarning("a"), NewWarning("b")
	actual := Of(5, m1).And(Of("ignored", m2))

	assert.Equal(t, 5, actual.Value())
	assert.Equal(t, []*Message{m1, m2}, actual.Messages())
}

func TestAndValued_ValuelessFirst(t *testing.T) {
	t.Parallel()

	m1, m2 := NewError("r"), NewWarning("v")
	actual := AndValued(New(m1), Of(5, m2))

	assert.Equal(t, 5, actual.Value())
	assert.True(t, actual.HasValue())
	assert.Equal(t, []*Message{m1, m2}, actual.Messages())
	assert.False(t, actual.IsValid())
}

func TestMixedFamilies_NeverDropValue(t *testing.T) {
	t.Parallel()

	left := Of(5).And(New())
	right := AndValued(New(), Of(5))

	assert.Equal(t, 5, left.Value())
	assert.Equal(t, 5, right.Value())
}

func TestCombine(t *testing.T) {
	t.Parallel()

	m1, m2 := NewWarning("a"), NewWarning("b")
	actual := Combine(Of(1, m1), Of(2, m2), func(x, y int) int { return x + y })

	assert.Equal(t, 3, actual.Value())
	assert.True(t, actual.HasValue())
	assert.Equal(t, []*Message{m1, m2}, actual.Messages())
}

func TestCombine_ChangesType(t *testing.T) {
	t.Parallel()

	actual := Combine(Of(2), Of("x"), func(n int, s string) string {
		return s + strconv.Itoa(n)
	})
	assert.Equal(t, "x2", actual.Value())
}

func TestCombine_AggregatorRunsWhenInvalid(t *testing.T) {
	t.Parallel()

	calls := 0
	actual := Combine(ErrorOf[int]("a"), Of(2), func(x, y int) int {
		calls++
		return x + y
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, actual.Value())
	assert.False(t, actual.IsValid())
}

func TestCombine_AggregatorPanicPropagates(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "no value", func() {
		Combine(EmptyOf[*int](), Of(1), func(p *int, y int) int {
			if p == nil {
				panic("no value")
			}
			return *p + y
		})
	})
}

func TestValued_AndAlso(t *testing.T) {
	t.Parallel()

	called := false
	failed := ErrorOf[int]("a")
	actual := failed.AndAlso(func() Reporter {
		called = true
		return Error("b")
	})
	assert.False(t, called)
	assert.Same(t, failed, actual)

	w := NewWarning("w")
	e := NewError("e")
	actual = Of(3, w).AndAlso(func() Reporter { return New(e) })
	assert.Equal(t, 3, actual.Value())
	assert.Equal(t, []*Message{w, e}, actual.Messages())
}

func TestValued_Discard(t *testing.T) {
	t.Parallel()

	e := NewError("e")
	v := Of(3, e)
	actual := v.Discard()

	assert.Equal(t, []*Message{e}, actual.Messages())
	assert.False(t, actual.IsValid())
}

func TestValued_Unwrap(t *testing.T) {
	t.Parallel()

	value, err := Of(3, NewWarning("w")).Unwrap()
	assert.Equal(t, 3, value)
	assert.NoError(t, err)

	value, err = WithValue(Error("bad"), 4).Unwrap()
	assert.Equal(t, 4, value)
	assert.EqualError(t, err, "bad")
}

func TestValued_NilReceiver(t *testing.T) {
	t.Parallel()

	var v *Valued[int]
	assert.Equal(t, 0, v.Value())
	assert.False(t, v.HasValue())

	value, err := v.Unwrap()
	assert.Equal(t, 0, value)
	assert.NoError(t, err)

	actual := v.And(Warning("w"))
	assert.Equal(t, 1, actual.Len())
	assert.False(t, actual.HasValue())
}

func TestValued_ImplementsValueProvider(t *testing.T) {
	t.Parallel()

	var p ValueProvider[int] = Of(1)
	assert.Equal(t, 1, p.Value())
	assert.True(t, p.IsValid())
}
