package results

import (
	"errors"
	"iter"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// bag is the message accumulator shared by Result and Valued. It is
// append-only: once an error is added the bag stays invalid.
type bag struct {
	id        uuid.UUID
	createdAt time.Time
	messages  []*Message
	invalid   bool
}

func newBag(capacity int) bag {
	return bag{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		messages:  make([]*Message, 0, capacity),
	}
}

// concat builds a fresh bag holding the given message lists in order.
func concat(lists ...[]*Message) bag {
	n := 0
	for _, l := range lists {
		n += len(l)
	}

	b := newBag(n)
	for _, l := range lists {
		b.AddRange(l...)
	}
	return b
}

// Add appends a message. Nil messages are ignored.
func (b *bag) Add(message *Message) {
	if message == nil {
		return
	}
	if message.severity == SeverityError {
		b.invalid = true
	}
	b.messages = append(b.messages, message)
}

func (b *bag) AddWarning(text string) {
	b.Add(NewWarning(text))
}

func (b *bag) AddError(text string) {
	b.Add(NewError(text))
}

func (b *bag) AddRange(messages ...*Message) {
	for _, m := range messages {
		b.Add(m)
	}
}

func (b *bag) AddAll(messages iter.Seq[*Message]) {
	for m := range messages {
		b.Add(m)
	}
}

// IsValid reports whether no error-severity message has been added.
func (b *bag) IsValid() bool {
	return !b.invalid
}

// Messages returns the messages in insertion order. The slice is a copy and
// is never nil.
func (b *bag) Messages() []*Message {
	out := make([]*Message, len(b.messages))
	copy(out, b.messages)
	return out
}

func (b *bag) All() iter.Seq2[int, *Message] {
	return func(yield func(int, *Message) bool) {
		for i, m := range b.messages {
			if !yield(i, m) {
				return
			}
		}
	}
}

func (b *bag) Len() int {
	return len(b.messages)
}

func (b *bag) HasWarnings() bool {
	for _, m := range b.messages {
		if m.severity == SeverityWarning {
			return true
		}
	}
	return false
}

func (b *bag) Errors() []*Message {
	return b.filter(SeverityError)
}

func (b *bag) Warnings() []*Message {
	return b.filter(SeverityWarning)
}

func (b *bag) filter(severity Severity) []*Message {
	out := make([]*Message, 0)
	for _, m := range b.messages {
		if m.severity == severity {
			out = append(out, m)
		}
	}
	return out
}

// Err returns nil for a valid bag, otherwise every error message joined into
// a single error.
func (b *bag) Err() error {
	if !b.invalid {
		return nil
	}

	errs := make([]error, 0, len(b.messages))
	for _, m := range b.messages {
		if m.severity == SeverityError {
			errs = append(errs, errors.New(m.text))
		}
	}
	return errors.Join(errs...)
}

func (b *bag) ID() uuid.UUID {
	return b.id
}

func (b *bag) CreatedAt() time.Time {
	return b.createdAt
}

func (b *bag) list() []*Message {
	return b.messages
}

func (b *bag) logAttrs() []slog.Attr {
	msgs := make([]any, 0, len(b.messages))
	for i, m := range b.messages {
		msgs = append(msgs, slog.Any(strconv.Itoa(i), m))
	}
	return []slog.Attr{
		slog.String("id", b.id.String()),
		slog.Bool("valid", !b.invalid),
		slog.Group("messages", msgs...),
	}
}
