package results

import (
	"time"

	"github.com/google/uuid"
)

// Reporter is implemented by both result families. Combinators accept it so
// valueless and valued results can be mixed.
type Reporter interface {
	// Messages returns the diagnostics in insertion order
	Messages() []*Message
	// IsValid returns true if no error message has been recorded
	IsValid() bool
}

// ValueProvider extends Reporter with the carried value
type ValueProvider[T any] interface {
	Reporter
	// Value returns the carried value, the zero value if none was given
	Value() T
	// HasValue returns true if a value was supplied or produced
	HasValue() bool
}

// Stamped identifies a result instance
type Stamped interface {
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
