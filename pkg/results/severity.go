package results

import (
	"errors"
	"fmt"
)

var ErrUnknownSeverity = errors.New("unknown severity")

// Severity classifies a Message. Only SeverityError affects validity.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

func (s Severity) MarshalText() ([]byte, error) {
	if s != SeverityWarning && s != SeverityError {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, s)
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
