package results

import "log/slog"

// Message is a single immutable diagnostic. Results share *Message pointers
// and never copy them.
type Message struct {
	severity Severity
	text     string
}

func NewMessage(severity Severity, text string) *Message {
	return &Message{severity: severity, text: text}
}

func NewWarning(text string) *Message {
	return NewMessage(SeverityWarning, text)
}

func NewError(text string) *Message {
	return NewMessage(SeverityError, text)
}

func (m *Message) Severity() Severity {
	return m.severity
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) IsError() bool {
	return m.severity == SeverityError
}

func (m *Message) String() string {
	return m.severity.String() + ": " + m.text
}

func (m *Message) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("severity", m.severity.String()),
		slog.String("text", m.text),
	)
}
