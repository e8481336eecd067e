package results

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Truthy is the boolean view of a result: true iff it is valid. A nil
// reporter counts as an empty, valid result.
func Truthy(r Reporter) bool {
	return IsNil(r) || r.IsValid()
}

// messagesOf returns the backing message list without copying when the
// reporter is one of ours. Nil reporters yield no messages.
func messagesOf(r Reporter) []*Message {
	if IsNil(r) {
		return nil
	}
	if l, ok := r.(interface{ list() []*Message }); ok {
		return l.list()
	}
	return r.Messages()
}
