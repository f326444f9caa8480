package team

import (
	"errors"
)

// ErrorKind enumerates the roster failures surfaced to users
type ErrorKind int

const (
	PersonNotFound ErrorKind = iota + 1
	ConnectionTimeout
	PersonsFetchFailure
	PersonUpdateFailure
	PersonCreationFailure
	PersonDeleteFailure
)

var errorMessages = map[ErrorKind]string{
	PersonNotFound:        "member not found",
	ConnectionTimeout:     "connection timeout",
	PersonsFetchFailure:   "failed to fetch members",
	PersonUpdateFailure:   "failed to update member",
	PersonCreationFailure: "failed to create member",
	PersonDeleteFailure:   "failed to delete member",
}

// ErrorKinds lists every kind in declaration order
func ErrorKinds() []ErrorKind {
	return []ErrorKind{
		PersonNotFound,
		ConnectionTimeout,
		PersonsFetchFailure,
		PersonUpdateFailure,
		PersonCreationFailure,
		PersonDeleteFailure,
	}
}

// Message returns the user-facing message for kind
func Message(kind ErrorKind) string {
	if msg, ok := errorMessages[kind]; ok {
		return msg
	}
	return "unknown error"
}

func (k ErrorKind) Error() string {
	return Message(k)
}

// KindOf extracts the ErrorKind carried by err, if any
func KindOf(err error) (ErrorKind, bool) {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}

// UserMessage returns the message to show for err, falling back to fallback
// when err carries no ErrorKind.
func UserMessage(err error, fallback ErrorKind) string {
	if kind, ok := KindOf(err); ok {
		return Message(kind)
	}
	return Message(fallback)
}
