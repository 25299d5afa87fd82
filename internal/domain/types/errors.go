package types

import "errors"

// ErrorKind classifies failures of the command channel.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindFormat
	KindAuth
	KindPermission
	KindNotAvailable
	KindUnknownCommand
	KindTransport
	KindInternal
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFormat:
		return "format"
	case KindAuth:
		return "auth"
	case KindPermission:
		return "permission"
	case KindNotAvailable:
		return "not_available"
	case KindUnknownCommand:
		return "unknown_command"
	case KindTransport:
		return "transport"
	default:
		return "internal"
	}
}

// Error is a classified failure. Msg is the human-readable text that is sent
// back to the remote party; Err, when set, is appended as the cause.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// NewError returns an Error of kind with msg and no cause.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError returns an Error of kind with msg and cause err.
func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain. A nil error is
// KindNone and an unclassified error is KindInternal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
