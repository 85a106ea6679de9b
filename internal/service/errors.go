package service

import "fmt"

// Kind enumerates the failure classes the HTTP layer maps to status codes.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindUpstreamFetch
	KindModelCall
	KindModelParse
	KindForbidden
	KindNotFound
	KindInternal
)

// Error is a classified, user-presentable failure. Message is safe to
// return to the caller; Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func errInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func errFetch(message string, cause error) *Error {
	return &Error{Kind: KindUpstreamFetch, Message: message, Err: cause}
}

func errModel(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func errForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func errNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}
