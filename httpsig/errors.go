// Package httpsig implements RFC 9421 HTTP Message Signatures: component
// resolution, signature base construction, and signing/verification over a
// chosen subset of an HTTP message, built on the sfv codec package.
package httpsig

import (
	"errors"
	"fmt"
)

// ErrorKind is a closed enumeration of the signature engine's error
// taxonomy (spec.md §7).
type ErrorKind string

const (
	IncorrectSignature      ErrorKind = "IncorrectSignature"
	SignatureExpired        ErrorKind = "SignatureExpired"
	UnknownAlgorithm        ErrorKind = "UnknownAlgorithm"
	MissingAlgorithm        ErrorKind = "MissingAlgorithm"
	InvalidKey              ErrorKind = "InvalidKey"
	MissingHeader           ErrorKind = "MissingHeader"
	MissingRelatedRequest   ErrorKind = "MissingRelatedRequest"
	InvalidStructuredHeader ErrorKind = "InvalidStructuredHeader"
	MissingDictionaryKey    ErrorKind = "MissingDictionaryKey"
	MissingQueryParam       ErrorKind = "MissingQueryParam"
	MissingRequired         ErrorKind = "MissingRequired"
	MissingComponent        ErrorKind = "MissingComponent"
	ForbiddenPresent        ErrorKind = "ForbiddenPresent"
	MissingTag              ErrorKind = "MissingTag"
	DuplicateTag            ErrorKind = "DuplicateTag"
	Generic                 ErrorKind = "Generic"
)

// Error is the signature engine's error type. Local validation errors
// (builder-time bad arguments) and over-the-wire conditions share this
// type but are raised at different points (spec.md §7).
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("httpsig: %s", e.Kind)
	}
	return fmt.Sprintf("httpsig: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is allows errors.Is(err, &httpsig.Error{Kind: httpsig.MissingHeader})
// style matching against a kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind == "" {
		return false
	}
	return e.Kind == t.Kind
}

func newSigError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func newSigErrorWrap(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the ErrorKind of err if it is (or wraps) an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
