package multihash

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions. Callers
// building framed protocols on top of multihash should branch on Kind rather
// than matching error strings: KindTruncated means "need more bytes", while
// KindTrailingData and KindOverflow mean the input is malformed and more
// bytes will not help.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error, or the IsKind helper.
type Kind string

const (
	// KindInvalidArgument marks a caller contract violation, such as an
	// out-of-range truncation length or an undecodable string form.
	KindInvalidArgument Kind = "InvalidArgument"
	// KindEmptyDigest marks an empty digest, which the wire format does
	// not represent.
	KindEmptyDigest Kind = "EmptyDigest"
	// KindTruncated marks input that ended before a complete multihash
	// was read.
	KindTruncated Kind = "Truncated"
	// KindTrailingData marks extra bytes after a structurally complete
	// multihash.
	KindTrailingData Kind = "TrailingData"
	// KindOverflow marks a varint field that is out of range or
	// non-canonical.
	KindOverflow Kind = "Overflow"
	// KindUnknownFunction marks a verify request against a function code
	// the registry cannot resolve.
	KindUnknownFunction Kind = "UnknownFunction"
)

// Error is the codec's structured error type.
//
// Message is intended for humans; do not match on it. Cause, where set,
// preserves the underlying sentinel (for example varint.ErrNotMinimal) for
// errors.Is checks finer than Kind.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError builds a structured codec error. It is exported for collaborator
// packages implementing the registry contract; codec callers should only
// inspect errors, not construct them.
func NewError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// WrapError builds a structured codec error preserving cause for errors.Is.
func WrapError(kind Kind, msg string, cause error) error {
	if cause == nil {
		return NewError(kind, msg)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
