package tint

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parse failures by the token shape that produced them.
type ErrorKind int

const (
	// KindInvalidUnknown is the catch-all for unrecognized token shapes.
	KindInvalidUnknown ErrorKind = iota
	// KindInvalidHex is for hex tokens with a bad length or non-hex digits.
	KindInvalidHex
	// KindInvalidRgb is for rgb()/rgba() calls with a bad component count,
	// mixed percent/byte components, or unparsable numbers.
	KindInvalidRgb
	// KindInvalidDarken is for malformed darken() calls.
	KindInvalidDarken
	// KindInvalidLighten is for malformed lighten() calls.
	KindInvalidLighten
	// KindInvalidGradientCoordinates is for direction strings that are
	// neither a keyword phrase nor a valid angle.
	KindInvalidGradientCoordinates
	// KindInvalidAccent is for failures of the accent color source.
	KindInvalidAccent
	// KindNoValidColors is for expressions that yield zero usable colors.
	KindNoValidColors
)

// String returns a short lowercase name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidHex:
		return "hex"
	case KindInvalidRgb:
		return "rgb"
	case KindInvalidDarken:
		return "darken"
	case KindInvalidLighten:
		return "lighten"
	case KindInvalidGradientCoordinates:
		return "coordinates"
	case KindInvalidAccent:
		return "accent"
	case KindNoValidColors:
		return "nocolors"
	default:
		return "unknown"
	}
}

// Sentinel targets for errors.Is matching. Every *ParseError matches
// exactly one of these according to its Kind.
var (
	ErrInvalidHex                 = errors.New("invalid hex format")
	ErrInvalidRgb                 = errors.New("invalid rgb format")
	ErrInvalidDarken              = errors.New("invalid darken format")
	ErrInvalidLighten             = errors.New("invalid lighten format")
	ErrInvalidGradientCoordinates = errors.New("invalid gradient coordinates")
	ErrInvalidAccent              = errors.New("accent color not found")
	ErrNoValidColors              = errors.New("no valid colors found")
	ErrUnknownFormat              = errors.New("unrecognized color format")
)

// target returns the sentinel error for the kind.
func (k ErrorKind) target() error {
	switch k {
	case KindInvalidHex:
		return ErrInvalidHex
	case KindInvalidRgb:
		return ErrInvalidRgb
	case KindInvalidDarken:
		return ErrInvalidDarken
	case KindInvalidLighten:
		return ErrInvalidLighten
	case KindInvalidGradientCoordinates:
		return ErrInvalidGradientCoordinates
	case KindInvalidAccent:
		return ErrInvalidAccent
	case KindNoValidColors:
		return ErrNoValidColors
	default:
		return ErrUnknownFormat
	}
}

// ParseError is the error type returned by all parsing entry points.
// Input holds the offending substring for diagnostics.
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Input is the offending substring.
	Input string
	// Err is the underlying cause, if any. For darken()/lighten() calls
	// whose inner color fails to parse, Err carries the inner error so
	// errors.Is can match both kinds.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Input == "" {
		return e.Kind.target().Error()
	}
	return fmt.Sprintf("%s: %q", e.Kind.target().Error(), e.Input)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind.target()
}

// newParseError creates a ParseError without an underlying cause.
func newParseError(kind ErrorKind, input string) *ParseError {
	return &ParseError{Kind: kind, Input: input}
}

// wrapParseError creates a ParseError wrapping an underlying cause.
func wrapParseError(kind ErrorKind, input string, err error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Err: err}
}
