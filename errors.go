// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package numconv holds the error types shared by the ieee754 and radix transcoders.
// The transcoders themselves live in the subpackages.
package numconv

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// InvalidLength means the text does not have the number of digits the precision requires.
	InvalidLength ErrorKind = iota + 1
	// InvalidDigit means a character outside of the expected alphabet was found.
	InvalidDigit
	// EmptyInput means there were no digits at all.
	EmptyInput
)

var (
	// ErrInvalidLength is the sentinel for InvalidLength parse errors.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidDigit is the sentinel for InvalidDigit parse errors.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrEmptyInput is the sentinel for EmptyInput parse errors.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnsupportedPrecision is returned for a float precision other than 16, 32 or 64.
	ErrUnsupportedPrecision = errors.New("unsupported precision")
	// ErrUnsupportedBase is returned for a base other than 2, 8, 10, 16 or 64.
	ErrUnsupportedBase = errors.New("unsupported base")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case InvalidDigit:
		return "InvalidDigit"
	case EmptyInput:
		return "EmptyInput"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidLength:
		return ErrInvalidLength
	case InvalidDigit:
		return ErrInvalidDigit
	case EmptyInput:
		return ErrEmptyInput
	default:
		return nil
	}
}

// ParseError describes why a digit string was rejected.
// Use errors.Is with ErrInvalidLength, ErrInvalidDigit or ErrEmptyInput to check the kind.
type ParseError struct {
	Kind ErrorKind
	// Char is the offending character, set for InvalidDigit.
	Char rune
	// Pos is the 1-based rune position of Char in the original text.
	Pos int
	// Want and Got are the expected and actual digit counts, set for InvalidLength.
	Want, Got int
}

// NewLengthError returns an InvalidLength error.
func NewLengthError(want, got int) *ParseError {
	return &ParseError{Kind: InvalidLength, Want: want, Got: got}
}

// NewDigitError returns an InvalidDigit error for character c at 1-based position pos.
func NewDigitError(c rune, pos int) *ParseError {
	return &ParseError{Kind: InvalidDigit, Char: c, Pos: pos}
}

// NewEmptyError returns an EmptyInput error.
func NewEmptyError() *ParseError {
	return &ParseError{Kind: EmptyInput}
}

func (pe *ParseError) Error() string {
	switch pe.Kind {
	case InvalidLength:
		return fmt.Sprintf("invalid length: expected %d digits, got %d", pe.Want, pe.Got)
	case InvalidDigit:
		return fmt.Sprintf("invalid digit %q at pos %d", pe.Char, pe.Pos)
	case EmptyInput:
		return "empty input"
	default:
		return "parse error"
	}
}

// Unwrap returns the sentinel error matching pe.Kind.
func (pe *ParseError) Unwrap() error {
	return pe.Kind.sentinel()
}
