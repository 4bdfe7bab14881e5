package emojicode

import (
	"errors"
	"strconv"
)

// Sentinel errors for the emojicode package.
var (
	// ErrInvalidToken matches every *InvalidTokenError via errors.Is.
	ErrInvalidToken = errors.New("emojicode: invalid token")

	// ErrEmptyToken is the cause recorded when a token is blank, e.g. in
	// "1f600--1f3fb" or a trailing hyphen.
	ErrEmptyToken = errors.New("emojicode: empty token")

	// ErrNotScalarValue is returned when a code point is a surrogate or lies
	// above U+10FFFF and so cannot be turned into a rune.
	ErrNotScalarValue = errors.New("emojicode: not a Unicode scalar value")
)

// InvalidTokenError is returned when a token of a hyphen-joined sequence
// cannot be parsed in the expected base.
type InvalidTokenError struct {
	// Input is the complete string being parsed.
	Input string

	// Token is the offending token, before whitespace trimming.
	Token string

	// Index is the zero-based position of the token in the sequence.
	Index int

	// Base is the base the token was parsed in.
	Base Base

	// Err is the underlying cause: strconv.ErrSyntax, strconv.ErrRange or
	// ErrEmptyToken.
	Err error
}

func (e *InvalidTokenError) Error() string {
	msg := "emojicode: invalid " + e.Base.String() + " token " + strconv.Quote(e.Token) +
		" at position " + strconv.Itoa(e.Index)
	if e.Err != nil {
		msg += ": " + causeText(e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *InvalidTokenError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidToken.
func (e *InvalidTokenError) Is(target error) bool {
	return target == ErrInvalidToken
}

// causeText strips package prefixes so the cause reads as a clause.
func causeText(err error) string {
	switch {
	case errors.Is(err, ErrEmptyToken):
		return "empty token"
	case errors.Is(err, strconv.ErrRange):
		return "value out of range"
	case errors.Is(err, strconv.ErrSyntax):
		return "invalid syntax"
	default:
		return err.Error()
	}
}
