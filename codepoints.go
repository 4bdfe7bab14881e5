package emojicode

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Separator joins the tokens of a serialized code-point sequence.
const Separator = "-"

// Base is the numeric base of a serialized code-point sequence.
type Base int

const (
	// Decimal is the base of stored emoji codes, e.g. "128512-127995".
	Decimal Base = 10

	// Hex is the base of unified identifiers, e.g. "1f600-1f3fb".
	Hex Base = 16
)

// String returns "hex", "decimal", or "base(N)" for any other value.
func (b Base) String() string {
	switch b {
	case Hex:
		return "hex"
	case Decimal:
		return "decimal"
	default:
		return "base(" + strconv.Itoa(int(b)) + ")"
	}
}

// valid reports whether strconv accepts b.
func (b Base) valid() bool {
	return b >= 2 && b <= 36
}

// CodePoints is an ordered sequence of code point values.
//
// A nil or empty CodePoints serializes to the empty string in every base.
type CodePoints []uint32

// FromRunes returns the code points of runes.
func FromRunes(runes []rune) CodePoints {
	if len(runes) == 0 {
		return nil
	}
	cp := make(CodePoints, len(runes))
	for i, r := range runes {
		cp[i] = uint32(r)
	}
	return cp
}

// FromString returns the code points of text, e.g. "😀" yields [0x1F600].
// Invalid UTF-8 bytes decode as U+FFFD.
func FromString(text string) CodePoints {
	if text == "" {
		return nil
	}
	cp := make(CodePoints, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		cp = append(cp, uint32(r))
	}
	return cp
}

// Parse parses a hyphen-joined sequence of tokens in the given base.
// Surrounding whitespace of each token is ignored. Hex tokens may carry a
// "0x" or "U+" prefix.
//
// An empty string yields nil and no error. Any token that does not parse
// yields an *InvalidTokenError.
func Parse(s string, base Base) (CodePoints, error) {
	if !base.valid() {
		return nil, fmt.Errorf("emojicode: unsupported base %d", int(base))
	}
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, Separator)
	cp := make(CodePoints, len(tokens))
	for i, tok := range tokens {
		v, err := parseToken(tok, base)
		if err != nil {
			Logger().Debug("emojicode: rejected token",
				slog.String("base", base.String()),
				slog.Int("index", i),
				slog.String("token", tok))
			return nil, &InvalidTokenError{
				Input: s,
				Token: tok,
				Index: i,
				Base:  base,
				Err:   err,
			}
		}
		cp[i] = v
	}
	return cp, nil
}

// ParseHex parses a unified identifier such as "1f600-1f3fb".
func ParseHex(s string) (CodePoints, error) {
	return Parse(s, Hex)
}

// ParseDecimal parses a decimal emoji code such as "128512-127995".
func ParseDecimal(s string) (CodePoints, error) {
	return Parse(s, Decimal)
}

// parseToken parses a single token and returns the cause on failure.
func parseToken(tok string, base Base) (uint32, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, ErrEmptyToken
	}
	if base == Hex {
		tok = trimHexPrefix(tok)
	}

	v, err := strconv.ParseUint(tok, int(base), 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return uint32(v), nil
}

// trimHexPrefix removes one leading "0x", "0X", "U+" or "u+".
func trimHexPrefix(tok string) string {
	if len(tok) > 2 {
		switch tok[:2] {
		case "0x", "0X", "U+", "u+":
			return tok[2:]
		}
	}
	return tok
}

// Format renders cp in base, joined by Separator. Digits above 9 are
// lowercase and no value carries a prefix or leading zeros.
func (cp CodePoints) Format(base Base) string {
	if len(cp) == 0 {
		return ""
	}
	if !base.valid() {
		base = Hex
	}

	// 8 hex digits or 10 decimal digits per value, plus separators.
	buf := make([]byte, 0, len(cp)*11)
	for i, v := range cp {
		if i > 0 {
			buf = append(buf, Separator...)
		}
		buf = strconv.AppendUint(buf, uint64(v), int(base))
	}
	return string(buf)
}

// Hex returns the unified identifier form, e.g. "1f600-1f3fb".
func (cp CodePoints) Hex() string {
	return cp.Format(Hex)
}

// Decimal returns the decimal form, e.g. "128512-127995".
func (cp CodePoints) Decimal() string {
	return cp.Format(Decimal)
}

// String returns the unified identifier form.
func (cp CodePoints) String() string {
	return cp.Hex()
}

// Len returns the number of code points.
func (cp CodePoints) Len() int {
	return len(cp)
}

// Equal reports whether cp and other hold the same values in the same order.
func (cp CodePoints) Equal(other CodePoints) bool {
	if len(cp) != len(other) {
		return false
	}
	for i := range cp {
		if cp[i] != other[i] {
			return false
		}
	}
	return true
}

// Runes returns cp as runes. It fails with ErrNotScalarValue if any value
// is a surrogate or lies above U+10FFFF.
func (cp CodePoints) Runes() ([]rune, error) {
	if len(cp) == 0 {
		return nil, nil
	}
	runes := make([]rune, len(cp))
	for i, v := range cp {
		if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return nil, fmt.Errorf("%w: %#x at position %d", ErrNotScalarValue, v, i)
		}
		runes[i] = rune(v)
	}
	return runes, nil
}

// Text returns the literal string encoded by cp, e.g. "😀" for [0x1F600].
func (cp CodePoints) Text() (string, error) {
	runes, err := cp.Runes()
	if err != nil {
		return "", err
	}
	return string(runes), nil
}
