package emojicode

import "fmt"

// HexToDecimal converts a unified identifier to its decimal form:
//
//	HexToDecimal("1f600-1f3fb") // "128512-127995", nil
//
// An empty input returns "" without parsing. A token that is not a
// hexadecimal literal returns an *InvalidTokenError and no partial output.
func HexToDecimal(unified string) (string, error) {
	return Convert(unified, Hex, Decimal)
}

// DecimalToHex converts a decimal emoji code to its unified identifier:
//
//	DecimalToHex("128512-127995") // "1f600-1f3fb", nil
//
// Hex digits are lowercase, without prefix or leading zeros.
func DecimalToHex(code string) (string, error) {
	return Convert(code, Decimal, Hex)
}

// Convert parses s in base from and renders it canonically in base to.
func Convert(s string, from, to Base) (string, error) {
	if !to.valid() {
		return "", fmt.Errorf("emojicode: unsupported base %d", int(to))
	}
	if s == "" {
		return "", nil
	}
	cp, err := Parse(s, from)
	if err != nil {
		return "", err
	}
	return cp.Format(to), nil
}
