// Package emojicode converts emoji code-point sequences between their
// hexadecimal and decimal serializations.
//
// # Overview
//
// Emoji pickers identify an emoji by its "unified" identifier, the
// hyphen-joined hexadecimal code points of the sequence. Applications often
// persist the same sequence in decimal form instead. emojicode is the
// lossless, order-preserving codec between the two:
//
//	1f600-1f3fb  <->  128512-127995
//
// # Quick Start
//
//	import "github.com/gogpu/emojicode"
//
//	dec, err := emojicode.HexToDecimal("1f600-1f3fb") // "128512-127995"
//	hex, err := emojicode.DecimalToHex("128512")      // "1f600"
//
// Both functions return an empty string for empty input and never embed a
// placeholder for an unparsable token: a malformed token is reported as an
// [*InvalidTokenError] naming the token and its position.
//
// # Code Points
//
// [CodePoints] is the parsed form. It renders canonically in either base and
// converts to and from literal text:
//
//	cp := emojicode.FromString("👋🏽")
//	cp.Hex()     // "1f44b-1f3fd"
//	cp.Decimal() // "128075-127997"
//
// Values are held as uint32, so any sequence of non-negative integers that
// fits in 32 bits survives a round trip, including values that are not
// Unicode scalar values. [CodePoints.Runes] and [CodePoints.Text] reject
// those with [ErrNotScalarValue].
//
// # Sequence Classification
//
// The emoji sub-package classifies a decoded sequence (ZWJ, flag, keycap,
// skin tone) and reports the Unicode names of its code points.
//
// # Logging
//
// emojicode produces no log output by default. Call [SetLogger] to receive
// debug records for rejected tokens.
//
// # Thread Safety
//
// Every function in this package is pure and safe for concurrent use.
package emojicode
