// Package emoji classifies decoded emoji code-point sequences.
//
// A unified identifier such as "1f469-200d-1f4bb" says nothing about the
// shape of the emoji it names. This package recognizes that shape:
//
//   - Single emoji characters (U+1F600 grinning face)
//   - ZWJ (Zero-Width Joiner) sequences for composite emoji
//   - Skin tone modifiers (U+1F3FB - U+1F3FF)
//   - Regional indicator pairs for country flags
//   - Keycap sequences (digit + U+FE0F + U+20E3)
//   - Tag sequences for subdivision flags
//   - Presentation sequences (text character + U+FE0F)
//
// # Usage
//
//	seq, err := emoji.FromUnified("1f44b-1f3fd")
//	if err != nil {
//	    return err
//	}
//	seq.Type       // SequenceModified
//	seq.SkinTone() // SkinToneMedium
//	seq.Decimal()  // "128075-127997"
//	seq.Names()    // [WAVING HAND SIGN EMOJI MODIFIER FITZPATRICK TYPE-4]
//
// To find every emoji in a piece of text:
//
//	for _, seq := range emoji.ParseString(text) {
//	    fmt.Println(seq.Unified())
//	}
//
// ParseString and Parse split text into extended grapheme clusters (UAX #29)
// with github.com/go-text/typesetting/segmenter before classifying, so a
// sequence never spans two user-perceived characters.
//
// A text presentation sequence (a character followed by U+FE0E, such as
// "2764-fe0e") asks for text display rather than an emoji. It is not
// classified as an emoji, and Classify rejects it with ErrNotSingleEmoji.
// Normalize drops U+FE0E for callers that want the emoji form.
//
// The character tables follow Unicode Technical Report #51
// (https://www.unicode.org/reports/tr51/) closely enough for classification;
// they are not a complete Emoji_Modifier_Base property list.
package emoji
