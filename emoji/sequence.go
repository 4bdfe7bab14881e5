package emoji

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-text/typesetting/segmenter"

	"github.com/gogpu/emojicode"
)

// ErrNotSingleEmoji is returned when a code-point sequence is not exactly one
// emoji.
var ErrNotSingleEmoji = errors.New("emoji: not a single emoji sequence")

const unknownName = "Unknown"

// SequenceType indicates the shape of an emoji sequence.
type SequenceType int

const (
	// SequenceSimple is a single emoji character.
	SequenceSimple SequenceType = iota

	// SequenceZWJ is several emoji joined by U+200D (family, profession).
	SequenceZWJ

	// SequenceFlag is a country flag formed by two regional indicators.
	SequenceFlag

	// SequenceKeycap is a keycap: # + U+FE0F + U+20E3.
	SequenceKeycap

	// SequenceModified is a base emoji followed by a skin tone modifier.
	SequenceModified

	// SequenceTag is a subdivision flag: U+1F3F4 + tags + U+E007F.
	SequenceTag

	// SequencePresentation is a text character with U+FE0F, e.g. U+2764 U+FE0F.
	SequencePresentation
)

var sequenceTypeNames = [...]string{
	SequenceSimple:       "Simple",
	SequenceZWJ:          "ZWJ",
	SequenceFlag:         "Flag",
	SequenceKeycap:       "Keycap",
	SequenceModified:     "Modified",
	SequenceTag:          "Tag",
	SequencePresentation: "Presentation",
}

// String returns the name of the sequence type.
func (t SequenceType) String() string {
	if t >= 0 && int(t) < len(sequenceTypeNames) {
		return sequenceTypeNames[t]
	}
	return unknownName
}

// Sequence is one emoji, possibly made of several code points.
type Sequence struct {
	// Codepoints contains all runes forming this emoji.
	Codepoints []rune

	// Type is the shape of the sequence.
	Type SequenceType

	// BaseCodepoint is the first emoji character of the sequence.
	BaseCodepoint rune

	// Modifier is the skin tone modifier applied to the base, or zero.
	Modifier rune
}

// String returns the emoji as text.
func (s Sequence) String() string {
	return string(s.Codepoints)
}

// Len returns the number of code points in the sequence.
func (s Sequence) Len() int {
	return len(s.Codepoints)
}

// HasModifier returns true if the base carries a skin tone modifier.
func (s Sequence) HasModifier() bool {
	return s.Modifier != 0
}

// CodePoints returns the sequence as serializable code points.
func (s Sequence) CodePoints() emojicode.CodePoints {
	return emojicode.FromRunes(s.Codepoints)
}

// Unified returns the hex unified identifier, e.g. "1f44b-1f3fd".
func (s Sequence) Unified() string {
	return s.CodePoints().Hex()
}

// Decimal returns the decimal emoji code, e.g. "128075-127997".
func (s Sequence) Decimal() string {
	return s.CodePoints().Decimal()
}

// FromUnified decodes a hex unified identifier and classifies it.
func FromUnified(unified string) (Sequence, error) {
	return fromCodePoints(emojicode.ParseHex(unified))
}

// FromDecimal decodes a decimal emoji code and classifies it.
func FromDecimal(code string) (Sequence, error) {
	return fromCodePoints(emojicode.ParseDecimal(code))
}

func fromCodePoints(cp emojicode.CodePoints, err error) (Sequence, error) {
	if err != nil {
		return Sequence{}, err
	}
	runes, err := cp.Runes()
	if err != nil {
		return Sequence{}, err
	}
	return Classify(runes)
}

// Classify returns the sequence formed by runes. It fails with
// ErrNotSingleEmoji unless the runes are exactly one emoji.
func Classify(runes []rune) (Sequence, error) {
	seq, n := parseSequenceAt(runes)
	if n == 0 || n != len(runes) {
		emojicode.Logger().Debug("emoji: unclassifiable sequence",
			slog.String("unified", emojicode.FromRunes(runes).Hex()),
			slog.Int("consumed", n))
		if len(runes) == 0 {
			return Sequence{}, fmt.Errorf("%w: empty input", ErrNotSingleEmoji)
		}
		return Sequence{}, fmt.Errorf("%w: %s", ErrNotSingleEmoji, emojicode.FromRunes(runes).Hex())
	}
	// Detach from the caller's slice.
	seq.Codepoints = append([]rune(nil), seq.Codepoints...)
	return seq, nil
}

// Parse returns every emoji sequence in runes, skipping non-emoji runes.
//
// The runes are first split into extended grapheme clusters (UAX #29), and
// no sequence spans a cluster boundary. The returned sequences do not share
// storage with runes.
func Parse(runes []rune) []Sequence {
	if len(runes) == 0 {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init(runes)
	return parseClusters(&seg)
}

// ParseString returns every emoji sequence in text.
func ParseString(text string) []Sequence {
	if text == "" {
		return nil
	}
	var seg segmenter.Segmenter
	seg.InitWithString(text)
	return parseClusters(&seg)
}

// parseClusters classifies the emoji found in each grapheme cluster of seg.
func parseClusters(seg *segmenter.Segmenter) []Sequence {
	var sequences []Sequence
	iter := seg.GraphemeIterator()
	for iter.Next() {
		cluster := iter.Grapheme().Text
		for i := 0; i < len(cluster); {
			seq, n := parseSequenceAt(cluster[i:])
			if n == 0 {
				i++
				continue
			}
			seq.Codepoints = append([]rune(nil), seq.Codepoints...)
			sequences = append(sequences, seq)
			i += n
		}
	}
	return sequences
}

// parseSequenceAt parses the emoji sequence at the start of runes and
// returns it with the number of runes consumed, or zero.
func parseSequenceAt(runes []rune) (Sequence, int) {
	if len(runes) == 0 {
		return Sequence{}, 0
	}
	r := runes[0]

	switch {
	case IsRegionalIndicator(r) && len(runes) >= 2 && IsRegionalIndicator(runes[1]):
		return newSequence(runes[:2], SequenceFlag, 0), 2
	case IsBlackFlag(r):
		if n := tagSequenceLen(runes); n > 0 {
			return newSequence(runes[:n], SequenceTag, 0), n
		}
	case IsKeycapBase(r):
		if n := keycapSequenceLen(runes); n > 0 {
			return newSequence(runes[:n], SequenceKeycap, 0), n
		}
		return Sequence{}, 0
	}

	if !isEmojiBase(r) {
		return Sequence{}, 0
	}
	return parseExtendedAt(runes)
}

func newSequence(runes []rune, typ SequenceType, modifier rune) Sequence {
	return Sequence{
		Codepoints:    runes,
		Type:          typ,
		BaseCodepoint: runes[0],
		Modifier:      modifier,
	}
}

// tagSequenceLen returns the length of BLACK_FLAG TAG+ CANCEL_TAG, or zero.
func tagSequenceLen(runes []rune) int {
	i := 1
	for i < len(runes) && IsTagCharacter(runes[i]) {
		i++
	}
	if i > 1 && i < len(runes) && IsCancelTag(runes[i]) {
		return i + 1
	}
	return 0
}

// keycapSequenceLen returns the length of BASE [FE0F] 20E3, or zero.
func keycapSequenceLen(runes []rune) int {
	i := 1
	if i < len(runes) && IsEmojiVariation(runes[i]) {
		i++
	}
	if i < len(runes) && IsCombiningEnclosingKeycap(runes[i]) {
		return i + 1
	}
	return 0
}

// parseExtendedAt parses a base emoji with optional variation selector,
// skin tone and ZWJ continuation.
func parseExtendedAt(runes []rune) (Sequence, int) {
	i, typ, modifier := elementLen(runes)
	if i == 0 {
		return Sequence{}, 0
	}

	joined := false
	for i+1 < len(runes) && IsZWJ(runes[i]) && canFollowZWJ(runes[i+1]) {
		n, _, _ := elementLen(runes[i+1:])
		if n == 0 {
			break
		}
		i += 1 + n
		joined = true
	}
	if joined {
		typ = SequenceZWJ
	}
	return newSequence(runes[:i], typ, modifier), i
}

// canFollowZWJ reports whether r can start the element after a joiner.
// Joiners, selectors, tags and bare skin tones cannot.
func canFollowZWJ(r rune) bool {
	return isEmojiBase(r) && !IsEmojiModifier(r)
}

// elementLen parses one ZWJ element: an emoji, an optional U+FE0F and an
// optional skin tone on a modifier base. A text selector rejects it.
func elementLen(runes []rune) (int, SequenceType, rune) {
	if len(runes) == 0 || !isEmojiBase(runes[0]) {
		return 0, SequenceSimple, 0
	}
	base := runes[0]
	i := 1
	typ := SequenceSimple
	var modifier rune

	if i < len(runes) && IsVariationSelector(runes[i]) {
		if IsTextPresentation(runes[i]) {
			return 0, SequenceSimple, 0
		}
		typ = SequencePresentation
		i++
	}
	if i < len(runes) && IsEmojiModifier(runes[i]) && IsEmojiModifierBase(base) {
		modifier = runes[i]
		typ = SequenceModified
		i++
	}
	return i, typ, modifier
}

// Normalize removes text variation selectors, emoji variation selectors
// on characters that already default to emoji, and skin tone modifiers on
// characters that cannot take one.
func Normalize(seq Sequence) Sequence {
	if len(seq.Codepoints) == 0 {
		return seq
	}

	normalized := make([]rune, 0, len(seq.Codepoints))
	prevBase := rune(0)
	for _, r := range seq.Codepoints {
		switch {
		case IsTextPresentation(r):
			continue
		case IsEmojiVariation(r):
			if needsEmojiSelector(prevBase) {
				normalized = append(normalized, r)
			}
			continue
		case IsEmojiModifier(r) && !IsEmojiModifierBase(prevBase):
			continue
		}

		normalized = append(normalized, r)
		if !IsZWJ(r) && !IsEmojiModifier(r) {
			prevBase = r
		}
	}

	out := seq
	out.Codepoints = normalized
	return out
}

// needsEmojiSelector reports whether r needs U+FE0F to display as emoji.
func needsEmojiSelector(r rune) bool {
	return isEmojiBase(r) && !IsEmojiPresentation(r)
}

// IsValidSequence returns true if seq is well-formed for its Type.
func IsValidSequence(seq Sequence) bool {
	cps := seq.Codepoints
	if len(cps) == 0 {
		return false
	}
	last := cps[len(cps)-1]

	switch seq.Type {
	case SequenceSimple:
		return len(cps) == 1 && IsEmoji(cps[0])
	case SequenceFlag:
		return len(cps) == 2 && IsRegionalIndicator(cps[0]) && IsRegionalIndicator(cps[1])
	case SequenceKeycap:
		return len(cps) >= 2 && len(cps) <= 3 && IsKeycapBase(cps[0]) && IsCombiningEnclosingKeycap(last)
	case SequenceTag:
		if len(cps) < 3 || !IsBlackFlag(cps[0]) || !IsCancelTag(last) {
			return false
		}
		for _, r := range cps[1 : len(cps)-1] {
			if !IsTagCharacter(r) {
				return false
			}
		}
		return true
	case SequenceModified:
		return len(cps) >= 2 && IsEmojiModifierBase(cps[0]) && seq.HasModifier()
	case SequenceZWJ:
		parsed, n := parseSequenceAt(cps)
		return n == len(cps) && parsed.Type == SequenceZWJ
	case SequencePresentation:
		return containsRune(cps, IsVariationSelector)
	default:
		return false
	}
}

func containsRune(runes []rune, pred func(rune) bool) bool {
	for _, r := range runes {
		if pred(r) {
			return true
		}
	}
	return false
}

// FlagCode returns the two-letter region code of a flag sequence, e.g.
// "US", or "" if seq is not a flag.
func FlagCode(seq Sequence) string {
	if seq.Type != SequenceFlag || len(seq.Codepoints) != 2 {
		return ""
	}
	a, b := seq.Codepoints[0], seq.Codepoints[1]
	if !IsRegionalIndicator(a) || !IsRegionalIndicator(b) {
		return ""
	}
	return string([]rune{'A' + (a - regionalA), 'A' + (b - regionalA)})
}

// TagCode returns the subdivision code of a tag sequence, e.g. "gbsct" for
// Scotland, or "" if seq is not a tag sequence.
func TagCode(seq Sequence) string {
	if seq.Type != SequenceTag || len(seq.Codepoints) < 3 {
		return ""
	}
	inner := seq.Codepoints[1 : len(seq.Codepoints)-1]
	code := make([]rune, 0, len(inner))
	for _, r := range inner {
		if !IsTagCharacter(r) {
			return ""
		}
		code = append(code, r-tagBase)
	}
	return string(code)
}
