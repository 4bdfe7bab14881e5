package emoji

import "unicode"

// Code points with special roles in emoji sequences.
const (
	zwj             = 0x200D
	keycapMark      = 0x20E3
	textSelector    = 0xFE0E
	emojiSelector   = 0xFE0F
	blackFlag       = 0x1F3F4
	regionalA       = 0x1F1E6
	cancelTag       = 0xE007F
	tagBase         = 0xE0000
	firstSkinTone   = 0x1F3FB
	lastSkinTone    = 0x1F3FF
	firstTagChar    = 0xE0020
	lastTagChar     = 0xE007E
	lastRegionalInd = 0x1F1FF
)

// emojiPresentation holds characters with Emoji_Presentation=Yes,
// grouped by block.
var emojiPresentation = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F02F, Stride: 1}, // Mahjong tiles
		{Lo: 0x1F0A0, Hi: 0x1F0FF, Stride: 1}, // Playing cards
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // Regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // Misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // Emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // Transport and map
		{Lo: 0x1F900, Hi: 0x1FAFF, Stride: 1}, // Supplemental, Extended-A and -B
	},
}

// textPresentationEmoji holds characters that are emoji but default to text
// display (Emoji=Yes, Emoji_Presentation=No).
var textPresentationEmoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A9, Hi: 0x00AE, Stride: 5}, // copyright, registered
		{Lo: 0x203C, Hi: 0x2049, Stride: 13},
		{Lo: 0x2122, Hi: 0x2139, Stride: 23},
		{Lo: 0x2194, Hi: 0x2199, Stride: 1},
		{Lo: 0x21A9, Hi: 0x21AA, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23F3, Stride: 1},
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1},
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1},
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // Misc symbols
		{Lo: 0x2702, Hi: 0x27B0, Stride: 1}, // Dingbats
		{Lo: 0x27BF, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B55, Stride: 5},
		{Lo: 0x3030, Hi: 0x303D, Stride: 13},
		{Lo: 0x3297, Hi: 0x3299, Stride: 2},
	},
	LatinOffset: 1,
}

// emojiComponent holds characters that only appear inside sequences.
var emojiComponent = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: zwj, Hi: zwj, Stride: 1},
		{Lo: keycapMark, Hi: keycapMark, Stride: 1},
		{Lo: textSelector, Hi: emojiSelector, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: regionalA, Hi: lastRegionalInd, Stride: 1},
		{Lo: firstSkinTone, Hi: lastSkinTone, Stride: 1},
		{Lo: firstTagChar, Hi: cancelTag, Stride: 1},
	},
}

// modifierBase holds people, body parts and activities that accept a skin
// tone modifier.
var modifierBase = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x261D, Hi: 0x261D, Stride: 1}, // index pointing up
		{Lo: 0x26F9, Hi: 0x26F9, Stride: 1}, // person bouncing ball
		{Lo: 0x270A, Hi: 0x270D, Stride: 1}, // fists, writing hand
	},
	R32: []unicode.Range32{
		{Lo: 0x1F385, Hi: 0x1F385, Stride: 1},
		{Lo: 0x1F3C2, Hi: 0x1F3C4, Stride: 1},
		{Lo: 0x1F3C7, Hi: 0x1F3C7, Stride: 1},
		{Lo: 0x1F3CA, Hi: 0x1F3CC, Stride: 1},
		{Lo: 0x1F442, Hi: 0x1F443, Stride: 1},
		{Lo: 0x1F446, Hi: 0x1F450, Stride: 1}, // hand gestures
		{Lo: 0x1F466, Hi: 0x1F469, Stride: 1}, // boy, girl, man, woman
		{Lo: 0x1F46E, Hi: 0x1F478, Stride: 1},
		{Lo: 0x1F47C, Hi: 0x1F47C, Stride: 1},
		{Lo: 0x1F481, Hi: 0x1F483, Stride: 1},
		{Lo: 0x1F485, Hi: 0x1F487, Stride: 1},
		{Lo: 0x1F4AA, Hi: 0x1F4AA, Stride: 1},
		{Lo: 0x1F574, Hi: 0x1F575, Stride: 1},
		{Lo: 0x1F57A, Hi: 0x1F57A, Stride: 1},
		{Lo: 0x1F590, Hi: 0x1F590, Stride: 1},
		{Lo: 0x1F595, Hi: 0x1F596, Stride: 1},
		{Lo: 0x1F645, Hi: 0x1F647, Stride: 1},
		{Lo: 0x1F64B, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F6A3, Hi: 0x1F6A3, Stride: 1},
		{Lo: 0x1F6B4, Hi: 0x1F6B6, Stride: 1},
		{Lo: 0x1F6C0, Hi: 0x1F6C0, Stride: 1},
		{Lo: 0x1F6CC, Hi: 0x1F6CC, Stride: 1},
		{Lo: 0x1F90C, Hi: 0x1F90C, Stride: 1},
		{Lo: 0x1F90F, Hi: 0x1F90F, Stride: 1},
		{Lo: 0x1F918, Hi: 0x1F91F, Stride: 1},
		{Lo: 0x1F926, Hi: 0x1F926, Stride: 1},
		{Lo: 0x1F930, Hi: 0x1F939, Stride: 1},
		{Lo: 0x1F93C, Hi: 0x1F93E, Stride: 1},
		{Lo: 0x1F977, Hi: 0x1F977, Stride: 1},
		{Lo: 0x1F9B5, Hi: 0x1F9B6, Stride: 1},
		{Lo: 0x1F9B8, Hi: 0x1F9B9, Stride: 1},
		{Lo: 0x1F9BB, Hi: 0x1F9BB, Stride: 1},
		{Lo: 0x1F9CD, Hi: 0x1F9CF, Stride: 1},
		{Lo: 0x1F9D1, Hi: 0x1F9DD, Stride: 1},
		{Lo: 0x1FAC3, Hi: 0x1FAC5, Stride: 1},
		{Lo: 0x1FAF0, Hi: 0x1FAF8, Stride: 1},
	},
}

// IsEmoji returns true if the rune is an emoji character or an emoji
// sequence component.
func IsEmoji(r rune) bool {
	return isEmojiBase(r) || unicode.Is(emojiComponent, r)
}

// IsEmojiPresentation returns true if the rune defaults to emoji presentation
// without requiring U+FE0F.
func IsEmojiPresentation(r rune) bool {
	return unicode.Is(emojiPresentation, r)
}

// IsEmojiModifier returns true for the Fitzpatrick skin tone modifiers
// U+1F3FB - U+1F3FF.
func IsEmojiModifier(r rune) bool {
	return r >= firstSkinTone && r <= lastSkinTone
}

// IsEmojiModifierBase returns true if the rune can take a skin tone modifier.
func IsEmojiModifierBase(r rune) bool {
	return unicode.Is(modifierBase, r)
}

// IsZWJ returns true for Zero-Width Joiner (U+200D).
func IsZWJ(r rune) bool {
	return r == zwj
}

// IsRegionalIndicator returns true for Regional Indicator letters A-Z.
// Two of them form a flag (U+1F1FA U+1F1F8 = US).
func IsRegionalIndicator(r rune) bool {
	return r >= regionalA && r <= lastRegionalInd
}

// IsVariationSelector returns true for U+FE0E (text) and U+FE0F (emoji).
func IsVariationSelector(r rune) bool {
	return r == textSelector || r == emojiSelector
}

// IsTextPresentation returns true for the text variation selector U+FE0E.
func IsTextPresentation(r rune) bool {
	return r == textSelector
}

// IsEmojiVariation returns true for the emoji variation selector U+FE0F.
func IsEmojiVariation(r rune) bool {
	return r == emojiSelector
}

// IsKeycapBase returns true for 0-9, # and *.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsCombiningEnclosingKeycap returns true for U+20E3.
func IsCombiningEnclosingKeycap(r rune) bool {
	return r == keycapMark
}

// IsTagCharacter returns true for tag characters U+E0020 - U+E007E.
func IsTagCharacter(r rune) bool {
	return r >= firstTagChar && r <= lastTagChar
}

// IsCancelTag returns true for U+E007F, which ends a tag sequence.
func IsCancelTag(r rune) bool {
	return r == cancelTag
}

// IsBlackFlag returns true for U+1F3F4, the base of subdivision flags.
func IsBlackFlag(r rune) bool {
	return r == blackFlag
}

// isEmojiBase returns true if the rune can start an emoji sequence.
func isEmojiBase(r rune) bool {
	return unicode.Is(emojiPresentation, r) || unicode.Is(textPresentationEmoji, r)
}
