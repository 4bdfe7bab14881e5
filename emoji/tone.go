package emoji

// SkinTone is a Fitzpatrick skin tone modifier.
type SkinTone int

const (
	// SkinToneNone indicates no skin tone modifier.
	SkinToneNone SkinTone = iota
	// SkinToneLight is type I-II, U+1F3FB.
	SkinToneLight
	// SkinToneMediumLight is type III, U+1F3FC.
	SkinToneMediumLight
	// SkinToneMedium is type IV, U+1F3FD.
	SkinToneMedium
	// SkinToneMediumDark is type V, U+1F3FE.
	SkinToneMediumDark
	// SkinToneDark is type VI, U+1F3FF.
	SkinToneDark
)

var skinToneNames = [...]string{
	SkinToneNone:        "None",
	SkinToneLight:       "Light",
	SkinToneMediumLight: "MediumLight",
	SkinToneMedium:      "Medium",
	SkinToneMediumDark:  "MediumDark",
	SkinToneDark:        "Dark",
}

func (t SkinTone) String() string {
	if t >= 0 && int(t) < len(skinToneNames) {
		return skinToneNames[t]
	}
	return unknownName
}

// SkinToneOf returns the skin tone of a modifier rune, or SkinToneNone.
func SkinToneOf(r rune) SkinTone {
	if !IsEmojiModifier(r) {
		return SkinToneNone
	}
	return SkinToneLight + SkinTone(r-firstSkinTone)
}

// SkinToneRune returns the modifier rune for tone, or 0 for SkinToneNone
// and unknown values.
func SkinToneRune(tone SkinTone) rune {
	if tone < SkinToneLight || tone > SkinToneDark {
		return 0
	}
	return firstSkinTone + rune(tone-SkinToneLight)
}

// SkinTone returns the skin tone applied to the base of s.
func (s Sequence) SkinTone() SkinTone {
	return SkinToneOf(s.Modifier)
}

// WithSkinTone returns s with every modifier base set to tone. SkinToneNone
// removes existing modifiers. Flags, keycaps and tag sequences, and
// sequences without a modifier base, are returned unchanged.
func (s Sequence) WithSkinTone(tone SkinTone) Sequence {
	switch s.Type {
	case SequenceFlag, SequenceKeycap, SequenceTag:
		return s
	}
	if !containsRune(s.Codepoints, IsEmojiModifierBase) {
		return s
	}

	mod := SkinToneRune(tone)
	out := make([]rune, 0, len(s.Codepoints)+2)
	for i, r := range s.Codepoints {
		if IsEmojiModifier(r) {
			continue
		}
		// A modifier replaces the presentation selector of its base.
		if mod != 0 && IsEmojiVariation(r) && i > 0 && IsEmojiModifierBase(s.Codepoints[i-1]) {
			continue
		}
		out = append(out, r)
		if mod != 0 && IsEmojiModifierBase(r) {
			out = append(out, mod)
		}
	}

	seq, n := parseSequenceAt(out)
	if n != len(out) {
		return s
	}
	return seq
}
