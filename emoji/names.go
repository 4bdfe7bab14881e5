package emoji

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Names returns the Unicode character name of each code point in s, e.g.
// ["WAVING HAND SIGN", "EMOJI MODIFIER FITZPATRICK TYPE-4"].
func (s Sequence) Names() []string {
	names := make([]string, len(s.Codepoints))
	for i, r := range s.Codepoints {
		names[i] = Name(r)
	}
	return names
}

// Name returns the Unicode character name of r. Code points without a name
// are reported as "U+XXXX".
func Name(r rune) string {
	if name := runenames.Name(r); name != "" && !strings.HasPrefix(name, "<") {
		return name
	}
	return formatCodePoint(r)
}

func formatCodePoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
