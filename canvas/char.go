package canvas

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// cellWidth measures runes independently of the user's locale so that
// ambiguous-width box drawing characters count as one cell everywhere.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// ValidChar reports whether r can occupy exactly one grid cell:
// it must be printable and exactly one terminal column wide.
func ValidChar(r rune) bool {
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return false
	}
	return cellWidth.RuneWidth(r) == 1
}

// ParseChar converts user input such as a flag value or a scene field into
// a paint character. The input is NFC-normalised first, so a decomposed
// "e" + U+0301 becomes the single rune "é".
func ParseChar(s string) (rune, error) {
	s = norm.NFC.String(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidChar)
	}
	if n := uniseg.GraphemeClusterCount(s); n != 1 {
		return 0, fmt.Errorf("%w: %q has %d characters, want 1", ErrInvalidChar, s, n)
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("%w: %q needs more than one code point", ErrInvalidChar, s)
	}
	if !ValidChar(r) {
		return 0, fmt.Errorf("%w: %q is not a single-cell printable character", ErrInvalidChar, s)
	}
	return r, nil
}
