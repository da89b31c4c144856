package display

import (
	"strings"

	"github.com/rly0nheart/cerium/pkg/models"
)

// quoteSpecials are the characters that trigger quoting in auto mode:
// whitespace, shell metacharacters, and glob characters
const quoteSpecials = "\\'\"`$&|;<>()[]{}*?!#~%^"

// Quote applies the configured quote style to a display name.
//
// Symlink names of the form "name ⇒ target" are quoted on each side
// independently, leaving the arrow bare. In auto mode, names that need no
// quotes gain one leading alignment space when a quoted sibling exists, so
// quoted and unquoted names line up in the same column.
func Quote(text, style string, addAlignmentSpace bool) string {
	switch style {
	case "single":
		return quoteSides(text, func(s string) string { return wrap(s, '\'') })
	case "double":
		return quoteSides(text, func(s string) string { return wrap(s, '"') })
	case "never":
		return text
	}

	quoted := quoteSides(text, func(s string) string {
		if !hasSpecialChars(s) {
			return s
		}
		return wrap(s, '\'')
	})
	if addAlignmentSpace && !strings.HasPrefix(quoted, "'") {
		return " " + quoted
	}
	return quoted
}

// IsQuotable reports whether auto mode would quote this name.
// Symlink display names are quotable when either side is.
func IsQuotable(text string) bool {
	if name, target, ok := models.SplitSymlink(text); ok {
		return hasSpecialChars(name) || hasSpecialChars(target)
	}
	return hasSpecialChars(text)
}

// quoteSides applies a quoting function to both sides of a symlink arrow,
// or to the whole text when there is no arrow
func quoteSides(text string, quote func(string) string) string {
	if name, target, ok := models.SplitSymlink(text); ok {
		return quote(name) + models.SymlinkArrow + quote(target)
	}
	return quote(text)
}

// hasSpecialChars reports whether the text contains whitespace or shell
// special characters
func hasSpecialChars(text string) bool {
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || strings.ContainsRune(quoteSpecials, r) {
			return true
		}
	}
	return false
}

// wrap surrounds text with the quote character, escaping occurrences of
// the same character inside
func wrap(text string, quote byte) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(text); i++ {
		if text[i] == quote {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}
	b.WriteByte(quote)
	return b.String()
}
