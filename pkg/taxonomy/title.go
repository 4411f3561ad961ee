package taxonomy

import (
	"fmt"
	"strings"
	"unicode"
)

// Small words that stay lowercase inside a title-cased phrase.
var titleSmallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "in": true, "nor": true,
	"of": true, "on": true, "or": true, "the": true, "to": true,
	"with": true,
}

// ValidateTitle checks a human-readable entry title. Leading or trailing
// whitespace is an error; a title that is not title-cased is accepted, the
// caller may warn using TitleCase for the suggestion.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) != s {
		return fmt.Errorf("title %q has preceding or trailing spaces", s)
	}
	return nil
}

// IsTitleCase reports whether s already matches its TitleCase form.
func IsTitleCase(s string) bool {
	return TitleCase(s) == s
}

// TitleCase upper-cases the first letter of each word, keeping small words
// lowercase except at the start of the phrase.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		if i > 0 && titleSmallWords[lower] {
			words[i] = lower
			continue
		}
		runes := []rune(lower)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
