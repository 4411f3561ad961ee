// Package taxonomy implements the taxonomy data model: validated
// identifiers, slash-separated paths, titles, and the grouping of flat
// entry lists into sections and items.
package taxonomy

import (
	"fmt"
	"strings"
)

// PathSeparator joins identifiers into a full taxonomy path.
const PathSeparator = "/"

// ValidateIdentifier checks that s is a usable taxonomy identifier:
// non-empty, kebab-case, and without a slash.
func ValidateIdentifier(s string) error {
	if s == "" {
		return fmt.Errorf("empty identifier")
	}
	if strings.Contains(s, PathSeparator) {
		return fmt.Errorf("identifier %q contains a slash", s)
	}
	if !isKebabCase(s) {
		return fmt.Errorf("identifier %q is not kebab-case", s)
	}
	return nil
}

func isKebabCase(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
