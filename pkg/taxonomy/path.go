package taxonomy

import "strings"

// Path is a slash-joined chain of identifiers from the taxonomy root down
// to one entry, e.g. "skills/development-software/go".
type Path string

// JoinPath builds a Path from identifiers ordered root-first.
func JoinPath(identifiers ...string) Path {
	return Path(strings.Join(identifiers, PathSeparator))
}

// ParsePath validates every element of a slash-separated path.
func ParsePath(s string) (Path, error) {
	for _, part := range strings.Split(s, PathSeparator) {
		if err := ValidateIdentifier(part); err != nil {
			return "", err
		}
	}
	return Path(s), nil
}

// Name returns the last identifier of the path, "" for an empty path.
func (p Path) Name() string {
	parts := strings.Split(string(p), PathSeparator)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// Parent returns the second-to-last identifier, "" when the path has no
// parent element.
func (p Path) Parent() string {
	parts := strings.Split(string(p), PathSeparator)
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

func (p Path) String() string {
	return string(p)
}
