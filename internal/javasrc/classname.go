package javasrc

import (
	"errors"
	"regexp"
)

// ErrNoTypeName is returned when an artifact declares no class, interface,
// annotation type or enum.
var ErrNoTypeName = errors.New("no type name found")

// Go's RE2 has no lookbehind, so each pattern captures the identifier in
// group 1. Order matters: the first pattern with a match anywhere wins.
var typeNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bclass\s(\w+)`),
	regexp.MustCompile(`\binterface\s(\w+)`),
	regexp.MustCompile(`@interface\s(\w+)`),
	regexp.MustCompile(`\benum\s(\w+)`),
}

// ExtractTypeName returns the primary type name declared in code and whether
// one was found.
func ExtractTypeName(code string) (string, bool) {
	for _, p := range typeNamePatterns {
		if m := p.FindStringSubmatch(code); m != nil {
			return m[1], true
		}
	}
	return "", false
}
