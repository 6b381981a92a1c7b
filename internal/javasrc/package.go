package javasrc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrPackageResolution is returned when no usable package can be determined.
var ErrPackageResolution = errors.New("package resolution failed")

var (
	packageDecl = regexp.MustCompile(`^package\s+([a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*);`)
	dottedIdent = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)
)

// FallbackSegment sits between the root package and the project slug in the
// default package for generated code.
const FallbackSegment = "ai"

// FallbackPackage builds "<root>.ai.<slug>".
func FallbackPackage(rootPackage, slug string) string {
	return rootPackage + "." + FallbackSegment + "." + slug
}

// ResolvePackage returns the package declared on the first line of text, or
// fallback when the first line is not a package declaration. Only the first
// line is consulted. A result that is not a dotted identifier fails fast.
func ResolvePackage(text, fallback string) (string, error) {
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimRight(first, "\r")
	if m := packageDecl.FindStringSubmatch(first); m != nil {
		return m[1], nil
	}
	if !IsDottedIdentifier(fallback) {
		return "", fmt.Errorf("%w: fallback package %q is not a valid identifier", ErrPackageResolution, fallback)
	}
	return fallback, nil
}

// IsDottedIdentifier reports whether s is a dotted Java identifier.
func IsDottedIdentifier(s string) bool {
	return dottedIdent.MatchString(s)
}

// PackageDir converts a dotted package to a relative directory path.
func PackageDir(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}
