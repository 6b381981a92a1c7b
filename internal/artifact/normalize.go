package artifact

import (
	"regexp"
	"strings"
)

// Disclaimer is prepended to every generated report.
const Disclaimer = "*Note: The code provided is just an example and may not be suitable for production use.*\n\n"

// javaxImport matches a two-segment javax import at the start of a line.
var javaxImport = regexp.MustCompile(`(?m)^(import\s+.*?)javax(\.[a-zA-Z0-9_]+\.[a-zA-Z0-9_]+)`)

// RewriteJavaxImports rewrites `import javax.a.b` to `import jakarta.a.b`.
// Only lines that start with "import" are touched. The pattern is anchored
// per line, so a line holding several imports needs more than one pass; the
// loop runs to a fixed point, which keeps the rewrite idempotent. Every pass
// removes at least one "javax", so it terminates.
func RewriteJavaxImports(text string) string {
	if !strings.Contains(text, "import") || !strings.Contains(text, "javax") {
		return text
	}
	for {
		next := javaxImport.ReplaceAllString(text, "${1}jakarta${2}")
		if next == text {
			return next
		}
		text = next
	}
}

// Normalize prefixes the disclaimer and rewrites javax imports.
func Normalize(response string) string {
	return RewriteJavaxImports(Disclaimer + response)
}
