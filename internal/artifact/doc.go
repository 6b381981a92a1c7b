// Package artifact turns a generated markdown response into an ordered list
// of typed project artifacts. It parses fenced code blocks, classifies each
// one by its info string and content, and applies the import-namespace
// normalization that runs before classification.
package artifact
