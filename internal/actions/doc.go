// Package actions loads action files. An action file holds an ordered
// `actions:` list in YAML or TOML; each entry sets exactly one of define,
// vars, generate, replace, pom-update or inject-maven-dependency. Files are
// validated against an embedded JSON schema before they are decoded.
package actions
