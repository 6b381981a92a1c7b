// Package config manages user-level settings stored at ~/.bootforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the model and timeout used for code generation.
package config
