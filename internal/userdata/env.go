package userdata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadVendorEnv reads <userdata>/env/<vendor>.env. A missing file yields an
// empty map.
func LoadVendorEnv(vendor string) (map[string]string, error) {
	path, err := GetVendorEnvPath(vendor)
	if err != nil {
		return nil, err
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return env, nil
}

// LookupEnv returns key from the process environment, falling back to the
// vendor env file.
func LookupEnv(vendor, key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	env, err := LoadVendorEnv(vendor)
	if err != nil {
		return "", err
	}
	return env[key], nil
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values with 4+ chars show the first 4 chars + "***".
// Values with fewer than 4 chars are fully redacted as "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
