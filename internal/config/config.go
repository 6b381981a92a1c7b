package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bootforge/bootforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyAIModel       = "ai.model"
	KeyAITemperature = "ai.temperature"
	KeyAITimeout     = "ai.timeout"
	KeyAIAPIKey      = "ai.api-key"
)

// Defaults for the generation backend.
const (
	DefaultAIModel       = "gemini-2.0-flash"
	DefaultAITemperature = 0.8
	DefaultAITimeout     = 5 * time.Minute
)

// Dir returns the path to the config directory (~/.bootforge/).
// BOOTFORGE_HOME overrides the location.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bootforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Keys map to env vars with dots and dashes replaced, e.g. ai.api-key →
// BOOTFORGE_AI_API_KEY.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyAIModel, DefaultAIModel)
	viper.SetDefault(KeyAITemperature, DefaultAITemperature)
	viper.SetDefault(KeyAITimeout, DefaultAITimeout)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// AI holds the generation backend settings.
type AI struct {
	Model       string
	Temperature float32
	Timeout     time.Duration
	APIKey      string
}

// LoadAI returns the generation settings after Load has run.
func LoadAI() AI {
	timeout := viper.GetDuration(KeyAITimeout)
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	return AI{
		Model:       viper.GetString(KeyAIModel),
		Temperature: float32(viper.GetFloat64(KeyAITemperature)),
		Timeout:     timeout,
		APIKey:      viper.GetString(KeyAIAPIKey),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
