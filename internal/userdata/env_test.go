package userdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVendorEnv(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("BOOTFORGE_USERDATA", tmp)
	envDir := filepath.Join(tmp, "env")
	if err := os.MkdirAll(envDir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "# comment\nBOOTFORGE_AI_API_KEY=abc123\nQUOTED=\"hello world\"\n"
	if err := os.WriteFile(filepath.Join(envDir, "ai.env"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	env, err := LoadVendorEnv("ai")
	if err != nil {
		t.Fatalf("LoadVendorEnv() error: %v", err)
	}
	if env["BOOTFORGE_AI_API_KEY"] != "abc123" {
		t.Errorf("API key = %q", env["BOOTFORGE_AI_API_KEY"])
	}
	if env["QUOTED"] != "hello world" {
		t.Errorf("QUOTED = %q", env["QUOTED"])
	}
}

func TestLoadVendorEnv_Missing(t *testing.T) {
	t.Setenv("BOOTFORGE_USERDATA", t.TempDir())

	env, err := LoadVendorEnv("nope")
	if err != nil {
		t.Fatalf("LoadVendorEnv() error: %v", err)
	}
	if len(env) != 0 {
		t.Errorf("expected empty map, got %v", env)
	}
}

func TestLookupEnv_ProcessWins(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("BOOTFORGE_USERDATA", tmp)
	_ = os.MkdirAll(filepath.Join(tmp, "env"), 0700)
	_ = os.WriteFile(filepath.Join(tmp, "env", "ai.env"), []byte("MY_KEY=file\nOTHER=fromfile\n"), 0600)
	t.Setenv("MY_KEY", "process")

	if v, _ := LookupEnv("ai", "MY_KEY"); v != "process" {
		t.Errorf("MY_KEY = %q, want process", v)
	}
	if v, _ := LookupEnv("ai", "OTHER"); v != "fromfile" {
		t.Errorf("OTHER = %q, want fromfile", v)
	}
}

func TestRedactValue(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"ai.api-key", "sk-abcdef", "sk-a***"},
		{"GITHUB_TOKEN", "abc", "***"},
		{"ai.model", "gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := RedactValue(tt.key, tt.value); got != tt.want {
			t.Errorf("RedactValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}
