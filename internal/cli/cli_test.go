package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns stdout. Flag variables
// are reset first since cobra keeps them between runs.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	profileName, profileShowJSON = "", false
	roleName = ""
	actionPath, actionRole, actionTemplateRoot, actionSet, actionNoTTY = "", "", "", nil, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func sandbox(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("BOOTFORGE_HOME", home)
	t.Setenv("BOOTFORGE_USERDATA", filepath.Join(home, "userdata"))
	return home
}

func TestParseSetArgs(t *testing.T) {
	got, err := parseSetArgs([]string{"a=1", " b = x=y "})
	if err != nil {
		t.Fatalf("parseSetArgs() error: %v", err)
	}
	if len(got) != 2 || got[0] != [2]string{"a", "1"} || got[1] != [2]string{"b", "x=y"} {
		t.Errorf("parseSetArgs() = %v", got)
	}

	for _, bad := range []string{"novalue", "=v"} {
		if _, err := parseSetArgs([]string{bad}); err == nil {
			t.Errorf("parseSetArgs(%q) expected error", bad)
		}
	}
}

func TestResolveProjectDir(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveProjectDir(dir)
	if err != nil || got != dir {
		t.Errorf("resolveProjectDir(%q) = %q, %v", dir, got, err)
	}

	file := filepath.Join(dir, "pom.xml")
	os.WriteFile(file, nil, 0644)
	if _, err := resolveProjectDir(file); err == nil {
		t.Error("expected error for a file path")
	}
	if _, err := resolveProjectDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestProfileCommands(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "", "profile", "add", "dev")
	if err != nil || !strings.Contains(out, "YAML file for profile 'dev' created.") {
		t.Fatalf("profile add = %q, %v", out, err)
	}
	out, _ = execute(t, "", "profile", "add", "dev")
	if !strings.Contains(out, "already exists") {
		t.Errorf("second add = %q", out)
	}

	if _, err := execute(t, "", "profile", "set", "port", "8080", "--name", "dev"); err != nil {
		t.Fatalf("profile set: %v", err)
	}
	out, _ = execute(t, "", "profile", "get", "port", "--name", "dev")
	if strings.TrimSpace(out) != "8080" {
		t.Errorf("profile get = %q", out)
	}
	out, _ = execute(t, "", "profile", "get", "missing", "--name", "dev")
	if !strings.Contains(out, "Key 'missing' not found in profile 'dev'.") {
		t.Errorf("profile get missing = %q", out)
	}

	out, _ = execute(t, "", "profile", "list")
	if !strings.Contains(out, "dev") {
		t.Errorf("profile list = %q", out)
	}

	out, _ = execute(t, "", "profile", "remove", "dev")
	if !strings.Contains(out, "deleted") {
		t.Errorf("profile remove = %q", out)
	}
	out, _ = execute(t, "", "profile", "get", "port", "--name", "dev")
	if !strings.Contains(out, "does not exist") {
		t.Errorf("get after remove = %q", out)
	}
}

func TestRoleCommands(t *testing.T) {
	sandbox(t)

	if _, err := execute(t, "", "role", "set", "artifact", "demo", "--role", "backend"); err != nil {
		t.Fatalf("role set: %v", err)
	}
	out, err := execute(t, "", "role", "get", "artifact", "--role", "backend")
	if err != nil || strings.TrimSpace(out) != "demo" {
		t.Errorf("role get = %q, %v", out, err)
	}
	if _, err := execute(t, "", "role", "get", "artifact"); err == nil {
		t.Error("expected error for a key missing from the default role")
	}
	out, _ = execute(t, "", "role", "list")
	if !strings.Contains(out, "backend") {
		t.Errorf("role list = %q", out)
	}
}

func TestInitCommand(t *testing.T) {
	home := sandbox(t)

	if _, err := execute(t, "", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, p := range []string{"env/ai.env", "roles", "profiles/cli.yml"} {
		if _, err := os.Stat(filepath.Join(home, "userdata", p)); err != nil {
			t.Errorf("%s not created: %v", p, err)
		}
	}
}

func TestConfigGet_RedactsAPIKey(t *testing.T) {
	sandbox(t)
	t.Setenv("BOOTFORGE_AI_API_KEY", "abcdefgh")

	out, err := execute(t, "", "config", "get", "ai.api-key")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out) != "abcd***" {
		t.Errorf("config get = %q, want redacted", out)
	}
}

func TestActionRun(t *testing.T) {
	sandbox(t)
	project := t.TempDir()
	actionsDir := t.TempDir()
	os.WriteFile(filepath.Join(actionsDir, "hello.tmpl"), []byte("Hello {{name}} from {{team}}\n"), 0644)
	file := filepath.Join(actionsDir, "actions.yaml")
	os.WriteFile(file, []byte(`actions:
  - vars:
      questions:
        - name: team
          label: Team?
          type: input
  - generate:
      to: greetings/{{name}}.txt
      from: hello.tmpl
`), 0644)

	out, err := execute(t, "platform\n", "action", "run", file, "--path", project, "--set", "name=ada")
	if err != nil {
		t.Fatalf("action run: %v\n%s", err, out)
	}

	data, err := os.ReadFile(filepath.Join(project, "greetings", "ada.txt"))
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	if string(data) != "Hello ada from platform\n" {
		t.Errorf("generated = %q", data)
	}

	out, _ = execute(t, "", "role", "get", "team")
	if strings.TrimSpace(out) != "platform" {
		t.Errorf("answer not persisted to the default role: %q", out)
	}
}

func TestActionValidate_RejectsInvalidFile(t *testing.T) {
	sandbox(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(file, []byte("actions:\n  - replace:\n      path: a.txt\n"), 0644)

	if _, err := execute(t, "", "action", "validate", file); err == nil {
		t.Error("expected validation error")
	}
}

func TestVersionJSON(t *testing.T) {
	sandbox(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc", "today"
	versionShort, versionJSON = false, false

	out, err := execute(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	for _, want := range []string{`"version": "1.2.3"`, `"commit": "abc"`, `"platform": "`} {
		if !strings.Contains(out, want) {
			t.Errorf("version --json missing %s: %s", want, out)
		}
	}
}
