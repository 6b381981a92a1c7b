package artifact

import (
	"strings"
	"testing"
)

func TestRewriteJavaxImports(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two segment", "import javax.persistence.Entity;", "import jakarta.persistence.Entity;"},
		{"static import", "import static javax.validation.constraints.NotNull;", "import static jakarta.validation.constraints.NotNull;"},
		{"not at line start", "  import javax.persistence.Id;", "  import javax.persistence.Id;"},
		{"prose mention", "Use javax.persistence.Entity here", "Use javax.persistence.Entity here"},
		{"single segment untouched", "import javax.Foo;", "import javax.Foo;"},
		{"multiline", "package a;\nimport javax.persistence.Id;\nimport java.util.List;", "package a;\nimport jakarta.persistence.Id;\nimport java.util.List;"},
		{"case sensitive", "Import javax.persistence.Id;", "Import javax.persistence.Id;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewriteJavaxImports(tt.in); got != tt.want {
				t.Errorf("RewriteJavaxImports(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewriteJavaxImports_Idempotent(t *testing.T) {
	inputs := []string{
		"import javax.persistence.Entity;\nimport javax.persistence.Id;",
		"import javax.a.b; import javax.c.d;",
		"import jakarta.persistence.Entity;",
		"no imports at all",
	}
	for _, in := range inputs {
		once := RewriteJavaxImports(in)
		twice := RewriteJavaxImports(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalize_PrefixesDisclaimer(t *testing.T) {
	got := Normalize("import javax.persistence.Entity;")
	if !strings.HasPrefix(got, Disclaimer) {
		t.Errorf("missing disclaimer: %q", got)
	}
	if !strings.HasSuffix(got, "import jakarta.persistence.Entity;") {
		t.Errorf("import not rewritten: %q", got)
	}
}
