package terminal

import (
	"bytes"
	"testing"
)

func TestWriter_Unstyled(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, false)
	m.Printf("Generated %s", "Foo.java")
	m.Warnf("Skipping %d", 1)

	want := "Generated Foo.java\nSkipping 1\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Printf("one")
	r.Warnf("careful %s", "now")

	if len(r.Lines) != 2 {
		t.Fatalf("Lines = %v, want 2 entries", r.Lines)
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != "careful now" {
		t.Errorf("Warnings = %v", r.Warnings)
	}
	if !r.Contains("careful") {
		t.Error("Contains(careful) = false")
	}
}
