package merge

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bootforge/bootforge/internal/artifact"
	"github.com/bootforge/bootforge/internal/javasrc"
	"github.com/bootforge/bootforge/internal/terminal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInjector struct {
	fragments []string
	err       error
}

func (f *fakeInjector) InjectDependencies(_ string, fragment string, _ terminal.Messenger) error {
	f.fragments = append(f.fragments, fragment)
	return f.err
}

const fallback = "com.example.demo.ai.jpa"

func newWriter(t *testing.T, policy Policy, deps DependencyInjector) (*Writer, *terminal.Recorder) {
	t.Helper()
	rec := &terminal.Recorder{}
	return &Writer{
		ProjectDir:      t.TempDir(),
		FallbackPackage: fallback,
		Policy:          policy,
		Deps:            deps,
		Out:             rec,
		Log:             zerolog.Nop(),
	}, rec
}

func TestWrite_SourceUsesDeclaredPackage(t *testing.T) {
	w, _ := newWriter(t, ContinueOnError, &fakeInjector{})
	src := "package com.acme.orders;\n\npublic class Order {}\n"

	res, err := w.Write([]artifact.ProjectArtifact{{Kind: artifact.KindSourceCode, Text: src}})
	require.NoError(t, err)

	want := filepath.Join(w.ProjectDir, "src", "main", "java", "com", "acme", "orders", "Order.java")
	require.Equal(t, []string{want}, res.Written)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}

func TestWrite_TestUsesFallbackPackage(t *testing.T) {
	w, _ := newWriter(t, ContinueOnError, &fakeInjector{})
	src := "import org.junit.jupiter.api.Test;\n\nclass OrderTest {\n  @Test void ok() {}\n}\n"

	_, err := w.Write([]artifact.ProjectArtifact{{Kind: artifact.KindTestCode, Text: src}})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(w.ProjectDir, "src", "test", "java", "com", "example", "demo", "ai", "jpa", "OrderTest.java"))
}

func TestWrite_NeverOverwrites(t *testing.T) {
	w, _ := newWriter(t, ContinueOnError, &fakeInjector{})
	dir := filepath.Join(w.ProjectDir, "src", "main", "java", "com", "acme")
	require.NoError(t, os.MkdirAll(dir, 0755))
	existing := filepath.Join(dir, "Order.java")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0644))

	_, err := w.Write([]artifact.ProjectArtifact{{
		Kind: artifact.KindSourceCode,
		Text: "package com.acme;\nclass Order {}\n",
	}})
	require.Error(t, err)

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, artifact.KindSourceCode, we.Kind)
	assert.ErrorIs(t, err, fs.ErrExist)

	data, _ := os.ReadFile(existing)
	assert.Equal(t, "original", string(data))
}

func TestWrite_MainClassAndDependenciesOnly(t *testing.T) {
	deps := &fakeInjector{}
	w, rec := newWriter(t, ContinueOnError, deps)
	frag := "<dependency><groupId>org.postgresql</groupId><artifactId>postgresql</artifactId></dependency>"

	res, err := w.Write([]artifact.ProjectArtifact{
		{Kind: artifact.KindMainClass, Text: "package com.acme;\n@SpringBootApplication\nclass App {}\n"},
		{Kind: artifact.KindMavenDependencies, Text: frag},
	})
	require.NoError(t, err)

	assert.Empty(t, res.Written)
	assert.Equal(t, []artifact.Kind{artifact.KindMainClass}, res.Skipped)
	assert.Equal(t, []string{frag}, deps.fragments)
	assert.True(t, rec.Contains("Skipping MAIN_CLASS"))
	assert.NoDirExists(t, filepath.Join(w.ProjectDir, "src", "main", "java"))
}

func TestWrite_ApplicationPropertiesSkipped(t *testing.T) {
	w, _ := newWriter(t, ContinueOnError, &fakeInjector{})

	res, err := w.Write([]artifact.ProjectArtifact{{Kind: artifact.KindApplicationProperties, Text: "server.port=8081"}})
	require.NoError(t, err)
	assert.Equal(t, []artifact.Kind{artifact.KindApplicationProperties}, res.Skipped)
}

func failingBatch() []artifact.ProjectArtifact {
	return []artifact.ProjectArtifact{
		{Kind: artifact.KindSourceCode, Text: "// nothing declared here\n"},
		{Kind: artifact.KindMavenDependencies, Text: "<dependency/>"},
		{Kind: artifact.KindSourceCode, Text: "package com.acme;\npublic enum Status { OPEN }\n"},
	}
}

func TestWrite_ContinueOnErrorIsolatesFailures(t *testing.T) {
	deps := &fakeInjector{err: errors.New("pom is locked")}
	w, rec := newWriter(t, ContinueOnError, deps)

	res, err := w.Write(failingBatch())
	require.Error(t, err)

	assert.ErrorIs(t, err, javasrc.ErrNoTypeName)
	assert.ErrorContains(t, err, "pom is locked")
	assert.Equal(t, 2, res.Failed)
	assert.Len(t, res.Written, 1)
	assert.FileExists(t, filepath.Join(w.ProjectDir, "src", "main", "java", "com", "acme", "Status.java"))
	assert.Len(t, rec.Warnings, 2)
}

func TestWrite_AbortOnErrorStopsAtFirstFailure(t *testing.T) {
	deps := &fakeInjector{}
	w, _ := newWriter(t, AbortOnError, deps)

	res, err := w.Write(failingBatch())
	require.Error(t, err)

	assert.ErrorIs(t, err, javasrc.ErrNoTypeName)
	assert.Equal(t, 1, res.Failed)
	assert.Empty(t, res.Written)
	assert.Empty(t, deps.fragments)
	assert.NoDirExists(t, filepath.Join(w.ProjectDir, "src"))
}

func TestWrite_InvalidFallbackFailsBeforeWriting(t *testing.T) {
	w, _ := newWriter(t, ContinueOnError, &fakeInjector{})
	w.FallbackPackage = "com.example.1bad"

	_, err := w.Write([]artifact.ProjectArtifact{{Kind: artifact.KindSourceCode, Text: "class A {}"}})
	assert.ErrorIs(t, err, javasrc.ErrPackageResolution)
	assert.NoDirExists(t, filepath.Join(w.ProjectDir, "src"))
}

func TestWrite_MissingInjector(t *testing.T) {
	w, _ := newWriter(t, ContinueOnError, nil)

	_, err := w.Write([]artifact.ProjectArtifact{{Kind: artifact.KindMavenDependencies, Text: "<dependency/>"}})
	var we *WriteError
	assert.ErrorAs(t, err, &we)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "continue-on-error", ContinueOnError.String())
	assert.Equal(t, "abort-on-error", AbortOnError.String())
}
