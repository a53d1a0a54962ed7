package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
}

func TestLoadManifest_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "shapes"

[build]
entry = "src/main.adze"
max_diagnostics = 7
`)
	writeFile(t, filepath.Join(root, "src", "main.adze"), "struct A {}\n")
	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, err := LoadManifest(nested)
	require.NoError(t, err)
	assert.Equal(t, root, m.Root)
	assert.Equal(t, "shapes", m.Config.Package.Name)
	assert.Equal(t, 7, m.Config.Build.MaxDiagnostics)

	entry, err := m.Entry()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "main.adze"), entry)

	gotRoot, ok, err := FindProjectRoot(nested)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, root, gotRoot)
}

func TestLoadManifest_DefaultEntry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[package]\nname = \"p\"\n")
	writeFile(t, filepath.Join(root, "main.adze"), "")

	m, err := LoadManifest(root)
	require.NoError(t, err)
	entry, err := m.Entry()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "main.adze"), entry)
	assert.Zero(t, m.Config.Build.MaxDiagnostics)
}

func TestLoadManifest_NotFound(t *testing.T) {
	// TempDir lives under the system temp dir, which has no adze.toml above it
	_, err := LoadManifest(t.TempDir())
	require.ErrorIs(t, err, ErrNoManifest)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "syntax", text: "[package\n", want: "failed to parse TOML"},
		{name: "no package", text: "[build]\nentry = \"a.adze\"\n", want: "missing [package]"},
		{name: "empty name", text: "[package]\nname = \"  \"\n", want: "missing [package].name"},
		{name: "unknown key", text: "[package]\nname = \"p\"\nversion = 2\n", want: `unknown key "package.version"`},
		{name: "negative limit", text: "[package]\nname = \"p\"\n[build]\nmax_diagnostics = -1\n", want: "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.text)
			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestManifest_EntryErrors(t *testing.T) {
	root := t.TempDir()
	m := &Manifest{Path: filepath.Join(root, ManifestName), Root: root}

	m.Config.Build.Entry = "main.txt"
	_, err := m.Entry()
	assert.ErrorContains(t, err, "must be a .adze file")

	m.Config.Build.Entry = "missing.adze"
	_, err = m.Entry()
	assert.ErrorContains(t, err, "does not exist")

	require.NoError(t, os.Mkdir(filepath.Join(root, "dir.adze"), 0o755))
	m.Config.Build.Entry = "dir.adze"
	_, err = m.Entry()
	assert.ErrorContains(t, err, "is a directory")
}

func TestFindManifest_SkipsDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[package]\nname = \"outer\"\n")
	inner := filepath.Join(root, "inner")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ManifestName), 0o755))

	path, ok, err := FindManifest(inner)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, ManifestName), path)
}
