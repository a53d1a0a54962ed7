package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoManifest is returned by LoadManifest when no adze.toml is found.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

// Manifest is a loaded adze.toml together with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the layout of adze.toml:
//
//	[package]
//	name = "shapes"
//
//	[build]
//	entry = "src/main.adze"
//	max_diagnostics = 50
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Entry          string `toml:"entry"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// LoadManifest finds adze.toml above startDir and decodes it.
func LoadManifest(startDir string) (*Manifest, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, nil
}

// LoadConfig decodes and validates one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Build.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [build].max_diagnostics must not be negative", path)
	}
	return cfg, nil
}

// Entry resolves [build].entry against the project root.
// An absent entry defaults to main.adze.
func (m *Manifest) Entry() (string, error) {
	if m == nil {
		return "", fmt.Errorf("missing project manifest")
	}
	rel := strings.TrimSpace(m.Config.Build.Entry)
	if rel == "" {
		rel = "main.adze"
	}
	entry := filepath.Join(m.Root, filepath.FromSlash(rel))
	if filepath.Ext(entry) != ".adze" {
		return "", fmt.Errorf("%s: [build].entry must be a .adze file", m.Path)
	}
	info, err := os.Stat(entry)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [build].entry does not exist: %s", m.Path, entry)
		}
		return "", fmt.Errorf("%s: failed to stat [build].entry: %w", m.Path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: [build].entry is a directory: %s", m.Path, entry)
	}
	return entry, nil
}
