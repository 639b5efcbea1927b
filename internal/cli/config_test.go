package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/wordbridge/pkg/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
corpus = ["a.txt", "/abs/b.txt"]
verbose = true

[serve]
addr = ":9090"

[visualize]
min_weight = 3
format = "svg"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := &Config{
		Corpus:    []string{filepath.Join(dir, "a.txt"), "/abs/b.txt"},
		Verbose:   true,
		Serve:     ServeConfig{Addr: ":9090"},
		Visualize: VisualizeConfig{MinWeight: 3, Format: "svg"},
	}
	if !slices.Equal(cfg.Corpus, want.Corpus) {
		t.Errorf("Corpus = %v, want %v", cfg.Corpus, want.Corpus)
	}
	if cfg.Verbose != want.Verbose || cfg.Serve != want.Serve || cfg.Visualize != want.Visualize {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if len(cfg.Corpus) != 0 || cfg.Verbose {
		t.Errorf("config = %+v, want zero value", cfg)
	}

	if err := os.MkdirAll(filepath.Join(home, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(home, appName), "[serve]\naddr = \"127.0.0.1:1\"\n")
	cfg, err = loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Serve.Addr != "127.0.0.1:1" {
		t.Errorf("Serve.Addr = %q, want value from default file", cfg.Serve.Addr)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Malformed", "corpus = ["},
		{"WrongType", "verbose = \"yes\""},
		{"UnknownKey", "corpora = [\"a.txt\"]"},
		{"UnknownFormat", "[visualize]\nformat = \"gif\""},
		{"NegativeMinWeight", "[visualize]\nmin_weight = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := loadConfig(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err := configPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg", "wordbridge", "config.toml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}
