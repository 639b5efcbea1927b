package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordbridge/pkg/errors"
	"github.com/matzehuels/wordbridge/pkg/render"
)

// Config holds defaults read from the TOML config file. Every field can be
// overridden by the matching command-line flag.
//
//	corpus = ["poems/a.txt", "poems/b.txt"]
//	verbose = false
//
//	[serve]
//	addr = ":8080"
//
//	[visualize]
//	min_weight = 1
//	format = "dot"
type Config struct {
	Corpus    []string        `toml:"corpus"`
	Verbose   bool            `toml:"verbose"`
	Serve     ServeConfig     `toml:"serve"`
	Visualize VisualizeConfig `toml:"visualize"`
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// VisualizeConfig configures the visualize command.
type VisualizeConfig struct {
	MinWeight int    `toml:"min_weight"`
	Format    string `toml:"format"`
}

// configPath returns the default config file location using the XDG
// standard (~/.config/wordbridge/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path. An empty path selects the default
// location, which may be absent; an explicitly named file must exist.
// Relative corpus paths are resolved against the config file's directory.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	dir := filepath.Dir(path)
	for i, p := range cfg.Corpus {
		if !filepath.IsAbs(p) {
			cfg.Corpus[i] = filepath.Join(dir, p)
		}
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if f := c.Visualize.Format; f != "" && !slices.Contains(render.Formats, f) {
		return errors.New(errors.ErrCodeInvalidFormat, "visualize.format %q is not one of %s", f, strings.Join(render.Formats, ", "))
	}
	if c.Visualize.MinWeight < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "visualize.min_weight must not be negative")
	}
	return nil
}
