package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".saberweb.yml"

// EnvPrefix prefixes environment overrides. A double underscore descends
// into nested keys: SABERWEB_IMAGES__UNOPTIMIZED -> images.unoptimized.
const EnvPrefix = "SABERWEB_"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Repo:            "saber-notes/saber",
		APIBaseURL:      "https://api.github.com",
		DownloadBaseURL: "https://github.com",
		OutputDir:       "out",
		Output:          OutputExport,
		HighlightColor:  "var(--highlight-color)",
		HTTPTimeout:     15,
		Images: ImagesConfig{
			Unoptimized: true,
			RemotePatterns: []RemotePattern{
				{
					Protocol: "https",
					Hostname: "raw.githubusercontent.com",
					Pathname: "/saber-notes/saber/**",
				},
			},
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SABERWEB_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	owner, name, ok := strings.Cut(c.Repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid repo %q: must be owner/name", c.Repo)
	}

	if c.Output != OutputExport {
		return fmt.Errorf("invalid output %q: only %q is supported", c.Output, OutputExport)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must be non-negative")
	}

	for i, p := range c.Images.RemotePatterns {
		if p.Hostname == "" {
			return fmt.Errorf("images.remote_patterns[%d]: hostname is required", i)
		}
		if p.Pathname != "" && !doublestar.ValidatePattern(p.Pathname) {
			return fmt.Errorf("images.remote_patterns[%d]: invalid pathname glob %q", i, p.Pathname)
		}
	}

	return nil
}

// Timeout returns HTTPTimeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
