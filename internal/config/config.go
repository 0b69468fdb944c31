package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that shape a scan and a commit.
//
// Sources, highest precedence first: command-line flags (applied by the
// caller), environment variables, the YAML config file, built-in defaults.
type Config struct {
	// TreeRoot is the directory whose contents are classified
	TreeRoot string `yaml:"tree_root"`

	// Ignore holds gitignore-style patterns, relative to TreeRoot, that are
	// never classified
	Ignore []string `yaml:"ignore"`

	// LogLevel is a logrus level name
	LogLevel string `yaml:"log_level"`

	// OptionsFile is where the option store lives
	OptionsFile string `yaml:"options_file"`
}

// DefaultConfig returns defaults rooted at the given data paths.
func DefaultConfig(paths *Paths) *Config {
	return &Config{
		Ignore:      []string{},
		LogLevel:    "warning",
		OptionsFile: paths.Options,
	}
}

// Load reads configuration. An explicit configPath must exist; otherwise
// paths.Config is used when present. Environment overrides are applied
// afterwards and an unset tree root falls back to the working directory.
func Load(configPath string, paths *Paths) (*Config, error) {
	cfg := DefaultConfig(paths)

	if configPath != "" {
		if err := loadFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else if _, err := os.Stat(paths.Config); err == nil {
		if err := loadFile(paths.Config, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", paths.Config, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.TreeRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg.TreeRoot = cwd
	}
	cfg.TreeRoot = expandPath(cfg.TreeRoot)
	cfg.OptionsFile = expandPath(cfg.OptionsFile)

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if root := os.Getenv("BACKUPSCOPE_TREE_ROOT"); root != "" {
		cfg.TreeRoot = root
	}
	if level := os.Getenv("BACKUPSCOPE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if extra := os.Getenv("BACKUPSCOPE_IGNORE"); extra != "" {
		for _, pattern := range strings.Split(extra, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				cfg.Ignore = append(cfg.Ignore, pattern)
			}
		}
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// Validate checks that the configuration can drive a scan.
func (c *Config) Validate() error {
	if !filepath.IsAbs(c.TreeRoot) {
		return fmt.Errorf("tree root must be absolute, got %q", c.TreeRoot)
	}
	if c.OptionsFile == "" {
		return fmt.Errorf("options file cannot be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
