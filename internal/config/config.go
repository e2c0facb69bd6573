package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/cutline/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "CUTLINE_"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = EnvPrefix + "CONFIG_DIR"

// FileName is the default configuration file name.
const FileName = "config.toml"

// Config holds every Cutline setting.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	View      ViewConfig      `yaml:"view"`
	Search    SearchConfig    `yaml:"search"`
	Script    ScriptConfig    `yaml:"script"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
	// File enables writing to the log file in the configuration directory.
	File bool `yaml:"file"`
}

// ClipboardConfig controls the clipboard.
type ClipboardConfig struct {
	// System mirrors copies to the operating system clipboard.
	System bool `yaml:"system"`
}

// ViewConfig sizes the viewport used to keep the cursor visible.
type ViewConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	ScrollMargin int `yaml:"scroll_margin"`
}

// SearchConfig controls search mode.
type SearchConfig struct {
	CaseInsensitive bool `yaml:"case_insensitive"`
}

// ScriptConfig controls the Lua script runner.
type ScriptConfig struct {
	// InstructionLimit bounds the VM instructions a script may run.
	// Zero disables the limit.
	InstructionLimit int64 `yaml:"instruction_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info"},
		Clipboard: ClipboardConfig{System: true},
		View:      ViewConfig{Width: 80, Height: 24, ScrollMargin: 5},
		Script:    ScriptConfig{InstructionLimit: 10_000_000},
	}
}

// Directory returns the preferences directory: $CUTLINE_CONFIG_DIR when set,
// otherwise "cutline" under the user configuration directory.
func Directory() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(base, "cutline"), nil
}

// DefaultPath returns the path of the configuration file in Directory.
func DefaultPath() (string, error) {
	dir, err := Directory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load builds a Config from the defaults, the file at path and the
// environment, in increasing precedence. An empty path means DefaultPath.
// A missing file is not an error.
func Load(path string) (Config, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS is Load reading files through fsys.
func LoadFS(fsys loader.FileSystem, path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	file, err := loader.ForFile(fsys, path).Load()
	if err != nil {
		return Config{}, err
	}
	env, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return Config{}, err
	}

	cfg, err := Decode(loader.DeepMerge(file, env))
	if err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays the settings in m onto the defaults.
func Decode(m map[string]any) (Config, error) {
	cfg := Default()
	if len(m) == 0 {
		return cfg, nil
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log.level", Message: "unknown log level", Value: c.Log.Level}
	}
	if c.View.Width <= 0 {
		return &ValidationError{Path: "view.width", Message: "must be positive", Value: c.View.Width}
	}
	if c.View.Height <= 0 {
		return &ValidationError{Path: "view.height", Message: "must be positive", Value: c.View.Height}
	}
	if c.View.ScrollMargin < 0 {
		return &ValidationError{Path: "view.scroll_margin", Message: "must not be negative", Value: c.View.ScrollMargin}
	}
	if c.Script.InstructionLimit < 0 {
		return &ValidationError{Path: "script.instruction_limit", Message: "must not be negative", Value: c.Script.InstructionLimit}
	}
	return nil
}
