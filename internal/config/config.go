package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxTitleLength limits the standalone document title.
const MaxTitleLength = pipeline.MaxTitleLength

// userConfigSubdir is the directory under os.UserConfigDir searched for named configs.
const userConfigSubdir = "go-md2html"

// Config holds all conversion and logging options.
type Config struct {
	Engine      string    `yaml:"engine"`      // "line" (default), "goldmark", "gomarkdown", "blackfriday"
	CloseLists  bool      `yaml:"closeLists"`  // Close open lists before leaving them
	FrontMatter bool      `yaml:"frontMatter"` // Strip leading front matter
	Standalone  bool      `yaml:"standalone"`  // Wrap output in an HTML5 document
	Title       string    `yaml:"title"`       // Standalone title (empty = auto)
	Log         LogConfig `yaml:"log"`
}

// LogConfig defines logger options.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error (default: error)
	Format string `yaml:"format"` // console (default), json, pretty
}

// Accepted log levels and formats.
var (
	logLevels  = []string{"trace", "debug", "info", "warn", "warning", "error"}
	logFormats = []string{"console", "json", "pretty"}
)

// DefaultConfig returns the configuration matching plain CLI behavior:
// line engine, lists left open when another block replaces them, fragments only.
func DefaultConfig() *Config {
	return &Config{
		Engine: pipeline.EngineLine,
		Log:    LogConfig{Level: "error", Format: "console"},
	}
}

// Validate checks engine name, log settings and field lengths.
func (c *Config) Validate() error {
	if !pipeline.IsValidEngine(c.Engine) {
		return fmt.Errorf("%w: %w %q", ErrInvalidValue, pipeline.ErrUnknownEngine, c.Engine)
	}
	if len(c.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title (%d chars, max %d)", ErrFieldTooLong, len(c.Title), MaxTitleLength)
	}
	if !oneOf(c.Log.Level, logLevels) {
		return fmt.Errorf("%w: log.level %q (must be one of %s)", ErrInvalidValue, c.Log.Level, strings.Join(logLevels, ", "))
	}
	if !oneOf(c.Log.Format, logFormats) {
		return fmt.Errorf("%w: log.format %q (must be one of %s)", ErrInvalidValue, c.Log.Format, strings.Join(logFormats, ", "))
	}
	return nil
}

// oneOf reports whether value is empty or matches one of allowed, ignoring case.
func oneOf(value string, allowed []string) bool {
	if value == "" {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Fields absent from the file take their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills empty fields with their DefaultConfig value.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Engine == "" {
		c.Engine = def.Engine
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory first, then the user config directory; .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigSubdir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
