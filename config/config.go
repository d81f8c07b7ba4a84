// Package config loads the algovista settings file.
//
// The file is YAML, looked up at $XDG_CONFIG_HOME/algovista/config.yaml
// (falling back to ~/.config). A missing file is not an error: Load
// returns Default(). Values are range-checked with validator struct tags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/algovista/algovista/trace"
)

const (
	// Dir is the directory name under XDG_CONFIG_HOME.
	Dir = "algovista"
	// File is the config file name.
	File = "config.yaml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config holds the defaults a host starts from.
type Config struct {
	Nodes        int           `yaml:"nodes" validate:"gte=3,lte=15"`
	Edges        int           `yaml:"edges" validate:"gte=1,lte=50"`
	Directed     bool          `yaml:"directed"`
	Weighted     bool          `yaml:"weighted"`
	Algorithm    string        `yaml:"algorithm" validate:"oneof=bfs dfs dijkstra bellman-ford"`
	Start        int           `yaml:"start" validate:"gte=0,ltfield=Nodes"`
	Speed        float64       `yaml:"speed" validate:"gte=0.1,lte=10"`
	BaseInterval time.Duration `yaml:"base_interval" validate:"gt=0"`
	Seed         int64         `yaml:"seed"`
	LogLevel     string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Nodes:        7,
		Edges:        8,
		Algorithm:    trace.BFS.String(),
		Speed:        1,
		BaseInterval: time.Second,
		LogLevel:     "info",
	}
}

// Path returns the default config file path.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/algovista/config.yaml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, Dir, File)
}

// Load reads path (or Path() when empty) over Default() and validates the
// result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field range, including start < nodes.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s fails %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// AlgorithmTag returns the parsed Algorithm field.
func (c Config) AlgorithmTag() (trace.Algorithm, error) {
	return trace.ParseAlgorithm(c.Algorithm)
}

// Level maps LogLevel to a slog.Level; unknown or empty values are Info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
