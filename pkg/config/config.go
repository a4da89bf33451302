// Package config resolves the mnemo configuration once at startup. The
// resulting Config value is passed to every component; there is no global
// configuration state.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/entrhq/mnemo/pkg/knowledge"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables read by Load.
const (
	EnvMemoryPath    = "MEMORY_PATH"
	EnvKnowledgePath = "KNOWLEDGE_PATH"
	EnvLogDir        = "MNEMO_LOG_DIR"
)

const (
	// DefaultConfigFile is looked up under the home directory when no file is given.
	DefaultConfigFile = ".mnemo/config.yaml"
	// DefaultMemoryDir is the memory base used when only a knowledge base is configured.
	DefaultMemoryDir = ".memory"
	defaultLogDir    = ".mnemo/logs"
)

// Verbosity levels accepted in logging.verbosity.
const (
	VerbosityQuiet   = "quiet"
	VerbosityNormal  = "normal"
	VerbosityVerbose = "verbose"
	VerbosityDebug   = "debug"
)

// Config holds the resolved paths and options.
type Config struct {
	// MemoryPath is the directory holding the tier files and snapshot.
	MemoryPath string `yaml:"memory_path"`

	// KnowledgePath is the root of the markdown knowledge base.
	KnowledgePath string `yaml:"knowledge_path"`

	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// KnowledgeConfig filters which notes the knowledge-base scans visit.
type KnowledgeConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// LoggingConfig controls the session log file.
type LoggingConfig struct {
	Dir       string `yaml:"dir"`
	Verbosity string `yaml:"verbosity"`
}

// LoadOptions are the inputs to Load. Zero values fall back to the process
// environment: the working directory, the user's home and os.Getenv.
type LoadOptions struct {
	ConfigFile string // explicit YAML file; must exist when set
	EnvFile    string // dotenv file, defaults to <WorkDir>/.env

	// Flag overrides, applied last.
	MemoryPath    string
	KnowledgePath string
	Verbose       bool

	WorkDir string
	HomeDir string
	Getenv  func(string) string
}

// Load builds a Config from defaults, the YAML file, the dotenv file, the
// environment and finally the flag overrides, then validates it.
func Load(opts LoadOptions) (*Config, error) {
	if err := opts.fill(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Logging: LoggingConfig{
			Dir:       filepath.Join(opts.HomeDir, defaultLogDir),
			Verbosity: VerbosityNormal,
		},
	}

	path, required := opts.ConfigFile, true
	if path == "" {
		path, required = filepath.Join(opts.HomeDir, DefaultConfigFile), false
	}
	if err := cfg.loadFile(path, required); err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v := opts.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	if v := lookup(EnvMemoryPath); v != "" {
		cfg.MemoryPath = v
	}
	if v := lookup(EnvKnowledgePath); v != "" {
		cfg.KnowledgePath = v
	}
	if v := lookup(EnvLogDir); v != "" {
		cfg.Logging.Dir = v
	}

	if opts.MemoryPath != "" {
		cfg.MemoryPath = opts.MemoryPath
	}
	if opts.KnowledgePath != "" {
		cfg.KnowledgePath = opts.KnowledgePath
	}
	if opts.Verbose {
		cfg.Logging.Verbosity = VerbosityDebug
	}

	cfg.resolve(opts.WorkDir, opts.HomeDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *LoadOptions) fill() error {
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		o.WorkDir = wd
	}
	if o.HomeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		o.HomeDir = home
	}
	if o.EnvFile == "" {
		o.EnvFile = filepath.Join(o.WorkDir, ".env")
	}
	return nil
}

// loadFile merges a YAML file into c. A missing optional file is not an error.
func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return values, nil
}

// resolve expands "~", makes paths absolute against workDir and derives the
// memory path from the knowledge path when it was not set.
func (c *Config) resolve(workDir, homeDir string) {
	if c.KnowledgePath == "" {
		c.KnowledgePath = workDir
	}
	c.KnowledgePath = absPath(c.KnowledgePath, workDir, homeDir)
	if c.MemoryPath == "" {
		c.MemoryPath = filepath.Join(c.KnowledgePath, DefaultMemoryDir)
	}
	c.MemoryPath = absPath(c.MemoryPath, workDir, homeDir)
	if c.Logging.Dir != "" {
		c.Logging.Dir = absPath(c.Logging.Dir, workDir, homeDir)
	}
	if c.Logging.Verbosity == "" {
		c.Logging.Verbosity = VerbosityNormal
	}
}

func absPath(path, workDir, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, path[2:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	return filepath.Clean(path)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MemoryPath == "" {
		return fmt.Errorf("%w: memory path is required", ErrInvalidConfig)
	}
	if c.KnowledgePath == "" {
		return fmt.Errorf("%w: knowledge path is required", ErrInvalidConfig)
	}
	switch c.Logging.Verbosity {
	case VerbosityQuiet, VerbosityNormal, VerbosityVerbose, VerbosityDebug:
	default:
		return fmt.Errorf("%w: invalid verbosity: %s (must be quiet, normal, verbose or debug)", ErrInvalidConfig, c.Logging.Verbosity)
	}
	if _, err := c.PatternMatcher(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PatternMatcher compiles the knowledge include/exclude patterns.
func (c *Config) PatternMatcher() (*knowledge.PatternMatcher, error) {
	return knowledge.NewPatternMatcher(c.Knowledge.Include, c.Knowledge.Exclude)
}

// LogLevel maps the verbosity onto a slog level.
func (l LoggingConfig) LogLevel() slog.Level {
	switch l.Verbosity {
	case VerbosityQuiet:
		return slog.LevelWarn
	case VerbosityDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
