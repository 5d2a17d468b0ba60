package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/formkit/internal/behavior"
	"github.com/rpgo/formkit/pkg/mask"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Configuration is the formkit configuration file.
type Configuration struct {
	// Language picks the selector preset ("en" or "pt-BR"); explicit
	// selectors override individual preset entries.
	Language   string             `yaml:"language"`
	Selectors  behavior.Selectors `yaml:"selectors"`
	DataAttr   string             `yaml:"data_attr"`
	DateMask   DateMaskConfig     `yaml:"date_mask"`
	DragScroll DragScrollConfig   `yaml:"drag_scroll"`
	Search     SearchConfig       `yaml:"search"`
	Render     RenderConfig       `yaml:"render"`
	Behaviors  []string           `yaml:"behaviors"`
	LogLevel   string             `yaml:"log_level"`
}

// DateMaskConfig configures the date mask.
type DateMaskConfig struct {
	Overflow string `yaml:"overflow"`
}

// DragScrollConfig configures drag scrolling.
type DragScrollConfig struct {
	Sensitivity int `yaml:"sensitivity"`
}

// SearchConfig configures the search form.
type SearchConfig struct {
	ResetPage bool `yaml:"reset_page"`
}

// RenderConfig configures server-side rendering of HTML files.
type RenderConfig struct {
	NormalizeInputs bool `yaml:"normalize_inputs"`
	Concurrency     int  `yaml:"concurrency"`
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{
		Language:   "en",
		Selectors:  behavior.EnglishSelectors,
		DataAttr:   behavior.DefaultDataAttr,
		DateMask:   DateMaskConfig{Overflow: mask.Truncate.String()},
		DragScroll: DragScrollConfig{Sensitivity: behavior.DefaultDragSensitivity},
		Render:     RenderConfig{Concurrency: 4},
		LogLevel:   "info",
	}
}

// Loader handles reading and validating configuration files
type Loader struct {
	language string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// WithLanguage makes the loader use lang in place of the file's language,
// before the selector preset is chosen.
func (l *Loader) WithLanguage(lang string) *Loader {
	l.language = strings.TrimSpace(lang)
	return l
}

// LoadFromFile loads configuration from a YAML file
func (l *Loader) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return l.Load(data)
}

// Load parses YAML configuration, fills defaults and validates the result.
func (l *Loader) Load(data []byte) (*Configuration, error) {
	var cfg Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.ApplyDefaults(&cfg)

	if err := l.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields, taking selectors from the preset of the
// configured language.
func (l *Loader) ApplyDefaults(cfg *Configuration) {
	def := Default()
	if l.language != "" {
		cfg.Language = l.language
	}
	if strings.TrimSpace(cfg.Language) == "" {
		cfg.Language = def.Language
	}
	cfg.Selectors = cfg.Selectors.Merge(Preset(cfg.Language))
	if cfg.DataAttr == "" {
		cfg.DataAttr = def.DataAttr
	}
	if cfg.DateMask.Overflow == "" {
		cfg.DateMask.Overflow = def.DateMask.Overflow
	}
	if cfg.DragScroll.Sensitivity == 0 {
		cfg.DragScroll.Sensitivity = def.DragScroll.Sensitivity
	}
	if cfg.Render.Concurrency == 0 {
		cfg.Render.Concurrency = def.Render.Concurrency
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// ValidateConfiguration validates the loaded configuration
func (l *Loader) ValidateConfiguration(cfg *Configuration) error {
	if _, err := language.Parse(cfg.Language); err != nil {
		return fmt.Errorf("%w: language %q: %v", ErrInvalidConfig, cfg.Language, err)
	}
	if _, err := mask.ParseOverflow(cfg.DateMask.Overflow); err != nil {
		return fmt.Errorf("%w: date_mask: %v", ErrInvalidConfig, err)
	}
	if cfg.DragScroll.Sensitivity < 0 {
		return fmt.Errorf("%w: drag_scroll sensitivity must be positive", ErrInvalidConfig)
	}
	if cfg.Render.Concurrency < 0 {
		return fmt.Errorf("%w: render concurrency cannot be negative", ErrInvalidConfig)
	}
	if strings.ContainsAny(cfg.DataAttr, " \t\"'=") {
		return fmt.Errorf("%w: data_attr %q is not an attribute name", ErrInvalidConfig, cfg.DataAttr)
	}
	for _, name := range cfg.Behaviors {
		if _, err := behavior.ByName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q, must be one of: debug, info, warn, error", ErrInvalidConfig, cfg.LogLevel)
	}
	return nil
}

// BehaviorOptions converts the configuration into behavior options.
func (c *Configuration) BehaviorOptions(log behavior.Logger) (behavior.Options, error) {
	overflow, err := mask.ParseOverflow(c.DateMask.Overflow)
	if err != nil {
		return behavior.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if log == nil {
		log = behavior.NopLogger{}
	}
	return behavior.Options{
		Selectors:       c.Selectors,
		DataAttr:        c.DataAttr,
		DateOverflow:    overflow,
		DragSensitivity: c.DragScroll.Sensitivity,
		SearchResetPage: c.Search.ResetPage,
		Logger:          log,
	}, nil
}
