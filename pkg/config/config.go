package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ModuleRule is a user-supplied classification vocabulary entry. Rules are
// appended after the built-in module table in file order, so earlier entries
// win on ambiguous names.
type ModuleRule struct {
	Label    string   `yaml:"label"`
	Patterns []string `yaml:"patterns"`
}

type Config struct {
	// Classification
	ModuleRules []ModuleRule `yaml:"module_rules"`

	// Mermaid / sitemap settings
	GraphDirection string `yaml:"graph_direction"`
	GraphMaxNodes  int    `yaml:"graph_max_nodes"`

	// Scaffold generation
	IncludeHTML       bool `yaml:"include_html"`
	IncludeCSS        bool `yaml:"include_css"`
	IncludeResponsive bool `yaml:"include_responsive"`

	// UI settings
	ColorTheme string `yaml:"color_theme"`
	// TableWidth caps rendered table width; 0 fits to content
	TableWidth int `yaml:"table_width"`

	// Watch
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		ModuleRules:       []ModuleRule{},
		GraphDirection:    "TD",
		GraphMaxNodes:     100,
		IncludeHTML:       true,
		IncludeCSS:        true,
		IncludeResponsive: true,
		ColorTheme:        "auto",
		TableWidth:        0,
		WatchDebounceMS:   500,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing config file just means defaults
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ModuleRules == nil {
		cfg.ModuleRules = []ModuleRule{}
	}
	if !isValidDirection(cfg.GraphDirection) {
		cfg.GraphDirection = "TD"
	}
	if cfg.GraphMaxNodes <= 0 {
		cfg.GraphMaxNodes = 100
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidDirection checks the mermaid flowchart direction
func isValidDirection(direction string) bool {
	switch direction {
	case "TD", "TB", "LR", "RL", "BT":
		return true
	}
	return false
}
