package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "kitchen.yaml"

// Load loads the kitchen configuration.
// Search order: customPath -> ~/.kitchen/configs/kitchen.yaml -> ./configs/kitchen.yaml -> embedded default
// A file that fails to parse or validate is skipped, except a custom path,
// which is reported.
func Load(customPath string) (KitchenConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KitchenConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return KitchenConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultKitchenYAML)
	if err != nil {
		return DefaultKitchenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Fields missing from the
// document keep their default values.
func Parse(data []byte) (KitchenConfig, error) {
	cfg := DefaultKitchenConfig()
	// Lists are replaced wholesale when present.
	cfg.Recipes, cfg.Baskets, cfg.Appliances = nil, nil, nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KitchenConfig{}, fmt.Errorf("parse: %w", err)
	}
	def := DefaultKitchenConfig()
	if cfg.Recipes == nil {
		cfg.Recipes = def.Recipes
	}
	if cfg.Baskets == nil {
		cfg.Baskets = def.Baskets
	}
	if cfg.Appliances == nil {
		cfg.Appliances = def.Appliances
	}
	if err := cfg.Validate(); err != nil {
		return KitchenConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg KitchenConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kitchen", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *KitchenConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust customers based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Customers.Patience *= 1.5
		cfg.Customers.OrderLength = 1
	case DifficultyHard:
		cfg.Customers.Patience *= 0.75
		cfg.Customers.OrderLength++
		if cfg.Customers.OrderLength > cfg.Customers.MaxOrderLength {
			cfg.Customers.MaxOrderLength = cfg.Customers.OrderLength
		}
	}
}
