// Package config provides YAML-based kitchen configuration loading and
// difficulty management.
package config

// KitchenConfig contains all configuration for a kitchen shift.
type KitchenConfig struct {
	Player     PlayerConfig      `yaml:"player"`
	Shift      ShiftConfig       `yaml:"shift"`
	Recipes    []RecipeConfig    `yaml:"recipes"`
	Baskets    []BasketConfig    `yaml:"baskets"`
	Appliances []ApplianceConfig `yaml:"appliances"`
	Counter    string            `yaml:"counter"`
	Customers  CustomerConfig    `yaml:"customers"`
	Points     PointsConfig      `yaml:"points"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlayerConfig defines how the cook moves.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // units per second, 1..10
	Start string  `yaml:"start"` // player point name
}

// ShiftConfig defines shift lengths in seconds.
type ShiftConfig struct {
	MainSeconds    float64 `yaml:"main_seconds"`
	ShortSeconds   float64 `yaml:"short_seconds"`
	RushMultiplier float64 `yaml:"rush_multiplier"` // rush shift = short * multiplier
}

// RecipeConfig is one recipe: two ingredient names and the dish they make.
type RecipeConfig struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
	Dish   string `yaml:"dish"`
}

// BasketConfig places an ingredient source on a player point.
type BasketConfig struct {
	Ingredient string `yaml:"ingredient"`
	Point      string `yaml:"point"`
}

// ApplianceConfig places a station on a player point.
type ApplianceConfig struct {
	Name        string           `yaml:"name"`
	Point       string           `yaml:"point"`
	CookSeconds float64          `yaml:"cook_seconds"`
	Transform   *TransformConfig `yaml:"transform,omitempty"`
}

// TransformConfig changes the ingredient kind when cooking finishes.
type TransformConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// CustomerConfig defines customers.
type CustomerConfig struct {
	Speed          float64 `yaml:"speed"`
	Patience       float64 `yaml:"patience"`     // seconds per dish, 0 = wait forever
	MinPatience    float64 `yaml:"min_patience"` // floor when difficulty scales patience down
	OrderLength    int     `yaml:"order_length"`
	MaxOrderLength int     `yaml:"max_order_length"`
	SpawnDelay     float64 `yaml:"spawn_delay"` // seconds between customers
}

// PointsConfig defines scoring.
type PointsConfig struct {
	Correct    int `yaml:"correct"`
	Wrong      int `yaml:"wrong"`
	OrderBonus int `yaml:"order_bonus"`
	Walkout    int `yaml:"walkout"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to customer speed at max difficulty
	PatienceReduction float64 `yaml:"patience_reduction"` // Fraction of patience removed at max difficulty
	ExtraDishes       int     `yaml:"extra_dishes"`       // Dishes added to an order at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
