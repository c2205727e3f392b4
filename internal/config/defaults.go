package config

import (
	_ "embed"
)

//go:embed defaults/kitchen.yaml
var defaultKitchenYAML []byte

// DefaultKitchenConfig returns the default kitchen configuration.
func DefaultKitchenConfig() KitchenConfig {
	return KitchenConfig{
		Player: PlayerConfig{
			Speed: 6,
			Start: "waiting_area",
		},
		Shift: ShiftConfig{
			MainSeconds:    180,
			ShortSeconds:   15,
			RushMultiplier: 4,
		},
		Recipes: []RecipeConfig{
			{First: "fish_raw", Second: "seaweed", Dish: "sushi"},
			{First: "fish_cooked", Second: "taco", Dish: "fish_taco"},
			{First: "fish_cooked", Second: "bread", Dish: "fish_sandwich"},
			{First: "frappe", Second: "cupcake", Dish: "frappe_cupcake"},
		},
		Baskets: []BasketConfig{
			{Ingredient: "cupcake", Point: "cupcake"},
			{Ingredient: "seaweed", Point: "seaweed"},
			{Ingredient: "fish_raw", Point: "fish"},
			{Ingredient: "taco", Point: "taco"},
			{Ingredient: "bread", Point: "bread"},
			{Ingredient: "coffee", Point: "coffee"},
		},
		Appliances: []ApplianceConfig{
			{Name: "combine", Point: "combine_area"},
			{Name: "blender", Point: "blender", CookSeconds: 3, Transform: &TransformConfig{From: "coffee", To: "frappe"}},
			{Name: "grill", Point: "grill", CookSeconds: 5, Transform: &TransformConfig{From: "fish_raw", To: "fish_cooked"}},
		},
		Counter: "waiting_area",
		Customers: CustomerConfig{
			Speed:          4,
			Patience:       45,
			MinPatience:    15,
			OrderLength:    2,
			MaxOrderLength: 4,
			SpawnDelay:     2,
		},
		Points: PointsConfig{
			Correct:    100,
			Wrong:      -25,
			OrderBonus: 50,
			Walkout:    -50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				PatienceReduction: 0.5,
				ExtraDishes:       2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultKitchenYAML
}
