// Package presets holds the fixed category catalog. It is the single source
// of truth for both the seeding endpoint and clients that want to decorate
// category names with display metadata.
package presets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is a fixed, non-persisted template used to pre-populate or
// decorate user categories.
type Category struct {
	Key   string `json:"key" yaml:"key"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

// The built-in catalog. Identical for all users.
var defaults = []Category{
	{Key: "Learning", Name: "Learning", Icon: "Book", Color: "#6366f1"},
	{Key: "Work", Name: "Work", Icon: "Briefcase", Color: "#3b82f6"},
	{Key: "Personal", Name: "Personal", Icon: "User", Color: "#64748b"},
	{Key: "Family", Name: "Family", Icon: "Users", Color: "#f59e0b"},
	{Key: "Activities", Name: "Activities", Icon: "Calendar", Color: "#22c55e"},
	{Key: "Health", Name: "Health", Icon: "Heart", Color: "#ef4444"},
	{Key: "Finance", Name: "Finance", Icon: "Wallet", Color: "#eab308"},
	{Key: "Travel", Name: "Travel", Icon: "Plane", Color: "#06b6d4"},
	{Key: "Hobbies", Name: "Hobbies", Icon: "Star", Color: "#8b5cf6"},
	{Key: "Food", Name: "Food", Icon: "Utensils", Color: "#f97316"},
}

var catalog = defaults

// Load initializes the catalog. When PRESETS_FILE is set, the catalog is
// read from that YAML file, otherwise the built-in defaults are used.
func Load() error {
	path, ok := os.LookupEnv("PRESETS_FILE")
	if !ok {
		catalog = defaults
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset catalog: %w", err)
	}

	var loaded []Category
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse preset catalog: %w", err)
	}

	if len(loaded) == 0 {
		return fmt.Errorf("preset catalog %s contains no categories", path)
	}

	for i, preset := range loaded {
		if preset.Name == "" {
			return fmt.Errorf("preset catalog %s: entry %d has no name", path, i)
		}

		// The key is a stable identifier for clients, it defaults to the name
		if preset.Key == "" {
			loaded[i].Key = preset.Name
		}
	}

	catalog = loaded
	return nil
}

// Catalog returns the preset categories.
func Catalog() []Category {
	result := make([]Category, len(catalog))
	copy(result, catalog)
	return result
}
