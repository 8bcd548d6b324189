package loot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTablesFromYAML loads name-table overrides from a YAML file.
// Every pool must be non-empty; a partial file is a configuration
// error, not a merge.
func LoadTablesFromYAML(filename string) (*Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read loot tables file: %w", err)
	}

	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse loot tables YAML: %w", err)
	}

	for itemType, table := range map[string]NameTable{
		"weapon": tables.Weapon,
		"armor":  tables.Armor,
		"potion": tables.Potion,
		"scroll": tables.Scroll,
	} {
		if len(table.Prefixes) == 0 {
			return nil, fmt.Errorf("loot tables: %s has no prefixes", itemType)
		}
		if len(table.Names) == 0 {
			return nil, fmt.Errorf("loot tables: %s has no names", itemType)
		}
	}

	return &tables, nil
}
