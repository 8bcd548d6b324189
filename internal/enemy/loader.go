package enemy

import (
	"fmt"
	"os"

	"github.com/lawnchairsociety/looterforge/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config represents the structure of the enemies.yaml file
type Config struct {
	Enemies map[string]Template `yaml:"enemies"`
}

// LoadTemplatesFromYAML loads enemy templates from a YAML file.
// Entries with non-positive health or damage are skipped with a
// warning rather than failing the whole roster.
func LoadTemplatesFromYAML(filename string) (map[string]Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemies file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemies YAML: %w", err)
	}

	if len(config.Enemies) == 0 {
		return nil, fmt.Errorf("enemies file %s defines no enemies", filename)
	}

	templates := make(map[string]Template, len(config.Enemies))
	for enemyType, template := range config.Enemies {
		if template.Health <= 0 || template.Damage <= 0 {
			logger.Warning("Enemy template skipped",
				"enemy_type", enemyType,
				"health", template.Health,
				"damage", template.Damage)
			continue
		}
		templates[enemyType] = template
	}

	if _, ok := templates["zombie"]; !ok {
		return nil, fmt.Errorf("enemies file %s missing the zombie fallback template", filename)
	}

	return templates, nil
}
