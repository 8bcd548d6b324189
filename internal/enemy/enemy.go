// Package enemy creates level-scaled enemies from type templates.
package enemy

import (
	"fmt"
	"math/rand"

	"github.com/lawnchairsociety/looterforge/internal/combat"
	"github.com/lawnchairsociety/looterforge/internal/stats"
)

// BasicTypes are the regular enemy types rolled for dungeon rooms and
// run encounters. Demons only appear as bosses.
var BasicTypes = []string{"zombie", "skeleton", "orc"}

// BossType is the enemy type reserved for boss encounters
const BossType = "demon"

// Enemy is a spawned enemy instance. It is immutable once created;
// combat runs on a local copy of its health.
type Enemy struct {
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	Level      int          `json:"level"`
	Health     int          `json:"health"`
	MaxHealth  int          `json:"maxHealth"`
	Damage     int          `json:"damage"`
	Stats      *stats.Stats `json:"stats"`
	Experience int          `json:"experience"`
	GoldReward int          `json:"goldReward"`
}

// Combatant returns the enemy's view for the combat simulator
func (e *Enemy) Combatant() combat.Combatant {
	return combat.Combatant{
		Name:   e.Type,
		Level:  e.Level,
		Health: e.Health,
		Damage: e.Damage,
		Stats:  e.Stats,
	}
}

// Template holds the base values an enemy type scales from
type Template struct {
	Health     int `yaml:"health"`
	Damage     int `yaml:"damage"`
	Experience int `yaml:"experience"`
	Gold       int `yaml:"gold"`
}

// Factory creates enemies from type templates
type Factory struct {
	templates map[string]Template
}

// DefaultTemplates returns the built-in enemy roster
func DefaultTemplates() map[string]Template {
	return map[string]Template{
		"zombie":   {Health: 50, Damage: 10, Experience: 20, Gold: 5},
		"skeleton": {Health: 40, Damage: 15, Experience: 25, Gold: 8},
		"orc":      {Health: 80, Damage: 20, Experience: 35, Gold: 12},
		"demon":    {Health: 200, Damage: 40, Experience: 100, Gold: 50},
	}
}

// NewFactory creates a factory. A nil templates argument uses the
// built-in roster.
func NewFactory(templates map[string]Template) *Factory {
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &Factory{templates: templates}
}

// Known reports whether the factory has a template for the type
func (f *Factory) Known(enemyType string) bool {
	_, ok := f.templates[enemyType]
	return ok
}

// Create builds an enemy of the given type scaled for the level.
// Unknown types fall back to zombie; callers that need strict
// validation should check Known first. Health, damage, experience and
// gold all scale by 1 + (level-1)*0.3.
func (f *Factory) Create(enemyType string, level int, rng *rand.Rand) *Enemy {
	template, ok := f.templates[enemyType]
	if !ok {
		enemyType = "zombie"
		template = f.templates[enemyType]
	}

	multiplier := 1 + float64(level-1)*0.3
	health := int(float64(template.Health) * multiplier)

	return &Enemy{
		ID:         fmt.Sprintf("enemy_%d", 1000+rng.Intn(9000)),
		Type:       enemyType,
		Level:      level,
		Health:     health,
		MaxHealth:  health,
		Damage:     int(float64(template.Damage) * multiplier),
		Stats:      stats.ForEnemyLevel(level),
		Experience: int(float64(template.Experience) * multiplier),
		GoldReward: int(float64(template.Gold) * multiplier),
	}
}
