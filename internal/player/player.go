// Package player holds the player character state mutated across
// combat rounds and dungeon runs.
package player

import (
	"github.com/lawnchairsociety/looterforge/internal/combat"
	"github.com/lawnchairsociety/looterforge/internal/loot"
	"github.com/lawnchairsociety/looterforge/internal/stats"
)

// Base values for a fresh level-1 character
const (
	baseHealth = 100
	baseMana   = 50
)

// Player is the player character. Health, gold, experience and
// inventory change as runs progress; the rest is fixed at creation.
type Player struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Level         int                    `json:"level"`
	Health        int                    `json:"health"`
	MaxHealth     int                    `json:"maxHealth"`
	Mana          int                    `json:"mana"`
	MaxMana       int                    `json:"maxMana"`
	Stats         *stats.Stats           `json:"stats"`
	Gold          int                    `json:"gold"`
	Experience    int                    `json:"experience"`
	StatusEffects []*combat.StatusEffect `json:"statusEffects"`
	Inventory     []*loot.Item           `json:"inventory"`
}

// New creates a player of the given level: 100 health and 50 mana at
// level 1, plus 20 health and 10 mana per level after that. Starting
// gold is 100 per level.
func New(name string, level int) *Player {
	health := baseHealth + (level-1)*20
	mana := baseMana + (level-1)*10

	return &Player{
		ID:            "player_1",
		Name:          name,
		Level:         level,
		Health:        health,
		MaxHealth:     health,
		Mana:          mana,
		MaxMana:       mana,
		Stats:         stats.ForPlayerLevel(level),
		Gold:          100 * level,
		StatusEffects: []*combat.StatusEffect{},
		Inventory:     []*loot.Item{},
	}
}

// Combatant returns the player's view for the combat simulator
func (p *Player) Combatant() combat.Combatant {
	return combat.Combatant{
		Name:   p.Name,
		Level:  p.Level,
		Health: p.Health,
		Stats:  p.Stats,
	}
}

// AddLoot appends an item to the player's inventory
func (p *Player) AddLoot(item *loot.Item) {
	p.Inventory = append(p.Inventory, item)
}
