// Package loot rolls items from weighted type, rarity, and name tables.
package loot

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator creates items from a set of name tables
type Generator struct {
	tables *Tables
}

// NewGenerator creates a generator. A nil tables argument uses the
// built-in defaults.
func NewGenerator(tables *Tables) *Generator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Generator{tables: tables}
}

// RollType picks an item type from the weighted table: weapon 35%,
// armor 35%, potion 20%, scroll 10%. Single uniform draw against
// ascending thresholds.
func (g *Generator) RollType(rng *rand.Rand) ItemType {
	roll := rng.Float64() * 100
	switch {
	case roll < 35:
		return Weapon
	case roll < 70:
		return Armor
	case roll < 90:
		return Potion
	default:
		return Scroll
	}
}

// RollDropRarity picks a rarity from the dungeon-run drop table:
// common 50%, uncommon 30%, rare 15%, epic 4%, legendary 1%.
func RollDropRarity(rng *rand.Rand) Rarity {
	roll := rng.Float64()
	switch {
	case roll < 0.5:
		return Common
	case roll < 0.8:
		return Uncommon
	case roll < 0.95:
		return Rare
	case roll < 0.99:
		return Epic
	default:
		return Legendary
	}
}

// GenerateRandom creates an item whose type is rolled from the weighted
// type table.
func (g *Generator) GenerateRandom(rarity Rarity, playerLevel int, rng *rand.Rand) *Item {
	return g.Generate(rarity, g.RollType(rng), playerLevel, rng)
}

// Generate creates an item of the given type and rarity, with stats
// scaled by player level and the rarity multiplier. Draw order on rng:
// name prefix, base name, bonus-stat roll (gear only), item id.
func (g *Generator) Generate(rarity Rarity, itemType ItemType, playerLevel int, rng *rand.Rand) *Item {
	name := g.rollName(itemType, rng)
	itemStats := rollStats(itemType, rarity, playerLevel, rng)
	value := rarity.SellValue() + 2*statTotal(itemStats)

	item := &Item{
		ID:     fmt.Sprintf("item_%d", 1000+rng.Intn(9000)),
		Name:   name,
		Type:   itemType,
		Rarity: rarity,
		Stats:  itemStats,
		Value:  value,
	}

	if itemType.IsConsumable() {
		effect := effectFor(itemType, name)
		item.Effect = &effect
	}

	return item
}

// rollName builds "<prefix> <base>" from the type's name table
func (g *Generator) rollName(itemType ItemType, rng *rand.Rand) string {
	table := g.tables.table(itemType)
	prefix := table.Prefixes[rng.Intn(len(table.Prefixes))]
	base := table.Names[rng.Intn(len(table.Names))]
	return prefix + " " + base
}

// rollStats generates the numeric stats for gear. Consumables have none.
func rollStats(itemType ItemType, rarity Rarity, playerLevel int, rng *rand.Rand) map[string]int {
	itemStats := make(map[string]int)
	multiplier := rarity.Multiplier()

	switch itemType {
	case Weapon:
		itemStats["damage"] = int(float64(10+playerLevel*2) * multiplier)
		if rng.Float64() < 0.5 {
			itemStats["critChance"] = int(5 * multiplier)
		}
	case Armor:
		itemStats["defense"] = int((8 + float64(playerLevel)*1.5) * multiplier)
		if rng.Float64() < 0.5 {
			itemStats["health"] = int(20 * multiplier)
		}
	}

	return itemStats
}

func statTotal(itemStats map[string]int) int {
	total := 0
	for _, v := range itemStats {
		total += v
	}
	return total
}

// effectFor derives the consumable effect text from the item name
func effectFor(itemType ItemType, name string) string {
	if itemType == Scroll {
		words := strings.Fields(name)
		return fmt.Sprintf("Casts %s spell", words[len(words)-1])
	}

	switch {
	case strings.Contains(name, "Health"):
		return "Restores health over time"
	case strings.Contains(name, "Mana"):
		return "Restores mana over time"
	case strings.Contains(name, "Strength"):
		return "Temporarily increases strength"
	case strings.Contains(name, "Defense"):
		return "Temporarily increases defense"
	default:
		return "Increases movement speed"
	}
}
