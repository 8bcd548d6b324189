package loot

import (
	"encoding/json"
	"fmt"
)

// ItemType represents the category of a generated item
type ItemType int

const (
	Weapon ItemType = iota
	Armor
	Potion
	Scroll
)

// String returns the string representation of an ItemType
func (t ItemType) String() string {
	switch t {
	case Weapon:
		return "weapon"
	case Armor:
		return "armor"
	case Potion:
		return "potion"
	case Scroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// IsConsumable returns true if the item type carries an effect text
// instead of numeric stats
func (t ItemType) IsConsumable() bool {
	return t == Potion || t == Scroll
}

// ParseItemType converts a string to an ItemType
func ParseItemType(s string) (ItemType, bool) {
	switch s {
	case "weapon":
		return Weapon, true
	case "armor":
		return Armor, true
	case "potion":
		return Potion, true
	case "scroll":
		return Scroll, true
	default:
		return Weapon, false
	}
}

// MarshalJSON encodes the item type as its string name
func (t ItemType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an item type from its string name
func (t *ItemType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseItemType(s)
	if !ok {
		return fmt.Errorf("invalid item type: %q", s)
	}
	*t = parsed
	return nil
}

// Rarity represents the quality tier of an item
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

// String returns the string representation of a Rarity
func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Multiplier returns the stat multiplier for the rarity tier
func (r Rarity) Multiplier() float64 {
	switch r {
	case Uncommon:
		return 1.5
	case Rare:
		return 2.0
	case Epic:
		return 3.0
	case Legendary:
		return 5.0
	default:
		return 1.0
	}
}

// SellValue returns the base gold value for the rarity tier
func (r Rarity) SellValue() int {
	switch r {
	case Uncommon:
		return 25
	case Rare:
		return 50
	case Epic:
		return 100
	case Legendary:
		return 250
	default:
		return 10
	}
}

// ParseRarity converts a string to a Rarity
func ParseRarity(s string) (Rarity, bool) {
	switch s {
	case "common":
		return Common, true
	case "uncommon":
		return Uncommon, true
	case "rare":
		return Rare, true
	case "epic":
		return Epic, true
	case "legendary":
		return Legendary, true
	default:
		return Common, false
	}
}

// MarshalJSON encodes the rarity as its string name
func (r Rarity) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a rarity from its string name
func (r *Rarity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseRarity(s)
	if !ok {
		return fmt.Errorf("invalid rarity: %q", s)
	}
	*r = parsed
	return nil
}

// Item is a generated piece of loot. Stats is empty (never nil) for
// consumables; Effect is null on the wire for gear.
type Item struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Type   ItemType       `json:"type"`
	Rarity Rarity         `json:"rarity"`
	Stats  map[string]int `json:"stats"`
	Value  int            `json:"value"`
	Effect *string        `json:"effect"`
}
