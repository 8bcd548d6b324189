package loot

// NameTable holds the prefix and base-name pools for one item type.
// Pools are ordered slices so a seeded random stream always picks the
// same name.
type NameTable struct {
	Prefixes []string `yaml:"prefixes"`
	Names    []string `yaml:"names"`
}

// Tables holds the name pools for every item type
type Tables struct {
	Weapon NameTable `yaml:"weapon"`
	Armor  NameTable `yaml:"armor"`
	Potion NameTable `yaml:"potion"`
	Scroll NameTable `yaml:"scroll"`
}

// DefaultTables returns the built-in name pools, used when no YAML
// override is supplied
func DefaultTables() *Tables {
	return &Tables{
		Weapon: NameTable{
			Prefixes: []string{"Sharp", "Keen", "Brutal", "Swift", "Deadly", "Ancient", "Cursed", "Blessed", "Vengeful", "Divine"},
			Names:    []string{"Sword", "Axe", "Bow", "Staff", "Dagger", "Mace", "Spear", "Hammer", "Wand"},
		},
		Armor: NameTable{
			Prefixes: []string{"Sturdy", "Light", "Heavy", "Reinforced", "Magical", "Dragon", "Shadow", "Holy", "Ethereal", "Titan"},
			Names:    []string{"Helmet", "Chestplate", "Boots", "Gauntlets", "Shield", "Cloak", "Belt", "Ring"},
		},
		Potion: NameTable{
			Prefixes: []string{"Minor", "Lesser", "Greater", "Major", "Superior", "Divine"},
			Names:    []string{"Health Potion", "Mana Potion", "Strength Elixir", "Defense Tonic", "Speed Draught"},
		},
		Scroll: NameTable{
			Prefixes: []string{"Scroll of", "Tome of", "Grimoire of", "Codex of"},
			Names:    []string{"Fireball", "Lightning", "Ice Storm", "Healing", "Teleportation", "Summoning"},
		},
	}
}

// table returns the name table for an item type
func (t *Tables) table(itemType ItemType) *NameTable {
	switch itemType {
	case Armor:
		return &t.Armor
	case Potion:
		return &t.Potion
	case Scroll:
		return &t.Scroll
	default:
		return &t.Weapon
	}
}
