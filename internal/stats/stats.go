package stats

// Stats holds the four core attributes shared by players and enemies.
// Combat scales physical damage off Strength, elemental damage off
// Intelligence, and damage resistance off Vitality. Dexterity is carried
// on the wire for the game client but has no combat formula yet.
type Stats struct {
	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Vitality     int `json:"vitality" yaml:"vitality"`
}

// NewDefault returns stats with all attributes at 10.
func NewDefault() *Stats {
	return &Stats{
		Strength:     10,
		Dexterity:    10,
		Intelligence: 10,
		Vitality:     10,
	}
}

// New creates stats from individual values.
func New(strength, dexterity, intelligence, vitality int) *Stats {
	return &Stats{
		Strength:     strength,
		Dexterity:    dexterity,
		Intelligence: intelligence,
		Vitality:     vitality,
	}
}

// ForPlayerLevel returns player stats for the given level.
// All attributes start at 10 and gain 2 per level past the first.
func ForPlayerLevel(level int) *Stats {
	v := 10 + (level-1)*2
	return New(v, v, v, v)
}

// ForEnemyLevel returns enemy stats for the given level. Enemies are
// brawnier and tougher than they are clever.
func ForEnemyLevel(level int) *Stats {
	return New(8+level*2, 6+level, 5+level, 10+level*2)
}
