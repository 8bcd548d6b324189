package dungeon

import (
	"encoding/json"
	"fmt"
)

// RoomType classifies a generated room
type RoomType int

const (
	Normal RoomType = iota
	Treasure
	Boss
	Spawn
)

// String returns the string representation of a RoomType
func (t RoomType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Treasure:
		return "treasure"
	case Boss:
		return "boss"
	case Spawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// ParseRoomType converts a string to a RoomType
func ParseRoomType(s string) (RoomType, bool) {
	switch s {
	case "normal":
		return Normal, true
	case "treasure":
		return Treasure, true
	case "boss":
		return Boss, true
	case "spawn":
		return Spawn, true
	default:
		return Normal, false
	}
}

// MarshalJSON encodes the room type as its string name
func (t RoomType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a room type from its string name
func (t *RoomType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseRoomType(s)
	if !ok {
		return fmt.Errorf("invalid room type: %q", s)
	}
	*t = parsed
	return nil
}

// TrapType classifies a trap placed in a room
type TrapType int

const (
	Spike TrapType = iota
	FireTrap
	Arrow
	PoisonTrap
)

// String returns the string representation of a TrapType
func (t TrapType) String() string {
	switch t {
	case Spike:
		return "spike"
	case FireTrap:
		return "fire"
	case Arrow:
		return "arrow"
	case PoisonTrap:
		return "poison"
	default:
		return "unknown"
	}
}

// ParseTrapType converts a string to a TrapType
func ParseTrapType(s string) (TrapType, bool) {
	switch s {
	case "spike":
		return Spike, true
	case "fire":
		return FireTrap, true
	case "arrow":
		return Arrow, true
	case "poison":
		return PoisonTrap, true
	default:
		return Spike, false
	}
}

// MarshalJSON encodes the trap type as its string name
func (t TrapType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a trap type from its string name
func (t *TrapType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseTrapType(s)
	if !ok {
		return fmt.Errorf("invalid trap type: %q", s)
	}
	*t = parsed
	return nil
}

// Position is a 3D point within the dungeon. Y is height off the floor.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Room is an axis-aligned floor rectangle centered at (X, Z).
// Width spans the X axis, Height spans the Z axis.
type Room struct {
	X      float64  `json:"x"`
	Z      float64  `json:"z"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Type   RoomType `json:"type"`
}

// Corridor connects two room centers
type Corridor struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
	Width float64  `json:"width"`
}

// Trap is a hazard placed inside a room
type Trap struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Type      TrapType `json:"type"`
	Damage    int      `json:"damage"`
	Triggered bool     `json:"triggered"`
}

// SpawnPoint marks where enemies appear. Cooldown and LastSpawn are
// in milliseconds.
type SpawnPoint struct {
	Position  Position `json:"position"`
	EnemyType string   `json:"enemy_type"`
	Cooldown  int      `json:"cooldown"`
	LastSpawn int      `json:"last_spawn"`
}

// Wall is a solid box segment surrounding a room
type Wall struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Metadata carries summary counts for quick inspection of a layout
type Metadata struct {
	NumRooms       int `json:"num_rooms"`
	NumTraps       int `json:"num_traps"`
	NumSpawnPoints int `json:"num_spawn_points"`
}

// Dungeon is a complete generated layout
type Dungeon struct {
	Rooms       []Room       `json:"rooms"`
	Corridors   []Corridor   `json:"corridors"`
	Traps       []Trap       `json:"traps"`
	SpawnPoints []SpawnPoint `json:"spawnPoints"`
	Walls       []Wall       `json:"walls"`
	Level       int          `json:"level"`
	Metadata    Metadata     `json:"metadata"`
}
