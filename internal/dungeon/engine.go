package dungeon

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lawnchairsociety/looterforge/internal/enemy"
	"github.com/lawnchairsociety/looterforge/internal/logger"
)

const (
	spawnRoomSize = 15.0
	roomDistance  = 25.0
	corridorWidth = 3.0
	maxRooms      = 8

	wallThickness = 1.0
	wallHeight    = 4.0

	bossSpawnCooldown   = 60000
	normalSpawnCooldown = 30000
)

var trapTypes = []TrapType{Spike, FireTrap, Arrow, PoisonTrap}

// Engine generates dungeon layouts. The trap ID counter persists across
// generations so traps stay uniquely identified within a session.
type Engine struct {
	trapCounter int
}

// NewEngine creates a new dungeon generation engine
func NewEngine() *Engine {
	return &Engine{}
}

// Generate builds a complete dungeon layout for the given level. All
// randomness comes from rng, so the same seed produces the same layout.
func (e *Engine) Generate(level int, rng *rand.Rand) *Dungeon {
	numRooms := min(3+level/2, maxRooms)

	rooms := make([]Room, 0, numRooms)
	corridors := make([]Corridor, 0, numRooms)
	traps := make([]Trap, 0, 4)
	spawnPoints := make([]SpawnPoint, 0, 8)
	walls := make([]Wall, 0, numRooms*4)

	// Player spawn room sits at the origin
	spawnRoom := Room{
		X:      0,
		Z:      0,
		Width:  spawnRoomSize,
		Height: spawnRoomSize,
		Type:   Spawn,
	}
	rooms = append(rooms, spawnRoom)

	// Remaining rooms are placed on a rough circle around the spawn,
	// each connected to the previous one by a corridor
	for i := 1; i < numRooms; i++ {
		angle := float64(i) / float64(numRooms) * math.Pi * 2
		distance := roomDistance + rng.Float64()*10

		roomType := determineRoomType(i, numRooms, rng)

		room := Room{
			X:      math.Cos(angle) * distance,
			Z:      math.Sin(angle) * distance,
			Width:  10.0 + rng.Float64()*8.0,
			Height: 10.0 + rng.Float64()*8.0,
			Type:   roomType,
		}
		rooms = append(rooms, room)

		prev := rooms[i-1]
		corridors = append(corridors, Corridor{
			Start: Position{X: prev.X, Z: prev.Z},
			End:   Position{X: room.X, Z: room.Z},
			Width: corridorWidth,
		})
	}

	// Close the loop back to the spawn room
	if len(rooms) > 1 {
		last := rooms[len(rooms)-1]
		corridors = append(corridors, Corridor{
			Start: Position{X: last.X, Z: last.Z},
			End:   Position{X: spawnRoom.X, Z: spawnRoom.Z},
			Width: corridorWidth,
		})
	}

	numTraps := int(float64(level) * 1.5)
	for i := 0; i < numTraps; i++ {
		room := rooms[rng.Intn(len(rooms))]
		traps = append(traps, e.createTrap(room, level, rng))
	}

	// Every room except the spawn gets enemy spawn points; boss rooms
	// hold a single boss spawner
	for _, room := range rooms {
		if room.Type == Spawn {
			continue
		}
		isBoss := room.Type == Boss
		count := 1
		if !isBoss {
			count = 2 + rng.Intn(3)
		}
		for j := 0; j < count; j++ {
			spawnPoints = append(spawnPoints, createSpawnPoint(room, isBoss, rng))
		}
	}

	for _, room := range rooms {
		walls = append(walls, roomWalls(room)...)
	}

	d := &Dungeon{
		Rooms:       rooms,
		Corridors:   corridors,
		Traps:       traps,
		SpawnPoints: spawnPoints,
		Walls:       walls,
		Level:       level,
		Metadata: Metadata{
			NumRooms:       len(rooms),
			NumTraps:       len(traps),
			NumSpawnPoints: len(spawnPoints),
		},
	}

	logger.Debug("generated dungeon layout",
		"level", level,
		"rooms", d.Metadata.NumRooms,
		"traps", d.Metadata.NumTraps,
		"spawn_points", d.Metadata.NumSpawnPoints)

	return d
}

// determineRoomType picks a type for the i-th room. The last room is
// always the boss room; earlier rooms have a 20% treasure chance.
func determineRoomType(index, totalRooms int, rng *rand.Rand) RoomType {
	if index == totalRooms-1 {
		return Boss
	}
	if rng.Float64() < 0.2 {
		return Treasure
	}
	return Normal
}

// createTrap places a trap at a random spot inside the room, keeping a
// margin of 10% of the room size on each side
func (e *Engine) createTrap(room Room, level int, rng *rand.Rand) Trap {
	trapType := trapTypes[rng.Intn(len(trapTypes))]

	offsetX := (rng.Float64() - 0.5) * room.Width * 0.8
	offsetZ := (rng.Float64() - 0.5) * room.Height * 0.8

	e.trapCounter++
	return Trap{
		ID: fmt.Sprintf("trap_%d", e.trapCounter),
		Position: Position{
			X: room.X + offsetX,
			Z: room.Z + offsetZ,
		},
		Type:      trapType,
		Damage:    10 + level*5,
		Triggered: false,
	}
}

// createSpawnPoint places an enemy spawner inside the room. Boss rooms
// always spawn the boss type and use the longer cooldown.
func createSpawnPoint(room Room, isBoss bool, rng *rand.Rand) SpawnPoint {
	enemyType := enemy.BossType
	cooldown := bossSpawnCooldown
	if !isBoss {
		enemyType = enemy.BasicTypes[rng.Intn(len(enemy.BasicTypes))]
		cooldown = normalSpawnCooldown
	}

	offsetX := (rng.Float64() - 0.5) * room.Width * 0.7
	offsetZ := (rng.Float64() - 0.5) * room.Height * 0.7

	return SpawnPoint{
		Position: Position{
			X: room.X + offsetX,
			Z: room.Z + offsetZ,
		},
		EnemyType: enemyType,
		Cooldown:  cooldown,
		LastSpawn: 0,
	}
}

// roomWalls builds the four wall segments boxing in a room
func roomWalls(room Room) []Wall {
	return []Wall{
		// North
		{
			X:      room.X,
			Z:      room.Z - room.Height/2 - wallThickness/2,
			Width:  room.Width + wallThickness*2,
			Height: wallHeight,
			Depth:  wallThickness,
		},
		// South
		{
			X:      room.X,
			Z:      room.Z + room.Height/2 + wallThickness/2,
			Width:  room.Width + wallThickness*2,
			Height: wallHeight,
			Depth:  wallThickness,
		},
		// East
		{
			X:      room.X + room.Width/2 + wallThickness/2,
			Z:      room.Z,
			Width:  wallThickness,
			Height: wallHeight,
			Depth:  room.Height,
		},
		// West
		{
			X:      room.X - room.Width/2 - wallThickness/2,
			Z:      room.Z,
			Width:  wallThickness,
			Height: wallHeight,
			Depth:  room.Height,
		},
	}
}
