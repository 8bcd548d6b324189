package dungeon

import (
	"bytes"
	"encoding/json"
	"math"
	"math/rand"
	"testing"
)

func TestGenerate_RoomCounts(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 3},
		{2, 4},
		{4, 5},
		{5, 5},
		{6, 6},
		{10, 8},
		{20, 8}, // capped
	}

	for _, tt := range tests {
		rng := rand.New(rand.NewSource(1))
		d := NewEngine().Generate(tt.level, rng)
		if len(d.Rooms) != tt.expected {
			t.Errorf("level %d: %d rooms, expected %d", tt.level, len(d.Rooms), tt.expected)
		}
	}
}

func TestGenerate_SpawnRoomFirstBossRoomLast(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NewEngine().Generate(5, rng)

	if d.Rooms[0].Type != Spawn {
		t.Errorf("first room type = %v, expected spawn", d.Rooms[0].Type)
	}
	if d.Rooms[0].X != 0 || d.Rooms[0].Z != 0 {
		t.Errorf("spawn room not at origin: (%v, %v)", d.Rooms[0].X, d.Rooms[0].Z)
	}
	if d.Rooms[0].Width != 15 || d.Rooms[0].Height != 15 {
		t.Errorf("spawn room size = %vx%v, expected 15x15", d.Rooms[0].Width, d.Rooms[0].Height)
	}

	last := d.Rooms[len(d.Rooms)-1]
	if last.Type != Boss {
		t.Errorf("last room type = %v, expected boss", last.Type)
	}

	spawnCount := 0
	for _, room := range d.Rooms {
		if room.Type == Spawn {
			spawnCount++
		}
	}
	if spawnCount != 1 {
		t.Errorf("found %d spawn rooms, expected 1", spawnCount)
	}
}

func TestGenerate_RoomPlacement(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d := NewEngine().Generate(6, rng)

	for i, room := range d.Rooms[1:] {
		dist := math.Hypot(room.X, room.Z)
		if dist < 25 || dist > 35 {
			t.Errorf("room %d at distance %v, expected [25, 35]", i+1, dist)
		}
		if room.Width < 10 || room.Width >= 18 {
			t.Errorf("room %d width %v out of [10, 18)", i+1, room.Width)
		}
		if room.Height < 10 || room.Height >= 18 {
			t.Errorf("room %d height %v out of [10, 18)", i+1, room.Height)
		}
	}
}

func TestGenerate_CorridorsFormLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	d := NewEngine().Generate(8, rng)

	// one corridor per added room, plus the closing link back to spawn
	if len(d.Corridors) != len(d.Rooms) {
		t.Fatalf("%d corridors for %d rooms, expected equal", len(d.Corridors), len(d.Rooms))
	}

	for i, c := range d.Corridors {
		if c.Width != 3.0 {
			t.Errorf("corridor %d width = %v, expected 3.0", i, c.Width)
		}
	}

	closing := d.Corridors[len(d.Corridors)-1]
	if closing.End.X != 0 || closing.End.Z != 0 {
		t.Errorf("closing corridor ends at (%v, %v), expected origin", closing.End.X, closing.End.Z)
	}
}

func TestGenerate_TrapCountAndPlacement(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 1},
		{2, 3},
		{3, 4},
		{5, 7},
		{10, 15},
	}

	for _, tt := range tests {
		rng := rand.New(rand.NewSource(5))
		d := NewEngine().Generate(tt.level, rng)
		if len(d.Traps) != tt.expected {
			t.Errorf("level %d: %d traps, expected %d", tt.level, len(d.Traps), tt.expected)
		}

		for _, trap := range d.Traps {
			if trap.Damage != 10+tt.level*5 {
				t.Errorf("level %d trap damage = %d, expected %d", tt.level, trap.Damage, 10+tt.level*5)
			}
			if trap.Triggered {
				t.Error("new trap already triggered")
			}
		}
	}
}

func TestGenerate_TrapsInsideRooms(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	d := NewEngine().Generate(10, rng)

	// offsets are scaled by 0.8, so a trap sits within 40% of the room
	// dimensions from some room center
	for _, trap := range d.Traps {
		inside := false
		for _, room := range d.Rooms {
			if math.Abs(trap.Position.X-room.X) <= room.Width*0.4 &&
				math.Abs(trap.Position.Z-room.Z) <= room.Height*0.4 {
				inside = true
				break
			}
		}
		if !inside {
			t.Errorf("trap %s at (%v, %v) outside all rooms", trap.ID, trap.Position.X, trap.Position.Z)
		}
	}
}

func TestGenerate_TrapIDsPersistAcrossRuns(t *testing.T) {
	engine := NewEngine()
	rng := rand.New(rand.NewSource(1))

	first := engine.Generate(2, rng)
	second := engine.Generate(2, rng)

	if first.Traps[0].ID != "trap_1" {
		t.Errorf("first trap ID = %q, expected trap_1", first.Traps[0].ID)
	}
	// counter continues, IDs never repeat within a session
	wantID := "trap_4" // level 2 produces 3 traps per dungeon
	if second.Traps[0].ID != wantID {
		t.Errorf("second run first trap ID = %q, expected %q", second.Traps[0].ID, wantID)
	}
}

func TestGenerate_SpawnPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	d := NewEngine().Generate(6, rng)

	bossSpawns := 0
	for _, sp := range d.SpawnPoints {
		switch sp.EnemyType {
		case "demon":
			bossSpawns++
			if sp.Cooldown != 60000 {
				t.Errorf("boss spawn cooldown = %d, expected 60000", sp.Cooldown)
			}
		case "zombie", "skeleton", "orc":
			if sp.Cooldown != 30000 {
				t.Errorf("%s spawn cooldown = %d, expected 30000", sp.EnemyType, sp.Cooldown)
			}
		default:
			t.Errorf("unexpected enemy type %q", sp.EnemyType)
		}
		if sp.LastSpawn != 0 {
			t.Errorf("fresh spawn point last_spawn = %d, expected 0", sp.LastSpawn)
		}
	}

	if bossSpawns != 1 {
		t.Errorf("%d boss spawn points, expected exactly 1", bossSpawns)
	}

	// boss room holds 1 spawner, every other enemy room holds 2-4
	nonBossRooms := len(d.Rooms) - 2
	low := 1 + nonBossRooms*2
	high := 1 + nonBossRooms*4
	if len(d.SpawnPoints) < low || len(d.SpawnPoints) > high {
		t.Errorf("%d spawn points, expected [%d, %d]", len(d.SpawnPoints), low, high)
	}
}

func TestGenerate_WallsPerRoom(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	d := NewEngine().Generate(7, rng)

	if len(d.Walls) != len(d.Rooms)*4 {
		t.Fatalf("%d walls for %d rooms, expected %d", len(d.Walls), len(d.Rooms), len(d.Rooms)*4)
	}

	for _, wall := range d.Walls {
		if wall.Height != 4.0 {
			t.Errorf("wall height = %v, expected 4.0", wall.Height)
		}
	}

	// north wall of the spawn room
	north := d.Walls[0]
	if north.Z != -8 { // -15/2 - 1/2
		t.Errorf("spawn north wall z = %v, expected -8", north.Z)
	}
	if north.Width != 17 { // 15 + 2*1
		t.Errorf("spawn north wall width = %v, expected 17", north.Width)
	}
}

func TestGenerate_MetadataMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	d := NewEngine().Generate(9, rng)

	if d.Metadata.NumRooms != len(d.Rooms) {
		t.Errorf("metadata rooms = %d, actual %d", d.Metadata.NumRooms, len(d.Rooms))
	}
	if d.Metadata.NumTraps != len(d.Traps) {
		t.Errorf("metadata traps = %d, actual %d", d.Metadata.NumTraps, len(d.Traps))
	}
	if d.Metadata.NumSpawnPoints != len(d.SpawnPoints) {
		t.Errorf("metadata spawn points = %d, actual %d", d.Metadata.NumSpawnPoints, len(d.SpawnPoints))
	}
	if d.Level != 9 {
		t.Errorf("level = %d, expected 9", d.Level)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := json.Marshal(NewEngine().Generate(5, rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	second, err := json.Marshal(NewEngine().Generate(5, rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("identical seeds produced different layouts")
	}

	third, _ := json.Marshal(NewEngine().Generate(5, rand.New(rand.NewSource(43))))
	if bytes.Equal(first, third) {
		t.Error("different seeds produced identical layouts")
	}
}

func TestGenerate_EnumWireFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data, err := json.Marshal(NewEngine().Generate(3, rng))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Dungeon
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Rooms[0].Type != Spawn {
		t.Errorf("round-tripped room type = %v, expected spawn", decoded.Rooms[0].Type)
	}
	if len(decoded.Traps) > 0 {
		if got := decoded.Traps[0].Type; got != NewEngine().Generate(3, rand.New(rand.NewSource(2))).Traps[0].Type {
			t.Errorf("round-tripped trap type mismatch: %v", got)
		}
	}
}
