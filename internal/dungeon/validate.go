package dungeon

import (
	"errors"
	"fmt"
)

// ErrInvalid is the base error for layout validation failures
var ErrInvalid = errors.New("invalid dungeon")

// Validate checks structural integrity of a layout: at least one room,
// exactly one spawn room for the player, and metadata counts that match
// reality.
func (d *Dungeon) Validate() error {
	if len(d.Rooms) == 0 {
		return fmt.Errorf("%w: must have at least one room", ErrInvalid)
	}

	spawnRooms := 0
	for _, room := range d.Rooms {
		if room.Type == Spawn {
			spawnRooms++
		}
	}
	if spawnRooms != 1 {
		return fmt.Errorf("%w: must have exactly one spawn room, found %d", ErrInvalid, spawnRooms)
	}

	if d.Metadata.NumRooms != len(d.Rooms) {
		return fmt.Errorf("%w: metadata room count %d does not match %d rooms",
			ErrInvalid, d.Metadata.NumRooms, len(d.Rooms))
	}
	if d.Metadata.NumTraps != len(d.Traps) {
		return fmt.Errorf("%w: metadata trap count %d does not match %d traps",
			ErrInvalid, d.Metadata.NumTraps, len(d.Traps))
	}
	if d.Metadata.NumSpawnPoints != len(d.SpawnPoints) {
		return fmt.Errorf("%w: metadata spawn point count %d does not match %d spawn points",
			ErrInvalid, d.Metadata.NumSpawnPoints, len(d.SpawnPoints))
	}

	return nil
}
