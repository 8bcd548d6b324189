// Command dungeongen generates dungeon layouts and prints them as JSON
// on stdout, for consumption by a game backend via subprocess calls.
//
// Usage:
//
//	dungeongen --level 5
//	dungeongen --level 10 --seed 42 --validate
//	dungeongen --level 3 --count 5 --export dungeon.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/lawnchairsociety/looterforge/internal/dungeon"
	"github.com/lawnchairsociety/looterforge/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	level := flag.Int("level", 0, "Dungeon level (difficulty, required)")
	seed := flag.Int64("seed", 0, "Random seed for reproducible generation (0 uses current time)")
	count := flag.Int("count", 1, "Number of dungeons to generate")
	validate := flag.Bool("validate", false, "Validate the generated dungeon structure")
	compact := flag.Bool("compact", false, "Output compact JSON (no indentation)")
	export := flag.String("export", "", "Export dungeon data to JSON file instead of stdout")
	stats := flag.Bool("stats", false, "Print a layout summary to stderr")
	loggingPath := flag.String("logging", "data/logging.yaml", "Path to logging configuration")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingPath)
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return 1
	}

	if *level < 1 {
		return fail("ValueError", fmt.Errorf("level must be at least 1, got %d", *level))
	}
	if *count < 1 {
		return fail("ValueError", fmt.Errorf("count must be at least 1, got %d", *count))
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	engine := dungeon.NewEngine()

	for i := 0; i < *count; i++ {
		d := engine.Generate(*level, rng)

		if *validate {
			if err := d.Validate(); err != nil {
				return fail("ValidationError", err)
			}
		}

		var data []byte
		var err error
		if *compact {
			data, err = json.Marshal(d)
		} else {
			data, err = json.MarshalIndent(d, "", "  ")
		}
		if err != nil {
			return fail("MarshalError", err)
		}

		if *stats {
			printStats(d)
		}

		if *export != "" {
			filename := exportName(*export, i, *count)
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fail("ExportError", err)
			}
			logger.Info("dungeon exported", "file", filename, "level", *level)
		} else {
			fmt.Println(string(data))
		}
	}

	return 0
}

// fail reports an error as a JSON record on stderr, mirroring the
// layout consumers expect: {"error": "...", "type": "..."}
func fail(kind string, err error) int {
	record := map[string]string{
		"error": err.Error(),
		"type":  kind,
	}
	data, _ := json.Marshal(record)
	fmt.Fprintln(os.Stderr, string(data))
	return 1
}

// exportName numbers the output files when generating more than one
// dungeon, turning "dungeon.json" into "dungeon_1.json" and so on
func exportName(base string, index, count int) string {
	if count == 1 {
		return base
	}
	ext := ".json"
	if dot := strings.LastIndex(base, "."); dot >= 0 {
		ext = base[dot:]
		base = base[:dot]
	}
	return fmt.Sprintf("%s_%d%s", base, index+1, ext)
}

// printStats writes a human-readable layout summary to stderr, keeping
// stdout clean for the JSON payload
func printStats(d *dungeon.Dungeon) {
	w := os.Stderr

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "Dungeon Level %d - Statistics\n", d.Level)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))

	fmt.Fprintf(w, "\nRooms:\n  Total: %d\n", d.Metadata.NumRooms)
	roomTypes := make(map[string]int)
	for _, room := range d.Rooms {
		roomTypes[room.Type.String()]++
	}
	for _, line := range sortedCounts(roomTypes) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintf(w, "\nTraps: %d\n", d.Metadata.NumTraps)
	trapTypes := make(map[string]int)
	for _, trap := range d.Traps {
		trapTypes[trap.Type.String()]++
	}
	for _, line := range sortedCounts(trapTypes) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintf(w, "\nEnemy Spawn Points: %d\n", d.Metadata.NumSpawnPoints)
	enemyTypes := make(map[string]int)
	for _, sp := range d.SpawnPoints {
		enemyTypes[sp.EnemyType]++
	}
	for _, line := range sortedCounts(enemyTypes) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintf(w, "\nCorridors: %d\n", len(d.Corridors))
	fmt.Fprintf(w, "Walls: %d\n", len(d.Walls))
	fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", 60))
}

// sortedCounts formats a count map as "Name: n" lines in key order
func sortedCounts(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %d", strings.ToUpper(k[:1]), k[1:], counts[k]))
	}
	return lines
}
