// Command gamesim exposes the game mechanics as JSON over stdout, for
// consumption by a game backend via subprocess calls.
//
// Usage:
//
//	gamesim --action generate-loot --level 5 --count 3
//	gamesim --action simulate-combat --player-level 5 --enemy-level 5
//	gamesim --action simulate-dungeon --player-level 10 --dungeon-level 5
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lawnchairsociety/looterforge/internal/combat"
	"github.com/lawnchairsociety/looterforge/internal/enemy"
	"github.com/lawnchairsociety/looterforge/internal/logger"
	"github.com/lawnchairsociety/looterforge/internal/loot"
	"github.com/lawnchairsociety/looterforge/internal/player"
	"github.com/lawnchairsociety/looterforge/internal/sim"
)

type options struct {
	action       string
	level        int
	playerLevel  int
	enemyLevel   int
	dungeonLevel int
	enemyType    string
	rarity       string
	itemType     string
	count        int
	iterations   int
	compact      bool
	export       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := options{}
	flag.StringVar(&opts.action, "action", "", "Action to perform: generate-loot, simulate-combat, simulate-dungeon")
	flag.IntVar(&opts.level, "level", 1, "Player level for loot scaling")
	flag.IntVar(&opts.playerLevel, "player-level", 1, "Player level for combat/dungeon simulation")
	flag.IntVar(&opts.enemyLevel, "enemy-level", 1, "Enemy level for combat simulation")
	flag.IntVar(&opts.dungeonLevel, "dungeon-level", 1, "Dungeon level for dungeon simulation")
	flag.StringVar(&opts.enemyType, "enemy-type", "zombie", "Enemy type: zombie, skeleton, orc, demon")
	flag.StringVar(&opts.rarity, "rarity", "common", "Item rarity: common, uncommon, rare, epic, legendary")
	flag.StringVar(&opts.itemType, "item-type", "", "Item type: weapon, armor, potion, scroll (random if empty)")
	flag.IntVar(&opts.count, "count", 1, "Number of items to generate")
	flag.IntVar(&opts.iterations, "iterations", 1, "Combat simulations to aggregate")
	flag.BoolVar(&opts.compact, "compact", false, "Output compact JSON (no indentation)")
	flag.StringVar(&opts.export, "export", "", "Export results to JSON file instead of stdout")
	seed := flag.Int64("seed", 0, "Random seed for reproducible results (0 uses current time)")
	enemiesPath := flag.String("enemies", "data/enemies.yaml", "Path to enemy template file")
	lootPath := flag.String("loot", "data/loot.yaml", "Path to loot name table file")
	loggingPath := flag.String("logging", "data/logging.yaml", "Path to logging configuration")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingPath)
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return 1
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	factory := loadFactory(*enemiesPath)
	generator := loadGenerator(*lootPath)

	var result any
	var err error
	switch opts.action {
	case "generate-loot":
		result, err = generateLoot(opts, generator, rng)
	case "simulate-combat":
		result, err = simulateCombat(opts, factory, rng)
	case "simulate-dungeon":
		result = sim.NewRunner(factory, generator).DungeonRun(opts.playerLevel, opts.dungeonLevel, rng)
	case "":
		flag.Usage()
		return 1
	default:
		err = fmt.Errorf("Invalid action: %s. Must be one of: generate-loot, simulate-combat, simulate-dungeon", opts.action)
	}
	if err != nil {
		return fail("ValueError", err)
	}

	var data []byte
	if opts.compact {
		data, err = json.Marshal(result)
	} else {
		data, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return fail("MarshalError", err)
	}

	if opts.export != "" {
		if err := os.WriteFile(opts.export, data, 0644); err != nil {
			return fail("ExportError", err)
		}
		logger.Info("results exported", "file", opts.export, "action", opts.action)
	} else {
		fmt.Println(string(data))
	}

	return 0
}

// loadFactory builds the enemy factory from a template file, falling
// back to the built-in roster when the file is absent
func loadFactory(path string) *enemy.Factory {
	templates, err := enemy.LoadTemplatesFromYAML(path)
	if err != nil {
		logger.Debug("using built-in enemy templates", "path", path, "reason", err)
		return enemy.NewFactory(nil)
	}
	return enemy.NewFactory(templates)
}

// loadGenerator builds the loot generator from a name table file,
// falling back to the built-in tables when the file is absent
func loadGenerator(path string) *loot.Generator {
	tables, err := loot.LoadTablesFromYAML(path)
	if err != nil {
		logger.Debug("using built-in loot tables", "path", path, "reason", err)
		return loot.NewGenerator(nil)
	}
	return loot.NewGenerator(tables)
}

func generateLoot(opts options, generator *loot.Generator, rng *rand.Rand) (any, error) {
	rarity, ok := loot.ParseRarity(opts.rarity)
	if !ok {
		return nil, fmt.Errorf("Invalid rarity: %s. Must be one of: common, uncommon, rare, epic, legendary", opts.rarity)
	}

	if opts.count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", opts.count)
	}

	typed := false
	var itemType loot.ItemType
	if opts.itemType != "" {
		itemType, ok = loot.ParseItemType(opts.itemType)
		if !ok {
			return nil, fmt.Errorf("Invalid item type: %s. Must be one of: weapon, armor, potion, scroll", opts.itemType)
		}
		typed = true
	}

	items := make([]*loot.Item, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		var item *loot.Item
		if typed {
			item = generator.Generate(rarity, itemType, opts.level, rng)
		} else {
			item = generator.GenerateRandom(rarity, opts.level, rng)
		}
		items = append(items, item)
	}

	return map[string][]*loot.Item{"items": items}, nil
}

func simulateCombat(opts options, factory *enemy.Factory, rng *rand.Rand) (any, error) {
	if !factory.Known(opts.enemyType) {
		return nil, fmt.Errorf("Invalid enemy type: %s. Must be one of: zombie, skeleton, orc, demon", opts.enemyType)
	}
	if opts.iterations < 1 {
		return nil, fmt.Errorf("iterations must be at least 1, got %d", opts.iterations)
	}

	p := player.New("Hero", opts.playerLevel)
	foe := factory.Create(opts.enemyType, opts.enemyLevel, rng)

	if opts.iterations > 1 {
		batch := sim.RunBatch(p.Combatant(), foe.Combatant(), opts.iterations, rng)
		return map[string]any{
			"player": p,
			"enemy":  foe,
			"batch":  batch,
		}, nil
	}

	report := combat.Simulate(p.Combatant(), foe.Combatant(), rng)
	return map[string]any{
		"player": p,
		"enemy":  foe,
		"combat": report,
	}, nil
}

// fail reports an error as a JSON record on stderr, mirroring the
// format consumers expect: {"error": "...", "type": "..."}
func fail(kind string, err error) int {
	record := map[string]string{
		"error": err.Error(),
		"type":  kind,
	}
	data, _ := json.Marshal(record)
	fmt.Fprintln(os.Stderr, string(data))
	return 1
}
