// Package sim runs full dungeon expeditions and aggregate combat
// batches on top of the combat, enemy, and loot systems.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/lawnchairsociety/looterforge/internal/combat"
	"github.com/lawnchairsociety/looterforge/internal/enemy"
	"github.com/lawnchairsociety/looterforge/internal/logger"
	"github.com/lawnchairsociety/looterforge/internal/loot"
	"github.com/lawnchairsociety/looterforge/internal/player"
)

// lootDropChance is the per-kill probability of an item dropping
const lootDropChance = 0.6

// EnemyDetail records one defeated enemy in a run report
type EnemyDetail struct {
	Type         string `json:"type"`
	Level        int    `json:"level"`
	CombatRounds int    `json:"combatRounds"`
}

// RunResult is the outcome of a dungeon run. Reason is only set on
// failure; EnemyDetails, TotalGold and TotalExperience only on success.
type RunResult struct {
	Success         bool           `json:"success"`
	Reason          string         `json:"reason,omitempty"`
	EnemiesDefeated int            `json:"enemiesDefeated"`
	EnemyDetails    []EnemyDetail  `json:"enemyDetails,omitempty"`
	LootCollected   []*loot.Item   `json:"lootCollected"`
	FinalStats      *player.Player `json:"finalStats"`
	TotalGold       int            `json:"totalGold,omitempty"`
	TotalExperience int            `json:"totalExperience,omitempty"`
}

// Runner executes dungeon runs with a fixed enemy roster and loot tables
type Runner struct {
	factory *enemy.Factory
	loot    *loot.Generator
}

// NewRunner creates a runner. Nil arguments fall back to the built-in
// enemy templates and loot tables.
func NewRunner(factory *enemy.Factory, generator *loot.Generator) *Runner {
	if factory == nil {
		factory = enemy.NewFactory(nil)
	}
	if generator == nil {
		generator = loot.NewGenerator(nil)
	}
	return &Runner{factory: factory, loot: generator}
}

// DungeonRun simulates a full expedition: 3 + dungeonLevel encounters
// fought in sequence, with the player's health carried between fights.
// Dungeons of level 5 and up end with a demon boss. Each kill has a 60%
// chance to drop an item rolled at the dungeon's level. The run ends
// early if the player falls.
func (r *Runner) DungeonRun(playerLevel, dungeonLevel int, rng *rand.Rand) *RunResult {
	p := player.New("Hero", playerLevel)

	numEnemies := 3 + dungeonLevel
	defeated := make([]EnemyDetail, 0, numEnemies)
	collected := make([]*loot.Item, 0, numEnemies)

	logger.Debug("starting dungeon run",
		"player_level", playerLevel,
		"dungeon_level", dungeonLevel,
		"encounters", numEnemies)

	for i := 0; i < numEnemies; i++ {
		enemyType := ""
		if i == numEnemies-1 && dungeonLevel >= 5 {
			enemyType = enemy.BossType
		} else {
			enemyType = enemy.BasicTypes[rng.Intn(len(enemy.BasicTypes))]
		}

		foe := r.factory.Create(enemyType, dungeonLevel, rng)
		report := combat.Simulate(p.Combatant(), foe.Combatant(), rng)

		if !report.Victory {
			logger.Info("dungeon run failed",
				"defeated_by", foe.Type,
				"enemies_defeated", len(defeated))
			return &RunResult{
				Success:         false,
				Reason:          fmt.Sprintf("Defeated by %s", foe.Type),
				EnemiesDefeated: len(defeated),
				LootCollected:   collected,
				FinalStats:      p,
			}
		}

		p.Health = report.FinalPlayerHealth
		p.Experience += foe.Experience
		p.Gold += foe.GoldReward

		defeated = append(defeated, EnemyDetail{
			Type:         foe.Type,
			Level:        foe.Level,
			CombatRounds: report.Rounds,
		})

		if rng.Float64() < lootDropChance {
			rarity := loot.RollDropRarity(rng)
			item := r.loot.GenerateRandom(rarity, dungeonLevel, rng)
			collected = append(collected, item)
			p.AddLoot(item)
		}
	}

	logger.Info("dungeon run complete",
		"enemies_defeated", len(defeated),
		"loot_collected", len(collected),
		"player_health", p.Health)

	return &RunResult{
		Success:         true,
		EnemiesDefeated: len(defeated),
		EnemyDetails:    defeated,
		LootCollected:   collected,
		FinalStats:      p,
		TotalGold:       p.Gold,
		TotalExperience: p.Experience,
	}
}
