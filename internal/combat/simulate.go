package combat

import (
	"math/rand"

	"github.com/lawnchairsociety/looterforge/internal/stats"
)

// MaxRounds is the safety cap on combat length. A fight that reaches it
// ends immediately; the victory flag still only reflects whether the
// player is standing.
const MaxRounds = 100

// Combatant is the minimal view of a fighter the simulator needs.
// The player side derives its attack from Level; the enemy side uses
// its flat Damage value.
type Combatant struct {
	Name   string
	Level  int
	Health int
	Damage int
	Stats  *stats.Stats
}

// Round logs one exchange of blows. EnemyAttack and PlayerHealth are
// absent when the enemy died to the player's hit that round.
type Round struct {
	Round        int           `json:"round"`
	PlayerAttack DamageResult  `json:"playerAttack"`
	EnemyHealth  int           `json:"enemyHealth"`
	EnemyAttack  *DamageResult `json:"enemyAttack,omitempty"`
	PlayerHealth *int          `json:"playerHealth,omitempty"`
}

// Report summarizes a simulated battle. Logged health values are floored
// at zero for display; the loop runs on the signed running totals.
type Report struct {
	Victory           bool    `json:"victory"`
	Rounds            int     `json:"rounds"`
	FinalPlayerHealth int     `json:"finalPlayerHealth"`
	FinalEnemyHealth  int     `json:"finalEnemyHealth"`
	CombatLog         []Round `json:"combatLog"`
}

// Simulate runs a battle between a player and an enemy. The player
// always strikes first with a physical attack of base 20 + 5 per level;
// the enemy counter-attacks with its flat damage while alive. The loop
// ends when either side's health drops to zero or MaxRounds is reached.
func Simulate(player, enemy Combatant, rng *rand.Rand) *Report {
	playerHealth := player.Health
	enemyHealth := enemy.Health
	round := 0
	log := make([]Round, 0, 8)

	for playerHealth > 0 && enemyHealth > 0 && round < MaxRounds {
		round++

		playerAttack := CalculateDamage(20+player.Level*5, Physical, player.Stats, enemy.Stats, DefaultCritChance, rng)
		enemyHealth -= playerAttack.Damage

		entry := Round{
			Round:        round,
			PlayerAttack: playerAttack,
			EnemyHealth:  clampZero(enemyHealth),
		}

		if enemyHealth > 0 {
			enemyAttack := CalculateDamage(enemy.Damage, Physical, enemy.Stats, player.Stats, DefaultCritChance, rng)
			playerHealth -= enemyAttack.Damage

			entry.EnemyAttack = &enemyAttack
			remaining := clampZero(playerHealth)
			entry.PlayerHealth = &remaining
		}

		log = append(log, entry)
	}

	return &Report{
		Victory:           playerHealth > 0,
		Rounds:            round,
		FinalPlayerHealth: clampZero(playerHealth),
		FinalEnemyHealth:  clampZero(enemyHealth),
		CombatLog:         log,
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
