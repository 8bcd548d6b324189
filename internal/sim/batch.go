package sim

import (
	"math/rand"

	"github.com/lawnchairsociety/looterforge/internal/combat"
)

// BatchResult holds aggregated results from many combat simulations
type BatchResult struct {
	Simulations         int     `json:"simulations"`
	PlayerWins          int     `json:"playerWins"`
	EnemyWins           int     `json:"enemyWins"`
	WinRate             float64 `json:"winRate"`
	AvgRounds           float64 `json:"avgRounds"`
	AvgPlayerHealthLeft float64 `json:"avgPlayerHealthLeft"`
	MinRounds           int     `json:"minRounds"`
	MaxRounds           int     `json:"maxRounds"`
}

// RunBatch simulates the same matchup repeatedly and aggregates the
// outcomes. WinRate is a percentage; AvgPlayerHealthLeft only averages
// over fights the player won.
func RunBatch(player, enemy combat.Combatant, iterations int, rng *rand.Rand) BatchResult {
	result := BatchResult{
		Simulations: iterations,
		MinRounds:   combat.MaxRounds,
	}

	totalRounds := 0
	totalHealthLeft := 0

	for i := 0; i < iterations; i++ {
		report := combat.Simulate(player, enemy, rng)

		if report.Victory {
			result.PlayerWins++
			totalHealthLeft += report.FinalPlayerHealth
		} else {
			result.EnemyWins++
		}

		totalRounds += report.Rounds
		if report.Rounds < result.MinRounds {
			result.MinRounds = report.Rounds
		}
		if report.Rounds > result.MaxRounds {
			result.MaxRounds = report.Rounds
		}
	}

	result.WinRate = float64(result.PlayerWins) / float64(iterations) * 100
	result.AvgRounds = float64(totalRounds) / float64(iterations)

	if result.PlayerWins > 0 {
		result.AvgPlayerHealthLeft = float64(totalHealthLeft) / float64(result.PlayerWins)
	}

	return result
}
