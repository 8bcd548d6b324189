// Package combat implements stat-driven damage calculation and
// turn-based battle simulation.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/lawnchairsociety/looterforge/internal/stats"
)

// DefaultCritChance is the critical hit chance used when the attacker
// has no crit-modifying gear.
const DefaultCritChance = 0.1

// Stat scaling factors for the damage formula
const (
	strengthScale     = 0.5
	intelligenceScale = 0.7
	vitalityScale     = 0.3
)

// DamageResult holds the outcome of a single damage calculation
type DamageResult struct {
	Damage       int           `json:"damage"`
	DamageType   DamageType    `json:"damageType"`
	IsCritical   bool          `json:"isCritical"`
	StatusEffect *StatusEffect `json:"statusEffect,omitempty"`
}

// CalculateDamage computes a single hit. Physical damage scales with the
// attacker's strength, elemental damage with intelligence, poison with
// neither. The defender's vitality reduces the total, floored at 1
// before the critical roll so a crit always deals at least 2.
//
// Draw order on rng is fixed: crit roll, effect id, then at most one
// status-chance roll. Callers relying on reproducible streams must not
// reorder calls.
func CalculateDamage(baseDamage int, damageType DamageType, attacker, defender *stats.Stats, critChance float64, rng *rand.Rand) DamageResult {
	total := float64(baseDamage)

	switch {
	case damageType == Physical:
		total += float64(attacker.Strength) * strengthScale
	case damageType.IsElemental():
		total += float64(attacker.Intelligence) * intelligenceScale
	}

	total -= float64(defender.Vitality) * vitalityScale
	if total < 1 {
		total = 1
	}

	isCritical := rng.Float64() < critChance
	if isCritical {
		total *= 2
	}

	result := DamageResult{
		Damage:     int(total),
		DamageType: damageType,
		IsCritical: isCritical,
	}

	// The effect id is drawn before the chance roll even when no effect
	// can proc, to keep the random stream stable across damage types.
	effectID := fmt.Sprintf("status_%d", 1000+rng.Intn(9000))

	switch damageType {
	case Fire:
		if rng.Float64() < 0.3 {
			result.StatusEffect = &StatusEffect{
				ID:       effectID,
				Type:     Burn,
				Duration: 5000,
				Value:    total * 0.1,
			}
		}
	case Ice:
		if rng.Float64() < 0.4 {
			result.StatusEffect = &StatusEffect{
				ID:       effectID,
				Type:     Slow,
				Duration: 4000,
				Value:    0.5,
			}
		}
	case Lightning:
		if rng.Float64() < 0.2 {
			result.StatusEffect = &StatusEffect{
				ID:       effectID,
				Type:     Stun,
				Duration: 2000,
				Value:    0,
			}
		}
	case Poison:
		if rng.Float64() < 0.5 {
			result.StatusEffect = &StatusEffect{
				ID:       effectID,
				Type:     PoisonEffect,
				Duration: 10000,
				Value:    total * 0.05,
			}
		}
	}

	return result
}
