package combat

import (
	"encoding/json"
	"fmt"
)

// DamageType represents the element of an attack
type DamageType int

const (
	Physical DamageType = iota
	Fire
	Ice
	Lightning
	Poison
	Arcane
)

// String returns the string representation of a DamageType
func (t DamageType) String() string {
	switch t {
	case Physical:
		return "physical"
	case Fire:
		return "fire"
	case Ice:
		return "ice"
	case Lightning:
		return "lightning"
	case Poison:
		return "poison"
	case Arcane:
		return "arcane"
	default:
		return "unknown"
	}
}

// IsElemental returns true if the damage type scales with intelligence
func (t DamageType) IsElemental() bool {
	return t == Fire || t == Ice || t == Lightning || t == Arcane
}

// ParseDamageType converts a string to a DamageType
func ParseDamageType(s string) (DamageType, bool) {
	switch s {
	case "physical":
		return Physical, true
	case "fire":
		return Fire, true
	case "ice":
		return Ice, true
	case "lightning":
		return Lightning, true
	case "poison":
		return Poison, true
	case "arcane":
		return Arcane, true
	default:
		return Physical, false
	}
}

// MarshalJSON encodes the damage type as its string name
func (t DamageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a damage type from its string name
func (t *DamageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseDamageType(s)
	if !ok {
		return fmt.Errorf("invalid damage type: %q", s)
	}
	*t = parsed
	return nil
}

// StatusEffectType represents the kind of a timed status effect
type StatusEffectType int

const (
	Burn StatusEffectType = iota
	Freeze
	PoisonEffect
	Stun
	Slow
	Heal
	Shield
)

// String returns the string representation of a StatusEffectType
func (t StatusEffectType) String() string {
	switch t {
	case Burn:
		return "burn"
	case Freeze:
		return "freeze"
	case PoisonEffect:
		return "poison"
	case Stun:
		return "stun"
	case Slow:
		return "slow"
	case Heal:
		return "heal"
	case Shield:
		return "shield"
	default:
		return "unknown"
	}
}

// ParseStatusEffectType converts a string to a StatusEffectType
func ParseStatusEffectType(s string) (StatusEffectType, bool) {
	switch s {
	case "burn":
		return Burn, true
	case "freeze":
		return Freeze, true
	case "poison":
		return PoisonEffect, true
	case "stun":
		return Stun, true
	case "slow":
		return Slow, true
	case "heal":
		return Heal, true
	case "shield":
		return Shield, true
	default:
		return Burn, false
	}
}

// MarshalJSON encodes the status effect type as its string name
func (t StatusEffectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a status effect type from its string name
func (t *StatusEffectType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseStatusEffectType(s)
	if !ok {
		return fmt.Errorf("invalid status effect type: %q", s)
	}
	*t = parsed
	return nil
}

// StatusEffect is a timed secondary effect attached to a damage event.
// Duration is in milliseconds. Value is a per-tick amount for damage
// effects (burn, poison) or a strength factor for the rest.
type StatusEffect struct {
	ID       string           `json:"id"`
	Type     StatusEffectType `json:"type"`
	Duration int              `json:"duration"`
	Value    float64          `json:"value"`
}
