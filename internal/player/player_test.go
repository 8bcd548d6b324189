package player

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lawnchairsociety/looterforge/internal/loot"
)

func TestNew_LevelOne(t *testing.T) {
	p := New("Hero", 1)

	if p.Health != 100 || p.MaxHealth != 100 {
		t.Errorf("level 1 health = %d/%d, expected 100/100", p.Health, p.MaxHealth)
	}
	if p.Mana != 50 || p.MaxMana != 50 {
		t.Errorf("level 1 mana = %d/%d, expected 50/50", p.Mana, p.MaxMana)
	}
	if p.Gold != 100 {
		t.Errorf("level 1 gold = %d, expected 100", p.Gold)
	}
	if p.Stats.Strength != 10 {
		t.Errorf("level 1 strength = %d, expected 10", p.Stats.Strength)
	}
	if p.Experience != 0 {
		t.Errorf("new player experience = %d, expected 0", p.Experience)
	}
}

func TestNew_HighLevel(t *testing.T) {
	p := New("Hero", 20)

	if p.Health != 480 {
		t.Errorf("level 20 health = %d, expected 480", p.Health)
	}
	if p.Mana != 240 {
		t.Errorf("level 20 mana = %d, expected 240", p.Mana)
	}
	if p.Gold != 2000 {
		t.Errorf("level 20 gold = %d, expected 2000", p.Gold)
	}
	if p.Stats.Vitality != 48 {
		t.Errorf("level 20 vitality = %d, expected 48", p.Stats.Vitality)
	}
}

func TestNew_EmptyCollectionsOnWire(t *testing.T) {
	data, err := json.Marshal(New("Hero", 1))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// fresh players serialize empty lists, not nulls
	if !strings.Contains(string(data), `"statusEffects":[]`) {
		t.Errorf("statusEffects not an empty list: %s", data)
	}
	if !strings.Contains(string(data), `"inventory":[]`) {
		t.Errorf("inventory not an empty list: %s", data)
	}
}

func TestAddLoot(t *testing.T) {
	p := New("Hero", 1)
	item := &loot.Item{ID: "item_1234", Name: "Sharp Sword", Stats: map[string]int{}}

	p.AddLoot(item)

	if len(p.Inventory) != 1 || p.Inventory[0].ID != "item_1234" {
		t.Errorf("inventory = %+v, expected the added item", p.Inventory)
	}
}

func TestCombatant(t *testing.T) {
	p := New("Hero", 5)
	c := p.Combatant()

	if c.Level != 5 || c.Health != p.Health || c.Stats != p.Stats {
		t.Errorf("combatant view %+v does not match player", c)
	}
}
