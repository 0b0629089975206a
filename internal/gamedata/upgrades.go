package gamedata

import (
	"errors"
	"fmt"
)

// =============================================================================
// UPGRADE CATALOGUE
// =============================================================================
//
// Upgrades are the only thing the player can spend money on. Each one is
// defined in upgrades.json:
//
//   {
//     "id": "cam",
//     "name": "Webcam",
//     "baseCost": 50,
//     "effect": "auto_income",
//     "amount": 2,
//     "label": "Passive Income +2 $/sec"
//   }
//
// Cost of the next purchase is linear in the current level:
//
//   cost = baseCost * (level + 1)
//
// so the n-th purchase of an upgrade costs baseCost * n.
//
// Effects:
//   - click_power: adds amount to the money gained per manual click
//   - auto_income: adds amount to the money gained per passive tick
//
// File order is display order: the first upgrade is bound to key 1, and so on.

// EffectKind names the counter an upgrade increases.
type EffectKind string

const (
	EffectClickPower EffectKind = "click_power"
	EffectAutoIncome EffectKind = "auto_income"
)

// UpgradeDef defines a purchasable upgrade loaded from JSON.
type UpgradeDef struct {
	ID       string     `json:"id"`       // Save-file key (e.g., "mic")
	Name     string     `json:"name"`     // Display name (e.g., "Microphone")
	BaseCost int64      `json:"baseCost"` // Cost of the first purchase
	Effect   EffectKind `json:"effect"`   // Counter increased on purchase
	Amount   int64      `json:"amount"`   // How much the counter increases
	Label    string     `json:"label"`    // Shop text describing the effect
}

// CostAt returns the price of buying this upgrade when it is at level.
func (u *UpgradeDef) CostAt(level int) int64 {
	return u.BaseCost * int64(level+1)
}

// Validate reports whether the definition can be used by the economy.
func (u *UpgradeDef) Validate() error {
	if u.ID == "" {
		return errors.New("upgrade id is required")
	}
	if u.BaseCost <= 0 {
		return fmt.Errorf("upgrade %s: baseCost must be positive, got %d", u.ID, u.BaseCost)
	}
	if u.Amount <= 0 {
		return fmt.Errorf("upgrade %s: amount must be positive, got %d", u.ID, u.Amount)
	}
	switch u.Effect {
	case EffectClickPower, EffectAutoIncome:
	default:
		return fmt.Errorf("upgrade %s: unknown effect %q", u.ID, u.Effect)
	}
	return nil
}

// UpgradesFile represents the structure of upgrades.json.
type UpgradesFile struct {
	Upgrades []UpgradeDef `json:"upgrades"`
}

// LoadUpgrades loads upgrade definitions from the embedded upgrades.json file.
func LoadUpgrades() ([]UpgradeDef, error) {
	file, err := Load[UpgradesFile]("upgrades.json")
	if err != nil {
		return nil, err
	}
	return file.Upgrades, nil
}
