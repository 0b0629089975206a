package gamedata

import (
	"errors"
	"fmt"
)

// UpgradeRegistry holds loaded upgrade definitions in display order.
type UpgradeRegistry struct {
	upgrades []UpgradeDef
	byID     map[string]*UpgradeDef
}

// NewUpgradeRegistry creates a registry from loaded upgrade definitions.
// Every definition must be valid and IDs must be unique.
func NewUpgradeRegistry(upgrades []UpgradeDef) (*UpgradeRegistry, error) {
	if len(upgrades) == 0 {
		return nil, errors.New("no upgrades defined")
	}
	registry := &UpgradeRegistry{
		upgrades: upgrades,
		byID:     make(map[string]*UpgradeDef, len(upgrades)),
	}
	for i := range upgrades {
		if err := upgrades[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.byID[upgrades[i].ID]; dup {
			return nil, fmt.Errorf("duplicate upgrade id %q", upgrades[i].ID)
		}
		registry.byID[upgrades[i].ID] = &upgrades[i]
	}
	return registry, nil
}

// LoadUpgradeRegistry loads and creates a registry from the embedded upgrades.json.
func LoadUpgradeRegistry() (*UpgradeRegistry, error) {
	upgrades, err := LoadUpgrades()
	if err != nil {
		return nil, err
	}
	return NewUpgradeRegistry(upgrades)
}

// MustLoadUpgradeRegistry loads a registry, panicking on error.
func MustLoadUpgradeRegistry() *UpgradeRegistry {
	registry, err := LoadUpgradeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the upgrade definition with the given ID, or nil if not found.
func (r *UpgradeRegistry) GetByID(id string) *UpgradeDef {
	return r.byID[id]
}

// At returns the upgrade in the given display slot, or nil if out of range.
func (r *UpgradeRegistry) At(slot int) *UpgradeDef {
	if slot < 0 || slot >= len(r.upgrades) {
		return nil
	}
	return &r.upgrades[slot]
}

// All returns all upgrade definitions in display order.
func (r *UpgradeRegistry) All() []UpgradeDef {
	return r.upgrades
}

// Count returns the number of upgrades in the registry.
func (r *UpgradeRegistry) Count() int {
	return len(r.upgrades)
}
