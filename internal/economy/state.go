// Package economy holds the player's progress and the rules that change it.
package economy

import "maps"

// UpgradeID identifies an upgrade in the shop and in the save file.
type UpgradeID string

const (
	UpgradeMic UpgradeID = "mic"
	UpgradeCam UpgradeID = "cam"
	UpgradePC  UpgradeID = "pc"
)

// UpgradeIDs lists every upgrade the game knows about, in shop order.
var UpgradeIDs = []UpgradeID{UpgradeMic, UpgradeCam, UpgradePC}

// State is the player's whole progress. It is also exactly what is saved.
type State struct {
	Money       int64
	Subscribers int64 // Kept for save compatibility; no rule reads or writes it.
	ClickPower  int64
	AutoIncome  int64
	Upgrades    map[UpgradeID]int
}

// Default returns a fresh starting state. Each call returns a new map.
func Default() State {
	s := State{
		ClickPower: 1,
		Upgrades:   make(map[UpgradeID]int, len(UpgradeIDs)),
	}
	for _, id := range UpgradeIDs {
		s.Upgrades[id] = 0
	}
	return s
}

// Level returns the current level of an upgrade.
func (s State) Level(id UpgradeID) int {
	return s.Upgrades[id]
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.Upgrades = maps.Clone(s.Upgrades)
	if c.Upgrades == nil {
		c.Upgrades = make(map[UpgradeID]int)
	}
	return c
}

// Equal reports whether two states match field for field.
func (s State) Equal(o State) bool {
	return s.Money == o.Money &&
		s.Subscribers == o.Subscribers &&
		s.ClickPower == o.ClickPower &&
		s.AutoIncome == o.AutoIncome &&
		maps.Equal(s.Upgrades, o.Upgrades)
}
