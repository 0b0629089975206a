package economy

import (
	"errors"
	"fmt"

	"github.com/samdwyer/streamer/internal/gamedata"
)

// ErrUnknownUpgrade is returned for an upgrade ID with no definition.
var ErrUnknownUpgrade = errors.New("unknown upgrade")

// Rules applies the three transitions to a State using the upgrade catalogue.
// Rules never touches Subscribers.
type Rules struct {
	upgrades *gamedata.UpgradeRegistry
}

// NewRules creates rules from an upgrade registry. The registry must define
// every ID in UpgradeIDs.
func NewRules(upgrades *gamedata.UpgradeRegistry) (*Rules, error) {
	if upgrades == nil {
		return nil, errors.New("upgrade registry is required")
	}
	for _, id := range UpgradeIDs {
		if upgrades.GetByID(string(id)) == nil {
			return nil, fmt.Errorf("upgrade %q missing from catalogue", id)
		}
	}
	return &Rules{upgrades: upgrades}, nil
}

// MustLoadRules builds rules from the embedded catalogue, panicking on error.
func MustLoadRules() *Rules {
	rules, err := NewRules(gamedata.MustLoadUpgradeRegistry())
	if err != nil {
		panic(err)
	}
	return rules
}

// Upgrades returns the catalogue the rules were built from.
func (r *Rules) Upgrades() *gamedata.UpgradeRegistry {
	return r.upgrades
}

func (r *Rules) def(id UpgradeID) (*gamedata.UpgradeDef, error) {
	def := r.upgrades.GetByID(string(id))
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	return def, nil
}

// Cost returns the price of the next purchase of id.
func (r *Rules) Cost(s State, id UpgradeID) (int64, error) {
	def, err := r.def(id)
	if err != nil {
		return 0, err
	}
	return def.CostAt(s.Level(id)), nil
}

// Click adds one click's worth of money and returns the amount added.
func (r *Rules) Click(s *State) int64 {
	s.Money += s.ClickPower
	return s.ClickPower
}

// Tick adds one tick of passive income and returns the amount added.
// A zero return means s was not modified.
func (r *Rules) Tick(s *State) int64 {
	if s.AutoIncome <= 0 {
		return 0
	}
	s.Money += s.AutoIncome
	return s.AutoIncome
}

// Purchase buys one level of id if s can afford it. It returns the amount
// paid, or ok=false with s untouched when money is short.
func (r *Rules) Purchase(s *State, id UpgradeID) (cost int64, ok bool, err error) {
	def, err := r.def(id)
	if err != nil {
		return 0, false, err
	}
	level := s.Level(id)
	cost = def.CostAt(level)
	if s.Money < cost {
		return cost, false, nil
	}

	s.Money -= cost
	if s.Upgrades == nil {
		s.Upgrades = make(map[UpgradeID]int)
	}
	s.Upgrades[id] = level + 1

	switch def.Effect {
	case gamedata.EffectClickPower:
		s.ClickPower += def.Amount
	case gamedata.EffectAutoIncome:
		s.AutoIncome += def.Amount
	}
	return cost, true, nil
}
