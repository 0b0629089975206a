package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samdwyer/streamer/internal/economy"
)

// record mirrors the save file. Pointer fields let decode tell a missing key
// from a zero value.
type record struct {
	Money      *int64          `json:"money"`
	Subs       *int64          `json:"subs"`
	ClickPower *int64          `json:"click_power"`
	AutoIncome *int64          `json:"auto_income"`
	Upgrades   map[string]*int `json:"upgrades"`
}

var errMissingKey = errors.New("missing key")

func encode(s economy.State) ([]byte, error) {
	upgrades := make(map[string]*int, len(s.Upgrades))
	for id, level := range s.Upgrades {
		upgrades[string(id)] = &level
	}
	for _, id := range economy.UpgradeIDs {
		if _, ok := upgrades[string(id)]; !ok {
			zero := 0
			upgrades[string(id)] = &zero
		}
	}
	return json.Marshal(record{
		Money:      &s.Money,
		Subs:       &s.Subscribers,
		ClickPower: &s.ClickPower,
		AutoIncome: &s.AutoIncome,
		Upgrades:   upgrades,
	})
}

// decode parses a save file. Every top-level key and every known upgrade key
// must be present; unknown upgrade keys are carried through untouched.
func decode(data []byte) (economy.State, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return economy.State{}, err
	}

	required := []struct {
		key string
		val *int64
	}{
		{"money", rec.Money},
		{"subs", rec.Subs},
		{"click_power", rec.ClickPower},
		{"auto_income", rec.AutoIncome},
	}
	for _, r := range required {
		if r.val == nil {
			return economy.State{}, fmt.Errorf("%w %q", errMissingKey, r.key)
		}
	}
	if rec.Upgrades == nil {
		return economy.State{}, fmt.Errorf("%w %q", errMissingKey, "upgrades")
	}

	s := economy.State{
		Money:       *rec.Money,
		Subscribers: *rec.Subs,
		ClickPower:  *rec.ClickPower,
		AutoIncome:  *rec.AutoIncome,
		Upgrades:    make(map[economy.UpgradeID]int, len(rec.Upgrades)),
	}
	for key, level := range rec.Upgrades {
		if level == nil {
			return economy.State{}, fmt.Errorf("%w %q", errMissingKey, "upgrades."+key)
		}
		s.Upgrades[economy.UpgradeID(key)] = *level
	}
	for _, id := range economy.UpgradeIDs {
		if _, ok := s.Upgrades[id]; !ok {
			return economy.State{}, fmt.Errorf("%w %q", errMissingKey, "upgrades."+string(id))
		}
	}
	return s, nil
}
