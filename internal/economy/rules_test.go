package economy

import (
	"errors"
	"testing"

	"github.com/samdwyer/streamer/internal/gamedata"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.Money != 0 || s.Subscribers != 0 || s.AutoIncome != 0 {
		t.Errorf("Default() counters = %+v, want all zero", s)
	}
	if s.ClickPower != 1 {
		t.Errorf("Default().ClickPower = %d, want 1", s.ClickPower)
	}
	for _, id := range UpgradeIDs {
		level, ok := s.Upgrades[id]
		if !ok || level != 0 {
			t.Errorf("Default().Upgrades[%s] = %d (present=%v), want 0", id, level, ok)
		}
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Upgrades[UpgradeMic] = 5

	b := Default()
	if b.Upgrades[UpgradeMic] != 0 {
		t.Errorf("Default() shared upgrade map: mic = %d, want 0", b.Upgrades[UpgradeMic])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := Default()
	s.Money = 42

	c := s.Clone()
	if !c.Equal(s) {
		t.Fatalf("Clone() = %+v, want %+v", c, s)
	}

	c.Upgrades[UpgradeCam] = 3
	if s.Upgrades[UpgradeCam] != 0 {
		t.Error("Clone() shares upgrade map with original")
	}
	if c.Equal(s) {
		t.Error("Equal() should notice differing upgrade levels")
	}
}

func TestCost(t *testing.T) {
	rules := MustLoadRules()
	bases := map[UpgradeID]int64{UpgradeMic: 10, UpgradeCam: 50, UpgradePC: 200}

	for id, base := range bases {
		for level := 0; level < 20; level++ {
			s := Default()
			s.Upgrades[id] = level

			got, err := rules.Cost(s, id)
			if err != nil {
				t.Fatalf("Cost(%s) error: %v", id, err)
			}
			if want := base * int64(level+1); got != want {
				t.Errorf("Cost(%s) at level %d = %d, want %d", id, level, got, want)
			}
		}
	}
}

func TestCostAfterPurchase(t *testing.T) {
	rules := MustLoadRules()
	bases := map[UpgradeID]int64{UpgradeMic: 10, UpgradeCam: 50, UpgradePC: 200}

	for id, base := range bases {
		for level := 0; level < 10; level++ {
			s := Default()
			s.Upgrades[id] = level
			s.Money = 1_000_000

			paid, ok, err := rules.Purchase(&s, id)
			if err != nil || !ok {
				t.Fatalf("Purchase(%s) at level %d = (%d, %v, %v), want success", id, level, paid, ok, err)
			}
			if want := base * int64(level+1); paid != want {
				t.Errorf("Purchase(%s) at level %d paid %d, want %d", id, level, paid, want)
			}

			next, _ := rules.Cost(s, id)
			if want := base * int64(level+2); next != want {
				t.Errorf("next Cost(%s) after level %d = %d, want %d", id, level, next, want)
			}
		}
	}
}

func TestPurchaseEffects(t *testing.T) {
	rules := MustLoadRules()

	tests := []struct {
		id             UpgradeID
		wantClickPower int64
		wantAutoIncome int64
	}{
		{UpgradeMic, 2, 0},
		{UpgradeCam, 1, 2},
		{UpgradePC, 1, 10},
	}

	for _, tt := range tests {
		s := Default()
		s.Money = 200
		if _, ok, err := rules.Purchase(&s, tt.id); err != nil || !ok {
			t.Fatalf("Purchase(%s) = (%v, %v), want success", tt.id, ok, err)
		}
		if s.ClickPower != tt.wantClickPower {
			t.Errorf("Purchase(%s) ClickPower = %d, want %d", tt.id, s.ClickPower, tt.wantClickPower)
		}
		if s.AutoIncome != tt.wantAutoIncome {
			t.Errorf("Purchase(%s) AutoIncome = %d, want %d", tt.id, s.AutoIncome, tt.wantAutoIncome)
		}
		if s.Level(tt.id) != 1 {
			t.Errorf("Purchase(%s) level = %d, want 1", tt.id, s.Level(tt.id))
		}
	}
}

func TestPurchaseInsufficientFundsLeavesStateUnchanged(t *testing.T) {
	rules := MustLoadRules()

	for _, id := range UpgradeIDs {
		s := Default()
		s.Upgrades[id] = 2
		s.Money, _ = rules.Cost(s, id)
		s.Money--
		s.ClickPower = 7
		s.AutoIncome = 13
		s.Subscribers = 99
		before := s.Clone()

		_, ok, err := rules.Purchase(&s, id)
		if err != nil {
			t.Fatalf("Purchase(%s) error: %v", id, err)
		}
		if ok {
			t.Errorf("Purchase(%s) with money one short succeeded", id)
		}
		if !s.Equal(before) {
			t.Errorf("Purchase(%s) mutated state: got %+v, want %+v", id, s, before)
		}
	}
}

func TestPurchaseUnknownUpgrade(t *testing.T) {
	rules := MustLoadRules()
	s := Default()
	s.Money = 1000
	before := s.Clone()

	_, ok, err := rules.Purchase(&s, "laser")
	if !errors.Is(err, ErrUnknownUpgrade) {
		t.Errorf("Purchase(laser) error = %v, want ErrUnknownUpgrade", err)
	}
	if ok || !s.Equal(before) {
		t.Error("Purchase(laser) should not change state")
	}
	if _, err := rules.Cost(s, "laser"); !errors.Is(err, ErrUnknownUpgrade) {
		t.Errorf("Cost(laser) error = %v, want ErrUnknownUpgrade", err)
	}
}

func TestClickIsAdditive(t *testing.T) {
	rules := MustLoadRules()
	s := Default()
	s.Money = 17
	s.ClickPower = 3

	const n = 250
	for i := 0; i < n; i++ {
		if got := rules.Click(&s); got != 3 {
			t.Fatalf("Click() returned %d, want 3", got)
		}
	}
	if want := int64(17 + n*3); s.Money != want {
		t.Errorf("Money after %d clicks = %d, want %d", n, s.Money, want)
	}
}

func TestTick(t *testing.T) {
	rules := MustLoadRules()

	s := Default()
	if got := rules.Tick(&s); got != 0 {
		t.Errorf("Tick() with no income = %d, want 0", got)
	}
	if s.Money != 0 {
		t.Errorf("Tick() with no income changed money to %d", s.Money)
	}

	s.AutoIncome = 12
	if got := rules.Tick(&s); got != 12 {
		t.Errorf("Tick() = %d, want 12", got)
	}
	if s.Money != 12 {
		t.Errorf("Money after tick = %d, want 12", s.Money)
	}
}

func TestSubscribersNeverChange(t *testing.T) {
	rules := MustLoadRules()
	s := Default()
	s.Subscribers = 5
	s.Money = 10_000
	s.AutoIncome = 1

	rules.Click(&s)
	rules.Tick(&s)
	for _, id := range UpgradeIDs {
		if _, _, err := rules.Purchase(&s, id); err != nil {
			t.Fatalf("Purchase(%s) error: %v", id, err)
		}
	}
	if s.Subscribers != 5 {
		t.Errorf("Subscribers = %d, want 5", s.Subscribers)
	}
}

func TestNewRulesRequiresEveryUpgrade(t *testing.T) {
	registry, err := gamedata.NewUpgradeRegistry([]gamedata.UpgradeDef{
		{ID: "mic", BaseCost: 10, Effect: gamedata.EffectClickPower, Amount: 1},
	})
	if err != nil {
		t.Fatalf("NewUpgradeRegistry error: %v", err)
	}
	if _, err := NewRules(registry); err == nil {
		t.Error("NewRules() without cam and pc should fail")
	}
	if _, err := NewRules(nil); err == nil {
		t.Error("NewRules(nil) should fail")
	}
}
