package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/streamer/internal/economy"
	"github.com/samdwyer/streamer/internal/telemetry"
)

// ErrSaveFailed wraps every error from persisting the state.
var ErrSaveFailed = errors.New("save progress")

// Saver persists a snapshot of the state.
type Saver interface {
	Save(ctx context.Context, state economy.State) error
}

// Controller owns the live state and applies the three transitions to it.
// Every transition that changes the state saves it before returning.
// A Controller is not safe for concurrent use; the game loop calls it from a
// single goroutine.
type Controller struct {
	state economy.State
	rules *economy.Rules
	saver Saver
}

// NewController creates a controller around an already loaded state.
func NewController(state economy.State, rules *economy.Rules, saver Saver) (*Controller, error) {
	if rules == nil {
		return nil, errors.New("rules are required")
	}
	if saver == nil {
		return nil, errors.New("saver is required")
	}
	return &Controller{state: state.Clone(), rules: rules, saver: saver}, nil
}

// State returns a copy of the current state.
func (c *Controller) State() economy.State {
	return c.state.Clone()
}

// Rules returns the rules the controller applies.
func (c *Controller) Rules() *economy.Rules {
	return c.rules
}

// Cost returns the price of the next purchase of id.
func (c *Controller) Cost(id economy.UpgradeID) (int64, error) {
	return c.rules.Cost(c.state, id)
}

// Click applies one manual click. It always changes the state, so changed is
// true even when the save fails.
func (c *Controller) Click(ctx context.Context) (changed bool, err error) {
	c.rules.Click(&c.state)
	return true, c.persist(ctx)
}

// Tick applies one passive income tick. With no passive income it does
// nothing and does not save.
func (c *Controller) Tick(ctx context.Context) (changed bool, err error) {
	if c.rules.Tick(&c.state) == 0 {
		return false, nil
	}
	return true, c.persist(ctx)
}

// Purchase buys one level of id. When money is short nothing changes, nothing
// is saved, and both return values are zero.
func (c *Controller) Purchase(ctx context.Context, id economy.UpgradeID) (changed bool, err error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.purchase")
	defer span.End()

	cost, ok, err := c.rules.Purchase(&c.state, id)
	span.SetAttributes(
		attribute.String("upgrade.id", string(id)),
		attribute.Int64("upgrade.cost", cost),
		attribute.Bool("upgrade.bought", ok),
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return false, err
	}
	if !ok {
		return false, nil
	}
	span.SetAttributes(attribute.Int("upgrade.level", c.state.Level(id)))

	err = c.persist(ctx)
	telemetry.RecordError(span, err)
	return true, err
}

// persist saves the current state. A failed save leaves the in-memory state
// as it is; the next successful save catches the file up.
func (c *Controller) persist(ctx context.Context) error {
	if err := c.saver.Save(ctx, c.state.Clone()); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}
