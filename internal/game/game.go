// Package game wires the state, the rules and the terminal UI into a run loop.
package game

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/streamer/internal/economy"
	"github.com/samdwyer/streamer/internal/gamedata"
	"github.com/samdwyer/streamer/internal/save"
	"github.com/samdwyer/streamer/internal/telemetry"
	"github.com/samdwyer/streamer/internal/ui"
)

const saveFailedNotice = "Could not save progress; it is kept in memory and saved again on the next action."

// Game holds the entire game.
type Game struct {
	cfg        Config
	screen     *ui.Screen
	renderer   *ui.Renderer
	controller *Controller
	mouse      ui.MouseTracker
	notice     string
	running    bool
}

// New loads the save file, opens the terminal and creates a game instance.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path, err := cfg.ResolveSavePath()
	if err != nil {
		return nil, err
	}
	store, err := save.NewStore(path)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(ctx, cfg, screen, store)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// Store is what the game needs from persistence.
type Store interface {
	Saver
	Load(ctx context.Context) (economy.State, save.Source)
}

func newGame(ctx context.Context, cfg Config, screen *ui.Screen, store Store) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	rules, err := economy.NewRules(gamedata.MustLoadUpgradeRegistry())
	if err != nil {
		return nil, err
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	state, src := store.Load(ctx)
	span.SetAttributes(
		attribute.String("save.source", src.String()),
		attribute.Int64("state.money", state.Money),
	)

	controller, err := NewController(state, rules, store)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:        cfg,
		screen:     screen,
		renderer:   ui.NewRenderer(screen, palette),
		controller: controller,
		running:    true,
	}, nil
}

// Controller returns the game's state controller.
func (g *Game) Controller() *Controller {
	return g.controller
}

// Run executes the main game loop until the player quits or ctx is done.
// Terminal events come from a reader goroutine; the ticker and the events are
// handled here, one at a time, so the state is only touched by this goroutine.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go g.pumpEvents(events, done)

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		case <-ticker.C:
			g.tick(ctx)
		}
	}

	g.screen.Close()
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pumpEvents forwards terminal events until the screen is closed.
func (g *Game) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.dispatch(ctx, ui.KeyAction(ev, g.controller.Rules().Upgrades().Count()))
	case *tcell.EventMouse:
		if x, y, ok := g.mouse.Tap(ev); ok {
			g.dispatch(ctx, g.renderer.Layout().HitTest(x, y))
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.render()
	}
}

// dispatch applies one player action and redraws when the state changed.
func (g *Game) dispatch(ctx context.Context, action ui.Action) {
	var (
		changed bool
		err     error
	)

	switch action.Kind {
	case ui.ActionQuit:
		g.running = false
		return
	case ui.ActionStream:
		changed, err = g.controller.Click(ctx)
	case ui.ActionBuy:
		def := g.controller.Rules().Upgrades().At(action.Slot)
		if def == nil {
			return
		}
		changed, err = g.controller.Purchase(ctx, economy.UpgradeID(def.ID))
	default:
		return
	}

	g.afterTransition(changed, err)
}

// tick applies one passive income tick.
func (g *Game) tick(ctx context.Context) {
	changed, err := g.controller.Tick(ctx)
	g.afterTransition(changed, err)
}

func (g *Game) afterTransition(changed bool, err error) {
	switch {
	case errors.Is(err, ErrSaveFailed):
		log.Printf("game: %v", err)
		g.notice = saveFailedNotice
	case err != nil:
		log.Printf("game: %v", err)
	case changed:
		g.notice = ""
	}
	if changed || err != nil {
		g.render()
	}
}

// View builds what the renderer shows from the current state.
func (g *Game) View() ui.View {
	state := g.controller.State()
	upgrades := g.controller.Rules().Upgrades().All()

	v := ui.View{
		Money:  state.Money,
		Income: state.AutoIncome,
		Shop:   make([]ui.ShopItem, len(upgrades)),
		Notice: g.notice,
	}
	for i := range upgrades {
		def := &upgrades[i]
		level := state.Level(economy.UpgradeID(def.ID))
		cost := def.CostAt(level)
		v.Shop[i] = ui.ShopItem{
			Name:       def.Name,
			Level:      level,
			Cost:       cost,
			Effect:     def.Label,
			Affordable: state.Money >= cost,
		}
	}
	return v
}

func (g *Game) render() {
	g.renderer.Render(g.View())
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
