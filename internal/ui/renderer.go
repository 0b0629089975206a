package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/streamer/internal/gamedata"
)

const helpText = "[space] stream   [1-3] buy upgrade   [q] quit"

// View is everything the renderer shows. The game rebuilds it after every
// transition that changed the state.
type View struct {
	Money  int64
	Income int64
	Shop   []ShopItem
	Notice string // Non-fatal problem to show the player, such as a failed save
}

// ShopItem is one upgrade row in the shop.
type ShopItem struct {
	Name       string
	Level      int
	Cost       int64
	Effect     string
	Affordable bool
}

// Lines returns the three text lines of the shop row.
func (i ShopItem) Lines() [3]string {
	return [3]string{
		fmt.Sprintf("%s (Lvl %d)", i.Name, i.Level),
		fmt.Sprintf("Cost: $%d", i.Cost),
		fmt.Sprintf("Effect: %s", i.Effect),
	}
}

// MoneyLabel is the money counter text.
func (v View) MoneyLabel() string {
	return fmt.Sprintf("Money: $%d", v.Money)
}

// IncomeLabel is the passive income text.
func (v View) IncomeLabel() string {
	return fmt.Sprintf("Income/sec: $%d", v.Income)
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
	layout  Layout
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Layout returns the layout used by the last Render.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws the whole view and remembers the layout for hit testing.
func (r *Renderer) Render(v View) {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, len(v.Shop))

	base := tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Text)
	r.screen.Fill(base)

	half := r.layout.Stats.W / 2
	r.drawText(r.layout.Stats.X, r.layout.Stats.Y, half, v.MoneyLabel(), base.Foreground(r.palette.Money).Bold(true))
	r.drawText(r.layout.Stats.X+half, r.layout.Stats.Y, r.layout.Stats.W-half, v.IncomeLabel(), base.Foreground(r.palette.Income).Bold(true))

	button := tcell.StyleDefault.Background(r.palette.Button).Foreground(r.palette.ButtonText).Bold(true)
	r.fillRect(r.layout.Stream, button)
	mid := r.layout.Stream.Y + r.layout.Stream.H/2
	r.drawCentered(r.layout.Stream, mid-1, "GO LIVE!", button)
	r.drawCentered(r.layout.Stream, mid, "(Tap to Stream)", button)

	r.drawCentered(r.layout.ShopTitle, r.layout.ShopTitle.Y, "SHOP UPGRADES", base.Bold(true))

	for i, item := range v.Shop {
		rect := r.layout.Shop[i]
		style := tcell.StyleDefault.Background(r.palette.Shop).Foreground(r.palette.Text)
		if item.Affordable {
			style = style.Foreground(r.palette.ShopAffordable)
		}
		r.fillRect(rect, style)
		for line, text := range item.Lines() {
			if line == 0 {
				text = fmt.Sprintf("%d. %s", i+1, text)
			}
			r.drawText(rect.X+1, rect.Y+line, rect.W-1, text, style)
		}
	}

	if v.Notice != "" {
		r.drawText(r.layout.Notice.X, r.layout.Notice.Y, r.layout.Notice.W, v.Notice, base.Foreground(r.palette.Notice))
	}
	r.drawText(r.layout.Help.X, r.layout.Help.Y, r.layout.Help.W, helpText, base.Dim(true))

	r.screen.Show()
}

// fillRect paints every cell of rect, clipped to the screen.
func (r *Renderer) fillRect(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H && y < r.layout.Height; y++ {
		for x := rect.X; x < rect.X+rect.W && x < r.layout.Width; x++ {
			r.screen.SetContent(x, y, ' ', style)
		}
	}
}

// drawText writes text starting at (x, y), cut at maxWidth cells.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	if y < 0 || y >= r.layout.Height {
		return
	}
	i := 0
	for _, ch := range text {
		if i >= maxWidth || x+i >= r.layout.Width {
			return
		}
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}

// drawCentered writes text horizontally centered in rect on row y.
func (r *Renderer) drawCentered(rect Rect, y int, text string, style tcell.Style) {
	n := len([]rune(text))
	x := rect.X + (rect.W-n)/2
	if x < rect.X {
		x = rect.X
	}
	r.drawText(x, y, rect.X+rect.W-x, text, style)
}
