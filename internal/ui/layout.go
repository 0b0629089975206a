package ui

const (
	margin     = 2 // Left and right padding around every block
	statsY     = 1
	streamY    = 3
	streamH    = 5
	shopTitleY = streamY + streamH + 1
	shopY      = shopTitleY + 2
	shopRowH   = 3 // Name, cost and effect lines
	shopRowGap = 1
)

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout positions every block for one screen size.
type Layout struct {
	Width, Height int
	Stats         Rect
	Stream        Rect
	ShopTitle     Rect
	Shop          []Rect // One per upgrade, in shop order
	Notice        Rect
	Help          Rect
}

// NewLayout computes the layout for a screen of the given size with slots
// shop rows. Rows that do not fit are still laid out; they are clipped when
// drawn.
func NewLayout(width, height, slots int) Layout {
	inner := width - 2*margin
	if inner < 1 {
		inner = 1
	}

	l := Layout{
		Width:     width,
		Height:    height,
		Stats:     Rect{X: margin, Y: statsY, W: inner, H: 1},
		Stream:    Rect{X: margin, Y: streamY, W: inner, H: streamH},
		ShopTitle: Rect{X: margin, Y: shopTitleY, W: inner, H: 1},
		Shop:      make([]Rect, slots),
		Notice:    Rect{X: 0, Y: height - 2, W: width, H: 1},
		Help:      Rect{X: 0, Y: height - 1, W: width, H: 1},
	}
	for i := range l.Shop {
		l.Shop[i] = Rect{X: margin, Y: shopY + i*(shopRowH+shopRowGap), W: inner, H: shopRowH}
	}
	return l
}

// HitTest maps a tap at (x, y) to the action under it.
func (l Layout) HitTest(x, y int) Action {
	if l.Stream.Contains(x, y) {
		return Action{Kind: ActionStream}
	}
	for i, r := range l.Shop {
		if r.Contains(x, y) {
			return Action{Kind: ActionBuy, Slot: i}
		}
	}
	return Action{}
}
