package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#f38ba8" or "f38ba8") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// Theme is the color palette loaded from theme.json.
type Theme struct {
	Background     string `json:"background"`
	Button         string `json:"button"`
	ButtonText     string `json:"buttonText"`
	Text           string `json:"text"`
	Money          string `json:"money"`
	Income         string `json:"income"`
	Shop           string `json:"shop"`
	ShopAffordable string `json:"shopAffordable"`
	Notice         string `json:"notice"`
}

// Palette is a Theme resolved to terminal colors.
type Palette struct {
	Background     tcell.Color
	Button         tcell.Color
	ButtonText     tcell.Color
	Text           tcell.Color
	Money          tcell.Color
	Income         tcell.Color
	Shop           tcell.Color
	ShopAffordable tcell.Color
	Notice         tcell.Color
}

// Palette parses every color in the theme.
func (t Theme) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", t.Background, &p.Background},
		{"button", t.Button, &p.Button},
		{"buttonText", t.ButtonText, &p.ButtonText},
		{"text", t.Text, &p.Text},
		{"money", t.Money, &p.Money},
		{"income", t.Income, &p.Income},
		{"shop", t.Shop, &p.Shop},
		{"shopAffordable", t.ShopAffordable, &p.ShopAffordable},
		{"notice", t.Notice, &p.Notice},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// LoadPalette loads theme.json and resolves it to terminal colors.
func LoadPalette() (Palette, error) {
	theme, err := Load[Theme]("theme.json")
	if err != nil {
		return Palette{}, err
	}
	return theme.Palette()
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}
