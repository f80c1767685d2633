package unitdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// UnitDef defines a unit archetype loaded from JSON.
type UnitDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "scout")
	Name        string `json:"name"`        // Display name (e.g., "Scout")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "s")
	Color       string `json:"color"`       // Hex color code (e.g., "#00FF00")
	MoveRange   int    `json:"moveRange"`   // Manhattan-distance step budget per move
	SpawnWeight int    `json:"spawnWeight"` // Relative placement frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (u *UnitDef) GlyphRune() rune {
	if len(u.Glyph) == 0 {
		return '?'
	}
	return rune(u.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (u *UnitDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(u.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// UnitsFile represents the structure of units.json.
type UnitsFile struct {
	Units []UnitDef `json:"units"`
}

// LoadUnits loads unit definitions from the embedded units.json file.
func LoadUnits() ([]UnitDef, error) {
	file, err := Load[UnitsFile]("units.json")
	if err != nil {
		return nil, err
	}
	return file.Units, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000")
// to a tcell.Color.
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
