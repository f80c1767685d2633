package game

const (
	// Default board dimensions, in cells.
	DefaultWidth  = 16
	DefaultHeight = 12

	// DefaultUnits is the number of units placed on a fresh board.
	DefaultUnits = 6
)

// Config holds game configuration options.
type Config struct {
	// Board dimensions in cells.
	Width  int
	Height int

	// Units is the number of units to place at startup.
	Units int

	// Seed for random number generation. Used for reproducible unit
	// placement. A seed of 0 means a time-based seed will be used.
	Seed int64
}

// withDefaults fills in zero-valued fields.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Units <= 0 {
		c.Units = DefaultUnits
	}
	return c
}
