package furniture

import (
	"fmt"
	"math/rand/v2"
)

// DefaultCount is the number of tiles placed on a fresh canvas.
const DefaultCount = 10

// Bounds is the canvas extent items are scattered over.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Placement ranges, as fractions of the canvas and absolute sizes.
const (
	spreadX = 0.6
	spreadY = 0.8

	minSize      = 50.0
	widthRange   = 50.0
	heightRange  = 100.0
	circleHeight = 50.0
)

// NewRand returns a seeded PCG source for reproducible layouts.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5eedf00d))
}

// Generate creates count items with ids furniture-0..furniture-(count-1).
// Shapes cycle through [Shapes]. Positions are uniform over the left 60% and
// top 80% of b; colors have a uniform hue with fixed saturation and lightness.
func Generate(count int, b Bounds, rng *rand.Rand) []Item {
	items := make([]Item, count)
	for i := range items {
		shape := Shapes[i%len(Shapes)]
		hr := heightRange
		if shape == ShapeCircle {
			hr = circleHeight
		}
		items[i] = Item{
			ID:     fmt.Sprintf("furniture-%d", i),
			X:      rng.Float64() * b.Width * spreadX,
			Y:      rng.Float64() * b.Height * spreadY,
			Width:  rng.Float64()*widthRange + minSize,
			Height: rng.Float64()*hr + minSize,
			Color:  HSLHex(rng.Float64()*360, DefaultSaturation, DefaultLightness),
			Shape:  shape,
		}
	}
	return items
}
