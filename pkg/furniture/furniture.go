// Package furniture defines the draggable tiles placed on a fengshui canvas.
//
// An [Item] is a rectangle or circle with a position, a size, a color and a
// [Shape]. Identity (ID, size, color, shape) never changes after creation;
// only the position moves while the user drags the tile around.
//
// Items are usually created by [Generate], which scatters a fixed number of
// tiles over a canvas with random sizes and hues:
//
//	items := furniture.Generate(10, furniture.Bounds{Width: 1280, Height: 800}, furniture.NewRand(seed))
//
// Colors are stored as strings. [ParseColor] understands the hex form the
// generator emits as well as CSS-style hsl() strings, and [Magnitude] reduces
// a color to the 24-bit integer the appeal scorer compares.
package furniture

import "math"

// Shape is the kind of tile drawn for an item.
type Shape string

const (
	ShapeSquare    Shape = "square"
	ShapeCircle    Shape = "circle"
	ShapeRectangle Shape = "rectangle"
)

// Shapes lists the palette the generator cycles through, in order.
var Shapes = []Shape{ShapeSquare, ShapeCircle, ShapeRectangle}

// Valid reports whether s is one of the known shapes.
func (s Shape) Valid() bool {
	switch s {
	case ShapeSquare, ShapeCircle, ShapeRectangle:
		return true
	}
	return false
}

// Point is a position on the canvas, in layout units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Item is a single furniture tile. X and Y are the top-left corner.
type Item struct {
	ID     string  `json:"id" yaml:"id"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Color  string  `json:"color" yaml:"color"`
	Shape  Shape   `json:"shape" yaml:"shape"`
}

// Pos returns the item's top-left corner.
func (it Item) Pos() Point { return Point{X: it.X, Y: it.Y} }

// Contains reports whether p falls inside the item's tile. Circles are hit
// tested against the inscribed ellipse, everything else against the box.
func (it Item) Contains(p Point) bool {
	if p.X < it.X || p.Y < it.Y || p.X >= it.X+it.Width || p.Y >= it.Y+it.Height {
		return false
	}
	if it.Shape != ShapeCircle {
		return true
	}
	rx, ry := it.Width/2, it.Height/2
	dx := (p.X - (it.X + rx)) / rx
	dy := (p.Y - (it.Y + ry)) / ry
	return dx*dx+dy*dy <= 1
}
