// Package pkg provides the libraries behind fengshui, a furniture layout toy
// that scores how an arrangement "feels".
//
// # Overview
//
// A layout is a handful of colored tiles on a canvas. Dragging a tile moves
// it; releasing it rescores the whole arrangement. Tiles that crowd each
// other cost points and tiles of similar color earn them, and the result is
// shown as a Feng Shui meter from 0 to 100.
//
// The pkg directory is organized as:
//
//  1. [furniture] - Items, shapes, colors and the random generator
//  2. [appeal] - The pairwise scoring rule
//  3. [layout] - An arrangement of items with its cached score
//  4. [interaction] - The press, move and release drag gesture
//  5. [session] - Per-browser boards for the HTTP front end
//  6. [render] and [io] - SVG output and the JSON layout file format
//
// # Data Flow
//
//	furniture.Generate / io.Import
//	         ↓
//	    layout.Layout  ←  appeal.Scorer
//	         ↓
//	    interaction.Session (press → move → release → rescore)
//	         ↓
//	    terminal UI, HTTP board, SVG, JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/fengshui/pkg/appeal"
//	    "github.com/matzehuels/fengshui/pkg/furniture"
//	    "github.com/matzehuels/fengshui/pkg/interaction"
//	    "github.com/matzehuels/fengshui/pkg/layout"
//	)
//
//	bounds := furniture.Bounds{Width: 1280, Height: 800}
//	l := layout.Generate(10, bounds, furniture.NewRand(42), appeal.New(appeal.DefaultParams()))
//
//	s := interaction.New(l)
//	s.Press("furniture-0", furniture.Point{X: 20, Y: 20})
//	s.Move(furniture.Point{X: 400, Y: 300})
//	s.Release()
//	fmt.Println(l.Score())
//
// The core packages are synchronous and hold no locks; one goroutine drives a
// layout at a time. [session] adds the locking the HTTP server needs.
//
// [furniture]: https://pkg.go.dev/github.com/matzehuels/fengshui/pkg/furniture
// [appeal]: https://pkg.go.dev/github.com/matzehuels/fengshui/pkg/appeal
// [layout]: https://pkg.go.dev/github.com/matzehuels/fengshui/pkg/layout
// [interaction]: https://pkg.go.dev/github.com/matzehuels/fengshui/pkg/interaction
// [session]: https://pkg.go.dev/github.com/matzehuels/fengshui/pkg/session
// [render]: https://pkg.go.dev/github.com/matzehuels/fengshui/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/fengshui/pkg/io
package pkg
