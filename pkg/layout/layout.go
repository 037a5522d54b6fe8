// Package layout holds the state of one furniture arrangement: the placed
// items and the cached appeal score derived from them.
//
// A [Layout] owns its items. They are created once (from the generator or a
// layout file) and never added or removed afterwards; only their positions
// change, through [Layout.MoveTo]. The score is recomputed when asked to via
// [Layout.Rescore], typically when a drag ends.
//
// Layout is not safe for concurrent use. Front ends drive it from a single
// event loop, or serialize access themselves.
package layout

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/furniture"
)

// Layout is the layout state holder.
type Layout struct {
	bounds furniture.Bounds
	items  []furniture.Item
	index  map[string]int
	scorer *appeal.Scorer
	score  float64
}

// New creates a layout from items, which are copied. If scorer is nil the
// default parameters are used. The score is computed once up front.
func New(bounds furniture.Bounds, items []furniture.Item, scorer *appeal.Scorer) *Layout {
	if scorer == nil {
		scorer = appeal.New(appeal.DefaultParams())
	}
	l := &Layout{
		bounds: bounds,
		items:  slices.Clone(items),
		index:  make(map[string]int, len(items)),
		scorer: scorer,
	}
	for i, it := range l.items {
		if _, dup := l.index[it.ID]; !dup {
			l.index[it.ID] = i
		}
	}
	l.Rescore()
	return l
}

// Generate creates a layout of count random items scattered over bounds.
func Generate(count int, bounds furniture.Bounds, rng *rand.Rand, scorer *appeal.Scorer) *Layout {
	return New(bounds, furniture.Generate(count, bounds, rng), scorer)
}

// Bounds returns the canvas extent the layout was created for.
func (l *Layout) Bounds() furniture.Bounds { return l.bounds }

// Len returns the number of items.
func (l *Layout) Len() int { return len(l.items) }

// Items returns a copy of the items in drawing order.
func (l *Layout) Items() []furniture.Item { return slices.Clone(l.items) }

// Item returns the item with the given id. The pointer stays valid for the
// life of the layout; callers must not change anything but its position.
func (l *Layout) Item(id string) (*furniture.Item, bool) {
	i, ok := l.index[id]
	if !ok {
		return nil, false
	}
	return &l.items[i], true
}

// MoveTo sets the top-left corner of item id to p. Positions are not clamped
// to the canvas. It reports whether the item exists.
func (l *Layout) MoveTo(id string, p furniture.Point) bool {
	it, ok := l.Item(id)
	if !ok {
		return false
	}
	it.X, it.Y = p.X, p.Y
	return true
}

// ItemAt returns the id of the topmost item under p. Later items are drawn
// on top of earlier ones.
func (l *Layout) ItemAt(p furniture.Point) (string, bool) {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i].Contains(p) {
			return l.items[i].ID, true
		}
	}
	return "", false
}

// Score returns the score as of the last recomputation.
func (l *Layout) Score() float64 { return l.score }

// Rescore recomputes, caches and returns the appeal score.
func (l *Layout) Rescore() float64 {
	l.score = l.scorer.Score(l.items)
	return l.score
}

// Explain returns the per-pair breakdown of the current positions.
func (l *Layout) Explain() appeal.Breakdown {
	return l.scorer.Explain(l.items)
}
