// Package appeal scores how pleasant a furniture arrangement looks.
//
// The score starts at a base value and is adjusted once per unordered pair of
// items: pairs placed closer than a proximity threshold lose points (the room
// feels cluttered), and pairs whose colors are within a similarity threshold
// gain points (the colors are harmonious). The result is clamped to [0, 100].
//
// The scan is O(n²) in the number of items, which is fine for the handful of
// tiles on a canvas.
//
//	s := appeal.New(appeal.DefaultParams())
//	score := s.Score(items)
//
// [Scorer.Explain] returns the same total along with each pair's contribution.
package appeal

import (
	"math"

	"github.com/matzehuels/fengshui/pkg/furniture"
)

// Score bounds.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Params are the tunable constants of the heuristic.
type Params struct {
	Base               float64 `toml:"base"`
	ProximityThreshold float64 `toml:"proximity_threshold"`
	ProximityPenalty   float64 `toml:"proximity_penalty"`
	ColorThreshold     float64 `toml:"color_threshold"`
	ColorReward        float64 `toml:"color_reward"`
}

// DefaultParams returns the stock tuning: base 50, pairs closer than 50 units
// cost 2 points, pairs with color magnitudes within 50 earn 1 point.
func DefaultParams() Params {
	return Params{
		Base:               50,
		ProximityThreshold: 50,
		ProximityPenalty:   2,
		ColorThreshold:     50,
		ColorReward:        1,
	}
}

// Scorer computes appeal scores. The zero value is not useful; use [New].
type Scorer struct {
	params Params
}

// New returns a scorer with the given parameters.
func New(p Params) *Scorer {
	return &Scorer{params: p}
}

// Params returns the scorer's parameters.
func (s *Scorer) Params() Params { return s.params }

// Pair is the contribution of one unordered pair of items.
type Pair struct {
	A         string  `json:"a"`
	B         string  `json:"b"`
	Distance  float64 `json:"distance"`
	ColorDiff int     `json:"color_diff"`
	ColorOK   bool    `json:"color_ok"`
	Penalized bool    `json:"penalized"`
	Rewarded  bool    `json:"rewarded"`
}

// Delta is the net effect of the pair on the score under p.
func (pr Pair) Delta(p Params) float64 {
	var d float64
	if pr.Penalized {
		d -= p.ProximityPenalty
	}
	if pr.Rewarded {
		d += p.ColorReward
	}
	return d
}

// Breakdown is a fully explained score.
type Breakdown struct {
	Pairs     []Pair  `json:"pairs"`
	Raw       float64 `json:"raw"`
	Score     float64 `json:"score"`
	Penalties int     `json:"penalties"`
	Rewards   int     `json:"rewards"`
}

// Score returns the clamped appeal score for items. It does not depend on
// the order of items.
func (s *Scorer) Score(items []furniture.Item) float64 {
	mags := magnitudes(items)
	raw := s.params.Base
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			raw += s.pair(items[i], items[j], mags[i], mags[j]).Delta(s.params)
		}
	}
	return Clamp(raw)
}

// Explain scores items and records every pair's contribution, in index order.
func (s *Scorer) Explain(items []furniture.Item) Breakdown {
	mags := magnitudes(items)
	b := Breakdown{Raw: s.params.Base}
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			pr := s.pair(items[i], items[j], mags[i], mags[j])
			b.Raw += pr.Delta(s.params)
			if pr.Penalized {
				b.Penalties++
			}
			if pr.Rewarded {
				b.Rewards++
			}
			b.Pairs = append(b.Pairs, pr)
		}
	}
	b.Score = Clamp(b.Raw)
	return b
}

// Clamp limits v to [MinScore, MaxScore]. NaN maps to MinScore.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinScore
	}
	return max(MinScore, min(MaxScore, v))
}

type magnitude struct {
	v  int
	ok bool
}

func magnitudes(items []furniture.Item) []magnitude {
	out := make([]magnitude, len(items))
	for i, it := range items {
		v, err := furniture.Magnitude(it.Color)
		out[i] = magnitude{v: v, ok: err == nil}
	}
	return out
}

func (s *Scorer) pair(a, b furniture.Item, ma, mb magnitude) Pair {
	pr := Pair{A: a.ID, B: b.ID, Distance: a.Pos().Dist(b.Pos())}
	pr.Penalized = pr.Distance < s.params.ProximityThreshold

	// An unparseable color never earns the reward.
	if ma.ok && mb.ok {
		pr.ColorOK = true
		pr.ColorDiff = int(math.Abs(float64(ma.v - mb.v)))
		pr.Rewarded = float64(pr.ColorDiff) < s.params.ColorThreshold
	}
	return pr
}
