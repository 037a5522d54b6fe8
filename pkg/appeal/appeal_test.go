package appeal

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/fengshui/pkg/furniture"
)

func item(id string, x, y float64, color string) furniture.Item {
	return furniture.Item{ID: id, X: x, Y: y, Width: 60, Height: 60, Color: color, Shape: furniture.ShapeSquare}
}

func TestScoreExamples(t *testing.T) {
	s := New(DefaultParams())

	tests := []struct {
		name  string
		items []furniture.Item
		want  float64
	}{
		{
			name:  "empty",
			items: nil,
			want:  50,
		},
		{
			name:  "single item",
			items: []furniture.Item{item("a", 0, 0, "#ff0000")},
			want:  50,
		},
		{
			name: "close pair with equal colors",
			items: []furniture.Item{
				item("a", 0, 0, "#336699"),
				item("b", 30, 0, "#336699"),
			},
			want: 49,
		},
		{
			name: "far pair with distinct colors",
			items: []furniture.Item{
				item("a", 0, 0, "#ff0000"),
				item("b", 300, 0, "#0000ff"),
			},
			want: 50,
		},
		{
			name: "close pair with distinct colors",
			items: []furniture.Item{
				item("a", 0, 0, "#ff0000"),
				item("b", 0, 49, "#0000ff"),
			},
			want: 48,
		},
		{
			name: "distance at threshold is not penalized",
			items: []furniture.Item{
				item("a", 0, 0, "#ff0000"),
				item("b", 30, 40, "#0000ff"),
			},
			want: 50,
		},
		{
			name: "equal hsl and hex colors",
			items: []furniture.Item{
				item("a", 0, 0, "hsl(0, 100%, 50%)"),
				item("b", 500, 500, "#ff0000"),
			},
			want: 51,
		},
		{
			name: "malformed color earns no reward",
			items: []furniture.Item{
				item("a", 0, 0, "bogus"),
				item("b", 500, 500, "bogus"),
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.items); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreClamped(t *testing.T) {
	s := New(DefaultParams())

	var crowded []furniture.Item
	for i := range 20 {
		crowded = append(crowded, item(fmt.Sprintf("c%d", i), 0, 0, fmt.Sprintf("#%06x", i*0x101010)))
	}
	if got := s.Score(crowded); got != MinScore {
		t.Errorf("crowded Score() = %v, want %v", got, MinScore)
	}

	var harmonious []furniture.Item
	for i := range 20 {
		harmonious = append(harmonious, item(fmt.Sprintf("h%d", i), float64(i)*1000, 0, "#808080"))
	}
	if got := s.Score(harmonious); got != MaxScore {
		t.Errorf("harmonious Score() = %v, want %v", got, MaxScore)
	}
}

func TestScoreBoundedRandom(t *testing.T) {
	s := New(DefaultParams())
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := range 200 {
		n := rng.IntN(30)
		items := make([]furniture.Item, n)
		for i := range items {
			items[i] = item(fmt.Sprintf("r%d", i),
				rng.Float64()*200, rng.Float64()*200,
				fmt.Sprintf("#%06x", rng.IntN(0x40)))
		}
		got := s.Score(items)
		if got < MinScore || got > MaxScore {
			t.Fatalf("trial %d: Score() = %v out of [0, 100]", trial, got)
		}
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	s := New(DefaultParams())
	items := furniture.Generate(10, furniture.Bounds{Width: 300, Height: 300}, furniture.NewRand(3))
	want := s.Score(items)

	rng := rand.New(rand.NewPCG(9, 9))
	for range 50 {
		perm := make([]furniture.Item, len(items))
		copy(perm, items)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		if got := s.Score(perm); got != want {
			t.Fatalf("permuted Score() = %v, want %v", got, want)
		}
	}
}

func TestMovingApartOnlyAffectsThatPair(t *testing.T) {
	s := New(DefaultParams())
	items := []furniture.Item{
		item("a", 0, 0, "#ff0000"),
		item("b", 20, 0, "#00ff00"),
		item("c", 1000, 1000, "#0000ff"),
		item("d", 1010, 1000, "#0000ff"),
	}
	before := s.Explain(items)

	items[1].X = 400
	after := s.Explain(items)

	for i, pr := range after.Pairs {
		prev := before.Pairs[i]
		affected := pr.A == "b" || pr.B == "b"
		if pr.A == "a" && pr.B == "b" && pr.Penalized {
			t.Errorf("pair a/b still penalized after moving apart")
		}
		if !affected && (pr.Penalized != prev.Penalized || pr.Rewarded != prev.Rewarded) {
			t.Errorf("unrelated pair %s/%s changed", pr.A, pr.B)
		}
	}
	if got, want := after.Score-before.Score, DefaultParams().ProximityPenalty; got != want {
		t.Errorf("score delta = %v, want %v", got, want)
	}
}

func TestExplainMatchesScore(t *testing.T) {
	s := New(Params{Base: 50, ProximityThreshold: 100, ProximityPenalty: 1, ColorThreshold: 50, ColorReward: 1})
	items := furniture.Generate(10, furniture.Bounds{Width: 400, Height: 300}, furniture.NewRand(11))

	b := s.Explain(items)
	if b.Score != s.Score(items) {
		t.Errorf("Explain().Score = %v, Score() = %v", b.Score, s.Score(items))
	}
	if want := 10 * 9 / 2; len(b.Pairs) != want {
		t.Errorf("len(Pairs) = %d, want %d", len(b.Pairs), want)
	}
	if raw := 50 - float64(b.Penalties) + float64(b.Rewards); raw != b.Raw {
		t.Errorf("Raw = %v, want %v", b.Raw, raw)
	}
}

func TestScoreNonFiniteParamsStayInRange(t *testing.T) {
	items := []furniture.Item{
		{ID: "a", X: 0, Y: 0, Width: 10, Height: 10, Color: "#000000", Shape: furniture.ShapeSquare},
		{ID: "b", X: 30, Y: 0, Width: 10, Height: 10, Color: "#000000", Shape: furniture.ShapeSquare},
	}
	for _, p := range []Params{
		{Base: math.NaN(), ProximityThreshold: 50, ProximityPenalty: 2, ColorThreshold: 50, ColorReward: 1},
		{Base: 50, ProximityThreshold: 50, ProximityPenalty: math.NaN(), ColorThreshold: 50, ColorReward: 1},
		{Base: 50, ProximityThreshold: 50, ProximityPenalty: 2, ColorThreshold: 50, ColorReward: math.Inf(1)},
	} {
		got := New(p).Score(items)
		if math.IsNaN(got) || got < MinScore || got > MaxScore {
			t.Errorf("Score with %+v = %v, want within [0, 100]", p, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-5, 0}, {0, 0}, {42, 42}, {100, 100}, {250, 100},
		{math.NaN(), 0}, {math.Inf(1), 100}, {math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
