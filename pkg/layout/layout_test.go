package layout

import (
	"testing"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/furniture"
)

var testBounds = furniture.Bounds{Width: 1000, Height: 800}

func sample() []furniture.Item {
	return []furniture.Item{
		{ID: "a", X: 0, Y: 0, Width: 60, Height: 60, Color: "#336699", Shape: furniture.ShapeSquare},
		{ID: "b", X: 30, Y: 0, Width: 60, Height: 60, Color: "#336699", Shape: furniture.ShapeCircle},
	}
}

func TestNewScores(t *testing.T) {
	l := New(testBounds, sample(), nil)
	if got := l.Score(); got != 49 {
		t.Errorf("Score() = %v, want 49", got)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if l.Bounds() != testBounds {
		t.Errorf("Bounds() = %v, want %v", l.Bounds(), testBounds)
	}
}

func TestNewCopiesItems(t *testing.T) {
	items := sample()
	l := New(testBounds, items, nil)
	items[0].X = 999

	it, _ := l.Item("a")
	if it.X != 0 {
		t.Errorf("layout shares caller's slice: X = %v", it.X)
	}
}

func TestMoveTo(t *testing.T) {
	l := New(testBounds, sample(), nil)

	if !l.MoveTo("b", furniture.Point{X: 400, Y: 300}) {
		t.Fatal("MoveTo(b) = false")
	}
	it, _ := l.Item("b")
	if it.X != 400 || it.Y != 300 {
		t.Errorf("b at (%v, %v), want (400, 300)", it.X, it.Y)
	}
	if l.Score() != 49 {
		t.Errorf("Score() changed before Rescore: %v", l.Score())
	}
	if got := l.Rescore(); got != 51 {
		t.Errorf("Rescore() = %v, want 51", got)
	}

	if l.MoveTo("missing", furniture.Point{}) {
		t.Error("MoveTo(missing) = true")
	}
}

func TestMoveToOffCanvas(t *testing.T) {
	l := New(testBounds, sample(), nil)
	l.MoveTo("a", furniture.Point{X: -250, Y: 5000})
	it, _ := l.Item("a")
	if it.X != -250 || it.Y != 5000 {
		t.Errorf("position clamped: (%v, %v)", it.X, it.Y)
	}
}

func TestItemPointerStable(t *testing.T) {
	l := Generate(10, testBounds, furniture.NewRand(5), nil)
	before := make(map[string]*furniture.Item)
	values := make(map[string]furniture.Item)
	for _, it := range l.Items() {
		p, _ := l.Item(it.ID)
		before[it.ID] = p
		values[it.ID] = *p
	}

	l.MoveTo("furniture-3", furniture.Point{X: 500, Y: 500})

	for id, p := range before {
		after, _ := l.Item(id)
		if after != p {
			t.Errorf("%s: pointer changed", id)
		}
		if id == "furniture-3" {
			continue
		}
		if *after != values[id] {
			t.Errorf("%s: value changed to %+v", id, *after)
		}
	}
}

func TestItemAt(t *testing.T) {
	l := New(testBounds, []furniture.Item{
		{ID: "under", X: 0, Y: 0, Width: 100, Height: 100, Shape: furniture.ShapeSquare},
		{ID: "over", X: 50, Y: 50, Width: 100, Height: 100, Shape: furniture.ShapeSquare},
		{ID: "round", X: 300, Y: 300, Width: 100, Height: 100, Shape: furniture.ShapeCircle},
	}, nil)

	tests := []struct {
		name   string
		p      furniture.Point
		wantID string
		wantOK bool
	}{
		{"only under", furniture.Point{X: 10, Y: 10}, "under", true},
		{"overlap picks topmost", furniture.Point{X: 75, Y: 75}, "over", true},
		{"circle center", furniture.Point{X: 350, Y: 350}, "round", true},
		{"circle corner", furniture.Point{X: 302, Y: 302}, "", false},
		{"empty space", furniture.Point{X: 900, Y: 10}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := l.ItemAt(tt.p)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("ItemAt(%v) = (%q, %v), want (%q, %v)", tt.p, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	l := New(testBounds, sample(), appeal.New(appeal.DefaultParams()))
	b := l.Explain()
	if len(b.Pairs) != 1 || !b.Pairs[0].Penalized || !b.Pairs[0].Rewarded {
		t.Errorf("Explain() = %+v", b)
	}
	if b.Score != l.Score() {
		t.Errorf("Explain().Score = %v, Score() = %v", b.Score, l.Score())
	}
}
