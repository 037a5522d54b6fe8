package interaction

import (
	"testing"
	"time"

	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/layout"
	"github.com/matzehuels/fengshui/pkg/observability"
)

func pt(x, y float64) furniture.Point { return furniture.Point{X: x, Y: y} }

func newTestLayout() *layout.Layout {
	return layout.New(furniture.Bounds{Width: 1000, Height: 800}, []furniture.Item{
		{ID: "a", X: 0, Y: 0, Width: 60, Height: 60, Color: "#336699", Shape: furniture.ShapeSquare},
		{ID: "b", X: 30, Y: 0, Width: 60, Height: 60, Color: "#336699", Shape: furniture.ShapeCircle},
	}, nil)
}

func pos(t *testing.T, l *layout.Layout, id string) furniture.Point {
	t.Helper()
	it, ok := l.Item(id)
	if !ok {
		t.Fatalf("item %s missing", id)
	}
	return it.Pos()
}

func TestDrag(t *testing.T) {
	l := newTestLayout()
	s := New(l)

	if !s.Press("b", pt(40, 10)) {
		t.Fatal("Press(b) = false")
	}
	if !s.Dragging() || s.ActiveID() != "b" {
		t.Fatalf("Dragging() = %v, ActiveID() = %q", s.Dragging(), s.ActiveID())
	}
	if s.Offset() != pt(10, 10) {
		t.Errorf("Offset() = %v, want (10, 10)", s.Offset())
	}

	s.Move(pt(140, 60))
	if got := pos(t, l, "b"); got != pt(130, 50) {
		t.Errorf("b at %v, want (130, 50)", got)
	}
	if l.Score() != 49 {
		t.Errorf("score changed during drag: %v", l.Score())
	}

	s.Move(pt(410, 310))
	if got := pos(t, l, "b"); got != pt(400, 300) {
		t.Errorf("b at %v, want (400, 300)", got)
	}

	if !s.Release() {
		t.Fatal("Release() = false")
	}
	if s.Dragging() || s.ActiveID() != "" || s.Offset() != (furniture.Point{}) {
		t.Errorf("session not reset: dragging=%v active=%q offset=%v", s.Dragging(), s.ActiveID(), s.Offset())
	}
	if l.Score() != 51 {
		t.Errorf("Score() after release = %v, want 51", l.Score())
	}
	if got := pos(t, l, "a"); got != pt(0, 0) {
		t.Errorf("a moved to %v", got)
	}
}

func TestPressAtUsesGivenOrigin(t *testing.T) {
	l := newTestLayout()
	s := New(l)

	// Screen space: canvas drawn at (100, 50), so item a's origin is (100, 50).
	s.PressAt("a", pt(120, 70), pt(100, 50))
	s.Move(pt(220, 170))
	if got := pos(t, l, "a"); got != pt(200, 150) {
		t.Errorf("a at %v, want (200, 150)", got)
	}
}

func TestPressWhileDraggingIgnored(t *testing.T) {
	l := newTestLayout()
	s := New(l)

	s.Press("a", pt(5, 5))
	if s.Press("b", pt(35, 5)) {
		t.Error("second Press() = true")
	}
	if s.ActiveID() != "a" {
		t.Errorf("ActiveID() = %q, want a", s.ActiveID())
	}
	if s.Offset() != pt(5, 5) {
		t.Errorf("Offset() = %v, want (5, 5)", s.Offset())
	}

	s.Move(pt(305, 305))
	if got := pos(t, l, "b"); got != pt(30, 0) {
		t.Errorf("b moved to %v", got)
	}
}

func TestPressUnknownID(t *testing.T) {
	s := New(newTestLayout())
	if s.Press("ghost", pt(0, 0)) {
		t.Error("Press(ghost) = true")
	}
	if s.PressAt("ghost", pt(0, 0), pt(0, 0)) {
		t.Error("PressAt(ghost) = true")
	}
	if s.Dragging() {
		t.Error("Dragging() = true after unknown press")
	}
}

func TestMoveWithoutDrag(t *testing.T) {
	l := newTestLayout()
	s := New(l)
	if s.Move(pt(500, 500)) {
		t.Error("Move() without drag = true")
	}
	if got := pos(t, l, "a"); got != pt(0, 0) {
		t.Errorf("a moved to %v", got)
	}
}

func TestReleaseWithoutDrag(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetInteractionHooks(hooks)
	defer observability.Reset()

	l := newTestLayout()
	s := New(l)
	before := l.Score()
	if s.Release() {
		t.Error("Release() without drag = true")
	}
	if l.Score() != before {
		t.Errorf("Score() = %v, want %v", l.Score(), before)
	}
	if hooks.scores != 0 {
		t.Errorf("OnScore called %d times", hooks.scores)
	}
}

func TestDragOffCanvas(t *testing.T) {
	l := newTestLayout()
	s := New(l)
	s.Press("a", pt(10, 10))
	s.Move(pt(-500, 9000))
	s.Release()
	if got := pos(t, l, "a"); got != pt(-510, 8990) {
		t.Errorf("a at %v, want (-510, 8990)", got)
	}
}

func TestDragGeneratedLayout(t *testing.T) {
	l := layout.Generate(10, furniture.Bounds{Width: 1280, Height: 800}, furniture.NewRand(4), nil)
	l.MoveTo("furniture-3", pt(100, 100))

	before := make(map[string]furniture.Item)
	ptrs := make(map[string]*furniture.Item)
	for _, it := range l.Items() {
		before[it.ID] = it
		ptrs[it.ID], _ = l.Item(it.ID)
	}

	s := New(l)
	s.Press("furniture-3", pt(100, 100))
	s.Move(pt(500, 500))
	s.Release()

	for id, want := range before {
		got, _ := l.Item(id)
		if got != ptrs[id] {
			t.Errorf("%s: identity changed", id)
		}
		if id == "furniture-3" {
			want.X, want.Y = 500, 500
		}
		if *got != want {
			t.Errorf("%s = %+v, want %+v", id, *got, want)
		}
	}
}

func TestHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetInteractionHooks(hooks)
	defer observability.Reset()

	s := New(newTestLayout())
	s.Press("b", pt(30, 0))
	s.Move(pt(400, 300))
	s.Release()

	if hooks.started != "b" {
		t.Errorf("OnDragStart id = %q", hooks.started)
	}
	if hooks.from != pt(30, 0) || hooks.to != pt(400, 300) {
		t.Errorf("OnDragEnd from %v to %v", hooks.from, hooks.to)
	}
	if hooks.scores != 1 || hooks.lastScore != 51 {
		t.Errorf("OnScore calls = %d, last = %v", hooks.scores, hooks.lastScore)
	}
}

type recordingHooks struct {
	observability.NoopInteractionHooks
	started   string
	from, to  furniture.Point
	scores    int
	lastScore float64
}

func (r *recordingHooks) OnDragStart(id string, _, _ float64) { r.started = id }

func (r *recordingHooks) OnDragEnd(_ string, fx, fy, tx, ty float64) {
	r.from, r.to = pt(fx, fy), pt(tx, ty)
}

func (r *recordingHooks) OnScore(score float64, _ int, _ time.Duration) {
	r.scores++
	r.lastScore = score
}
