package render

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/layout"
)

const (
	meterWidth  = 160.0
	meterMargin = 24.0
	meterBarH   = 256.0
	cornerR     = 8.0
)

// Option configures [RenderSVG].
type Option func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	meter         bool
	labels        bool
}

// WithSize overrides the canvas size. By default the layout's bounds are used.
func WithSize(w, h float64) Option {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithMeter toggles the score panel. It is on by default.
func WithMeter(on bool) Option { return func(r *svgRenderer) { r.meter = on } }

// WithLabels toggles the shape labels drawn on each tile. They are on by default.
func WithLabels(on bool) Option { return func(r *svgRenderer) { r.labels = on } }

// RenderSVG draws l. Items outside the canvas are still emitted; the viewBox
// clips them.
func RenderSVG(l *layout.Layout, opts ...Option) []byte {
	b := l.Bounds()
	r := svgRenderer{width: b.Width, height: b.Height, meter: true, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	total := r.width
	if r.meter {
		total += meterWidth
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		total, r.height, total, r.height)
	fmt.Fprintf(&buf, `  <rect class="canvas" x="0" y="0" width="%.1f" height="%.1f" fill="#f3f4f6"/>`+"\n", r.width, r.height)

	for _, it := range l.Items() {
		renderItem(&buf, it, r.labels)
	}
	if r.meter {
		renderMeter(&buf, r.width, r.height, l.Score())
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderItem(buf *bytes.Buffer, it furniture.Item, label bool) {
	id := html.EscapeString(it.ID)
	fill := html.EscapeString(it.Color)

	if it.Shape == furniture.ShapeCircle {
		fmt.Fprintf(buf, `  <ellipse id="item-%s" class="item circle" cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="%s"/>`+"\n",
			id, it.X+it.Width/2, it.Y+it.Height/2, it.Width/2, it.Height/2, fill)
	} else {
		fmt.Fprintf(buf, `  <rect id="item-%s" class="item %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" fill="%s"/>`+"\n",
			id, it.Shape, it.X, it.Y, it.Width, it.Height, cornerR, fill)
	}

	if label {
		fmt.Fprintf(buf, `  <text class="label" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="11">%s</text>`+"\n",
			it.X+it.Width/2, it.Y+it.Height/2, html.EscapeString(string(it.Shape)))
	}
}

func renderMeter(buf *bytes.Buffer, x, height, score float64) {
	left := x + meterMargin
	w := meterWidth - 2*meterMargin
	top := math.Max(meterMargin+32, (height-meterBarH)/2)
	filled := meterBarH * score / 100

	buf.WriteString(`  <g class="meter">` + "\n")
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="14" font-weight="bold">Feng Shui Meter</text>`+"\n",
		left, top-12)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="#e5e7eb"/>`+"\n",
		left, top, w, meterBarH)
	fmt.Fprintf(buf, `    <rect class="meter-fill" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#3b82f6"/>`+"\n",
		left, top, w, filled)
	fmt.Fprintf(buf, `    <text class="meter-value" x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="14">%.0f%%</text>`+"\n",
		left+w/2, top+meterBarH+20, score)
	buf.WriteString("  </g>\n")
}
