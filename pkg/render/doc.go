// Package render draws furniture layouts as standalone SVG documents.
//
// The drawing mirrors the interactive views: each item becomes a rounded
// rectangle (or an ellipse for circles) filled with its color and labeled
// with its shape, and a "Feng Shui Meter" panel to the right shows the
// layout's score as a partially filled bar.
//
//	svg := render.RenderSVG(l, render.WithMeter(true))
//
// # Options
//
// [WithSize] overrides the canvas extent (the layout bounds by default),
// [WithMeter] and [WithLabels] toggle the score panel and the tile labels.
// Item ids, colors and labels are HTML-escaped.
package render
