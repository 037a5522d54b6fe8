package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/layout"
)

// file is the on-disk shape of a layout, shared by the JSON and YAML codecs.
type file struct {
	Width  float64          `json:"width" yaml:"width"`
	Height float64          `json:"height" yaml:"height"`
	Items  []furniture.Item `json:"items" yaml:"items"`
}

func toFile(l *layout.Layout) file {
	b := l.Bounds()
	out := file{Width: b.Width, Height: b.Height, Items: l.Items()}
	if out.Items == nil {
		out.Items = []furniture.Item{}
	}
	return out
}

// WriteJSON encodes a layout as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(l *layout.Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toFile(l)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
