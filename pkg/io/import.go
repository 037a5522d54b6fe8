package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/layout"
)

// ReadJSON decodes a JSON layout from r. A nil scorer uses the default
// parameters.
//
// ReadJSON returns an INVALID_LAYOUT error if:
//   - The JSON is malformed
//   - The canvas width or height is not positive
//   - An item has an empty or duplicate id
//   - An item has an unknown shape or a non-positive size
//   - An item has a color that cannot be parsed
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader, scorer *appeal.Scorer) (*layout.Layout, error) {
	var data file
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}

	return build(data, scorer)
}

// build validates a decoded layout file and turns it into a layout.
func build(data file, scorer *appeal.Scorer) (*layout.Layout, error) {
	bounds := furniture.Bounds{Width: data.Width, Height: data.Height}
	if err := errors.ValidateSize("canvas width", bounds.Width); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "canvas")
	}
	if err := errors.ValidateSize("canvas height", bounds.Height); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "canvas")
	}

	seen := make(map[string]bool, len(data.Items))
	for i, it := range data.Items {
		if err := validateItem(it); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "item %d (%s)", i, it.ID)
		}
		if seen[it.ID] {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}

	return layout.New(bounds, data.Items, scorer), nil
}

func validateItem(it furniture.Item) error {
	if err := errors.ValidateItemID(it.ID); err != nil {
		return err
	}
	if err := errors.ValidateCoordinate("x", it.X); err != nil {
		return err
	}
	if err := errors.ValidateCoordinate("y", it.Y); err != nil {
		return err
	}
	if err := errors.ValidateSize("width", it.Width); err != nil {
		return err
	}
	if err := errors.ValidateSize("height", it.Height); err != nil {
		return err
	}
	if !it.Shape.Valid() {
		return fmt.Errorf("unknown shape %q", it.Shape)
	}
	if _, err := furniture.ParseColor(it.Color); err != nil {
		return err
	}
	return nil
}
