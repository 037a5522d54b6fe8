package io

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/layout"
)

// ReadYAML decodes a YAML layout from r. It applies the same validation as
// [ReadJSON].
func ReadYAML(r io.Reader, scorer *appeal.Scorer) (*layout.Layout, error) {
	var data file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	return build(data, scorer)
}

// WriteYAML encodes a layout as YAML and writes it to w.
func WriteYAML(l *layout.Layout, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toFile(l)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}
