package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/layout"
)

// Format is a layout file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the encoding from a file extension. Anything other than
// .yaml or .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Import reads a layout file in the format its extension names.
// A missing file yields a FILE_NOT_FOUND error.
func Import(path string, scorer *appeal.Scorer) (*layout.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if FormatOf(path) == FormatYAML {
		return ReadYAML(f, scorer)
	}
	return ReadJSON(f, scorer)
}

// Export writes a layout file in the format its extension names.
//
// The layout is written to a temporary file next to path and renamed over it
// once complete, so a failed export leaves any existing file untouched and
// no partial file behind.
func Export(l *layout.Layout, path string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := Write(l, f, FormatOf(path)); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Write encodes l to w in format.
func Write(l *layout.Layout, w io.Writer, format Format) error {
	if format == FormatYAML {
		return WriteYAML(l, w)
	}
	return WriteJSON(l, w)
}
