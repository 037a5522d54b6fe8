package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/layout"
)

func TestYAMLRoundTrip(t *testing.T) {
	b := furniture.Bounds{Width: 640, Height: 480}
	orig := layout.Generate(6, b, furniture.NewRand(3), nil)

	var buf bytes.Buffer
	if err := WriteYAML(orig, &buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	if !strings.Contains(buf.String(), "items:") {
		t.Errorf("unexpected YAML:\n%s", buf.String())
	}

	got, err := ReadYAML(&buf, nil)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	if got.Bounds() != b {
		t.Errorf("Bounds() = %v, want %v", got.Bounds(), b)
	}
	want := orig.Items()
	for i, it := range got.Items() {
		if it != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, it, want[i])
		}
	}
}

func TestReadYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"syntax", "width: [1"},
		{"unknown field", "width: 10\nheight: 10\ncolour: red\n"},
		{"bad shape", "width: 10\nheight: 10\nitems:\n  - {id: a, x: 0, y: 0, width: 5, height: 5, color: '#fff', shape: hexagon}\n"},
		{"no canvas", "items: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(tt.in), nil)
			if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("ReadYAML() error = %v, want INVALID_LAYOUT", err)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"room.json", FormatJSON},
		{"room.yaml", FormatYAML},
		{"ROOM.YML", FormatYAML},
		{"room", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestImportExportByExtension(t *testing.T) {
	orig := layout.Generate(4, furniture.Bounds{Width: 300, Height: 300}, furniture.NewRand(8), nil)

	for _, name := range []string{"room.json", "room.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Export(orig, path); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Import(path, nil)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if got.Len() != orig.Len() || got.Score() != orig.Score() {
				t.Errorf("got %d items score %v, want %d items score %v",
					got.Len(), got.Score(), orig.Len(), orig.Score())
			}
		})
	}
}

func TestImportMissing(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import() error = %v, want FILE_NOT_FOUND", err)
	}
}
