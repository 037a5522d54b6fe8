// Package io provides JSON and YAML import and export for furniture layouts.
//
// # JSON Format
//
// A layout file records the canvas extent and every placed item:
//
//	{
//	  "width": 1280,
//	  "height": 800,
//	  "items": [
//	    {"id": "furniture-0", "x": 12.5, "y": 40, "width": 64, "height": 120,
//	     "color": "#5ab3e6", "shape": "square"}
//	  ]
//	}
//
// Item fields:
//   - id: Unique, non-empty identifier
//   - x, y: Top-left corner (may be negative or beyond the canvas)
//   - width, height: Positive tile extent
//   - color: "#rrggbb", "#rgb" or "hsl(h, s%, l%)"
//   - shape: "square", "circle" or "rectangle"
//
// # Import
//
// Use [Import] to read a layout from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	l, err := io.Import("room.json", scorer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Files come from outside the generator, so both functions validate every
// item and return INVALID_LAYOUT errors naming the offending item.
//
// # Export
//
// Use [Export] to write a layout to a file, or [WriteJSON] to write to
// any io.Writer. Export followed by import reproduces the same items, in the
// same drawing order.
//
// # YAML
//
// [ReadYAML] and [WriteYAML] use the same fields with YAML syntax. [Import]
// and [Export] pick the codec from the file extension (.yaml or .yml for
// YAML, anything else for JSON). Export replaces the target file atomically.
package io
