package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// widgetTypeRegex matches catalog widget type names such as "chart" or "kpi-tile".
var widgetTypeRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateWidgetType validates a widget type name used as a catalog key.
//
// Names must start with a lowercase letter and contain only lowercase
// letters, digits, dashes and underscores, at most 64 characters.
func ValidateWidgetType(name string) error {
	if name == "" {
		return New(ErrCodeInvalidWidgetType, "widget type cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidWidgetType, "widget type too long (max 64 characters)")
	}
	if !widgetTypeRegex.MatchString(name) {
		return New(ErrCodeInvalidWidgetType, "invalid widget type: %q", name)
	}
	return nil
}

// ValidateLayoutPath validates the path of a layout file given on the
// command line.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must have a .json extension
func ValidateLayoutPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "layout path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "layout path contains invalid characters")
		}
	}

	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return New(ErrCodeInvalidPath, "layout file must be .json: %s", path)
	}

	return nil
}
