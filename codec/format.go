package codec

import (
	"path/filepath"
	"strings"
)

// Structural text encoding.
// ENUM(json, yaml)
type Format int

// FormatFromPath selects format by file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "yml" {
		return FormatYaml, nil
	}
	return ParseFormat(ext)
}
