package storage

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// objectName returns a collision-free name for an uploaded file that keeps the
// original base name readable.
func objectName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if base == "" || base == "." || base == "_" {
		base = "document.pdf"
	}
	return uuid.NewString() + "-" + base
}
