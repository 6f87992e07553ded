package config

import (
	"os"
	"path/filepath"
	"strings"
)

// StrOrFile returns the contents of value if it is an absolute or "./"-relative path to a readable file,
// with surrounding whitespace trimmed; otherwise value is returned unchanged
func StrOrFile(value string) string {
	if strings.HasPrefix(value, string(filepath.Separator)) || strings.HasPrefix(value, "."+string(filepath.Separator)) {
		if content, err := os.ReadFile(value); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return value
}
