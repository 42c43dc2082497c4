package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFileIn reads name relative to dir, refusing paths that leave dir.
func ReadFileIn(dir, name string) ([]byte, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("path %q escapes %s", name, dir)
	}
	return os.ReadFile(filepath.Join(dir, name))
}
