package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPathManager implements output path management.
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager.
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns the default output directory for a run.
func (p *DefaultPathManager) GetDefaultOutputDir(asset, engine string) string {
	a := strings.ToUpper(strings.TrimSpace(asset))
	e := strings.ToLower(strings.TrimSpace(engine))
	if a == "" {
		a = "ALL"
	}
	if e == "" {
		e = "simple"
	}
	return filepath.Join("results", fmt.Sprintf("%s_%s", a, e))
}

// EnsureDirectoryExists creates the parent directory of path if needed.
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
