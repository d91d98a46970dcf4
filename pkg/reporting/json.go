package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// DefaultJSONFormatter implements JSON output functionality.
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter.
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// FormatResult returns the simulation result as indented JSON.
func (f *DefaultJSONFormatter) FormatResult(result *types.SimulationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// WriteResultJSON writes the full simulation result to a JSON file.
func (f *DefaultJSONFormatter) WriteResultJSON(result *types.SimulationResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	raw, err := f.FormatResult(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return os.WriteFile(path, raw, 0644)
}
