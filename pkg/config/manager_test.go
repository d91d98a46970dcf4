package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducln05/futures-risk-replay/internal/simulation"
)

func writeProfileFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadProfile_JSON tests loading a JSON profile
func TestLoadProfile_JSON(t *testing.T) {
	path := writeProfileFile(t, "simple.json", `{
		"name": "conservative",
		"description": "1% risk",
		"params": {
			"simple": {
				"balance_cents": 5000000,
				"risk_per_trade_percent": 1.0,
				"max_daily_trades": 5
			}
		}
	}`)

	profile, err := NewManager().LoadProfile(path)

	require.NoError(t, err)
	assert.Equal(t, "conservative", profile.Name)
	assert.Equal(t, simulation.EngineSimple, profile.Params.Kind())
	assert.Equal(t, int64(5000000), profile.Params.Simple.BalanceCents)
	assert.Equal(t, 5, profile.Params.Simple.MaxDailyTrades)
}

// TestLoadProfile_YAML tests loading a YAML profile
func TestLoadProfile_YAML(t *testing.T) {
	path := writeProfileFile(t, "advanced.yaml", `
name: recovery-plan
params:
  advanced:
    balance_cents: 5000000
    decision_tree:
      base_trade:
        risk_cents: 50000
      gain_mode:
        kind: single_target
`)

	profile, err := NewManager().LoadProfile(path)

	require.NoError(t, err)
	assert.Equal(t, "recovery-plan", profile.Name)
	assert.Equal(t, simulation.EngineAdvanced, profile.Params.Kind())
	assert.Equal(t, int64(50000), profile.Params.Advanced.DecisionTree.BaseTrade.RiskCents)
}

// TestLoadProfile_DefaultName tests falling back to the filename
func TestLoadProfile_DefaultName(t *testing.T) {
	path := writeProfileFile(t, "weekend-policy.json", `{
		"params": {"simple": {"balance_cents": 100000, "risk_per_trade_percent": 2}}
	}`)

	profile, err := NewManager().LoadProfile(path)

	require.NoError(t, err)
	assert.Equal(t, "weekend-policy", profile.Name)
}

// TestLoadProfile_RejectsInvalidParams tests that validation runs at load time
func TestLoadProfile_RejectsInvalidParams(t *testing.T) {
	path := writeProfileFile(t, "broken.json", `{
		"name": "broken",
		"params": {"simple": {"balance_cents": 0, "risk_per_trade_percent": 1}}
	}`)

	_, err := NewManager().LoadProfile(path)
	assert.Error(t, err)
}

// TestLoadProfile_RejectsBothEngines tests the union constraint at load time
func TestLoadProfile_RejectsBothEngines(t *testing.T) {
	path := writeProfileFile(t, "both.json", `{
		"params": {
			"simple": {"balance_cents": 100000, "risk_per_trade_percent": 1},
			"advanced": {"balance_cents": 100000, "decision_tree": {"base_trade": {"risk_cents": 1000}, "gain_mode": {"kind": "single_target"}}}
		}
	}`)

	_, err := NewManager().LoadProfile(path)
	assert.Error(t, err)
}

// TestLoadProfile_MissingFile tests the not-found error path
func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := NewManager().LoadProfile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestSaveProfile_RoundTrip tests persisting and reloading a profile
func TestSaveProfile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "saved.json")

	original := &Profile{
		Name: "saved",
		Params: simulation.Params{
			Simple: &simulation.SimpleParams{
				BalanceCents:        250000,
				RiskPerTradePercent: 0.5,
			},
		},
	}

	manager := NewManager()
	require.NoError(t, manager.SaveProfile(original, path))

	loaded, err := manager.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, original.Name, loaded.Name)
	assert.Equal(t, original.Params.Simple.BalanceCents, loaded.Params.Simple.BalanceCents)
}
