package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarthakPDalvi/quant-research/internal/strategy"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "run.yaml", `
contract:
  name: henry-small
  max_volume: 50000
  storage_cost_per_unit_day: 0.001
  start: "2023-01-01"
  end: "2024-12-31"
strategy:
  name: pairs
  params:
    inject_dates: ["2023-05-31"]
    withdraw_dates: ["2023-11-30"]
    trade_volume: 10000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "henry-small", cfg.Contract.Name)
	assert.Equal(t, 50_000.0, cfg.Contract.MaxVolume)
	// Rate limits default to max volume when omitted.
	assert.Equal(t, 50_000.0, cfg.Contract.InjectionRateLimit)
	assert.Equal(t, 50_000.0, cfg.Contract.WithdrawalRateLimit)

	contract, err := cfg.Contract.ToModel()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), contract.Start)
}

func TestLoad_ContractFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contract.yaml", `
contract:
  name: base
  max_volume: 10000
  injection_rate_limit: 1000
  withdrawal_rate_limit: 1000
  storage_cost_per_unit_day: 0.002
`)
	path := writeFile(t, dir, "run.yaml", `
contract_file: contract.yaml
contract:
  max_volume: 20000
strategy:
  name: pairs
  params:
    inject_dates: ["2023-05-31"]
    withdraw_dates: ["2023-11-30"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	// Override wins where set, base fills the rest.
	assert.Equal(t, "base", cfg.Contract.Name)
	assert.Equal(t, 20_000.0, cfg.Contract.MaxVolume)
	assert.Equal(t, 1_000.0, cfg.Contract.InjectionRateLimit)
	assert.Equal(t, 0.002, cfg.Contract.StorageCostPerUnitDay)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing strategy name",
			content: `
contract:
  max_volume: 100
`,
		},
		{
			name: "bad start date",
			content: `
contract:
  max_volume: 100
  start: "31-05-2023"
strategy:
  name: pairs
`,
		},
		{
			name: "negative max volume",
			content: `
contract:
  max_volume: -100
strategy:
  name: pairs
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad-"+tt.name+".yaml", tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestBuildStrategy(t *testing.T) {
	builder, err := BuildStrategy(StrategyConfig{
		Name: "pairs",
		Params: map[string]any{
			"inject_dates":   []any{"2023-05-31", "2023-06-30"},
			"withdraw_dates": []any{"2023-11-30", "2023-12-31"},
			"trade_volume":   10_000,
		},
	})
	require.NoError(t, err)

	pairs, ok := builder.(*strategy.PairStrategy)
	require.True(t, ok)
	require.Len(t, pairs.InjectDates, 2)
	assert.Equal(t, time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC), pairs.InjectDates[0])
	assert.Equal(t, 10_000.0, pairs.TradeVolume)
}

func TestBuildStrategy_Seasonal(t *testing.T) {
	builder, err := BuildStrategy(StrategyConfig{
		Name: "seasonal",
		Params: map[string]any{
			"inject_months":   []any{"2023-05"},
			"withdraw_months": []any{"2023-11"},
			"total_volume":    5000.0,
		},
	})
	require.NoError(t, err)

	seasonal, ok := builder.(*strategy.SeasonalStrategy)
	require.True(t, ok)
	assert.Equal(t, 5_000.0, seasonal.TotalVolume)
}

func TestBuildStrategy_Errors(t *testing.T) {
	tests := []struct {
		name string
		sc   StrategyConfig
	}{
		{name: "unknown strategy", sc: StrategyConfig{Name: "oracle"}},
		{name: "missing params", sc: StrategyConfig{Name: "pairs"}},
		{
			name: "bad date format",
			sc: StrategyConfig{
				Name: "pairs",
				Params: map[string]any{
					"inject_dates":   []any{"05/31/2023"},
					"withdraw_dates": []any{"2023-11-30"},
				},
			},
		},
		{
			name: "non-string date entry",
			sc: StrategyConfig{
				Name: "pairs",
				Params: map[string]any{
					"inject_dates":   []any{20230531},
					"withdraw_dates": []any{"2023-11-30"},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStrategy(tt.sc)
			assert.Error(t, err)
		})
	}
}

func TestLoadServer_Defaults(t *testing.T) {
	cfg, err := LoadServer("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadServer_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "server.yaml", `
port: 9090
env: production
logging:
  level: warn
  format: json
`)

	cfg, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}
