package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/strategy"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	// Optional: load contract parameters from a separate YAML
	// (e.g. examples/contracts/*.yaml). If both ContractFile and Contract
	// are provided, Contract overrides ContractFile field by field.
	ContractFile string         `yaml:"contract_file"`
	Contract     ContractConfig `yaml:"contract"`
	Strategy     StrategyConfig `yaml:"strategy"`

	// Candidates are additional strategies to rank alongside Strategy.
	Candidates []StrategyConfig `yaml:"candidates"`
}

type ContractConfig struct {
	Name                  string  `yaml:"name"`
	MaxVolume             float64 `yaml:"max_volume"`
	InjectionRateLimit    float64 `yaml:"injection_rate_limit"`
	WithdrawalRateLimit   float64 `yaml:"withdrawal_rate_limit"`
	InjectionCostPerUnit  float64 `yaml:"injection_cost_per_unit"`
	WithdrawalCostPerUnit float64 `yaml:"withdrawal_cost_per_unit"`
	StorageCostPerUnitDay float64 `yaml:"storage_cost_per_unit_day"`
	Start                 string  `yaml:"start"` // YYYY-MM-DD, optional
	End                   string  `yaml:"end"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Rate limits default to the max volume so simple configs stay concise:
	// an unconstrained facility can move its full capacity in one event.
	if c.Contract.InjectionRateLimit == 0 {
		c.Contract.InjectionRateLimit = c.Contract.MaxVolume
	}
	if c.Contract.WithdrawalRateLimit == 0 {
		c.Contract.WithdrawalRateLimit = c.Contract.MaxVolume
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ContractFile != "" {
		contractPath := c.ContractFile
		if !filepath.IsAbs(contractPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), contractPath)
			if _, err := os.Stat(cand); err == nil {
				contractPath = cand
			}
		}
		loaded, err := loadContractFile(contractPath)
		if err != nil {
			return nil, err
		}
		c.Contract = MergeContract(loaded, c.Contract)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Strategy.Name == "" {
		return errors.New("strategy.name is required")
	}
	contract, err := c.Contract.ToModel()
	if err != nil {
		return fmt.Errorf("contract config invalid: %w", err)
	}
	if err := contract.Validate(); err != nil {
		return fmt.Errorf("contract config invalid: %w", err)
	}
	return nil
}

func (cc ContractConfig) ToModel() (model.StorageContract, error) {
	contract := model.StorageContract{
		MaxVolume:             cc.MaxVolume,
		InjectionRateLimit:    cc.InjectionRateLimit,
		WithdrawalRateLimit:   cc.WithdrawalRateLimit,
		InjectionCostPerUnit:  cc.InjectionCostPerUnit,
		WithdrawalCostPerUnit: cc.WithdrawalCostPerUnit,
		StorageCostPerUnitDay: cc.StorageCostPerUnitDay,
	}
	if cc.Start != "" {
		t, err := time.Parse(dateLayout, cc.Start)
		if err != nil {
			return contract, fmt.Errorf("contract start: %w", err)
		}
		contract.Start = t
	}
	if cc.End != "" {
		t, err := time.Parse(dateLayout, cc.End)
		if err != nil {
			return contract, fmt.Errorf("contract end: %w", err)
		}
		contract.End = t
	}
	return contract, nil
}

type contractFileWrapper struct {
	Contract ContractConfig `yaml:"contract"`
}

func loadContractFile(path string) (ContractConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ContractConfig{}, err
	}
	var w contractFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ContractConfig{}, err
	}
	return w.Contract, nil
}

// MergeContract overlays non-zero fields from override onto base. Used when
// loading a contract file and then applying overrides from the run config or
// an API request.
func MergeContract(base, override ContractConfig) ContractConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.MaxVolume != 0 {
		out.MaxVolume = override.MaxVolume
	}
	if override.InjectionRateLimit != 0 {
		out.InjectionRateLimit = override.InjectionRateLimit
	}
	if override.WithdrawalRateLimit != 0 {
		out.WithdrawalRateLimit = override.WithdrawalRateLimit
	}
	if override.InjectionCostPerUnit != 0 {
		out.InjectionCostPerUnit = override.InjectionCostPerUnit
	}
	if override.WithdrawalCostPerUnit != 0 {
		out.WithdrawalCostPerUnit = override.WithdrawalCostPerUnit
	}
	if override.StorageCostPerUnitDay != 0 {
		out.StorageCostPerUnitDay = override.StorageCostPerUnitDay
	}
	if override.Start != "" {
		out.Start = override.Start
	}
	if override.End != "" {
		out.End = override.End
	}
	return out
}

// BuildStrategy turns a StrategyConfig into a concrete builder.
func BuildStrategy(sc StrategyConfig) (strategy.Builder, error) {
	switch sc.Name {
	case "pairs":
		injectDates, err := paramDates(sc.Params, "inject_dates", dateLayout)
		if err != nil {
			return nil, err
		}
		withdrawDates, err := paramDates(sc.Params, "withdraw_dates", dateLayout)
		if err != nil {
			return nil, err
		}
		return &strategy.PairStrategy{
			InjectDates:   injectDates,
			WithdrawDates: withdrawDates,
			TradeVolume:   paramFloat(sc.Params, "trade_volume"),
		}, nil
	case "seasonal":
		injectMonths, err := paramDates(sc.Params, "inject_months", "2006-01")
		if err != nil {
			return nil, err
		}
		withdrawMonths, err := paramDates(sc.Params, "withdraw_months", "2006-01")
		if err != nil {
			return nil, err
		}
		return &strategy.SeasonalStrategy{
			InjectMonths:   injectMonths,
			WithdrawMonths: withdrawMonths,
			TotalVolume:    paramFloat(sc.Params, "total_volume"),
		}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", sc.Name)
	}
}

func paramFloat(params map[string]any, key string) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func paramDates(params map[string]any, key, layout string) ([]time.Time, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("strategy param %q is required", key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("strategy param %q must be a list of dates", key)
	}
	out := make([]time.Time, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("strategy param %q: entries must be strings", key)
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, fmt.Errorf("strategy param %q: %w", key, err)
		}
		out = append(out, t)
	}
	return out, nil
}
