package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InvestmentConfigManager loads single-run configurations from JSON files
// merged over defaults.
type InvestmentConfigManager struct{}

// NewInvestmentConfigManager creates a new investment configuration manager.
func NewInvestmentConfigManager() *InvestmentConfigManager {
	return &InvestmentConfigManager{}
}

// NewDefaultInvestmentConfig returns the baseline single-run configuration.
func NewDefaultInvestmentConfig() InvestmentConfig {
	return InvestmentConfig{
		Symbol:                DefaultSymbol,
		StartYear:             2000,
		StartMonth:            1,
		InvestmentPeriodYears: DefaultInvestmentPeriodYears,
		DCAMonths:             DefaultDCAMonths,
		Principal:             DefaultPrincipal,
	}
}

// LoadConfig returns the defaults overlaid with the JSON config file when one
// is given, validated.
func (m *InvestmentConfigManager) LoadConfig(configFile string) (InvestmentConfig, error) {
	cfg := NewDefaultInvestmentConfig()

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadRollingConfig returns the sweep defaults overlaid with the JSON config
// file when one is given. The defaults carry no sweep range, so validation is
// the caller's job once flag overrides have been applied.
func (m *InvestmentConfigManager) LoadRollingConfig(configFile string) (RollingConfig, error) {
	cfg := RollingConfig{
		Symbol:                DefaultSymbol,
		InvestmentPeriodYears: DefaultInvestmentPeriodYears,
		DCAMonths:             DefaultDCAMonths,
		Principal:             DefaultPrincipal,
	}

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	return cfg, nil
}

// loadFromFile decodes a JSON config file over cfg.
func loadFromFile(configFile string, cfg interface{}) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", configFile, err)
	}
	return nil
}
