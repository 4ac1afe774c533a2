package cryptofolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the notification preferences of the user.
type Settings struct {
	// PriceAlerts enables alert evaluation. When off, alerts stay active.
	PriceAlerts bool `yaml:"notify_price_alerts"`
	// PortfolioChanges notifies when the priced total of an unchanged
	// portfolio moves between two checks.
	PortfolioChanges bool `yaml:"notify_portfolio_changes"`
}

// DefaultSettings enables every notification.
func DefaultSettings() Settings {
	return Settings{PriceAlerts: true, PortfolioChanges: true}
}

// LoadSettings reads settings from a YAML file. Missing keys keep their
// default value, and a missing file yields the defaults.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("cannot read settings %q: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("format error %q: %w", filename, err)
	}
	return s, nil
}

// SaveSettings writes settings into a YAML file.
func SaveSettings(filename string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("cannot write settings %q: %w", filename, err)
	}
	return nil
}
