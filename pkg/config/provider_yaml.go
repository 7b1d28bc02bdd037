package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider. An empty
// filename yields the defaults.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file. Settings the
// file leaves out keep their defaults, and a missing file is not an error.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	config := DefaultConfig()

	if y.filename == "" {
		y.config = config
		return config, nil
	}

	cfgFile, err := os.ReadFile(y.filename)
	if errors.Is(err, os.ErrNotExist) {
		y.config = config
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Display *DisplayYAML `yaml:"display"`
		Plot    *PlotYAML    `yaml:"plot"`
	}

	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if d := yamlConfig.Display; d != nil {
		if d.Language != "" {
			config.Display.Language = d.Language
		}
		if d.DepthUnit != "" {
			config.Display.DepthUnit = d.DepthUnit
		}
		if d.ShowICD != nil {
			config.Display.ShowICD = *d.ShowICD
		}
		if d.SeverityFlags != nil {
			config.Display.SeverityFlags = *d.SeverityFlags
		}
		for _, h := range d.HiddenEvents {
			if h.Name == "" {
				return nil, fmt.Errorf("hidden event without a name")
			}
			config.Display.HiddenEvents = append(config.Display.HiddenEvents, HiddenEventData{
				Name:     h.Name,
				Severity: h.Severity,
			})
		}
	}

	if p := yamlConfig.Plot; p != nil {
		setPositive(&config.Plot.Width, p.Width)
		setPositive(&config.Plot.Height, p.Height)
		setPositive(&config.Plot.MarginTop, p.MarginTop)
		setPositive(&config.Plot.MarginBottom, p.MarginBottom)
		setPositive(&config.Plot.MarginLeft, p.MarginLeft)
		setPositive(&config.Plot.MarginRight, p.MarginRight)
		setPositive(&config.Plot.IconSize, p.IconSize)
	}

	if config.Plot.Width <= config.Plot.MarginLeft+config.Plot.MarginRight ||
		config.Plot.Height <= config.Plot.MarginTop+config.Plot.MarginBottom {
		return nil, fmt.Errorf("plot margins leave no room for the profile")
	}

	y.config = config
	return config, nil
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

// GetDisplay returns display preferences
func (y *YAMLProvider) GetDisplay() (*DisplayData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Display, nil
}

// GetPlot returns plot geometry
func (y *YAMLProvider) GetPlot() (*PlotData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Plot, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs. Pointers distinguish "unset" from false.
type DisplayYAML struct {
	Language      string            `yaml:"language,omitempty"`
	DepthUnit     string            `yaml:"depth-unit,omitempty"`
	ShowICD       *bool             `yaml:"show-icd,omitempty"`
	SeverityFlags *bool             `yaml:"severity-flags,omitempty"`
	HiddenEvents  []HiddenEventYAML `yaml:"hidden-events,omitempty"`
}

type HiddenEventYAML struct {
	Name     string `yaml:"name"`
	Severity int    `yaml:"severity,omitempty"`
}

type PlotYAML struct {
	Width        float64 `yaml:"width,omitempty"`
	Height       float64 `yaml:"height,omitempty"`
	MarginTop    float64 `yaml:"margin-top,omitempty"`
	MarginBottom float64 `yaml:"margin-bottom,omitempty"`
	MarginLeft   float64 `yaml:"margin-left,omitempty"`
	MarginRight  float64 `yaml:"margin-right,omitempty"`
	IconSize     float64 `yaml:"icon-size,omitempty"`
}
