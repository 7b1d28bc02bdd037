package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetDisplay() (*DisplayData, error)
	GetPlot() (*PlotData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Display DisplayData `json:"display"`
	Plot    PlotData    `json:"plot"`
}

// DisplayData holds the user preferences that affect how events are shown
type DisplayData struct {
	Language      string            `json:"language,omitempty"`
	DepthUnit     string            `json:"depth_unit,omitempty"`
	ShowICD       bool              `json:"show_icd"`
	SeverityFlags bool              `json:"severity_flags"`
	HiddenEvents  []HiddenEventData `json:"hidden_events,omitempty"`
}

// HiddenEventData names one class of events the user does not want to see
type HiddenEventData struct {
	Name     string `json:"name"`
	Severity int    `json:"severity,omitempty"`
}

// PlotData holds the geometry of the rendered profile
type PlotData struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MarginTop    float64 `json:"margin_top"`
	MarginBottom float64 `json:"margin_bottom"`
	MarginLeft   float64 `json:"margin_left"`
	MarginRight  float64 `json:"margin_right"`
	IconSize     float64 `json:"icon_size"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *ConfigData {
	return &ConfigData{
		Display: DisplayData{
			DepthUnit:     "m",
			SeverityFlags: true,
		},
		Plot: PlotData{
			Width:        1000,
			Height:       400,
			MarginTop:    30,
			MarginBottom: 40,
			MarginLeft:   60,
			MarginRight:  30,
			IconSize:     22,
		},
	}
}
