package dive

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chrissnell/diveprofile/pkg/gas"
)

// YAML file layout. Depths are in metres, times are either plain seconds or
// "mm:ss", gas fractions are percentages.
type diveYAML struct {
	Number    int            `yaml:"number"`
	Location  string         `yaml:"location"`
	Cylinders []cylinderYAML `yaml:"cylinders"`
	Computers []computerYAML `yaml:"computers"`
}

type cylinderYAML struct {
	Description string  `yaml:"description"`
	O2          float64 `yaml:"o2"`
	He          float64 `yaml:"he"`
}

type computerYAML struct {
	Model    string       `yaml:"model"`
	Duration string       `yaml:"duration"`
	Mode     string       `yaml:"mode"`
	Samples  []sampleYAML `yaml:"samples"`
	Events   []eventYAML  `yaml:"events"`
}

type sampleYAML struct {
	Time  string  `yaml:"time"`
	Depth float64 `yaml:"depth"`
}

type eventYAML struct {
	Name     string   `yaml:"name"`
	Time     string   `yaml:"time"`
	Value    int      `yaml:"value"`
	Type     string   `yaml:"type"`
	Begin    bool     `yaml:"begin"`
	End      bool     `yaml:"end"`
	Severity int      `yaml:"severity"`
	O2       *float64 `yaml:"o2"`
	He       float64  `yaml:"he"`
	Cylinder *int     `yaml:"cylinder"`
}

// LoadFile reads a dive description from a YAML file.
func LoadFile(filename string) (*Dive, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read dive file: %w", err)
	}
	return Parse(content)
}

// Parse decodes a YAML dive description.
func Parse(content []byte) (*Dive, error) {
	var dy diveYAML
	if err := yaml.Unmarshal(content, &dy); err != nil {
		return nil, fmt.Errorf("parse dive file: %w", err)
	}

	d := &Dive{
		Number:    dy.Number,
		Location:  dy.Location,
		Cylinders: make([]Cylinder, len(dy.Cylinders)),
		Computers: make([]Computer, 0, len(dy.Computers)),
	}

	for i, c := range dy.Cylinders {
		d.Cylinders[i] = Cylinder{
			Description: c.Description,
			Mix:         gas.Mix{O2: percentToPermille(c.O2), He: percentToPermille(c.He)},
		}
	}

	for i, cy := range dy.Computers {
		dc, err := cy.convert()
		if err != nil {
			return nil, fmt.Errorf("dive computer %d: %w", i, err)
		}
		d.Computers = append(d.Computers, dc)
	}
	if len(d.Computers) == 0 {
		return nil, fmt.Errorf("dive has no dive computer data")
	}

	return d, nil
}

func (cy computerYAML) convert() (Computer, error) {
	dc := Computer{Model: cy.Model}

	mode, err := parseMode(cy.Mode)
	if err != nil {
		return dc, err
	}
	dc.Mode = mode

	for _, s := range cy.Samples {
		t, err := ParseDuration(s.Time)
		if err != nil {
			return dc, fmt.Errorf("sample: %w", err)
		}
		if n := len(dc.Samples); n > 0 && t < dc.Samples[n-1].Time {
			return dc, fmt.Errorf("sample at %s is out of order", s.Time)
		}
		dc.Samples = append(dc.Samples, Sample{Time: t, DepthMM: int(math.Round(s.Depth * 1000))})
	}

	for _, ey := range cy.Events {
		ev, err := ey.convert()
		if err != nil {
			return dc, fmt.Errorf("event %q: %w", ey.Name, err)
		}
		dc.Events = append(dc.Events, ev)
	}
	dc.SortEvents()

	if cy.Duration != "" {
		if dc.Duration, err = ParseDuration(cy.Duration); err != nil {
			return dc, fmt.Errorf("duration: %w", err)
		}
	} else if n := len(dc.Samples); n > 0 {
		dc.Duration = dc.Samples[n-1].Time
	}

	return dc, nil
}

func (ey eventYAML) convert() (Event, error) {
	t, err := ParseDuration(ey.Time)
	if err != nil {
		return Event{}, err
	}
	typ, err := ParseEventType(ey.Type)
	if err != nil {
		return Event{}, err
	}

	ev := Event{
		Name:  ey.Name,
		Time:  t,
		Value: ey.Value,
		Type:  typ,
		Gas:   EventGas{Index: -1},
	}
	if ey.Begin {
		ev.Flags |= FlagBegin
	}
	if ey.End {
		ev.Flags |= FlagEnd
	}
	ev.Flags = ev.Flags.WithSeverity(ey.Severity)

	if ey.O2 != nil {
		ev.Gas.Mix = gas.Mix{O2: percentToPermille(*ey.O2), He: percentToPermille(ey.He)}
	}
	if ey.Cylinder != nil {
		ev.Gas.Index = *ey.Cylinder
	}
	return ev, nil
}

func parseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oc", "open circuit":
		return OC, nil
	case "ccr":
		return CCR, nil
	case "pscr":
		return PSCR, nil
	case "freedive":
		return Freedive, nil
	}
	return OC, fmt.Errorf("unknown dive mode %q", s)
}

// ParseDuration accepts "ss", "mm:ss" or "hh:mm:ss" and returns seconds.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	total := 0
	for _, part := range strings.Split(s, ":") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		total = total*60 + n
	}
	return total, nil
}

func percentToPermille(p float64) int {
	return int(math.Round(p * 10))
}
