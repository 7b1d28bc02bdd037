package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chrissnell/diveprofile/internal/constants"
	"github.com/chrissnell/diveprofile/internal/dive"
	"github.com/chrissnell/diveprofile/internal/i18n"
	"github.com/chrissnell/diveprofile/internal/log"
	"github.com/chrissnell/diveprofile/internal/markers"
	"github.com/chrissnell/diveprofile/internal/profile"
	"github.com/chrissnell/diveprofile/internal/render"
	"github.com/chrissnell/diveprofile/pkg/config"
	"github.com/chrissnell/diveprofile/pkg/responseformat"
	"github.com/chrissnell/diveprofile/pkg/units"
)

type options struct {
	cfgFile  string
	diveFile string
	computer int
	format   string
	output   string
	lang     string
	from     int
	to       int
}

func main() {
	var opts options
	flag.StringVar(&opts.cfgFile, "config", "", "Path to YAML configuration (defaults apply when empty or missing)")
	flag.StringVar(&opts.diveFile, "dive", "", "Path to the YAML dive description")
	flag.IntVar(&opts.computer, "dc", 0, "Index of the dive computer to plot")
	flag.StringVar(&opts.format, "format", "table", "Output format: table, json, msgpack or svg")
	flag.StringVar(&opts.output, "o", "", "Write output to this file instead of stdout")
	flag.StringVar(&opts.lang, "lang", "", "Override the configured display language")
	flag.IntVar(&opts.from, "from", -1, "First second of the plotted range (default: first sample)")
	flag.IntVar(&opts.to, "to", -1, "End of the plotted range in seconds, exclusive (default: after the last sample)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("diveprofile %s\n", constants.Version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if opts.diveFile == "" && flag.NArg() > 0 {
		opts.diveFile = flag.Arg(0)
	}
	if opts.diveFile == "" {
		log.Fatalf("No dive file given. Run with -h for help.")
	}

	if err := run(opts); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	var cfgPath string
	if opts.cfgFile != "" {
		cfgPath, _ = filepath.Abs(opts.cfgFile)
	}
	provider := config.NewYAMLProvider(cfgPath)
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if opts.lang != "" {
		cfg.Display.Language = opts.lang
	}

	d, err := dive.LoadFile(opts.diveFile)
	if err != nil {
		return err
	}
	if opts.computer < 0 || opts.computer >= len(d.Computers) {
		return fmt.Errorf("dive has %d dive computer(s), no index %d", len(d.Computers), opts.computer)
	}
	dc := &d.Computers[opts.computer]

	length, err := units.ParseLength(cfg.Display.DepthUnit)
	if err != nil {
		return fmt.Errorf("display config: %w", err)
	}
	prefs := units.Preferences{Length: length}

	tr, err := i18n.New(cfg.Display.Language)
	if err != nil {
		return fmt.Errorf("display config: %w", err)
	}

	pi := profile.FromComputer(dc)
	geom := render.Geometry{
		Width:        cfg.Plot.Width,
		Height:       cfg.Plot.Height,
		MarginTop:    cfg.Plot.MarginTop,
		MarginBottom: cfg.Plot.MarginBottom,
		MarginLeft:   cfg.Plot.MarginLeft,
		MarginRight:  cfg.Plot.MarginRight,
	}
	timeAxis, depthAxis := geom.Axes(pi)

	hidden := markers.NewHiddenSet()
	for _, h := range cfg.Display.HiddenEvents {
		hidden.Hide(h.Name, dive.Flags(0).WithSeverity(h.Severity))
	}

	view := &markers.View{
		TimeAxis:  timeAxis,
		DepthAxis: depthAxis,
		Icons:     markers.DefaultIcons{IconSize: cfg.Plot.IconSize},
		Classifier: markers.NewClassifier(markers.Preferences{
			ShowICD:       cfg.Display.ShowICD,
			SeverityFlags: cfg.Display.SeverityFlags,
			Units:         prefs,
		}, tr),
		Hidden: hidden,
	}

	first, last := pi.Bounds()
	last++
	if opts.from >= 0 {
		first = opts.from
	}
	if opts.to >= 0 {
		last = opts.to
	}

	ms := view.Build(d, dc, pi, first, last)
	log.Debugw("built event markers", "dive", d.Number, "events", len(dc.Events), "markers", len(ms))

	out := io.Writer(os.Stdout)
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	report := render.NewReport(d, dc, ms)
	switch opts.format {
	case "table":
		return render.Table(out, report, view.Icons, prefs)
	case "svg":
		return render.SVG(out, pi, ms, view, geom, prefs)
	default:
		format, err := responseformat.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		return responseformat.NewFormatter(format, true).Write(out, report)
	}
}
