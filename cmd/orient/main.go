// Command orient reports whether each ring in its input winds
// counterclockwise.
//
// Input on stdin (or the file argument) should be newline separated points in
// the form "x y", with each ring separated by an extra newline. With --svg,
// every <polygon> in an SVG document is read instead, named by its id.
//
// The exit status is 1 if any ring has too few points to have an orientation.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
	"github.com/osuushi/orient/advanced"
	"github.com/osuushi/orient/dbg"
	"github.com/osuushi/orient/internal/config"
	"github.com/osuushi/orient/internal/report"
	"github.com/osuushi/orient/internal/ringdraw"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var log = logging.MustGetLogger("orient")

var logFormat = logging.MustStringFormatter(
	"%{color}%{time:15:04:05.000} %{level:.4s}%{color:reset} %{message}",
)

const (
	exitOK = iota
	exitInvalidRing
	exitFailure
)

// Flag values. Zero values mean "not given", so the config file wins.
type options struct {
	file       string
	svg        bool
	format     string
	noColor    bool
	drawDir    string
	imgcat     bool
	scale      float64
	configPath string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	app := kingpin.New("orient", "Report whether rings wind counterclockwise.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Flag("svg", "Read the polygons of an SVG document.").BoolVar(&opts.svg)
	app.Flag("format", "Output format ("+fmt.Sprint(report.Formats)+").").Short('f').PlaceHolder("FORMAT").StringVar(&opts.format)
	app.Flag("no-color", "Disable colored text output.").BoolVar(&opts.noColor)
	app.Flag("draw", "Write a PNG of each ring and its cap to this directory.").PlaceHolder("DIR").StringVar(&opts.drawDir)
	app.Flag("imgcat", "Also print each drawing to the terminal.").BoolVar(&opts.imgcat)
	app.Flag("scale", "Drawing scale in pixels per unit.").Float64Var(&opts.scale)
	app.Flag("config", "TOML config file.").Short('c').PlaceHolder("FILE").StringVar(&opts.configPath)
	app.Flag("verbose", "Debug logging.").Short('v').BoolVar(&opts.verbose)
	app.Arg("file", "Input file. Reads stdin when omitted.").StringVar(&opts.file)

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "orient: %s\n", err)
		return exitFailure
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "orient: %s\n", err)
		return exitFailure
	}
	if err := setupLogging(stderr, cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "orient: %s\n", err)
		return exitFailure
	}

	status, err := orient(opts, cfg, stdin, stdout)
	if err != nil {
		log.Errorf("%+v", err)
		return exitFailure
	}
	return status
}

// Apply the flags over the config file, and the config file over the
// defaults.
func resolveConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.noColor {
		cfg.Color = false
	}
	if opts.drawDir != "" {
		cfg.Draw.Dir = opts.drawDir
	}
	if opts.imgcat {
		cfg.Draw.Imgcat = true
	}
	if opts.scale != 0 {
		cfg.Draw.Scale = opts.scale
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	backend := logging.NewLogBackend(w, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, logFormat))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func orient(opts options, cfg config.Config, stdin io.Reader, stdout io.Writer) (int, error) {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return exitFailure, err
	}

	rings, err := readInput(opts.file, opts.svg, stdin)
	if err != nil {
		return exitFailure, err
	}
	log.Debugf("read %d rings", len(rings))

	status := exitOK
	results := make([]report.Result, 0, len(rings))
	for i, namedRing := range rings {
		name := namedRing.Name
		if name == "" {
			name = dbg.Name(i)
		}
		c, err := advanced.LocateCap(namedRing.Ring)
		if err != nil {
			status = worseStatus(status, ringStatus(err))
		} else {
			log.Debugf("%s: %s cap, up %v -> %v (vertex %d), down %v -> %v (vertex %d)",
				name, c.Shape, c.UpLow, c.UpHi, c.UpHiIndex, c.DownHi, c.DownLow, c.DownLowIndex)
		}
		results = append(results, report.Result{Name: name, Ring: namedRing.Ring, Cap: c, Err: err})
	}

	if err := report.Write(stdout, format, cfg.Color, results); err != nil {
		return exitFailure, err
	}

	if cfg.Draw.Dir != "" {
		if err := draw(cfg.Draw, results, stdout); err != nil {
			return exitFailure, err
		}
	}
	return status, nil
}

// Too few points is a problem with the input. Anything else is a bug.
func ringStatus(err error) int {
	if errors.Is(err, advanced.ErrInvalidArgument) {
		return exitInvalidRing
	}
	return exitFailure
}

func worseStatus(a, b int) int {
	if b > a {
		return b
	}
	return a
}

func draw(cfg config.Draw, results []report.Result, w io.Writer) error {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return errors.Wrap(err, "creating draw directory")
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		path := filepath.Join(cfg.Dir, filepath.Base(r.Name)+".png")
		if err := ringdraw.SavePNG(path, r.Ring, r.Cap, cfg.Scale); err != nil {
			return err
		}
		log.Debugf("wrote %s", path)
		if cfg.Imgcat {
			if err := ringdraw.Echo(path, w); err != nil {
				return err
			}
		}
	}
	return nil
}
