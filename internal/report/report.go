// Package report formats the orientation of a batch of rings for people
// (coloured text), machines (YAML) or debugging (a full dump of each cap).
package report

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/orient/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text  Format = "text"
	YAML  Format = "yaml"
	Debug Format = "debug"
)

var Formats = []string{string(Text), string(YAML), string(Debug)}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, YAML, Debug:
		return f, nil
	}
	return "", errors.Errorf("unknown format %q", s)
}

// The outcome for a single ring. Err is set when the ring has no
// orientation at all (too few points); Cap is only meaningful otherwise.
type Result struct {
	Name string
	Ring advanced.Ring
	Cap  advanced.Cap
	Err  error
}

func (r Result) IsCCW() bool {
	return r.Err == nil && r.Cap.IsCCW()
}

// Flat rings and degenerate caps report "not CCW", but that's a convention
// rather than an answer. Reports call them out separately.
func (r Result) Undetermined() bool {
	return r.Err == nil && (r.Cap.Shape == advanced.CapFlat || r.Cap.Shape == advanced.CapDegenerate)
}

func (r Result) Winding() string {
	switch {
	case r.Err != nil:
		return "error"
	case r.IsCCW():
		return "ccw"
	}
	return "cw"
}

func Write(w io.Writer, format Format, color bool, results []Result) error {
	switch format {
	case Text:
		return writeText(w, aurora.NewAurora(color), results)
	case YAML:
		return writeYAML(w, results)
	case Debug:
		return writeDebug(w, results)
	}
	return errors.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, au aurora.Aurora, results []Result) error {
	for _, r := range results {
		var line string
		switch {
		case r.Err != nil:
			line = fmt.Sprintf("%s: %s", r.Name, au.Red(r.Err.Error()))
		case r.IsCCW():
			line = fmt.Sprintf("%s: %s (%s cap at %v)", r.Name, au.Green("ccw"), r.Cap.Shape, r.Cap.UpHi)
		case r.Undetermined():
			line = fmt.Sprintf("%s: %s (%s)", r.Name, au.Magenta("cw"), r.Cap.Shape)
		default:
			line = fmt.Sprintf("%s: %s (%s cap at %v)", r.Name, au.Yellow("cw"), r.Cap.Shape, r.Cap.UpHi)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}

type yamlPoint [2]float64

type yamlLandmarks struct {
	UpLow   *yamlPoint `yaml:"up_low,flow,omitempty"`
	UpHi    yamlPoint  `yaml:"up_hi,flow"`
	DownHi  yamlPoint  `yaml:"down_hi,flow"`
	DownLow yamlPoint  `yaml:"down_low,flow"`
}

type yamlResult struct {
	Name         string         `yaml:"name"`
	Winding      string         `yaml:"winding"`
	Undetermined bool           `yaml:"undetermined,omitempty"`
	Vertices     int            `yaml:"vertices"`
	Cap          string         `yaml:"cap,omitempty"`
	Orientation  string         `yaml:"orientation,omitempty"`
	Landmarks    *yamlLandmarks `yaml:"landmarks,omitempty"`
	Error        string         `yaml:"error,omitempty"`
}

func toYAMLPoint(p advanced.Point) yamlPoint {
	return yamlPoint{p.X, p.Y}
}

func writeYAML(w io.Writer, results []Result) error {
	docs := make([]yamlResult, 0, len(results))
	for _, r := range results {
		doc := yamlResult{
			Name:     r.Name,
			Winding:  r.Winding(),
			Vertices: r.Ring.Distinct(),
		}
		if r.Err != nil {
			doc.Error = r.Err.Error()
		} else {
			doc.Undetermined = r.Undetermined()
			doc.Cap = r.Cap.Shape.String()
			if r.Cap.Shape == advanced.CapPointed {
				doc.Orientation = r.Cap.Orientation.String()
			}
			landmarks := &yamlLandmarks{
				UpHi:    toYAMLPoint(r.Cap.UpHi),
				DownHi:  toYAMLPoint(r.Cap.DownHi),
				DownLow: toYAMLPoint(r.Cap.DownLow),
			}
			if !r.Cap.UpLow.IsNull() {
				upLow := toYAMLPoint(r.Cap.UpLow)
				landmarks.UpLow = &upLow
			}
			doc.Landmarks = landmarks
		}
		docs = append(docs, doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(enc.Close(), "encoding yaml")
}

func writeDebug(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			// %+v includes the stack trace
			_, err = fmt.Fprintf(w, "%s: %+v\n", r.Name, r.Err)
		} else {
			_, err = pretty.Fprintf(w, "%s: %# v\n", r.Name, r.Cap)
		}
		if err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}
