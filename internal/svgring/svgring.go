// Package svgring reads rings out of the <polygon> elements of an SVG
// document.
//
// This is not a full (or even correct) SVG reader. Transforms, viewBox and
// units are ignored, and coordinates are taken at face value. Note that SVG's
// Y axis points down, so a ring that looks counterclockwise on screen is
// clockwise in these coordinates.
package svgring

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/orient/advanced"
	"github.com/pkg/errors"
)

type NamedRing struct {
	// The polygon's id attribute, if any
	Name string
	Ring advanced.Ring
}

// Read every polygon in the document, in document order. Rings are closed if
// the polygon doesn't repeat its first point.
func Read(r io.Reader) ([]NamedRing, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var result []NamedRing
	for i, polygonEl := range rootEl.FindAll("polygon") {
		ring, err := ParsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		result = append(result, NamedRing{
			Name: polygonEl.Attributes["id"],
			Ring: ring.Closed(),
		})
	}
	return result, nil
}

// Parse an SVG points attribute. Coordinates may be separated by commas,
// whitespace, or both, so "0,0 1,0" and "0 0, 1 0" are the same.
func ParsePoints(attribute string) (advanced.Ring, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	ring := make(advanced.Ring, 0, len(fields)/2+1)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		ring = append(ring, advanced.Point{X: x, Y: y})
	}
	return ring, nil
}
