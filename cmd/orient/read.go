package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/orient/advanced"
	"github.com/osuushi/orient/internal/svgring"
	"github.com/pkg/errors"
)

// Read the rings from the file at path, or from stdin if the path is empty or
// "-".
func readInput(path string, svg bool, stdin io.Reader) ([]svgring.NamedRing, error) {
	in, source := stdin, "stdin"
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in, source = f, path
	}

	var rings []svgring.NamedRing
	var err error
	if svg {
		rings, err = svgring.Read(in)
	} else {
		rings, err = readRings(in)
	}
	return rings, errors.Wrapf(err, "reading %s", source)
}

// Input should be newline separated points in the form "x y", with each ring
// separated by an extra newline. Lines starting with "#" are ignored. Rings
// are closed if the last point doesn't repeat the first.
func readRings(in io.Reader) ([]svgring.NamedRing, error) {
	rings := []svgring.NamedRing{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	ring := advanced.Ring{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, svgring.NamedRing{Ring: ring.Closed()})
				ring = advanced.Ring{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, svgring.NamedRing{Ring: ring.Closed()})
	}
	return rings, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "invalid x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "invalid y")
	}
	return advanced.Point{X: x, Y: y}, nil
}
