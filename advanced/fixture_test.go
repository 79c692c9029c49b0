package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs rings. This is not a full (or
// even correct) svg parser. It finds whatever the first polygon is and converts
// its points into a closed Ring, keeping the order they were written in. If
// anything goes wrong, it bails.
//
// Fixtures are available by name in the testdata/ directory, sans extension.

//go:embed testdata
var fixtures embed.FS

var fixtureNames = []string{
	"c_shape",
	"chevron",
	"comb",
	"repeated_apex",
	"spiral",
	"top_first",
}

func LoadFixture(name string) Ring {
	fixture, err := fixtures.Open("testdata/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var ring Ring
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		ring = append(ring, Point{x, y})
	}
	return ring.Closed()
}

// Shoelace formula. Only used as an independent check on ring orientation for
// well behaved test rings; this package doesn't compute areas.
func signedArea(ring Ring) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return sum / 2
}

func reflectX(ring Ring) Ring {
	result := make(Ring, len(ring))
	for i, p := range ring {
		result[i] = Point{-p.X, p.Y}
	}
	return result
}

func reflectY(ring Ring) Ring {
	result := make(Ring, len(ring))
	for i, p := range ring {
		result[i] = Point{p.X, -p.Y}
	}
	return result
}

// Start the ring at a different vertex. The closing point moves along with it.
func rotateRing(ring Ring, offset int) Ring {
	n := len(ring) - 1
	result := make(Ring, 0, len(ring))
	for i := 0; i < n; i++ {
		result = append(result, ring[CircularIndex(i+offset, n)])
	}
	return append(result, result[0])
}

// Ad hoc fixtures

func SimpleStar() Ring {
	var ring Ring
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		ring = append(ring, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return ring.Closed()
}

func UnitSquare() Ring {
	return Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
}
