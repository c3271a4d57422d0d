// Package svgfixture loads polygon fixtures from a minimal subset of SVG:
// <svg><polygon points="x,y x,y ..."/></svg>, one element per fixture.
// It exists purely so tests and the benchmark harness can describe test
// polygons as small checked-in files instead of Go literals; it is an
// external collaborator to the core library, not part of it.
package svgfixture

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ajroetker/apexgo/poly"
)

type svgDocument struct {
	Polygons []svgPolygon `xml:"polygon"`
}

type svgPolygon struct {
	Points string `xml:"points,attr"`
	ID     string `xml:"id,attr"`
}

// Fixture is one named polygon loaded from an SVG document.
type Fixture struct {
	ID     string
	Points []poly.Point
}

// Load parses every <polygon> element that is a direct child of the
// document's root element and returns one Fixture per element, in
// document order. Polygons nested deeper (for example inside a <g>
// group) are not read.
func Load(r io.Reader) ([]Fixture, error) {
	var doc svgDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("svgfixture: decoding document: %w", err)
	}
	fixtures := make([]Fixture, len(doc.Polygons))
	for i, sp := range doc.Polygons {
		pts, err := parsePoints(sp.Points)
		if err != nil {
			return nil, fmt.Errorf("svgfixture: polygon %d (%q): %w", i, sp.ID, err)
		}
		fixtures[i] = Fixture{ID: sp.ID, Points: pts}
	}
	return fixtures, nil
}

// parsePoints parses the SVG "points" attribute format: whitespace- or
// comma-separated coordinate pairs, each pair itself comma-separated
// ("x1,y1 x2,y2 ..."). Decimal values are truncated toward zero to an
// integer lattice coordinate.
func parsePoints(raw string) ([]poly.Point, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("malformed points %q: odd number of coordinates", raw)
	}
	pts := make([]poly.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, y := fields[i], fields[i+1]
		xf, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing x %q: %w", x, err)
		}
		yf, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing y %q: %w", y, err)
		}
		pts = append(pts, poly.Point{X: poly.Coordinate(xf), Y: poly.Coordinate(yf)})
	}
	return pts, nil
}
