package stl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/stlmeta/pkg/geometry"
)

// lineKind identifies what a source line contributes to the parse.
type lineKind int

const (
	lineIgnored lineKind = iota // outer, endloop, endsolid, blanks, unknown tokens
	lineSolid
	lineFacetStart
	lineVertex
	lineFacetEnd
)

// line is one tokenized source line. Only the field matching its kind
// is meaningful.
type line struct {
	kind   lineKind
	name   string
	normal geometry.Vector3
	vertex geometry.Vector3
}

// parseLine tokenizes a single line of ASCII STL. The first
// whitespace-delimited word selects the kind (case-sensitive); the rest
// are its arguments. Unrecognized keywords are ignored rather than
// rejected.
func parseLine(text string) (line, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return line{kind: lineIgnored}, nil
	}

	switch fields[0] {
	case "solid":
		return line{kind: lineSolid, name: strings.Join(fields[1:], " ")}, nil

	case "facet":
		// "facet normal nx ny nz" — the literal "normal" keyword is
		// skipped, the trailing three arguments are the vector.
		if len(fields) < 5 {
			return line{}, fmt.Errorf("facet: expected normal with 3 components, got %d fields", len(fields)-1)
		}
		normal, err := parseTriple(fields[2], fields[3], fields[4])
		if err != nil {
			return line{}, fmt.Errorf("facet normal: %w", err)
		}
		return line{kind: lineFacetStart, normal: normal}, nil

	case "vertex":
		if len(fields) < 4 {
			return line{}, fmt.Errorf("vertex: expected 3 coordinates, got %d", len(fields)-1)
		}
		vertex, err := parseTriple(fields[1], fields[2], fields[3])
		if err != nil {
			return line{}, fmt.Errorf("vertex: %w", err)
		}
		return line{kind: lineVertex, vertex: vertex}, nil

	case "endfacet":
		return line{kind: lineFacetEnd}, nil
	}

	return line{kind: lineIgnored}, nil
}

// parseTriple converts three decimal literals into a vector
func parseTriple(xs, ys, zs string) (geometry.Vector3, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geometry.Vector3{}, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geometry.Vector3{}, err
	}
	z, err := strconv.ParseFloat(zs, 64)
	if err != nil {
		return geometry.Vector3{}, err
	}
	return geometry.NewVector3(x, y, z), nil
}

// Load consumes the reader in a single forward pass and populates the
// surface facet-by-facet. A pending facet accumulates a normal and
// vertices until the matching endfacet, at which point it is constructed
// and ingested. Malformed lines terminate the load immediately; there is
// no skip-and-continue. A facet still pending at end of input is
// silently dropped.
func (s *Surface) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	var normal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		ln, err := parseLine(scanner.Text())
		if err != nil {
			return err
		}

		switch ln.kind {
		case lineSolid:
			s.Name = ln.name

		case lineFacetStart:
			normal = ln.normal
			vertices = vertices[:0]

		case lineVertex:
			vertices = append(vertices, ln.vertex)

		case lineFacetEnd:
			if len(vertices) != 3 {
				return fmt.Errorf("endfacet: facet has %d vertices, want 3", len(vertices))
			}
			s.addFacet(geometry.NewFacet(normal, vertices[0], vertices[1], vertices[2]))
			normal = geometry.Vector3{}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return nil
}

// LoadFile opens the named file and loads it into the surface
func (s *Surface) LoadFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return s.Load(file)
}

// Parse is a convenience wrapper that loads a file into a new Surface
func Parse(filename string) (*Surface, error) {
	surface := NewSurface()
	if err := surface.LoadFile(filename); err != nil {
		return nil, err
	}
	return surface, nil
}
