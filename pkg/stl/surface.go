package stl

import (
	"fmt"

	"github.com/philipparndt/stlmeta/pkg/geometry"
)

// Surface represents a complete mesh: the ordered collection of all
// facets plus the aggregates derived while loading. A Surface is built
// up facet-by-facet during Load and is read-only afterwards.
type Surface struct {
	// Name is taken from the "solid" header line. A later "solid" line
	// overwrites it (last write wins).
	Name string

	area        float64
	facets      []geometry.Facet
	vertexIndex map[geometry.Vector3][]geometry.Facet

	// Extents are seeded at zero, not at the first observed vertex, and
	// are updated from each facet's first vertex only. Dims and
	// BoundingBoxVolume inherit both quirks.
	minX, maxX float64
	minY, maxY float64
	minZ, maxZ float64
}

// NewSurface creates an empty surface
func NewSurface() *Surface {
	return &Surface{
		facets:      make([]geometry.Facet, 0),
		vertexIndex: make(map[geometry.Vector3][]geometry.Facet),
	}
}

// addFacet ingests one completed facet: accumulates its area, extends
// the extents from vertex A, appends it to the facet sequence and
// indexes it under each of its three vertices.
func (s *Surface) addFacet(f geometry.Facet) {
	s.area += f.Area()

	a := f.A
	if a.X < s.minX {
		s.minX = a.X
	}
	if a.X > s.maxX {
		s.maxX = a.X
	}
	if a.Y < s.minY {
		s.minY = a.Y
	}
	if a.Y > s.maxY {
		s.maxY = a.Y
	}
	if a.Z < s.minZ {
		s.minZ = a.Z
	}
	if a.Z > s.maxZ {
		s.maxZ = a.Z
	}

	s.facets = append(s.facets, f)
	for _, v := range f.Vertices() {
		s.vertexIndex[v] = append(s.vertexIndex[v], f)
	}
}

// Facets returns all facets in parse order
func (s *Surface) Facets() []geometry.Facet {
	return s.facets
}

// FacetCount returns the number of facets loaded
func (s *Surface) FacetCount() int {
	return len(s.facets)
}

// Area returns the total surface area formatted to six decimal places
func (s *Surface) Area() string {
	return fmt.Sprintf("%.6f", s.area)
}

// FindFacets returns the facets whose vertex list contains the given
// point, in parse order. Lookup is by exact coordinate value; a vertex
// that was never seen yields an empty slice.
func (s *Surface) FindFacets(v geometry.Vector3) []geometry.Facet {
	return s.vertexIndex[v]
}

// Dims returns the max-min spread of the extents per axis
func (s *Surface) Dims() geometry.Vector3 {
	return geometry.Vector3{
		X: s.maxX - s.minX,
		Y: s.maxY - s.minY,
		Z: s.maxZ - s.minZ,
	}
}

// Bounds returns the eight corner points of the bounding box. The box is
// re-anchored at the origin: one corner sits at (0,0,0) and the opposite
// corner at Dims(), discarding the minimum extents as an offset.
func (s *Surface) Bounds() [8]geometry.Vector3 {
	d := s.Dims()
	return [8]geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: d.Z},
		{X: 0, Y: d.Y, Z: 0},
		{X: 0, Y: d.Y, Z: d.Z},
		{X: d.X, Y: 0, Z: 0},
		{X: d.X, Y: 0, Z: d.Z},
		{X: d.X, Y: d.Y, Z: 0},
		{X: d.X, Y: d.Y, Z: d.Z},
	}
}

// BoundingBoxVolume returns the volume of the bounding box
func (s *Surface) BoundingBoxVolume() float64 {
	d := s.Dims()
	return d.X * d.Y * d.Z
}
