package geometry

import "math"

// Facet represents one triangular face of a mesh: a normal vector plus
// three vertices in the order they appeared in the source. The normal is
// taken as given from the input and is not required to be unit length.
// The area is computed once at construction and never changes.
type Facet struct {
	Normal  Vector3
	A, B, C Vector3

	area float64
}

// NewFacet creates a facet and derives its area via Heron's formula.
func NewFacet(normal, a, b, c Vector3) Facet {
	f := Facet{
		Normal: normal,
		A:      a,
		B:      b,
		C:      c,
	}
	f.area = heronArea(a, b, c)
	return f
}

// heronArea computes the triangle area from the three side lengths.
// Floating-point error can push the radicand slightly negative for
// degenerate (collinear) vertices; it is clamped to zero so such
// triangles report area 0 rather than NaN.
func heronArea(a, b, c Vector3) float64 {
	ab := a.Distance(b)
	bc := b.Distance(c)
	ca := c.Distance(a)

	s := (ab + bc + ca) / 2
	radicand := s * (s - ab) * (s - bc) * (s - ca)
	if radicand < 0 {
		radicand = 0
	}
	return math.Sqrt(radicand)
}

// Area returns the facet's surface area
func (f Facet) Area() float64 {
	return f.area
}

// Vertices returns the three vertices in input order
func (f Facet) Vertices() [3]Vector3 {
	return [3]Vector3{f.A, f.B, f.C}
}

// EdgeLengths returns the lengths of all three edges
func (f Facet) EdgeLengths() [3]float64 {
	return [3]float64{
		f.A.Distance(f.B),
		f.B.Distance(f.C),
		f.C.Distance(f.A),
	}
}

// Perimeter returns the total length of all edges
func (f Facet) Perimeter() float64 {
	lengths := f.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the facet
func (f Facet) Center() Vector3 {
	return Vector3{
		X: (f.A.X + f.B.X + f.C.X) / 3.0,
		Y: (f.A.Y + f.B.Y + f.C.Y) / 3.0,
		Z: (f.A.Z + f.B.Z + f.C.Z) / 3.0,
	}
}
