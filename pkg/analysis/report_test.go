package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/stlmeta/pkg/geometry"
	"github.com/philipparndt/stlmeta/pkg/stl"
)

const twoTriangles = `solid test
facet normal 0 0 1
outer loop
  vertex 0 0 0
  vertex 1 0 0
  vertex 0 1 0
endloop
endfacet
facet normal 0 0 1
outer loop
  vertex 0 0 0
  vertex 2 0 0
  vertex 0 2 0
endloop
endfacet
endsolid test
`

func loadSurface(t *testing.T, source string) *stl.Surface {
	t.Helper()
	surface := stl.NewSurface()
	if err := surface.Load(strings.NewReader(source)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return surface
}

func TestAnalyze(t *testing.T) {
	surface := loadSurface(t, twoTriangles)
	report := Analyze(surface)

	if report.Name != "test" {
		t.Errorf("expected name 'test', got %q", report.Name)
	}
	if report.FacetCount != 2 {
		t.Fatalf("expected 2 facets, got %d", report.FacetCount)
	}
	if report.SurfaceArea != "2.500000" {
		t.Errorf("expected area \"2.500000\", got %q", report.SurfaceArea)
	}

	// Areas 0.5 and 2.0
	if math.Abs(report.FacetAreas.Min-0.5) > 1e-10 {
		t.Errorf("expected min area 0.5, got %v", report.FacetAreas.Min)
	}
	if math.Abs(report.FacetAreas.Max-2.0) > 1e-10 {
		t.Errorf("expected max area 2.0, got %v", report.FacetAreas.Max)
	}
	if math.Abs(report.FacetAreas.Mean-1.25) > 1e-10 {
		t.Errorf("expected mean area 1.25, got %v", report.FacetAreas.Mean)
	}
	// Sample standard deviation of {0.5, 2.0}
	expectedStdDev := 1.5 / math.Sqrt2
	if math.Abs(report.FacetAreas.StdDev-expectedStdDev) > 1e-10 {
		t.Errorf("expected std dev %v, got %v", expectedStdDev, report.FacetAreas.StdDev)
	}

	if report.Edges.Count != 6 {
		t.Errorf("expected 6 edges, got %d", report.Edges.Count)
	}
	if math.Abs(report.Edges.Min-1.0) > 1e-10 {
		t.Errorf("expected min edge 1.0, got %v", report.Edges.Min)
	}
	if math.Abs(report.Edges.Max-2*math.Sqrt2) > 1e-10 {
		t.Errorf("expected max edge 2*sqrt(2), got %v", report.Edges.Max)
	}
}

func TestAnalyzeEmptySurface(t *testing.T) {
	report := Analyze(stl.NewSurface())

	if report.FacetCount != 0 {
		t.Errorf("expected 0 facets, got %d", report.FacetCount)
	}
	if report.SurfaceArea != "0.000000" {
		t.Errorf("expected area \"0.000000\", got %q", report.SurfaceArea)
	}
	if report.Edges.Count != 0 {
		t.Errorf("expected 0 edges, got %d", report.Edges.Count)
	}
}

func TestAnalyzeDoesNotMutate(t *testing.T) {
	surface := loadSurface(t, twoTriangles)

	before := surface.Area()
	Analyze(surface)
	Analyze(surface)
	after := surface.Area()

	if before != after {
		t.Errorf("surface mutated by Analyze: %q then %q", before, after)
	}
}

func TestCrossProductArea(t *testing.T) {
	area := CrossProductArea(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 4, 0),
	)
	if math.Abs(area-6.0) > 1e-10 {
		t.Errorf("expected area 6.0, got %v", area)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, 2.5, -3))
	want := "(1.000000, 2.500000, -3.000000)"
	if got != want {
		t.Errorf("FormatVector failed: expected %q, got %q", want, got)
	}
}
