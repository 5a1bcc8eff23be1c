package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/stlmeta/pkg/geometry"
	"github.com/philipparndt/stlmeta/pkg/stl"
)

// Report contains the derived measurements of a loaded surface.
// It is a pure read-only snapshot; building it does not mutate the
// surface.
type Report struct {
	Name              string        `yaml:"name,omitempty"`
	FacetCount        int           `yaml:"facet_count"`
	SurfaceArea       string        `yaml:"surface_area"`
	Dimensions        [3]float64    `yaml:"dimensions"`
	BoundingBoxVolume float64       `yaml:"bounding_box_volume"`
	Bounds            [8][3]float64 `yaml:"bounds"`

	FacetAreas FacetAreaStats `yaml:"facet_areas"`
	Edges      EdgeStats      `yaml:"edges"`
}

// FacetAreaStats summarizes the per-facet area distribution
type FacetAreaStats struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// EdgeStats summarizes the edge lengths across all facets
type EdgeStats struct {
	Count int     `yaml:"count"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Mean  float64 `yaml:"mean"`
}

// Analyze derives a full report from a loaded surface
func Analyze(surface *stl.Surface) *Report {
	report := &Report{
		Name:              surface.Name,
		FacetCount:        surface.FacetCount(),
		SurfaceArea:       surface.Area(),
		BoundingBoxVolume: surface.BoundingBoxVolume(),
	}

	dims := surface.Dims()
	report.Dimensions = [3]float64{dims.X, dims.Y, dims.Z}
	for i, corner := range surface.Bounds() {
		report.Bounds[i] = [3]float64{corner.X, corner.Y, corner.Z}
	}

	facets := surface.Facets()
	if len(facets) == 0 {
		return report
	}

	areas := make([]float64, 0, len(facets))
	minArea := math.MaxFloat64
	maxArea := 0.0

	edgeCount := 0
	minEdge := math.MaxFloat64
	maxEdge := 0.0
	totalEdge := 0.0

	for _, facet := range facets {
		area := facet.Area()
		areas = append(areas, area)
		if area < minArea {
			minArea = area
		}
		if area > maxArea {
			maxArea = area
		}

		for _, length := range facet.EdgeLengths() {
			edgeCount++
			totalEdge += length
			if length < minEdge {
				minEdge = length
			}
			if length > maxEdge {
				maxEdge = length
			}
		}
	}

	report.FacetAreas = FacetAreaStats{
		Min:  minArea,
		Max:  maxArea,
		Mean: stat.Mean(areas, nil),
	}
	if len(areas) > 1 {
		report.FacetAreas.StdDev = stat.StdDev(areas, nil)
	}
	report.Edges = EdgeStats{
		Count: edgeCount,
		Min:   minEdge,
		Max:   maxEdge,
		Mean:  totalEdge / float64(edgeCount),
	}

	return report
}

// CrossProductArea computes a triangle's area from the cross product of
// two edges. It is an independent check against the Heron-derived area
// a facet carries.
func CrossProductArea(a, b, c geometry.Vector3) float64 {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	return edge1.Cross(edge2).Length() / 2.0
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
