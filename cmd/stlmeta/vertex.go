package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/stlmeta/pkg/analysis"
	"github.com/philipparndt/stlmeta/pkg/geometry"
	"github.com/philipparndt/stlmeta/pkg/stl"
)

var vertexX, vertexY, vertexZ float64

var vertexCmd = &cobra.Command{
	Use:   "vertex [file]",
	Short: "List the facets touching a vertex",
	Long: `Look up the facets whose vertex list contains the given point.
The lookup is by exact coordinate value; there is no tolerance matching.`,
	Args: cobra.ExactArgs(1),
	Run:  runVertex,
}

func init() {
	rootCmd.AddCommand(vertexCmd)

	vertexCmd.Flags().Float64Var(&vertexX, "x", 0.0, "X coordinate of the vertex")
	vertexCmd.Flags().Float64Var(&vertexY, "y", 0.0, "Y coordinate of the vertex")
	vertexCmd.Flags().Float64Var(&vertexZ, "z", 0.0, "Z coordinate of the vertex")

	vertexCmd.MarkFlagsRequiredTogether("x", "y", "z")
}

func runVertex(cmd *cobra.Command, args []string) {
	filename := args[0]

	surface, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	point := geometry.NewVector3(vertexX, vertexY, vertexZ)
	facets := surface.FindFacets(point)

	fmt.Println("Vertex Adjacency")
	fmt.Println("================")
	fmt.Printf("Vertex: %s\n", analysis.FormatVector(point))
	fmt.Printf("Facets: %d\n\n", len(facets))

	for i, f := range facets {
		fmt.Printf("Facet #%d:\n", i)
		fmt.Printf("  Normal: %s\n", analysis.FormatVector(f.Normal))
		fmt.Printf("  Area: %.6f square units\n", f.Area())
		fmt.Printf("  Vertices: %s, %s, %s\n\n",
			analysis.FormatVector(f.A),
			analysis.FormatVector(f.B),
			analysis.FormatVector(f.C))
	}
}
