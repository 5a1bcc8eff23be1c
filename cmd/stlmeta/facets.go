package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/stlmeta/pkg/analysis"
	"github.com/philipparndt/stlmeta/pkg/geometry"
	"github.com/philipparndt/stlmeta/pkg/stl"
)

var (
	facetCount    int
	facetLargest  bool
	facetSmallest bool
)

type facetInfo struct {
	Index int
	Facet geometry.Facet
}

var facetsCmd = &cobra.Command{
	Use:   "facets [file]",
	Short: "List facets in an STL file",
	Long:  "Display per-facet information including area, perimeter and vertex positions.",
	Args:  cobra.ExactArgs(1),
	Run:   runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)

	facetsCmd.Flags().IntVarP(&facetCount, "count", "n", 10, "Number of facets to display")
	facetsCmd.Flags().BoolVarP(&facetLargest, "largest", "l", false, "Show largest facets by area")
	facetsCmd.Flags().BoolVarP(&facetSmallest, "smallest", "s", false, "Show smallest facets by area")
}

func runFacets(cmd *cobra.Command, args []string) {
	filename := args[0]

	surface, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	facets := make([]facetInfo, 0, surface.FacetCount())
	for i, f := range surface.Facets() {
		facets = append(facets, facetInfo{Index: i, Facet: f})
	}

	var title string
	switch {
	case facetLargest:
		sort.Slice(facets, func(i, j int) bool {
			return facets[i].Facet.Area() > facets[j].Facet.Area()
		})
		title = fmt.Sprintf("Top %d Largest Facets", facetCount)
	case facetSmallest:
		sort.Slice(facets, func(i, j int) bool {
			return facets[i].Facet.Area() < facets[j].Facet.Area()
		})
		title = fmt.Sprintf("Top %d Smallest Facets", facetCount)
	default:
		title = fmt.Sprintf("First %d Facets", facetCount)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total facets: %d\n", surface.FacetCount())
	fmt.Printf("Total surface area: %s square units\n\n", surface.Area())

	if facetCount > len(facets) {
		facetCount = len(facets)
	}

	for i := 0; i < facetCount; i++ {
		info := facets[i]
		fmt.Printf("Facet #%d:\n", info.Index)
		fmt.Printf("  Area: %.6f square units\n", info.Facet.Area())
		fmt.Printf("  Perimeter: %.6f units\n", info.Facet.Perimeter())
		fmt.Printf("  Vertices: %s, %s, %s\n\n",
			analysis.FormatVector(info.Facet.A),
			analysis.FormatVector(info.Facet.B),
			analysis.FormatVector(info.Facet.C))
	}
}
