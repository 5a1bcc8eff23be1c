package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/stlmeta/internal/logger"
	"github.com/philipparndt/stlmeta/pkg/analysis"
	"github.com/philipparndt/stlmeta/pkg/stl"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display summary geometry for an STL file",
	Long:  "Show facet count, total surface area, bounding-box corners, dimensions and volume.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoFormat, "format", "f", "", "Output format: text or yaml")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	start := time.Now()
	surface, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}
	logger.Log.Debug("parsed STL file",
		zap.String("file", filename),
		zap.Int("facets", surface.FacetCount()),
		zap.Duration("elapsed", time.Since(start)))

	report := analysis.Analyze(surface)

	format := infoFormat
	if format == "" {
		format = cfg.Output.Format
	}

	if format == "yaml" {
		out, err := yaml.Marshal(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
		return
	}

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if surface.Name != "" {
		fmt.Printf("Name: %s\n", surface.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Surface Statistics:")
	fmt.Printf("  Triangles: %d\n", report.FacetCount)
	fmt.Printf("  Edges: %d\n", report.Edges.Count)
	fmt.Printf("  Surface Area: %s square units\n\n", report.SurfaceArea)

	fmt.Println("Bounding Box (anchored at origin):")
	for _, corner := range surface.Bounds() {
		fmt.Printf("  %s\n", analysis.FormatVector(corner))
	}
	fmt.Println()

	dims := surface.Dims()
	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", dims.X)
	fmt.Printf("  Depth (Y): %.6f units\n", dims.Y)
	fmt.Printf("  Height (Z): %.6f units\n", dims.Z)
	fmt.Printf("  Volume: %.6f cubic units\n", report.BoundingBoxVolume)

	if report.FacetCount > 0 {
		fmt.Println()
		fmt.Println("Facet Areas:")
		fmt.Printf("  Minimum: %.6f square units\n", report.FacetAreas.Min)
		fmt.Printf("  Maximum: %.6f square units\n", report.FacetAreas.Max)
		fmt.Printf("  Average: %.6f square units\n", report.FacetAreas.Mean)
		fmt.Printf("  Std Dev: %.6f square units\n", report.FacetAreas.StdDev)

		fmt.Println()
		fmt.Println("Edge Lengths:")
		fmt.Printf("  Minimum: %.6f units\n", report.Edges.Min)
		fmt.Printf("  Maximum: %.6f units\n", report.Edges.Max)
		fmt.Printf("  Average: %.6f units\n", report.Edges.Mean)
	}
}
