package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jward/shapes"
)

var areaCmd = &cobra.Command{
	Use:   "area SHAPE...",
	Short: "Compute the area of shapes given on the command line",
	Long: `Each SHAPE is one of:

  circle:R         circle with radius R
  rect:WxH         rectangle of width W and height H (alias: rectangle:WxH)

Negative rectangle dimensions are clamped to zero.`,
	Example: "  shapes area circle:1 rect:2x3",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runArea,
}

var loadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Compute the area of shapes in a YAML or JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runArea(cmd *cobra.Command, args []string) error {
	in := make([]shapes.Shape, 0, len(args))
	for _, arg := range args {
		s, err := parseShapeArg(arg)
		if err != nil {
			return outputError(cmd, "area", err)
		}
		in = append(in, s)
	}
	logger.Debug("parsed shapes", zap.Int("count", len(in)))

	report, err := buildReport(in)
	if err != nil {
		return outputError(cmd, "area", err)
	}
	return outputResult(cmd, CLIResult{Command: "area", Results: report})
}

func runLoad(cmd *cobra.Command, args []string) error {
	in, err := shapes.LoadShapes(args[0])
	if err != nil {
		return outputError(cmd, "load", err)
	}
	logger.Debug("loaded shapes", zap.String("path", args[0]), zap.Int("count", len(in)))

	report, err := buildReport(in)
	if err != nil {
		return outputError(cmd, "load", err)
	}
	return outputResult(cmd, CLIResult{Command: "load", Results: report})
}

// parseShapeArg parses "circle:R" or "rect:WxH" into a shape.
func parseShapeArg(arg string) (shapes.Shape, error) {
	kind, dims, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("shape %q: expected KIND:DIMENSIONS", arg)
	}

	d := shapes.Descriptor{Kind: kind}
	switch strings.ToLower(kind) {
	case "circle":
		r, err := parseDimension(dims)
		if err != nil {
			return nil, fmt.Errorf("shape %q: radius: %w", arg, err)
		}
		d.Radius = r
	case "rect", "rectangle":
		ws, hs, ok := strings.Cut(strings.ToLower(dims), "x")
		if !ok {
			return nil, fmt.Errorf("shape %q: expected WIDTHxHEIGHT", arg)
		}
		w, err := parseDimension(ws)
		if err != nil {
			return nil, fmt.Errorf("shape %q: width: %w", arg, err)
		}
		h, err := parseDimension(hs)
		if err != nil {
			return nil, fmt.Errorf("shape %q: height: %w", arg, err)
		}
		d.Width, d.Height = w, h
	}

	s, err := d.Shape()
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", arg, err)
	}
	return s, nil
}

func parseDimension(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// buildReport converts shapes into the CLI report, keeping input order.
func buildReport(in []shapes.Shape) (CLIAreaReport, error) {
	report := CLIAreaReport{Shapes: make([]CLIShape, 0, len(in))}
	for _, s := range in {
		d, err := shapes.DescriptorOf(s)
		if err != nil {
			return CLIAreaReport{}, err
		}
		report.Shapes = append(report.Shapes, CLIShape{
			Kind:   d.Kind,
			Radius: Float(d.Radius),
			Width:  Float(d.Width),
			Height: Float(d.Height),
			Area:   Float(s.Area()),
		})
	}
	report.TotalArea = Float(shapes.TotalArea(in))
	return report, nil
}
