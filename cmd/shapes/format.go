package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// outputResult writes result to the command's stdout in the selected format.
func outputResult(cmd *cobra.Command, result CLIResult) error {
	w := cmd.OutOrStdout()
	if flagFormat == "text" {
		return outputResultText(w, result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(cmd *cobra.Command, command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case CLIAreaReport:
		formatReportText(w, v)
	case CLIShape:
		formatShapesText(w, []CLIShape{v})
	case []any:
		for _, item := range v {
			if err := outputResultText(w, CLIResult{Command: result.Command, Results: item}); err != nil {
				return err
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s: %v\n", k, v[k])
		}
	case Float:
		fmt.Fprintf(w, "%g\n", float64(v))
	case nil:
		// No output for scripts that end in a statement.
	default:
		fmt.Fprintf(w, "%v\n", v)
	}
	return nil
}

// formatShapesText formats CLIShape results as aligned columns.
func formatShapesText(w io.Writer, list []CLIShape) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tDIMENSIONS\tAREA")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%g\n", s.Kind, dimensions(s), s.Area)
	}
	tw.Flush()
}

// formatReportText formats a CLIAreaReport as a table plus a total line.
func formatReportText(w io.Writer, report CLIAreaReport) {
	formatShapesText(w, report.Shapes)
	fmt.Fprintf(w, "\nTotal area: %g\n", report.TotalArea)
}

func dimensions(s CLIShape) string {
	switch s.Kind {
	case "circle":
		return fmt.Sprintf("r=%g", s.Radius)
	case "rectangle":
		return fmt.Sprintf("%gx%g", s.Width, s.Height)
	}
	return "-"
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
