package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jward/shapes"
	"github.com/jward/shapes/internal/runtime"
)

var flagScriptsDir string

var evalCmd = &cobra.Command{
	Use:   "eval SCRIPT",
	Short: "Run a Risor script against the shape API",
	Long: `Runs a Risor script with the shape API available as globals:

  PI, clamp(v, lo, hi), circle(r), rectangle(w, h), area(shape),
  total_area([shape, ...]), load_shapes(path), log.Info/Warn/Error(msg)

The value of the script's last expression is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&flagScriptsDir, "scripts-dir", "", "directory for imports and load_shapes paths (default: the script's directory)")
}

func runEval(cmd *cobra.Command, args []string) error {
	scriptPath, err := filepath.Abs(args[0])
	if err != nil {
		return outputError(cmd, "eval", fmt.Errorf("resolving path %q: %w", args[0], err))
	}

	scriptsDir := flagScriptsDir
	if scriptsDir == "" {
		scriptsDir = filepath.Dir(scriptPath)
	}

	rt := runtime.NewRuntime(scriptsDir, runtime.WithLogger(logger))
	ctx := context.Background()

	logger.Debug("running script", zap.String("path", scriptPath), zap.String("scripts_dir", scriptsDir))
	result, err := rt.RunScript(ctx, scriptPath, nil)
	if err != nil {
		return outputError(cmd, "eval", err)
	}

	return outputResult(cmd, CLIResult{Command: "eval", Results: evalValue(result)})
}

// evalValue maps a script result to its CLI form: shapes carry kind and
// dimensions instead of an empty object, and floats become Float so
// non-finite values still encode.
func evalValue(v any) any {
	switch r := v.(type) {
	case shapes.Shape:
		d, err := shapes.DescriptorOf(r)
		if err != nil {
			return fmt.Sprint(r)
		}
		return CLIShape{
			Kind:   d.Kind,
			Radius: Float(d.Radius),
			Width:  Float(d.Width),
			Height: Float(d.Height),
			Area:   Float(r.Area()),
		}
	case float64:
		return Float(r)
	case []any:
		out := make([]any, len(r))
		for i, item := range r {
			out[i] = evalValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(r))
		for k, item := range r {
			out[k] = evalValue(item)
		}
		return out
	default:
		return v
	}
}
