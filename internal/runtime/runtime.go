package runtime

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/importer"
	"github.com/risor-io/risor/object"
	"go.uber.org/zap"

	"github.com/jward/shapes"
	"github.com/jward/shapes/mathutil"
)

// Runtime embeds a Risor VM and exposes the shape API to scripts as
// host functions.
type Runtime struct {
	scriptsDir string
	fsys       fs.FS
	logger     *zap.Logger
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithRuntimeFS configures the Runtime to load scripts from an fs.FS
// instead of from disk. Also configures the Risor importer to use
// FSImporter for import statement resolution.
func WithRuntimeFS(fsys fs.FS) RuntimeOption {
	return func(r *Runtime) {
		r.fsys = fsys
	}
}

// WithLogger routes the script-visible log object to logger.
func WithLogger(logger *zap.Logger) RuntimeOption {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRuntime creates a Runtime that resolves scripts and imports against
// scriptsDir. An empty scriptsDir disables the disk importer.
func NewRuntime(scriptsDir string, opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		scriptsDir: scriptsDir,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunScript loads and executes a Risor script with all standard globals
// plus any extra globals provided by the caller. It returns the value of
// the script's last expression converted to Go.
func (r *Runtime) RunScript(ctx context.Context, scriptPath string, extraGlobals map[string]any) (any, error) {
	src, err := r.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}
	return r.eval(ctx, src, scriptPath, extraGlobals)
}

// RunSource executes Risor source code directly with all standard globals
// plus any extra globals.
func (r *Runtime) RunSource(ctx context.Context, source string, extraGlobals map[string]any) (any, error) {
	return r.eval(ctx, source, "<inline>", extraGlobals)
}

func (r *Runtime) eval(ctx context.Context, source, label string, extraGlobals map[string]any) (any, error) {
	globals := r.buildGlobals(label, extraGlobals)

	var opts []risor.Option
	for name, val := range globals {
		opts = append(opts, risor.WithGlobal(name, val))
	}

	// Wire importer so Risor import statements resolve correctly.
	if imp := r.buildImporter(globals); imp != nil {
		opts = append(opts, risor.WithImporter(imp))
	}

	r.logger.Debug("evaluating script", zap.String("script", label))
	result, err := risor.Eval(ctx, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("runtime: script %s: %w", label, err)
	}
	return toGo(result), nil
}

// toGo unwraps a Risor result. Proxied shapes come back as the Go values
// they wrap; lists and maps are converted element by element.
func toGo(obj object.Object) any {
	switch v := obj.(type) {
	case nil:
		return nil
	case *object.NilType:
		return nil
	case *object.Proxy:
		return v.Interface()
	case *object.List:
		items := v.Value()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = toGo(item)
		}
		return out
	case *object.Map:
		out := make(map[string]any, len(v.Value()))
		for k, item := range v.Value() {
			out[k] = toGo(item)
		}
		return out
	default:
		return obj.Interface()
	}
}

// buildImporter returns a Risor importer configured for the Runtime's script source.
// Returns nil if neither fs.FS nor scriptsDir is configured.
func (r *Runtime) buildImporter(globals map[string]any) importer.Importer {
	globalNames := make([]string, 0, len(globals))
	for name := range globals {
		globalNames = append(globalNames, name)
	}

	if r.fsys != nil {
		return importer.NewFSImporter(importer.FSImporterOptions{
			GlobalNames: globalNames,
			SourceFS:    r.fsys,
			Extensions:  []string{".risor"},
		})
	}
	if r.scriptsDir != "" {
		return importer.NewLocalImporter(importer.LocalImporterOptions{
			GlobalNames: globalNames,
			SourceDir:   r.scriptsDir,
			Extensions:  []string{".risor"},
		})
	}
	return nil
}

// LoadScript reads a .risor file and returns its source code.
// When an fs.FS is configured, uses fs.ReadFile on the embedded filesystem.
// Otherwise, uses os.ReadFile with scriptsDir as the base directory.
func (r *Runtime) LoadScript(path string) (string, error) {
	if r.fsys != nil {
		// fs.FS paths are always relative ("/total.risor" -> "total.risor").
		fsPath := strings.TrimPrefix(filepath.ToSlash(path), "/")
		data, err := fs.ReadFile(r.fsys, fsPath)
		if err != nil {
			return "", fmt.Errorf("runtime: loading script %s from fs: %w", fsPath, err)
		}
		return string(data), nil
	}

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(r.scriptsDir, path)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("runtime: loading script %s: %w", fullPath, err)
	}
	return string(data), nil
}

// loadShapes decodes a shape document. With an fs.FS configured the path
// is read from it; otherwise relative paths resolve against scriptsDir, or
// the working directory when scriptsDir is empty.
func (r *Runtime) loadShapes(path string) ([]shapes.Shape, error) {
	if r.fsys != nil {
		fsPath := strings.TrimPrefix(filepath.ToSlash(path), "/")
		f, err := r.fsys.Open(fsPath)
		if err != nil {
			return nil, fmt.Errorf("runtime: opening %s from fs: %w", fsPath, err)
		}
		defer f.Close()

		out, err := shapes.DecodeShapes(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fsPath, err)
		}
		return out, nil
	}

	if !filepath.IsAbs(path) && r.scriptsDir != "" {
		path = filepath.Join(r.scriptsDir, path)
	}
	return shapes.LoadShapes(path)
}

// buildGlobals constructs the full set of globals exposed to Risor scripts.
// Log entries written by the script carry its label in the "script" field.
func (r *Runtime) buildGlobals(label string, extra map[string]any) map[string]any {
	globals := map[string]any{
		"PI":          object.NewFloat(mathutil.Pi),
		"clamp":       makeClampFn(),
		"circle":      makeCircleFn(),
		"rectangle":   makeRectangleFn(),
		"area":        makeAreaFn(),
		"total_area":  makeTotalAreaFn(),
		"load_shapes": makeLoadShapesFn(r),
		"log":         mustProxy(&logObject{logger: r.logger.With(zap.String("script", label))}),
	}

	for k, v := range extra {
		globals[k] = v
	}
	return globals
}

func mustProxy(v any) object.Object {
	p, err := object.NewProxy(v)
	if err != nil {
		panic(fmt.Sprintf("runtime: proxy error: %v", err))
	}
	return p
}
