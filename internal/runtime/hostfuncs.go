package runtime

import (
	"context"
	"fmt"

	"github.com/risor-io/risor/object"
	"go.uber.org/zap"

	"github.com/jward/shapes"
	"github.com/jward/shapes/mathutil"
)

// makeClampFn creates the "clamp" host function.
//
// clamp(value, min, max) → float
func makeClampFn() *object.Builtin {
	return object.NewBuiltin("clamp", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 3 {
			return object.NewArgsError("clamp", 3, len(args))
		}
		vals, err := toFloats(args)
		if err != nil {
			return object.Errorf("clamp: %v", err)
		}
		return object.NewFloat(mathutil.Clamp(vals[0], vals[1], vals[2]))
	})
}

// makeCircleFn creates the "circle" host function.
//
// circle(radius) → shape
func makeCircleFn() *object.Builtin {
	return object.NewBuiltin("circle", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("circle", 1, len(args))
		}
		radius, err := toFloat(args[0])
		if err != nil {
			return object.Errorf("circle: radius: %v", err)
		}
		return proxyShape("circle", shapes.NewCircle(radius))
	})
}

// makeRectangleFn creates the "rectangle" host function. Negative
// dimensions are clamped to zero.
//
// rectangle(width, height) → shape
func makeRectangleFn() *object.Builtin {
	return object.NewBuiltin("rectangle", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("rectangle", 2, len(args))
		}
		vals, err := toFloats(args)
		if err != nil {
			return object.Errorf("rectangle: %v", err)
		}
		return proxyShape("rectangle", shapes.NewRectangle(vals[0], vals[1]))
	})
}

// makeAreaFn creates the "area" host function.
//
// area(shape) → float
func makeAreaFn() *object.Builtin {
	return object.NewBuiltin("area", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("area", 1, len(args))
		}
		s, err := toShape(args[0])
		if err != nil {
			return object.Errorf("area: %v", err)
		}
		return object.NewFloat(s.Area())
	})
}

// makeTotalAreaFn creates the "total_area" host function.
//
// total_area([shape, ...]) → float
func makeTotalAreaFn() *object.Builtin {
	return object.NewBuiltin("total_area", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("total_area", 1, len(args))
		}
		list, ok := args[0].(*object.List)
		if !ok {
			return object.Errorf("total_area: expected list, got %s", args[0].Type())
		}

		items := list.Value()
		in := make([]shapes.Shape, 0, len(items))
		for i, item := range items {
			s, err := toShape(item)
			if err != nil {
				return object.Errorf("total_area: element %d: %v", i, err)
			}
			in = append(in, s)
		}
		return object.NewFloat(shapes.TotalArea(in))
	})
}

// makeLoadShapesFn creates "load_shapes", which decodes a shape document
// from the same source scripts are loaded from.
//
// load_shapes(path) → [shape, ...]
func makeLoadShapesFn(r *Runtime) *object.Builtin {
	return object.NewBuiltin("load_shapes", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("load_shapes", 1, len(args))
		}
		pathStr, ok := args[0].(*object.String)
		if !ok {
			return object.Errorf("load_shapes: path must be a string, got %s", args[0].Type())
		}

		loaded, err := r.loadShapes(pathStr.Value())
		if err != nil {
			return object.Errorf("load_shapes: %v", err)
		}

		results := make([]object.Object, 0, len(loaded))
		for _, s := range loaded {
			p, err := object.NewProxy(shapePtr(s))
			if err != nil {
				return object.Errorf("load_shapes: proxy error: %v", err)
			}
			results = append(results, p)
		}
		return object.NewList(results)
	})
}

// proxyShape wraps a shape for the VM. Pointers are proxied so the VM
// sees the full method set.
func proxyShape(name string, s shapes.Shape) object.Object {
	p, err := object.NewProxy(shapePtr(s))
	if err != nil {
		return object.Errorf("%s: proxy error: %v", name, err)
	}
	return p
}

func shapePtr(s shapes.Shape) shapes.Shape {
	switch v := s.(type) {
	case shapes.Circle:
		return &v
	case shapes.Rectangle:
		return &v
	default:
		return s
	}
}

func toShape(obj object.Object) (shapes.Shape, error) {
	proxy, ok := obj.(*object.Proxy)
	if !ok {
		return nil, fmt.Errorf("expected shape, got %s", obj.Type())
	}
	s, ok := proxy.Interface().(shapes.Shape)
	if !ok {
		return nil, fmt.Errorf("expected shape, got %T", proxy.Interface())
	}
	return s, nil
}

func toFloat(obj object.Object) (float64, error) {
	switch v := obj.(type) {
	case *object.Float:
		return v.Value(), nil
	case *object.Int:
		return float64(v.Value()), nil
	}
	return 0, fmt.Errorf("expected number, got %s", obj.Type())
}

func toFloats(args []object.Object) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := toFloat(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// logObject provides log.Info/Warn/Error methods for Risor scripts.
type logObject struct {
	logger *zap.Logger
}

func (l *logObject) Info(msg string) {
	l.logger.Info(msg)
}

func (l *logObject) Warn(msg string) {
	l.logger.Warn(msg)
}

func (l *logObject) Error(msg string) {
	l.logger.Error(msg)
}
