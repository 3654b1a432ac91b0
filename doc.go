// Package shapes computes areas of simple 2D shapes.
//
// # Shapes
//
// [Shape] is the capability every shape provides: an Area in square units.
// Two concrete shapes are built in:
//
//   - [Circle] — stores its radius verbatim; Area is π·r².
//   - [Rectangle] — clamps width and height to [0, +Inf) at construction;
//     Area is width × height.
//
// [Base] is the abstract shape. Calling Area on it panics with
// [ErrNotImplemented]; that is a programming defect, not a runtime
// condition.
//
// [TotalArea] sums the areas of a slice of shapes left to right:
//
//	total := shapes.TotalArea([]shapes.Shape{
//		shapes.NewCircle(1),
//		shapes.NewRectangle(2, 3),
//	})
//	// total ≈ 9.141592653589793
//
// # Documents
//
// Shape collections can be read from YAML or JSON with [DecodeShapes] or
// [LoadShapes]. A document is a list of descriptors, optionally under a
// top-level "shapes" key:
//
//	shapes:
//	  - kind: circle
//	    radius: 1
//	  - kind: rectangle
//	    width: 2
//	    height: 3
//
// Descriptors build shapes through the same constructors, so rectangle
// clamping applies to decoded shapes as well.
//
// # Numeric helpers
//
// π and Clamp live in the mathutil subpackage.
package shapes
