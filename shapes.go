package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/jward/shapes/mathutil"
)

// ErrNotImplemented is the panic value of Base.Area. Reaching it means a
// type embedded Base without providing its own Area.
var ErrNotImplemented = errors.New("shapes: area not implemented")

// Shape is anything with a 2D area in square units.
type Shape interface {
	Area() float64
}

// Base is the abstract shape. Concrete shapes may embed it, but must
// override Area.
type Base struct{}

// Area always panics with ErrNotImplemented.
func (Base) Area() float64 {
	panic(ErrNotImplemented)
}

// Circle is a circle defined by its radius. The radius is stored as given,
// so a negative radius still yields a (non-physical) positive area.
type Circle struct {
	Radius float64
}

// NewCircle returns a circle with the given radius.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius}
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return mathutil.Pi * c.Radius * c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(r=%g)", c.Radius)
}

// Rectangle is an axis-aligned rectangle. Width and height are never
// negative.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle returns a rectangle with both dimensions clamped to
// [0, +Inf). A NaN dimension becomes 0.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{
		width:  mathutil.Clamp(width, 0, math.Inf(1)),
		height: mathutil.Clamp(height, 0, math.Inf(1)),
	}
}

// Width returns the clamped width.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the clamped height.
func (r Rectangle) Height() float64 { return r.height }

// Area returns width × height.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("rectangle(%gx%g)", r.width, r.height)
}

// TotalArea sums the areas of shapes in slice order. An empty slice
// yields 0.
func TotalArea(shapes []Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
