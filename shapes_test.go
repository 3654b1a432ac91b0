package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jward/shapes/mathutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// Circle
// =============================================================================

func TestCircle_Area(t *testing.T) {
	t.Parallel()

	for _, r := range []float64{0, 0.5, 1, 2, 3.75, 1e6, -2} {
		c := NewCircle(r)
		assert.Equal(t, mathutil.Pi*r*r, c.Area(), "radius %v", r)
	}
}

func TestCircle_UnitArea(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3.141592653589793, NewCircle(1).Area())
}

func TestCircle_RadiusStoredVerbatim(t *testing.T) {
	t.Parallel()

	c := NewCircle(-3)
	assert.Equal(t, -3.0, c.Radius)
	assert.Equal(t, NewCircle(3).Area(), c.Area())
}

func TestCircle_InfiniteRadius(t *testing.T) {
	t.Parallel()
	assert.True(t, math.IsInf(NewCircle(math.Inf(1)).Area(), 1))
	assert.True(t, math.IsInf(NewCircle(math.Inf(-1)).Area(), 1))
}

// =============================================================================
// Rectangle
// =============================================================================

func TestRectangle_Area(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 6.0, NewRectangle(2, 3).Area())
	assert.Equal(t, 0.0, NewRectangle(0, 3).Area())
}

func TestRectangle_ClampsNegativeDimensions(t *testing.T) {
	t.Parallel()

	r := NewRectangle(-5, 10)
	assert.Equal(t, 0.0, r.Width())
	assert.Equal(t, 10.0, r.Height())
	assert.Equal(t, 0.0, r.Area())

	r = NewRectangle(4, -1)
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 0.0, r.Height())
}

func TestRectangle_NoUpperBound(t *testing.T) {
	t.Parallel()

	r := NewRectangle(1e300, math.Inf(1))
	assert.Equal(t, 1e300, r.Width())
	assert.True(t, math.IsInf(r.Height(), 1))
}

func TestRectangle_AreaNeverNegative(t *testing.T) {
	t.Parallel()

	dims := []float64{-1e9, -3.5, -1, -0.0001, 0, 0.0001, 1, 3.5, 1e9}
	for _, w := range dims {
		for _, h := range dims {
			r := NewRectangle(w, h)
			assert.GreaterOrEqual(t, r.Width(), 0.0)
			assert.GreaterOrEqual(t, r.Height(), 0.0)
			assert.GreaterOrEqual(t, r.Area(), 0.0, "NewRectangle(%v, %v)", w, h)
		}
	}
}

func TestRectangle_NaNDimensionClampsToZero(t *testing.T) {
	t.Parallel()

	r := NewRectangle(math.NaN(), 3)
	assert.Equal(t, 0.0, r.Width())
	assert.Equal(t, 3.0, r.Height())
	assert.Equal(t, 0.0, r.Area())

	r = NewRectangle(2, math.NaN())
	assert.Equal(t, 0.0, r.Height())
	assert.GreaterOrEqual(t, r.Area(), 0.0)
}

func TestRectangle_ZeroValue(t *testing.T) {
	t.Parallel()

	var r Rectangle
	assert.Equal(t, 0.0, r.Area())
}

// =============================================================================
// Base & TotalArea
// =============================================================================

func TestBase_AreaPanics(t *testing.T) {
	t.Parallel()

	var s Shape = Base{}
	assert.PanicsWithError(t, ErrNotImplemented.Error(), func() { s.Area() })
}

// halfDone embeds Base but forgets to override Area.
type halfDone struct {
	Base
	side float64
}

func TestBase_EmbeddedWithoutOverridePanics(t *testing.T) {
	t.Parallel()

	s := halfDone{side: 2}
	assert.PanicsWithError(t, ErrNotImplemented.Error(), func() {
		TotalArea([]Shape{NewCircle(1), s})
	})
}

func TestTotalArea_NilElementPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { TotalArea([]Shape{NewCircle(1), nil}) })
}

func TestTotalArea_Empty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, TotalArea(nil))
	assert.Equal(t, 0.0, TotalArea([]Shape{}))
}

func TestTotalArea_Mixed(t *testing.T) {
	t.Parallel()

	got := TotalArea([]Shape{NewCircle(1.0), NewRectangle(2.0, 3.0)})
	assert.InDelta(t, 3.141592653589793+6.0, got, 1e-12)
}

func TestTotalArea_SumsInOrder(t *testing.T) {
	t.Parallel()

	in := []Shape{NewRectangle(1e16, 1), NewRectangle(1, 1), NewRectangle(1, 1)}
	want := 1e16
	want += 1
	want += 1
	assert.Equal(t, want, TotalArea(in))
}

func TestTotalArea_PointerShapes(t *testing.T) {
	t.Parallel()

	c := NewCircle(2)
	r := NewRectangle(3, 4)
	got := TotalArea([]Shape{&c, &r})
	require.InDelta(t, c.Area()+12, got, 1e-12)
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "circle(r=1.5)", NewCircle(1.5).String())
	assert.Equal(t, "rectangle(0x2)", NewRectangle(-1, 2).String())
}
