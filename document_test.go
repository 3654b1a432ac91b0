package shapes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shapeCmp = cmp.AllowUnexported(Rectangle{})

func TestDecodeShapes_List(t *testing.T) {
	t.Parallel()

	src := `
- kind: circle
  radius: 1
- kind: rectangle
  width: 2
  height: 3
`
	got, err := DecodeShapes(strings.NewReader(src))
	require.NoError(t, err)

	want := []Shape{NewCircle(1), NewRectangle(2, 3)}
	if diff := cmp.Diff(want, got, shapeCmp); diff != "" {
		t.Errorf("DecodeShapes mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeShapes_Mapping(t *testing.T) {
	t.Parallel()

	src := `
shapes:
  - kind: Rect
    width: -5
    height: 10
  - kind: CIRCLE
    radius: 0.5
`
	got, err := DecodeShapes(strings.NewReader(src))
	require.NoError(t, err)

	want := []Shape{NewRectangle(0, 10), NewCircle(0.5)}
	if diff := cmp.Diff(want, got, shapeCmp); diff != "" {
		t.Errorf("DecodeShapes mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeShapes_JSON(t *testing.T) {
	t.Parallel()

	src := `{"shapes": [{"kind": "circle", "radius": 1.0}, {"kind": "rectangle", "width": 2.0, "height": 3.0}]}`
	got, err := DecodeShapes(strings.NewReader(src))
	require.NoError(t, err)
	assert.InDelta(t, 3.141592653589793+6.0, TotalArea(got), 1e-12)
}

func TestDecodeShapes_Empty(t *testing.T) {
	t.Parallel()

	got, err := DecodeShapes(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0.0, TotalArea(got))
}

func TestDecodeShapes_UnknownKind(t *testing.T) {
	t.Parallel()

	src := `
- kind: circle
  radius: 1
- kind: hexagon
`
	_, err := DecodeShapes(strings.NewReader(src))
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "shape 1")
	assert.Contains(t, err.Error(), `"hexagon"`)
}

func TestDecodeShapes_Scalar(t *testing.T) {
	t.Parallel()

	_, err := DecodeShapes(strings.NewReader("42"))
	require.Error(t, err)
}

func TestDecodeShapes_Malformed(t *testing.T) {
	t.Parallel()

	_, err := DecodeShapes(strings.NewReader("- kind: circle\n  radius: [1, 2"))
	require.Error(t, err)
}

func TestDescriptorOf_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCircle(2)
	for _, s := range []Shape{NewCircle(-1), NewRectangle(4, 5), &c} {
		d, err := DescriptorOf(s)
		require.NoError(t, err)
		back, err := d.Shape()
		require.NoError(t, err)
		assert.Equal(t, s.Area(), back.Area())
	}
}

func TestDescriptorOf_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := DescriptorOf(Base{})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoadShapes(t *testing.T) {
	t.Parallel()

	got, err := LoadShapes(filepath.Join("testdata", "shapes.yaml"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 3.141592653589793+6.0, TotalArea(got), 1e-12)
}

func TestLoadShapes_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadShapes(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadShapes_ErrorNamesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- kind: blob\n"), 0o644))

	_, err := LoadShapes(path)
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), path)
}
