package png

import (
	"bytes"
	stdpng "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/stdcell/export"
	"github.com/gogpu/stdcell/layout"
)

func sample() *layout.Cell {
	c := layout.NewCell("dev")
	c.AddRect(layout.Comp, layout.RectXYWH(0, 0, 4, 2))
	c.AddRect(layout.Metal1, layout.RectXYWH(1, 0.5, 1, 1))
	c.Seal()
	return c
}

func TestWriteDimensions(t *testing.T) {
	b, err := export.Bytes(New(WithSize(200), WithPadding(10)), sample())
	require.NoError(t, err)

	img, err := stdpng.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	// 4x2 µm scaled to 200 px on the long side, plus padding
	assert.Equal(t, 220, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRenderFillsShapes(t *testing.T) {
	img, err := New(WithSize(100), WithPadding(0), WithoutLabel()).Render(sample())
	require.NoError(t, err)

	// metal over comp, centre of the metal square
	_, _, b, _ := img.At(37, 25).RGBA()
	r, _, _, _ := img.At(37, 25).RGBA()
	assert.Greater(t, b, r, "metal1 should tint the pixel blue")

	// comp only, bottom-right area
	_, g, _, _ := img.At(90, 45).RGBA()
	r, _, _, _ = img.At(90, 45).RGBA()
	assert.Greater(t, g, r, "comp should tint the pixel green")
}

func TestRenderBackground(t *testing.T) {
	c := layout.NewCell("empty")
	c.AddRect(layout.Metal1, layout.RectXYWH(0, 0, 1, 1))
	c.Seal()

	img, err := New(WithSize(10), WithPadding(5), WithBackground("#000000"), WithoutLabel()).Render(c)
	require.NoError(t, err)
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Zero(t, r+g+b, "padding keeps the background color")
}

func TestWriteNilCell(t *testing.T) {
	_, err := export.Bytes(New(), nil)
	assert.ErrorIs(t, err, export.ErrNilCell)
}

func TestRegistered(t *testing.T) {
	assert.True(t, export.IsRegistered("png"))
}
