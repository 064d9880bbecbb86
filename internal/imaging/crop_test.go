package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropRectWideSource(t *testing.T) {
	// 4000x1000 is wider than 1200:545, so width gets trimmed.
	r := CropRect(4000, 1000)

	assert.Equal(t, 1000, r.Dy())
	assert.Equal(t, 2202, r.Dx()) // round(1000 * 1200/545)
	assert.Equal(t, 899, r.Min.X) // round((4000-2202)/2)
	assert.Equal(t, 0, r.Min.Y)
}

func TestCropRectTallSource(t *testing.T) {
	// 1000x2000 is taller, so height gets trimmed.
	r := CropRect(1000, 2000)

	assert.Equal(t, 1000, r.Dx())
	assert.Equal(t, 454, r.Dy()) // round(1000 * 545/1200)
	assert.Equal(t, 0, r.Min.X)
	assert.Equal(t, 773, r.Min.Y) // round((2000-454)/2)
}

func TestCropRectExactRatio(t *testing.T) {
	r := CropRect(CoverWidth, CoverHeight)

	assert.Equal(t, image.Rect(0, 0, CoverWidth, CoverHeight), r)
}

func TestCropRectStaysInsideSource(t *testing.T) {
	for _, dims := range [][2]int{{100, 100}, {3000, 500}, {500, 3000}, {1201, 545}} {
		r := CropRect(dims[0], dims[1])
		assert.True(t, r.In(image.Rect(0, 0, dims[0], dims[1])), "dims %v rect %v", dims, r)
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCropCoverProducesCardSizedJPEG(t *testing.T) {
	for _, dims := range [][2]int{{1600, 900}, {600, 1200}, {1200, 545}} {
		out, err := CropCover(bytes.NewReader(encodePNG(t, dims[0], dims[1])))
		require.NoError(t, err, "dims %v", dims)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, CoverWidth, decoded.Bounds().Dx())
		assert.Equal(t, CoverHeight, decoded.Bounds().Dy())
	}
}

func TestCropCoverRejectsGarbage(t *testing.T) {
	_, err := CropCover(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}
