// Package imaging normalizes gallery cover images: center-crop to the
// card aspect ratio and scale to the exact card size.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"io"
	"math"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	CoverWidth  = 1200
	CoverHeight = 545

	// MaxUploadBytes caps the original file size, checked before decode.
	MaxUploadBytes = 10 * 1024 * 1024

	jpegQuality = 90
)

// CropRect returns the source rectangle matching the card aspect
// ratio, centered on the longer dimension of a srcW x srcH image.
func CropRect(srcW, srcH int) image.Rectangle {
	cardRatio := float64(CoverWidth) / float64(CoverHeight)
	srcRatio := float64(srcW) / float64(srcH)

	x, y, w, h := 0, 0, srcW, srcH
	if srcRatio > cardRatio {
		w = int(math.Round(float64(srcH) * cardRatio))
		x = int(math.Round(float64(srcW-w) / 2))
	} else {
		h = int(math.Round(float64(srcW) / cardRatio))
		y = int(math.Round(float64(srcH-h) / 2))
	}
	return image.Rect(x, y, x+w, y+h)
}

// CropCover decodes r (JPEG, PNG, GIF or WebP), center-crops to
// 1200:545 and scales to exactly 1200x545, returning JPEG bytes at
// fixed quality. Callers treat any error as non-fatal and fall back to
// the original bytes.
func CropCover(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	crop := CropRect(b.Dx(), b.Dy()).Add(b.Min)

	dst := image.NewRGBA(image.Rect(0, 0, CoverWidth, CoverHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
