// Package imaging renders the fallback image shown when a shirt's external
// image URL cannot be loaded.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PlaceholderText is the label drawn on the fallback image.
const PlaceholderText = "Imagen no disponible"

var (
	placeholderBG     = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	placeholderBorder = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	placeholderText   = color.RGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff}
)

// Placeholder renders a width×height PNG with a border and a centered label.
func Placeholder(width, height int) ([]byte, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid placeholder size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBG), image.Point{}, draw.Src)

	// 2px border.
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, width, 2),
		image.Rect(0, height-2, width, height),
		image.Rect(0, 0, 2, height),
		image.Rect(width-2, 0, width, height),
	} {
		draw.Draw(img, r, image.NewUniform(placeholderBorder), image.Point{}, draw.Src)
	}

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, PlaceholderText)
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(placeholderText),
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(width) - textWidth) / 2,
			Y: fixed.I(height / 2),
		},
	}
	drawer.DrawString(PlaceholderText)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
