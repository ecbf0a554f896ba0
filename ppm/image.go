// seehuhn.de/go/raytrace - building blocks for a software raytracer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ppm implements an in-memory RGB image and the plain-text
// "P3" variant of the portable pixmap format.
//
// The encoder output is fixed: a three line header ("P3", the width and
// height, and the maximum sample value 255), followed by one line per
// pixel.  Each pixel line consists of the red, green and blue sample
// values, right-aligned in fields of width three and separated by single
// spaces.
package ppm

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/exp/slices"
	xdraw "golang.org/x/image/draw"
)

// Pixel is an RGB color with 8 bits per channel.
// The zero value is black.
type Pixel struct {
	R, G, B uint8
}

// RGBA implements the [color.Color] interface.
// Pixels are always fully opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R) * 0x101
	g = uint32(p.G) * 0x101
	b = uint32(p.B) * 0x101
	a = 0xffff
	return
}

// String returns the text representation of the pixel, as used in P3 files.
func (p Pixel) String() string {
	return fmt.Sprintf("%3d %3d %3d", p.R, p.G, p.B)
}

// PixelModel converts colors to [Pixel] values.
// Alpha is discarded, without compositing onto a background.
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Image is a rectangular grid of pixels.
//
// The image has Height() rows, each containing Width() pixels.  Row 0 is
// the top row, column 0 the leftmost column.  When used as an [image.Image],
// the x coordinate is the column and the y coordinate is the row.
type Image struct {
	width, height int
	pix           []Pixel // row-major, len(pix) == width*height
}

// New allocates a black image of the given size.
func New(width, height int) *Image {
	checkSize(width, height)
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// NewAssign allocates an image of the given size and sets every pixel to
// init(row, col).  The function is called exactly once for each pixel,
// in row-major order.
func NewAssign(width, height int, init func(row, col int) Pixel) *Image {
	checkSize(width, height)
	pix := make([]Pixel, 0, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			pix = append(pix, init(row, col))
		}
	}
	return &Image{
		width:  width,
		height: height,
		pix:    pix,
	}
}

// FromImage copies an arbitrary image into a new [Image].
// The top-left corner of src.Bounds() becomes row 0, column 0.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := New(b.Dx(), b.Dy())
	xdraw.Draw(img, img.Bounds(), src, b.Min, xdraw.Src)
	return img
}

func checkSize(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("ppm: invalid image size %dx%d", width, height))
	}
}

// Width returns the number of pixels in each row.
func (img *Image) Width() int {
	return img.width
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return img.height
}

// Pixel returns the pixel at the given position.
// Pixel panics if the position is outside the image.
func (img *Image) Pixel(row, col int) Pixel {
	return img.pix[img.offset(row, col)]
}

// SetPixel changes the pixel at the given position.
// SetPixel panics if the position is outside the image.
func (img *Image) SetPixel(row, col int, p Pixel) {
	img.pix[img.offset(row, col)] = p
}

// Row returns the pixels of the given row, from left to right.
// The returned slice shares storage with the image.
func (img *Image) Row(row int) []Pixel {
	if row < 0 || row >= img.height {
		panic("ppm: row out of range")
	}
	start := row * img.width
	return img.pix[start : start+img.width : start+img.width]
}

func (img *Image) offset(row, col int) int {
	if row < 0 || row >= img.height || col < 0 || col >= img.width {
		panic(fmt.Sprintf("ppm: pixel (%d, %d) out of range", row, col))
	}
	return row*img.width + col
}

// Equal reports whether img and other have the same size and pixels.
func (img *Image) Equal(other *Image) bool {
	return img.width == other.width &&
		img.height == other.height &&
		slices.Equal(img.pix, other.pix)
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	return PixelModel
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements the [image.Image] interface.
// Positions outside the image are black.
func (img *Image) At(x, y int) color.Color {
	if !(image.Pt(x, y).In(img.Bounds())) {
		return Pixel{}
	}
	return img.pix[y*img.width+x]
}

// Set implements the draw.Image interface.
// Positions outside the image are ignored.
func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Pt(x, y).In(img.Bounds())) {
		return
	}
	img.pix[y*img.width+x] = pixelModel(c).(Pixel)
}
