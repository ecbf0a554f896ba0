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

// Package gradient draws a two-axis colour ramp, used as a first test image.
package gradient

import (
	"math"

	"seehuhn.de/go/raytrace/ppm"
)

// Factor scales the ramp position 0..1 to a channel value.  It is slightly
// larger than 256, so that the last row and column reach 255 after
// saturation.
const Factor float32 = 259.999

// Generate returns an image with the given number of columns (width) and
// rows (height).  The red channel increases from top to bottom, the green
// channel from left to right, and blue is always zero.
func Generate(width, height int) *ppm.Image {
	return ppm.NewAssign(width, height, func(row, col int) ppm.Pixel {
		r := float32(row) / float32(height-1)
		g := float32(col) / float32(width-1)
		return ppm.Pixel{
			R: channel(Factor * r),
			G: channel(Factor * g),
			B: 0,
		}
	})
}

// channel converts a float to a channel value, truncating towards zero.
// Values outside 0..255 saturate, and NaN maps to 0.
func channel(x float32) uint8 {
	switch {
	case math.IsNaN(float64(x)) || x <= 0:
		return 0
	case x >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(x)
}
