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

package ppm

import (
	"bufio"
	"fmt"
	"io"
)

// MaxValue is the maximum sample value written by [Encode].
const MaxValue = 255

// Encode writes img to w in P3 format.
//
// Output is buffered internally.  The first write error encountered is
// returned.
func Encode(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "P3") // magic number
	fmt.Fprintf(bw, "%d %d\n", img.width, img.height)
	fmt.Fprintln(bw, MaxValue)

	// bufio.Writer remembers the first error, so it is enough to check the
	// result of Flush.
	line := make([]byte, 0, 12)
	for _, p := range img.pix {
		line = fmt.Appendf(line[:0], "%3d %3d %3d\n", p.R, p.G, p.B)
		bw.Write(line)
	}

	return bw.Flush()
}
