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
	"errors"
	"strconv"
)

// ErrNotP3 is returned by [Decode] if the input does not start with the
// "P3" magic number.
var ErrNotP3 = errors.New("ppm: not a plain-text PPM file")

// FormatError indicates that the input to [Decode] is not valid P3 data.
type FormatError struct {
	Msg string
	Pos int64 // byte offset of the problem, or -1 if unknown
	Err error
}

func (err *FormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos >= 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "ppm: " + err.Msg + middle + tail
}

func (err *FormatError) Unwrap() error {
	return err.Err
}
