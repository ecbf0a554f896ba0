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
	"io"
)

const (
	maxDim    = 1 << 20
	maxPixels = 1 << 28
	maxMaxVal = 65535
)

// Decode reads a single P3 image from r.
//
// Decode accepts any valid plain PPM file, not only the output of [Encode]:
// tokens may be separated by arbitrary whitespace, comments starting with
// '#' run to the end of the line, and the maximum sample value may be
// anything from 1 to 65535.  Samples are rescaled to 8 bits.
// Data following the last sample is not read.
func Decode(r io.Reader) (*Image, error) {
	s := &scanner{r: bufio.NewReader(r)}

	err := s.readMagic()
	if err != nil {
		return nil, err
	}

	width, err := s.readInt("width", maxDim)
	if err != nil {
		return nil, err
	}
	height, err := s.readInt("height", maxDim)
	if err != nil {
		return nil, err
	}
	if height > 0 && width > maxPixels/height {
		return nil, &FormatError{Msg: "image too large", Pos: s.pos}
	}
	maxVal, err := s.readInt("maximum sample value", maxMaxVal)
	if err != nil {
		return nil, err
	}
	if maxVal == 0 {
		return nil, &FormatError{Msg: "maximum sample value is zero", Pos: s.pos}
	}

	n := width * height
	pix := make([]Pixel, 0, min(n, 1<<16))
	for len(pix) < n {
		var rgb [3]uint8
		for i := range rgb {
			v, err := s.readInt("sample", maxVal)
			if err != nil {
				return nil, err
			}
			if maxVal == MaxValue {
				rgb[i] = uint8(v)
			} else {
				rgb[i] = uint8((v*MaxValue + maxVal/2) / maxVal)
			}
		}
		pix = append(pix, Pixel{R: rgb[0], G: rgb[1], B: rgb[2]})
	}

	return &Image{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

type scanner struct {
	r   *bufio.Reader
	pos int64
}

func (s *scanner) readByte() (byte, error) {
	c, err := s.r.ReadByte()
	if err == nil {
		s.pos++
	}
	return c, err
}

func (s *scanner) unreadByte() {
	s.r.UnreadByte()
	s.pos--
}

func (s *scanner) readMagic() error {
	var magic [2]byte
	for i := range magic {
		c, err := s.readByte()
		if err == io.EOF {
			return ErrNotP3
		} else if err != nil {
			return err
		}
		magic[i] = c
	}
	if magic != [2]byte{'P', '3'} {
		return ErrNotP3
	}

	c, err := s.readByte()
	if err == io.EOF {
		return &FormatError{Msg: "missing image header", Pos: s.pos, Err: io.ErrUnexpectedEOF}
	} else if err != nil {
		return err
	}
	if !isSpace(c) && c != '#' {
		return ErrNotP3
	}
	s.unreadByte()
	return nil
}

// skipSpace advances to the start of the next token.
func (s *scanner) skipSpace() error {
	for {
		c, err := s.readByte()
		if err != nil {
			return err
		}
		switch {
		case c == '#':
			for c != '\n' && c != '\r' {
				c, err = s.readByte()
				if err != nil {
					return err
				}
			}
		case isSpace(c):
			// pass
		default:
			s.unreadByte()
			return nil
		}
	}
}

// readInt reads a non-negative decimal integer.  The value must not
// exceed limit.
func (s *scanner) readInt(what string, limit int) (int, error) {
	err := s.skipSpace()
	if err == io.EOF {
		return 0, &FormatError{Msg: "missing " + what, Pos: s.pos, Err: io.ErrUnexpectedEOF}
	} else if err != nil {
		return 0, err
	}

	start := s.pos
	v := 0
	for {
		c, err := s.readByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}

		if c < '0' || c > '9' {
			if !isSpace(c) && c != '#' {
				return 0, &FormatError{Msg: "invalid character in " + what, Pos: s.pos - 1}
			}
			s.unreadByte()
			break
		}

		// v <= limit <= maxDim here, so this cannot overflow
		v = v*10 + int(c-'0')
		if v > limit {
			return 0, &FormatError{Msg: what + " out of range", Pos: start}
		}
	}
	if s.pos == start {
		return 0, &FormatError{Msg: "missing " + what, Pos: start}
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
