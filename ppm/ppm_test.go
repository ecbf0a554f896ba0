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
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixelString(t *testing.T) {
	p := Pixel{R: 42, G: 0, B: 0}
	if got, want := p.String(), " 42   0   0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	p = Pixel{R: 255, G: 7, B: 100}
	if got, want := p.String(), "255   7 100"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	img := New(3, 2)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("wrong size %dx%d", img.Width(), img.Height())
	}
	for row := 0; row < 2; row++ {
		if d := cmp.Diff(make([]Pixel, 3), img.Row(row)); d != "" {
			t.Error(d)
		}
	}
}

func TestNewAssign(t *testing.T) {
	type call struct{ row, col int }
	var calls []call
	img := NewAssign(3, 2, func(row, col int) Pixel {
		calls = append(calls, call{row, col})
		return Pixel{R: uint8(row), G: uint8(col), B: 9}
	})

	want := []call{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if d := cmp.Diff(want, calls, cmp.AllowUnexported(call{})); d != "" {
		t.Errorf("init calls: %s", d)
	}
	if got := img.Pixel(1, 2); got != (Pixel{1, 2, 9}) {
		t.Errorf("Pixel(1, 2) = %v", got)
	}
	if d := cmp.Diff([]Pixel{{1, 0, 9}, {1, 1, 9}, {1, 2, 9}}, img.Row(1)); d != "" {
		t.Error(d)
	}
}

func TestEncode(t *testing.T) {
	img := NewAssign(2, 2, func(i, j int) Pixel {
		return Pixel{R: uint8(i), G: uint8(j), B: uint8(i)}
	})

	buf := &bytes.Buffer{}
	err := Encode(buf, img)
	if err != nil {
		t.Fatal(err)
	}

	want := "P3\n" +
		"2 2\n" +
		"255\n" +
		"  0   0   0\n" +
		"  0   1   0\n" +
		"  1   0   1\n" +
		"  1   1   1\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestEncodeEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Encode(buf, New(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "P3\n0 0\n255\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type failingWriter struct {
	n int
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errWrite
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeError(t *testing.T) {
	img := New(100, 100)
	err := Encode(&failingWriter{n: 1000}, img)
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestRoundTrip(t *testing.T) {
	img := NewAssign(17, 5, func(row, col int) Pixel {
		return Pixel{R: uint8(row * 50), G: uint8(col * 15), B: uint8(row*col + 3)}
	})

	buf := &bytes.Buffer{}
	err := Encode(buf, img)
	if err != nil {
		t.Fatal(err)
	}
	img2, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(img, img2); d != "" {
		t.Error(d)
	}
}

func TestDecode(t *testing.T) {
	in := "P3 # example from the netpbm manual\n" +
		"4 1\r\n" +
		"15\n" +
		" 0  0  0    0 15  7 # comment\n" +
		"15  0 15\t 15 15 15\n"
	img, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Pixel{{0, 0, 0}, {0, 255, 119}, {255, 0, 255}, {255, 255, 255}}
	if d := cmp.Diff(want, img.Row(0)); d != "" {
		t.Error(d)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		isFmt bool
	}{
		{"empty", "", false},
		{"P6", "P6\n1 1\n255\n\x00\x00\x00", false},
		{"P31", "P31 1\n255\n0 0 0\n", false},
		{"no header", "P3", true},
		{"no height", "P3\n1\n", true},
		{"bad width", "P3\n1x 1\n255\n0 0 0\n", true},
		{"huge width", "P3\n99999999999999999999 1\n255\n", true},
		{"too many pixels", "P3\n1048576 1048576\n255\n", true},
		{"zero maxval", "P3\n1 1\n0\n0 0 0\n", true},
		{"sample too large", "P3\n1 1\n255\n0 256 0\n", true},
		{"negative sample", "P3\n1 1\n255\n0 -1 0\n", true},
		{"truncated", "P3\n2 1\n255\n0 0 0\n1 1\n", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(c.in))
			if err == nil {
				t.Fatal("missing error")
			}
			var fErr *FormatError
			if c.isFmt {
				if !errors.As(err, &fErr) {
					t.Errorf("got %T, want *FormatError", err)
				}
			} else if err != ErrNotP3 {
				t.Errorf("got %v, want ErrNotP3", err)
			}
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(strings.NewReader("P3\n2 1\n255\n0 0 0\n"))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestImageInterface(t *testing.T) {
	var _ image.Image = (*Image)(nil)

	img := New(4, 3)
	img.Set(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(10, 10, color.White) // ignored

	if got := img.Pixel(2, 1); got != (Pixel{10, 20, 30}) {
		t.Errorf("Set(1, 2) changed the wrong pixel, got %v", got)
	}
	if got := img.At(1, 2); got != (Pixel{10, 20, 30}) {
		t.Errorf("At(1, 2) = %v", got)
	}
	if got := img.At(-1, 0); got != (Pixel{}) {
		t.Errorf("At(-1, 0) = %v", got)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.RGBA{R: 255, A: 255})
	src.Set(7, 6, color.RGBA{G: 128, B: 64, A: 255})

	img := FromImage(src)
	want := NewAssign(3, 2, func(row, col int) Pixel {
		switch {
		case row == 0 && col == 0:
			return Pixel{R: 255}
		case row == 1 && col == 2:
			return Pixel{G: 128, B: 64}
		}
		return Pixel{}
	})
	if d := cmp.Diff(want, img); d != "" {
		t.Error(d)
	}
}

func TestPixelModel(t *testing.T) {
	c := PixelModel.Convert(color.Gray{Y: 0x80})
	if c != (Pixel{0x80, 0x80, 0x80}) {
		t.Errorf("got %v", c)
	}
	r, g, b, a := Pixel{R: 1, G: 2, B: 255}.RGBA()
	if r != 0x0101 || g != 0x0202 || b != 0xffff || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add("P3\n2 2\n255\n  0   0   0\n  0   1   0\n  1   0   1\n  1   1   1\n")
	f.Add("P3 1 1 1 1 0 1")
	f.Add("P3\n# comment\n0 0\n255\n")
	f.Add("P3\n1 2\n65535\n65535 0 32768\n1 2 3\n")

	f.Fuzz(func(t *testing.T, in string) {
		img1, err := Decode(strings.NewReader(in))
		if err != nil {
			return
		}

		buf := &bytes.Buffer{}
		err = Encode(buf, img1)
		if err != nil {
			t.Fatal(err)
		}
		img2, err := Decode(buf)
		if err != nil {
			t.Fatal(err)
		}
		if !img1.Equal(img2) {
			t.Error("round trip failed")
		}
	})
}
