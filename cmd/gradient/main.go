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

// Gradient writes a two-axis colour ramp as a plain-text PPM file.
//
// Usage:
//
//	gradient [-o out.ppm] [-width 256] [-height 256]
//
// Use "-o -" to write the image to standard output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
	"seehuhn.de/go/raytrace/internal/gradient"
	"seehuhn.de/go/raytrace/ppm"
)

func main() {
	outName := flag.String("o", "out.ppm", "name of the output file")
	width := flag.Int("width", 256, "image width in pixels")
	height := flag.Int("height", 256, "image height in pixels")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gradient: ")

	if flag.NArg() > 0 || *width < 1 || *height < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	img := gradient.Generate(*width, *height)

	var err error
	if *outName == "-" {
		err = write(os.Stdout, img)
	} else {
		err = writeFile(*outName, img)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *outName != "-" && term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "wrote %dx%d image to %s\n", *width, *height, *outName)
	}
}

func writeFile(fname string, img *ppm.Image) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	err = write(fd, img)
	if err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}

func write(w io.Writer, img *ppm.Image) error {
	buf := bufio.NewWriter(w)
	err := ppm.Encode(buf, img)
	if err != nil {
		return err
	}
	return buf.Flush()
}
