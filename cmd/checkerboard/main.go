// seehuhn.de/go/checkerboard - a printable checkerboard generator
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

// Command checkerboard writes a black-and-white checkerboard to an
// image file, sized so the squares print at their true physical
// dimensions at 100% scale. The output is a grayscale PNG with
// embedded resolution metadata, or a single-page PDF when the output
// name ends in ".pdf".
package main

import (
	"flag"
	"fmt"
	"strings"

	"seehuhn.de/go/checkerboard"
)

var (
	rows     = flag.Int("rows", 6, "number of squares vertically")
	cols     = flag.Int("cols", 10, "number of squares horizontally")
	squareMM = flag.Float64("square-mm", 25.0, "square size in mm")
	marginMM = flag.Float64("margin-mm", 10.0, "margin around the board in mm")
	dpi      = flag.Int("dpi", 300, "printer resolution in dots per inch")
	output   = flag.String("output", "", "output filename (default derived from the parameters)")
)

func main() {
	flag.Parse()

	p := checkerboard.Params{
		Rows:     *rows,
		Cols:     *cols,
		SquareMM: *squareMM,
		MarginMM: *marginMM,
		DPI:      *dpi,
	}

	outName := *output
	if outName == "" {
		outName = checkerboard.DefaultFilename(p)
	}

	if err := write(outName, p); err != nil {
		panic(err)
	}

	fmt.Printf("Saved checkerboard to '%s' (%d×%d squares, %g mm each, margin %g mm, %d dpi).\n",
		outName, p.Cols, p.Rows, p.SquareMM, p.MarginMM, p.DPI)
}

func write(outName string, p checkerboard.Params) error {
	if strings.HasSuffix(strings.ToLower(outName), ".pdf") {
		return checkerboard.WritePDF(outName, p)
	}

	img, err := checkerboard.New(p)
	if err != nil {
		return err
	}
	return checkerboard.WritePNG(outName, img, p.DPI)
}
