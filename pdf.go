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

package checkerboard

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the checkerboard described by p as a single-page PDF
// at path. The page media box equals the physical board size, so the
// squares come out at their true millimetre dimensions when the file
// is printed at 100% scale. Unlike the bitmap output, the page is
// resolution independent and needs no DPI metadata.
func WritePDF(path string, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	width := mmToPoints(float64(p.Cols)*p.SquareMM + 2*p.MarginMM)
	height := mmToPoints(float64(p.Rows)*p.SquareMM + 2*p.MarginMM)

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the board is laid out top-down like
	// the bitmap. Apply a Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	// The page background is white by default, so only the black
	// squares need painting. Accumulate one row of cells per path.
	page.SetFillColor(color.DeviceGray(0))
	side := mmToPoints(p.SquareMM)
	margin := mmToPoints(p.MarginMM)
	for row := 0; row < p.Rows; row++ {
		y := margin + float64(row)*side
		painted := false
		for col := 0; col < p.Cols; col++ {
			if (row+col)%2 != 0 {
				continue
			}
			x := margin + float64(col)*side
			page.Rectangle(x, y, side, side)
			painted = true
		}
		if painted {
			page.Fill()
		}
	}

	return page.Close()
}
