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

// Package checkerboard generates black-and-white checkerboard bitmaps
// sized for accurate printing. Square and margin sizes are given in
// millimetres and converted to pixels at a fixed resolution, so that a
// file printed at 100% scale reproduces the physical dimensions.
package checkerboard

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// mmPerInch converts between metric lengths and inch-based resolutions.
const mmPerInch = 25.4

// Params describes one checkerboard. All fields are read-only inputs
// for a single run.
type Params struct {
	// Rows and Cols give the board size in squares. Must be at least 1.
	Rows, Cols int

	// SquareMM is the side length of one square in millimetres.
	// Must be positive.
	SquareMM float64

	// MarginMM is the width of the white border around the board in
	// millimetres. Must be non-negative; zero means no border.
	MarginMM float64

	// DPI is the print resolution in dots per inch. Must be at least 1.
	DPI int
}

// Validate checks that the parameters describe a non-degenerate board.
func (p Params) Validate() error {
	if p.Rows < 1 {
		return fmt.Errorf("checkerboard: rows must be at least 1, got %d", p.Rows)
	}
	if p.Cols < 1 {
		return fmt.Errorf("checkerboard: cols must be at least 1, got %d", p.Cols)
	}
	if !(p.SquareMM > 0) {
		return fmt.Errorf("checkerboard: square size must be positive, got %gmm", p.SquareMM)
	}
	if p.MarginMM < 0 || math.IsNaN(p.MarginMM) || math.IsInf(p.MarginMM, 0) {
		return fmt.Errorf("checkerboard: margin must be non-negative, got %gmm", p.MarginMM)
	}
	if p.DPI < 1 {
		return fmt.Errorf("checkerboard: resolution must be at least 1 dpi, got %d", p.DPI)
	}
	return nil
}

// MMToPixels converts a length in millimetres to the nearest whole
// number of pixels at the given resolution.
func MMToPixels(mm float64, dpi int) int {
	return int(math.Round(float64(dpi) * mm / mmPerInch))
}

// mmToPoints converts a length in millimetres to PostScript points
// (1/72 inch), used for PDF page geometry.
func mmToPoints(mm float64) float64 {
	return mm / mmPerInch * 72
}

// New renders the checkerboard described by p as an 8-bit grayscale
// image. The square at row 0, column 0 is black, and adjacent squares
// alternate. A margin of white pixels surrounds the board on all sides.
//
// The result is deterministic: identical parameters yield bit-identical
// images.
func New(p Params) (*image.Gray, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	squarePx := MMToPixels(p.SquareMM, p.DPI)
	marginPx := MMToPixels(p.MarginMM, p.DPI)

	width := p.Cols*squarePx + 2*marginPx
	height := p.Rows*squarePx + 2*marginPx

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Copy(img, image.Point{}, image.NewUniform(color.White), img.Bounds(), draw.Src, nil)

	black := image.NewUniform(color.Black)
	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			if (row+col)%2 != 0 {
				continue
			}
			x0 := marginPx + col*squarePx
			y0 := marginPx + row*squarePx
			cell := image.Rect(x0, y0, x0+squarePx, y0+squarePx)
			draw.Draw(img, cell, black, image.Point{}, draw.Src)
		}
	}
	return img, nil
}

// DefaultFilename derives the output filename used when none is given,
// e.g. "checkerboard_6x10_25mm.png".
func DefaultFilename(p Params) string {
	return fmt.Sprintf("checkerboard_%dx%d_%dmm.png", p.Rows, p.Cols, int(p.SquareMM))
}
