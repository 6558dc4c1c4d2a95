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

package testcases

// boardCases cover the bare tiling with no margin. At 254 dpi one
// millimetre is exactly 10 pixels, so square sizes are round numbers.
var boardCases = []TestCase{
	{
		Name:     "two_by_two",
		Rows:     2,
		Cols:     2,
		SquareMM: 10,
		DPI:      254,
	},
	{
		Name:     "single_square",
		Rows:     1,
		Cols:     1,
		SquareMM: 10,
		DPI:      254,
	},
	{
		Name:     "single_row",
		Rows:     1,
		Cols:     7,
		SquareMM: 5,
		DPI:      254,
	},
	{
		Name:     "single_column",
		Rows:     7,
		Cols:     1,
		SquareMM: 5,
		DPI:      254,
	},
	{
		Name:     "chess",
		Rows:     8,
		Cols:     8,
		SquareMM: 12.5,
		DPI:      254,
	},
}

// marginCases add a white border around the board.
var marginCases = []TestCase{
	{
		Name:     "single_square_margin",
		Rows:     1,
		Cols:     1,
		SquareMM: 10,
		MarginMM: 5,
		DPI:      254,
	},
	{
		Name:     "wide_margin",
		Rows:     3,
		Cols:     5,
		SquareMM: 8,
		MarginMM: 20,
		DPI:      254,
	},
	{
		Name:     "thin_margin",
		Rows:     4,
		Cols:     4,
		SquareMM: 15,
		MarginMM: 0.5,
		DPI:      254,
	},
}

// printCases use realistic printer settings where millimetre sizes do
// not map to whole pixels and must be rounded.
var printCases = []TestCase{
	{
		Name:     "a4_default",
		Rows:     6,
		Cols:     10,
		SquareMM: 25,
		MarginMM: 10,
		DPI:      300,
	},
	{
		Name:     "calibration_coarse",
		Rows:     4,
		Cols:     6,
		SquareMM: 30,
		MarginMM: 15,
		DPI:      72,
	},
	{
		Name:     "calibration_fine",
		Rows:     7,
		Cols:     9,
		SquareMM: 20,
		MarginMM: 12.7,
		DPI:      600,
	},
}
