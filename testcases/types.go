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

// Package testcases defines named checkerboard parameter sets shared by
// the generator tests.
package testcases

// TestCase defines a single board to generate.
type TestCase struct {
	Name     string  // lowercase a-z, 0-9 and _ only
	Rows     int     // squares vertically
	Cols     int     // squares horizontally
	SquareMM float64 // square side in millimetres
	MarginMM float64 // border width in millimetres
	DPI      int     // print resolution
}
