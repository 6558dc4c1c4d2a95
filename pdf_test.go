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
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	p := Params{Rows: 6, Cols: 10, SquareMM: 25, MarginMM: 10, DPI: 300}
	if err := WritePDF(path, p); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		t.Errorf("file starts with %q, want a PDF header", raw[:min(8, len(raw))])
	}
}

func TestWritePDFInvalidParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	if err := WritePDF(path, Params{Rows: 0, Cols: 10, SquareMM: 25, DPI: 300}); err == nil {
		t.Error("WritePDF accepted zero rows")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("rejected parameters still produced a file")
	}
}
