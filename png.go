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
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
	"os"
)

// pngIHDREnd is the offset of the first byte after the IHDR chunk:
// 8 bytes signature + 4 length + 4 type + 13 data + 4 CRC.
const pngIHDREnd = 33

// PixelsPerMetre converts a dots-per-inch resolution to the
// pixels-per-metre value stored in a PNG pHYs chunk.
func PixelsPerMetre(dpi int) uint32 {
	return uint32(math.Round(float64(dpi) / 0.0254))
}

// EncodePNG writes img to w as an 8-bit grayscale PNG with a pHYs
// chunk declaring the given resolution on both axes.
//
// The standard library encoder emits no resolution metadata, so the
// image is encoded to a buffer first and the pHYs chunk is spliced in
// directly after IHDR, where the PNG specification requires it to
// appear (before the first IDAT).
func EncodePNG(w io.Writer, img *image.Gray, dpi int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	raw := buf.Bytes()
	if len(raw) < pngIHDREnd || !bytes.Equal(raw[12:16], []byte("IHDR")) {
		return fmt.Errorf("encoding PNG: malformed encoder output")
	}

	if _, err := w.Write(raw[:pngIHDREnd]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(raw[pngIHDREnd:])
	return err
}

// physChunk builds a complete pHYs chunk (length, type, data, CRC)
// with the same resolution on both axes, in metres.
func physChunk(dpi int) []byte {
	ppm := PixelsPerMetre(dpi)

	chunk := make([]byte, 21)
	binary.BigEndian.PutUint32(chunk[0:4], 9) // data length
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)  // X axis
	binary.BigEndian.PutUint32(chunk[12:16], ppm) // Y axis
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// WritePNG encodes img with the given resolution metadata and writes
// it to a file at path. A failed write may leave a truncated file
// behind; no cleanup is attempted.
func WritePNG(path string, img *image.Gray, dpi int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodePNG(f, img, dpi)
}
