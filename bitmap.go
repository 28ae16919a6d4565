// go-digole
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-digole.
//
// go-digole is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-digole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-digole; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package digole

import (
	"fmt"
	"image"
	"image/color"
)

// lumaThreshold is the 16-bit grey level at or above which a pixel is lit.
const lumaThreshold = 0x8000

// Bitmap is a row-packed monochrome raster: one bit per pixel, MSB first,
// each row padded to a whole byte.
type Bitmap struct {
	Data   []byte
	Width  int
	Height int
}

// Stride returns the number of bytes in one packed row of the given width.
func Stride(width int) int {
	return (width + 7) / 8
}

// PackedSize returns ceil(width/8)*height, the payload length the controller
// reads after a DIM header.
func PackedSize(width, height int) int {
	return Stride(width) * height
}

// NewBitmap validates the dimensions and payload length and returns a
// Bitmap holding a private copy of data.
func NewBitmap(width, height int, data []byte) (*Bitmap, error) {
	if err := validateBitmap("Bitmap", width, height, len(data)); err != nil {
		return nil, err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Bitmap{Width: width, Height: height, Data: buf}, nil
}

// Validate checks the Bitmap against the wire format limits.
func (b *Bitmap) Validate() error {
	return validateBitmap("Bitmap", b.Width, b.Height, len(b.Data))
}

// Bounds returns the raster rectangle anchored at the origin.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At reports whether the pixel at (x, y) is set. Out of range pixels are unset.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	idx := y*Stride(b.Width) + x/8
	if idx >= len(b.Data) {
		return false
	}
	return b.Data[idx]&(0x80>>(uint(x)%8)) != 0
}

// PackImage converts img to a Bitmap, lighting every pixel whose luma is at
// least half scale. Images larger than 255 pixels on either side are rejected.
func PackImage(img image.Image) (*Bitmap, error) {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	if err := validateBitmapDims("PackImage", w, h); err != nil {
		return nil, err
	}

	stride := Stride(w)
	data := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g, ok := color.Gray16Model.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.Gray16)
			if !ok || g.Y < lumaThreshold {
				continue
			}
			data[y*stride+x/8] |= 0x80 >> (uint(x) % 8)
		}
	}

	return &Bitmap{Width: w, Height: h, Data: data}, nil
}

func validateBitmapDims(op string, width, height int) error {
	if width < 0 || width > maxByte {
		return rangeError(op, "w", width, 0, maxByte)
	}
	if height < 0 || height > maxByte {
		return rangeError(op, "h", height, 0, maxByte)
	}
	return nil
}

func validateBitmap(op string, width, height, n int) error {
	if err := validateBitmapDims(op, width, height); err != nil {
		return err
	}
	if want := PackedSize(width, height); n != want {
		return &ValidationError{
			Err:    ErrBitmapSize,
			Op:     op,
			Field:  "data",
			Value:  n,
			Min:    want,
			Max:    want,
			Reason: fmt.Sprintf("got %d bytes, want ceil(%d/8)*%d = %d", n, width, height, want),
		}
	}
	return nil
}
