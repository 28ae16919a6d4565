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

// Dimensions of the built-in logo.
const (
	LogoWidth  = 50
	LogoHeight = 50
)

// logoData is the 50x50 logo, 7 bytes per row.
var logoData = [LogoHeight * 7]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x01, 0xc0, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x03, 0x60, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x03, 0x60, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x07, 0xc0, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x1c, 0x00, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x70, 0x00, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0xc0, 0x01, 0xc0, 0x00, 0x3f,
	0x00, 0x03, 0x80, 0x00, 0x60, 0x00, 0x3f,
	0x00, 0x0e, 0x00, 0x00, 0x38, 0x00, 0x3f,
	0x00, 0x18, 0x00, 0x00, 0x0e, 0x00, 0x3f,
	0x00, 0x70, 0x00, 0x00, 0x03, 0x00, 0x3f,
	0x01, 0xc0, 0x00, 0x00, 0x01, 0xc0, 0x3f,
	0x03, 0x00, 0x00, 0x00, 0x00, 0x70, 0x3f,
	0x06, 0x00, 0x00, 0x00, 0x00, 0x30, 0x3f,
	0x06, 0x00, 0x00, 0x00, 0x00, 0x10, 0x3f,
	0x06, 0x00, 0x00, 0x00, 0x00, 0x10, 0x3f,
	0x06, 0x00, 0x00, 0x00, 0x00, 0x10, 0x3f,
	0x06, 0x01, 0xff, 0x7f, 0xc0, 0x10, 0x3f,
	0x06, 0x01, 0xff, 0x7f, 0xc0, 0x10, 0x3f,
	0x06, 0x01, 0xff, 0x7f, 0xc0, 0x10, 0x3f,
	0x06, 0x01, 0xff, 0x7f, 0xc0, 0x10, 0x3f,
	0x06, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x06, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x06, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x04, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x10, 0x3f,
	0x0f, 0x00, 0x00, 0x00, 0x00, 0x78, 0x3f,
	0x09, 0x00, 0x00, 0x00, 0x00, 0x6c, 0x3f,
	0x09, 0x80, 0x00, 0x00, 0x00, 0x6c, 0x3f,
	0x0f, 0xc0, 0x00, 0x00, 0x00, 0x38, 0x3f,
	0x00, 0x70, 0x00, 0x00, 0x00, 0x00, 0x3f,
	0x00, 0x1c, 0x00, 0x00, 0x00, 0x00, 0x3f,
	0x00, 0x06, 0x00, 0x00, 0x30, 0x00, 0x3f,
	0x00, 0x03, 0x80, 0x00, 0xe0, 0x00, 0x3f,
	0x00, 0x00, 0xe0, 0x01, 0x80, 0x00, 0x3f,
	0x00, 0x00, 0x30, 0x07, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x1c, 0x1c, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x07, 0x70, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x01, 0xc0, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f,
}

// Logo returns the built-in logo as a Bitmap.
func Logo() *Bitmap {
	data := make([]byte, len(logoData))
	copy(data, logoData[:])
	return &Bitmap{Width: LogoWidth, Height: LogoHeight, Data: data}
}
