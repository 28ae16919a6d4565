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
	"strings"
)

// Panel geometry of the 128x64 OLED module.
const (
	Width  = 128
	Height = 64
)

// Limits of the wire format
const (
	maxByte   = 255
	maxColour = 63
)

// Font identifies one of the controller's built-in fonts.
type Font byte

// Built-in fonts
const (
	FontDefault Font = 0
	Font6       Font = 6
	Font10      Font = 10
	Font18      Font = 18
	Font51      Font = 51
	Font120     Font = 120
	Font123     Font = 123
)

var validFonts = []Font{FontDefault, Font6, Font10, Font18, Font51, Font120, Font123}

// Valid reports whether the controller knows font f.
func (f Font) Valid() bool {
	for _, v := range validFonts {
		if f == v {
			return true
		}
	}
	return false
}

// Rotation selects the orientation of subsequent draws.
type Rotation byte

// Rotation codes as carried on the wire
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 1
	Rotate180 Rotation = 2
	Rotate270 Rotation = 3
)

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Mode is the raster operation used when drawing.
type Mode byte

// Drawing modes
const (
	ModeNormal Mode = '!'
	ModeXor    Mode = '^'
	ModeAnd    Mode = '&'
	ModeCopy   Mode = 'C'
)

// Valid reports whether m is one of the controller's drawing modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModeXor, ModeAnd, ModeCopy:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeXor:
		return "xor"
	case ModeAnd:
		return "and"
	case ModeCopy:
		return "copy"
	default:
		return fmt.Sprintf("Mode(%q)", byte(m))
	}
}

// ParseMode maps a mode name to its wire character.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "!":
		return ModeNormal, nil
	case "xor", "^":
		return ModeXor, nil
	case "and", "&":
		return ModeAnd, nil
	case "copy", "c":
		return ModeCopy, nil
	default:
		return 0, fmt.Errorf("unknown drawing mode %q: %w", name, ErrInvalidArgument)
	}
}

// CornerOverflow decides what happens when x+w or y+h of a rectangle does
// not fit in one byte.
type CornerOverflow int

const (
	// OverflowReject fails encoding with a ValidationError
	OverflowReject CornerOverflow = iota
	// OverflowWrap keeps the low byte (mod 256)
	OverflowWrap
	// OverflowClamp saturates at 255
	OverflowClamp
)

func (o CornerOverflow) String() string {
	switch o {
	case OverflowReject:
		return "reject"
	case OverflowWrap:
		return "wrap"
	case OverflowClamp:
		return "clamp"
	default:
		return fmt.Sprintf("CornerOverflow(%d)", int(o))
	}
}

// ParseCornerOverflow maps a config value to a policy. Empty means reject.
func ParseCornerOverflow(s string) (CornerOverflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return OverflowReject, nil
	case "wrap":
		return OverflowWrap, nil
	case "clamp":
		return OverflowClamp, nil
	default:
		return OverflowReject, fmt.Errorf("unknown corner overflow policy %q: %w", s, ErrInvalidArgument)
	}
}
