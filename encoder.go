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

import "fmt"

// Encoder turns typed drawing calls into Commands. It holds no state beyond
// its policy, so the same call always yields byte-identical output.
type Encoder struct {
	overflow CornerOverflow
}

// NewEncoder returns an encoder using the given rectangle overflow policy.
func NewEncoder(overflow CornerOverflow) Encoder {
	return Encoder{overflow: overflow}
}

// Overflow returns the rectangle corner overflow policy.
func (e Encoder) Overflow() CornerOverflow {
	return e.overflow
}

// arg is a named numeric argument awaiting a one byte range check.
type arg struct {
	name  string
	value int
}

// packBytes range-checks every argument against [0, 255] and packs them in order.
func packBytes(op string, args ...arg) ([]byte, error) {
	out := make([]byte, len(args))
	for i, a := range args {
		if a.value < 0 || a.value > maxByte {
			return nil, rangeError(op, a.name, a.value, 0, maxByte)
		}
		out[i] = byte(a.value)
	}
	return out, nil
}

// encode packs args and terminates the command with a line feed.
func encode(mn Mnemonic, op string, args ...arg) (Command, error) {
	payload, err := packBytes(op, args...)
	if err != nil {
		return Command{}, err
	}
	return newCommand(mn, payload, true), nil
}

// Clear erases the screen.
func (Encoder) Clear() Command {
	return newCommand(mnClear, nil, true)
}

// SetFont selects one of the built-in fonts.
func (Encoder) SetFont(f Font) (Command, error) {
	if !f.Valid() {
		return Command{}, &ValidationError{
			Err:    ErrInvalidArgument,
			Op:     "SetFont",
			Field:  "font",
			Value:  int(f),
			Min:    int(FontDefault),
			Max:    int(Font123),
			Reason: fmt.Sprintf("font %d is not one of %v", f, validFonts),
		}
	}
	return newCommand(mnSetFont, []byte{byte(f)}, true), nil
}

// SetColour sets the draw colour. Each channel is 0-63.
func (Encoder) SetColour(r, g, b int) (Command, error) {
	payload := make([]byte, 0, 3)
	for _, a := range []arg{{"r", r}, {"g", g}, {"b", b}} {
		if a.value < 0 || a.value > maxColour {
			return Command{}, rangeError("SetColour", a.name, a.value, 0, maxColour)
		}
		payload = append(payload, byte(a.value))
	}
	return newCommand(mnColour, payload, false), nil
}

// Character writes one raw byte at the cursor with no mnemonic.
func (Encoder) Character(c byte) Command {
	return newCommand(mnRawCharacter, []byte{c}, false)
}

// Text writes s at the cursor. The controller reads text until the next
// command begins, so no terminator is appended.
func (Encoder) Text(s string) Command {
	return newCommand(mnText, []byte(s), false)
}

// TextPosAbs moves the text cursor to (x, y).
func (Encoder) TextPosAbs(x, y int) (Command, error) {
	return encode(mnTextPosAbs, "TextPosAbs", arg{"x", x}, arg{"y", y})
}

// TextPosOffset shifts subsequent text by (xoff, yoff).
func (Encoder) TextPosOffset(xoff, yoff int) (Command, error) {
	return encode(mnTextPosOffset, "TextPosOffset", arg{"xoff", xoff}, arg{"yoff", yoff})
}

// TextPosBack resets the text offset.
func (Encoder) TextPosBack() Command {
	return newCommand(mnTextPosBack, nil, true)
}

// NextTextLine moves the cursor to the start of the next text line.
func (Encoder) NextTextLine() Command {
	return newCommand(mnNextTextLine, nil, true)
}

// corners converts an origin and extent to the far corner, applying the
// overflow policy when the sum leaves the byte range.
func (e Encoder) corners(op string, x, y, w, h int) ([]byte, error) {
	payload, err := packBytes(op, arg{"x", x}, arg{"y", y}, arg{"w", w}, arg{"h", h})
	if err != nil {
		return nil, err
	}
	x2, err := e.corner(op, "x+w", x+w)
	if err != nil {
		return nil, err
	}
	y2, err := e.corner(op, "y+h", y+h)
	if err != nil {
		return nil, err
	}
	return []byte{payload[0], payload[1], x2, y2}, nil
}

func (e Encoder) corner(op, field string, v int) (byte, error) {
	if v <= maxByte {
		return byte(v), nil
	}
	switch e.overflow {
	case OverflowWrap:
		return byte(v & 0xFF), nil
	case OverflowClamp:
		return maxByte, nil
	default:
		return 0, rangeError(op, field, v, 0, maxByte)
	}
}

// Box draws a filled rectangle at (x, y) of size (w, h).
func (e Encoder) Box(x, y, w, h int) (Command, error) {
	payload, err := e.corners("Box", x, y, w, h)
	if err != nil {
		return Command{}, err
	}
	return newCommand(mnFillRect, payload, true), nil
}

// BoxFrame draws the outline of a rectangle at (x, y) of size (w, h).
func (e Encoder) BoxFrame(x, y, w, h int) (Command, error) {
	payload, err := e.corners("BoxFrame", x, y, w, h)
	if err != nil {
		return Command{}, err
	}
	return newCommand(mnFrameRect, payload, true), nil
}

// Circle draws a filled circle centred at (x, y) with radius r.
func (Encoder) Circle(x, y, r int) (Command, error) {
	return encode(mnCircle, "Circle", arg{"x", x}, arg{"y", y}, arg{"r", r}, arg{"fill", 1})
}

// CircleFrame draws the outline of a circle centred at (x, y) with radius r.
func (Encoder) CircleFrame(x, y, r int) (Command, error) {
	return encode(mnCircle, "CircleFrame", arg{"x", x}, arg{"y", y}, arg{"r", r}, arg{"fill", 0})
}

// Pixel sets the pixel at (x, y).
func (Encoder) Pixel(x, y int) (Command, error) {
	return encode(mnPixel, "Pixel", arg{"x", x}, arg{"y", y})
}

// LinePattern sets the dash pattern used by line draws; each bit is one pixel.
func (Encoder) LinePattern(pattern int) (Command, error) {
	return encode(mnLinePattern, "LinePattern", arg{"pattern", pattern})
}

// Position sets the start point for LineTo.
func (Encoder) Position(x, y int) (Command, error) {
	return encode(mnLinePosition, "Position", arg{"x", x}, arg{"y", y})
}

// LineTo draws from the current position to (x, y).
func (Encoder) LineTo(x, y int) (Command, error) {
	return encode(mnLineTo, "LineTo", arg{"x", x}, arg{"y", y})
}

// Line draws from (x, y) to (x1, y1).
func (Encoder) Line(x, y, x1, y1 int) (Command, error) {
	return encode(mnLine, "Line", arg{"x", x}, arg{"y", y}, arg{"x1", x1}, arg{"y1", y1})
}

// Rotation sets the orientation for subsequent draws.
func (Encoder) Rotation(r Rotation) (Command, error) {
	if r > Rotate270 {
		return Command{}, rangeError("Rotation", "rotation", int(r), int(Rotate0), int(Rotate270))
	}
	return newCommand(mnRotation, []byte{byte(r)}, true), nil
}

// MoveArea moves the (w, h) region at (x, y) by (xoff, yoff).
func (Encoder) MoveArea(x, y, w, h, xoff, yoff int) (Command, error) {
	return encode(mnMoveArea, "MoveArea",
		arg{"x", x}, arg{"y", y}, arg{"w", w}, arg{"h", h}, arg{"xoff", xoff}, arg{"yoff", yoff})
}

// Bitmap blits a row-packed raster of size (w, h) at (x, y). The controller
// takes the payload length from the header, so len(data) must equal
// ceil(w/8)*h and no terminator follows.
func (Encoder) Bitmap(x, y, w, h int, data []byte) (Command, error) {
	header, err := packBytes("Bitmap", arg{"x", x}, arg{"y", y}, arg{"w", w}, arg{"h", h})
	if err != nil {
		return Command{}, err
	}
	if err := validateBitmap("Bitmap", w, h, len(data)); err != nil {
		return Command{}, err
	}
	payload := make([]byte, 0, len(header)+len(data))
	payload = append(payload, header...)
	payload = append(payload, data...)
	return newCommand(mnBitmap, payload, false), nil
}

// Image blits b at (x, y).
func (e Encoder) Image(x, y int, b *Bitmap) (Command, error) {
	if b == nil {
		return Command{}, &ValidationError{
			Err:    ErrInvalidArgument,
			Op:     "Image",
			Field:  "bitmap",
			Reason: "nil bitmap",
		}
	}
	return e.Bitmap(x, y, b.Width, b.Height, b.Data)
}

// Mode sets the drawing mode. The mode character follows the mnemonic
// directly with no terminator.
func (Encoder) Mode(m Mode) (Command, error) {
	if !m.Valid() {
		return Command{}, &ValidationError{
			Err:    ErrInvalidArgument,
			Op:     "Mode",
			Field:  "mode",
			Value:  int(m),
			Reason: fmt.Sprintf("%v is not one of normal(!), xor(^), and(&), copy(C)", m),
		}
	}
	return newCommand(mnMode, []byte{byte(m)}, false), nil
}
