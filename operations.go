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

import "context"

/*---- Text ----*/

// Clear clears the screen
func (d *Display) Clear(ctx context.Context) error {
	return d.Submit(ctx, d.enc.Clear())
}

// SetFont selects the font for subsequent text (0, 6, 10, 18, 51, 120, 123)
func (d *Display) SetFont(ctx context.Context, f Font) error {
	cmd, err := d.enc.SetFont(f)
	return d.submitEncoded(ctx, cmd, err)
}

// SetColour sets the draw colour; each channel is 0-63, not 0-255
func (d *Display) SetColour(ctx context.Context, r, g, b int) error {
	cmd, err := d.enc.SetColour(r, g, b)
	return d.submitEncoded(ctx, cmd, err)
}

// Character writes c at the text cursor
func (d *Display) Character(ctx context.Context, c byte) error {
	return d.Submit(ctx, d.enc.Character(c))
}

// Text writes s at the text cursor
func (d *Display) Text(ctx context.Context, s string) error {
	return d.Submit(ctx, d.enc.Text(s))
}

// TextXY moves the text cursor to (x, y) and writes s. No other operation
// can reach the display between the two writes.
func (d *Display) TextXY(ctx context.Context, x, y int, s string) error {
	pos, err := d.enc.TextPosAbs(x, y)
	if err != nil {
		return err
	}
	return d.SubmitSequence(ctx, []Command{pos, d.enc.Text(s)})
}

// SetTextPosAbs moves the text cursor to (x, y)
func (d *Display) SetTextPosAbs(ctx context.Context, x, y int) error {
	cmd, err := d.enc.TextPosAbs(x, y)
	return d.submitEncoded(ctx, cmd, err)
}

// SetTextPosOffset offsets subsequent text by (xoff, yoff)
func (d *Display) SetTextPosOffset(ctx context.Context, xoff, yoff int) error {
	cmd, err := d.enc.TextPosOffset(xoff, yoff)
	return d.submitEncoded(ctx, cmd, err)
}

// SetTextPosBack resets the text offset
func (d *Display) SetTextPosBack(ctx context.Context) error {
	return d.Submit(ctx, d.enc.TextPosBack())
}

// NextTextLine starts the next text draw on a new line
func (d *Display) NextTextLine(ctx context.Context) error {
	return d.Submit(ctx, d.enc.NextTextLine())
}

/*---- Drawing ----*/

// DrawBox draws a filled rectangle at (x, y) of size (w, h)
func (d *Display) DrawBox(ctx context.Context, x, y, w, h int) error {
	cmd, err := d.enc.Box(x, y, w, h)
	return d.submitEncoded(ctx, cmd, err)
}

// DrawBoxFrame draws a rectangle outline at (x, y) of size (w, h)
func (d *Display) DrawBoxFrame(ctx context.Context, x, y, w, h int) error {
	cmd, err := d.enc.BoxFrame(x, y, w, h)
	return d.submitEncoded(ctx, cmd, err)
}

// DrawCircle draws a filled circle at (x, y) with radius r
func (d *Display) DrawCircle(ctx context.Context, x, y, r int) error {
	cmd, err := d.enc.Circle(x, y, r)
	return d.submitEncoded(ctx, cmd, err)
}

// DrawCircleFrame draws a circle outline at (x, y) with radius r
func (d *Display) DrawCircleFrame(ctx context.Context, x, y, r int) error {
	cmd, err := d.enc.CircleFrame(x, y, r)
	return d.submitEncoded(ctx, cmd, err)
}

// DrawPixel sets the pixel at (x, y)
func (d *Display) DrawPixel(ctx context.Context, x, y int) error {
	cmd, err := d.enc.Pixel(x, y)
	return d.submitEncoded(ctx, cmd, err)
}

// SetLinePattern sets the line pattern bit field
func (d *Display) SetLinePattern(ctx context.Context, pattern int) error {
	cmd, err := d.enc.LinePattern(pattern)
	return d.submitEncoded(ctx, cmd, err)
}

// SetPosition begins line drawing from (x, y)
func (d *Display) SetPosition(ctx context.Context, x, y int) error {
	cmd, err := d.enc.Position(x, y)
	return d.submitEncoded(ctx, cmd, err)
}

// DrawLineTo draws a line from the current position to (x, y)
func (d *Display) DrawLineTo(ctx context.Context, x, y int) error {
	cmd, err := d.enc.LineTo(x, y)
	return d.submitEncoded(ctx, cmd, err)
}

// DrawLine draws a line from (x, y) to (x1, y1)
func (d *Display) DrawLine(ctx context.Context, x, y, x1, y1 int) error {
	cmd, err := d.enc.Line(x, y, x1, y1)
	return d.submitEncoded(ctx, cmd, err)
}

// SetRotation sets the rotation for subsequent draws
func (d *Display) SetRotation(ctx context.Context, r Rotation) error {
	cmd, err := d.enc.Rotation(r)
	return d.submitEncoded(ctx, cmd, err)
}

// SetRotation0 sets the rotation for subsequent draws to 0 degrees
func (d *Display) SetRotation0(ctx context.Context) error {
	return d.SetRotation(ctx, Rotate0)
}

// SetRotation90 sets the rotation for subsequent draws to 90 degrees
func (d *Display) SetRotation90(ctx context.Context) error {
	return d.SetRotation(ctx, Rotate90)
}

// SetRotation180 sets the rotation for subsequent draws to 180 degrees
func (d *Display) SetRotation180(ctx context.Context) error {
	return d.SetRotation(ctx, Rotate180)
}

// SetRotation270 sets the rotation for subsequent draws to 270 degrees
func (d *Display) SetRotation270(ctx context.Context) error {
	return d.SetRotation(ctx, Rotate270)
}

// MoveArea moves the (w, h) region at (x, y) by (xoff, yoff)
func (d *Display) MoveArea(ctx context.Context, x, y, w, h, xoff, yoff int) error {
	cmd, err := d.enc.MoveArea(x, y, w, h, xoff, yoff)
	return d.submitEncoded(ctx, cmd, err)
}

// SetMode sets the drawing mode
func (d *Display) SetMode(ctx context.Context, m Mode) error {
	cmd, err := d.enc.Mode(m)
	return d.submitEncoded(ctx, cmd, err)
}

/*---- Bitmaps ----*/

// Bitmap draws the row-packed raster data of size (w, h) at (x, y).
// len(data) must be ceil(w/8)*h.
func (d *Display) Bitmap(ctx context.Context, x, y, w, h int, data []byte) error {
	cmd, err := d.enc.Bitmap(x, y, w, h, data)
	return d.submitEncoded(ctx, cmd, err)
}

// DrawImage draws b at (x, y)
func (d *Display) DrawImage(ctx context.Context, x, y int, b *Bitmap) error {
	cmd, err := d.enc.Image(x, y, b)
	return d.submitEncoded(ctx, cmd, err)
}

// BitmapLogo draws the built-in 50x50 logo at (x, y)
func (d *Display) BitmapLogo(ctx context.Context, x, y int) error {
	return d.DrawImage(ctx, x, y, Logo())
}
