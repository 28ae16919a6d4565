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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Commands(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(OverflowReject)
	must := func(c Command, err error) Command {
		t.Helper()
		require.NoError(t, err)
		return c
	}

	tests := []struct {
		name       string
		cmd        Command
		want       string
		terminated bool
	}{
		{name: "clear", cmd: enc.Clear(), want: "CL\n", terminated: true},
		{name: "set font", cmd: must(enc.SetFont(Font10)), want: "SF\x0a\n", terminated: true},
		{name: "colour", cmd: must(enc.SetColour(63, 0, 32)), want: "ESC\x3f\x00\x20"},
		{name: "character", cmd: enc.Character('A'), want: "A"},
		{name: "text", cmd: enc.Text("Hi"), want: "TTHi"},
		{name: "text keeps line feed", cmd: enc.Text("Ready...\n"), want: "TTReady...\n"},
		{name: "text position", cmd: must(enc.TextPosAbs(3, 4)), want: "ETP\x03\x04\n", terminated: true},
		{name: "text offset", cmd: must(enc.TextPosOffset(10, 20)), want: "ETO\x0a\x14\n", terminated: true},
		{name: "text back", cmd: enc.TextPosBack(), want: "ETB\n", terminated: true},
		{name: "next line", cmd: enc.NextTextLine(), want: "TRT\n", terminated: true},
		{name: "box", cmd: must(enc.Box(1, 2, 10, 20)), want: "FR\x01\x02\x0b\x16\n", terminated: true},
		{name: "box frame", cmd: must(enc.BoxFrame(0, 0, 127, 63)), want: "DR\x00\x00\x7f\x3f\n", terminated: true},
		{name: "circle", cmd: must(enc.Circle(64, 32, 10)), want: "CC\x40\x20\x0a\x01\n", terminated: true},
		{name: "circle frame", cmd: must(enc.CircleFrame(64, 32, 10)), want: "CC\x40\x20\x0a\x00\n", terminated: true},
		{name: "pixel", cmd: must(enc.Pixel(5, 7)), want: "DP\x05\x07\n", terminated: true},
		{name: "line pattern", cmd: must(enc.LinePattern(0xaa)), want: "SLP\xaa\n", terminated: true},
		{name: "position", cmd: must(enc.Position(1, 2)), want: "GP\x01\x02\n", terminated: true},
		{name: "line to", cmd: must(enc.LineTo(100, 50)), want: "LT\x64\x32\n", terminated: true},
		{name: "line uses y1", cmd: must(enc.Line(0, 1, 2, 3)), want: "LN\x00\x01\x02\x03\n", terminated: true},
		{name: "rotation", cmd: must(enc.Rotation(Rotate180)), want: "SD\x02\n", terminated: true},
		{name: "move area", cmd: must(enc.MoveArea(1, 2, 3, 4, 5, 6)), want: "MA\x01\x02\x03\x04\x05\x06\n", terminated: true},
		{name: "mode", cmd: must(enc.Mode(ModeXor)), want: "SM^"},
		{name: "bitmap", cmd: must(enc.Bitmap(0, 0, 8, 2, []byte{0xff, 0x81})), want: "DIM\x00\x00\x08\x02\xff\x81"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, []byte(tt.want), tt.cmd.Bytes())
			assert.Equal(t, len(tt.want), tt.cmd.Len())
			assert.Equal(t, tt.terminated, tt.cmd.Terminated())
			assert.False(t, tt.cmd.IsZero())
		})
	}
}

func TestEncoder_RangeErrors(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(OverflowReject)

	tests := []struct {
		encode func() (Command, error)
		name   string
		field  string
	}{
		{name: "negative x", field: "x", encode: func() (Command, error) { return enc.Pixel(-1, 0) }},
		{name: "y above byte", field: "y", encode: func() (Command, error) { return enc.TextPosAbs(0, 256) }},
		{name: "radius above byte", field: "r", encode: func() (Command, error) { return enc.Circle(0, 0, 300) }},
		{name: "line y1", field: "y1", encode: func() (Command, error) { return enc.Line(0, 0, 0, -5) }},
		{name: "colour above 63", field: "g", encode: func() (Command, error) { return enc.SetColour(0, 64, 0) }},
		{name: "pattern", field: "pattern", encode: func() (Command, error) { return enc.LinePattern(256) }},
		{name: "move offset", field: "yoff", encode: func() (Command, error) { return enc.MoveArea(0, 0, 1, 1, 0, 999) }},
		{name: "unknown font", field: "font", encode: func() (Command, error) { return enc.SetFont(Font(7)) }},
		{name: "rotation", field: "rotation", encode: func() (Command, error) { return enc.Rotation(Rotation(4)) }},
		{name: "mode", field: "mode", encode: func() (Command, error) { return enc.Mode(Mode('x')) }},
		{name: "box corner", field: "x+w", encode: func() (Command, error) { return enc.Box(200, 0, 100, 1) }},
		{name: "frame corner", field: "y+h", encode: func() (Command, error) { return enc.BoxFrame(0, 250, 1, 6) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := tt.encode()
			require.Error(t, err)
			assert.True(t, cmd.IsZero())
			require.ErrorIs(t, err, ErrInvalidArgument)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestEncoder_CornerOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		policy  CornerOverflow
		wantErr bool
	}{
		{name: "reject", policy: OverflowReject, wantErr: true},
		{name: "wrap", policy: OverflowWrap, want: "FR\xc8\x0a\x2c\x1e\n"},
		{name: "clamp", policy: OverflowClamp, want: "FR\xc8\x0a\xff\x1e\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// 200+100 = 300 does not fit in a byte; 10+20 does
			cmd, err := NewEncoder(tt.policy).Box(200, 10, 100, 20)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), cmd.Bytes())
		})
	}
}

func TestEncoder_CornerAtLimit(t *testing.T) {
	t.Parallel()

	cmd, err := NewEncoder(OverflowReject).Box(200, 200, 55, 55)
	require.NoError(t, err)
	assert.Equal(t, []byte("FR\xc8\xc8\xff\xff\n"), cmd.Bytes())
}

func TestEncoder_BitmapSize(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(OverflowReject)

	// 9 pixels wide needs 2 bytes per row
	_, err := enc.Bitmap(0, 0, 9, 3, make([]byte, 3))
	require.ErrorIs(t, err, ErrBitmapSize)
	assert.False(t, errors.Is(err, ErrInvalidArgument))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 6, ve.Min)
	assert.Equal(t, 3, ve.Value)

	cmd, err := enc.Bitmap(0, 0, 9, 3, make([]byte, 6))
	require.NoError(t, err)
	assert.Equal(t, 7+6, cmd.Len())
	assert.False(t, cmd.Terminated())

	_, err = enc.Bitmap(0, 0, 256, 1, make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncoder_EmptyBitmap(t *testing.T) {
	t.Parallel()

	cmd, err := NewEncoder(OverflowReject).Bitmap(5, 5, 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("DIM\x05\x05\x00\x00"), cmd.Bytes())
}

func TestEncoder_NilImage(t *testing.T) {
	t.Parallel()

	cmd, err := NewEncoder(OverflowReject).Image(0, 0, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.True(t, cmd.IsZero())

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "bitmap", ve.Field)
}

func TestCommand_BytesIsCopy(t *testing.T) {
	t.Parallel()

	cmd := NewEncoder(OverflowReject).Clear()
	b := cmd.Bytes()
	b[0] = 'X'
	assert.Equal(t, []byte("CL\n"), cmd.Bytes())
}

func TestCommand_Name(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(OverflowReject)
	assert.Equal(t, "CL", enc.Clear().Name())
	assert.Equal(t, Mnemonic("TT"), enc.Text("x").Mnemonic())
	assert.Equal(t, "RAW", enc.Character('x').Name())
	assert.True(t, Command{}.IsZero())
}
