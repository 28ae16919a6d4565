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
	"bytes"
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func byteArg() *rapid.Generator[int] {
	return rapid.IntRange(0, 255)
}

// anyArg covers the valid range plus values either side of it.
func anyArg() *rapid.Generator[int] {
	return rapid.IntRange(-300, 600)
}

func overflowPolicy() *rapid.Generator[CornerOverflow] {
	return rapid.SampledFrom([]CornerOverflow{OverflowReject, OverflowWrap, OverflowClamp})
}

// TestPropertyEncodeDeterministic verifies equal inputs give identical bytes.
func TestPropertyEncodeDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		policy := overflowPolicy().Draw(t, "policy")
		x := byteArg().Draw(t, "x")
		y := byteArg().Draw(t, "y")
		w := byteArg().Draw(t, "w")
		h := byteArg().Draw(t, "h")

		a, errA := NewEncoder(policy).BoxFrame(x, y, w, h)
		b, errB := NewEncoder(policy).BoxFrame(x, y, w, h)
		if (errA == nil) != (errB == nil) {
			t.Fatalf("errors differ: %v vs %v", errA, errB)
		}
		if !bytes.Equal(a.Bytes(), b.Bytes()) {
			t.Fatalf("bytes differ: %q vs %q", a.Bytes(), b.Bytes())
		}
	})
}

// TestPropertyByteArgsRangeChecked verifies a pixel encodes iff both
// coordinates fit in a byte, and then carries them verbatim.
func TestPropertyByteArgsRangeChecked(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		x := anyArg().Draw(t, "x")
		y := anyArg().Draw(t, "y")

		cmd, err := NewEncoder(OverflowReject).Pixel(x, y)
		inRange := x >= 0 && x <= 255 && y >= 0 && y <= 255
		if !inRange {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("Pixel(%d, %d) = %v, want ErrInvalidArgument", x, y, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Pixel(%d, %d) failed: %v", x, y, err)
		}
		want := []byte{'D', 'P', byte(x), byte(y), '\n'}
		if !bytes.Equal(cmd.Bytes(), want) {
			t.Fatalf("Pixel(%d, %d) = %q, want %q", x, y, cmd.Bytes(), want)
		}
	})
}

// TestPropertyCornerPolicy verifies the far corner under each overflow policy.
func TestPropertyCornerPolicy(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		policy := overflowPolicy().Draw(t, "policy")
		x := byteArg().Draw(t, "x")
		y := byteArg().Draw(t, "y")
		w := byteArg().Draw(t, "w")
		h := byteArg().Draw(t, "h")

		cmd, err := NewEncoder(policy).Box(x, y, w, h)
		overflows := x+w > 255 || y+h > 255
		if overflows && policy == OverflowReject {
			if !IsValidationError(err) {
				t.Fatalf("Box(%d, %d, %d, %d) = %v, want ValidationError", x, y, w, h, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Box(%d, %d, %d, %d) failed: %v", x, y, w, h, err)
		}

		far := func(v int) byte {
			if v <= 255 {
				return byte(v)
			}
			if policy == OverflowClamp {
				return 255
			}
			return byte(v % 256)
		}
		want := []byte{'F', 'R', byte(x), byte(y), far(x + w), far(y + h), '\n'}
		if !bytes.Equal(cmd.Bytes(), want) {
			t.Fatalf("Box(%d, %d, %d, %d) = %q, want %q", x, y, w, h, cmd.Bytes(), want)
		}
	})
}

// TestPropertyColourRange verifies each channel is accepted iff 0-63.
func TestPropertyColourRange(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.IntRange(-10, 80).Draw(t, "r")
		g := rapid.IntRange(-10, 80).Draw(t, "g")
		b := rapid.IntRange(-10, 80).Draw(t, "b")

		cmd, err := NewEncoder(OverflowReject).SetColour(r, g, b)
		valid := func(v int) bool { return v >= 0 && v <= 63 }
		if !valid(r) || !valid(g) || !valid(b) {
			if !IsValidationError(err) {
				t.Fatalf("SetColour(%d, %d, %d) = %v, want ValidationError", r, g, b, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("SetColour(%d, %d, %d) failed: %v", r, g, b, err)
		}
		if cmd.Terminated() || cmd.Len() != 6 {
			t.Fatalf("SetColour wire = %q", cmd.Bytes())
		}
	})
}

// TestPropertyBitmapLength verifies DIM accepts exactly ceil(w/8)*h data bytes.
func TestPropertyBitmapLength(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(0, 64).Draw(t, "w")
		h := rapid.IntRange(0, 16).Draw(t, "h")
		want := (w + 7) / 8 * h
		n := rapid.IntRange(0, want+8).Draw(t, "n")
		data := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "data")

		cmd, err := NewEncoder(OverflowReject).Bitmap(1, 2, w, h, data)
		if n != want {
			if !errors.Is(err, ErrBitmapSize) {
				t.Fatalf("Bitmap(w=%d, h=%d, %d bytes) = %v, want ErrBitmapSize", w, h, n, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Bitmap(w=%d, h=%d) failed: %v", w, h, err)
		}
		wire := cmd.Bytes()
		if !bytes.HasPrefix(wire, []byte{'D', 'I', 'M', 1, 2, byte(w), byte(h)}) {
			t.Fatalf("bad header %q", wire[:7])
		}
		if !bytes.Equal(wire[7:], data) {
			t.Fatal("payload not carried verbatim")
		}
	})
}

// TestPropertyPackImageRoundTrip verifies At reads back what PackImage wrote.
func TestPropertyPackImageRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(1, 40).Draw(t, "w")
		h := rapid.IntRange(1, 20).Draw(t, "h")
		lit := rapid.SliceOfN(rapid.Bool(), w*h, w*h).Draw(t, "lit")

		img := grayImage(w, h, func(x, y int) bool { return lit[y*w+x] })
		bm, err := PackImage(img)
		if err != nil {
			t.Fatalf("PackImage failed: %v", err)
		}
		if err := bm.Validate(); err != nil {
			t.Fatalf("packed bitmap invalid: %v", err)
		}
		for y := range h {
			for x := range w {
				if bm.At(x, y) != lit[y*w+x] {
					t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, bm.At(x, y), lit[y*w+x])
				}
			}
		}
	})
}
