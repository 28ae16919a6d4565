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

// Mnemonic is the ASCII tag that opens every command on the wire.
type Mnemonic string

// Command mnemonics understood by the Digole controller
const (
	mnClear          Mnemonic = "CL"
	mnSetFont        Mnemonic = "SF"
	mnColour         Mnemonic = "ESC"
	mnText           Mnemonic = "TT"
	mnTextPosAbs     Mnemonic = "ETP"
	mnTextPosOffset  Mnemonic = "ETO"
	mnTextPosBack    Mnemonic = "ETB"
	mnNextTextLine   Mnemonic = "TRT"
	mnFillRect       Mnemonic = "FR"
	mnFrameRect      Mnemonic = "DR"
	mnCircle         Mnemonic = "CC"
	mnPixel          Mnemonic = "DP"
	mnLinePattern    Mnemonic = "SLP"
	mnLinePosition   Mnemonic = "GP"
	mnLineTo         Mnemonic = "LT"
	mnLine           Mnemonic = "LN"
	mnRotation       Mnemonic = "SD"
	mnBitmap         Mnemonic = "DIM"
	mnMoveArea       Mnemonic = "MA"
	mnMode           Mnemonic = "SM"
	mnRawCharacter   Mnemonic = ""
)

const (
	lineFeed      byte = '\n'
	rawCommandTag      = "RAW"
)

// Command is one encoded unit of the wire protocol. A Command is immutable:
// its bytes are fixed at construction and Bytes returns a copy.
type Command struct {
	mnemonic   Mnemonic
	wire       []byte
	terminated bool
}

// newCommand lays out mnemonic + payload (+ LF when terminated).
func newCommand(mn Mnemonic, payload []byte, terminated bool) Command {
	size := len(mn) + len(payload)
	if terminated {
		size++
	}
	wire := make([]byte, 0, size)
	wire = append(wire, mn...)
	wire = append(wire, payload...)
	if terminated {
		wire = append(wire, lineFeed)
	}
	return Command{mnemonic: mn, wire: wire, terminated: terminated}
}

// Mnemonic returns the command family tag.
func (c Command) Mnemonic() Mnemonic {
	return c.mnemonic
}

// Name returns a printable label for logs; raw character writes have no mnemonic.
func (c Command) Name() string {
	if c.mnemonic == mnRawCharacter {
		return rawCommandTag
	}
	return string(c.mnemonic)
}

// Bytes returns a copy of the encoded wire bytes.
func (c Command) Bytes() []byte {
	out := make([]byte, len(c.wire))
	copy(out, c.wire)
	return out
}

// Len returns the number of bytes the command occupies on the wire.
func (c Command) Len() int {
	return len(c.wire)
}

// Terminated reports whether the command ends with a line feed.
func (c Command) Terminated() bool {
	return c.terminated
}

// IsZero reports whether c was never encoded.
func (c Command) IsZero() bool {
	return len(c.wire) == 0
}
