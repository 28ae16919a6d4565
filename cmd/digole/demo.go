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

package main

import (
	"context"
	"fmt"

	digole "github.com/ZaparooProject/go-digole"
	"golang.org/x/sync/errgroup"
)

// Dimensions of the small test-pattern logo drawn in the top-right corner.
const (
	badgeWidth  = 32
	badgeHeight = 32
)

var badgeData = []byte{
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x01, 0x80, 0x00,
	0x00, 0x02, 0x80, 0x00,
	0x00, 0x07, 0x80, 0x00,
	0x00, 0x08, 0x00, 0x00,
	0x00, 0x30, 0x08, 0x00,
	0x00, 0xc0, 0x02, 0x00,
	0x01, 0x00, 0x01, 0x80,
	0x06, 0x00, 0x00, 0x40,
	0x08, 0x00, 0x00, 0x10,
	0x10, 0x00, 0x00, 0x10,
	0x10, 0x00, 0x00, 0x10,
	0x10, 0x3e, 0xfc, 0x10,
	0x10, 0x3e, 0xfc, 0x10,
	0x10, 0x3e, 0xfc, 0x10,
	0x10, 0x02, 0xc0, 0x10,
	0x10, 0x02, 0xc0, 0x10,
	0x00, 0x02, 0xc0, 0x10,
	0x00, 0x02, 0xc0, 0x10,
	0x00, 0x02, 0xc0, 0x10,
	0x00, 0x02, 0xc0, 0x10,
	0x00, 0x02, 0xc0, 0x10,
	0x18, 0x02, 0xc0, 0x18,
	0x28, 0x00, 0x00, 0x28,
	0x1c, 0x00, 0x00, 0x18,
	0x03, 0x00, 0x00, 0x00,
	0x00, 0xc0, 0x00, 0x00,
	0x00, 0x20, 0x0c, 0x00,
	0x00, 0x08, 0x10, 0x00,
	0x00, 0x06, 0x40, 0x00,
	0x00, 0x01, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// runDemo exercises text, shapes and bitmaps on an initialized display.
func runDemo(ctx context.Context, display *digole.Display) error {
	if err := display.Clear(ctx); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}
	if err := display.SetFont(ctx, digole.Font10); err != nil {
		return fmt.Errorf("set font failed: %w", err)
	}
	if err := display.TextXY(ctx, 0, 1, "go-digole"); err != nil {
		return fmt.Errorf("text failed: %w", err)
	}

	badge, err := digole.NewBitmap(badgeWidth, badgeHeight, badgeData)
	if err != nil {
		return err
	}

	// Each call is one unit on the channel, so the order between the
	// goroutines is not fixed but no command is ever split.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := display.DrawBoxFrame(gctx, 0, 20, 40, 20); err != nil {
			return err
		}
		return display.DrawBox(gctx, 4, 24, 32, 12)
	})
	g.Go(func() error {
		if err := display.DrawCircleFrame(gctx, 60, 40, 12); err != nil {
			return err
		}
		return display.DrawCircle(gctx, 60, 40, 5)
	})
	g.Go(func() error {
		if err := display.DrawLine(gctx, 0, 63, 127, 63); err != nil {
			return err
		}
		return display.DrawImage(gctx, digole.Width-badgeWidth, 0, badge)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("drawing failed: %w", err)
	}

	if err := display.Clear(ctx); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}
	if err := display.BitmapLogo(ctx, (digole.Width-digole.LogoWidth)/2, (digole.Height-digole.LogoHeight)/2); err != nil {
		return fmt.Errorf("logo failed: %w", err)
	}
	return nil
}
