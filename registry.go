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
	"time"

	"github.com/ZaparooProject/go-digole/internal/syncutil"
)

// channelClaim records which session owns a physical channel.
type channelClaim struct {
	since time.Time
}

// channelRegistry enforces one Display per physical channel.
type channelRegistry struct {
	claims map[string]channelClaim
	mu     syncutil.Mutex
}

// global registry instance.
var channels = &channelRegistry{
	claims: make(map[string]channelClaim),
}

func channelKey(t Transport) string {
	return fmt.Sprintf("%s:%s", t.Type(), t.Port())
}

// claim binds key to a new session, failing if another session holds it.
func (r *channelRegistry) claim(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, exists := r.claims[key]; exists {
		return fmt.Errorf("%w: %s (bound since %s)", ErrChannelInUse, key, c.since.Format(time.RFC3339))
	}
	r.claims[key] = channelClaim{since: time.Now()}
	return nil
}

// release frees key for a future session
func (r *channelRegistry) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.claims, key)
}

// held reports whether key is currently bound
func (r *channelRegistry) held(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.claims[key]
	return exists
}
