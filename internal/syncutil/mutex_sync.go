//go:build !deadlock

// Package syncutil holds the lock types shared by the display session and
// the mock transport. The default build uses the sync package directly;
// build with -tags=deadlock to trace lock holders via go-deadlock.
package syncutil

import "sync"

// Mutex is a plain sync.Mutex in the default build.
//
//nolint:gocritic // embedding exposes Lock/Unlock directly
type Mutex struct {
	sync.Mutex
}

// RWMutex is a plain sync.RWMutex in the default build.
//
//nolint:gocritic // embedding exposes the full RWMutex API
type RWMutex struct {
	sync.RWMutex
}
