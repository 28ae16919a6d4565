//go:build deadlock

// Package syncutil holds the lock types shared by the display session and
// the mock transport. Building with -tags=deadlock swaps in go-deadlock so a
// stuck sequencer reports the goroutines holding the channel.
package syncutil

import deadlock "github.com/sasha-s/go-deadlock"

// Mutex is a deadlock-detecting mutex.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex is a deadlock-detecting reader/writer mutex.
type RWMutex struct {
	deadlock.RWMutex
}
