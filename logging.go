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
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// sessionLogger scopes base to one channel. Per-command debug lines are
// kept only when verbose is set.
func sessionLogger(base zerolog.Logger, verbose bool, port string) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if base.GetLevel() > level {
		level = base.GetLevel()
	}
	return base.Level(level).With().Str("port", port).Logger()
}

// SessionLog is a rotating log file for one driver run.
type SessionLog struct {
	file *lumberjack.Logger
	path string
}

// OpenSessionLog opens a session log at path. An empty path creates
// digole_<timestamp>.log in the current directory.
func OpenSessionLog(path string) (*SessionLog, error) {
	if path == "" {
		path = fmt.Sprintf("digole_%s.log", time.Now().Format("20060102_150405"))
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 2,
	}
	if err := writeSessionHeader(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to create session log: %w", err)
	}

	return &SessionLog{file: file, path: path}, nil
}

// Path returns the log file path for display to the user.
func (s *SessionLog) Path() string {
	return s.path
}

// Logger returns a logger writing to the session file, and to stderr when
// console is set.
func (s *SessionLog) Logger(console bool) zerolog.Logger {
	var w io.Writer = s.file
	if console {
		w = zerolog.MultiLevelWriter(s.file, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05.000",
		})
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Close writes the session footer and closes the file.
func (s *SessionLog) Close() error {
	_, _ = fmt.Fprintf(s.file, "\n%s === Session ended ===\n", time.Now().Format("15:04:05.000"))
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("failed to close session log: %w", err)
	}
	return nil
}

// writeSessionHeader writes metadata about the run to the log file.
func writeSessionHeader(w io.Writer) error {
	var b strings.Builder
	b.WriteString("=== Digole Session Log ===\n")
	_, _ = fmt.Fprintf(&b, "Started: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&b, "PID: %d\n", os.Getpid())
	_, _ = fmt.Fprintf(&b, "OS: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(&b, "Go Version: %s\n", runtime.Version())
	if exe, err := os.Executable(); err == nil {
		_, _ = fmt.Fprintf(&b, "Executable: %s\n", exe)
	}
	_, _ = fmt.Fprintf(&b, "Command Line: %s\n", strings.Join(os.Args, " "))
	b.WriteString("==========================\n\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write session header: %w", err)
	}
	return nil
}
