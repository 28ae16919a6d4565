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
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	digole "github.com/ZaparooProject/go-digole"
	"github.com/ZaparooProject/go-digole/detection"
	"github.com/ZaparooProject/go-digole/transport/i2c"
	"github.com/ZaparooProject/go-digole/transport/spi"
	"github.com/ZaparooProject/go-digole/transport/uart"
	"github.com/rs/zerolog"
)

type options struct {
	configPath string
	devicePath string
	transport  string
	logPath    string
	baud       int
	list       bool
	debug      bool
	sessionLog bool
}

// Package-level flag variables
var (
	flagConfig     string
	flagDevicePath string
	flagTransport  string
	flagLogPath    string
	flagBaud       int
	flagList       bool
	flagDebug      bool
	flagSessionLog bool
)

func init() {
	flag.StringVar(&flagConfig, "config", "", "TOML config file")
	flag.StringVar(&flagDevicePath, "device", "", "Serial port, I2C bus or SPI port (auto-detect UART if empty)")
	flag.StringVar(&flagTransport, "transport", "", "Transport: uart, i2c or spi (overrides config)")
	flag.IntVar(&flagBaud, "baud", 0, "UART baud rate (overrides config)")
	flag.BoolVar(&flagList, "list", false, "List candidate serial ports and exit")
	flag.BoolVar(&flagDebug, "debug", false, "Log every command sent to the display")
	flag.BoolVar(&flagSessionLog, "session-log", false, "Write a session log file")
	flag.StringVar(&flagLogPath, "log", "", "Session log path (default digole_<timestamp>.log)")
}

func parseOptions() *options {
	return &options{
		configPath: flagConfig,
		devicePath: flagDevicePath,
		transport:  flagTransport,
		baud:       flagBaud,
		list:       flagList,
		debug:      flagDebug,
		sessionLog: flagSessionLog || flagLogPath != "",
		logPath:    flagLogPath,
	}
}

// loadConfig merges the config file (if any) with command-line overrides.
func loadConfig(opts *options) (digole.Config, error) {
	cfg := digole.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := digole.LoadConfig(opts.configPath)
		if err != nil {
			return digole.Config{}, err
		}
		cfg = loaded
	}

	if opts.devicePath != "" {
		cfg.Device = opts.devicePath
	}
	if opts.transport != "" {
		cfg.Transport = opts.transport
	}
	if opts.baud != 0 {
		cfg.BaudRate = opts.baud
	}
	if opts.debug {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return digole.Config{}, err
	}
	return cfg, nil
}

// autoDetectPort picks the first candidate serial port.
func autoDetectPort() (string, error) {
	ports, err := detection.ListPorts(detection.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("auto-detect failed: %w", err)
	}
	return ports[0].Path, nil
}

// openTransport creates the transport selected by cfg.
func openTransport(cfg digole.Config) (digole.Transport, error) {
	switch digole.TransportType(cfg.Transport) {
	case digole.TransportUART, "":
		path := cfg.Device
		if path == "" {
			detected, err := autoDetectPort()
			if err != nil {
				return nil, err
			}
			path = detected
		}
		transport, err := uart.NewWithBaud(path, cfg.BaudRate)
		if err != nil {
			return nil, fmt.Errorf("failed to create UART transport: %w", err)
		}
		return transport, nil
	case digole.TransportI2C:
		if cfg.Device == "" {
			return nil, errors.New("i2c transport needs -device, e.g. /dev/i2c-1")
		}
		addr := cfg.I2CAddress
		if strings.Contains(cfg.Device, ":") {
			addr = 0 // address given in the device path
		}
		transport, err := i2c.New(cfg.Device, i2c.Options{
			Addr:           addr,
			BytesPerSecond: cfg.PaceBytesPerSecond,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create I2C transport: %w", err)
		}
		return transport, nil
	case digole.TransportSPI:
		if cfg.Device == "" {
			return nil, errors.New("spi transport needs -device, e.g. /dev/spidev0.0")
		}
		transport, err := spi.New(cfg.Device, spi.Options{BytesPerSecond: cfg.PaceBytesPerSecond})
		if err != nil {
			return nil, fmt.Errorf("failed to create SPI transport: %w", err)
		}
		return transport, nil
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Transport)
	}
}

func listPorts() error {
	ports, err := detection.ListPorts(detection.DefaultOptions())
	if err != nil {
		return err
	}
	for _, p := range ports {
		_, _ = fmt.Println(p.String())
	}
	return nil
}

func newLogger(opts *options) (zerolog.Logger, func(), error) {
	if !opts.sessionLog {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
			With().Timestamp().Logger()
		return logger, func() {}, nil
	}

	sessionLog, err := digole.OpenSessionLog(opts.logPath)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	_, _ = fmt.Printf("Session log: %s\n", sessionLog.Path())
	return sessionLog.Logger(true), func() {
		if err := sessionLog.Close(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to close session log: %v\n", err)
		}
	}, nil
}

func run(ctx context.Context, opts *options) error {
	if opts.list {
		return listPorts()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	transport, err := openTransport(cfg)
	if err != nil {
		return err
	}

	display, err := digole.New(transport, digole.WithConfig(cfg), digole.WithLogger(logger))
	if err != nil {
		_ = transport.Close()
		return fmt.Errorf("failed to start display session: %w", err)
	}
	defer func() {
		if err := display.Close(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to close display: %v\n", err)
		}
	}()

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := display.Wait(waitCtx); err != nil {
		return fmt.Errorf("display did not become ready: %w", err)
	}

	return demoError(runDemo(ctx, display))
}

var errDisplayDisconnected = errors.New("display disconnected")

// demoError marks failures after which nothing more can reach the display.
func demoError(err error) error {
	if err == nil {
		return nil
	}
	if digole.IsFatal(err) {
		return fmt.Errorf("%w: %w", errDisplayDisconnected, err)
	}
	return fmt.Errorf("demo failed: %w", err)
}

func main() {
	flag.Parse()
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	opts := parseOptions()

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		_, _ = fmt.Print("\nShutting down...\n")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		if errors.Is(err, errDisplayDisconnected) {
			_, _ = fmt.Fprintln(os.Stderr, "Display disconnected. Check the cable and run again.")
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
