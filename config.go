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
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// DefaultReadyMessage is written after the clear during initialization.
const DefaultReadyMessage = "Ready...\n"

// Config holds the settings for a display session and the transport that
// backs it. It can be loaded from a TOML file.
type Config struct {
	// ReadyMessage is the text written once the screen is cleared at startup
	ReadyMessage string `toml:"ready_message"`
	// CornerOverflow is the rectangle overflow policy: reject, wrap or clamp
	CornerOverflow string `toml:"corner_overflow" validate:"omitempty,oneof=reject wrap clamp"`
	// Transport selects the backend: uart, i2c or spi
	Transport string `toml:"transport" validate:"omitempty,oneof=uart i2c spi"`
	// Device is the serial port, I2C bus or SPI port name
	Device string `toml:"device"`
	// BaudRate for the UART backend
	BaudRate int `toml:"baud_rate" validate:"omitempty,oneof=9600 19200 38400 57600 115200"`
	// QueueDepth bounds the number of operations waiting for the channel
	QueueDepth int `toml:"queue_depth" validate:"gte=1,lte=4096"`
	// I2CAddress is the controller's 7-bit bus address
	I2CAddress uint16 `toml:"i2c_address" validate:"omitempty,lte=127"`
	// PaceBytesPerSecond limits I2C/SPI throughput; 0 disables pacing
	PaceBytesPerSecond int `toml:"pace_bytes_per_second" validate:"gte=0"`
	// Verbose logs every command sent to the controller
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the settings of the reference hardware
func DefaultConfig() Config {
	return Config{
		ReadyMessage:   DefaultReadyMessage,
		CornerOverflow: OverflowReject.String(),
		Transport:      string(TransportUART),
		BaudRate:       9600,
		QueueDepth:     64,
		I2CAddress:     0x27,
	}
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s: %w", strings.Join(msgs, "; "), ErrInvalidArgument)
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Overflow returns the parsed corner overflow policy.
func (c *Config) Overflow() (CornerOverflow, error) {
	return ParseCornerOverflow(c.CornerOverflow)
}

// ParseConfig decodes TOML on top of the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}
