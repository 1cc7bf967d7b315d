package aw9523

import (
	"context"
	"fmt"
	"log/slog"
)

// AW9523 represents an Awinic AW9523B 16-bit I2C GPIO expander with LED driver.
// See: https://cdn-shop.adafruit.com/product-files/4886/AW9523+English+Datasheet.pdf
//
// Usage: wrap a bus with NewI2C, instantiate with New, then call Init(ctx) once at startup.
type AW9523 struct {
	transport  Transport
	bestEffort bool
}

type Config struct {
	BestEffort bool
}

type Option func(*Config)

// WithBestEffort makes Init attempt every register write and report success regardless of
// individual failures, which are only logged.
func WithBestEffort() Option {
	return func(c *Config) {
		c.BestEffort = true
	}
}

// New takes ownership of the transport. No bus traffic happens until Init.
func New(t Transport, opts ...Option) *AW9523 {
	config := &Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &AW9523{transport: t, bestEffort: config.BestEffort}
}

// Transport returns the transport owned by the driver.
func (d *AW9523) Transport() Transport {
	return d.transport
}

// Init writes the six configuration registers in order. By default it stops at the first
// failed write and returns it; with WithBestEffort it always returns nil.
func (d *AW9523) Init(ctx context.Context) error {
	for _, cmd := range initSequence {
		err := d.transport.SendCommands(ctx, cmd)
		if err == nil {
			continue
		}
		if d.bestEffort {
			slog.Warn("aw9523: init register write failed", "reg", fmt.Sprintf("%#02x", cmd[0]), "error", err)
			continue
		}
		return fmt.Errorf("aw9523: could not initialize reg %#02x: %w", cmd[0], err)
	}
	slog.Debug("aw9523: initialized", "writes", len(initSequence), "bestEffort", d.bestEffort)
	return nil
}

func (d *AW9523) WriteRegister(ctx context.Context, reg, value byte) error {
	slog.Debug("aw9523: register write", "reg", fmt.Sprintf("%#02x", reg), "value", fmt.Sprintf("%#08b", value))
	err := d.transport.SendCommands(ctx, Register(reg, value))
	if err != nil {
		return fmt.Errorf("aw9523: could not write reg %#02x: %w", reg, err)
	}
	return nil
}

// Reset restores every register to its power-on value.
func (d *AW9523) Reset(ctx context.Context) error {
	return d.WriteRegister(ctx, RegSoftReset, softResetValue)
}

func (d *AW9523) ReadRegister(ctx context.Context, reg byte) (byte, error) {
	r, ok := d.transport.(RegisterReader)
	if !ok {
		return 0, newError(NotSupported, "read register", fmt.Errorf("transport %T cannot read registers", d.transport))
	}
	val, err := r.ReadRegister(ctx, reg)
	if err != nil {
		return 0, fmt.Errorf("aw9523: could not read reg %#02x: %w", reg, err)
	}
	return val, nil
}

// ChipID reads the ID register (0x23 on a genuine part).
func (d *AW9523) ChipID(ctx context.Context) (byte, error) {
	return d.ReadRegister(ctx, RegID)
}

// Verify checks that an AW9523 answers on the transport.
func (d *AW9523) Verify(ctx context.Context) error {
	id, err := d.ChipID(ctx)
	if err != nil {
		return err
	}
	if id != chipID {
		return newError(NotSupported, "verify", fmt.Errorf("unexpected chip id %#02x, expected %#02x", id, chipID))
	}
	return nil
}
