package adapter

import (
	"context"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/i2c"

	"github.com/mklimuk/aw9523"
)

var _ aw9523.I2CBus = &Gobot{}

// i2cDriver is the subset of *i2c.GenericDriver used by the bus.
type i2cDriver interface {
	Start() error
	Halt() error
	Write(data []byte) error
	Read(data []byte) error
}

// Gobot drives an I2C bus through any gobot platform exposing an i2c.Connector
// (e.g. nanopi.NewNeoAdaptor()). Gobot has no combined transaction, so WriteReadAddr is
// a write followed by a separate read.
type Gobot struct {
	bus       int
	newDriver func(address byte) i2cDriver
}

func NewGobot(conn i2c.Connector, bus int) *Gobot {
	return &Gobot{
		bus: bus,
		newDriver: func(address byte) i2cDriver {
			return i2c.NewGenericDriver(conn, "aw9523", int(address), func(c i2c.Config) {
				c.SetBus(bus)
			})
		},
	}
}

func (g *Gobot) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	return g.with(address, func(d i2cDriver) error {
		err := d.Write(buffer)
		if err != nil {
			return fmt.Errorf("write to %x failed: %w", address, err)
		}
		return nil
	})
}

func (g *Gobot) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	return g.with(address, func(d i2cDriver) error {
		err := d.Read(buffer)
		if err != nil {
			return fmt.Errorf("read from %x failed: %w", address, err)
		}
		return nil
	})
}

func (g *Gobot) WriteReadAddr(ctx context.Context, address byte, w, r []byte) error {
	return g.with(address, func(d i2cDriver) error {
		err := d.Write(w)
		if err != nil {
			return fmt.Errorf("write to %x failed: %w", address, err)
		}
		err = d.Read(r)
		if err != nil {
			return fmt.Errorf("read from %x failed: %w", address, err)
		}
		return nil
	})
}

func (g *Gobot) with(address byte, fn func(d i2cDriver) error) error {
	d := g.newDriver(address)
	err := d.Start()
	if err != nil {
		return fmt.Errorf("start error on bus %d addr %#x: %w", g.bus, address, err)
	}
	defer func() { _ = d.Halt() }()
	return fn(d)
}
