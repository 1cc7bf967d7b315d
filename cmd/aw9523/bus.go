package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/aw9523"
	"github.com/mklimuk/aw9523/adapter"
	"github.com/mklimuk/aw9523/i2c"
)

const (
	adapterPeriph  = "periph"
	adapterMCP2221 = "mcp2221"
	adapterNanoPi  = "nanopi"
)

func busFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Usage:   "bus adapter: periph, mcp2221 or nanopi",
			Value:   adapterPeriph,
		},
		&cli.StringFlag{
			Name:  "bus",
			Usage: "periph bus name (e.g. /dev/i2c-1, empty for the first one)",
		},
		&cli.IntFlag{
			Name:  "bus-nr",
			Usage: "gobot i2c bus number",
			Value: 0,
		},
		mcp2221IDFlag(),
		&cli.StringFlag{
			Name:  "addr",
			Usage: "7-bit device address in hex",
			Value: "58",
		},
		&cli.BoolFlag{
			Name:  "best-effort",
			Usage: "keep going when an init register write fails",
		},
		verboseFlag(),
	}
}

func mcp2221IDFlag() cli.Flag {
	return &cli.IntFlag{Name: "id", Usage: "MCP2221 index as listed by usb detect"}
}

// mcp2221ID is the bridge index given by --id; none selects the only bridge attached.
func mcp2221ID(c *cli.Context) []int {
	if c.IsSet("id") {
		return []int{c.Int("id")}
	}
	return nil
}

func newMCP2221(c *cli.Context) *adapter.MCP2221 {
	return adapter.NewMCP2221(mcp2221ID(c)...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func openBus(c *cli.Context) (aw9523.I2CBus, io.Closer, error) {
	switch c.String("adapter") {
	case adapterPeriph:
		bus, err := i2c.NewGenericBus(c.String("bus"))
		if err != nil {
			return nil, nil, err
		}
		return bus, bus, nil
	case adapterMCP2221:
		a := newMCP2221(c)
		err := a.Init()
		if err != nil {
			return nil, nil, err
		}
		return a, nopCloser{}, nil
	case adapterNanoPi:
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		return adapter.NewGobot(npi, c.Int("bus-nr")), closerFunc(npi.I2cBusAdaptor.Finalize), nil
	default:
		return nil, nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
	}
}

func parseByte(s string) (byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	if err != nil {
		return 0, err
	}
	if len(b) != 1 {
		return 0, fmt.Errorf("expected a single byte, got %d", len(b))
	}
	return b[0], nil
}

// openDevice returns the chip driver bound to the selected adapter and address.
func openDevice(c *cli.Context) (context.Context, *aw9523.AW9523, io.Closer, error) {
	ctx := busContext(c)
	addr, err := parseByte(c.String("addr"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not decode address: %w", err)
	}
	bus, closer, err := openBus(c)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("adapter initialization error: %w", err)
	}
	iface, err := aw9523.NewI2CCustomAddress(bus, addr)
	if err != nil {
		_ = closer.Close()
		return nil, nil, nil, err
	}
	var opts []aw9523.Option
	if c.Bool("best-effort") {
		opts = append(opts, aw9523.WithBestEffort())
	}
	return ctx, aw9523.New(iface, opts...), closer, nil
}
