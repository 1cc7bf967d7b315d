package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/aw9523"
	"github.com/mklimuk/aw9523/cmd/aw9523/console"
)

const commandTimeout = 5 * time.Second

var initCmd = cli.Command{
	Name:   "init",
	Usage:  "write the board configuration registers",
	Flags:  busFlags(),
	Before: setupLogging,
	Action: func(c *cli.Context) error {
		ctx, dev, closer, err := openDevice(c)
		if err != nil {
			return console.Fail("could not open expander", err)
		}
		defer closer.Close()
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		if c.Bool("best-effort") {
			console.Warnf("best-effort mode: failed register writes are only logged")
		}
		for _, cmd := range aw9523.InitSequence() {
			console.Debugf("reg %s <- %s", console.Reg(cmd[0]), console.Bits(cmd[1]))
		}
		err = dev.Init(ctx)
		if err != nil {
			return console.Fail("could not initialize expander", err)
		}
		console.PInfof(console.PictoCheck, "expander initialized")
		return nil
	},
}

var writeCmd = cli.Command{
	Name:      "write",
	Usage:     "write a single register",
	ArgsUsage: "<reg> <value>",
	Flags:     busFlags(),
	Before:    setupLogging,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return console.Exit(console.ExitUsage, "expected 2 arguments, got %d", c.NArg())
		}
		reg, err := parseByte(c.Args().Get(0))
		if err != nil {
			return console.Exit(console.ExitUsage, "could not decode register: %v", err)
		}
		value, err := parseByte(c.Args().Get(1))
		if err != nil {
			return console.Exit(console.ExitUsage, "could not decode value: %v", err)
		}
		ctx, dev, closer, err := openDevice(c)
		if err != nil {
			return console.Fail("could not open expander", err)
		}
		defer closer.Close()
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		err = dev.WriteRegister(ctx, reg, value)
		if err != nil {
			return console.Fail("could not write register", err)
		}
		console.PInfof(console.PictoPin, "wrote %s to %s", console.Bits(value), console.Reg(reg))
		return nil
	},
}

var readCmd = cli.Command{
	Name:      "read",
	Usage:     "read a single register",
	ArgsUsage: "<reg>",
	Flags:     busFlags(),
	Before:    setupLogging,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return console.Exit(console.ExitUsage, "expected 1 argument, got %d", c.NArg())
		}
		reg, err := parseByte(c.Args().Get(0))
		if err != nil {
			return console.Exit(console.ExitUsage, "could not decode register: %v", err)
		}
		ctx, dev, closer, err := openDevice(c)
		if err != nil {
			return console.Fail("could not open expander", err)
		}
		defer closer.Close()
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		value, err := dev.ReadRegister(ctx, reg)
		if err != nil {
			return console.Fail("could not read register", err)
		}
		console.Printf("%s: %s\n", console.Reg(reg), console.Bits(value))
		return nil
	},
}

var idCmd = cli.Command{
	Name:   "id",
	Usage:  "read and check the chip id",
	Flags:  busFlags(),
	Before: setupLogging,
	Action: func(c *cli.Context) error {
		ctx, dev, closer, err := openDevice(c)
		if err != nil {
			return console.Fail("could not open expander", err)
		}
		defer closer.Close()
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		err = dev.Verify(ctx)
		if err != nil {
			return console.Fail("no AW9523 found", err)
		}
		console.PInfof(console.PictoChip, "AW9523 found at %s", console.Green(c.String("addr")))
		return nil
	},
}

var resetCmd = cli.Command{
	Name:   "reset",
	Usage:  "soft reset the expander to power-on defaults",
	Flags:  append([]cli.Flag{&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"}}, busFlags()...),
	Before: setupLogging,
	Action: func(c *cli.Context) error {
		ctx, dev, closer, err := openDevice(c)
		if err != nil {
			return console.Fail("could not open expander", err)
		}
		defer closer.Close()
		if !c.Bool("yes") {
			answer, err := console.Prompt("reset all outputs to power-on defaults?", console.No, console.Yes)
			if err != nil {
				return console.Exit(console.ExitFailure, "prompt error: %v", err)
			}
			if answer != console.Yes {
				console.PInfof(console.PictoStop, "reset aborted")
				return nil
			}
		}
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		err = dev.Reset(ctx)
		if err != nil {
			return console.Fail("could not reset expander", err)
		}
		console.PInfof(console.PictoCheck, "expander reset")
		return nil
	},
}
