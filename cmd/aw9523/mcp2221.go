package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/aw9523/cmd/aw9523/console"
)

var mcp2221Cmd = cli.Command{
	Name:  "mcp2221",
	Usage: "MCP2221 bridge maintenance",
	Subcommands: cli.Commands{
		&mcp2221StatusCmd,
		&mcp2221ReleaseCmd,
	},
}

func mcp2221Flags() []cli.Flag {
	return []cli.Flag{mcp2221IDFlag(), verboseFlag()}
}

var mcp2221StatusCmd = cli.Command{
	Name:   "status",
	Flags:  mcp2221Flags(),
	Before: setupLogging,
	Action: func(c *cli.Context) error {
		ctx := busContext(c)
		a := newMCP2221(c)
		status, err := a.Status(ctx)
		if err != nil {
			return console.Fail("adapter communication error", err)
		}
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		err = enc.Encode(status)
		if err != nil {
			return console.Fail("encoding error", err)
		}
		return nil
	},
}

var mcp2221ReleaseCmd = cli.Command{
	Name:   "release",
	Usage:  "cancel a stuck transfer and free the bus",
	Flags:  mcp2221Flags(),
	Before: setupLogging,
	Action: func(c *cli.Context) error {
		ctx := busContext(c)
		a := newMCP2221(c)
		status, err := a.ReleaseBus(ctx)
		if err != nil {
			return console.Fail("adapter communication error", err)
		}
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		err = enc.Encode(status)
		if err != nil {
			return console.Fail("encoding error", err)
		}
		return nil
	},
}
