package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/aw9523/cmd/aw9523/console"
	"github.com/mklimuk/aw9523/internal/logging"
	"github.com/mklimuk/aw9523/snsctx"
)

var version string
var commit string
var date string

func main() {
	os.Exit(run())
}

func run() int {
	app := cli.NewApp()
	app.Name = "aw9523"
	app.EnableBashCompletion = true
	app.Version = fmt.Sprintf("%s-%s-%s", version, date, commit)
	app.Usage = "AW9523 GPIO expander cli"
	app.Flags = []cli.Flag{verboseFlag()}
	app.Before = setupLogging
	app.Commands = cli.Commands{
		&initCmd,
		&writeCmd,
		&readCmd,
		&idCmd,
		&resetCmd,
		&usbCmd,
		&mcp2221Cmd,
	}
	err := app.Run(os.Args)
	if err != nil {
		var exerr cli.ExitCoder
		if errors.As(err, &exerr) {
			log.Printf("unexpected error: %v", err)
			return exerr.ExitCode()
		}
		return 1
	}
	return 0
}

// verboseFlag is accepted both before and after the command name.
func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug logging and bridge traffic dumps",
	}
}

func isVerbose(c *cli.Context) bool {
	for _, ctx := range c.Lineage() {
		if ctx.Bool("verbose") {
			return true
		}
	}
	return false
}

// setupLogging applies --verbose from any level of the command line. Commands taking the
// flag run it again as their Before hook.
func setupLogging(c *cli.Context) error {
	verbose := isVerbose(c)
	logging.Setup("aw9523", verbose)
	console.Trace = verbose
	return nil
}

// busContext is the context handed to bus bridges.
func busContext(c *cli.Context) context.Context {
	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	return snsctx.SetVerbose(parent, isVerbose(c))
}
