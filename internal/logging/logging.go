// Package logging installs the charm handler behind log/slog for the repo's binaries.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Setup makes a charm logger the slog default. verbose lowers the level to debug.
func Setup(prefix string, verbose bool) *log.Logger {
	charm := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	charm.SetColorProfile(termenv.TrueColor)
	charm.SetLevel(log.InfoLevel)
	if verbose {
		charm.SetLevel(log.DebugLevel)
	}
	slog.SetDefault(slog.New(charm))
	return charm
}
