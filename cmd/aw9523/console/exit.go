package console

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/aw9523"
)

// Process exit codes
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitUnsupported = 3
	ExitBus         = 4
)

func Exit(code int, msg string, args ...interface{}) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf(msg, args...), code)
}

// Fail reports err under msg with an exit code chosen by the driver error kind.
func Fail(msg string, err error) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf("%s: %s", msg, Red(err)), ExitCode(err))
}

func ExitCode(err error) int {
	switch aw9523.KindOf(err) {
	case aw9523.InvalidArgument:
		return ExitUsage
	case aw9523.NotSupported:
		return ExitUnsupported
	case aw9523.ReadError, aw9523.WriteError:
		return ExitBus
	default:
		return ExitFailure
	}
}
