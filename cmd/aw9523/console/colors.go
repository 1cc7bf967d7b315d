package console

import (
	"fmt"

	"github.com/fatih/color"
)

// Available ANSI colors
var (
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	White  = color.New(color.FgHiWhite).SprintFunc()
)

// Reg renders a register address, e.g. 0x13.
func Reg(b byte) string {
	return White(fmt.Sprintf("%#02x", b))
}

// Bits renders a register value as its eight bits, e.g. 0b00011000.
func Bits(b byte) string {
	return White(fmt.Sprintf("%#08b", b))
}
