package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/josephlewis42/minsh/core/config"
)

var (
	ColorBold      = []color.Attribute{color.Bold}
	ColorBoldBlue  = []color.Attribute{color.FgBlue, color.Bold}
	ColorBoldGreen = []color.Attribute{color.FgGreen, color.Bold}
)

// ColorPrinter decorates interpreter output with ANSI colours when enabled.
type ColorPrinter struct {
	enabled bool
}

// NewColorPrinter resolves a colour mode (always, auto or never) against
// whether output goes to a terminal.
func NewColorPrinter(mode string, isTerminal bool) *ColorPrinter {
	switch mode {
	case config.ColorAlways:
		return &ColorPrinter{enabled: true}
	case config.ColorNever:
		return &ColorPrinter{enabled: false}
	default:
		return &ColorPrinter{enabled: isTerminal}
	}
}

// ShouldColor reports whether output is coloured.
func (c *ColorPrinter) ShouldColor() bool {
	return c != nil && c.enabled
}

// Sprint formats a with the given attributes if colouring is enabled.
func (c *ColorPrinter) Sprint(attrs []color.Attribute, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprint(a...)
	}

	col := color.New(attrs...)
	// Override color.NoColor, which is computed from os.Stdout.
	col.EnableColor()
	return col.Sprint(a...)
}
