package boxxerr

import (
	"fmt"

	"github.com/fatih/color"
)

// Display renders err the way the REPL and CLI report failures: an
// "Error: " prefix followed by the error's message. When color is
// true, the prefix is bold red.
func Display(err error, useColor bool) string {
	if err == nil {
		return ""
	}
	if !useColor {
		return fmt.Sprintf("Error: %s", err)
	}
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	prefix := c.Sprint("Error:")
	return fmt.Sprintf("%s %s", prefix, err)
}
