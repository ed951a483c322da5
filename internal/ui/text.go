package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	return f.decorate(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.decorate(fmt.Sprintf(format, a...))
}

func (f Formatter) decorate(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for secretsanta output.
var (
	// Code formats runnable commands, e.g. `secretsanta run --send`.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths such as the participant CSV.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats CLI flags like --send.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats delivered notifications.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats failures.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warnings and the dry-run marker.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and arrows.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Name formats participant names. Quoted without color.
	Name = Formatter{color.New(color.FgCyan, color.Bold), "'", "'"}

	// Email formats addresses. Angle-bracketed without color.
	Email = Formatter{color.New(color.FgCyan), "<", ">"}

	// Muted formats secondary text. Parenthesised without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
