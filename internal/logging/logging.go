package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// StdStreams is the --logfile value meaning "write to the standard error stream".
const StdStreams = "STDOUT/STDERR"

type Logger struct {
	Verbose bool
	Debug   bool

	// Out receives every message. Nil means os.Stderr.
	Out io.Writer

	// Plain drops the colors from level prefixes.
	Plain bool
}

// Open builds a Logger writing to logfile, or to the standard error stream
// when logfile is empty or StdStreams. The returned close function must be
// called once the run is over.
func Open(logfile string, verbose, debug bool) (Logger, func() error, error) {
	l := Logger{Verbose: verbose, Debug: debug}
	if logfile == "" || logfile == StdStreams {
		return l, func() error { return nil }, nil
	}

	f, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return l, func() error { return nil }, fmt.Errorf("opening log file %s: %w", logfile, err)
	}
	l.Out = f
	l.Plain = true
	return l, f.Close, nil
}

func (l Logger) writer() io.Writer {
	if l.Out == nil {
		return os.Stderr
	}
	return l.Out
}

func (l Logger) prefix(c func(string, ...any) string, level string) string {
	if l.Plain {
		return level
	}
	return c(level)
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.writer(), l.prefix(color.GreenString, "[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.writer(), l.prefix(color.CyanString, "[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(l.writer(), l.prefix(color.YellowString, "[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.writer(), l.prefix(color.RedString, "[error] ")+msg+"\n", args...)
}
