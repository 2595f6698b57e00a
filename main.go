package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	circleVersion = "1.0.0"
)

const (
	exitOK    = 0
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(stderr, cmd.UsageString())
		reportError(stderr, err)
		return exitUsage
	}

	return exitOK
}

func reportError(out io.Writer, err error) {
	label := errorLabel(out).SprintFunc()
	fmt.Fprintf(out, "%s %v\n", label("Error:"), err)
}

// errorLabel colors only when out itself is a terminal. color.NoColor is
// derived from stdout, which says nothing about where errors go.
func errorLabel(out io.Writer) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if isTerminal(out) && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
