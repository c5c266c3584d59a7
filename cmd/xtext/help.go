package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/fractalqb/xtext"
)

var (
	helpTitleStyle = lipgloss.NewStyle().Bold(true)
	helpCmdStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpDescStyle  = lipgloss.NewStyle().Faint(true)
)

var helpLines = [][2]string{
	{"test <-e | --everything>", "Runs all self-test units"},
	{"test <-a | --available>", "Runs all self-test units available for this Go version"},
	{"test <-s | --select> <unit1> [<unit2> ...]", "Runs each unit matching a pattern"},
	{"list <-e | --everything>", "Lists all self-test units"},
	{"list <-a | --available>", "Lists all self-test units available for this Go version"},
	{"std", "Shows the Go version currently being used"},
	{"version", "Shows the xtext version currently being used"},
	{"help", "Shows this menu"},
	{"quit", "Closes this program"},
}

func printHelp(w io.Writer, styled bool) {
	title := "Consider the following"
	if styled {
		title = helpTitleStyle.Render(title)
	}
	fmt.Fprintln(w, title)
	for _, l := range helpLines {
		cmd := fmt.Sprintf("%-44s", l[0])
		desc := l[1]
		if styled {
			cmd = helpCmdStyle.Render(cmd)
			desc = helpDescStyle.Render(desc)
		}
		fmt.Fprintf(w, "- %s%s\n", cmd, desc)
	}
}

func versionString(debug bool) string {
	v := "xtext-" + xtext.Version
	if debug {
		v += "-deb"
	}
	return v
}

func printVersion(w io.Writer, debug bool) {
	fmt.Fprintln(w, versionString(debug))
}

func printStd(w io.Writer) {
	fmt.Fprintln(w, runtime.Version())
}
