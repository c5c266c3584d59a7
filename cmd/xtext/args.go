package main

import (
	"github.com/fractalqb/xtext"
)

// Flags of the commands and arguments of a command line
type argFlags uint

const (
	flagClear      argFlags = 0
	flagTest       argFlags = 0b00000001
	flagList       argFlags = 0b00000010
	flagEverything argFlags = 0b00000100
	flagAvailable  argFlags = 0b00001000
	flagSelect     argFlags = 0b00010000
	flagStd        argFlags = 0b00100000
	flagVersion    argFlags = 0b01000000
	flagHelp       argFlags = 0b10000000
	flagQuit       argFlags = 0b11111111
)

// commandError reports an unknown command
type commandError string

func (e commandError) Error() string { return "'" + string(e) + "' was not a valid command." }

// argError reports an invalid argument for a command
type argError string

func (e argError) Error() string { return "'" + string(e) + "' was not a valid argument." }

var (
	selectArgs     = new(xtext.PatternList).Add("-s", "--select").Terminated()
	everythingArgs = new(xtext.PatternList).Add("-e", "--everything").Terminated()
	availableArgs  = new(xtext.PatternList).Add("-a", "--available").Terminated()
	versionCmds    = xtext.Texts("jastd", "version")
)

type command struct {
	flags argFlags
	// unit patterns following --select
	units []string
}

// classify determines the command flags from the tokens of a command line.
// Empty tokens are ignored.
func classify(tokens []xtext.Text) (cmd command, err error) {
	for _, tok := range tokens {
		arg := tok.Trim(' ')
		if arg.Empty() {
			continue
		}
		switch {
		case cmd.flags == flagClear:
			if cmd.flags, err = commandFlag(arg); err != nil {
				return command{}, err
			}
		case cmd.flags == flagTest|flagSelect:
			cmd.units = append(cmd.units, arg.String())
		case cmd.flags == flagTest || cmd.flags == flagList:
			f, err := argFlag(cmd.flags, arg)
			if err != nil {
				return command{}, err
			}
			cmd.flags |= f
		default:
			return command{}, argError(arg.String())
		}
	}
	return cmd, nil
}

func commandFlag(arg xtext.Text) (argFlags, error) {
	switch {
	case arg.Equal(xtext.New("test")):
		return flagTest, nil
	case arg.Equal(xtext.New("list")):
		return flagList, nil
	case arg.Equal(xtext.New("std")):
		return flagStd, nil
	case arg.MatchAny(versionCmds...):
		return flagVersion, nil
	case arg.Equal(xtext.New("help")):
		return flagHelp, nil
	case arg.Equal(xtext.New("quit")):
		return flagQuit, nil
	}
	return flagClear, commandError(arg.String())
}

func argFlag(cmd argFlags, arg xtext.Text) (argFlags, error) {
	if cmd == flagTest {
		if ok, err := arg.MatchAnyTerminated(selectArgs); err != nil {
			return 0, err
		} else if ok {
			return flagSelect, nil
		}
	}
	if ok, err := arg.MatchAnyTerminated(everythingArgs); err != nil {
		return 0, err
	} else if ok {
		return flagEverything, nil
	}
	if ok, err := arg.MatchAnyTerminated(availableArgs); err != nil {
		return 0, err
	} else if ok {
		return flagAvailable, nil
	}
	return 0, argError(arg.String())
}
