package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fractalqb/xtext"
	"github.com/fractalqb/xtext/selftest"
)

// shell reads command lines and executes them until quit or end of input.
// It must not be used concurrently.
type shell struct {
	cfg   config
	out   io.Writer
	log   *slog.Logger
	units *selftest.Registry

	quit bool
}

func newShell(cfg config, out io.Writer, log *slog.Logger) *shell {
	return &shell{
		cfg:   cfg,
		out:   out,
		log:   log,
		units: selftest.Default,
	}
}

func (sh *shell) run(in io.Reader) error {
	if sh.cfg.Welcome {
		fmt.Fprintln(sh.out, "Welcome to the xtext shell!")
		printHelp(sh.out, sh.cfg.Color)
		fmt.Fprintln(sh.out)
	}
	scn := bufio.NewScanner(in)
	for !sh.quit {
		fmt.Fprint(sh.out, sh.cfg.Prompt)
		if !scn.Scan() {
			if err := scn.Err(); err != nil {
				return err
			}
			sh.log.Debug("end of input")
			return nil
		}
		if err := sh.execLine(xtext.New(scn.Text())); err != nil {
			sh.log.Debug("command failed", "error", err)
		}
	}
	sh.log.Debug("quit")
	return nil
}

// execLine executes one command line. Classification errors and failed units
// are reported to the output and also returned.
func (sh *shell) execLine(line xtext.Text) error {
	cmd, err := classify(line.Split(' ', false))
	if err != nil {
		fmt.Fprintf(sh.out, "%s\n\n", err)
		return err
	}
	sh.log.Debug("execute", "flags", fmt.Sprintf("%08b", cmd.flags), "units", cmd.units)
	err = sh.execute(cmd)
	fmt.Fprintln(sh.out)
	return err
}

func (sh *shell) execute(cmd command) error {
	switch cmd.flags {
	case flagTest | flagSelect:
		units, err := sh.units.Select(cmd.units...)
		if err != nil {
			fmt.Fprintln(sh.out, err)
			return err
		}
		return sh.runUnits(units)
	case flagTest | flagEverything:
		return sh.runUnits(sh.units.Units())
	case flagTest | flagAvailable:
		return sh.runUnits(sh.units.Available())
	case flagList | flagEverything:
		avail := make(map[string]bool)
		for _, u := range sh.units.Available() {
			avail[u.Name] = true
		}
		for _, u := range sh.units.Units() {
			if avail[u.Name] {
				fmt.Fprintln(sh.out, u.Name)
			} else {
				fmt.Fprintf(sh.out, "%s (needs %s)\n", u.Name, u.Since)
			}
		}
	case flagList | flagAvailable:
		for _, u := range sh.units.Available() {
			fmt.Fprintln(sh.out, u.Name)
		}
	case flagVersion:
		printVersion(sh.out, sh.cfg.Debug)
	case flagStd:
		printStd(sh.out)
	case flagHelp:
		printHelp(sh.out, sh.cfg.Color)
	case flagQuit:
		sh.quit = true
	}
	return nil
}

func (sh *shell) runUnits(units []selftest.Unit) error {
	runner := selftest.Runner{
		FailLimit: sh.cfg.FailLimit,
		Retries:   sh.cfg.Retries,
		OnFailure: func(e selftest.Entry) bool {
			sh.log.Debug("unit failed", "unit", e.Unit, "details", e.Details)
			return false
		},
	}
	log, err := runner.Run(units)
	fmt.Fprint(sh.out, log)
	var fc selftest.FailureCount
	if errors.As(err, &fc) {
		fmt.Fprintln(sh.out, fc)
	}
	return err
}
