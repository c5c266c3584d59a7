package main

import (
	"bytes"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
	"github.com/fractalqb/xtext"
	"github.com/fractalqb/xtext/selftest"
)

func testShell(cfg config) (*shell, *bytes.Buffer) {
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newShell(cfg, &out, log), &out
}

func TestShell_run(t *testing.T) {
	sh, out := testShell(config{Prompt: "> "})
	testerr.Shall(sh.run(strings.NewReader("version\nbogus\nquit\nhelp\n"))).BeNil(t)
	const want = "> xtext-" + xtext.Version + "\n\n" +
		"> 'bogus' was not a valid command.\n\n" +
		"> \n"
	if s := out.String(); s != want {
		t.Errorf("output:\n%q\nwant:\n%q", s, want)
	}
	if !sh.quit {
		t.Error("shell did not quit")
	}
}

func TestShell_runEOF(t *testing.T) {
	sh, out := testShell(config{})
	testerr.Shall(sh.run(strings.NewReader("std"))).BeNil(t)
	if s := out.String(); s != runtime.Version()+"\n\n" {
		t.Errorf("output %q", s)
	}
	if sh.quit {
		t.Error("quit on end of input")
	}
}

func TestShell_welcome(t *testing.T) {
	sh, out := testShell(config{Welcome: true})
	testerr.Shall(sh.run(strings.NewReader(""))).BeNil(t)
	s := out.String()
	if !strings.HasPrefix(s, "Welcome to the xtext shell!\nConsider the following\n") {
		t.Errorf("welcome %q", s)
	}
	if !strings.Contains(s, "- quit") {
		t.Errorf("help misses quit: %q", s)
	}
}

func TestShell_execLine(t *testing.T) {
	t.Run("debug version", func(t *testing.T) {
		sh, out := testShell(config{Debug: true})
		testerr.Shall(sh.execLine(xtext.New("jastd"))).BeNil(t)
		if s := out.String(); s != "xtext-1.0.0-deb\n\n" {
			t.Errorf("output %q", s)
		}
	})
	t.Run("test select", func(t *testing.T) {
		sh, out := testShell(config{})
		testerr.Shall(sh.execLine(xtext.New("test -s text/trim"))).BeNil(t)
		if s := out.String(); s != "text/trim\n\tSuccess.\n\n" {
			t.Errorf("output %q", s)
		}
	})
	t.Run("test select unknown", func(t *testing.T) {
		sh, out := testShell(config{})
		if err := sh.execLine(xtext.New("test -s nope/*")); err == nil {
			t.Error("no error for unmatched unit")
		}
		if s := out.String(); s != "no unit matches 'nope/*'\n\n" {
			t.Errorf("output %q", s)
		}
	})
	t.Run("test everything", func(t *testing.T) {
		sh, out := testShell(config{})
		testerr.Shall(sh.execLine(xtext.New("test --everything"))).BeNil(t)
		if n := strings.Count(out.String(), "Success."); n != len(selftest.Default.Units()) {
			t.Errorf("%d successes:\n%s", n, out)
		}
	})
	t.Run("argument error", func(t *testing.T) {
		sh, out := testShell(config{})
		if err := sh.execLine(xtext.New("list -s")); err == nil {
			t.Error("no error")
		}
		if s := out.String(); s != "'-s' was not a valid argument.\n\n" {
			t.Errorf("output %q", s)
		}
	})
}

func TestShell_units(t *testing.T) {
	reg := new(selftest.Registry)
	reg.GoVersion = "go1.21.0"
	testerr.Shall(reg.Register(selftest.Unit{
		Name: "demo/fail",
		Run:  func(c *selftest.Check) { c.Errorf("always") },
	})).BeNil(t)
	testerr.Shall(reg.Register(selftest.Unit{
		Name:  "demo/future",
		Since: "go1.99",
		Run:   func(*selftest.Check) {},
	})).BeNil(t)

	sh, out := testShell(config{})
	sh.units = reg
	t.Run("list everything", func(t *testing.T) {
		out.Reset()
		testerr.Shall(sh.execLine(xtext.New("list -e"))).BeNil(t)
		if s := out.String(); s != "demo/fail\ndemo/future (needs go1.99)\n\n" {
			t.Errorf("output %q", s)
		}
	})
	t.Run("list available", func(t *testing.T) {
		out.Reset()
		testerr.Shall(sh.execLine(xtext.New("list -a"))).BeNil(t)
		if s := out.String(); s != "demo/fail\n\n" {
			t.Errorf("output %q", s)
		}
	})
	t.Run("failure", func(t *testing.T) {
		out.Reset()
		if err := sh.execLine(xtext.New("test -a")); err == nil {
			t.Error("no error for failed unit")
		}
		if s := out.String(); s != "demo/fail\n\tFailure: always\n1 failed units\n\n" {
			t.Errorf("output %q", s)
		}
	})
}
