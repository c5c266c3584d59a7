package selftest

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func ExampleRunner() {
	units, err := Default.Select("text/trim", "text/split")
	if err != nil {
		fmt.Println(err)
		return
	}
	log, err := Runner{}.Run(units)
	fmt.Print(log)
	fmt.Println(err)
	// Output:
	// text/split
	// 	Success.
	// text/trim
	// 	Success.
	// <nil>
}

func TestDefault(t *testing.T) {
	log, err := Runner{}.Run(Default.Units())
	testerr.Shall(err).BeNil(t)
	if n := len(log.Entries); n != len(textUnits) {
		t.Errorf("%d entries for %d units", n, len(textUnits))
	}
	for _, e := range log.Entries {
		if !e.OK {
			t.Error(e)
		}
	}
}

func unitNames(us []Unit) (names []string) {
	for _, u := range us {
		names = append(names, u.Name)
	}
	return names
}

func testRegistry(t *testing.T) *Registry {
	reg := new(Registry)
	nop := func(*Check) {}
	testerr.Shall(reg.Register(Unit{Name: "b/one", Run: nop})).BeNil(t)
	testerr.Shall(reg.Register(Unit{Name: "a/two", Since: "go1.21", Run: nop})).BeNil(t)
	testerr.Shall(reg.Register(Unit{Name: "a/new", Since: "go1.99", Run: nop})).BeNil(t)
	return reg
}

func TestRegistry_Register(t *testing.T) {
	reg := testRegistry(t)
	if err := reg.Register(Unit{Name: "b/one", Run: func(*Check) {}}); err == nil {
		t.Error("duplicate unit registered")
	}
	if err := reg.Register(Unit{Name: "x", Run: func(*Check) {}, Since: "1.21"}); err == nil {
		t.Error("invalid Go version accepted")
	}
	if err := reg.Register(Unit{Name: "y"}); err == nil {
		t.Error("unit without checks registered")
	}
}

func TestRegistry_Available(t *testing.T) {
	reg := testRegistry(t)
	reg.GoVersion = "go1.22.5"
	if names := unitNames(reg.Units()); !slices.Equal(names, []string{"a/new", "a/two", "b/one"}) {
		t.Errorf("units: %v", names)
	}
	if names := unitNames(reg.Available()); !slices.Equal(names, []string{"a/two", "b/one"}) {
		t.Errorf("available: %v", names)
	}
}

func TestRegistry_Select(t *testing.T) {
	reg := testRegistry(t)
	t.Run("glob", func(t *testing.T) {
		us := testerr.Shall1(reg.Select("a/*")).BeNil(t)
		if names := unitNames(us); !slices.Equal(names, []string{"a/new", "a/two"}) {
			t.Errorf("selected: %v", names)
		}
	})
	t.Run("overlap", func(t *testing.T) {
		us := testerr.Shall1(reg.Select("b/one", "**")).BeNil(t)
		if len(us) != 3 {
			t.Errorf("selected: %v", unitNames(us))
		}
	})
	t.Run("no match", func(t *testing.T) {
		if _, err := reg.Select("c/*"); err == nil {
			t.Error("no error for unmatched pattern")
		}
	})
	t.Run("bad pattern", func(t *testing.T) {
		if _, err := reg.Select("a/["); err == nil {
			t.Error("no error for bad pattern")
		}
	})
}

func TestRunner_failures(t *testing.T) {
	fail := func(c *Check) { c.Errorf("broken %d", 1) }
	units := []Unit{
		{Name: "f1", Run: fail},
		{Name: "ok", Run: func(*Check) {}},
		{Name: "f2", Run: func(*Check) { panic("boom") }},
		{Name: "f3", Run: fail},
	}
	t.Run("no limit", func(t *testing.T) {
		log, err := Runner{}.Run(units)
		var fc FailureCount
		if !errors.As(err, &fc) || fc != 3 {
			t.Fatalf("unexpected error %v", err)
		}
		if len(log.Entries) != 4 || log.Failed() != 3 {
			t.Errorf("log:\n%s", log)
		}
		if s := log.Entries[0].String(); s != "f1\n\tFailure: broken 1" {
			t.Errorf("entry [%s]", s)
		}
		if s := log.Entries[2].Details; s != "panic: boom" {
			t.Errorf("panic details [%s]", s)
		}
	})
	t.Run("limit", func(t *testing.T) {
		log, err := Runner{FailLimit: 2}.Run(units)
		if fc, ok := err.(FailureCount); !ok || fc != 2 {
			t.Fatalf("unexpected error %v", err)
		}
		if len(log.Entries) != 3 {
			t.Errorf("log:\n%s", log)
		}
	})
	t.Run("abort", func(t *testing.T) {
		var seen []string
		log, _ := Runner{OnFailure: func(e Entry) bool {
			seen = append(seen, e.Unit)
			return true
		}}.Run(units)
		if len(log.Entries) != 1 || !slices.Equal(seen, []string{"f1"}) {
			t.Errorf("seen %v, log:\n%s", seen, log)
		}
	})
}

func TestRunner_retries(t *testing.T) {
	flaky := func(fails int) func(*Check) {
		return func(c *Check) {
			if fails > 0 {
				fails--
				c.Errorf("flaky")
			}
		}
	}
	t.Run("recovers", func(t *testing.T) {
		units := []Unit{
			{Name: "flaky", Run: flaky(1)},
			{Name: "ok", Run: func(*Check) {}},
		}
		log, err := Runner{Retries: 1}.Run(units)
		testerr.Shall(err).BeNil(t)
		// the retried unit is run again behind the remaining units
		if names := entryUnits(log); !slices.Equal(names, []string{"ok", "flaky"}) {
			t.Errorf("log order %v", names)
		}
		if log.Failed() != 0 {
			t.Errorf("log:\n%s", log)
		}
	})
	t.Run("exhausted", func(t *testing.T) {
		units := []Unit{
			{Name: "flaky", Run: flaky(3)},
			{Name: "ok", Run: func(*Check) {}},
		}
		log, err := Runner{Retries: 2}.Run(units)
		if fc, ok := err.(FailureCount); !ok || fc != 1 {
			t.Fatalf("unexpected error %v", err)
		}
		if names := entryUnits(log); !slices.Equal(names, []string{"ok", "flaky"}) {
			t.Errorf("log order %v", names)
		}
	})
	t.Run("no retries", func(t *testing.T) {
		units := []Unit{{Name: "flaky", Run: flaky(1)}}
		if _, err := (Runner{}).Run(units); err == nil {
			t.Error("failure was retried")
		}
	})
}

func entryUnits(log *Log) (names []string) {
	for _, e := range log.Entries {
		names = append(names, e.Unit)
	}
	return names
}
