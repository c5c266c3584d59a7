package selftest

import (
	"errors"
	"fmt"
	"go/version"
	"runtime"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Unit is a named group of checks.
type Unit struct {
	Name string
	// Minimal Go version, e.g. "go1.21", the unit is available for. Empty
	// means always available.
	Since string
	Run   func(c *Check)
}

// Check collects the failures of a running unit.
type Check struct {
	fails []string
}

func (c *Check) Errorf(format string, args ...any) {
	c.fails = append(c.fails, fmt.Sprintf(format, args...))
}

func (c *Check) Failed() bool { return len(c.fails) > 0 }

func (c *Check) details() string { return strings.Join(c.fails, "; ") }

type Registry struct {
	// Go version to determine available units. Defaults to runtime.Version().
	GoVersion string

	units map[string]Unit
}

// Default is the registry with the units for package xtext.
var Default = new(Registry)

func (reg *Registry) Register(u Unit) error {
	switch {
	case u.Name == "":
		return errors.New("unit without name")
	case u.Run == nil:
		return fmt.Errorf("unit '%s' without checks", u.Name)
	case u.Since != "" && !version.IsValid(u.Since):
		return fmt.Errorf("unit '%s': invalid Go version '%s'", u.Name, u.Since)
	}
	if _, ok := reg.units[u.Name]; ok {
		return fmt.Errorf("duplicate unit '%s'", u.Name)
	}
	if reg.units == nil {
		reg.units = make(map[string]Unit)
	}
	reg.units[u.Name] = u
	return nil
}

// Units returns all registered units sorted by name.
func (reg *Registry) Units() []Unit {
	res := make([]Unit, 0, len(reg.units))
	for _, u := range reg.units {
		res = append(res, u)
	}
	slices.SortFunc(res, func(a, b Unit) int { return strings.Compare(a.Name, b.Name) })
	return res
}

// Available returns the units that are available for the registry's
// GoVersion sorted by name.
func (reg *Registry) Available() []Unit {
	return slices.DeleteFunc(reg.Units(), func(u Unit) bool { return !reg.available(u) })
}

func (reg *Registry) available(u Unit) bool {
	if u.Since == "" {
		return true
	}
	gov := reg.GoVersion
	if gov == "" {
		gov = runtime.Version()
	}
	if !version.IsValid(gov) {
		// development toolchains
		return true
	}
	return version.Compare(gov, u.Since) >= 0
}

// Select returns the units with names matching any of patterns in the order
// of Units. It is an error if a pattern is malformed or matches no unit.
func (reg *Registry) Select(patterns ...string) ([]Unit, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no unit pattern")
	}
	all := reg.Units()
	sel := make([]bool, len(all))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid unit pattern '%s'", p)
		}
		hit := false
		for i, u := range all {
			if ok, _ := doublestar.Match(p, u.Name); ok {
				sel[i] = true
				hit = true
			}
		}
		if !hit {
			return nil, fmt.Errorf("no unit matches '%s'", p)
		}
	}
	var res []Unit
	for i, u := range all {
		if sel[i] {
			res = append(res, u)
		}
	}
	return res, nil
}
