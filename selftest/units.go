package selftest

import (
	"errors"
	"slices"

	"github.com/fractalqb/xtext"
)

func init() {
	for _, u := range textUnits {
		if err := Default.Register(u); err != nil {
			panic(err)
		}
	}
}

var textUnits = []Unit{
	{Name: "text/substr", Since: "go1.21", Run: checkSubstr},
	{Name: "text/match", Since: "go1.21", Run: checkMatch},
	{Name: "text/trim", Since: "go1.21", Run: checkTrim},
	{Name: "text/split", Since: "go1.21", Run: checkSplit},
	{Name: "text/occurrences", Since: "go1.21", Run: checkOccurrences},
}

var samples = []string{"", " ", "a", "  hello  ", "key=value", "a,,b,", ",", "x y  z "}

func checkSubstr(c *Check) {
	for _, s := range samples {
		t := xtext.New(s)
		if r, err := t.Range(t.Len(), 0); err != nil || !r.Empty() {
			c.Errorf("range at end of [%s]: [%s] %v", s, r, err)
		}
		var perr xtext.PositionError
		if _, err := t.Range(t.Len()+1, 0); !errors.As(err, &perr) {
			c.Errorf("range behind end of [%s]: %v", s, err)
		}
	}
	if r, err := xtext.New("").UpTo('=', 0); err != nil || !r.Empty() {
		c.Errorf("up to on empty text: [%s] %v", r, err)
	}
	kv := xtext.New("key=value")
	if k, err := kv.UpTo('=', 0); err != nil || k.String() != "key" {
		c.Errorf("key: [%s] %v", k, err)
	}
	if v, err := kv.UpTo('=', 4); err != nil || v.String() != "value" {
		c.Errorf("value: [%s] %v", v, err)
	}
}

func checkMatch(c *Check) {
	pats := xtext.Texts("foo", "bar")
	bar := xtext.New("bar")
	if ok, err := bar.MatchAnyN(pats, 2); err != nil || !ok {
		c.Errorf("match any: %t %v", ok, err)
	}
	if ok, err := bar.MatchAllN(pats, 2); err != nil || ok {
		c.Errorf("match all: %t %v", ok, err)
	}
	var aerr xtext.ArgumentError
	if _, err := bar.MatchAnyN(pats, 3); !errors.As(err, &aerr) {
		c.Errorf("count exceeds patterns: %v", err)
	}
	if _, err := bar.MatchAnyTerminated(pats); !errors.As(err, &aerr) {
		c.Errorf("missing terminator: %v", err)
	}
	if ok, err := bar.MatchAnyTerminated(xtext.Terminate(pats...)); err != nil || !ok {
		c.Errorf("terminated match any: %t %v", ok, err)
	}
	for _, p := range pats {
		if bar.MatchAny(p) != bar.Equal(p) || bar.MatchAll(p) != bar.Equal(p) {
			c.Errorf("single pattern [%s] differs from equal", p)
		}
	}
}

func checkTrim(c *Check) {
	if r := xtext.New("  hello  ").Trim(' '); r.String() != "hello" {
		c.Errorf("trim: [%s]", r)
	}
	for _, s := range samples {
		for _, ch := range []byte{' ', ',', 'a'} {
			once := xtext.New(s).Trim(ch)
			if twice := once.Trim(ch); !twice.Equal(once) {
				c.Errorf("trim '%c' of [%s] not idempotent: [%s] [%s]", ch, s, once, twice)
			}
		}
	}
}

func checkSplit(c *Check) {
	if segs := xtext.New("").Split(',', false); len(segs) != 0 {
		c.Errorf("split empty text: %d segments", len(segs))
	}
	want := []string{"a", "", "b", ""}
	if segs := xtext.Strings(xtext.New("a,,b,").Split(',', false)); !slices.Equal(segs, want) {
		c.Errorf("split: %q", segs)
	}
	for _, s := range samples {
		for _, d := range []byte{' ', ',', '='} {
			t := xtext.New(s)
			if j := xtext.Join(t.Split(d, true)); !j.Equal(t) {
				c.Errorf("join split '%c' of [%s]: [%s]", d, s, j)
			}
		}
	}
}

func checkOccurrences(c *Check) {
	tests := []struct {
		s string
		n int
	}{{"", 0}, {"abc", 0}, {"a,,b,", 3}}
	for _, test := range tests {
		if n := xtext.New(test.s).Occurrences(','); n != test.n {
			c.Errorf("occurrences in [%s]: %d, want %d", test.s, n, test.n)
		}
	}
}
