package xtext

// Equal reports whether t and o hold exactly the same characters. End is not
// equal to any text.
func (t Text) Equal(o Text) bool {
	if t.end || o.end {
		return false
	}
	return t.buf == o.buf
}

// MatchAny reports whether t is equal to at least one of pats.
func (t Text) MatchAny(pats ...Text) bool {
	for _, p := range pats {
		if t.Equal(p) {
			return true
		}
	}
	return false
}

// MatchAll reports whether t is equal to each of pats. It is true for an
// empty list of patterns.
func (t Text) MatchAll(pats ...Text) bool {
	for _, p := range pats {
		if !t.Equal(p) {
			return false
		}
	}
	return true
}

// MatchAnyN is MatchAny for the first n patterns of pats. It fails with an
// ArgumentError if n is negative or exceeds len(pats).
func (t Text) MatchAnyN(pats []Text, n int) (bool, error) {
	if err := checkCount("match any", pats, n); err != nil {
		return false, err
	}
	return t.MatchAny(pats[:n]...), nil
}

// MatchAllN is MatchAll for the first n patterns of pats. It fails with an
// ArgumentError if n is negative or exceeds len(pats).
func (t Text) MatchAllN(pats []Text, n int) (bool, error) {
	if err := checkCount("match all", pats, n); err != nil {
		return false, err
	}
	return t.MatchAll(pats[:n]...), nil
}

// MatchAnyTerminated is MatchAny for the patterns in pats up to the first
// End. It fails with an ArgumentError if pats has no End.
func (t Text) MatchAnyTerminated(pats []Text) (bool, error) {
	n, err := terminated("match any", pats)
	if err != nil {
		return false, err
	}
	return t.MatchAny(pats[:n]...), nil
}

// MatchAllTerminated is MatchAll for the patterns in pats up to the first
// End. It fails with an ArgumentError if pats has no End.
func (t Text) MatchAllTerminated(pats []Text) (bool, error) {
	n, err := terminated("match all", pats)
	if err != nil {
		return false, err
	}
	return t.MatchAll(pats[:n]...), nil
}

// Terminate returns a copy of pats with End appended.
func Terminate(pats ...Text) []Text {
	res := make([]Text, len(pats), len(pats)+1)
	copy(res, pats)
	return append(res, End)
}

// PatternList collects patterns for the terminated match forms. The zero
// value is an empty list.
type PatternList struct {
	pats []Text
}

func (pl *PatternList) Add(ss ...string) *PatternList {
	for _, s := range ss {
		pl.pats = append(pl.pats, New(s))
	}
	return pl
}

// AddText appends ts to the list. End is skipped.
func (pl *PatternList) AddText(ts ...Text) *PatternList {
	for _, t := range ts {
		if !t.end {
			pl.pats = append(pl.pats, t)
		}
	}
	return pl
}

func (pl *PatternList) Len() int { return len(pl.pats) }

// Terminated returns the collected patterns followed by End.
func (pl *PatternList) Terminated() []Text { return Terminate(pl.pats...) }

func checkCount(op string, pats []Text, n int) error {
	if n < 0 || n > len(pats) {
		return ArgumentError{Op: op, Count: n, Len: len(pats)}
	}
	return nil
}

func terminated(op string, pats []Text) (int, error) {
	for i, p := range pats {
		if p.end {
			return i, nil
		}
	}
	return 0, ArgumentError{
		Op:     op,
		Count:  -1,
		Len:    len(pats),
		Reason: "pattern list not terminated by End",
	}
}
