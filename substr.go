package xtext

// Range returns up to count characters of t starting at pos. If count is
// negative, e.g. Rest, or reaches beyond the end of t, the remainder of t is
// returned. Range fails with PositionError if pos is not in [0, Len()].
func (t Text) Range(pos, count int) (Text, error) {
	if err := t.checkPos("range", pos); err != nil {
		return Text{}, err
	}
	if count < 0 || count > len(t.buf)-pos {
		count = len(t.buf) - pos
	}
	return t.cut(pos, pos+count), nil
}

// UpTo returns the characters of t from pos up to but not including the next
// delim. If there is no delim at or after pos, the remainder of t is returned.
// UpTo fails with PositionError if pos is not in [0, Len()]. Note that this
// makes UpTo(d, 0) on an empty text return an empty text.
func (t Text) UpTo(delim byte, pos int) (Text, error) {
	if err := t.checkPos("up to", pos); err != nil {
		return Text{}, err
	}
	end := t.Find(delim, pos)
	if end == NoPos {
		return t.Range(pos, Rest)
	}
	return t.Range(pos, end-pos)
}

// Occurrences counts the non-overlapping occurrences of c in t.
func (t Text) Occurrences(c byte) (n int) {
	for i := t.Find(c, 0); i != NoPos; i = t.Find(c, i+1) {
		n++
	}
	return n
}
