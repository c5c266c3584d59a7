package xtext

// Split cuts t into the segments separated by delim. Adjacent delimiters
// produce empty segments and a trailing delimiter produces a trailing empty
// segment. If keep is true, every segment that ends at a delimiter keeps that
// delimiter. An empty t has no segments.
func (t Text) Split(delim byte, keep bool) []Text {
	if len(t.buf) == 0 {
		return []Text{}
	}
	// Occurrences is only a capacity hint
	segs := make([]Text, 0, t.Occurrences(delim)+1)
	for pos := 0; pos <= len(t.buf); {
		seg, _ := t.UpTo(delim, pos)
		next := pos + seg.Len()
		if keep && next < len(t.buf) {
			seg = t.cut(pos, next+1)
		}
		segs = append(segs, seg)
		pos = next + 1
	}
	return segs
}
