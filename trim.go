package xtext

// TrimLeft returns t without the leading c characters.
func (t Text) TrimLeft(c byte) Text {
	pos := 0
	for pos < len(t.buf) && t.buf[pos] == c {
		pos++
	}
	res, _ := t.Range(pos, Rest)
	return res
}

// TrimRight returns t without the trailing c characters.
func (t Text) TrimRight(c byte) Text {
	end := len(t.buf)
	for end > 0 && t.buf[end-1] == c {
		end--
	}
	res, _ := t.Range(0, end)
	return res
}

// Trim returns t without leading and trailing c characters. The right side
// is trimmed first.
func (t Text) Trim(c byte) Text {
	return t.TrimRight(c).TrimLeft(c)
}
