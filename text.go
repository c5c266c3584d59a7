package xtext

import (
	"strings"
)

// Version of the xtext library.
const Version = "1.0.0"

// NoPos is returned by Find if a character is not found.
const NoPos = -1

// Rest as count argument of Range selects the remainder of a text.
const Rest = -1

// Text is an immutable sequence of byte characters. The zero value is the
// empty text.
type Text struct {
	buf string
	// marks End which is not a text but the terminator of pattern lists
	end bool
}

// End terminates pattern lists for MatchAnyTerminated and
// MatchAllTerminated. End is not Equal to any Text, not even to itself. Use
// IsEnd instead of == to detect it.
var End = Text{end: true}

func New(s string) Text { return Text{buf: s} }

// FromBytes copies b into a new Text.
func FromBytes(b []byte) Text { return Text{buf: string(b)} }

// Texts converts all strings into Texts.
func Texts(ss ...string) []Text {
	res := make([]Text, len(ss))
	for i, s := range ss {
		res[i] = New(s)
	}
	return res
}

// Strings converts all Texts into strings.
func Strings(ts []Text) []string {
	res := make([]string, len(ts))
	for i, t := range ts {
		res[i] = t.buf
	}
	return res
}

// Join concatenates all segs into one Text.
func Join(segs []Text) Text {
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteString(s.buf)
	}
	return Text{buf: sb.String()}
}

func (t Text) String() string { return t.buf }

// Bytes returns a copy of the characters of t.
func (t Text) Bytes() []byte { return []byte(t.buf) }

func (t Text) Len() int { return len(t.buf) }

func (t Text) Empty() bool { return len(t.buf) == 0 }

// At returns the character at position i. It panics if i is not in
// [0, Len()) like indexing a string does.
func (t Text) At(i int) byte { return t.buf[i] }

// IsEnd reports whether t is the pattern list terminator End.
func (t Text) IsEnd() bool { return t.end }

// Find returns the position of the first c at or after pos. It returns
// NoPos if there is no such c or pos is not a valid position.
func (t Text) Find(c byte, pos int) int {
	if pos < 0 || pos > len(t.buf) {
		return NoPos
	}
	i := strings.IndexByte(t.buf[pos:], c)
	if i < 0 {
		return NoPos
	}
	return pos + i
}

func (t Text) checkPos(op string, pos int) error {
	if pos < 0 || pos > len(t.buf) {
		return PositionError{Op: op, Pos: pos, Len: len(t.buf)}
	}
	return nil
}

// cut returns the characters from start up to end without checks.
func (t Text) cut(start, end int) Text { return Text{buf: t.buf[start:end]} }
