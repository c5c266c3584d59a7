/*
Package xtext provides Text, an immutable byte-character sequence with a
small set of extraction, matching, trimming and splitting operations on top
of Go's string.

Every operation that yields text returns a new Text, the receiver is never
changed. All operations are built from two primitives: Find, which locates
a character at or after a position, and Range, which cuts a substring by
position and count.

# Positions

A position is a zero based byte offset. Operations that take a position
accept 0 ≤ pos ≤ Len(). pos == Len() denotes the end of the text and is
always valid, e.g.

	t := xtext.New("key=value")
	t.Range(t.Len(), 0) // empty, no error

Any other position yields a PositionError.

# Extraction

UpTo extracts the text from a position up to, but not including, the next
occurrence of a delimiter:

	t.UpTo('=', 0) // "key"
	t.UpTo('=', 4) // "value"

If the delimiter does not occur, the remainder of the text is returned. An
empty text with position 0 always yields an empty text.

# Matching

Patterns are given in one of three shapes:

	t.MatchAny(xtext.Texts("-s", "--select")...)   // the slice is the list
	t.MatchAnyN(pats, 2)                            // explicit count
	t.MatchAnyTerminated(xtext.Terminate(pats...))  // terminated by End

The counted and the terminated forms check their input and report an
ArgumentError when the count exceeds the patterns or the terminator is
missing.

# Trimming and Splitting

Trim removes a character from both ends, right side first. Split cuts a
text at each delimiter. Consecutive delimiters yield empty segments, an
empty text yields no segments at all:

	xtext.New("a,,b,").Split(',', false) // ["a" "" "b" ""]

With keep set, each segment that was terminated by a delimiter keeps it,
so Join(t.Split(d, true)) reconstructs t.
*/
package xtext
