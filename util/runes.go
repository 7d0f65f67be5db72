package util

import (
	"fmt"
	"unicode"
)

// The RuneReader type is a helper structure for manually parsing through
// strings. It looks at a string by breaking it down into a set of _runes_.
// The runes are then examined using _start_ and _next_ pointers that move
// based on the method being used.
type RuneReader struct {
	start  int
	next   int
	length int
	runes  []rune
}

// Generates a RuneReader from a string.
func NewRuneReader(a string) *RuneReader {
	r := []rune(a)
	return &RuneReader{
		runes:  r,
		length: len(r),
		start:  0,
		next:   0,
	}
}

// ChompWS moves the _next_ pointer until a non-space or EOL is
// encountered and synchronizes the _start_ pointer to it.
func (r *RuneReader) ChompWS() *RuneReader {
	for ; r.next < r.length && unicode.IsSpace(r.runes[r.next]); r.next += 1 {
	}
	r.start = r.next
	return r
}

// CurrentWord uses the _start_ and _next_ pointers to return a sub-string
// from the larger rune set. It contains the _start_ and _next_ pointers
// inclusively and exclusively respectively.
func (r *RuneReader) CurrentWord() string {
	if r.start >= r.length || r.start == r.next {
		return ""
	}
	end := r.next
	if end > r.length {
		end = r.length
	}
	return string(r.runes[r.start:end])
}

// EnclosedString returns the string between the rune at the _next_ pointer
// and the next occurrence of _which_. No escape processing happens: the
// first matching rune always closes the string. The _snip_ parameter
// determines whether the enclosing runes are included in the result.
func (r *RuneReader) EnclosedString(which rune, snip bool) (string, error) {
	if r.next >= r.length || r.runes[r.next] != which {
		return "", fmt.Errorf("expected '%c' at position %d", which, r.next)
	}
	start := r.next
	for end := start + 1; end < r.length; end += 1 {
		if r.runes[end] == which {
			r.start, r.next = start, end+1
			if snip {
				return string(r.runes[start+1 : end]), nil
			}
			return string(r.runes[start : end+1]), nil
		}
	}
	return "", fmt.Errorf("unexpected end of string looking for quote (%c)", which)
}

// EOL returns whether the _next_ pointer is beyond the last rune in the
// rune set.
func (r *RuneReader) EOL() bool {
	return r.next >= r.length
}

func (r *RuneReader) ExpectRune(v rune) bool {
	if r.next > r.length-1 {
		return false
	}
	return r.runes[r.next] == v
}

// Length returns the total number of runes in the rune set. This may
// differ from the byte length in the original string.
func (r *RuneReader) Length() int {
	return r.length
}

// Next advances the _next_ pointer without changing the _start_ pointer
// and returns the rune passed over.
func (r *RuneReader) Next() (rune, bool) {
	if r.length < r.next+1 {
		return 0, false
	}
	r.next += 1
	return r.runes[r.next-1], true
}

// NextRune returns the rune pointed to by the _next_ pointer without
// advancing, or -1 at EOL.
func (r *RuneReader) NextRune() rune {
	if r.next >= r.length {
		return -1
	}
	return r.runes[r.next]
}

// Peek returns a string of up to _length_ runes beginning at the _next_
// pointer. It does not advance any pointers.
func (r *RuneReader) Peek(length int) string {
	if r.next >= r.length || length <= 0 {
		return ""
	}
	if r.next+length > r.length {
		length = r.length - r.next
	}
	return string(r.runes[r.next : r.next+length])
}

// Pos returns the current position of the _next_ pointer in the rune set.
func (r *RuneReader) Pos() int {
	return r.next
}

// Remainder returns a string of all runes from and including the _next_
// pointer to the last rune in the rune set.
func (r *RuneReader) Remainder() string {
	if r.next >= r.length {
		return ""
	}
	r.start = r.next
	r.next = r.length
	return string(r.runes[r.start:r.next])
}

// ScanUntilRune advances the _next_ pointer until it reaches _m_ or EOL.
// It returns true if the rune was found, false otherwise. The _start_
// pointer is synchronized to the position scanning began.
func (r *RuneReader) ScanUntilRune(m rune) bool {
	r.start = r.next
	for ; r.next < r.length && r.runes[r.next] != m; r.next += 1 {
	}
	return r.next < r.length
}

// Seek moves the _start_ pointer to _pos_ and the _next_ pointer _length_
// runes beyond it.
func (r *RuneReader) Seek(pos int, length int) {
	if pos < 0 {
		panic("negative position on seek")
	} else if length < 0 {
		panic("length cannot be less than zero")
	}
	r.start = pos
	r.next = pos + length
	if r.next > r.length {
		r.next = r.length
	}
}

func (r *RuneReader) Skip(length int) *RuneReader {
	r.start += length
	r.next += length
	if r.next > r.length {
		r.next = r.length
	}
	if r.start < 0 {
		r.start = 0
	}
	if r.next < 0 {
		r.next = 0
	}
	return r
}

// SlurpWord returns the next whitespace-delimited word beginning at the
// _next_ pointer, skipping any leading whitespace.
func (r *RuneReader) SlurpWord() (string, bool) {
	for ; r.next < r.length && unicode.IsSpace(r.runes[r.next]); r.next += 1 {
	}
	if r.next >= r.length {
		r.start = r.next
		return "", false
	}
	r.start = r.next
	for ; r.next < r.length && !unicode.IsSpace(r.runes[r.next]); r.next += 1 {
	}
	return string(r.runes[r.start:r.next]), true
}

func (r *RuneReader) String() string {
	return string(r.runes)
}
