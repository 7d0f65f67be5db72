package util

import "testing"

func TestRuneReader(tr *testing.T) {
	tr.Run("SlurpWord", func(t *testing.T) {
		r := NewRuneReader("  one two  three")
		if word, ok := r.SlurpWord(); !ok || word != "one" {
			t.Errorf("expected 'one', got '%s'", word)
		}
		if word, ok := r.SlurpWord(); !ok || word != "two" {
			t.Errorf("expected 'two', got '%s'", word)
		}
		if word, ok := r.SlurpWord(); !ok || word != "three" {
			t.Errorf("expected 'three', got '%s'", word)
		}
		if _, ok := r.SlurpWord(); ok {
			t.Error("expected end of string")
		}
	})

	tr.Run("EnclosedString", func(t *testing.T) {
		r := NewRuneReader(`"quoted value" trailing`)
		if s, err := r.EnclosedString('"', true); err != nil || s != "quoted value" {
			t.Errorf("expected 'quoted value', got '%s' (%v)", s, err)
		}
		r = NewRuneReader(`"kept" x`)
		if s, err := r.EnclosedString('"', false); err != nil || s != `"kept"` {
			t.Errorf("expected quotes kept, got '%s' (%v)", s, err)
		}
		r = NewRuneReader(`"unterminated`)
		if _, err := r.EnclosedString('"', true); err == nil {
			t.Error("expected error on unterminated string")
		}
		r = NewRuneReader(`bare`)
		if _, err := r.EnclosedString('"', true); err == nil {
			t.Error("expected error when opening quote is missing")
		}
	})

	tr.Run("EnclosedStringNoEscapes", func(t *testing.T) {
		// The first matching rune always closes the string.
		r := NewRuneReader(`"a\" b"`)
		if s, err := r.EnclosedString('"', true); err != nil || s != `a\` {
			t.Errorf("expected 'a\\', got '%s' (%v)", s, err)
		}
	})

	tr.Run("ScanUntilRune", func(t *testing.T) {
		r := NewRuneReader("abc]def")
		if !r.ScanUntilRune(']') {
			t.Error("expected to find ']'")
		}
		if r.CurrentWord() != "abc" {
			t.Errorf("expected 'abc', got '%s'", r.CurrentWord())
		}
		r = NewRuneReader("abcdef")
		if r.ScanUntilRune(']') {
			t.Error("expected not to find ']'")
		}
	})

	tr.Run("ChompWS", func(t *testing.T) {
		r := NewRuneReader("   x")
		if r.ChompWS().NextRune() != 'x' {
			t.Error("expected 'x' after chomping whitespace")
		}
		r = NewRuneReader("   ")
		if !r.ChompWS().EOL() {
			t.Error("expected EOL after chomping all-whitespace input")
		}
	})

	tr.Run("ExpectRune", func(t *testing.T) {
		r := NewRuneReader("[x]")
		if !r.ExpectRune('[') {
			t.Error("expected '[' at start")
		}
		r.Skip(1)
		if r.ExpectRune('[') {
			t.Error("did not expect '[' after skip")
		}
		r.Skip(5)
		if r.ExpectRune('x') {
			t.Error("ExpectRune beyond EOL should be false")
		}
	})

	tr.Run("SeekAndCurrentWord", func(t *testing.T) {
		r := NewRuneReader("hello world")
		r.Seek(6, 5)
		if r.CurrentWord() != "world" {
			t.Errorf("expected 'world', got '%s'", r.CurrentWord())
		}
	})

	tr.Run("Peek", func(t *testing.T) {
		r := NewRuneReader("abcdef")
		if r.Peek(3) != "abc" {
			t.Errorf("expected 'abc', got '%s'", r.Peek(3))
		}
		if r.Peek(100) != "abcdef" {
			t.Error("peek past end should truncate")
		}
		if r.Pos() != 0 {
			t.Error("peek should not advance")
		}
	})

	tr.Run("Remainder", func(t *testing.T) {
		r := NewRuneReader("one two")
		r.SlurpWord()
		if rem := r.ChompWS().Remainder(); rem != "two" {
			t.Errorf("expected 'two', got '%s'", rem)
		}
		if r.Remainder() != "" {
			t.Error("second remainder should be empty")
		}
	})
}
