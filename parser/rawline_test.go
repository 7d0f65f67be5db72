package parser

import (
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/pingidentity/ldapsdk-sub019/internal"
)

func TestTokenize(tr *testing.T) {
	tr.Run("Timestamp", func(t *testing.T) {
		base, err := Tokenize("[01/Jun/2021:12:00:00 -0500] CONNECT conn=1", 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		expected := time.Date(2021, 6, 1, 12, 0, 0, 0, time.FixedZone("", -5*3600))
		if !base.Time.Equal(expected) {
			t.Errorf("timestamp parsed as %s, expected %s", base.Time, expected)
		}
	})

	tr.Run("TimestampMillis", func(t *testing.T) {
		base, err := Tokenize("[01/Jun/2021:12:00:00.123 -0500] CONNECT conn=1", 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		if base.Time.Nanosecond() != 123000000 {
			t.Errorf("expected 123ms, got %dns", base.Time.Nanosecond())
		}
	})

	tr.Run("TimestampInvalid", func(t *testing.T) {
		for _, line := range []string{
			"",
			"no timestamp here",
			"[01/Jun/2021:12:00:00 -0500 unterminated",
			"[not a timestamp] CONNECT",
			"01/Jun/2021:12:00:00 -0500] CONNECT",
		} {
			if _, err := Tokenize(line, 1); errors.Cause(err) != internal.MalformedTimestamp {
				t.Errorf("line %q should fail with a timestamp error, got %v", line, err)
			}
		}
	})

	tr.Run("Discriminators", func(t *testing.T) {
		base, err := Tokenize("[01/Jun/2021:12:00:00 -0500] SEARCH REQUEST conn=1 op=2", 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		if len(base.Tokens) != 2 || base.Tokens[0] != "SEARCH" || base.Tokens[1] != "REQUEST" {
			t.Errorf("expected [SEARCH REQUEST], got %v", base.Tokens)
		}
	})

	tr.Run("TooManyDiscriminators", func(t *testing.T) {
		_, err := Tokenize("[01/Jun/2021:12:00:00 -0500] ONE TWO THREE conn=1", 1)
		if errors.Cause(err) != internal.MalformedMessage {
			t.Errorf("three barewords should fail, got %v", err)
		}
	})

	tr.Run("BarewordAfterNamed", func(t *testing.T) {
		_, err := Tokenize("[01/Jun/2021:12:00:00 -0500] SEARCH conn=1 REQUEST", 1)
		if errors.Cause(err) != internal.MalformedMessage {
			t.Errorf("bareword after named values should fail, got %v", err)
		}
	})

	tr.Run("QuotedValues", func(t *testing.T) {
		base, err := Tokenize(`[01/Jun/2021:12:00:00 -0500] ADD REQUEST dn="ou=People, dc=example, dc=com" conn=1`, 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		if v, ok := base.Value("dn"); !ok || v != "ou=People, dc=example, dc=com" {
			t.Errorf("quoted value with spaces parsed incorrectly (%q)", v)
		}
		if v, ok := base.Value("conn"); !ok || v != "1" {
			t.Errorf("bareword value after quoted value parsed incorrectly (%q)", v)
		}
	})

	tr.Run("UnterminatedQuote", func(t *testing.T) {
		_, err := Tokenize(`[01/Jun/2021:12:00:00 -0500] ADD REQUEST dn="ou=People`, 1)
		if errors.Cause(err) != internal.MalformedToken {
			t.Errorf("unterminated quote should fail, got %v", err)
		}
	})

	tr.Run("EmptyValue", func(t *testing.T) {
		base, err := Tokenize(`[01/Jun/2021:12:00:00 -0500] SEARCH REQUEST base="" filter="(objectClass=*)"`, 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		if v, ok := base.Value("base"); !ok || v != "" {
			t.Error("empty quoted value should resolve to an empty string")
		}
	})

	tr.Run("DuplicateFirstWins", func(t *testing.T) {
		base, err := Tokenize("[01/Jun/2021:12:00:00 -0500] CONNECT conn=1 conn=2", 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		if v, _ := base.Value("conn"); v != "1" {
			t.Errorf("first occurrence should win, got %s", v)
		}
		if len(base.Named) != 1 {
			t.Errorf("duplicate should be dropped from the ordered view, got %d entries", len(base.Named))
		}
	})

	tr.Run("OrderPreserved", func(t *testing.T) {
		base, err := Tokenize("[01/Jun/2021:12:00:00 -0500] CONNECT conn=1 from=a to=b protocol=LDAP", 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		names := []string{"conn", "from", "to", "protocol"}
		if len(base.Named) != len(names) {
			t.Fatalf("expected %d named values, got %d", len(names), len(base.Named))
		}
		for i, name := range names {
			if base.Named[i].Name != name {
				t.Errorf("named value %d is %s, expected %s", i, base.Named[i].Name, name)
			}
		}
	})

	tr.Run("RawPreserved", func(t *testing.T) {
		line := `[01/Jun/2021:12:00:00 -0500] ADD RESULT conn=1 dn="dc=example,dc=com"`
		base, err := Tokenize(line, 1)
		if err != nil {
			t.Fatalf("tokenize returned an error (%s)", err)
		}
		if base.Raw != line {
			t.Error("raw line must be preserved byte for byte")
		}
	})
}
