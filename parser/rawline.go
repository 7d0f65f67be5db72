package parser

import (
	"strings"
	"time"
	"unicode"

	"github.com/pingidentity/ldapsdk-sub019/internal"
	"github.com/pingidentity/ldapsdk-sub019/record"
	"github.com/pingidentity/ldapsdk-sub019/util"

	"github.com/pkg/errors"
)

// Timestamp layouts. Access logs bracket the timestamp and may or may
// not carry milliseconds:
// [01/Jan/2021:00:00:00 +0000]
// [01/Jan/2021:00:00:00.123 +0000]
const timestampLayout = "02/Jan/2006:15:04:05 -0700"
const timestampLayoutMillis = "02/Jan/2006:15:04:05.000 -0700"

// The maximum number of discriminator tokens on a line: an operation
// type followed by a message type.
const maxDiscriminators = 2

// Tokenize splits one raw line (no trailing newline) into a record.Base:
// the bracketed timestamp, 0-2 discriminator tokens and the ordered
// name=value map. Discriminator tokens must all precede the first named
// token. Quoted values open at a '"' immediately following '=' and close
// at the next '"' with no escape processing.
func Tokenize(line string, number uint) (record.Base, error) {
	r := util.NewRuneReader(line)

	ts, err := scanTimestamp(r)
	if err != nil {
		return record.Base{}, err
	}

	var (
		tokens    []string
		named     []record.NamedValue
		seen      = make(map[string]bool)
		seenNamed = false
	)

	for !r.ChompWS().EOL() {
		name, isNamed, err := scanFieldName(r)
		if err != nil {
			return record.Base{}, err
		}

		if !isNamed {
			// A bareword is a discriminator token. Once a named value has
			// appeared no further discriminators are permitted.
			if seenNamed {
				return record.Base{}, errors.Wrapf(internal.MalformedMessage,
					"unquoted token %q after named values", name)
			}
			tokens = append(tokens, name)
			if len(tokens) > maxDiscriminators {
				return record.Base{}, errors.Wrap(internal.MalformedMessage,
					"too many unquoted tokens")
			}
			continue
		}

		if name == "" {
			return record.Base{}, errors.Wrap(internal.MalformedToken, "empty field name")
		}

		value, err := scanFieldValue(r)
		if err != nil {
			return record.Base{}, err
		}

		seenNamed = true
		if !seen[name] {
			// First occurrence wins on duplicate names.
			seen[name] = true
			named = append(named, record.NamedValue{Name: name, Value: value})
		}
	}

	return record.NewBase(line, ts, tokens, named, number), nil
}

// scanTimestamp consumes the leading "[...]" block and parses it.
func scanTimestamp(r *util.RuneReader) (time.Time, error) {
	if !r.ExpectRune('[') {
		return time.Time{}, errors.Wrap(internal.MalformedTimestamp, "line must start with '['")
	}
	r.Skip(1)
	if !r.ScanUntilRune(']') {
		return time.Time{}, errors.Wrap(internal.MalformedTimestamp, "unterminated timestamp")
	}

	stamp := r.CurrentWord()
	r.Skip(1)

	layout := timestampLayout
	if strings.ContainsRune(stamp, '.') {
		layout = timestampLayoutMillis
	}

	ts, err := time.Parse(layout, stamp)
	if err != nil {
		return time.Time{}, errors.Wrapf(internal.MalformedTimestamp, "%q", stamp)
	}
	return ts, nil
}

// scanFieldName reads up to the next '=', whitespace or EOL. The second
// return value reports whether an '=' terminated the scan, i.e. whether
// this token is a named value rather than a bareword.
func scanFieldName(r *util.RuneReader) (string, bool, error) {
	start := r.Pos()
	for !r.EOL() {
		c := r.NextRune()
		if c == '=' || unicode.IsSpace(c) {
			break
		}
		r.Next()
	}

	end := r.Pos()
	r.Seek(start, end-start)
	word := r.CurrentWord()
	r.Seek(end, 0)

	if r.ExpectRune('=') {
		r.Skip(1)
		return word, true, nil
	}
	return word, false, nil
}

// scanFieldValue reads the value portion after an '='. A double quote
// directly following the '=' opens a quoted value ending at the next
// double quote; anything else is a bareword ending at whitespace.
func scanFieldValue(r *util.RuneReader) (string, error) {
	if r.ExpectRune('"') {
		value, err := r.EnclosedString('"', true)
		if err != nil {
			return "", errors.Wrap(internal.MalformedToken, "unterminated quoted value")
		}
		return value, nil
	}

	start := r.Pos()
	for !r.EOL() && !unicode.IsSpace(r.NextRune()) {
		r.Next()
	}
	end := r.Pos()
	r.Seek(start, end-start)
	value := r.CurrentWord()
	r.Seek(end, 0)
	return value, nil
}
