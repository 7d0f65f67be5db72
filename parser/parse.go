// Package parser turns directory server access log lines into typed,
// immutable message values. The tokenizer splits a line into a
// timestamp, discriminator tokens and an ordered named value map; the
// registry picks the concrete variant; field projections coerce raw
// text into typed accessors. A successfully parsed message reproduces
// its original line verbatim through String().
package parser

import (
	"github.com/pingidentity/ldapsdk-sub019/internal"
	"github.com/pingidentity/ldapsdk-sub019/record"
)

// ParseMessage parses a single already-obtained access log line, for
// callers that drive their own line source. Comment and blank line
// filtering is a Reader policy and does not happen here.
func ParseMessage(line string) (record.Message, error) {
	return parse(line, 0)
}

func parse(line string, number uint) (record.Message, error) {
	base, err := Tokenize(line, number)
	if err != nil {
		return nil, internal.ParseError{Line: line, LineNumber: number, Err: err}
	}

	message, err := dispatch(base)
	if err != nil {
		return nil, internal.ParseError{Line: line, LineNumber: number, Err: err}
	}
	return message, nil
}
