package parser

import (
	"io"
	"strings"

	"github.com/pingidentity/ldapsdk-sub019/record"
	"github.com/pingidentity/ldapsdk-sub019/util"
)

// A LineSource supplies raw text lines forward-only. Next returns io.EOF
// once the source is exhausted.
type LineSource interface {
	Next() (string, error)
	Close() error
}

// Reader pulls lines from a LineSource and yields one parsed message per
// Read call. Comment lines (leading '#') and blank lines are skipped
// here as policy; the source itself stays a dumb line supplier. A parse
// failure consumes the offending line, so the next Read continues with
// the following one rather than failing the whole stream.
//
// A Reader owns its LineSource exclusively and is not safe for
// concurrent use; the messages it returns are.
type Reader struct {
	source LineSource
	line   uint
	closed bool
}

func NewReader(source LineSource) *Reader {
	return &Reader{source: source}
}

// Read returns the next parsed message, io.EOF at end of stream, or an
// internal.ParseError describing the line that failed.
func (r *Reader) Read() (record.Message, error) {
	if r.closed {
		return nil, io.EOF
	}

	for {
		text, err := r.source.Next()
		if err != nil {
			return nil, err
		}
		r.line += 1

		if util.IsBlank(text) || strings.HasPrefix(text, "#") {
			continue
		}

		return parse(text, r.line)
	}
}

// Close releases the underlying source. Calling it more than once is
// harmless.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.source.Close()
}
