package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

/*
 * Tokenizer errors.
 */
var MalformedTimestamp = errors.New("malformed or missing timestamp")
var MalformedToken = errors.New("malformed token")
var MalformedMessage = errors.New("malformed log message")

/*
 * Dispatcher errors.
 */
var MessageTypeUnrecognized = errors.New("unrecognized access log message type")
var OperationTypeUnrecognized = errors.New("unrecognized operation type")
var MessageTypeUnregistered = errors.New("message type not valid for operation")

// A ParseError wraps any failure encountered while turning a single line
// of text into a message. Callers branch on "parse failed", not on the
// cause, so every tokenizer, dispatcher and coercion failure funnels
// through this one type.
type ParseError struct {
	Line       string
	LineNumber uint
	Err        error
}

func (e ParseError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("line %d unparsable: %v", e.LineNumber, e.Err)
	}
	return fmt.Sprintf("line unparsable: %v", e.Err)
}

func (e ParseError) Cause() error { return e.Err }

func (e ParseError) Unwrap() error { return e.Err }
