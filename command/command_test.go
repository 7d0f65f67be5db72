package command

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/pingidentity/ldapsdk-sub019/parser"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

// brokenSource fails every Next call with the same non-EOF error, the
// way a scanner does once a line exceeds its buffer.
type brokenSource struct {
	err error
}

func (s *brokenSource) Next() (string, error) { return "", s.err }

func (s *brokenSource) Close() error { return nil }

type countingCommand struct {
	results int
	errors  int
}

func (c *countingCommand) Prepare(string, int, ArgumentCollection) error { return nil }

func (c *countingCommand) Run(_ int, _ commandTarget, in commandSource, _ commandError) error {
	for result := range in {
		c.results += 1
		if result.Error != nil {
			c.errors += 1
		}
	}
	return nil
}

func (c *countingCommand) Finish(int, commandTarget) error { return nil }

func TestRunCommand(tr *testing.T) {
	tr.Run("NoInput", func(t *testing.T) {
		if err := RunCommand(&countingCommand{}, nil, Output{}); err == nil {
			t.Error("running without inputs should fail")
		}
	})

	tr.Run("BrokenSourceTerminates", func(t *testing.T) {
		// A source that fails persistently must surface its error once
		// and end the stream instead of repeating it forever.
		cmd := &countingCommand{}
		input := []Input{{
			Name:   "broken",
			Reader: parser.NewReader(&brokenSource{err: errors.New("token too long")}),
		}}
		output := Output{
			Writer: nopWriteCloser{bytes.NewBuffer(nil)},
			Error:  nopWriteCloser{bytes.NewBuffer(nil)},
		}

		if err := RunCommand(cmd, input, output); err != nil {
			t.Fatalf("run returned an error (%s)", err)
		}
		if cmd.results != 1 || cmd.errors != 1 {
			t.Errorf("expected exactly one failed result, got %d (%d failed)", cmd.results, cmd.errors)
		}
	})
}
