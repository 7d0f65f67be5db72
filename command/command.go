package command

import (
	"bufio"
	"io"
	"sync"

	"github.com/pingidentity/ldapsdk-sub019/internal"
	"github.com/pingidentity/ldapsdk-sub019/parser"
	"github.com/pingidentity/ldapsdk-sub019/record"

	"github.com/pkg/errors"
)

type Flag int

// Result is one line's outcome: either a parsed message or the parse
// failure for that line. Readers skip comments and blanks before
// anything lands here.
type Result struct {
	Message record.Message
	Error   error
}

type commandSource <-chan Result
type commandTarget chan<- string
type commandError chan<- error

type Input struct {
	Arguments ArgumentCollection
	Name      string
	Length    int64
	Reader    *parser.Reader
}

type Output struct {
	Writer io.WriteCloser
	Error  io.WriteCloser
}

type Command interface {
	Prepare(name string, instance int, args ArgumentCollection) error
	Run(instance int, out commandTarget, in commandSource, errs commandError) error
	Finish(instance int, out commandTarget) error
}

// RunCommand wires a command to its inputs: one goroutine per input
// feeding parsed messages through a channel, a shared output drain, and
// a shared error drain. Finish runs per input after every Run returns.
func RunCommand(f Command, in []Input, out Output) error {
	if len(in) == 0 || out.Writer == nil || out.Error == nil {
		return errors.New("an input and output handler are required")
	}

	var (
		outChannel   = make(chan string)
		errorChannel = make(chan error)

		processSync sync.WaitGroup
		outputSync  sync.WaitGroup

		outputWriter = bufio.NewWriter(out.Writer)
		errorWriter  = bufio.NewWriter(out.Error)
	)

	// Always flush the output at the end of execution.
	defer outputWriter.Flush()
	defer errorWriter.Flush()

	// Pass each file and its information to the command so it can prepare.
	for index, handle := range in {
		if err := f.Prepare(handle.Name, index, handle.Arguments); err != nil {
			return err
		}
	}

	outputSync.Add(2)
	go func() {
		defer outputSync.Done()
		for line := range outChannel {
			outputWriter.WriteString(line)
			outputWriter.WriteRune('\n')
		}
	}()
	go func() {
		defer outputSync.Done()
		for err := range errorChannel {
			errorWriter.WriteString(err.Error())
			errorWriter.WriteRune('\n')
		}
	}()

	processSync.Add(len(in))
	for index, handle := range in {
		go func(index int, handle Input) {
			defer processSync.Done()
			defer handle.Reader.Close()

			source := make(chan Result)
			go func() {
				defer close(source)
				for {
					message, err := handle.Reader.Read()
					if err == io.EOF {
						return
					}
					source <- Result{Message: message, Error: err}

					// A parse failure consumes its line and the stream
					// continues. Anything else comes from the source
					// itself and will not clear on retry.
					var parseError internal.ParseError
					if err != nil && !errors.As(err, &parseError) {
						return
					}
				}
			}()

			if err := f.Run(index, outChannel, source, errorChannel); err != nil {
				errorChannel <- err

				// Drain the feeder so its goroutine can exit.
				for range source {
				}
			}
		}(index, handle)
	}

	processSync.Wait()

	var finishError error
	for index := range in {
		if err := f.Finish(index, outChannel); err != nil && finishError == nil {
			finishError = err
		}
	}

	close(outChannel)
	close(errorChannel)
	outputSync.Wait()

	return finishError
}
