// The check command validates an access log, reporting each unparsable
// line. The reader's skip-and-continue policy means one bad line never
// aborts the rest of the file.

package command

import (
	"fmt"
	"strconv"

	"github.com/pingidentity/ldapsdk-sub019/internal"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func init() {
	args := Definition{
		Usage: "validate an access log and report unparsable lines",
		Flags: []Argument{
			{Name: "quiet", ShortName: "q", Type: Bool, Usage: "only print the totals"},
		},
	}

	GetFactory().Register("check", args, func() (Command, error) {
		return &check{instances: make(map[int]*checkInstance)}, nil
	})
}

type checkInstance struct {
	name   string
	quiet  bool
	parsed uint64
	failed uint64
}

type check struct {
	instances map[int]*checkInstance
}

func (c *check) Prepare(name string, instance int, args ArgumentCollection) error {
	c.instances[instance] = &checkInstance{
		name:  name,
		quiet: args.Booleans["quiet"],
	}
	return nil
}

func (c *check) Run(instance int, out commandTarget, in commandSource, _ commandError) error {
	state := c.instances[instance]

	for result := range in {
		if result.Error == nil {
			state.parsed += 1
			continue
		}
		state.failed += 1

		if state.quiet {
			continue
		}

		var parseError internal.ParseError
		if errors.As(result.Error, &parseError) {
			out <- fmt.Sprintf("%s %s",
				color.RedString("line %d:", parseError.LineNumber),
				parseError.Line)
			out <- fmt.Sprintf("  %s", color.HiWhiteString(parseError.Err.Error()))
		} else {
			out <- color.RedString(result.Error.Error())
		}
	}
	return nil
}

func (c *check) Finish(instance int, out commandTarget) error {
	state := c.instances[instance]

	status := color.GreenString("ok")
	if state.failed > 0 {
		status = color.RedString(strconv.FormatUint(state.failed, 10) + " unparsable")
	}
	out <- fmt.Sprintf("%s: %d parsed, %s", state.name, state.parsed, status)
	return nil
}
