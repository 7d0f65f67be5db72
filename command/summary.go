// The summary command reports per-file statistics: the covered time
// range, message type distribution, and result code distribution.

package command

import (
	"github.com/pingidentity/ldapsdk-sub019/command/format"
)

func init() {
	args := Definition{
		Usage: "summarize message types and result codes found in an access log",
		Flags: []Argument{},
	}

	GetFactory().Register("summary", args, func() (Command, error) {
		return &summary{Instance: make(map[int]*format.LogSummary)}, nil
	})
}

type summary struct {
	Instance map[int]*format.LogSummary
}

func (s *summary) Prepare(name string, instance int, _ ArgumentCollection) error {
	s.Instance[instance] = format.NewLogSummary(name)
	return nil
}

func (s *summary) Run(instance int, _ commandTarget, in commandSource, errs commandError) error {
	stats := s.Instance[instance]

	for result := range in {
		if result.Error != nil {
			stats.Failed += 1
			errs <- result.Error
			continue
		}
		stats.Update(result.Message)
	}
	return nil
}

func (s *summary) Finish(instance int, out commandTarget) error {
	stats := s.Instance[instance]
	if instance > 0 {
		out <- "\n------------------------------------------"
	}
	out <- stats.Buffer()
	return nil
}
