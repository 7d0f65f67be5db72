// The json command re-emits each parsed message as one JSON object per
// line, suitable for piping into log shipping tools.

package command

import (
	"encoding/json"

	"github.com/pingidentity/ldapsdk-sub019/record"
)

func init() {
	args := Definition{
		Usage: "output parsed access log messages as JSON lines",
		Flags: []Argument{
			{Name: "raw", ShortName: "r", Type: Bool, Usage: "include the original line text"},
		},
	}

	GetFactory().Register("json", args, func() (Command, error) {
		return &jsonOutput{}, nil
	})
}

type jsonOutput struct {
	raw bool
}

func (j *jsonOutput) Prepare(_ string, _ int, args ArgumentCollection) error {
	j.raw = args.Booleans["raw"]
	return nil
}

func (j *jsonOutput) Run(_ int, out commandTarget, in commandSource, errs commandError) error {
	for result := range in {
		if result.Error != nil {
			errs <- result.Error
			continue
		}

		encoded, err := json.Marshal(j.object(result.Message))
		if err != nil {
			errs <- err
			continue
		}
		out <- string(encoded)
	}
	return nil
}

func (j *jsonOutput) Finish(int, commandTarget) error {
	return nil
}

func (j *jsonOutput) object(m record.Message) map[string]interface{} {
	fields := make(map[string]string)
	for _, nv := range m.NamedValues() {
		fields[nv.Name] = nv.Value
	}

	object := map[string]interface{}{
		"timestamp": m.Timestamp(),
		"type":      m.MessageType().String(),
		"fields":    fields,
	}
	if op := m.OperationType(); op != record.OperationNone {
		object["operation"] = op.String()
	}
	if j.raw {
		object["raw"] = m.String()
	}
	return object
}
