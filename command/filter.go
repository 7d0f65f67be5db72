// The filter command selects access log lines by connection, operation
// or discriminator tokens and emits the matches verbatim. Output lines
// are byte-identical to the input because messages reproduce their
// original text.

package command

import (
	"strconv"

	"github.com/pingidentity/ldapsdk-sub019/record"
	"github.com/pingidentity/ldapsdk-sub019/util"

	"github.com/pkg/errors"
)

func init() {
	args := Definition{
		Usage: "filter access log lines by connection, operation or message type",
		Flags: []Argument{
			{Name: "conn", ShortName: "c", Type: Int, Usage: "limit by connection ID"},
			{Name: "op", Type: Int, Usage: "limit by operation ID"},
			{Name: "operation", ShortName: "o", Type: String, Usage: "limit by operation type (ADD, BIND, ...)"},
			{Name: "type", ShortName: "t", Type: String, Usage: "limit by message type (REQUEST, RESULT, ...)"},
		},
	}

	GetFactory().Register("filter", args, func() (Command, error) {
		return &filter{instances: make(map[int]*filterInstance)}, nil
	})
}

type filterInstance struct {
	conn        *int
	op          *int
	operation   *record.OperationType
	messageType *record.MessageType
}

type filter struct {
	instances map[int]*filterInstance
}

func (f *filter) Prepare(_ string, instance int, args ArgumentCollection) error {
	check := &filterInstance{}

	if conn, ok := args.Integers["conn"]; ok {
		check.conn = &conn
	}
	if op, ok := args.Integers["op"]; ok {
		check.op = &op
	}
	if token, ok := args.Strings["operation"]; ok {
		operation, found := record.OperationTypeForToken(util.StringToUpper(token))
		if !found {
			return errors.Errorf("unknown operation type %q", token)
		}
		check.operation = &operation
	}
	if token, ok := args.Strings["type"]; ok {
		messageType, found := record.MessageTypeForToken(util.StringToUpper(token))
		if !found {
			return errors.Errorf("unknown message type %q", token)
		}
		check.messageType = &messageType
	}

	f.instances[instance] = check
	return nil
}

func (f *filter) Run(instance int, out commandTarget, in commandSource, errs commandError) error {
	check := f.instances[instance]

	for result := range in {
		if result.Error != nil {
			errs <- result.Error
			continue
		}
		if check.matches(result.Message) {
			out <- result.Message.String()
		}
	}
	return nil
}

func (f *filter) Finish(int, commandTarget) error {
	return nil
}

func (c *filterInstance) matches(m record.Message) bool {
	if c.operation != nil && m.OperationType() != *c.operation {
		return false
	}
	if c.messageType != nil && m.MessageType() != *c.messageType {
		return false
	}
	if c.conn != nil && !matchesIntField(m, "conn", *c.conn) {
		return false
	}
	if c.op != nil && !matchesIntField(m, "op", *c.op) {
		return false
	}
	return true
}

func matchesIntField(m record.Message, name string, expected int) bool {
	raw, ok := m.Value(name)
	if !ok {
		return false
	}
	value, err := strconv.Atoi(raw)
	return err == nil && value == expected
}
