package format

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pingidentity/ldapsdk-sub019/record"

	"github.com/olekukonko/tablewriter"
)

// LogSummary accumulates per-file statistics about an access log: the
// covered time range, how many lines parsed, and distributions over
// message types and result codes.
type LogSummary struct {
	Source string
	Start  time.Time
	End    time.Time

	Parsed uint64
	Failed uint64

	Types       map[string]uint64
	ResultCodes map[record.ResultCode]uint64
}

func NewLogSummary(name string) *LogSummary {
	return &LogSummary{
		Source:      name,
		Types:       make(map[string]uint64),
		ResultCodes: make(map[record.ResultCode]uint64),
	}
}

func (s *LogSummary) Update(message record.Message) {
	s.Parsed += 1

	if s.Start.IsZero() {
		s.Start = message.Timestamp()
	}
	s.End = message.Timestamp()

	key := message.MessageType().String()
	if op := message.OperationType(); op != record.OperationNone {
		key = op.String() + " " + key
	}
	s.Types[key] += 1

	switch m := message.(type) {
	case record.AddResult:
		s.resultCode(m.ResultCode)
	case record.BindResult:
		s.resultCode(m.ResultCode)
	case record.CompareResult:
		s.resultCode(m.ResultCode)
	case record.DeleteResult:
		s.resultCode(m.ResultCode)
	case record.ExtendedResult:
		s.resultCode(m.ResultCode)
	case record.ModifyResult:
		s.resultCode(m.ResultCode)
	case record.ModifyDNResult:
		s.resultCode(m.ResultCode)
	case record.SearchResult:
		s.resultCode(m.ResultCode)
	case record.AbandonResult:
		s.resultCode(m.ResultCode)
	}
}

func (s *LogSummary) resultCode(rc *record.ResultCode) {
	if rc != nil {
		s.ResultCodes[*rc] += 1
	}
}

const timePrint = "2006 Jan 02 15:04:05.000"

func (s *LogSummary) Print(w io.Writer) {
	write := func(name, value, empty string) {
		if value == "" && empty == "" {
			return
		}
		if len(name) < 11 {
			w.Write([]byte(strings.Repeat(" ", 11-len(name))))
		}
		w.Write([]byte(name))
		w.Write([]byte(": "))
		if value != "" {
			w.Write([]byte(value))
		} else {
			w.Write([]byte(empty))
		}
		w.Write([]byte("\n"))
	}

	write("source", s.Source, "")
	if !s.Start.IsZero() {
		write("start", s.Start.Format(timePrint), "")
		write("end", s.End.Format(timePrint), "")
	}
	write("parsed", strconv.FormatUint(s.Parsed, 10), "0")
	write("failed", strconv.FormatUint(s.Failed, 10), "0")
	w.Write([]byte{'\n'})

	s.printTypes(w)
	s.printResultCodes(w)
}

func (s *LogSummary) printTypes(w io.Writer) {
	if len(s.Types) == 0 {
		return
	}

	keys := make([]string, 0, len(s.Types))
	for key := range s.Types {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.Append([]string{"message type", "count"})
	table.SetBorder(false)
	table.SetRowLine(false)
	table.SetCenterSeparator(" ")
	table.SetColumnSeparator(" ")

	for _, key := range keys {
		table.Append([]string{key, strconv.FormatUint(s.Types[key], 10)})
	}
	table.Render()
	w.Write([]byte{'\n'})
}

func (s *LogSummary) printResultCodes(w io.Writer) {
	if len(s.ResultCodes) == 0 {
		return
	}

	codes := make([]record.ResultCode, 0, len(s.ResultCodes))
	for code := range s.ResultCodes {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].Value < codes[j].Value })

	table := tablewriter.NewWriter(w)
	table.Append([]string{"result code", "name", "count"})
	table.SetBorder(false)
	table.SetRowLine(false)
	table.SetCenterSeparator(" ")
	table.SetColumnSeparator(" ")

	for _, code := range codes {
		table.Append([]string{
			strconv.Itoa(code.Value),
			code.Name(),
			strconv.FormatUint(s.ResultCodes[code], 10),
		})
	}
	table.Render()
	w.Write([]byte{'\n'})
}

// Divider separates per-file sections when several logs are summarized
// in one run.
func (LogSummary) Divider(w io.Writer) {
	w.Write([]byte("\n------------------------------------------\n"))
}

// Buffer renders the summary to a string for channel-based output.
func (s *LogSummary) Buffer() string {
	b := bytes.NewBuffer(nil)
	s.Print(b)
	return b.String()
}
