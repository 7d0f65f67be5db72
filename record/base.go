package record

import "time"

// A NamedValue is one name=value token from a log line with the raw,
// unquoted value text.
type NamedValue struct {
	Name  string
	Value string
}

// Base is the tokenized form of a single access log line. Every concrete
// message embeds it, so the original text, timestamp and raw value views
// are available on all of them. A Base is created once per parsed line
// and must be treated as read-only afterwards; parsed messages share it
// freely across goroutines for that reason.
type Base struct {
	// Raw is the original line, byte for byte.
	Raw string

	// Time is the parsed bracketed timestamp, millisecond precision.
	Time time.Time

	// Tokens holds the 0-2 discriminator tokens in order of appearance.
	Tokens []string

	// Named holds every name=value pair in insertion order. When a name
	// repeats, the first occurrence wins and later ones are dropped.
	Named []NamedValue

	// LineNumber is the 1-based position within the source, or zero when
	// the line was parsed standalone.
	LineNumber uint

	Type      MessageType
	Operation OperationType

	values map[string]string
}

// NewBase assembles a Base from tokenizer output. The value index is
// built here once so later field projections stay cheap.
func NewBase(raw string, ts time.Time, tokens []string, named []NamedValue, number uint) Base {
	values := make(map[string]string, len(named))
	for _, nv := range named {
		if _, ok := values[nv.Name]; !ok {
			values[nv.Name] = nv.Value
		}
	}
	return Base{
		Raw:        raw,
		Time:       ts,
		Tokens:     tokens,
		Named:      named,
		LineNumber: number,
		values:     values,
	}
}

// String returns the original log line verbatim. Reconstruction is by
// identity, never by regenerating text from parsed fields.
func (b Base) String() string { return b.Raw }

func (b Base) MessageType() MessageType { return b.Type }

func (b Base) OperationType() OperationType { return b.Operation }

func (b Base) Timestamp() time.Time { return b.Time }

// NamedValues returns every name=value pair in insertion order. The
// result is never nil.
func (b Base) NamedValues() []NamedValue {
	if b.Named == nil {
		return []NamedValue{}
	}
	return b.Named
}

// UnnamedValues returns the discriminator tokens in order. The result is
// never nil.
func (b Base) UnnamedValues() []string {
	if b.Tokens == nil {
		return []string{}
	}
	return b.Tokens
}

// Value looks up the raw text for a named field.
func (b Base) Value(name string) (string, bool) {
	v, ok := b.values[name]
	return v, ok
}

// The product, instance and startup identifiers may appear on any message
// regardless of its type, so they live here instead of in a field group.

func (b Base) ProductName() *string { return b.optional("productName") }

func (b Base) InstanceName() *string { return b.optional("instanceName") }

func (b Base) StartupID() *string { return b.optional("startupID") }

func (b Base) optional(name string) *string {
	if v, ok := b.values[name]; ok {
		return &v
	}
	return nil
}

// Message is the closed union over every access log variant. All
// concrete variants embed Base, which provides the full implementation.
type Message interface {
	MessageType() MessageType
	OperationType() OperationType
	Timestamp() time.Time
	NamedValues() []NamedValue
	UnnamedValues() []string
	Value(name string) (string, bool)
	String() string
}
