package parser

import (
	"strconv"
	"strings"

	"github.com/pingidentity/ldapsdk-sub019/record"
)

// Pure conversions from raw field text to typed values. Field-level
// conversions never abort a parse: a value that fails to convert leaves
// the accessor absent, matching how a field missing from the line
// behaves. Only line identity (timestamp, discriminator tokens) fails
// hard, and that happens before any of these run.

func toInt(a string) (int, bool) {
	v, err := strconv.Atoi(a)
	return v, err == nil
}

func toLong(a string) (int64, bool) {
	v, err := strconv.ParseInt(a, 10, 64)
	return v, err == nil
}

func toDouble(a string) (float64, bool) {
	v, err := strconv.ParseFloat(a, 64)
	return v, err == nil
}

// toBoolean accepts exactly "true" and "false"; anything else, including
// case variants, is not a boolean.
func toBoolean(a string) (bool, bool) {
	switch a {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// toStringList splits on commas preserving order. An empty string is an
// empty list, not a list containing one empty element.
func toStringList(a string) []string {
	if a == "" {
		return []string{}
	}
	return strings.Split(a, ",")
}

//
// Projections over the named value map. Absent or unconvertible fields
// come back nil.
//

func optString(b record.Base, name string) *string {
	if v, ok := b.Value(name); ok {
		return &v
	}
	return nil
}

func optInt(b record.Base, name string) *int {
	if raw, ok := b.Value(name); ok {
		if v, ok := toInt(raw); ok {
			return &v
		}
	}
	return nil
}

func optLong(b record.Base, name string) *int64 {
	if raw, ok := b.Value(name); ok {
		if v, ok := toLong(raw); ok {
			return &v
		}
	}
	return nil
}

func optDouble(b record.Base, name string) *float64 {
	if raw, ok := b.Value(name); ok {
		if v, ok := toDouble(raw); ok {
			return &v
		}
	}
	return nil
}

func optBool(b record.Base, name string) *bool {
	if raw, ok := b.Value(name); ok {
		if v, ok := toBoolean(raw); ok {
			return &v
		}
	}
	return nil
}

func optList(b record.Base, name string) []string {
	if raw, ok := b.Value(name); ok {
		return toStringList(raw)
	}
	return nil
}

func optResultCode(b record.Base, name string) *record.ResultCode {
	if v := optInt(b, name); v != nil {
		rc := record.ResultCodeFor(*v)
		return &rc
	}
	return nil
}

func optAuthenticationType(b record.Base, name string) *record.AuthenticationType {
	if raw, ok := b.Value(name); ok {
		t := record.AuthenticationType(raw)
		return &t
	}
	return nil
}

func optAssuranceLevel(b record.Base, name string) *record.AssuranceLevel {
	if raw, ok := b.Value(name); ok {
		l := record.AssuranceLevel(raw)
		return &l
	}
	return nil
}

func optScope(b record.Base, name string) *record.SearchScope {
	if v := optInt(b, name); v != nil {
		s := record.SearchScope(*v)
		return &s
	}
	return nil
}
