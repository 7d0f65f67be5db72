package parser

import (
	"testing"
	"time"

	"github.com/pingidentity/ldapsdk-sub019/record"
)

func makeBase(named ...record.NamedValue) record.Base {
	return record.NewBase("", time.Time{}, nil, named, 0)
}

func TestConversions(tr *testing.T) {
	tr.Run("Boolean", func(t *testing.T) {
		if v, ok := toBoolean("true"); !ok || !v {
			t.Error("'true' should convert")
		}
		if v, ok := toBoolean("false"); !ok || v {
			t.Error("'false' should convert")
		}
		for _, a := range []string{"True", "FALSE", "1", "0", "yes", ""} {
			if _, ok := toBoolean(a); ok {
				t.Errorf("%q should not convert to a boolean", a)
			}
		}
	})

	tr.Run("StringList", func(t *testing.T) {
		if list := toStringList("givenName,sn"); len(list) != 2 || list[0] != "givenName" || list[1] != "sn" {
			t.Errorf("expected [givenName sn], got %v", list)
		}
		if list := toStringList("single"); len(list) != 1 || list[0] != "single" {
			t.Errorf("expected [single], got %v", list)
		}
		if list := toStringList(""); list == nil || len(list) != 0 {
			t.Error("empty string should be an empty non-nil list")
		}
	})

	tr.Run("Numeric", func(t *testing.T) {
		if v, ok := toDouble("0.123"); !ok || v != 0.123 {
			t.Error("'0.123' should convert to a double")
		}
		if _, ok := toInt("12x"); ok {
			t.Error("'12x' should not convert to an int")
		}
		if v, ok := toLong("9223372036854775807"); !ok || v != 9223372036854775807 {
			t.Error("max int64 should convert to a long")
		}
	})
}

func TestProjections(tr *testing.T) {
	base := makeBase(
		record.NamedValue{Name: "conn", Value: "12"},
		record.NamedValue{Name: "etime", Value: "0.5"},
		record.NamedValue{Name: "flag", Value: "true"},
		record.NamedValue{Name: "bad", Value: "not-a-number"},
		record.NamedValue{Name: "resultCode", Value: "32"},
	)

	tr.Run("Present", func(t *testing.T) {
		if v := optLong(base, "conn"); v == nil || *v != 12 {
			t.Error("conn should project to 12")
		}
		if v := optDouble(base, "etime"); v == nil || *v != 0.5 {
			t.Error("etime should project to 0.5")
		}
		if v := optBool(base, "flag"); v == nil || !*v {
			t.Error("flag should project to true")
		}
		if rc := optResultCode(base, "resultCode"); rc == nil || rc.Name() != "NO_SUCH_OBJECT" {
			t.Error("resultCode should resolve through the canonical table")
		}
	})

	tr.Run("Absent", func(t *testing.T) {
		if optString(base, "missing") != nil {
			t.Error("absent field should project to nil")
		}
		if optInt(base, "missing") != nil {
			t.Error("absent field should project to nil")
		}
		if optList(base, "missing") != nil {
			t.Error("absent list should project to nil")
		}
	})

	tr.Run("Unconvertible", func(t *testing.T) {
		// A value that fails to convert behaves like an absent one.
		if optInt(base, "bad") != nil {
			t.Error("unconvertible int should project to nil")
		}
		if optBool(base, "bad") != nil {
			t.Error("unconvertible bool should project to nil")
		}
		if optString(base, "bad") == nil {
			t.Error("the raw text itself is still available as a string")
		}
	})
}
