package record

import "testing"

func TestResultCodeFor(tr *testing.T) {
	tr.Run("Known", func(t *testing.T) {
		for value, name := range map[int]string{
			0:     "SUCCESS",
			32:    "NO_SUCH_OBJECT",
			49:    "INVALID_CREDENTIALS",
			80:    "OTHER",
			121:   "CANNOT_CANCEL",
			16654: "NO_OPERATION",
		} {
			rc := ResultCodeFor(value)
			if !rc.Known() {
				t.Errorf("code %d should be known", value)
			} else if rc.Name() != name {
				t.Errorf("code %d named %s, expected %s", value, rc.Name(), name)
			} else if rc.Value != value {
				t.Errorf("code %d did not preserve its value", value)
			}
		}
	})

	tr.Run("Unrecognized", func(t *testing.T) {
		rc := ResultCodeFor(9999)
		if rc.Known() {
			t.Error("code 9999 should not be known")
		}
		if rc.Name() != "UNRECOGNIZED" {
			t.Errorf("expected UNRECOGNIZED, got %s", rc.Name())
		}
		if rc.Value != 9999 {
			t.Error("unrecognized code must preserve its value")
		}
	})

	tr.Run("String", func(t *testing.T) {
		if s := ResultCodeFor(0).String(); s != "SUCCESS (0)" {
			t.Errorf("expected 'SUCCESS (0)', got '%s'", s)
		}
		if s := ResultCodeFor(9999).String(); s != "UNRECOGNIZED (9999)" {
			t.Errorf("expected 'UNRECOGNIZED (9999)', got '%s'", s)
		}
	})
}
