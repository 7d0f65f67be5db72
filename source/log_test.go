package source

import (
	"bytes"
	"compress/gzip"
	"io"
	"io/ioutil"
	"testing"
)

func TestNewLog(tr *testing.T) {
	lines := "line one\nline two\nline three"

	tr.Run("Plain", func(t *testing.T) {
		log, err := NewLog(ioutil.NopCloser(bytes.NewBufferString(lines)))
		if err != nil {
			t.Fatalf("log returned an error (%s)", err)
		}
		for _, expected := range []string{"line one", "line two", "line three"} {
			line, err := log.Next()
			if err != nil {
				t.Fatalf("next returned an error (%s)", err)
			}
			if line != expected {
				t.Errorf("expected %q, got %q", expected, line)
			}
		}
		if _, err := log.Next(); err != io.EOF {
			t.Errorf("expected io.EOF, got %v", err)
		}
	})

	tr.Run("Gzip", func(t *testing.T) {
		buffer := bytes.NewBuffer(nil)
		writer := gzip.NewWriter(buffer)
		writer.Write([]byte(lines))
		writer.Close()

		log, err := NewLog(ioutil.NopCloser(buffer))
		if err != nil {
			t.Fatalf("log returned an error (%s)", err)
		}
		line, err := log.Next()
		if err != nil {
			t.Fatalf("next returned an error (%s)", err)
		}
		if line != "line one" {
			t.Errorf("gzip content should decompress transparently, got %q", line)
		}
	})

	tr.Run("Empty", func(t *testing.T) {
		log, err := NewLog(ioutil.NopCloser(bytes.NewBuffer(nil)))
		if err != nil {
			t.Fatalf("log returned an error (%s)", err)
		}
		if _, err := log.Next(); err != io.EOF {
			t.Errorf("expected io.EOF on empty input, got %v", err)
		}
	})

	tr.Run("Close", func(t *testing.T) {
		log, err := NewLog(ioutil.NopCloser(bytes.NewBufferString(lines)))
		if err != nil {
			t.Fatalf("log returned an error (%s)", err)
		}
		if err := log.Close(); err != nil {
			t.Errorf("close returned an error (%s)", err)
		}
		if err := log.Close(); err != nil {
			t.Error("second close should be a no-op")
		}
		if _, err := log.Next(); err != io.EOF {
			t.Error("next after close should return io.EOF")
		}
	})
}
