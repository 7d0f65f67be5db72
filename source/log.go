// Package source supplies raw access log lines from files, pipes and
// gzip archives. It knows nothing about the log grammar; filtering and
// parsing live with the consumer.
package source

import (
	"bufio"
	"compress/gzip"
	"io"

	"github.com/pingidentity/ldapsdk-sub019/parser"

	"github.com/pkg/errors"
)

type Log struct {
	closer  io.Closer
	scanner *bufio.Scanner

	closed bool
}

// Enforce the interface at compile time.
var _ parser.LineSource = (*Log)(nil)

// NewLog wraps a raw handle in a line source. Gzip-compressed input is
// detected by its magic header and decompressed transparently.
func NewLog(base io.ReadCloser) (*Log, error) {
	reader := bufio.NewReader(base)

	scanner, err := makeScanner(reader)
	if err != nil {
		return nil, err
	}
	return &Log{
		closer:  base,
		scanner: scanner,
	}, nil
}

func makeScanner(reader *bufio.Reader) (*bufio.Scanner, error) {
	var scanner = bufio.NewScanner(reader)

	// Check for gzip magic headers.
	if peek, err := reader.Peek(2); err == nil {
		if peek[0] == 0x1f && peek[1] == 0x8b {
			gzipReader, err := gzip.NewReader(reader)
			if err != nil {
				return nil, errors.Wrap(err, "gzip header detected but stream unreadable")
			}
			scanner = bufio.NewScanner(gzipReader)
		}
	}
	return scanner, nil
}

func (l *Log) Next() (string, error) {
	if l.closed {
		return "", io.EOF
	}
	if l.scanner.Scan() {
		return l.scanner.Text(), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (l *Log) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	return l.closer.Close()
}
