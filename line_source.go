package vertigo

import (
	"bufio"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// maxLineBytes bounds one corpus line. Vertical lines are short, this only
// guards against reading a non-vertical file by mistake.
const maxLineBytes = 1 << 20

// LineSource produces a lazy, finite, once-forward sequence of text lines.
// The position scanner does not care whether lines come from a plain file, a
// compressed stream or some faster backend.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
	Close() error
}

// OpenFunc opens the corpus at path and returns its line source.
type OpenFunc func(path string) (LineSource, error)

type fileLineSource struct {
	file    *os.File
	scanner *bufio.Scanner
}

// OpenFileLineSource reads lines from a plain text file.
func OpenFileLineSource(path string) (LineSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vertigo: opening corpus: %w", err)
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &fileLineSource{
		file:    file,
		scanner: scanner,
	}, nil
}

func (s *fileLineSource) Scan() bool {
	return s.scanner.Scan()
}

func (s *fileLineSource) Text() string {
	return s.scanner.Text()
}

func (s *fileLineSource) Err() error {
	return s.scanner.Err()
}

func (s *fileLineSource) Close() error {
	return s.file.Close()
}

type gzipLineSource struct {
	file    *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
}

// OpenGzipLineSource reads lines from a gzip-compressed text file.
func OpenGzipLineSource(path string) (LineSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vertigo: opening corpus: %w", err)
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("vertigo: opening gzip stream: %w", err)
	}
	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &gzipLineSource{
		file:    file,
		gz:      gz,
		scanner: scanner,
	}, nil
}

func (s *gzipLineSource) Scan() bool {
	return s.scanner.Scan()
}

func (s *gzipLineSource) Text() string {
	return s.scanner.Text()
}

func (s *gzipLineSource) Err() error {
	return s.scanner.Err()
}

func (s *gzipLineSource) Close() error {
	gzErr := s.gz.Close()
	if err := s.file.Close(); err != nil {
		return err
	}
	return gzErr
}
