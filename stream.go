package vertigo

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// HookFunc is called for every content position before filtering, e.g. to feed
// external counters. It must treat sattrs as read-only.
type HookFunc func(Position, Sattrs)

// IgnoreFunc decides whether a content position is dropped from the stream.
type IgnoreFunc func(Position, Sattrs) bool

type streamConfig struct {
	parseAttrs bool
	ignore     IgnoreFunc
	hook       HookFunc
	report     int
	logger     *log.Logger
}

type StreamOption func(*streamConfig)

// WithRawAttrs keeps structural tag attributes as unparsed text instead of
// scanning them into key/value pairs.
func WithRawAttrs() StreamOption {
	return func(c *streamConfig) {
		c.parseAttrs = false
	}
}

func WithIgnoreFunc(ignore IgnoreFunc) StreamOption {
	return func(c *streamConfig) {
		c.ignore = ignore
	}
}

func WithHookFunc(hook HookFunc) StreamOption {
	return func(c *streamConfig) {
		c.hook = hook
	}
}

// WithReportEvery logs advisory progress to stderr every n input lines.
// Reporting is off by default.
func WithReportEvery(n int) StreamOption {
	return func(c *streamConfig) {
		c.report = n
	}
}

func WithLogger(logger *log.Logger) StreamOption {
	return func(c *streamConfig) {
		c.logger = logger
	}
}

// PositionScanner streams content positions from one pass over a corpus while
// tracking the currently open structural tags. Use it like bufio.Scanner:
//
//	scanner, _ := vertical.Positions()
//	for scanner.Next() {
//		p, sattrs := scanner.Position(), scanner.Sattrs()
//		...
//	}
//	if err := scanner.Err(); err != nil { ... }
//
// A scanner is good for one pass; call Positions again for another.
type PositionScanner struct {
	vertical *Vertical
	source   LineSource
	config   streamConfig
	sattrs   Sattrs
	position Position
	line     int
	start    time.Time
	err      error
	done     bool
}

// Positions opens the corpus and returns a scanner over its content positions.
// The underlying file is closed when the scan completes, fails or is closed
// early via Close.
func (v *Vertical) Positions(options ...StreamOption) (*PositionScanner, error) {
	config := streamConfig{
		parseAttrs: true,
		logger:     log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, option := range options {
		option(&config)
	}
	source, err := v.open(v.Path)
	if err != nil {
		return nil, err
	}
	return &PositionScanner{
		vertical: v,
		source:   source,
		config:   config,
		sattrs:   Sattrs{},
		start:    time.Now(),
	}, nil
}

// Next advances to the next content position. It returns false when the input
// is exhausted or the stream failed; consult Err afterwards.
func (s *PositionScanner) Next() bool {
	if s.done {
		return false
	}
	for s.source.Scan() {
		s.line++
		line := strings.Trim(s.source.Text(), " \r")
		if s.config.report > 0 && s.line%s.config.report == 0 {
			s.config.logger.Printf("processed %d lines in %v", s.line, time.Since(s.start))
		}
		if match, ok := s.vertical.matcher.Match(line); ok {
			if err := s.applyTag(match); err != nil {
				s.fail(err)
				return false
			}
			continue
		}
		position, err := s.vertical.parse(s.vertical.schema, line)
		if err != nil {
			s.fail(fmt.Errorf("line %d: %w", s.line, err))
			return false
		}
		if s.config.hook != nil {
			s.config.hook(position, s.sattrs)
		}
		if s.config.ignore != nil && s.config.ignore(position, s.sattrs) {
			continue
		}
		s.position = position
		return true
	}
	s.fail(s.source.Err())
	return false
}

// applyTag updates sattrs for one structural tag line. The corpus is assumed
// well-formed: an unbalanced close or a same-name nested open kills the stream.
func (s *PositionScanner) applyTag(match TagMatch) error {
	switch match.Kind {
	case TagClose:
		if _, ok := s.sattrs[match.Name]; !ok {
			return fmt.Errorf("vertigo: line %d: closing </%s> with no open <%s>", s.line, match.Name, match.Name)
		}
		delete(s.sattrs, match.Name)
	case TagSelfClose:
		// No region, no state change.
	case TagOpen:
		if _, ok := s.sattrs[match.Name]; ok {
			return fmt.Errorf("vertigo: line %d: <%s> is already open, same-name nesting is unsupported", s.line, match.Name)
		}
		structure := Structure{
			Name: match.Name,
			Raw:  match.RawAttrs,
		}
		if s.config.parseAttrs {
			structure.Attrs = ParseAttrs(match.RawAttrs)
		}
		s.sattrs[match.Name] = structure
	}
	return nil
}

func (s *PositionScanner) fail(err error) {
	if s.done {
		return
	}
	s.done = true
	closeErr := s.source.Close()
	if err == nil {
		err = closeErr
	}
	s.err = err
}

// Position returns the position produced by the last successful Next.
func (s *PositionScanner) Position() Position {
	return s.position
}

// Sattrs returns the open-tag context as of the last produced position. The
// same map is mutated as the stream advances; callers needing a snapshot must
// copy it.
func (s *PositionScanner) Sattrs() Sattrs {
	return s.sattrs
}

// Err returns the first error hit by the stream, nil after a clean pass.
func (s *PositionScanner) Err() error {
	return s.err
}

// Close stops the scan early and releases the corpus file. It is safe to call
// after the scan already finished.
func (s *PositionScanner) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.source.Close()
}
