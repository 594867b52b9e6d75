// Copyright 2013 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package expfmt implements the OpenMetrics text exposition grammar and
// the semantic rules layered on top of it. Tokenize (this file) is the
// grammar front-end: it never rejects input for reasons other than
// lexical malformation, and never applies a type-specific rule. Every
// semantic decision lives downstream, in the family builder and
// validator.
package expfmt

import (
	"bytes"
	"strings"

	"github.com/prometheus/openmetrics-parser/model"
)

// RuleEvent is one node of the rule stream the grammar front-end emits,
// in document order. The semantic layer type-switches on it; the front
// end never interprets it.
type RuleEvent interface {
	ruleEvent()
	line() int
}

type lineEvent int

func (l lineEvent) line() int { return int(l) }

// HelpEvent is a `# HELP <name> <text>` descriptor line.
type HelpEvent struct {
	lineEvent
	MetricName string
	Text       string
}

// TypeEvent is a `# TYPE <name> <type>` descriptor line.
type TypeEvent struct {
	lineEvent
	MetricName string
	TypeToken  string
}

// UnitEvent is a `# UNIT <name> <unit>` descriptor line.
type UnitEvent struct {
	lineEvent
	MetricName string
	Unit       string
}

// SampleEvent is one `name{labels} value [timestamp] [# exemplar]` line.
type SampleEvent struct {
	lineEvent
	MetricName   string
	Labels       model.Labels
	Value        string
	HasTimestamp bool
	Timestamp    string
	Exemplar     *ExemplarToken
}

// ExemplarToken is the `# {labels} value [timestamp]` trailer on a
// sample line.
type ExemplarToken struct {
	Labels       model.Labels
	Value        string
	HasTimestamp bool
	Timestamp    string
}

// EOFEvent marks the mandatory terminal `# EOF` line.
type EOFEvent struct {
	lineEvent
}

func (HelpEvent) ruleEvent()   {}
func (TypeEvent) ruleEvent()   {}
func (UnitEvent) ruleEvent()   {}
func (SampleEvent) ruleEvent() {}
func (EOFEvent) ruleEvent()    {}

// Tokenize scans raw exposition bytes into a rule-event stream. It
// enforces only lexical well-formedness: a malformed descriptor line,
// an unterminated label value, or text found after the EOF token fails
// here with ErrSyntax. Everything else -- duplicate names, bad metric
// types, missing mandatory labels -- is the semantic layer's job.
func Tokenize(data []byte) ([]RuleEvent, error) {
	var events []RuleEvent
	sawEOF := false

	lineNo := 0
	for len(data) > 0 {
		lineNo++
		idx := bytes.IndexByte(data, '\n')
		var raw []byte
		if idx == -1 {
			raw = data
			data = nil
		} else {
			raw = data[:idx]
			data = data[idx+1:]
		}

		if sawEOF {
			if len(bytes.TrimSpace(raw)) != 0 {
				return nil, syntaxErrorf(lineNo, "text found after EOF token")
			}
			continue
		}

		if len(raw) == 0 {
			continue
		}

		if string(raw) == "# EOF" {
			events = append(events, EOFEvent{lineEvent(lineNo)})
			sawEOF = true
			continue
		}

		ev, err := parseLine(lineNo, raw)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if !sawEOF {
		return nil, syntaxErrorf(lineNo, "missing EOF token")
	}
	return events, nil
}

func parseLine(lineNo int, raw []byte) (RuleEvent, error) {
	s := &lineScanner{data: raw, lineNo: lineNo}

	if bytes.HasPrefix(raw, []byte("# HELP ")) {
		s.pos = len("# HELP")
		return s.parseHelp()
	}
	if bytes.HasPrefix(raw, []byte("# TYPE ")) {
		s.pos = len("# TYPE")
		return s.parseType()
	}
	if bytes.HasPrefix(raw, []byte("# UNIT ")) {
		s.pos = len("# UNIT")
		return s.parseUnit()
	}
	if bytes.HasPrefix(raw, []byte("#")) {
		return nil, syntaxErrorf(lineNo, "unrecognized descriptor line %q", string(raw))
	}
	return s.parseSample()
}

// lineScanner is a cursor over one line's bytes, in the teacher's
// state-fn-adjacent style: small stateless helpers advance a position
// and report what they consumed, rather than building a parse tree.
type lineScanner struct {
	data   []byte
	pos    int
	lineNo int
}

func (s *lineScanner) eof() bool {
	return s.pos >= len(s.data)
}

func (s *lineScanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.data[s.pos]
}

func (s *lineScanner) advance() byte {
	b := s.data[s.pos]
	s.pos++
	return b
}

func (s *lineScanner) skipBlank() {
	for !s.eof() && (s.peek() == ' ' || s.peek() == '\t') {
		s.pos++
	}
}

func (s *lineScanner) errorf(format string, args ...any) *ParseError {
	return syntaxErrorf(s.lineNo, format, args...)
}

func (s *lineScanner) readTokenUntilWhitespace() string {
	start := s.pos
	for !s.eof() && s.peek() != ' ' && s.peek() != '\t' {
		s.pos++
	}
	return string(s.data[start:s.pos])
}

func (s *lineScanner) readTokenAsMetricName() (string, error) {
	start := s.pos
	for !s.eof() && isLabelNameByte(s.peek(), s.pos == start) {
		s.pos++
	}
	if s.pos == start {
		return "", s.errorf("expected a metric name")
	}
	return string(s.data[start:s.pos]), nil
}

func isLabelNameByte(b byte, first bool) bool {
	if b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
		return true
	}
	if b >= '0' && b <= '9' {
		return !first
	}
	return false
}

func (s *lineScanner) parseHelp() (RuleEvent, error) {
	s.skipBlank()
	name, err := s.readTokenAsMetricName()
	if err != nil {
		return nil, err
	}
	s.skipBlank()
	text := unescapeHelp(string(s.data[s.pos:]))
	return HelpEvent{lineEvent(s.lineNo), name, text}, nil
}

func (s *lineScanner) parseType() (RuleEvent, error) {
	s.skipBlank()
	name, err := s.readTokenAsMetricName()
	if err != nil {
		return nil, err
	}
	s.skipBlank()
	typeTok := s.readTokenUntilWhitespace()
	if typeTok == "" {
		return nil, s.errorf("expected a metric type after %q", name)
	}
	return TypeEvent{lineEvent(s.lineNo), name, typeTok}, nil
}

func (s *lineScanner) parseUnit() (RuleEvent, error) {
	s.skipBlank()
	name, err := s.readTokenAsMetricName()
	if err != nil {
		return nil, err
	}
	s.skipBlank()
	unit := s.readTokenUntilWhitespace()
	return UnitEvent{lineEvent(s.lineNo), name, unit}, nil
}

func (s *lineScanner) parseSample() (RuleEvent, error) {
	name, err := s.readTokenAsMetricName()
	if err != nil {
		return nil, err
	}

	var labels model.Labels
	if s.peek() == '{' {
		labels, err = s.readLabelBlock()
		if err != nil {
			return nil, err
		}
	}

	s.skipBlank()
	value := s.readTokenUntilWhitespace()
	if value == "" {
		return nil, s.errorf("sample %q is missing a value", name)
	}

	ev := SampleEvent{lineEvent(s.lineNo), name, labels, value, false, "", nil}

	s.skipBlank()
	if !s.eof() && s.peek() != '#' {
		ev.Timestamp = s.readTokenUntilWhitespace()
		ev.HasTimestamp = true
		s.skipBlank()
	}

	if !s.eof() && s.peek() == '#' {
		s.pos++
		s.skipBlank()
		ex, err := s.parseExemplar()
		if err != nil {
			return nil, err
		}
		ev.Exemplar = ex
	}

	return ev, nil
}

func (s *lineScanner) parseExemplar() (*ExemplarToken, error) {
	if s.peek() != '{' {
		return nil, s.errorf("expected an exemplar label block")
	}
	labels, err := s.readLabelBlock()
	if err != nil {
		return nil, err
	}
	s.skipBlank()
	value := s.readTokenUntilWhitespace()
	if value == "" {
		return nil, s.errorf("exemplar is missing a value")
	}
	ex := &ExemplarToken{Labels: labels, Value: value}
	s.skipBlank()
	if !s.eof() {
		ex.Timestamp = s.readTokenUntilWhitespace()
		ex.HasTimestamp = true
	}
	return ex, nil
}

func (s *lineScanner) readLabelBlock() (model.Labels, error) {
	if s.advance() != '{' {
		return nil, s.errorf("expected '{'")
	}
	var labels model.Labels
	s.skipBlank()
	if s.peek() == '}' {
		s.pos++
		return labels, nil
	}
	for {
		s.skipBlank()
		name, err := s.readTokenAsMetricName()
		if err != nil {
			return nil, err
		}
		s.skipBlank()
		if s.eof() || s.advance() != '=' {
			return nil, s.errorf("expected '=' after label name %q", name)
		}
		s.skipBlank()
		val, err := s.readQuotedString()
		if err != nil {
			return nil, err
		}
		labels = append(labels, model.Label{Name: model.LabelName(name), Value: model.LabelValue(val)})

		s.skipBlank()
		if s.eof() {
			return nil, s.errorf("unterminated label block")
		}
		switch s.peek() {
		case ',':
			s.pos++
			continue
		case '}':
			s.pos++
			return labels, nil
		default:
			return nil, s.errorf("expected ',' or '}' in label block, got %q", s.peek())
		}
	}
}

func (s *lineScanner) readQuotedString() (string, error) {
	if s.eof() || s.advance() != '"' {
		return "", s.errorf("expected a quoted label value")
	}
	var buf strings.Builder
	for {
		if s.eof() {
			return "", s.errorf("unterminated label value")
		}
		b := s.advance()
		if b == '"' {
			return buf.String(), nil
		}
		if b == '\\' {
			if s.eof() {
				return "", s.errorf("unterminated escape in label value")
			}
			switch esc := s.advance(); esc {
			case '\\':
				buf.WriteByte('\\')
			case '"':
				buf.WriteByte('"')
			case 'n':
				buf.WriteByte('\n')
			default:
				return "", s.errorf("invalid escape sequence \\%c", esc)
			}
			continue
		}
		buf.WriteByte(b)
	}
}

// unescapeHelp decodes the backslash escapes permitted in HELP text:
// `\\` and `\n`. Unlike label values it is not quoted.
func unescapeHelp(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				buf.WriteByte('\n')
				i++
				continue
			case '\\':
				buf.WriteByte('\\')
				i++
				continue
			}
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}
