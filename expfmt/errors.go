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

package expfmt

import (
	"errors"
	"fmt"
)

var (
	errInconsistentTimestamp = errors.New("sample timestamp usage is inconsistent with the rest of its labelset")
	errNonMonotonicTimestamp = errors.New("sample timestamp is earlier than a previous sample with the same labelset")
)

// ErrorKind distinguishes the two ways a parse can fail.
type ErrorKind int

const (
	// ErrSyntax means the grammar front-end rejected the input: it is
	// not well-formed OpenMetrics text at all.
	ErrSyntax ErrorKind = iota
	// ErrInvalidMetric means the input was syntactically well-formed
	// but violated a semantic rule of the format.
	ErrInvalidMetric
	// ErrDuplicateMetric is the InvalidMetric sub-case of a sample
	// colliding with one already recorded for its labelset. Kept
	// distinct from ErrInvalidMetric for callers that want to tell
	// "malformed" apart from "redundant".
	ErrDuplicateMetric
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax"
	case ErrDuplicateMetric:
		return "duplicate metric"
	default:
		return "invalid metric"
	}
}

// ParseError is the single error type returned by this package. It
// carries enough location information to let a caller point a user at
// the offending line.
type ParseError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func syntaxErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrSyntax, Line: line, Message: fmt.Sprintf(format, args...)}
}

func invalidMetricErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrInvalidMetric, Line: line, Message: fmt.Sprintf(format, args...)}
}

func duplicateMetricErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrDuplicateMetric, Line: line, Message: fmt.Sprintf(format, args...)}
}
