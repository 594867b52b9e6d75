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

// Package model holds the data primitives of a parsed OpenMetrics
// exposition: label sets, numbers, samples, and the metric families that
// group them. It has no notion of the text on the wire; that lives in
// expfmt.
package model

import (
	"fmt"
	"strings"
)

// FamilyType is the OpenMetrics metric type of a MetricFamily.
type FamilyType int

const (
	TypeUnknown FamilyType = iota
	TypeGauge
	TypeCounter
	TypeStateSet
	TypeInfo
	TypeHistogram
	TypeGaugeHistogram
	TypeSummary
)

func (t FamilyType) String() string {
	switch t {
	case TypeGauge:
		return "gauge"
	case TypeCounter:
		return "counter"
	case TypeStateSet:
		return "stateset"
	case TypeInfo:
		return "info"
	case TypeHistogram:
		return "histogram"
	case TypeGaugeHistogram:
		return "gaugehistogram"
	case TypeSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// ParseFamilyType maps a `# TYPE` token to a FamilyType. The match is
// case-insensitive, matching the teacher's habit of uppercasing type
// tokens before comparing them.
func ParseFamilyType(s string) (FamilyType, error) {
	switch strings.ToLower(s) {
	case "unknown":
		return TypeUnknown, nil
	case "gauge":
		return TypeGauge, nil
	case "counter":
		return TypeCounter, nil
	case "stateset":
		return TypeStateSet, nil
	case "info":
		return TypeInfo, nil
	case "histogram":
		return TypeHistogram, nil
	case "gaugehistogram":
		return TypeGaugeHistogram, nil
	case "summary":
		return TypeSummary, nil
	default:
		return TypeUnknown, fmt.Errorf("unknown metric type %q", s)
	}
}

// CanHaveExemplar reports whether a sample of this family type, with the
// given (already suffix-matched) sample name, may carry an exemplar.
func (t FamilyType) CanHaveExemplar(sampleName string) bool {
	switch t {
	case TypeCounter:
		return strings.HasSuffix(sampleName, "_total")
	case TypeHistogram, TypeGaugeHistogram:
		return strings.HasSuffix(sampleName, "_bucket")
	default:
		return false
	}
}

// CanHaveUnit reports whether this family type is allowed to declare a
// UNIT.
func (t FamilyType) CanHaveUnit() bool {
	switch t {
	case TypeCounter, TypeUnknown, TypeGauge:
		return true
	default:
		return false
	}
}

// CanHaveMultipleLines reports whether a single labelset of this family
// type is legitimately built from several sample lines (buckets,
// quantiles, sum/count/created) rather than being complete after one.
func (t FamilyType) CanHaveMultipleLines() bool {
	switch t {
	case TypeCounter, TypeHistogram, TypeGaugeHistogram, TypeSummary:
		return true
	default:
		return false
	}
}
