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

package model

import (
	"math"
	"strconv"
)

// MetricNumber is a sample value as carried on the wire: always
// representable as a float64, but additionally tagged with whether it
// came from (or collapses to) an exact integer, since the `_count` and
// info validation rules distinguish the two.
type MetricNumber struct {
	f     float64
	isInt bool
	i     int64
}

// NewIntMetricNumber builds a MetricNumber from an exact integer.
func NewIntMetricNumber(i int64) MetricNumber {
	return MetricNumber{f: float64(i), isInt: true, i: i}
}

// NewFloatMetricNumber builds a MetricNumber from a float64. If the
// value happens to be finite and integral it is still reported as
// representable by AsI64 -- only fractional, non-finite, or out-of-range
// values lack an integer form.
func NewFloatMetricNumber(f float64) MetricNumber {
	if i := int64(f); float64(i) == f {
		return MetricNumber{f: f, isInt: true, i: i}
	}
	return MetricNumber{f: f}
}

// ParseMetricNumber parses a bare numeric token as found in a sample
// value, honoring the OpenMetrics special tokens for infinity and NaN.
func ParseMetricNumber(s string) (MetricNumber, error) {
	switch s {
	case "+Inf", "Inf":
		return NewFloatMetricNumber(math.Inf(1)), nil
	case "-Inf":
		return NewFloatMetricNumber(math.Inf(-1)), nil
	case "NaN":
		return NewFloatMetricNumber(math.NaN()), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewIntMetricNumber(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return MetricNumber{}, err
	}
	return NewFloatMetricNumber(f), nil
}

// AsF64 returns the number as a float64. This conversion is always
// available, even for NaN and the infinities.
func (n MetricNumber) AsF64() float64 {
	return n.f
}

// Equal reports whether n and o carry the same value, including
// matching on NaN so that go-cmp and other structural comparisons
// treat two NaN samples parsed from the same input as equal.
func (n MetricNumber) Equal(o MetricNumber) bool {
	if n.isInt != o.isInt {
		return false
	}
	if n.isInt {
		return n.i == o.i
	}
	if math.IsNaN(n.f) && math.IsNaN(o.f) {
		return true
	}
	return n.f == o.f
}

// AsI64 returns the number as an int64, and whether the conversion is
// exact. It is absent only for values with a fractional part, for
// values outside the int64 range, or for NaN/Inf, which cannot be
// represented as an int64 at all.
func (n MetricNumber) AsI64() (int64, bool) {
	if !n.isInt {
		return 0, false
	}
	return n.i, true
}

// IsNaN reports whether the number is NaN.
func (n MetricNumber) IsNaN() bool {
	return math.IsNaN(n.f)
}

// IsInf reports whether the number is positive or negative infinity.
func (n MetricNumber) IsInf() bool {
	return math.IsInf(n.f, 0)
}

// String renders n the way it appeared (or would appear) on the wire.
func (n MetricNumber) String() string {
	switch {
	case math.IsNaN(n.f):
		return "NaN"
	case math.IsInf(n.f, 1):
		return "+Inf"
	case math.IsInf(n.f, -1):
		return "-Inf"
	case n.isInt:
		return strconv.FormatInt(n.i, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}
