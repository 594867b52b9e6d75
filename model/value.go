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

// Exemplar is an annotation linking a sample to a trace or event: a
// labelset, a value, and an optional timestamp.
type Exemplar struct {
	Labels    Labels
	Value     float64
	HasTs     bool
	Timestamp Timestamp
}

// HistogramBucket is one `le`-bucketed cumulative count, in the order it
// was encountered on the wire.
type HistogramBucket struct {
	Count      MetricNumber
	UpperBound float64
	Exemplar   *Exemplar
}

// Quantile is one summary quantile estimate, in the order it was
// encountered on the wire.
type Quantile struct {
	Quantile float64
	Value    MetricNumber
}

// CounterValue is the payload of a Counter sample: a monotonic total and
// an optional creation timestamp.
type CounterValue struct {
	HasValue   bool
	Value      MetricNumber
	HasCreated bool
	Created    float64
}

// HistogramValue is the payload of a Histogram or GaugeHistogram sample:
// the buckets observed, plus an optional sum/count pair and (Histogram
// only) creation timestamp.
type HistogramValue struct {
	Buckets    []HistogramBucket
	HasSum     bool
	Sum        float64
	HasCount   bool
	Count      MetricNumber
	HasCreated bool
	Created    float64
}

// SummaryValue is the payload of a Summary sample: the quantiles
// observed, plus an optional sum/count pair and creation timestamp.
type SummaryValue struct {
	Quantiles  []Quantile
	HasSum     bool
	Sum        float64
	HasCount   bool
	Count      MetricNumber
	HasCreated bool
	Created    float64
}

// MetricValue is the tagged union of payloads a Sample may carry. Scalar
// variants (Unknown, Gauge, StateSet, Info) are nullable via their Has* flag
// because a sample line may be observed before its value is fully
// parsed; the other variants are always present once a sample exists,
// growing in place as additional lines (buckets, quantiles, sum/count)
// are folded in.
type MetricValue struct {
	Type FamilyType

	HasScalar bool
	Scalar    MetricNumber

	Counter   CounterValue
	Histogram HistogramValue
	Summary   SummaryValue
}

// NewScalarValue builds a MetricValue for the scalar-carrying types
// (Unknown, Gauge, StateSet).
func NewScalarValue(t FamilyType, n MetricNumber) MetricValue {
	return MetricValue{Type: t, HasScalar: true, Scalar: n}
}

// NewInfoValue builds an empty Info MetricValue. Info uses the scalar
// slot, which is filled with the sample value -- always the integer 1 --
// when its `_info` line arrives.
func NewInfoValue() MetricValue {
	return MetricValue{Type: TypeInfo}
}

// NewCounterValue builds an empty Counter MetricValue ready to be filled
// in by the dispatch table as `_total`/`_created` lines arrive.
func NewCounterValue() MetricValue {
	return MetricValue{Type: TypeCounter}
}

// NewHistogramValue builds an empty Histogram or GaugeHistogram
// MetricValue ready to be filled in as bucket/sum/count lines arrive.
func NewHistogramValue(t FamilyType) MetricValue {
	return MetricValue{Type: t}
}

// NewSummaryValue builds an empty Summary MetricValue ready to be filled
// in as quantile/sum/count lines arrive.
func NewSummaryValue() MetricValue {
	return MetricValue{Type: TypeSummary}
}
