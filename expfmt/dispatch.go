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
	"strconv"
	"strings"

	"github.com/prometheus/openmetrics-parser/model"
)

// dispatchArgs bundles what an action needs beyond the sample it is
// mutating: the parsed value, an optional exemplar, the raw values of
// this row's mandatory labels (keyed by name, already stripped out of
// the sample's effective labelset by the caller), and a line number for
// error reporting.
type dispatchArgs struct {
	Value     model.MetricNumber
	Exemplar  *model.Exemplar
	Mandatory map[model.LabelName]model.LabelValue
	Line      int
}

// dispatchAction mutates the sample that owns this line (newly created
// or found by labelset) to fold in the value/exemplar this line
// carried.
type dispatchAction func(sample *model.Sample, args dispatchArgs) error

// dispatchRow is one row of the type dispatch table: a metric type, the
// sample-name suffix that selects it, the labels that suffix consumes
// from the effective labelset, and the action to run.
type dispatchRow struct {
	Type      model.FamilyType
	Suffix    string
	Mandatory []model.LabelName
	Action    dispatchAction
}

// dispatchTable is intentionally flat and data-driven, per the format's
// own design note: the logic reads more clearly as a table than as a
// class hierarchy with one type per metric kind.
var dispatchTable = []dispatchRow{
	{model.TypeCounter, "_total", nil, actionCounterTotal},
	{model.TypeCounter, "_created", nil, actionCreated},
	{model.TypeGauge, "", nil, actionScalar},
	{model.TypeUnknown, "", nil, actionScalar},
	{model.TypeStateSet, "", nil, actionStateSet},
	{model.TypeInfo, "_info", nil, actionInfo},
	{model.TypeHistogram, "_bucket", []model.LabelName{"le"}, actionBucket},
	{model.TypeHistogram, "_count", nil, actionCount},
	{model.TypeHistogram, "_sum", nil, actionSum},
	{model.TypeHistogram, "_created", nil, actionCreated},
	{model.TypeGaugeHistogram, "_bucket", []model.LabelName{"le"}, actionBucket},
	{model.TypeGaugeHistogram, "_gcount", nil, actionCount},
	{model.TypeGaugeHistogram, "_gsum", nil, actionSum},
	{model.TypeSummary, "_count", nil, actionCount},
	{model.TypeSummary, "_sum", nil, actionSum},
	{model.TypeSummary, "", []model.LabelName{"quantile"}, actionQuantile},
}

// selectRow finds the table row matching (t, sampleName), preferring
// the longest matching suffix, and returns the base metric name with
// that suffix stripped.
func selectRow(t model.FamilyType, sampleName string) (*dispatchRow, string, bool) {
	var best *dispatchRow
	for i := range dispatchTable {
		row := &dispatchTable[i]
		if row.Type != t {
			continue
		}
		if row.Suffix == "" {
			if best == nil {
				best = row
			}
			continue
		}
		if strings.HasSuffix(sampleName, row.Suffix) {
			if best == nil || len(row.Suffix) > len(best.Suffix) {
				best = row
			}
		}
	}
	if best == nil {
		return nil, "", false
	}
	return best, strings.TrimSuffix(sampleName, best.Suffix), true
}

func actionCounterTotal(sample *model.Sample, a dispatchArgs) error {
	c := &sample.Value.Counter
	if c.HasValue {
		return duplicateMetricErrorf(a.Line, "duplicate counter value")
	}
	if a.Value.IsNaN() || a.Value.AsF64() < 0 {
		return invalidMetricErrorf(a.Line, "counter value must be non-negative and non-NaN")
	}
	c.HasValue = true
	c.Value = a.Value
	return nil
}

func actionCreated(sample *model.Sample, a dispatchArgs) error {
	switch sample.Value.Type {
	case model.TypeCounter:
		c := &sample.Value.Counter
		if c.HasCreated {
			return duplicateMetricErrorf(a.Line, "duplicate _created value")
		}
		c.HasCreated = true
		c.Created = a.Value.AsF64()
	case model.TypeHistogram:
		h := &sample.Value.Histogram
		if h.HasCreated {
			return duplicateMetricErrorf(a.Line, "duplicate _created value")
		}
		h.HasCreated = true
		h.Created = a.Value.AsF64()
	default:
		return invalidMetricErrorf(a.Line, "type %s does not support _created", sample.Value.Type)
	}
	return nil
}

func actionScalar(sample *model.Sample, a dispatchArgs) error {
	if sample.Value.HasScalar {
		return duplicateMetricErrorf(a.Line, "duplicate sample value")
	}
	sample.Value.HasScalar = true
	sample.Value.Scalar = a.Value
	return nil
}

func actionStateSet(sample *model.Sample, a dispatchArgs) error {
	if sample.Value.HasScalar {
		return duplicateMetricErrorf(a.Line, "duplicate sample value")
	}
	f := a.Value.AsF64()
	if f != 0 && f != 1 {
		return invalidMetricErrorf(a.Line, "stateset value must be 0 or 1, got %v", f)
	}
	if len(sample.Labels) == 0 {
		return invalidMetricErrorf(a.Line, "stateset sample must have a non-empty labelset")
	}
	sample.Value.HasScalar = true
	sample.Value.Scalar = a.Value
	return nil
}

func actionInfo(sample *model.Sample, a dispatchArgs) error {
	if sample.Value.HasScalar {
		return duplicateMetricErrorf(a.Line, "info labelset already recorded")
	}
	i, ok := a.Value.AsI64()
	if !ok || i != 1 {
		return invalidMetricErrorf(a.Line, "info value must be the integer 1")
	}
	sample.Value.HasScalar = true
	sample.Value.Scalar = a.Value
	return nil
}

func actionBucket(sample *model.Sample, a dispatchArgs) error {
	leVal, ok := a.Mandatory["le"]
	if !ok {
		return invalidMetricErrorf(a.Line, "bucket sample missing le label")
	}
	le, err := strconv.ParseFloat(string(leVal), 64)
	if err != nil {
		return invalidMetricErrorf(a.Line, "bucket le=%q is not a number", leVal)
	}
	h := &sample.Value.Histogram
	h.Buckets = append(h.Buckets, model.HistogramBucket{
		Count:      a.Value,
		UpperBound: le,
		Exemplar:   a.Exemplar,
	})
	return nil
}

func actionCount(sample *model.Sample, a dispatchArgs) error {
	i, ok := a.Value.AsI64()
	if !ok || i < 0 {
		return invalidMetricErrorf(a.Line, "_count must be a non-negative integer")
	}
	switch sample.Value.Type {
	case model.TypeHistogram, model.TypeGaugeHistogram:
		h := &sample.Value.Histogram
		if h.HasCount {
			return duplicateMetricErrorf(a.Line, "duplicate count value")
		}
		h.HasCount, h.Count = true, a.Value
	case model.TypeSummary:
		s := &sample.Value.Summary
		if s.HasCount {
			return duplicateMetricErrorf(a.Line, "duplicate count value")
		}
		s.HasCount, s.Count = true, a.Value
	default:
		return invalidMetricErrorf(a.Line, "type %s does not support a count", sample.Value.Type)
	}
	return nil
}

func actionSum(sample *model.Sample, a dispatchArgs) error {
	if sample.Value.Type == model.TypeSummary && (a.Value.IsNaN() || a.Value.AsF64() < 0) {
		return invalidMetricErrorf(a.Line, "summary _sum must be non-negative and non-NaN")
	}
	switch sample.Value.Type {
	case model.TypeHistogram, model.TypeGaugeHistogram:
		h := &sample.Value.Histogram
		if h.HasSum {
			return duplicateMetricErrorf(a.Line, "duplicate sum value")
		}
		h.HasSum, h.Sum = true, a.Value.AsF64()
	case model.TypeSummary:
		s := &sample.Value.Summary
		if s.HasSum {
			return duplicateMetricErrorf(a.Line, "duplicate sum value")
		}
		s.HasSum, s.Sum = true, a.Value.AsF64()
	default:
		return invalidMetricErrorf(a.Line, "type %s does not support a sum", sample.Value.Type)
	}
	return nil
}

func actionQuantile(sample *model.Sample, a dispatchArgs) error {
	qVal, ok := a.Mandatory["quantile"]
	if !ok {
		return invalidMetricErrorf(a.Line, "quantile sample missing quantile label")
	}
	q, err := strconv.ParseFloat(string(qVal), 64)
	if err != nil {
		return invalidMetricErrorf(a.Line, "quantile=%q is not a number", qVal)
	}
	if q < 0 || q > 1 {
		return invalidMetricErrorf(a.Line, "quantile must be within [0,1], got %v", q)
	}
	if !a.Value.IsNaN() && a.Value.AsF64() < 0 {
		return invalidMetricErrorf(a.Line, "quantile value must be non-negative unless NaN")
	}
	s := &sample.Value.Summary
	s.Quantiles = append(s.Quantiles, model.Quantile{Quantile: q, Value: a.Value})
	return nil
}
