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
	"math"

	"github.com/prometheus/openmetrics-parser/model"
)

// validateFamily runs the post-assembly structural checks once a
// family's block has ended. It never touches ordering or interleaving
// -- those were already enforced while the family was being built.
func validateFamily(mf *model.MetricFamily, lineNo int) error {
	if mf.Unit != "" {
		if len(mf.Samples) == 0 {
			return invalidMetricErrorf(lineNo, "family %q declares a UNIT but has no samples", mf.Name)
		}
		if !mf.Type.CanHaveUnit() {
			return invalidMetricErrorf(lineNo, "type %s may not declare a UNIT", mf.Type)
		}
	}
	if mf.Type == model.TypeStateSet {
		for _, n := range mf.LabelNames {
			if string(n) == mf.Name {
				return invalidMetricErrorf(lineNo, "stateset %q must not have a label named after the family", mf.Name)
			}
		}
	}
	for i := range mf.Samples {
		if len(mf.Samples[i].Labels) != len(mf.LabelNames) {
			return invalidMetricErrorf(lineNo, "sample in family %q has %d labels, want %d", mf.Name, len(mf.Samples[i].Labels), len(mf.LabelNames))
		}
		if err := validateSample(mf.Name, mf.Type, &mf.Samples[i], lineNo); err != nil {
			return err
		}
	}
	return nil
}

func validateSample(familyName string, t model.FamilyType, s *model.Sample, lineNo int) error {
	switch t {
	case model.TypeCounter:
		if !s.Value.Counter.HasValue {
			return invalidMetricErrorf(lineNo, "counter %q has no value", familyName)
		}
	case model.TypeHistogram, model.TypeGaugeHistogram:
		return validateHistogram(familyName, t, &s.Value.Histogram, lineNo)
	case model.TypeSummary:
		return validateSummary(familyName, &s.Value.Summary, lineNo)
	}
	return nil
}

func validateHistogram(familyName string, t model.FamilyType, h *model.HistogramValue, lineNo int) error {
	if len(h.Buckets) == 0 {
		return invalidMetricErrorf(lineNo, "histogram %q has no buckets", familyName)
	}
	hasPosInf := false
	hasNegative := false
	for _, b := range h.Buckets {
		if math.IsInf(b.UpperBound, 1) {
			hasPosInf = true
		}
		if b.UpperBound < 0 {
			hasNegative = true
		}
	}
	if !hasPosInf {
		return invalidMetricErrorf(lineNo, "histogram %q has no +Inf bucket", familyName)
	}
	if h.HasSum {
		if hasNegative && t == model.TypeHistogram {
			return invalidMetricErrorf(lineNo, "histogram %q cannot have a sum with a negative bucket boundary", familyName)
		}
		if !hasNegative && h.Sum < 0 {
			return invalidMetricErrorf(lineNo, "histogram %q has a negative sum", familyName)
		}
	}
	if h.HasSum != h.HasCount {
		return invalidMetricErrorf(lineNo, "histogram %q has a sum without a count, or vice versa", familyName)
	}
	var prev float64
	for i, b := range h.Buckets {
		c := b.Count.AsF64()
		if i > 0 && c < prev {
			return invalidMetricErrorf(lineNo, "histogram %q bucket counts are not monotonically non-decreasing", familyName)
		}
		prev = c
	}
	return nil
}

func validateSummary(familyName string, s *model.SummaryValue, lineNo int) error {
	for _, q := range s.Quantiles {
		if q.Quantile < 0 || q.Quantile > 1 {
			return invalidMetricErrorf(lineNo, "summary %q has a quantile outside [0,1]", familyName)
		}
		if !q.Value.IsNaN() && q.Value.AsF64() < 0 {
			return invalidMetricErrorf(lineNo, "summary %q has a negative quantile value", familyName)
		}
	}
	if s.HasSum != s.HasCount {
		return invalidMetricErrorf(lineNo, "summary %q has a sum without a count, or vice versa", familyName)
	}
	return nil
}
