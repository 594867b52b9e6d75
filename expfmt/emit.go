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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/openmetrics-parser/model"
)

// Emit writes exp back out as OpenMetrics text. It is the serializer
// half of the idempotence law Parse(Emit(Parse(x))) == Parse(x): every
// field that survives parsing is written back out, in the order it was
// recorded, except exemplars stored on histogram buckets, which are not
// written. For input whose buckets carry exemplars the law does not
// hold.
func Emit(w io.Writer, exp *model.Exposition) error {
	for _, mf := range exp.Families {
		if err := emitFamily(w, mf); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "# EOF")
	return err
}

func emitFamily(w io.Writer, mf *model.MetricFamily) error {
	if mf.Help != "" {
		if _, err := fmt.Fprintf(w, "# HELP %s %s\n", mf.Name, escapeHelp(mf.Help)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "# TYPE %s %s\n", mf.Name, mf.Type); err != nil {
		return err
	}
	if mf.Unit != "" {
		if _, err := fmt.Fprintf(w, "# UNIT %s %s\n", mf.Name, mf.Unit); err != nil {
			return err
		}
	}
	for i := range mf.Samples {
		if err := emitSample(w, mf, &mf.Samples[i]); err != nil {
			return err
		}
	}
	return nil
}

func emitSample(w io.Writer, mf *model.MetricFamily, s *model.Sample) error {
	v := &s.Value
	switch mf.Type {
	case model.TypeCounter:
		if v.Counter.HasValue {
			if err := emitLine(w, mf.Name+"_total", s.Labels, v.Counter.Value.String(), s); err != nil {
				return err
			}
		}
		if v.Counter.HasCreated {
			if err := emitLine(w, mf.Name+"_created", s.Labels, formatFloat(v.Counter.Created), s); err != nil {
				return err
			}
		}
	case model.TypeInfo:
		if v.HasScalar {
			if err := emitLine(w, mf.Name+"_info", s.Labels, "1", s); err != nil {
				return err
			}
		}
	case model.TypeHistogram, model.TypeGaugeHistogram:
		bucketSuffix, countName, sumName := "_bucket", mf.Name+"_count", mf.Name+"_sum"
		if mf.Type == model.TypeGaugeHistogram {
			countName, sumName = mf.Name+"_gcount", mf.Name+"_gsum"
		}
		for _, b := range v.Histogram.Buckets {
			labels := append(append(model.Labels{}, s.Labels...), model.Label{Name: "le", Value: model.LabelValue(formatFloat(b.UpperBound))})
			if err := emitLine(w, mf.Name+bucketSuffix, labels, b.Count.String(), s); err != nil {
				return err
			}
		}
		if v.Histogram.HasCount {
			if err := emitLine(w, countName, s.Labels, v.Histogram.Count.String(), s); err != nil {
				return err
			}
		}
		if v.Histogram.HasSum {
			if err := emitLine(w, sumName, s.Labels, formatFloat(v.Histogram.Sum), s); err != nil {
				return err
			}
		}
		if v.Histogram.HasCreated {
			if err := emitLine(w, mf.Name+"_created", s.Labels, formatFloat(v.Histogram.Created), s); err != nil {
				return err
			}
		}
	case model.TypeSummary:
		for _, q := range v.Summary.Quantiles {
			labels := append(append(model.Labels{}, s.Labels...), model.Label{Name: "quantile", Value: model.LabelValue(formatFloat(q.Quantile))})
			if err := emitLine(w, mf.Name, labels, q.Value.String(), s); err != nil {
				return err
			}
		}
		if v.Summary.HasCount {
			if err := emitLine(w, mf.Name+"_count", s.Labels, v.Summary.Count.String(), s); err != nil {
				return err
			}
		}
		if v.Summary.HasSum {
			if err := emitLine(w, mf.Name+"_sum", s.Labels, formatFloat(v.Summary.Sum), s); err != nil {
				return err
			}
		}
		if v.Summary.HasCreated {
			if err := emitLine(w, mf.Name+"_created", s.Labels, formatFloat(v.Summary.Created), s); err != nil {
				return err
			}
		}
	default: // Gauge, Unknown, StateSet
		if v.HasScalar {
			if err := emitLine(w, mf.Name, s.Labels, v.Scalar.String(), s); err != nil {
				return err
			}
		}
	}
	return nil
}

func emitLine(w io.Writer, name string, labels model.Labels, value string, s *model.Sample) error {
	var b strings.Builder
	b.WriteString(name)
	if len(labels) > 0 {
		b.WriteByte('{')
		b.WriteString(formatLabels(labels))
		b.WriteByte('}')
	}
	b.WriteByte(' ')
	b.WriteString(value)
	if s.HasTs {
		b.WriteByte(' ')
		b.WriteString(s.Timestamp.String())
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}

// formatLabels renders a labelset sorted by name, matching the
// convention that label order on the wire is insignificant.
func formatLabels(labels model.Labels) string {
	sorted := labels.Sorted()
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = fmt.Sprintf("%s=%q", l.Name, string(l.Value))
	}
	return strings.Join(parts, ",")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func escapeHelp(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
