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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prometheus/openmetrics-parser/model"
)

func TestParseSimpleCounter(t *testing.T) {
	exp, err := Parse([]byte("# TYPE a counter\na_total 1\n# EOF\n"))
	require.NoError(t, err)
	require.Len(t, exp.Families, 1)

	mf := exp.Families[0]
	require.Equal(t, "a", mf.Name)
	require.Equal(t, model.TypeCounter, mf.Type)
	require.Len(t, mf.Samples, 1)
	require.False(t, mf.Samples[0].HasTs)
	require.True(t, mf.Samples[0].Value.Counter.HasValue)
	require.Equal(t, 1.0, mf.Samples[0].Value.Counter.Value.AsF64())
}

func TestParseHistogram(t *testing.T) {
	in := "# TYPE h histogram\n" +
		"h_bucket{le=\"1\"} 0\n" +
		"h_bucket{le=\"+Inf\"} 3\n" +
		"h_count 3\n" +
		"h_sum 2.5\n" +
		"# EOF\n"
	exp, err := Parse([]byte(in))
	require.NoError(t, err)
	require.Len(t, exp.Families, 1)

	mf := exp.Families[0]
	require.Equal(t, "h", mf.Name)
	require.Len(t, mf.Samples, 1)
	h := mf.Samples[0].Value.Histogram
	require.Len(t, h.Buckets, 2)
	require.Equal(t, 1.0, h.Buckets[0].UpperBound)
	require.True(t, h.HasCount)
	require.True(t, h.HasSum)
	require.Equal(t, 2.5, h.Sum)
}

func TestParseHistogramNonMonotonicBucketsRejected(t *testing.T) {
	in := "# TYPE h histogram\n" +
		"h_bucket{le=\"1\"} 5\n" +
		"h_bucket{le=\"+Inf\"} 3\n" +
		"# EOF\n"
	_, err := Parse([]byte(in))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrInvalidMetric, pe.Kind)
}

func TestParseNegativeCounterRejected(t *testing.T) {
	_, err := Parse([]byte("# TYPE c counter\nc_total -1\n# EOF\n"))
	require.Error(t, err)
}

func TestParseStateSetLabelNamedAfterFamilyRejected(t *testing.T) {
	_, err := Parse([]byte("# TYPE s stateset\ns{s=\"on\"} 1\n# EOF\n"))
	require.Error(t, err)
}

func TestParseMissingEOFRejected(t *testing.T) {
	_, err := Parse([]byte("# TYPE a counter\na_total 1\n"))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrSyntax, pe.Kind)
}

func TestParseTextAfterEOFRejected(t *testing.T) {
	_, err := Parse([]byte("# TYPE a counter\na_total 1\n# EOF\ngarbage\n"))
	require.Error(t, err)
}

func TestParseLabelOrderIrrelevant(t *testing.T) {
	a, err := Parse([]byte("# TYPE g gauge\ng{a=\"1\",b=\"2\"} 5\n# EOF\n"))
	require.NoError(t, err)
	b, err := Parse([]byte("# TYPE g gauge\ng{b=\"2\",a=\"1\"} 5\n# EOF\n"))
	require.NoError(t, err)

	require.True(t, a.Families[0].Samples[0].Labels.Equal(b.Families[0].Samples[0].Labels))
}

func TestParseInterleavedLabelSetsRejected(t *testing.T) {
	in := "# TYPE g gauge\n" +
		"g{a=\"1\"} 1\n" +
		"g{a=\"2\"} 2\n" +
		"g{a=\"1\"} 3\n" +
		"# EOF\n"
	_, err := Parse([]byte(in))
	require.Error(t, err)
}

func TestParseDuplicateFamilyNameRejected(t *testing.T) {
	in := "# TYPE a counter\na_total 1\n" +
		"# TYPE b gauge\nb 2\n" +
		"# TYPE a counter\na_total 3\n" +
		"# EOF\n"
	_, err := Parse([]byte(in))
	require.Error(t, err)
}

func TestParseInfoDuplicateLabelsetRejected(t *testing.T) {
	in := "# TYPE i info\n" +
		"i_info{a=\"1\"} 1\n" +
		"i_info{a=\"1\"} 1\n" +
		"# EOF\n"
	_, err := Parse([]byte(in))
	require.Error(t, err)
}

func TestParseSummary(t *testing.T) {
	in := "# TYPE s summary\n" +
		"s{quantile=\"0.5\"} 1\n" +
		"s{quantile=\"0.9\"} 2\n" +
		"s_count 10\n" +
		"s_sum 15\n" +
		"# EOF\n"
	exp, err := Parse([]byte(in))
	require.NoError(t, err)
	sm := exp.Families[0].Samples[0].Value.Summary
	require.Len(t, sm.Quantiles, 2)
	require.True(t, sm.HasCount)
	require.True(t, sm.HasSum)
}

func TestParseExemplarOnlyAllowedWhereSpecified(t *testing.T) {
	in := "# TYPE g gauge\ng 1 # {a=\"1\"} 0.5\n# EOF\n"
	_, err := Parse([]byte(in))
	require.Error(t, err)

	in2 := "# TYPE c counter\nc_total 1 # {a=\"1\"} 0.5\n# EOF\n"
	exp, err := Parse([]byte(in2))
	require.NoError(t, err)
	require.NotNil(t, exp)
}

func TestParseConsecutiveTypelessFamiliesRotate(t *testing.T) {
	exp, err := Parse([]byte("a 1\nb 2\n# EOF\n"))
	require.NoError(t, err)
	require.Len(t, exp.Families, 2)
	require.Equal(t, "a", exp.Families[0].Name)
	require.Equal(t, model.TypeUnknown, exp.Families[0].Type)
	require.Equal(t, "b", exp.Families[1].Name)
	require.Equal(t, model.TypeUnknown, exp.Families[1].Type)
}

func TestParseSampleNameReappearingAfterOtherFamilyRejected(t *testing.T) {
	_, err := Parse([]byte("a_total 1\nb 2\na_total 3\n# EOF\n"))
	require.Error(t, err)
}
