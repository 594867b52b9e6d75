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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFamilyType(t *testing.T) {
	cases := map[string]FamilyType{
		"counter":        TypeCounter,
		"GAUGE":          TypeGauge,
		"stateset":       TypeStateSet,
		"info":           TypeInfo,
		"histogram":      TypeHistogram,
		"gaugehistogram": TypeGaugeHistogram,
		"summary":        TypeSummary,
		"unknown":        TypeUnknown,
	}
	for in, want := range cases {
		got, err := ParseFamilyType(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFamilyType("bogus")
	require.Error(t, err)
}

func TestCanHaveExemplar(t *testing.T) {
	require.True(t, TypeCounter.CanHaveExemplar("requests_total"))
	require.False(t, TypeCounter.CanHaveExemplar("requests_created"))
	require.True(t, TypeHistogram.CanHaveExemplar("latency_bucket"))
	require.False(t, TypeGauge.CanHaveExemplar("temperature"))
}

func TestCanHaveUnit(t *testing.T) {
	require.True(t, TypeCounter.CanHaveUnit())
	require.True(t, TypeGauge.CanHaveUnit())
	require.True(t, TypeUnknown.CanHaveUnit())
	require.False(t, TypeHistogram.CanHaveUnit())
	require.False(t, TypeSummary.CanHaveUnit())
}

func TestCanHaveMultipleLines(t *testing.T) {
	require.True(t, TypeCounter.CanHaveMultipleLines())
	require.True(t, TypeHistogram.CanHaveMultipleLines())
	require.True(t, TypeGaugeHistogram.CanHaveMultipleLines())
	require.True(t, TypeSummary.CanHaveMultipleLines())
	require.False(t, TypeGauge.CanHaveMultipleLines())
	require.False(t, TypeStateSet.CanHaveMultipleLines())
	require.False(t, TypeInfo.CanHaveMultipleLines())
}
