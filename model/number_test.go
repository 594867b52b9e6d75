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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMetricNumber(t *testing.T) {
	cases := []struct {
		in      string
		wantF   float64
		wantInt int64
		hasInt  bool
	}{
		{"3", 3, 3, true},
		{"-12", -12, -12, true},
		{"3.5", 3.5, 0, false},
		{"3.0", 3, 3, true},
	}
	for _, c := range cases {
		n, err := ParseMetricNumber(c.in)
		require.NoError(t, err)
		require.Equal(t, c.wantF, n.AsF64())
		i, ok := n.AsI64()
		require.Equal(t, c.hasInt, ok)
		if ok {
			require.Equal(t, c.wantInt, i)
		}
	}
}

func TestParseMetricNumberSpecials(t *testing.T) {
	n, err := ParseMetricNumber("+Inf")
	require.NoError(t, err)
	require.True(t, n.IsInf())

	n, err = ParseMetricNumber("NaN")
	require.NoError(t, err)
	require.True(t, n.IsNaN())
}

func TestMetricNumberString(t *testing.T) {
	require.Equal(t, "3", NewIntMetricNumber(3).String())
	require.Equal(t, "NaN", NewFloatMetricNumber(math.NaN()).String())
	require.Equal(t, "+Inf", NewFloatMetricNumber(math.Inf(1)).String())
}
