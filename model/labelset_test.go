// Copyright 2019 The Prometheus Authors
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

func TestLabelNameIsValid(t *testing.T) {
	cases := []struct {
		name  LabelName
		valid bool
	}{
		{"le", true},
		{"_foo", true},
		{"foo_bar2", true},
		{"", false},
		{"2foo", false},
		{"foo-bar", false},
		{"foo bar", false},
	}
	for _, c := range cases {
		require.Equalf(t, c.valid, c.name.IsValid(), "name %q", c.name)
	}
}

func TestLabelsSorted(t *testing.T) {
	ls := Labels{
		{Name: "zeta", Value: "1"},
		{Name: "alpha", Value: "2"},
		{Name: "mid", Value: "3"},
	}
	sorted := ls.Sorted()
	require.Equal(t, []LabelName{"alpha", "mid", "zeta"}, sorted.Names())
}

func TestLabelsHasDuplicateName(t *testing.T) {
	require.False(t, Labels{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}.HasDuplicateName())
	require.True(t, Labels{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}}.HasDuplicateName())
}

func TestLabelsWithout(t *testing.T) {
	ls := Labels{
		{Name: "le", Value: "1"},
		{Name: "a", Value: "x"},
	}
	got := ls.Without("le")
	require.Equal(t, Labels{{Name: "a", Value: "x"}}, got)
}

func TestLabelsEqualIgnoresOrder(t *testing.T) {
	a := Labels{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}
	b := Labels{{Name: "b", Value: "2"}, {Name: "a", Value: "1"}}
	require.True(t, a.Equal(b))

	c := Labels{{Name: "a", Value: "1"}, {Name: "b", Value: "3"}}
	require.False(t, a.Equal(c))
}

func TestLabelValueIsValid(t *testing.T) {
	require.True(t, LabelValue("hello").IsValid())
	require.False(t, LabelValue("\xff\xfe").IsValid())
}
