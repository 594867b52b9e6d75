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

// MetricFamily is one finished `# HELP`/`# TYPE`/`# UNIT` block together
// with every sample assembled under it. It is built incrementally by
// expfmt's family builder and frozen once its block ends.
type MetricFamily struct {
	Name       string
	Help       string
	Type       FamilyType
	Unit       string
	LabelNames []LabelName
	Samples    []Sample
}

// SampleByLabels returns the index of the sample whose effective
// labelset equals ls, or -1 if none has been assembled yet.
func (mf *MetricFamily) SampleByLabels(ls Labels) int {
	for i := range mf.Samples {
		if mf.Samples[i].Labels.Equal(ls) {
			return i
		}
	}
	return -1
}
