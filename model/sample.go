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

// Sample is one assembled logical metric: an effective labelset (type-
// mandatory labels already stripped), an optional timestamp, and the
// value built up from one or more input lines sharing that labelset.
type Sample struct {
	Labels    Labels
	HasTs     bool
	Timestamp Timestamp
	Value     MetricValue
}

// LabelNames returns the sorted names of the sample's effective
// labelset; within one family every sample has the same list.
func (s Sample) LabelNames() []LabelName {
	return s.Labels.Names()
}
