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

// Exposition is a fully parsed and validated exposition text: the
// ordered list of metric families it declared. Order is preserved
// because re-emission (expfmt.Emit) must be able to round-trip it.
type Exposition struct {
	Families []*MetricFamily
}

// ByName returns the family with the given name, or nil if no such
// family was declared.
func (e *Exposition) ByName(name string) *MetricFamily {
	for _, mf := range e.Families {
		if mf.Name == name {
			return mf
		}
	}
	return nil
}
