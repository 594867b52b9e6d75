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

	"github.com/prometheus/openmetrics-parser/model"
)

// familyBuilder is the mutable accumulator for one metric family block.
// It is created when the first descriptor or sample line for a name is
// seen, mutated by every subsequent line, and frozen into a
// model.MetricFamily when the block ends. It never outlives that.
type familyBuilder struct {
	name      string
	boundName bool

	ftype     model.FamilyType
	boundType bool

	help string
	unit string

	labelNames      []model.LabelName
	boundLabelNames bool

	samples []model.Sample

	currentLabelSet model.Labels
	hasCurrent      bool
	seenLabelSets   []model.Labels

	sawSample bool
}

func newFamilyBuilder() *familyBuilder {
	return &familyBuilder{}
}

func (fb *familyBuilder) bindName(name string, lineNo int) error {
	if fb.boundName && fb.name != name {
		return invalidMetricErrorf(lineNo, "descriptor for %q conflicts with bound family name %q", name, fb.name)
	}
	fb.name, fb.boundName = name, true
	return nil
}

func (fb *familyBuilder) handleHelp(ev HelpEvent) error {
	if fb.sawSample {
		return invalidMetricErrorf(ev.line(), "HELP for %q appears after samples", ev.MetricName)
	}
	if err := fb.bindName(ev.MetricName, ev.line()); err != nil {
		return err
	}
	fb.help = ev.Text
	return nil
}

func (fb *familyBuilder) handleType(ev TypeEvent) error {
	if fb.sawSample {
		return invalidMetricErrorf(ev.line(), "TYPE for %q appears after samples", ev.MetricName)
	}
	if err := fb.bindName(ev.MetricName, ev.line()); err != nil {
		return err
	}
	t, err := model.ParseFamilyType(ev.TypeToken)
	if err != nil {
		return invalidMetricErrorf(ev.line(), "%s", err)
	}
	if fb.boundType && fb.ftype != t {
		return invalidMetricErrorf(ev.line(), "duplicate TYPE for %q", ev.MetricName)
	}
	fb.ftype, fb.boundType = t, true
	return nil
}

func (fb *familyBuilder) handleUnit(ev UnitEvent) error {
	if fb.sawSample {
		return invalidMetricErrorf(ev.line(), "UNIT for %q appears after samples", ev.MetricName)
	}
	if !fb.boundName {
		return invalidMetricErrorf(ev.line(), "UNIT for %q appears before the family name is bound", ev.MetricName)
	}
	if ev.MetricName != fb.name {
		return invalidMetricErrorf(ev.line(), "UNIT name %q does not match family name %q", ev.MetricName, fb.name)
	}
	fb.unit = ev.Unit
	return nil
}

func (fb *familyBuilder) handleSample(ev SampleEvent) error {
	fb.sawSample = true

	if !fb.boundType {
		fb.ftype, fb.boundType = model.TypeUnknown, true
	}
	if ev.Labels.HasDuplicateName() {
		return invalidMetricErrorf(ev.line(), "sample %q has a duplicate label name", ev.MetricName)
	}

	row, base, ok := selectRow(fb.ftype, ev.MetricName)
	if !ok {
		return invalidMetricErrorf(ev.line(), "no sample named %q is valid for type %s", ev.MetricName, fb.ftype)
	}

	effective, mandatoryVals, ok := splitMandatory(ev.Labels, row.Mandatory)
	if !ok {
		return invalidMetricErrorf(ev.line(), "sample %q is missing mandatory label(s) %v", ev.MetricName, row.Mandatory)
	}

	if err := fb.checkInterleaving(effective, ev.line()); err != nil {
		return err
	}
	if err := fb.bindLabelNames(effective.Names(), ev.line()); err != nil {
		return err
	}
	if err := fb.bindName(base, ev.line()); err != nil {
		return err
	}

	value, err := model.ParseMetricNumber(ev.Value)
	if err != nil {
		return syntaxErrorf(ev.line(), "sample %q has an unparseable value %q", ev.MetricName, ev.Value)
	}

	var newTs model.Timestamp
	if ev.HasTimestamp {
		newTs, err = model.ParseTimestamp(ev.Timestamp)
		if err != nil {
			return syntaxErrorf(ev.line(), "sample %q has an unparseable timestamp %q", ev.MetricName, ev.Timestamp)
		}
	}

	exemplar, err := fb.buildExemplar(ev, row, ev.line())
	if err != nil {
		return err
	}

	idx := fb.indexByLabels(effective)
	var sample *model.Sample
	if idx >= 0 {
		sample = &fb.samples[idx]
		drop, err := timestampVerdict(sample.HasTs, sample.Timestamp, ev.HasTimestamp, newTs, fb.ftype.CanHaveMultipleLines())
		if err != nil {
			return invalidMetricErrorf(ev.line(), "%s", err)
		}
		if drop {
			return nil
		}
	} else {
		fb.samples = append(fb.samples, model.Sample{Labels: effective, Value: zeroValueFor(fb.ftype)})
		sample = &fb.samples[len(fb.samples)-1]
	}

	sample.HasTs = ev.HasTimestamp
	sample.Timestamp = newTs

	return row.Action(sample, dispatchArgs{Value: value, Exemplar: exemplar, Mandatory: mandatoryVals, Line: ev.line()})
}

func (fb *familyBuilder) buildExemplar(ev SampleEvent, row *dispatchRow, lineNo int) (*model.Exemplar, error) {
	if ev.Exemplar == nil {
		return nil, nil
	}
	if !fb.ftype.CanHaveExemplar(ev.MetricName) {
		return nil, invalidMetricErrorf(lineNo, "sample %q may not carry an exemplar", ev.MetricName)
	}
	v, err := strconv.ParseFloat(ev.Exemplar.Value, 64)
	if err != nil {
		return nil, syntaxErrorf(lineNo, "exemplar has an unparseable value %q", ev.Exemplar.Value)
	}
	ex := &model.Exemplar{Labels: ev.Exemplar.Labels, Value: v}
	if ev.Exemplar.HasTimestamp {
		ts, err := model.ParseTimestamp(ev.Exemplar.Timestamp)
		if err != nil {
			return nil, syntaxErrorf(lineNo, "exemplar has an unparseable timestamp %q", ev.Exemplar.Timestamp)
		}
		ex.HasTs, ex.Timestamp = true, ts
	}
	return ex, nil
}

func (fb *familyBuilder) checkInterleaving(effective model.Labels, lineNo int) error {
	if fb.hasCurrent && fb.currentLabelSet.Equal(effective) {
		return nil
	}
	for _, seen := range fb.seenLabelSets {
		if seen.Equal(effective) {
			return invalidMetricErrorf(lineNo, "labelset %s reappeared after another labelset was started", effective)
		}
	}
	fb.currentLabelSet, fb.hasCurrent = effective, true
	fb.seenLabelSets = append(fb.seenLabelSets, effective)
	return nil
}

func (fb *familyBuilder) bindLabelNames(names []model.LabelName, lineNo int) error {
	if !fb.boundLabelNames {
		fb.labelNames, fb.boundLabelNames = names, true
		return nil
	}
	if !labelNamesEqual(fb.labelNames, names) {
		return invalidMetricErrorf(lineNo, "sample label names differ from the rest of family %q", fb.name)
	}
	return nil
}

func (fb *familyBuilder) indexByLabels(ls model.Labels) int {
	for i := range fb.samples {
		if fb.samples[i].Labels.Equal(ls) {
			return i
		}
	}
	return -1
}

func (fb *familyBuilder) finish(lineNo int) (*model.MetricFamily, error) {
	if !fb.boundName {
		return nil, invalidMetricErrorf(lineNo, "metric family never bound a name")
	}
	mf := &model.MetricFamily{
		Name:       fb.name,
		Help:       fb.help,
		Type:       fb.ftype,
		Unit:       fb.unit,
		LabelNames: fb.labelNames,
		Samples:    fb.samples,
	}
	if err := validateFamily(mf, lineNo); err != nil {
		return nil, err
	}
	return mf, nil
}

func splitMandatory(labels model.Labels, mandatory []model.LabelName) (model.Labels, map[model.LabelName]model.LabelValue, bool) {
	var vals map[model.LabelName]model.LabelValue
	if len(mandatory) > 0 {
		vals = make(map[model.LabelName]model.LabelValue, len(mandatory))
		for _, name := range mandatory {
			v, ok := labels.Get(name)
			if !ok {
				return nil, nil, false
			}
			vals[name] = v
		}
	}
	return labels.Without(mandatory...), vals, true
}

func labelNamesEqual(a, b []model.LabelName) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func zeroValueFor(t model.FamilyType) model.MetricValue {
	switch t {
	case model.TypeCounter:
		return model.NewCounterValue()
	case model.TypeHistogram, model.TypeGaugeHistogram:
		return model.NewHistogramValue(t)
	case model.TypeSummary:
		return model.NewSummaryValue()
	case model.TypeInfo:
		return model.NewInfoValue()
	default:
		return model.MetricValue{Type: t}
	}
}

// timestampVerdict implements the family builder's timestamp rules for
// a sample colliding with one already recorded under the same
// labelset. It returns drop=true when the new line is a duplicate
// scrape of a single-line type and should be silently discarded.
func timestampVerdict(existingHasTs bool, existingTs model.Timestamp, newHasTs bool, newTs model.Timestamp, allowMultiLine bool) (drop bool, err error) {
	if !existingHasTs && !newHasTs {
		return false, nil
	}
	if existingHasTs != newHasTs {
		return false, errInconsistentTimestamp
	}
	if newTs.Before(existingTs) {
		return false, errNonMonotonicTimestamp
	}
	if !allowMultiLine {
		return true, nil
	}
	return false, nil
}
