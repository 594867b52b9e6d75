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

import "github.com/prometheus/openmetrics-parser/model"

// Parse is the package's single public entry point: it tokenizes raw
// exposition bytes and drives the semantic layer over the resulting
// rule-event stream, returning a fully validated Exposition or the
// first ParseError encountered. There is no partial result on error.
func Parse(data []byte) (*model.Exposition, error) {
	events, err := Tokenize(data)
	if err != nil {
		return nil, err
	}

	exposition := &model.Exposition{}
	seenNames := make(map[string]bool)
	current := newFamilyBuilder()

	finalize := func(lineNo int) error {
		if !current.boundName {
			return nil
		}
		mf, err := current.finish(lineNo)
		if err != nil {
			return err
		}
		if seenNames[mf.Name] {
			return invalidMetricErrorf(lineNo, "duplicate family name %q", mf.Name)
		}
		seenNames[mf.Name] = true
		exposition.Families = append(exposition.Families, mf)
		return nil
	}

	for _, ev := range events {
		switch e := ev.(type) {
		case HelpEvent:
			if err := rotateIfNewFamily(&current, finalize, e.MetricName, e.line()); err != nil {
				return nil, err
			}
			if err := current.handleHelp(e); err != nil {
				return nil, err
			}
		case TypeEvent:
			if err := rotateIfNewFamily(&current, finalize, e.MetricName, e.line()); err != nil {
				return nil, err
			}
			if err := current.handleType(e); err != nil {
				return nil, err
			}
		case UnitEvent:
			if err := rotateIfNewFamily(&current, finalize, e.MetricName, e.line()); err != nil {
				return nil, err
			}
			if err := current.handleUnit(e); err != nil {
				return nil, err
			}
		case SampleEvent:
			if err := rotateIfNewFamily(&current, finalize, probeFamilyName(current, e.MetricName), e.line()); err != nil {
				return nil, err
			}
			if err := current.handleSample(e); err != nil {
				return nil, err
			}
		case EOFEvent:
			if err := finalize(e.line()); err != nil {
				return nil, err
			}
		}
	}

	return exposition, nil
}

// rotateIfNewFamily closes out *current and opens a fresh builder when a
// line names a family different from the one currently being assembled,
// mirroring the grammar's "zero or more metricfamily blocks" structure:
// a HELP/TYPE/UNIT for a different name, or a sample whose probed family
// name differs, starts a new block.
func rotateIfNewFamily(current **familyBuilder, finalize func(int) error, name string, lineNo int) error {
	if (*current).boundName && (*current).name != name {
		if err := finalize(lineNo); err != nil {
			return err
		}
		*current = newFamilyBuilder()
	}
	return nil
}

// probeFamilyName guesses which family a sample line belongs to, without
// mutating fb, so the driver can decide whether to rotate to a fresh
// builder before handleSample actually binds anything. It mirrors the
// type-defaulting handleSample itself applies: a builder that has not
// seen a TYPE line is treated as Unknown, under which every sample name
// is its own family (Unknown has no suffix to strip).
func probeFamilyName(fb *familyBuilder, sampleName string) string {
	t := model.TypeUnknown
	if fb.boundType {
		t = fb.ftype
	}
	if _, base, ok := selectRow(t, sampleName); ok {
		return base
	}
	return sampleName
}
