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
	"html/template"
	"io"
	"strconv"

	"github.com/prometheus/openmetrics-parser/model"
)

const familyTemplateText = `<div class="metric-family">
  <div class="metric-name">{{.Name}}</div>
  <div class="metric-help">{{.Help}}</div>
  <div class="metric-type">Type: {{.Type}}</div>
  <table class="metric-samples">
    <tbody>
      {{range .Samples}}
      <tr>
        <td>{{labelString .Labels}}</td>
        <td>{{sampleSummary $.Type .}}</td>
        {{if .HasTs}}<td>{{.Timestamp}}</td>{{end}}
      </tr>
      {{end}}
    </tbody>
  </table>
</div>
`

var familyTemplate = template.Must(template.New("family").Funcs(template.FuncMap{
	"labelString":  func(ls model.Labels) string { return ls.String() },
	"sampleSummary": sampleSummary,
}).Parse(familyTemplateText))

// HTMLPreamble opens the page wrapping the rendered families.
const HTMLPreamble = `<!DOCTYPE html>
<html>
<head><title>OpenMetrics exposition</title></head>
<body>
`

// HTMLPostamble closes what HTMLPreamble opened.
const HTMLPostamble = `</body>
</html>
`

// RenderHTML renders exp as a standalone HTML document, one block per
// metric family, for humans inspecting a scrape by eye.
func RenderHTML(w io.Writer, exp *model.Exposition) error {
	if _, err := io.WriteString(w, HTMLPreamble); err != nil {
		return err
	}
	for _, mf := range exp.Families {
		if err := familyTemplate.Execute(w, mf); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, HTMLPostamble)
	return err
}

func sampleSummary(t model.FamilyType, s model.Sample) string {
	v := s.Value
	switch t {
	case model.TypeCounter:
		return v.Counter.Value.String()
	case model.TypeHistogram, model.TypeGaugeHistogram:
		return "buckets=" + strconv.Itoa(len(v.Histogram.Buckets))
	case model.TypeSummary:
		return "quantiles=" + strconv.Itoa(len(v.Summary.Quantiles))
	case model.TypeInfo:
		return "info"
	default:
		if v.HasScalar {
			return v.Scalar.String()
		}
		return ""
	}
}
