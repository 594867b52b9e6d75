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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEmitIsIdempotentUnderReparse(t *testing.T) {
	inputs := []string{
		"# TYPE a counter\na_total 1\n# EOF\n",
		"# HELP h some help text\n# TYPE h histogram\nh_bucket{le=\"1\"} 0\nh_bucket{le=\"+Inf\"} 3\nh_count 3\nh_sum 2.5\n# EOF\n",
		"# TYPE s summary\ns{quantile=\"0.5\"} 1\ns_count 1\ns_sum 1\n# EOF\n",
	}
	for _, in := range inputs {
		first, err := Parse([]byte(in))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Emit(&buf, first))

		second, err := Parse(buf.Bytes())
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("parse(emit(parse(x))) != parse(x) (-want +got):\n%s", diff)
		}
	}
}
