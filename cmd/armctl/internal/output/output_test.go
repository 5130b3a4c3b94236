// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

func TestWrite(t *testing.T) {
	result := Result{
		Value:  []map[string]string{{"name": "orders"}},
		Header: table.Row{"Name", "Messages"},
		Rows:   []table.Row{{"orders", 3}, {"billing", Deref[int32](nil)}},
		Footer: table.Row{"Total", 3},
	}

	tests := []struct {
		name         string
		format       string
		wantErr      string
		wantContains []string
	}{
		{
			name:         "table",
			format:       FormatTable,
			wantContains: []string{"NAME", "MESSAGES", "orders", "billing", "-", "TOTAL"},
		},
		{
			name:         "empty format defaults to table",
			format:       "",
			wantContains: []string{"NAME", "orders"},
		},
		{
			name:         "json",
			format:       FormatJSON,
			wantContains: []string{`"name": "orders"`},
		},
		{
			name:    "unsupported",
			format:  "yaml",
			wantErr: `unsupported output format "yaml"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.format, result)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "-", Deref[string](nil))
	assert.Equal(t, "westus", Deref(to.Ptr("westus")))
	assert.Equal(t, int32(4), Deref(to.Ptr[int32](4)))
}
