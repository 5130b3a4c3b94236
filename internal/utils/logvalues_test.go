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

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogValues(t *testing.T) {
	tests := []struct {
		name     string
		values   LogValues
		expected LogValues
	}{
		{
			name: "request attributes",
			values: LogValues{}.
				AddMethod("GET").
				AddAPIVersion("2017-04-26").
				AddStatusCode(404).
				AddDuration(1500 * time.Millisecond),
			expected: LogValues{
				"method", "get",
				"api_version", "2017-04-26",
				"status_code", "404",
				"duration_ms", int64(1500),
			},
		},
		{
			name: "resource ID",
			values: LogValues{}.AddLogValuesForResourceIDString(
				"/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/MyGroup/providers/Microsoft.CustomerInsights/hubs/Contoso"),
			expected: LogValues{
				"subscription_id", "00000000-0000-0000-0000-000000000000",
				"resource_group", "mygroup",
				"resource_type", "microsoft.customerinsights/hubs",
				"resource_name", "contoso",
				"resource_id", "/subscriptions/00000000-0000-0000-0000-000000000000/resourcegroups/mygroup/providers/microsoft.customerinsights/hubs/contoso",
			},
		},
		{
			name:     "unparseable resource ID",
			values:   LogValues{}.AddLogValuesForResourceIDString("not-a-resource-id"),
			expected: LogValues{"resource_id", "not-a-resource-id"},
		},
		{
			name:     "nil resource ID",
			values:   LogValues{}.AddLogValuesForResourceID(nil),
			expected: LogValues{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.values)
		})
	}
}
