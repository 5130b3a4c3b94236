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

package fake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCollection(t *testing.T) {
	tests := []struct {
		path       string
		collection bool
	}{
		{"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs", true},
		{"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso", false},
		{"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso/connectors/c1/mappings", true},
		{"/subscriptions/sub/providers/Microsoft.Media/mediaservices", true},
		{"/providers/Microsoft.CustomerInsights/operations", true},
		{"/subscriptions/sub/resourcegroups", true},
		{"/subscriptions/sub/resourcegroups/rg", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.collection, isCollection(tt.path))
		})
	}
}

func TestInCollection(t *testing.T) {
	key := "/subscriptions/sub/resourcegroups/rg/providers/microsoft.customerinsights/hubs/contoso"

	assert.True(t, inCollection(key, "/subscriptions/sub/resourcegroups/rg/providers/microsoft.customerinsights/hubs"))
	assert.True(t, inCollection(key, "/subscriptions/sub/providers/microsoft.customerinsights/hubs"))
	assert.False(t, inCollection(key, "/subscriptions/sub/resourcegroups/other/providers/microsoft.customerinsights/hubs"))
	assert.False(t, inCollection(key+"/profiles/p1", "/subscriptions/sub/providers/microsoft.customerinsights/hubs"))
}

func TestTypeAndName(t *testing.T) {
	resourceType, name := typeAndName("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/acct/queueServices/default/queues/my%20queue")
	assert.Equal(t, "Microsoft.Storage/storageAccounts/queueServices/queues", resourceType)
	assert.Equal(t, "my queue", name)
}

func TestDecorate(t *testing.T) {
	path := "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso"

	assert.JSONEq(t,
		`{"id":"`+path+`","name":"contoso","type":"Microsoft.CustomerInsights/hubs","location":"westus","properties":{"provisioningState":"Provisioning"}}`,
		string(decorate(path, []byte(`{"location":"westus"}`), true)))

	assert.JSONEq(t,
		`{"id":"`+path+`","name":"contoso","type":"Microsoft.CustomerInsights/hubs","properties":{"provisioningState":"Succeeded"}}`,
		string(decorate(path, []byte(`{"properties":{"provisioningState":"Provisioning"}}`), false)))

	assert.Equal(t, "[1,2]", string(decorate(path, []byte("[1,2]"), false)))
}
