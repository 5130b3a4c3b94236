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

package mgmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/internal/fake"
)

const (
	testAPIVersion = "2017-04-26"
	testHubsPath   = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.CustomerInsights/hubs"
)

func newTestClient(t *testing.T, srv *fake.Server, configure ...func(*ClientBuilder)) *Client {
	t.Helper()
	builder := NewClientBuilder().
		WithEndpoint(srv.URL).
		WithTransport(srv.Client()).
		WithRetry(policy.RetryOptions{MaxRetries: -1})
	for _, c := range configure {
		c(builder)
	}
	client, err := builder.Build(srv.Credential())
	require.NoError(t, err)
	return client
}

type testHub struct {
	ID       *string            `json:"id,omitempty"`
	Name     *string            `json:"name,omitempty"`
	Location *string            `json:"location,omitempty"`
	Tags     map[string]*string `json:"tags,omitempty"`
}

type testHubPage struct {
	Value    []*testHub `json:"value,omitempty"`
	NextLink *string    `json:"nextLink,omitempty"`
}

type testHubPager = runtime.Pager[testHubPage]

func hubOperation(name, method, resourceGroup, hub string, statuses ...int) Operation {
	return Operation{
		Name:       name,
		Method:     method,
		Path:       testHubsPath + "/{hubName}",
		Params:     []Param{P("subscriptionId", "sub"), P("resourceGroupName", resourceGroup), P("hubName", hub)},
		APIVersion: testAPIVersion,
		Statuses:   statuses,
	}
}

func hubsListOperation(resourceGroup string) Operation {
	return Operation{
		Name:       "HubsClient.NewListByResourceGroupPager",
		Method:     "GET",
		Path:       testHubsPath,
		Params:     []Param{P("subscriptionId", "sub"), P("resourceGroupName", resourceGroup)},
		APIVersion: testAPIVersion,
		Statuses:   []int{200},
	}
}
