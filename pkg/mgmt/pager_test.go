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
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/Azure/azure-mgmt-go/internal/fake"
)

func TestNextLinkURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		nextLink string
		expected string
	}{
		{
			name:     "absolute link keeps its api-version",
			endpoint: "https://management.azure.com",
			nextLink: "https://management.azure.com/subscriptions/sub/providers/Microsoft.CustomerInsights/hubs?api-version=2017-04-26&%24skipToken=abc",
			expected: "https://management.azure.com/subscriptions/sub/providers/Microsoft.CustomerInsights/hubs?api-version=2017-04-26&%24skipToken=abc",
		},
		{
			name:     "absolute link on another host is verbatim",
			endpoint: "https://management.azure.com",
			nextLink: "https://westus.management.azure.com/page2?api-version=2017-04-26",
			expected: "https://westus.management.azure.com/page2?api-version=2017-04-26",
		},
		{
			name:     "api-version is added when missing",
			endpoint: "https://management.azure.com",
			nextLink: "https://management.azure.com/hubs?%24skipToken=abc",
			expected: "https://management.azure.com/hubs?%24skipToken=abc&api-version=2017-04-26",
		},
		{
			name:     "relative link replaces the endpoint path",
			endpoint: "https://localhost:8443/some/prefix",
			nextLink: "/subscriptions/sub/hubs?api-version=2017-04-26",
			expected: "https://localhost:8443/subscriptions/sub/hubs?api-version=2017-04-26",
		},
		{
			name:     "relative link without leading slash",
			endpoint: "https://localhost:8443/some/prefix",
			nextLink: "hubs?api-version=2017-04-26",
			expected: "https://localhost:8443/hubs?api-version=2017-04-26",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := NextLinkURL(tt.endpoint, tt.nextLink, testAPIVersion)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestPager(t *testing.T) {
	srv := fake.NewServer(fake.Options{PageSize: 2})
	defer srv.Close()
	client := newTestClient(t, srv)

	for i := range 5 {
		srv.Seed(fmt.Sprintf("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/hub%d", i), testHub{Location: ptr("westus")})
	}

	pager := NewPager(client, hubsListOperation("rg"), func(p testHubPage) *string { return p.NextLink })

	var names []string
	pages := 0
	for pager.More() {
		page, err := pager.NextPage(context.Background())
		require.NoError(t, err)
		pages++
		for _, hub := range page.Value {
			names = append(names, *hub.Name)
		}
	}
	assert.Equal(t, 3, pages)
	assert.Equal(t, []string{"hub0", "hub1", "hub2", "hub3", "hub4"}, names)

	requests := srv.Requests()
	require.Len(t, requests, 3)
	for _, request := range requests {
		assert.Equal(t, http.MethodGet, request.Method)
		assert.Equal(t, []string{testAPIVersion}, request.Query["api-version"])
		assert.Empty(t, request.Body)
	}
	assert.Equal(t, "4", requests[2].Query.Get("$skipToken"))
}

func TestPagerError(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)

	srv.HandleJSON(http.MethodGet, "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs", http.StatusForbidden,
		map[string]any{"error": map[string]string{"code": "AuthorizationFailed", "message": "denied"}})

	pager := NewPager(client, hubsListOperation("rg"), func(p testHubPage) *string { return p.NextLink })
	_, err := pager.NextPage(context.Background())

	var azErr *azcore.ResponseError
	require.ErrorAs(t, err, &azErr)
	assert.Equal(t, http.StatusForbidden, azErr.StatusCode)
	assert.Equal(t, "AuthorizationFailed", azErr.ErrorCode)
}

func TestItems(t *testing.T) {
	srv := fake.NewServer(fake.Options{PageSize: 1})
	defer srv.Close()
	client := newTestClient(t, srv)

	for _, name := range []string{"a", "b", "c"} {
		srv.Seed("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/"+name, testHub{})
	}
	newPager := func() *testHubPager {
		return NewPager(client, hubsListOperation("rg"), func(p testHubPage) *string { return p.NextLink })
	}
	values := func(p testHubPage) []*testHub { return p.Value }

	all, err := Collect(context.Background(), newPager(), values)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Stopping early does not fetch the remaining pages.
	before := len(srv.Requests())
	for hub, err := range Items(context.Background(), newPager(), values) {
		require.NoError(t, err)
		assert.Equal(t, "a", *hub.Name)
		break
	}
	assert.Equal(t, before+1, len(srv.Requests()))
}
