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
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
)

func TestOperationURL(t *testing.T) {
	tests := []struct {
		name      string
		op        Operation
		expected  string
		expectErr error
	}{
		{
			name:     "path parameters and api-version",
			op:       hubOperation("HubsClient.Get", http.MethodGet, "rg", "contoso"),
			expected: "https://management.azure.com/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso?api-version=2017-04-26",
		},
		{
			name:     "parameters are escaped",
			op:       hubOperation("HubsClient.Get", http.MethodGet, "my rg", "a/b"),
			expected: "https://management.azure.com/subscriptions/sub/resourceGroups/my%20rg/providers/Microsoft.CustomerInsights/hubs/a%2Fb?api-version=2017-04-26",
		},
		{
			name: "extra query parameters follow api-version",
			op: func() Operation {
				op := hubOperation("ProfilesClient.Get", http.MethodGet, "rg", "contoso")
				op.Query = url.Values{"locale-code": []string{"en-us"}}
				return op
			}(),
			expected: "https://management.azure.com/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso?api-version=2017-04-26&locale-code=en-us",
		},
		{
			name:      "empty parameter",
			op:        hubOperation("HubsClient.Get", http.MethodGet, "rg", ""),
			expectErr: ErrEmptyParameter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.op.URL(DefaultEndpoint)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				assert.Contains(t, err.Error(), "hubName")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}
}

func TestOperationURLUnresolvedParameter(t *testing.T) {
	op := hubOperation("HubsClient.Get", http.MethodGet, "rg", "contoso")
	op.Params = op.Params[:2]
	_, err := op.URL(DefaultEndpoint)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyParameter))
}

func TestOperationURLRequiredQuery(t *testing.T) {
	op := hubOperation("ViewsClient.Get", http.MethodGet, "rg", "contoso")
	op.RequiredQuery = []string{"userId"}

	op.Query = url.Values{"userId": []string{""}}
	_, err := op.URL(DefaultEndpoint)
	require.ErrorIs(t, err, ErrEmptyParameter)
	assert.Contains(t, err.Error(), "userId")

	op.Query.Set("userId", "*")
	u, err := op.URL(DefaultEndpoint)
	require.NoError(t, err)
	assert.Contains(t, u, "&userId=%2A")
}

func TestNewRequest(t *testing.T) {
	client, err := NewClientBuilder().Build(&azfake.TokenCredential{})
	require.NoError(t, err)

	t.Run("without body", func(t *testing.T) {
		req, err := client.NewRequest(context.Background(), hubOperation("HubsClient.Get", http.MethodGet, "rg", "contoso"), nil)
		require.NoError(t, err)
		assert.Equal(t, "application/json", req.Raw().Header.Get("Accept"))
		assert.Empty(t, req.Raw().Header.Get("Content-Type"))
		assert.Nil(t, req.Body())
	})

	t.Run("with body", func(t *testing.T) {
		req, err := client.NewRequest(context.Background(), hubOperation("HubsClient.CreateOrUpdate", http.MethodPut, "rg", "contoso"), testHub{Location: ptr("westus")})
		require.NoError(t, err)
		assert.Equal(t, "application/json", req.Raw().Header.Get("Content-Type"))
		assert.NotNil(t, req.Body())
	})
}

func TestProviderFromPath(t *testing.T) {
	assert.Equal(t, "Microsoft.CustomerInsights", providerFromPath(testHubsPath))
	assert.Equal(t, "Microsoft.CustomerInsights", providerFromPath("/providers/Microsoft.CustomerInsights/operations"))
	assert.Equal(t, "", providerFromPath("/subscriptions/sub/resourcegroups"))
	assert.Equal(t, "", providerFromPath("/subscriptions/sub/providers/{namespace}/x"))
}

func ptr[T any](v T) *T {
	return &v
}
