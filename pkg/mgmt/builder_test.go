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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
)

func TestFirstN(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		n        int
		expected string
	}{
		{
			name:     "string shorter than n",
			str:      "armctl",
			n:        24,
			expected: "armctl",
		},
		{
			name:     "string equal to n",
			str:      "hello",
			n:        5,
			expected: "hello",
		},
		{
			name:     "string longer than n",
			str:      "armctl/0123456789abcdef0123456789abcdef",
			n:        24,
			expected: "armctl/0123456789abcdef0",
		},
		{
			name:     "empty string",
			str:      "",
			n:        5,
			expected: "",
		},
		{
			name:     "n is zero",
			str:      "hello",
			n:        0,
			expected: "",
		},
		{
			name:     "string with unicode characters",
			str:      "héllo wörld",
			n:        5,
			expected: "héllo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstN(tt.str, tt.n))
		})
	}
}

func TestClientBuilder(t *testing.T) {
	tests := []struct {
		name           string
		builder        *ClientBuilder
		expectEndpoint string
		expectScopes   []string
		expectErr      string
	}{
		{
			name:           "defaults",
			builder:        NewClientBuilder(),
			expectEndpoint: "https://management.azure.com",
			expectScopes:   []string{"https://management.azure.com/.default"},
		},
		{
			name:           "trailing slash is trimmed",
			builder:        NewClientBuilder().WithEndpoint("https://localhost:8443/"),
			expectEndpoint: "https://localhost:8443",
			expectScopes:   []string{"https://localhost:8443/.default"},
		},
		{
			name:           "china cloud",
			builder:        NewClientBuilder().WithCloud(CloudAzureChina),
			expectEndpoint: "https://management.chinacloudapi.cn",
			expectScopes:   []string{"https://management.core.chinacloudapi.cn/.default"},
		},
		{
			name:           "explicit endpoint wins over cloud",
			builder:        NewClientBuilder().WithCloud(CloudAzureUSGovernment).WithEndpoint("https://example.com"),
			expectEndpoint: "https://example.com",
			expectScopes:   []string{"https://example.com/.default"},
		},
		{
			name:           "explicit scopes",
			builder:        NewClientBuilder().WithScopes("https://custom/.default"),
			expectEndpoint: "https://management.azure.com",
			expectScopes:   []string{"https://custom/.default"},
		},
		{
			name:      "unknown cloud",
			builder:   NewClientBuilder().WithCloud("AzureMoonCloud"),
			expectErr: `cloud environment "AzureMoonCloud" is not supported`,
		},
		{
			name:      "relative endpoint",
			builder:   NewClientBuilder().WithEndpoint("management.azure.com"),
			expectErr: `endpoint "management.azure.com" must be an absolute URL`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := tt.builder.Build(&azfake.TokenCredential{})
			if tt.expectErr != "" {
				require.EqualError(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectEndpoint, client.Endpoint())
			assert.Equal(t, tt.expectScopes, client.Scopes())
		})
	}
}

func TestClientBuilderRequiresCredential(t *testing.T) {
	_, err := NewClientBuilder().Build(nil)
	assert.Error(t, err)
}
