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

package armcustomerinsights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	testSubscription = "00000000-0000-0000-0000-000000000000"
	testHubPath      = "/subscriptions/" + testSubscription + "/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso"
)

var pollOptions = &runtime.PollUntilDoneOptions{Frequency: time.Millisecond}

func newTestFactory(t *testing.T, options fake.Options) (*ClientFactory, *fake.Server) {
	t.Helper()
	srv := fake.NewServer(options)
	t.Cleanup(srv.Close)

	client, err := mgmt.NewClientBuilder().
		WithEndpoint(srv.URL).
		WithTransport(srv.Client()).
		WithRetry(policy.RetryOptions{MaxRetries: -1}).
		Build(srv.Credential())
	require.NoError(t, err)

	factory, err := NewClientFactory(testSubscription, client)
	require.NoError(t, err)
	return factory, srv
}

func to[T any](v T) *T {
	return &v
}
