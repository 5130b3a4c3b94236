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
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

const hubPath = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso"

type testHubDeleteResponse struct{}

var pollOptions = &runtime.PollUntilDoneOptions{Frequency: time.Millisecond}

func TestPollerAsyncOperation(t *testing.T) {
	srv := fake.NewServer(fake.Options{AsyncPut: true, PollsBeforeDone: 2})
	defer srv.Close()
	client := newTestClient(t, srv)
	ctx := context.Background()

	poller, err := NewPoller[testHub](ctx, client,
		hubOperation("HubsClient.BeginCreateOrUpdate", http.MethodPut, "rg", "contoso", http.StatusOK, http.StatusCreated),
		testHub{Location: ptr("westus")}, nil)
	require.NoError(t, err)
	assert.False(t, poller.Done())

	hub, err := poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)
	assert.Equal(t, "contoso", *hub.Name)
	assert.Equal(t, "westus", *hub.Location)

	// PUT, two InProgress polls, one Succeeded poll and the final GET.
	assert.Len(t, srv.Requests(), 5)
	assert.Equal(t, http.MethodGet, srv.LastRequest().Method)
	assert.Equal(t, hubPath, srv.LastRequest().EscapedPath)
}

func TestPollerAsyncDelete(t *testing.T) {
	srv := fake.NewServer(fake.Options{AsyncDelete: true})
	defer srv.Close()
	client := newTestClient(t, srv)
	ctx := context.Background()

	srv.Seed(hubPath, testHub{Location: ptr("westus")})

	poller, err := NewPoller[testHubDeleteResponse](ctx, client,
		hubOperation("HubsClient.BeginDelete", http.MethodDelete, "rg", "contoso", http.StatusOK, http.StatusAccepted, http.StatusNoContent),
		nil, nil)
	require.NoError(t, err)

	_, err = poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)

	_, ok := srv.Resource(hubPath)
	assert.False(t, ok)
}

func TestPollerAsyncOperationFailed(t *testing.T) {
	srv := fake.NewServer(fake.Options{AsyncPut: true, PollsBeforeDone: 1, FinalStatus: arm.ProvisioningStateFailed})
	defer srv.Close()
	client := newTestClient(t, srv)
	ctx := context.Background()

	poller, err := NewPoller[testHub](ctx, client,
		hubOperation("HubsClient.BeginCreateOrUpdate", http.MethodPut, "rg", "contoso", http.StatusOK, http.StatusCreated),
		testHub{Location: ptr("westus")}, nil)
	require.NoError(t, err)

	_, err = poller.PollUntilDone(ctx, pollOptions)
	var respErr *azcore.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, arm.CloudErrorCodeInternalServerError, respErr.ErrorCode)

	// PUT, one InProgress poll and the Failed poll. No final GET.
	assert.Len(t, srv.Requests(), 3)
	_, ok := srv.Resource(hubPath)
	assert.False(t, ok)
}

func TestPollerSynchronousCompletion(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)
	ctx := context.Background()

	srv.Seed(hubPath, testHub{Location: ptr("westus")})

	poller, err := NewPoller[testHubDeleteResponse](ctx, client,
		hubOperation("HubsClient.BeginDelete", http.MethodDelete, "rg", "contoso", http.StatusOK, http.StatusAccepted, http.StatusNoContent),
		nil, nil)
	require.NoError(t, err)
	assert.True(t, poller.Done())

	_, err = poller.Result(ctx)
	require.NoError(t, err)
	assert.Len(t, srv.Requests(), 1)
}

func TestPollerAcceptedWithoutMonitor(t *testing.T) {
	srv := fake.NewServer(fake.Options{DeleteStatus: http.StatusAccepted})
	defer srv.Close()
	client := newTestClient(t, srv)
	ctx := context.Background()

	srv.Seed(hubPath, testHub{Location: ptr("westus")})

	poller, err := NewPoller[testHubDeleteResponse](ctx, client,
		hubOperation("HubsClient.BeginDelete", http.MethodDelete, "rg", "contoso", http.StatusOK, http.StatusAccepted, http.StatusNoContent),
		nil, nil)
	require.NoError(t, err)
	assert.True(t, poller.Done())

	_, err = poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)
	assert.Len(t, srv.Requests(), 1)
}

func TestPollerAcceptedWithoutMonitorNotAccepted(t *testing.T) {
	srv := fake.NewServer(fake.Options{DeleteStatus: http.StatusAccepted})
	defer srv.Close()
	client := newTestClient(t, srv)

	srv.Seed(hubPath, testHub{Location: ptr("westus")})

	_, err := NewPoller[testHubDeleteResponse](context.Background(), client,
		hubOperation("ConnectorMappingsClient.Delete", http.MethodDelete, "rg", "contoso", http.StatusOK, http.StatusNoContent),
		nil, nil)
	var respErr *azcore.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusAccepted, respErr.StatusCode)
}

func TestPollerResumeToken(t *testing.T) {
	srv := fake.NewServer(fake.Options{AsyncPut: true, PollsBeforeDone: 1})
	defer srv.Close()
	client := newTestClient(t, srv)
	ctx := context.Background()

	op := hubOperation("HubsClient.BeginCreateOrUpdate", http.MethodPut, "rg", "contoso", http.StatusOK, http.StatusCreated)
	poller, err := NewPoller[testHub](ctx, client, op, testHub{Location: ptr("westus")}, nil)
	require.NoError(t, err)

	token, err := poller.ResumeToken()
	require.NoError(t, err)

	resumed, err := NewPoller[testHub](ctx, client, op, nil, &PollerOptions{ResumeToken: token})
	require.NoError(t, err)
	// Resuming does not resend the PUT.
	assert.Len(t, srv.Requests(), 1)

	hub, err := resumed.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)
	assert.Equal(t, "contoso", *hub.Name)
}

func TestPollerInitialError(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)

	_, err := NewPoller[testHubDeleteResponse](context.Background(), client,
		hubOperation("HubsClient.BeginDelete", http.MethodDelete, "rg", "contoso", http.StatusOK, http.StatusAccepted),
		nil, nil)
	// The fake answers 204 for a missing resource, which this operation does not accept.
	require.Error(t, err)
}
