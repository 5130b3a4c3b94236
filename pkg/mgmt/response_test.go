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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

func TestInvoke(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)
	ctx := context.Background()

	var created testHub
	_, err := client.Invoke(ctx,
		hubOperation("HubsClient.CreateOrUpdate", http.MethodPut, "rg", "contoso", http.StatusOK, http.StatusCreated),
		testHub{Location: to.Ptr("westus")}, &created)
	require.NoError(t, err)
	assert.Equal(t, "contoso", *created.Name)
	assert.Equal(t, "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso", *created.ID)

	request := srv.LastRequest()
	assert.Equal(t, http.MethodPut, request.Method)
	assert.Equal(t, "2017-04-26", request.Query.Get("api-version"))
	assert.JSONEq(t, `{"location":"westus"}`, string(request.Body))
	assert.NotEmpty(t, request.Header.Get(arm.HeaderNameCorrelationRequestID))
	assert.Contains(t, request.Header.Get("User-Agent"), "azure-mgmt-go")

	var fetched testHub
	_, err = client.Invoke(ctx, hubOperation("HubsClient.Get", http.MethodGet, "rg", "contoso", http.StatusOK), nil, &fetched)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestInvokeUnexpectedStatus(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)

	// Created is not an accepted status for this operation.
	_, err := client.Invoke(context.Background(),
		hubOperation("HubsClient.CreateOrUpdate", http.MethodPut, "rg", "contoso", http.StatusOK),
		testHub{Location: to.Ptr("westus")}, nil)
	var azErr *azcore.ResponseError
	require.ErrorAs(t, err, &azErr)
	assert.Equal(t, http.StatusCreated, azErr.StatusCode)
}

func TestInvokeNotFound(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)

	_, err := client.Invoke(context.Background(), hubOperation("HubsClient.Get", http.MethodGet, "rg", "missing", http.StatusOK), nil, &testHub{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.True(t, HasErrorCode(err, arm.CloudErrorCodeResourceNotFound))

	cloudError, ok := CloudErrorFrom(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, cloudError.StatusCode)
	assert.Equal(t, "The resource 'Microsoft.CustomerInsights/hubs/missing' was not found.", cloudError.Message)
}

func TestInvokeEmptyParameterSendsNothing(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)

	_, err := client.Invoke(context.Background(), hubOperation("HubsClient.Get", http.MethodGet, "", "contoso", http.StatusOK), nil, &testHub{})
	require.ErrorIs(t, err, ErrEmptyParameter)
	assert.Empty(t, srv.Requests())
}

func TestInvokeDecodeError(t *testing.T) {
	srv := fake.NewServer(fake.Options{})
	defer srv.Close()
	client := newTestClient(t, srv)

	path := "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso"
	srv.HandleJSON(http.MethodGet, path, http.StatusOK, []byte(`{"location":42}`))

	_, err := client.Invoke(context.Background(), hubOperation("HubsClient.Get", http.MethodGet, "rg", "contoso", http.StatusOK), nil, &testHub{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response of GET")
}

func TestCloudErrorFromOtherErrors(t *testing.T) {
	_, ok := CloudErrorFrom(assert.AnError)
	assert.False(t, ok)
	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, HasErrorCode(nil, "NotFound"))
}
