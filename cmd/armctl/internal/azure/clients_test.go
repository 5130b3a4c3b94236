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

package azure

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	testSubscriptionID = "00000000-0000-0000-0000-000000000000"
	testResourceGroup  = "rg"
	subscriptionPath   = "/subscriptions/" + testSubscriptionID
	resourceGroupPath  = subscriptionPath + "/resourceGroups/" + testResourceGroup
)

func newTestClients(t *testing.T, options fake.Options) (*Clients, *fake.Server) {
	t.Helper()
	srv := fake.NewServer(options)
	t.Cleanup(srv.Close)

	clients, err := NewClients(testSubscriptionID, srv.Credential(), ClientOptions{
		Endpoint:      srv.URL,
		Transport:     srv.Client(),
		Retry:         &policy.RetryOptions{MaxRetries: -1},
		PollFrequency: time.Millisecond,
	})
	require.NoError(t, err)
	return clients, srv
}

func TestNewClientsRejectsUnknownCloud(t *testing.T) {
	_, err := NewClients(testSubscriptionID, &azfake.TokenCredential{}, ClientOptions{Cloud: "AzureStackCloud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cloud environment "AzureStackCloud" is not supported`)
}

func TestListResourceGroups(t *testing.T) {
	clients, srv := newTestClients(t, fake.Options{PageSize: 1})
	srv.Seed(subscriptionPath+"/resourceGroups/rg-b", map[string]any{"location": "westus"})
	srv.Seed(subscriptionPath+"/resourceGroups/rg-a", map[string]any{"location": "westus"})

	groups, err := clients.ListResourceGroups(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"rg-a", "rg-b"}, groups)
}

func TestCustomerInsights(t *testing.T) {
	clients, srv := newTestClients(t, fake.Options{})
	hubPath := resourceGroupPath + "/providers/Microsoft.CustomerInsights/hubs/contoso"
	srv.Seed(hubPath, map[string]any{
		"location":   "westus",
		"properties": map[string]any{"tenantFeatures": 0},
	})
	srv.Seed(hubPath+"/profiles/customer", map[string]any{
		"properties": map[string]any{"entityType": "Profile"},
	})

	hubs, err := clients.ListHubs(t.Context(), testResourceGroup)
	require.NoError(t, err)
	require.Len(t, hubs, 1)
	assert.Equal(t, "contoso", *hubs[0].Name)

	hub, err := clients.GetHub(t.Context(), testResourceGroup, "contoso")
	require.NoError(t, err)
	assert.Equal(t, to.Ptr("westus"), hub.Location)

	profiles, err := clients.ListProfiles(t.Context(), testResourceGroup, "contoso", "de-de")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "customer", *profiles[0].Name)
	assert.Equal(t, "de-de", srv.LastRequest().Query.Get("locale-code"))

	srv.Handle(http.MethodPost, hubPath+"/kpi/revenue/reprocess", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	require.NoError(t, clients.ReprocessKpi(t.Context(), testResourceGroup, "contoso", "revenue"))

	require.NoError(t, clients.DeleteHub(t.Context(), testResourceGroup, "contoso"))
	_, ok := srv.Resource(hubPath)
	assert.False(t, ok)

	_, err = clients.GetHub(t.Context(), testResourceGroup, "contoso")
	require.Error(t, err)
	assert.True(t, mgmt.IsNotFound(err))
}

func TestMediaServices(t *testing.T) {
	clients, srv := newTestClients(t, fake.Options{ODataNextLink: true, PageSize: 1})
	accountPath := resourceGroupPath + "/providers/Microsoft.Media/mediaservices/studio"
	srv.Seed(accountPath, map[string]any{"location": "westus"})
	srv.Seed(accountPath+"/transforms/encode", map[string]any{
		"properties": map[string]any{"description": "adaptive streaming"},
	})
	srv.Seed(accountPath+"/transforms/encode/jobs/job-1", map[string]any{
		"properties": map[string]any{"state": "Processing"},
	})
	srv.Seed(accountPath+"/transforms/encode/jobs/job-2", map[string]any{
		"properties": map[string]any{"state": "Queued"},
	})

	accounts, err := clients.ListAccounts(t.Context(), testResourceGroup)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	transforms, err := clients.ListTransforms(t.Context(), testResourceGroup, "studio")
	require.NoError(t, err)
	require.Len(t, transforms, 1)
	assert.Equal(t, "adaptive streaming", *transforms[0].Properties.Description)

	jobs, err := clients.ListJobs(t.Context(), testResourceGroup, "studio", "encode", "properties/state eq 'Processing'")
	require.NoError(t, err)
	assert.Len(t, jobs, 2, "the fake ignores $filter, every page must still be collected")
	assert.Equal(t, "properties/state eq 'Processing'", srv.LastRequest().Query.Get("$filter"))

	srv.HandleJSON(http.MethodPost, accountPath+"/transforms/encode/jobs/job-1/cancelJob", http.StatusOK, map[string]any{})
	require.NoError(t, clients.CancelJob(t.Context(), testResourceGroup, "studio", "encode", "job-1"))

	srv.Handle(http.MethodPost, accountPath+"/transforms/encode/jobs/job-2/cancelJob", func(w http.ResponseWriter, r *http.Request) {
		arm.WriteError(w, http.StatusBadRequest, "InvalidOperation", "", "The job is already finished.")
	})
	err = clients.CancelJob(t.Context(), testResourceGroup, "studio", "encode", "job-2")
	require.Error(t, err)
	assert.True(t, mgmt.HasErrorCode(err, "InvalidOperation"))
}

func TestStorageQueues(t *testing.T) {
	clients, srv := newTestClients(t, fake.Options{PutStatus: http.StatusOK})
	accountPath := resourceGroupPath + "/providers/Microsoft.Storage/storageAccounts/contosodata"

	queue, err := clients.CreateQueue(t.Context(), testResourceGroup, "contosodata", "orders", map[string]*string{"team": to.Ptr("billing")})
	require.NoError(t, err)
	assert.Equal(t, "orders", *queue.Name)
	_, ok := srv.Resource(accountPath + "/queueServices/default/queues/orders")
	assert.True(t, ok)

	queues, err := clients.ListQueues(t.Context(), testResourceGroup, "contosodata", "ord")
	require.NoError(t, err)
	require.Len(t, queues, 1)
	assert.Equal(t, "billing", *queues[0].QueueProperties.Metadata["team"])
	assert.Equal(t, "ord", srv.LastRequest().Query.Get("$filter"))

	require.NoError(t, clients.DeleteQueue(t.Context(), testResourceGroup, "contosodata", "orders"))
	queues, err = clients.ListQueues(t.Context(), testResourceGroup, "contosodata", "")
	require.NoError(t, err)
	assert.Empty(t, queues)
}
