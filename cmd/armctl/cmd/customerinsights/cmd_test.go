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

package customerinsights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/customerinsights/armcustomerinsights"
)

const testSubscriptionID = "00000000-0000-0000-0000-000000000000"

func newBaseOptions(out *bytes.Buffer, format string) *base.BaseOptions {
	return &base.BaseOptions{
		SubscriptionID: testSubscriptionID,
		ResourceGroup:  "rg",
		OutputFormat:   format,
		Out:            out,
	}
}

func completedHubOptions(client azure.CustomerInsights, out *bytes.Buffer, format, hubName string) *CompletedHubOptions {
	raw := &RawHubOptions{BaseOptions: newBaseOptions(out, format), HubName: hubName}
	return &CompletedHubOptions{
		validatedHubOptions: &validatedHubOptions{RawHubOptions: raw},
		Client:              client,
	}
}

func TestHubList(t *testing.T) {
	hubs := []*armcustomerinsights.Hub{
		{
			Name:     to.Ptr("contoso"),
			Location: to.Ptr("westus"),
			Properties: &armcustomerinsights.HubPropertiesFormat{
				ProvisioningState: to.Ptr("Succeeded"),
				APIEndpoint:       to.Ptr("https://contoso.api.ci.ai.dynamics.com"),
			},
		},
		{Name: to.Ptr("fabrikam")},
	}

	for _, tc := range []struct {
		name   string
		format string
		check  func(t *testing.T, out string)
	}{
		{
			name:   "table",
			format: "table",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "PROVISIONING STATE")
				assert.Contains(t, out, "contoso")
				assert.Contains(t, out, "https://contoso.api.ci.ai.dynamics.com")
				assert.Contains(t, out, "fabrikam")
			},
		},
		{
			name:   "json",
			format: "json",
			check: func(t *testing.T, out string) {
				var decoded []*armcustomerinsights.Hub
				require.NoError(t, json.Unmarshal([]byte(out), &decoded))
				assert.Equal(t, hubs, decoded)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := azure.NewMockCustomerInsights(ctrl)
			client.EXPECT().ListHubs(gomock.Any(), "rg").Return(hubs, nil)

			var out bytes.Buffer
			require.NoError(t, completedHubOptions(client, &out, tc.format, "").List(t.Context()))
			tc.check(t, out.String())
		})
	}
}

func TestHubGetPropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockCustomerInsights(ctrl)
	client.EXPECT().GetHub(gomock.Any(), "rg", "missing").Return(nil, errors.New("404: ResourceNotFound"))

	var out bytes.Buffer
	err := completedHubOptions(client, &out, "table", "missing").Get(t.Context())
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestHubDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockCustomerInsights(ctrl)
	client.EXPECT().DeleteHub(gomock.Any(), "rg", "contoso").Return(nil)

	var out bytes.Buffer
	require.NoError(t, completedHubOptions(client, &out, "table", "contoso").Delete(t.Context()))
	assert.Equal(t, "Deleted hub contoso\n", out.String())
}

func TestProfilesListPassesLocale(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockCustomerInsights(ctrl)
	client.EXPECT().ListProfiles(gomock.Any(), "rg", "contoso", "de-de").Return([]*armcustomerinsights.ProfileResourceFormat{
		{
			Name: to.Ptr("customer"),
			Properties: &armcustomerinsights.ProfileTypeDefinition{
				EntityTypeDefinition: armcustomerinsights.EntityTypeDefinition{
					TypeName:       to.Ptr("Customer"),
					InstancesCount: to.Ptr[int32](42),
				},
			},
		},
	}, nil)

	var out bytes.Buffer
	raw := &RawProfileOptions{BaseOptions: newBaseOptions(&out, "table"), HubName: "contoso", LocaleCode: "de-de"}
	completed := &CompletedProfileOptions{
		validatedProfileOptions: &validatedProfileOptions{RawProfileOptions: raw},
		Client:                  client,
	}
	require.NoError(t, completed.Run(t.Context()))
	assert.Contains(t, out.String(), "Customer")
	assert.Contains(t, out.String(), "42")
}

func TestKpiReprocess(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockCustomerInsights(ctrl)
	client.EXPECT().ReprocessKpi(gomock.Any(), "rg", "contoso", "revenue").Return(nil)

	var out bytes.Buffer
	raw := &RawKpiOptions{BaseOptions: newBaseOptions(&out, "table"), HubName: "contoso", KpiName: "revenue"}
	completed := &CompletedKpiOptions{
		validatedKpiOptions: &validatedKpiOptions{RawKpiOptions: raw},
		Client:              client,
	}
	require.NoError(t, completed.Run(t.Context()))
	assert.Equal(t, "Reprocessing of KPI revenue in hub contoso accepted\n", out.String())
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		opts    *RawHubOptions
		wantErr string
	}{
		{
			name:    "missing subscription",
			opts:    &RawHubOptions{BaseOptions: &base.BaseOptions{ResourceGroup: "rg"}},
			wantErr: "subscription ID is required",
		},
		{
			name:    "missing resource group",
			opts:    &RawHubOptions{BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID}},
			wantErr: "resource group is required",
		},
		{
			name: "missing hub name",
			opts: &RawHubOptions{
				BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID, ResourceGroup: "rg"},
				requireName: true,
			},
			wantErr: "hub name is required",
		},
		{
			name: "list needs no hub name",
			opts: &RawHubOptions{BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID, ResourceGroup: "rg"}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.opts.Validate(context.Background())
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCommandAgainstFakeServer(t *testing.T) {
	for _, env := range []string{base.EnvSubscription, base.EnvResourceGroup, base.EnvOutput, base.EnvCloud} {
		t.Setenv(env, "")
	}

	srv := fake.NewServer(fake.Options{})
	t.Cleanup(srv.Close)
	srv.Seed("/subscriptions/"+testSubscriptionID+"/resourceGroups/rg/providers/Microsoft.CustomerInsights/hubs/contoso", map[string]any{
		"location": "westus",
	})

	ctx := base.ContextWithGlobals(base.ContextWithCorrelation(t.Context()), &base.Globals{
		Credential: srv.Credential(),
		Endpoint:   srv.URL,
		Transport:  srv.Client(),
	})
	correlation, ok := arm.CorrelationDataFromContext(ctx)
	require.True(t, ok)

	cmd, err := NewCustomerInsightsCommand("")
	require.NoError(t, err)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"hubs", "get", "--subscription", testSubscriptionID, "-g", "rg", "--hub", "contoso", "-o", "json"})
	require.NoError(t, cmd.ExecuteContext(ctx))

	var hub armcustomerinsights.Hub
	require.NoError(t, json.Unmarshal(out.Bytes(), &hub))
	assert.Equal(t, "contoso", *hub.Name)
	assert.Equal(t, "westus", *hub.Location)

	requests := srv.Requests()
	require.NotEmpty(t, requests)
	for _, request := range requests {
		assert.Equal(t, correlation.CorrelationRequestID, request.Correlation.CorrelationRequestID)
	}
}
