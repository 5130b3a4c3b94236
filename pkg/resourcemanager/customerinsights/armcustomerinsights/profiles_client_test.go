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
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

func testProfile() ProfileResourceFormat {
	return ProfileResourceFormat{
		Properties: &ProfileTypeDefinition{
			EntityTypeDefinition: EntityTypeDefinition{
				APIEntitySetName:   to("TestProfileType"),
				TypeName:           to("TestProfileType"),
				TimestampFieldName: to("LastModifiedUTCTime"),
				Fields: []*PropertyDefinition{
					{FieldName: to("Id"), FieldType: to("Edm.String"), IsRequired: to(true)},
					{FieldName: to("ProfileId"), FieldType: to("Edm.String"), IsArray: to(false)},
				},
				SchemaItemTypeLink: to("SchemaItemTypeLink"),
			},
			StrongIDs: []*StrongID{
				{StrongIDName: to("Id"), KeyPropertyNames: []*string{to("Id")}},
			},
		},
	}
}

func TestProfilesLocaleCode(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{PutStatus: http.StatusOK})
	client := factory.NewProfilesClient()
	ctx := context.Background()

	poller, err := client.BeginCreateOrUpdate(ctx, "rg", "contoso", "TestProfileType", testProfile(), nil)
	require.NoError(t, err)
	created, err := poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft.CustomerInsights/hubs/profiles", *created.Type)
	assert.False(t, srv.LastRequest().Query.Has("locale-code"))

	tests := []struct {
		name     string
		options  *ProfilesClientGetOptions
		expected string
	}{
		{name: "nil options", options: nil, expected: "en-us"},
		{name: "unset locale", options: &ProfilesClientGetOptions{}, expected: "en-us"},
		{name: "explicit locale", options: &ProfilesClientGetOptions{LocaleCode: to("fr-fr")}, expected: "fr-fr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := client.Get(ctx, "rg", "contoso", "TestProfileType", tt.options)
			require.NoError(t, err)
			assert.Equal(t, "TestProfileType", *profile.Properties.TypeName)
			require.Len(t, profile.Properties.StrongIDs, 1)

			req := srv.LastRequest()
			assert.Equal(t, testHubPath+"/profiles/TestProfileType", req.EscapedPath)
			assert.Equal(t, tt.expected, req.Query.Get("locale-code"))
		})
	}

	profiles, err := mgmt.Collect(ctx, client.NewListByHubPager("rg", "contoso", &ProfilesClientListByHubOptions{LocaleCode: to("de-de")}),
		func(page ProfilesClientListByHubResponse) []*ProfileResourceFormat { return page.Value })
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "de-de", srv.LastRequest().Query.Get("locale-code"))
}

func TestProfilesAsyncCreateAndDelete(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{
		AsyncPut:        true,
		AsyncDelete:     true,
		PutStatus:       http.StatusAccepted,
		PollsBeforeDone: 1,
	})
	client := factory.NewProfilesClient()
	ctx := context.Background()

	poller, err := client.BeginCreateOrUpdate(ctx, "rg", "contoso", "TestProfileType", testProfile(), nil)
	require.NoError(t, err)
	assert.False(t, poller.Done())

	created, err := poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)
	assert.Equal(t, "TestProfileType", *created.Name)
	require.NotNil(t, created.Properties.ProvisioningState)
	assert.Equal(t, ProvisioningStatesSucceeded, *created.Properties.ProvisioningState)

	deleter, err := client.BeginDelete(ctx, "rg", "contoso", "TestProfileType", nil)
	require.NoError(t, err)
	_, err = deleter.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)

	var deleteRequest *fake.Request
	for _, req := range srv.Requests() {
		if req.Method == http.MethodDelete {
			deleteRequest = &req
		}
	}
	require.NotNil(t, deleteRequest)
	assert.Equal(t, "en-us", deleteRequest.Query.Get("locale-code"))

	_, ok := srv.Resource(testHubPath + "/profiles/TestProfileType")
	assert.False(t, ok)
}

func TestProfilesResumeCreate(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{
		AsyncPut:        true,
		PutStatus:       http.StatusAccepted,
		PollsBeforeDone: 2,
	})
	client := factory.NewProfilesClient()
	ctx := context.Background()

	poller, err := client.BeginCreateOrUpdate(ctx, "rg", "contoso", "TestProfileType", testProfile(), nil)
	require.NoError(t, err)
	token, err := poller.ResumeToken()
	require.NoError(t, err)

	resumed, err := client.BeginCreateOrUpdate(ctx, "rg", "contoso", "TestProfileType", ProfileResourceFormat{},
		&ProfilesClientBeginCreateOrUpdateOptions{ResumeToken: token})
	require.NoError(t, err)
	assert.Len(t, srv.Requests(), 1)

	created, err := resumed.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)
	assert.Equal(t, "TestProfileType", *created.Properties.TypeName)
}

func TestProfilesGetEnrichingKpis(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewProfilesClient()

	srv.HandleJSON(http.MethodPost, testHubPath+"/profiles/TestProfileType/getEnrichingKpis", http.StatusOK, []map[string]any{
		{"entityType": "Profile", "entityTypeName": "TestProfileType", "kpiName": "revenue", "function": "Sum", "calculationWindow": "Month", "expression": "Amount"},
	})

	resp, err := client.GetEnrichingKpis(context.Background(), "rg", "contoso", "TestProfileType", nil)
	require.NoError(t, err)
	require.Len(t, resp.KpiDefinitionArray, 1)
	kpi := resp.KpiDefinitionArray[0]
	assert.Equal(t, "revenue", *kpi.KpiName)
	assert.Equal(t, KpiFunctionsSum, *kpi.Function)
	assert.Equal(t, CalculationWindowTypesMonth, *kpi.CalculationWindow)
	assert.Empty(t, srv.LastRequest().Body)
}
