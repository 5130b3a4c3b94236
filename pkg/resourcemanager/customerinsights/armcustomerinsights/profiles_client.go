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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// ProfilesClient contains the methods for the Profiles group.
// Don't use this type directly, use ClientFactory.NewProfilesClient() instead.
type ProfilesClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a profile or updates an existing profile in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - profileName - The name of the profile.
//   - parameters - Parameters supplied to the CreateOrUpdate profile operation.
//   - options - ProfilesClientBeginCreateOrUpdateOptions contains the optional parameters for the ProfilesClient.BeginCreateOrUpdate method.
func (client *ProfilesClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, profileName string, parameters ProfileResourceFormat, options *ProfilesClientBeginCreateOrUpdateOptions) (*runtime.Poller[ProfilesClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &ProfilesClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "ProfilesClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/profiles/{profileName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("profileName", profileName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[ProfilesClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a profile in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - profileName - The name of the profile.
//   - options - ProfilesClientBeginDeleteOptions contains the optional parameters for the ProfilesClient.BeginDelete method.
func (client *ProfilesClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, profileName string, options *ProfilesClientBeginDeleteOptions) (*runtime.Poller[ProfilesClientDeleteResponse], error) {
	if options == nil {
		options = &ProfilesClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "ProfilesClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/profiles/{profileName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("profileName", profileName)),
		APIVersion: apiVersion,
		Query:      localeCodeQuery(options.LocaleCode),
		Statuses:   []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent},
	}
	return mgmt.NewPoller[ProfilesClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified profile.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - profileName - The name of the profile.
//   - options - ProfilesClientGetOptions contains the optional parameters for the ProfilesClient.Get method.
func (client *ProfilesClient) Get(ctx context.Context, resourceGroupName string, hubName string, profileName string, options *ProfilesClientGetOptions) (ProfilesClientGetResponse, error) {
	if options == nil {
		options = &ProfilesClientGetOptions{}
	}
	op := mgmt.Operation{
		Name:       "ProfilesClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/profiles/{profileName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("profileName", profileName)),
		APIVersion: apiVersion,
		Query:      localeCodeQuery(options.LocaleCode),
		Statuses:   []int{http.StatusOK},
	}
	var resp ProfilesClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.ProfileResourceFormat); err != nil {
		return ProfilesClientGetResponse{}, err
	}
	return resp, nil
}

// GetEnrichingKpis - Gets the KPIs that enrich the profile Type identified by the supplied name. Enrichment happens through participants of the Interaction on an Interaction KPI and through Relationships for Profile KPIs.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - profileName - The name of the profile.
//   - options - ProfilesClientGetEnrichingKpisOptions contains the optional parameters for the ProfilesClient.GetEnrichingKpis method.
func (client *ProfilesClient) GetEnrichingKpis(ctx context.Context, resourceGroupName string, hubName string, profileName string, options *ProfilesClientGetEnrichingKpisOptions) (ProfilesClientGetEnrichingKpisResponse, error) {
	op := mgmt.Operation{
		Name:       "ProfilesClient.GetEnrichingKpis",
		Method:     http.MethodPost,
		Path:       hubPath + "/profiles/{profileName}/getEnrichingKpis",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("profileName", profileName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp ProfilesClientGetEnrichingKpisResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.KpiDefinitionArray); err != nil {
		return ProfilesClientGetEnrichingKpisResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all profiles in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - ProfilesClientListByHubOptions contains the optional parameters for the ProfilesClient.NewListByHubPager method.
func (client *ProfilesClient) NewListByHubPager(resourceGroupName string, hubName string, options *ProfilesClientListByHubOptions) *runtime.Pager[ProfilesClientListByHubResponse] {
	if options == nil {
		options = &ProfilesClientListByHubOptions{}
	}
	op := mgmt.Operation{
		Name:       "ProfilesClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/profiles",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Query:      localeCodeQuery(options.LocaleCode),
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page ProfilesClientListByHubResponse) *string {
		return page.NextLink
	})
}
