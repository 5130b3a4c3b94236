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

// InteractionsClient contains the methods for the Interactions group.
// Don't use this type directly, use ClientFactory.NewInteractionsClient() instead.
type InteractionsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates an interaction or updates an existing interaction in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - interactionName - The name of the interaction.
//   - parameters - Parameters supplied to the CreateOrUpdate interaction operation.
//   - options - InteractionsClientBeginCreateOrUpdateOptions contains the optional parameters for the InteractionsClient.BeginCreateOrUpdate method.
func (client *InteractionsClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, interactionName string, parameters InteractionResourceFormat, options *InteractionsClientBeginCreateOrUpdateOptions) (*runtime.Poller[InteractionsClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &InteractionsClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "InteractionsClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/interactions/{interactionName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("interactionName", interactionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[InteractionsClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified interaction.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - interactionName - The name of the interaction.
//   - options - InteractionsClientGetOptions contains the optional parameters for the InteractionsClient.Get method.
func (client *InteractionsClient) Get(ctx context.Context, resourceGroupName string, hubName string, interactionName string, options *InteractionsClientGetOptions) (InteractionsClientGetResponse, error) {
	if options == nil {
		options = &InteractionsClientGetOptions{}
	}
	op := mgmt.Operation{
		Name:       "InteractionsClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/interactions/{interactionName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("interactionName", interactionName)),
		APIVersion: apiVersion,
		Query:      localeCodeQuery(options.LocaleCode),
		Statuses:   []int{http.StatusOK},
	}
	var resp InteractionsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.InteractionResourceFormat); err != nil {
		return InteractionsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all interactions in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - InteractionsClientListByHubOptions contains the optional parameters for the InteractionsClient.NewListByHubPager method.
func (client *InteractionsClient) NewListByHubPager(resourceGroupName string, hubName string, options *InteractionsClientListByHubOptions) *runtime.Pager[InteractionsClientListByHubResponse] {
	if options == nil {
		options = &InteractionsClientListByHubOptions{}
	}
	op := mgmt.Operation{
		Name:       "InteractionsClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/interactions",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Query:      localeCodeQuery(options.LocaleCode),
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page InteractionsClientListByHubResponse) *string {
		return page.NextLink
	})
}

// SuggestRelationshipLinks - Suggests relationships to create relationship links.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - interactionName - The name of the interaction.
//   - options - InteractionsClientSuggestRelationshipLinksOptions contains the optional parameters for the InteractionsClient.SuggestRelationshipLinks method.
func (client *InteractionsClient) SuggestRelationshipLinks(ctx context.Context, resourceGroupName string, hubName string, interactionName string, options *InteractionsClientSuggestRelationshipLinksOptions) (InteractionsClientSuggestRelationshipLinksResponse, error) {
	op := mgmt.Operation{
		Name:       "InteractionsClient.SuggestRelationshipLinks",
		Method:     http.MethodPost,
		Path:       hubPath + "/interactions/{interactionName}/suggestRelationshipLinks",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("interactionName", interactionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp InteractionsClientSuggestRelationshipLinksResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.SuggestRelationshipLinksResponse); err != nil {
		return InteractionsClientSuggestRelationshipLinksResponse{}, err
	}
	return resp, nil
}
