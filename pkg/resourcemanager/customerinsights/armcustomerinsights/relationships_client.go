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

// RelationshipsClient contains the methods for the Relationships group.
// Don't use this type directly, use ClientFactory.NewRelationshipsClient() instead.
type RelationshipsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a relationship or updates an existing relationship in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - relationshipName - The name of the relationship.
//   - parameters - Parameters supplied to the CreateOrUpdate relationship operation.
//   - options - RelationshipsClientBeginCreateOrUpdateOptions contains the optional parameters for the RelationshipsClient.BeginCreateOrUpdate method.
func (client *RelationshipsClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, relationshipName string, parameters RelationshipResourceFormat, options *RelationshipsClientBeginCreateOrUpdateOptions) (*runtime.Poller[RelationshipsClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &RelationshipsClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "RelationshipsClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/relationships/{relationshipName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("relationshipName", relationshipName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[RelationshipsClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a relationship in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - relationshipName - The name of the relationship.
//   - options - RelationshipsClientBeginDeleteOptions contains the optional parameters for the RelationshipsClient.BeginDelete method.
func (client *RelationshipsClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, relationshipName string, options *RelationshipsClientBeginDeleteOptions) (*runtime.Poller[RelationshipsClientDeleteResponse], error) {
	if options == nil {
		options = &RelationshipsClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "RelationshipsClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/relationships/{relationshipName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("relationshipName", relationshipName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[RelationshipsClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified relationship.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - relationshipName - The name of the relationship.
//   - options - RelationshipsClientGetOptions contains the optional parameters for the RelationshipsClient.Get method.
func (client *RelationshipsClient) Get(ctx context.Context, resourceGroupName string, hubName string, relationshipName string, options *RelationshipsClientGetOptions) (RelationshipsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "RelationshipsClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/relationships/{relationshipName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("relationshipName", relationshipName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp RelationshipsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.RelationshipResourceFormat); err != nil {
		return RelationshipsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all relationships in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - RelationshipsClientListByHubOptions contains the optional parameters for the RelationshipsClient.NewListByHubPager method.
func (client *RelationshipsClient) NewListByHubPager(resourceGroupName string, hubName string, options *RelationshipsClientListByHubOptions) *runtime.Pager[RelationshipsClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "RelationshipsClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/relationships",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page RelationshipsClientListByHubResponse) *string {
		return page.NextLink
	})
}
