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

// RelationshipLinksClient contains the methods for the RelationshipLinks group.
// Don't use this type directly, use ClientFactory.NewRelationshipLinksClient() instead.
type RelationshipLinksClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a relationship link or updates an existing relationship link in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - relationshipLinkName - The name of the relationship link.
//   - parameters - Parameters supplied to the CreateOrUpdate relationship link operation.
//   - options - RelationshipLinksClientBeginCreateOrUpdateOptions contains the optional parameters for the RelationshipLinksClient.BeginCreateOrUpdate method.
func (client *RelationshipLinksClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, relationshipLinkName string, parameters RelationshipLinkResourceFormat, options *RelationshipLinksClientBeginCreateOrUpdateOptions) (*runtime.Poller[RelationshipLinksClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &RelationshipLinksClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "RelationshipLinksClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/relationshipLinks/{relationshipLinkName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("relationshipLinkName", relationshipLinkName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[RelationshipLinksClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a relationship link in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - relationshipLinkName - The name of the relationship link.
//   - options - RelationshipLinksClientBeginDeleteOptions contains the optional parameters for the RelationshipLinksClient.BeginDelete method.
func (client *RelationshipLinksClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, relationshipLinkName string, options *RelationshipLinksClientBeginDeleteOptions) (*runtime.Poller[RelationshipLinksClientDeleteResponse], error) {
	if options == nil {
		options = &RelationshipLinksClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "RelationshipLinksClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/relationshipLinks/{relationshipLinkName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("relationshipLinkName", relationshipLinkName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[RelationshipLinksClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified relationship link.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - relationshipLinkName - The name of the relationship link.
//   - options - RelationshipLinksClientGetOptions contains the optional parameters for the RelationshipLinksClient.Get method.
func (client *RelationshipLinksClient) Get(ctx context.Context, resourceGroupName string, hubName string, relationshipLinkName string, options *RelationshipLinksClientGetOptions) (RelationshipLinksClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "RelationshipLinksClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/relationshipLinks/{relationshipLinkName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("relationshipLinkName", relationshipLinkName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp RelationshipLinksClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.RelationshipLinkResourceFormat); err != nil {
		return RelationshipLinksClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all relationship links in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - RelationshipLinksClientListByHubOptions contains the optional parameters for the RelationshipLinksClient.NewListByHubPager method.
func (client *RelationshipLinksClient) NewListByHubPager(resourceGroupName string, hubName string, options *RelationshipLinksClientListByHubOptions) *runtime.Pager[RelationshipLinksClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "RelationshipLinksClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/relationshipLinks",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page RelationshipLinksClientListByHubResponse) *string {
		return page.NextLink
	})
}
