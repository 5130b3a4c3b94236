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

// HubsClient contains the methods for the Hubs group.
// Don't use this type directly, use ClientFactory.NewHubsClient() instead.
type HubsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CreateOrUpdate - Creates a hub, or updates an existing hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - parameters - Parameters supplied to the CreateOrUpdate Hub operation.
//   - options - HubsClientCreateOrUpdateOptions contains the optional parameters for the HubsClient.CreateOrUpdate method.
func (client *HubsClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, parameters Hub, options *HubsClientCreateOrUpdateOptions) (HubsClientCreateOrUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "HubsClient.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath,
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusCreated},
	}
	var resp HubsClientCreateOrUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Hub); err != nil {
		return HubsClientCreateOrUpdateResponse{}, err
	}
	return resp, nil
}

// BeginDelete - Deletes the specified hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - HubsClientBeginDeleteOptions contains the optional parameters for the HubsClient.BeginDelete method.
func (client *HubsClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, options *HubsClientBeginDeleteOptions) (*runtime.Poller[HubsClientDeleteResponse], error) {
	if options == nil {
		options = &HubsClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "HubsClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath,
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent},
	}
	return mgmt.NewPoller[HubsClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - HubsClientGetOptions contains the optional parameters for the HubsClient.Get method.
func (client *HubsClient) Get(ctx context.Context, resourceGroupName string, hubName string, options *HubsClientGetOptions) (HubsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "HubsClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath,
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp HubsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.Hub); err != nil {
		return HubsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByResourceGroupPager - Gets all the hubs in a resource group.
//
//   - resourceGroupName - The name of the resource group.
//   - options - HubsClientListByResourceGroupOptions contains the optional parameters for the HubsClient.NewListByResourceGroupPager method.
func (client *HubsClient) NewListByResourceGroupPager(resourceGroupName string, options *HubsClientListByResourceGroupOptions) *runtime.Pager[HubsClientListByResourceGroupResponse] {
	op := mgmt.Operation{
		Name:       "HubsClient.NewListByResourceGroupPager",
		Method:     http.MethodGet,
		Path:       resourceGroupPath + "/providers/Microsoft.CustomerInsights/hubs",
		Params:     []mgmt.Param{mgmt.P("subscriptionId", client.subscriptionID), mgmt.P("resourceGroupName", resourceGroupName)},
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page HubsClientListByResourceGroupResponse) *string {
		return page.NextLink
	})
}

// NewListPager - Gets all hubs in the specified subscription.
//
//   - options - HubsClientListOptions contains the optional parameters for the HubsClient.NewListPager method.
func (client *HubsClient) NewListPager(options *HubsClientListOptions) *runtime.Pager[HubsClientListResponse] {
	op := mgmt.Operation{
		Name:       "HubsClient.NewListPager",
		Method:     http.MethodGet,
		Path:       subscriptionPath + "/providers/Microsoft.CustomerInsights/hubs",
		Params:     []mgmt.Param{mgmt.P("subscriptionId", client.subscriptionID)},
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page HubsClientListResponse) *string {
		return page.NextLink
	})
}

// Update - Updates a Hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - parameters - Parameters supplied to the Update Hub operation.
//   - options - HubsClientUpdateOptions contains the optional parameters for the HubsClient.Update method.
func (client *HubsClient) Update(ctx context.Context, resourceGroupName string, hubName string, parameters Hub, options *HubsClientUpdateOptions) (HubsClientUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "HubsClient.Update",
		Method:     http.MethodPatch,
		Path:       hubPath,
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp HubsClientUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Hub); err != nil {
		return HubsClientUpdateResponse{}, err
	}
	return resp, nil
}
