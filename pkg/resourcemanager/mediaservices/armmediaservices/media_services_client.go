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

package armmediaservices

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// MediaServicesClient contains the methods for the MediaServices group.
// Don't use this type directly, use ClientFactory.NewMediaServicesClient() instead.
type MediaServicesClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CreateOrUpdate - Creates or updates a Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - parameters - The request parameters
//   - options - MediaServicesClientCreateOrUpdateOptions contains the optional parameters for the MediaServicesClient.CreateOrUpdate method.
func (client *MediaServicesClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, accountName string, parameters MediaService, options *MediaServicesClientCreateOrUpdateOptions) (MediaServicesClientCreateOrUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath,
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusCreated},
	}
	var resp MediaServicesClientCreateOrUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.MediaService); err != nil {
		return MediaServicesClientCreateOrUpdateResponse{}, err
	}
	return resp, nil
}

// Delete - Deletes a Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - options - MediaServicesClientDeleteOptions contains the optional parameters for the MediaServicesClient.Delete method.
func (client *MediaServicesClient) Delete(ctx context.Context, resourceGroupName string, accountName string, options *MediaServicesClientDeleteOptions) (MediaServicesClientDeleteResponse, error) {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath,
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusNoContent},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return MediaServicesClientDeleteResponse{}, err
	}
	return MediaServicesClientDeleteResponse{}, nil
}

// Get - Get the details of a Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - options - MediaServicesClientGetOptions contains the optional parameters for the MediaServicesClient.Get method.
func (client *MediaServicesClient) Get(ctx context.Context, resourceGroupName string, accountName string, options *MediaServicesClientGetOptions) (MediaServicesClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.Get",
		Method:     http.MethodGet,
		Path:       accountPath,
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp MediaServicesClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.MediaService); err != nil {
		return MediaServicesClientGetResponse{}, err
	}
	return resp, nil
}

// NewListBySubscriptionPager - List Media Services accounts in the subscription.
//
//   - options - MediaServicesClientListBySubscriptionOptions contains the optional parameters for the MediaServicesClient.NewListBySubscriptionPager method.
func (client *MediaServicesClient) NewListBySubscriptionPager(options *MediaServicesClientListBySubscriptionOptions) *runtime.Pager[MediaServicesClientListBySubscriptionResponse] {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.NewListBySubscriptionPager",
		Method:     http.MethodGet,
		Path:       subscriptionPath + "/providers/Microsoft.Media/mediaservices",
		Params:     []mgmt.Param{mgmt.P("subscriptionId", client.subscriptionID)},
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page MediaServicesClientListBySubscriptionResponse) *string {
		return page.ODataNextLink
	})
}

// ListEdgePolicies - List all the media edge policies associated with the Media Services account.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - parameters - The request parameters
//   - options - MediaServicesClientListEdgePoliciesOptions contains the optional parameters for the MediaServicesClient.ListEdgePolicies method.
func (client *MediaServicesClient) ListEdgePolicies(ctx context.Context, resourceGroupName string, accountName string, parameters ListEdgePoliciesInput, options *MediaServicesClientListEdgePoliciesOptions) (MediaServicesClientListEdgePoliciesResponse, error) {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.ListEdgePolicies",
		Method:     http.MethodPost,
		Path:       accountPath + "/listEdgePolicies",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp MediaServicesClientListEdgePoliciesResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.EdgePolicies); err != nil {
		return MediaServicesClientListEdgePoliciesResponse{}, err
	}
	return resp, nil
}

// NewListPager - List Media Services accounts in the resource group
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - options - MediaServicesClientListOptions contains the optional parameters for the MediaServicesClient.NewListPager method.
func (client *MediaServicesClient) NewListPager(resourceGroupName string, options *MediaServicesClientListOptions) *runtime.Pager[MediaServicesClientListResponse] {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.NewListPager",
		Method:     http.MethodGet,
		Path:       resourceGroupPath + "/providers/Microsoft.Media/mediaservices",
		Params:     []mgmt.Param{mgmt.P("subscriptionId", client.subscriptionID), mgmt.P("resourceGroupName", resourceGroupName)},
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page MediaServicesClientListResponse) *string {
		return page.ODataNextLink
	})
}

// SyncStorageKeys - Synchronizes storage account keys for a storage account associated with the Media Service account.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - parameters - The request parameters
//   - options - MediaServicesClientSyncStorageKeysOptions contains the optional parameters for the MediaServicesClient.SyncStorageKeys method.
func (client *MediaServicesClient) SyncStorageKeys(ctx context.Context, resourceGroupName string, accountName string, parameters SyncStorageKeysInput, options *MediaServicesClientSyncStorageKeysOptions) (MediaServicesClientSyncStorageKeysResponse, error) {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.SyncStorageKeys",
		Method:     http.MethodPost,
		Path:       accountPath + "/syncStorageKeys",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	if _, err := client.internal.Invoke(ctx, op, parameters, nil); err != nil {
		return MediaServicesClientSyncStorageKeysResponse{}, err
	}
	return MediaServicesClientSyncStorageKeysResponse{}, nil
}

// Update - Updates an existing Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - parameters - The request parameters
//   - options - MediaServicesClientUpdateOptions contains the optional parameters for the MediaServicesClient.Update method.
func (client *MediaServicesClient) Update(ctx context.Context, resourceGroupName string, accountName string, parameters MediaServiceUpdate, options *MediaServicesClientUpdateOptions) (MediaServicesClientUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "MediaServicesClient.Update",
		Method:     http.MethodPatch,
		Path:       accountPath,
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp MediaServicesClientUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.MediaService); err != nil {
		return MediaServicesClientUpdateResponse{}, err
	}
	return resp, nil
}
