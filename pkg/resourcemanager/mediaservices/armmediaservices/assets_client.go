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

// AssetsClient contains the methods for the Assets group.
// Don't use this type directly, use ClientFactory.NewAssetsClient() instead.
type AssetsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CreateOrUpdate - Creates or updates an Asset in the Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - assetName - The Asset name.
//   - parameters - The request parameters
//   - options - AssetsClientCreateOrUpdateOptions contains the optional parameters for the AssetsClient.CreateOrUpdate method.
func (client *AssetsClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, accountName string, assetName string, parameters Asset, options *AssetsClientCreateOrUpdateOptions) (AssetsClientCreateOrUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "AssetsClient.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/assets/{assetName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("assetName", assetName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusCreated},
	}
	var resp AssetsClientCreateOrUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Asset); err != nil {
		return AssetsClientCreateOrUpdateResponse{}, err
	}
	return resp, nil
}

// Delete - Deletes an Asset in the Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - assetName - The Asset name.
//   - options - AssetsClientDeleteOptions contains the optional parameters for the AssetsClient.Delete method.
func (client *AssetsClient) Delete(ctx context.Context, resourceGroupName string, accountName string, assetName string, options *AssetsClientDeleteOptions) (AssetsClientDeleteResponse, error) {
	op := mgmt.Operation{
		Name:       "AssetsClient.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/assets/{assetName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("assetName", assetName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusNoContent},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return AssetsClientDeleteResponse{}, err
	}
	return AssetsClientDeleteResponse{}, nil
}

// Get - Get the details of an Asset in the Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - assetName - The Asset name.
//   - options - AssetsClientGetOptions contains the optional parameters for the AssetsClient.Get method.
func (client *AssetsClient) Get(ctx context.Context, resourceGroupName string, accountName string, assetName string, options *AssetsClientGetOptions) (AssetsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "AssetsClient.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/assets/{assetName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("assetName", assetName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AssetsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.Asset); err != nil {
		return AssetsClientGetResponse{}, err
	}
	return resp, nil
}

// GetEncryptionKey - Gets the Asset storage encryption keys used to decrypt content created by version 2 of the Media Services API
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - assetName - The Asset name.
//   - options - AssetsClientGetEncryptionKeyOptions contains the optional parameters for the AssetsClient.GetEncryptionKey method.
func (client *AssetsClient) GetEncryptionKey(ctx context.Context, resourceGroupName string, accountName string, assetName string, options *AssetsClientGetEncryptionKeyOptions) (AssetsClientGetEncryptionKeyResponse, error) {
	op := mgmt.Operation{
		Name:       "AssetsClient.GetEncryptionKey",
		Method:     http.MethodPost,
		Path:       accountPath + "/assets/{assetName}/getEncryptionKey",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("assetName", assetName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AssetsClientGetEncryptionKeyResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.StorageEncryptedAssetDecryptionData); err != nil {
		return AssetsClientGetEncryptionKeyResponse{}, err
	}
	return resp, nil
}

// ListContainerSas - Lists storage container URLs with shared access signatures (SAS) for uploading and downloading Asset content. The signatures are derived from the storage account keys.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - assetName - The Asset name.
//   - parameters - The request parameters
//   - options - AssetsClientListContainerSasOptions contains the optional parameters for the AssetsClient.ListContainerSas method.
func (client *AssetsClient) ListContainerSas(ctx context.Context, resourceGroupName string, accountName string, assetName string, parameters ListContainerSasInput, options *AssetsClientListContainerSasOptions) (AssetsClientListContainerSasResponse, error) {
	op := mgmt.Operation{
		Name:       "AssetsClient.ListContainerSas",
		Method:     http.MethodPost,
		Path:       accountPath + "/assets/{assetName}/listContainerSas",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("assetName", assetName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AssetsClientListContainerSasResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.AssetContainerSas); err != nil {
		return AssetsClientListContainerSasResponse{}, err
	}
	return resp, nil
}

// NewListPager - List Assets in the Media Services account with optional filtering and ordering
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - options - AssetsClientListOptions contains the optional parameters for the AssetsClient.NewListPager method.
func (client *AssetsClient) NewListPager(resourceGroupName string, accountName string, options *AssetsClientListOptions) *runtime.Pager[AssetsClientListResponse] {
	if options == nil {
		options = &AssetsClientListOptions{}
	}
	op := mgmt.Operation{
		Name:       "AssetsClient.NewListPager",
		Method:     http.MethodGet,
		Path:       accountPath + "/assets",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Query:      listQuery(options.Filter, options.Top, options.Orderby),
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page AssetsClientListResponse) *string {
		return page.ODataNextLink
	})
}

// ListStreamingLocators - Lists Streaming Locators which are associated with this asset.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - assetName - The Asset name.
//   - options - AssetsClientListStreamingLocatorsOptions contains the optional parameters for the AssetsClient.ListStreamingLocators method.
func (client *AssetsClient) ListStreamingLocators(ctx context.Context, resourceGroupName string, accountName string, assetName string, options *AssetsClientListStreamingLocatorsOptions) (AssetsClientListStreamingLocatorsResponse, error) {
	op := mgmt.Operation{
		Name:       "AssetsClient.ListStreamingLocators",
		Method:     http.MethodPost,
		Path:       accountPath + "/assets/{assetName}/listStreamingLocators",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("assetName", assetName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AssetsClientListStreamingLocatorsResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.ListStreamingLocatorsResponse); err != nil {
		return AssetsClientListStreamingLocatorsResponse{}, err
	}
	return resp, nil
}

// Update - Updates an existing Asset in the Media Services account
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - assetName - The Asset name.
//   - parameters - The request parameters
//   - options - AssetsClientUpdateOptions contains the optional parameters for the AssetsClient.Update method.
func (client *AssetsClient) Update(ctx context.Context, resourceGroupName string, accountName string, assetName string, parameters Asset, options *AssetsClientUpdateOptions) (AssetsClientUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "AssetsClient.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/assets/{assetName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("assetName", assetName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AssetsClientUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Asset); err != nil {
		return AssetsClientUpdateResponse{}, err
	}
	return resp, nil
}
