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

// TransformsClient contains the methods for the Transforms group.
// Don't use this type directly, use ClientFactory.NewTransformsClient() instead.
type TransformsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CreateOrUpdate - Creates or updates a new Transform.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - parameters - The request parameters
//   - options - TransformsClientCreateOrUpdateOptions contains the optional parameters for the TransformsClient.CreateOrUpdate method.
func (client *TransformsClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, accountName string, transformName string, parameters Transform, options *TransformsClientCreateOrUpdateOptions) (TransformsClientCreateOrUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "TransformsClient.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       accountPath + "/transforms/{transformName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusCreated},
	}
	var resp TransformsClientCreateOrUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Transform); err != nil {
		return TransformsClientCreateOrUpdateResponse{}, err
	}
	return resp, nil
}

// Delete - Deletes a Transform.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - options - TransformsClientDeleteOptions contains the optional parameters for the TransformsClient.Delete method.
func (client *TransformsClient) Delete(ctx context.Context, resourceGroupName string, accountName string, transformName string, options *TransformsClientDeleteOptions) (TransformsClientDeleteResponse, error) {
	op := mgmt.Operation{
		Name:       "TransformsClient.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/transforms/{transformName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusNoContent},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return TransformsClientDeleteResponse{}, err
	}
	return TransformsClientDeleteResponse{}, nil
}

// Get - Gets a Transform.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - options - TransformsClientGetOptions contains the optional parameters for the TransformsClient.Get method.
func (client *TransformsClient) Get(ctx context.Context, resourceGroupName string, accountName string, transformName string, options *TransformsClientGetOptions) (TransformsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "TransformsClient.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/transforms/{transformName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp TransformsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.Transform); err != nil {
		return TransformsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListPager - Lists the Transforms in the account.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - options - TransformsClientListOptions contains the optional parameters for the TransformsClient.NewListPager method.
func (client *TransformsClient) NewListPager(resourceGroupName string, accountName string, options *TransformsClientListOptions) *runtime.Pager[TransformsClientListResponse] {
	if options == nil {
		options = &TransformsClientListOptions{}
	}
	op := mgmt.Operation{
		Name:       "TransformsClient.NewListPager",
		Method:     http.MethodGet,
		Path:       accountPath + "/transforms",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Query:      listQuery(options.Filter, nil, options.Orderby),
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page TransformsClientListResponse) *string {
		return page.ODataNextLink
	})
}

// Update - Updates a Transform.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - parameters - The request parameters
//   - options - TransformsClientUpdateOptions contains the optional parameters for the TransformsClient.Update method.
func (client *TransformsClient) Update(ctx context.Context, resourceGroupName string, accountName string, transformName string, parameters Transform, options *TransformsClientUpdateOptions) (TransformsClientUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "TransformsClient.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/transforms/{transformName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp TransformsClientUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Transform); err != nil {
		return TransformsClientUpdateResponse{}, err
	}
	return resp, nil
}
