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

// ViewsClient contains the methods for the Views group.
// Don't use this type directly, use ClientFactory.NewViewsClient() instead.
type ViewsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CreateOrUpdate - Creates a view or updates an existing view in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - viewName - The name of the view.
//   - parameters - Parameters supplied to the CreateOrUpdate View operation.
//   - options - ViewsClientCreateOrUpdateOptions contains the optional parameters for the ViewsClient.CreateOrUpdate method.
func (client *ViewsClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, viewName string, parameters ViewResourceFormat, options *ViewsClientCreateOrUpdateOptions) (ViewsClientCreateOrUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "ViewsClient.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/views/{viewName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("viewName", viewName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp ViewsClientCreateOrUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.ViewResourceFormat); err != nil {
		return ViewsClientCreateOrUpdateResponse{}, err
	}
	return resp, nil
}

// Delete - Deletes a view in the specified hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - viewName - The name of the view.
//   - userID - The user ID. Use * to retrieve hub level views.
//   - options - ViewsClientDeleteOptions contains the optional parameters for the ViewsClient.Delete method.
func (client *ViewsClient) Delete(ctx context.Context, resourceGroupName string, hubName string, viewName string, userID string, options *ViewsClientDeleteOptions) (ViewsClientDeleteResponse, error) {
	op := mgmt.Operation{
		Name:          "ViewsClient.Delete",
		Method:        http.MethodDelete,
		Path:          hubPath + "/views/{viewName}",
		Params:        hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("viewName", viewName)),
		APIVersion:    apiVersion,
		Query:         userIDQuery(userID),
		RequiredQuery: []string{queryUserID},
		Statuses:      []int{http.StatusOK},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return ViewsClientDeleteResponse{}, err
	}
	return ViewsClientDeleteResponse{}, nil
}

// Get - Gets a view in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - viewName - The name of the view.
//   - userID - The user ID. Use * to retrieve hub level views.
//   - options - ViewsClientGetOptions contains the optional parameters for the ViewsClient.Get method.
func (client *ViewsClient) Get(ctx context.Context, resourceGroupName string, hubName string, viewName string, userID string, options *ViewsClientGetOptions) (ViewsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:          "ViewsClient.Get",
		Method:        http.MethodGet,
		Path:          hubPath + "/views/{viewName}",
		Params:        hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("viewName", viewName)),
		APIVersion:    apiVersion,
		Query:         userIDQuery(userID),
		RequiredQuery: []string{queryUserID},
		Statuses:      []int{http.StatusOK},
	}
	var resp ViewsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.ViewResourceFormat); err != nil {
		return ViewsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all available views for given user in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - userID - The user ID. Use * to retrieve hub level views.
//   - options - ViewsClientListByHubOptions contains the optional parameters for the ViewsClient.NewListByHubPager method.
func (client *ViewsClient) NewListByHubPager(resourceGroupName string, hubName string, userID string, options *ViewsClientListByHubOptions) *runtime.Pager[ViewsClientListByHubResponse] {
	op := mgmt.Operation{
		Name:          "ViewsClient.NewListByHubPager",
		Method:        http.MethodGet,
		Path:          hubPath + "/views",
		Params:        hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion:    apiVersion,
		Query:         userIDQuery(userID),
		RequiredQuery: []string{queryUserID},
		Statuses:      []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page ViewsClientListByHubResponse) *string {
		return page.NextLink
	})
}
