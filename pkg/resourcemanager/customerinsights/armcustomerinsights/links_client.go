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

// LinksClient contains the methods for the Links group.
// Don't use this type directly, use ClientFactory.NewLinksClient() instead.
type LinksClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a link or updates an existing link in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - linkName - The name of the link.
//   - parameters - Parameters supplied to the CreateOrUpdate link operation.
//   - options - LinksClientBeginCreateOrUpdateOptions contains the optional parameters for the LinksClient.BeginCreateOrUpdate method.
func (client *LinksClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, linkName string, parameters LinkResourceFormat, options *LinksClientBeginCreateOrUpdateOptions) (*runtime.Poller[LinksClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &LinksClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "LinksClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/links/{linkName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("linkName", linkName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[LinksClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a link in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - linkName - The name of the link.
//   - options - LinksClientBeginDeleteOptions contains the optional parameters for the LinksClient.BeginDelete method.
func (client *LinksClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, linkName string, options *LinksClientBeginDeleteOptions) (*runtime.Poller[LinksClientDeleteResponse], error) {
	if options == nil {
		options = &LinksClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "LinksClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/links/{linkName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("linkName", linkName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[LinksClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified link.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - linkName - The name of the link.
//   - options - LinksClientGetOptions contains the optional parameters for the LinksClient.Get method.
func (client *LinksClient) Get(ctx context.Context, resourceGroupName string, hubName string, linkName string, options *LinksClientGetOptions) (LinksClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "LinksClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/links/{linkName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("linkName", linkName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp LinksClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.LinkResourceFormat); err != nil {
		return LinksClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all links in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - LinksClientListByHubOptions contains the optional parameters for the LinksClient.NewListByHubPager method.
func (client *LinksClient) NewListByHubPager(resourceGroupName string, hubName string, options *LinksClientListByHubOptions) *runtime.Pager[LinksClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "LinksClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/links",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page LinksClientListByHubResponse) *string {
		return page.NextLink
	})
}
