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

// WidgetTypesClient contains the methods for the WidgetTypes group.
// Don't use this type directly, use ClientFactory.NewWidgetTypesClient() instead.
type WidgetTypesClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// Get - Gets a widget type in the specified hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - widgetTypeName - The name of the widget type.
//   - options - WidgetTypesClientGetOptions contains the optional parameters for the WidgetTypesClient.Get method.
func (client *WidgetTypesClient) Get(ctx context.Context, resourceGroupName string, hubName string, widgetTypeName string, options *WidgetTypesClientGetOptions) (WidgetTypesClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "WidgetTypesClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/widgetTypes/{widgetTypeName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("widgetTypeName", widgetTypeName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp WidgetTypesClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.WidgetTypeResourceFormat); err != nil {
		return WidgetTypesClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all available widget types in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - WidgetTypesClientListByHubOptions contains the optional parameters for the WidgetTypesClient.NewListByHubPager method.
func (client *WidgetTypesClient) NewListByHubPager(resourceGroupName string, hubName string, options *WidgetTypesClientListByHubOptions) *runtime.Pager[WidgetTypesClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "WidgetTypesClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/widgetTypes",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page WidgetTypesClientListByHubResponse) *string {
		return page.NextLink
	})
}
