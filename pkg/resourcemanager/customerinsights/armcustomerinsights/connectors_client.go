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

// ConnectorsClient contains the methods for the Connectors group.
// Don't use this type directly, use ClientFactory.NewConnectorsClient() instead.
type ConnectorsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a connector or updates an existing connector in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - connectorName - The name of the connector.
//   - parameters - Parameters supplied to the CreateOrUpdate connector operation.
//   - options - ConnectorsClientBeginCreateOrUpdateOptions contains the optional parameters for the ConnectorsClient.BeginCreateOrUpdate method.
func (client *ConnectorsClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, connectorName string, parameters ConnectorResourceFormat, options *ConnectorsClientBeginCreateOrUpdateOptions) (*runtime.Poller[ConnectorsClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &ConnectorsClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "ConnectorsClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/connectors/{connectorName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("connectorName", connectorName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[ConnectorsClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a connector in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - connectorName - The name of the connector.
//   - options - ConnectorsClientBeginDeleteOptions contains the optional parameters for the ConnectorsClient.BeginDelete method.
func (client *ConnectorsClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, connectorName string, options *ConnectorsClientBeginDeleteOptions) (*runtime.Poller[ConnectorsClientDeleteResponse], error) {
	if options == nil {
		options = &ConnectorsClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "ConnectorsClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/connectors/{connectorName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("connectorName", connectorName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent},
	}
	return mgmt.NewPoller[ConnectorsClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified connector.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - connectorName - The name of the connector.
//   - options - ConnectorsClientGetOptions contains the optional parameters for the ConnectorsClient.Get method.
func (client *ConnectorsClient) Get(ctx context.Context, resourceGroupName string, hubName string, connectorName string, options *ConnectorsClientGetOptions) (ConnectorsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "ConnectorsClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/connectors/{connectorName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("connectorName", connectorName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp ConnectorsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.ConnectorResourceFormat); err != nil {
		return ConnectorsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all connectors in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - ConnectorsClientListByHubOptions contains the optional parameters for the ConnectorsClient.NewListByHubPager method.
func (client *ConnectorsClient) NewListByHubPager(resourceGroupName string, hubName string, options *ConnectorsClientListByHubOptions) *runtime.Pager[ConnectorsClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "ConnectorsClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/connectors",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page ConnectorsClientListByHubResponse) *string {
		return page.NextLink
	})
}
