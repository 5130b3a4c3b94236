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

// ConnectorMappingsClient contains the methods for the ConnectorMappings group.
// Don't use this type directly, use ClientFactory.NewConnectorMappingsClient() instead.
type ConnectorMappingsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CreateOrUpdate - Creates a connector mapping or updates an existing connector mapping in the connector.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - connectorName - The name of the connector.
//   - mappingName - The name of the connector mapping.
//   - parameters - Parameters supplied to the CreateOrUpdate Connector Mapping operation.
//   - options - ConnectorMappingsClientCreateOrUpdateOptions contains the optional parameters for the ConnectorMappingsClient.CreateOrUpdate method.
func (client *ConnectorMappingsClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, connectorName string, mappingName string, parameters ConnectorMappingResourceFormat, options *ConnectorMappingsClientCreateOrUpdateOptions) (ConnectorMappingsClientCreateOrUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "ConnectorMappingsClient.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/connectors/{connectorName}/mappings/{mappingName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("connectorName", connectorName), mgmt.P("mappingName", mappingName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusCreated},
	}
	var resp ConnectorMappingsClientCreateOrUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.ConnectorMappingResourceFormat); err != nil {
		return ConnectorMappingsClientCreateOrUpdateResponse{}, err
	}
	return resp, nil
}

// Delete - Deletes a connector mapping in the connector.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - connectorName - The name of the connector.
//   - mappingName - The name of the connector mapping.
//   - options - ConnectorMappingsClientDeleteOptions contains the optional parameters for the ConnectorMappingsClient.Delete method.
func (client *ConnectorMappingsClient) Delete(ctx context.Context, resourceGroupName string, hubName string, connectorName string, mappingName string, options *ConnectorMappingsClientDeleteOptions) (ConnectorMappingsClientDeleteResponse, error) {
	op := mgmt.Operation{
		Name:       "ConnectorMappingsClient.Delete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/connectors/{connectorName}/mappings/{mappingName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("connectorName", connectorName), mgmt.P("mappingName", mappingName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusNoContent},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return ConnectorMappingsClientDeleteResponse{}, err
	}
	return ConnectorMappingsClientDeleteResponse{}, nil
}

// Get - Gets a connector mapping in the connector.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - connectorName - The name of the connector.
//   - mappingName - The name of the connector mapping.
//   - options - ConnectorMappingsClientGetOptions contains the optional parameters for the ConnectorMappingsClient.Get method.
func (client *ConnectorMappingsClient) Get(ctx context.Context, resourceGroupName string, hubName string, connectorName string, mappingName string, options *ConnectorMappingsClientGetOptions) (ConnectorMappingsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "ConnectorMappingsClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/connectors/{connectorName}/mappings/{mappingName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("connectorName", connectorName), mgmt.P("mappingName", mappingName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp ConnectorMappingsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.ConnectorMappingResourceFormat); err != nil {
		return ConnectorMappingsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByConnectorPager - Gets all the connector mappings in the specified connector.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - connectorName - The name of the connector.
//   - options - ConnectorMappingsClientListByConnectorOptions contains the optional parameters for the ConnectorMappingsClient.NewListByConnectorPager method.
func (client *ConnectorMappingsClient) NewListByConnectorPager(resourceGroupName string, hubName string, connectorName string, options *ConnectorMappingsClientListByConnectorOptions) *runtime.Pager[ConnectorMappingsClientListByConnectorResponse] {
	op := mgmt.Operation{
		Name:       "ConnectorMappingsClient.NewListByConnectorPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/connectors/{connectorName}/mappings",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("connectorName", connectorName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page ConnectorMappingsClientListByConnectorResponse) *string {
		return page.NextLink
	})
}
