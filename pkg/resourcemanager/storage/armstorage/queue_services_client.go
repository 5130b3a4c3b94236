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

package armstorage

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// QueueServicesClient contains the methods for the QueueServices group.
// Don't use this type directly, use ClientFactory.NewQueueServicesClient() instead.
type QueueServicesClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// GetServiceProperties - Gets the properties of a storage account’s Queue service, including properties for Storage Analytics and CORS (Cross-Origin Resource Sharing) rules.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - options - QueueServicesClientGetServicePropertiesOptions contains the optional parameters for the QueueServicesClient.GetServiceProperties method.
func (client *QueueServicesClient) GetServiceProperties(ctx context.Context, resourceGroupName string, accountName string, options *QueueServicesClientGetServicePropertiesOptions) (QueueServicesClientGetServicePropertiesResponse, error) {
	op := mgmt.Operation{
		Name:       "QueueServicesClient.GetServiceProperties",
		Method:     http.MethodGet,
		Path:       queueServicePath,
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp QueueServicesClientGetServicePropertiesResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.QueueServiceProperties); err != nil {
		return QueueServicesClientGetServicePropertiesResponse{}, err
	}
	return resp, nil
}

// NewListPager - List all queue services for the storage account
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - options - QueueServicesClientListOptions contains the optional parameters for the QueueServicesClient.NewListPager method.
func (client *QueueServicesClient) NewListPager(resourceGroupName string, accountName string, options *QueueServicesClientListOptions) *runtime.Pager[QueueServicesClientListResponse] {
	op := mgmt.Operation{
		Name:       "QueueServicesClient.NewListPager",
		Method:     http.MethodGet,
		Path:       accountPath + "/queueServices",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	// Every queue service of the account is returned in one page.
	return mgmt.NewPager(client.internal, op, func(QueueServicesClientListResponse) *string {
		return nil
	})
}

// SetServiceProperties - Sets the properties of a storage account’s Queue service, including properties for Storage Analytics and CORS (Cross-Origin Resource Sharing) rules.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - parameters - The properties of a storage account’s Queue service, only properties for Storage Analytics and CORS (Cross-Origin Resource Sharing) rules can be specified.
//   - options - QueueServicesClientSetServicePropertiesOptions contains the optional parameters for the QueueServicesClient.SetServiceProperties method.
func (client *QueueServicesClient) SetServiceProperties(ctx context.Context, resourceGroupName string, accountName string, parameters QueueServiceProperties, options *QueueServicesClientSetServicePropertiesOptions) (QueueServicesClientSetServicePropertiesResponse, error) {
	op := mgmt.Operation{
		Name:       "QueueServicesClient.SetServiceProperties",
		Method:     http.MethodPut,
		Path:       queueServicePath,
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp QueueServicesClientSetServicePropertiesResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.QueueServiceProperties); err != nil {
		return QueueServicesClientSetServicePropertiesResponse{}, err
	}
	return resp, nil
}
