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

// QueueClient contains the methods for the Queue group.
// Don't use this type directly, use ClientFactory.NewQueueClient() instead.
type QueueClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// Create - Creates a new queue with the specified queue name, under the specified account.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - queueName - A queue name must be unique within a storage account and must be between 3 and 63 characters. The name must comprise of lowercase alphanumeric and dash(-) characters only, it should begin and end with an alphanumeric character and it cannot have two consecutive dash(-) characters.
//   - queue - Queue properties and metadata to be created with
//   - options - QueueClientCreateOptions contains the optional parameters for the QueueClient.Create method.
func (client *QueueClient) Create(ctx context.Context, resourceGroupName string, accountName string, queueName string, queue StorageQueue, options *QueueClientCreateOptions) (QueueClientCreateResponse, error) {
	op := mgmt.Operation{
		Name:       "QueueClient.Create",
		Method:     http.MethodPut,
		Path:       queueServicePath + "/queues/{queueName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("queueName", queueName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp QueueClientCreateResponse
	if _, err := client.internal.Invoke(ctx, op, queue, &resp.StorageQueue); err != nil {
		return QueueClientCreateResponse{}, err
	}
	return resp, nil
}

// Delete - Deletes the queue with the specified queue name, under the specified account if it exists.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - queueName - A queue name must be unique within a storage account and must be between 3 and 63 characters. The name must comprise of lowercase alphanumeric and dash(-) characters only, it should begin and end with an alphanumeric character and it cannot have two consecutive dash(-) characters.
//   - options - QueueClientDeleteOptions contains the optional parameters for the QueueClient.Delete method.
func (client *QueueClient) Delete(ctx context.Context, resourceGroupName string, accountName string, queueName string, options *QueueClientDeleteOptions) (QueueClientDeleteResponse, error) {
	op := mgmt.Operation{
		Name:       "QueueClient.Delete",
		Method:     http.MethodDelete,
		Path:       queueServicePath + "/queues/{queueName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("queueName", queueName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusNoContent},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return QueueClientDeleteResponse{}, err
	}
	return QueueClientDeleteResponse{}, nil
}

// Get - Gets the queue with the specified queue name, under the specified account if it exists.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - queueName - A queue name must be unique within a storage account and must be between 3 and 63 characters. The name must comprise of lowercase alphanumeric and dash(-) characters only, it should begin and end with an alphanumeric character and it cannot have two consecutive dash(-) characters.
//   - options - QueueClientGetOptions contains the optional parameters for the QueueClient.Get method.
func (client *QueueClient) Get(ctx context.Context, resourceGroupName string, accountName string, queueName string, options *QueueClientGetOptions) (QueueClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "QueueClient.Get",
		Method:     http.MethodGet,
		Path:       queueServicePath + "/queues/{queueName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("queueName", queueName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp QueueClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.StorageQueue); err != nil {
		return QueueClientGetResponse{}, err
	}
	return resp, nil
}

// NewListPager - Gets a list of all the queues under the specified storage account
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - options - QueueClientListOptions contains the optional parameters for the QueueClient.NewListPager method.
func (client *QueueClient) NewListPager(resourceGroupName string, accountName string, options *QueueClientListOptions) *runtime.Pager[QueueClientListResponse] {
	if options == nil {
		options = &QueueClientListOptions{}
	}
	op := mgmt.Operation{
		Name:       "QueueClient.NewListPager",
		Method:     http.MethodGet,
		Path:       queueServicePath + "/queues",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName),
		APIVersion: apiVersion,
		Query:      queueListQuery(options.Maxpagesize, options.Filter),
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page QueueClientListResponse) *string {
		return page.NextLink
	})
}

// Update - Creates a new queue with the specified queue name, under the specified account.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the user's subscription. The name is case insensitive.
//   - accountName - The name of the storage account within the specified resource group. Storage account names must be between 3 and 24 characters in length and use numbers and lower-case letters only.
//   - queueName - A queue name must be unique within a storage account and must be between 3 and 63 characters. The name must comprise of lowercase alphanumeric and dash(-) characters only, it should begin and end with an alphanumeric character and it cannot have two consecutive dash(-) characters.
//   - queue - Queue properties and metadata to be created with
//   - options - QueueClientUpdateOptions contains the optional parameters for the QueueClient.Update method.
func (client *QueueClient) Update(ctx context.Context, resourceGroupName string, accountName string, queueName string, queue StorageQueue, options *QueueClientUpdateOptions) (QueueClientUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "QueueClient.Update",
		Method:     http.MethodPatch,
		Path:       queueServicePath + "/queues/{queueName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("queueName", queueName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp QueueClientUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, queue, &resp.StorageQueue); err != nil {
		return QueueClientUpdateResponse{}, err
	}
	return resp, nil
}
