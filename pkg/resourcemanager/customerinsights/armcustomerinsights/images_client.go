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

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// ImagesClient contains the methods for the Images group.
// Don't use this type directly, use ClientFactory.NewImagesClient() instead.
type ImagesClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// GetUploadURLForData - Gets data image upload URL.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - parameters - Parameters supplied to the GetUploadUrlForData operation.
//   - options - ImagesClientGetUploadURLForDataOptions contains the optional parameters for the ImagesClient.GetUploadURLForData method.
func (client *ImagesClient) GetUploadURLForData(ctx context.Context, resourceGroupName string, hubName string, parameters GetImageUploadURLInput, options *ImagesClientGetUploadURLForDataOptions) (ImagesClientGetUploadURLForDataResponse, error) {
	op := mgmt.Operation{
		Name:       "ImagesClient.GetUploadURLForData",
		Method:     http.MethodPost,
		Path:       hubPath + "/images/getDataImageUploadUrl",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp ImagesClientGetUploadURLForDataResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.ImageDefinition); err != nil {
		return ImagesClientGetUploadURLForDataResponse{}, err
	}
	return resp, nil
}

// GetUploadURLForEntityType - Gets entity type (profile or interaction) image upload URL.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - parameters - Parameters supplied to the GetUploadUrlForEntityType operation.
//   - options - ImagesClientGetUploadURLForEntityTypeOptions contains the optional parameters for the ImagesClient.GetUploadURLForEntityType method.
func (client *ImagesClient) GetUploadURLForEntityType(ctx context.Context, resourceGroupName string, hubName string, parameters GetImageUploadURLInput, options *ImagesClientGetUploadURLForEntityTypeOptions) (ImagesClientGetUploadURLForEntityTypeResponse, error) {
	op := mgmt.Operation{
		Name:       "ImagesClient.GetUploadURLForEntityType",
		Method:     http.MethodPost,
		Path:       hubPath + "/images/getEntityTypeImageUploadUrl",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp ImagesClientGetUploadURLForEntityTypeResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.ImageDefinition); err != nil {
		return ImagesClientGetUploadURLForEntityTypeResponse{}, err
	}
	return resp, nil
}
