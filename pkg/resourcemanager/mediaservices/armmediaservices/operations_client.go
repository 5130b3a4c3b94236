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

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// OperationsClient contains the methods for the Operations group.
// Don't use this type directly, use ClientFactory.NewOperationsClient() instead.
type OperationsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// List - Lists all the Media Services operations.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - options - OperationsClientListOptions contains the optional parameters for the OperationsClient.List method.
func (client *OperationsClient) List(ctx context.Context, options *OperationsClientListOptions) (OperationsClientListResponse, error) {
	op := mgmt.Operation{
		Name:       "OperationsClient.List",
		Method:     http.MethodGet,
		Path:       "/providers/Microsoft.Media/operations",
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp OperationsClientListResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.OperationCollection); err != nil {
		return OperationsClientListResponse{}, err
	}
	return resp, nil
}
