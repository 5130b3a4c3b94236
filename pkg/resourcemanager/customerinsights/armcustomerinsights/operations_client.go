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
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// OperationsClient contains the methods for the Operations group.
// Don't use this type directly, use ClientFactory.NewOperationsClient() instead.
type OperationsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// NewListPager - Lists all of the available Customer Insights REST API operations.
//
//   - options - OperationsClientListOptions contains the optional parameters for the OperationsClient.NewListPager method.
func (client *OperationsClient) NewListPager(options *OperationsClientListOptions) *runtime.Pager[OperationsClientListResponse] {
	op := mgmt.Operation{
		Name:       "OperationsClient.NewListPager",
		Method:     http.MethodGet,
		Path:       "/providers/Microsoft.CustomerInsights/operations",
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page OperationsClientListResponse) *string {
		return page.NextLink
	})
}
