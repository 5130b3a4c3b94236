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

// RolesClient contains the methods for the Roles group.
// Don't use this type directly, use ClientFactory.NewRolesClient() instead.
type RolesClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// NewListByHubPager - Gets all the roles for the hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - RolesClientListByHubOptions contains the optional parameters for the RolesClient.NewListByHubPager method.
func (client *RolesClient) NewListByHubPager(resourceGroupName string, hubName string, options *RolesClientListByHubOptions) *runtime.Pager[RolesClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "RolesClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/roles",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page RolesClientListByHubResponse) *string {
		return page.NextLink
	})
}
