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

// RoleAssignmentsClient contains the methods for the RoleAssignments group.
// Don't use this type directly, use ClientFactory.NewRoleAssignmentsClient() instead.
type RoleAssignmentsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a role assignment or updates an existing role assignment in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - assignmentName - The assignment name
//   - parameters - Parameters supplied to the CreateOrUpdate role assignment operation.
//   - options - RoleAssignmentsClientBeginCreateOrUpdateOptions contains the optional parameters for the RoleAssignmentsClient.BeginCreateOrUpdate method.
func (client *RoleAssignmentsClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, assignmentName string, parameters RoleAssignmentResourceFormat, options *RoleAssignmentsClientBeginCreateOrUpdateOptions) (*runtime.Poller[RoleAssignmentsClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &RoleAssignmentsClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "RoleAssignmentsClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/roleAssignments/{assignmentName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("assignmentName", assignmentName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[RoleAssignmentsClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a role assignment in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - assignmentName - The assignment name
//   - options - RoleAssignmentsClientBeginDeleteOptions contains the optional parameters for the RoleAssignmentsClient.BeginDelete method.
func (client *RoleAssignmentsClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, assignmentName string, options *RoleAssignmentsClientBeginDeleteOptions) (*runtime.Poller[RoleAssignmentsClientDeleteResponse], error) {
	if options == nil {
		options = &RoleAssignmentsClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "RoleAssignmentsClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/roleAssignments/{assignmentName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("assignmentName", assignmentName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent},
	}
	return mgmt.NewPoller[RoleAssignmentsClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified role assignment.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - assignmentName - The assignment name
//   - options - RoleAssignmentsClientGetOptions contains the optional parameters for the RoleAssignmentsClient.Get method.
func (client *RoleAssignmentsClient) Get(ctx context.Context, resourceGroupName string, hubName string, assignmentName string, options *RoleAssignmentsClientGetOptions) (RoleAssignmentsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "RoleAssignmentsClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/roleAssignments/{assignmentName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("assignmentName", assignmentName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp RoleAssignmentsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.RoleAssignmentResourceFormat); err != nil {
		return RoleAssignmentsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all role assignments in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - RoleAssignmentsClientListByHubOptions contains the optional parameters for the RoleAssignmentsClient.NewListByHubPager method.
func (client *RoleAssignmentsClient) NewListByHubPager(resourceGroupName string, hubName string, options *RoleAssignmentsClientListByHubOptions) *runtime.Pager[RoleAssignmentsClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "RoleAssignmentsClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/roleAssignments",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page RoleAssignmentsClientListByHubResponse) *string {
		return page.NextLink
	})
}
