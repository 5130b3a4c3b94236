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

// AuthorizationPoliciesClient contains the methods for the AuthorizationPolicies group.
// Don't use this type directly, use ClientFactory.NewAuthorizationPoliciesClient() instead.
type AuthorizationPoliciesClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CreateOrUpdate - Creates an authorization policy or updates an existing authorization policy in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - authorizationPolicyName - The name of the policy.
//   - parameters - Parameters supplied to the CreateOrUpdate authorization policy operation.
//   - options - AuthorizationPoliciesClientCreateOrUpdateOptions contains the optional parameters for the AuthorizationPoliciesClient.CreateOrUpdate method.
func (client *AuthorizationPoliciesClient) CreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, authorizationPolicyName string, parameters AuthorizationPolicyResourceFormat, options *AuthorizationPoliciesClientCreateOrUpdateOptions) (AuthorizationPoliciesClientCreateOrUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "AuthorizationPoliciesClient.CreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/authorizationPolicies/{authorizationPolicyName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("authorizationPolicyName", authorizationPolicyName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusCreated},
	}
	var resp AuthorizationPoliciesClientCreateOrUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.AuthorizationPolicyResourceFormat); err != nil {
		return AuthorizationPoliciesClientCreateOrUpdateResponse{}, err
	}
	return resp, nil
}

// Get - Gets information about the specified authorization policy.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - authorizationPolicyName - The name of the policy.
//   - options - AuthorizationPoliciesClientGetOptions contains the optional parameters for the AuthorizationPoliciesClient.Get method.
func (client *AuthorizationPoliciesClient) Get(ctx context.Context, resourceGroupName string, hubName string, authorizationPolicyName string, options *AuthorizationPoliciesClientGetOptions) (AuthorizationPoliciesClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "AuthorizationPoliciesClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/authorizationPolicies/{authorizationPolicyName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("authorizationPolicyName", authorizationPolicyName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AuthorizationPoliciesClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.AuthorizationPolicyResourceFormat); err != nil {
		return AuthorizationPoliciesClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all authorization policys in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - AuthorizationPoliciesClientListByHubOptions contains the optional parameters for the AuthorizationPoliciesClient.NewListByHubPager method.
func (client *AuthorizationPoliciesClient) NewListByHubPager(resourceGroupName string, hubName string, options *AuthorizationPoliciesClientListByHubOptions) *runtime.Pager[AuthorizationPoliciesClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "AuthorizationPoliciesClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/authorizationPolicies",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page AuthorizationPoliciesClientListByHubResponse) *string {
		return page.NextLink
	})
}

// RegeneratePrimaryKey - Regenerates the primary policy key of the specified authorization policy.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - authorizationPolicyName - The name of the policy.
//   - options - AuthorizationPoliciesClientRegeneratePrimaryKeyOptions contains the optional parameters for the AuthorizationPoliciesClient.RegeneratePrimaryKey method.
func (client *AuthorizationPoliciesClient) RegeneratePrimaryKey(ctx context.Context, resourceGroupName string, hubName string, authorizationPolicyName string, options *AuthorizationPoliciesClientRegeneratePrimaryKeyOptions) (AuthorizationPoliciesClientRegeneratePrimaryKeyResponse, error) {
	op := mgmt.Operation{
		Name:       "AuthorizationPoliciesClient.RegeneratePrimaryKey",
		Method:     http.MethodPost,
		Path:       hubPath + "/authorizationPolicies/{authorizationPolicyName}/regeneratePrimaryKey",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("authorizationPolicyName", authorizationPolicyName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AuthorizationPoliciesClientRegeneratePrimaryKeyResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.AuthorizationPolicy); err != nil {
		return AuthorizationPoliciesClientRegeneratePrimaryKeyResponse{}, err
	}
	return resp, nil
}

// RegenerateSecondaryKey - Regenerates the secondary policy key of the specified authorization policy.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - authorizationPolicyName - The name of the policy.
//   - options - AuthorizationPoliciesClientRegenerateSecondaryKeyOptions contains the optional parameters for the AuthorizationPoliciesClient.RegenerateSecondaryKey method.
func (client *AuthorizationPoliciesClient) RegenerateSecondaryKey(ctx context.Context, resourceGroupName string, hubName string, authorizationPolicyName string, options *AuthorizationPoliciesClientRegenerateSecondaryKeyOptions) (AuthorizationPoliciesClientRegenerateSecondaryKeyResponse, error) {
	op := mgmt.Operation{
		Name:       "AuthorizationPoliciesClient.RegenerateSecondaryKey",
		Method:     http.MethodPost,
		Path:       hubPath + "/authorizationPolicies/{authorizationPolicyName}/regenerateSecondaryKey",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("authorizationPolicyName", authorizationPolicyName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp AuthorizationPoliciesClientRegenerateSecondaryKeyResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.AuthorizationPolicy); err != nil {
		return AuthorizationPoliciesClientRegenerateSecondaryKeyResponse{}, err
	}
	return resp, nil
}
