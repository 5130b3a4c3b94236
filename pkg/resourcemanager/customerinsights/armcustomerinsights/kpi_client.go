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

// KpiClient contains the methods for the Kpi group.
// Don't use this type directly, use ClientFactory.NewKpiClient() instead.
type KpiClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a KPI or updates an existing KPI in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - kpiName - The name of the KPI.
//   - parameters - Parameters supplied to the CreateOrUpdate KPI operation.
//   - options - KpiClientBeginCreateOrUpdateOptions contains the optional parameters for the KpiClient.BeginCreateOrUpdate method.
func (client *KpiClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, kpiName string, parameters KpiResourceFormat, options *KpiClientBeginCreateOrUpdateOptions) (*runtime.Poller[KpiClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &KpiClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "KpiClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/kpi/{kpiName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("kpiName", kpiName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[KpiClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a KPI in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - kpiName - The name of the KPI.
//   - options - KpiClientBeginDeleteOptions contains the optional parameters for the KpiClient.BeginDelete method.
func (client *KpiClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, kpiName string, options *KpiClientBeginDeleteOptions) (*runtime.Poller[KpiClientDeleteResponse], error) {
	if options == nil {
		options = &KpiClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "KpiClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/kpi/{kpiName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("kpiName", kpiName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[KpiClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified KPI.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - kpiName - The name of the KPI.
//   - options - KpiClientGetOptions contains the optional parameters for the KpiClient.Get method.
func (client *KpiClient) Get(ctx context.Context, resourceGroupName string, hubName string, kpiName string, options *KpiClientGetOptions) (KpiClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "KpiClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/kpi/{kpiName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("kpiName", kpiName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp KpiClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.KpiResourceFormat); err != nil {
		return KpiClientGetResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all KPIs in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - KpiClientListByHubOptions contains the optional parameters for the KpiClient.NewListByHubPager method.
func (client *KpiClient) NewListByHubPager(resourceGroupName string, hubName string, options *KpiClientListByHubOptions) *runtime.Pager[KpiClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "KpiClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/kpi",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page KpiClientListByHubResponse) *string {
		return page.NextLink
	})
}

// Reprocess - Reprocesses the Kpi values of the specified KPI.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - kpiName - The name of the KPI.
//   - options - KpiClientReprocessOptions contains the optional parameters for the KpiClient.Reprocess method.
func (client *KpiClient) Reprocess(ctx context.Context, resourceGroupName string, hubName string, kpiName string, options *KpiClientReprocessOptions) (KpiClientReprocessResponse, error) {
	op := mgmt.Operation{
		Name:       "KpiClient.Reprocess",
		Method:     http.MethodPost,
		Path:       hubPath + "/kpi/{kpiName}/reprocess",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("kpiName", kpiName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusAccepted},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return KpiClientReprocessResponse{}, err
	}
	return KpiClientReprocessResponse{}, nil
}
