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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// JobsClient contains the methods for the Jobs group.
// Don't use this type directly, use ClientFactory.NewJobsClient() instead.
type JobsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// CancelJob - Cancel a Job.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - jobName - The Job name.
//   - options - JobsClientCancelJobOptions contains the optional parameters for the JobsClient.CancelJob method.
func (client *JobsClient) CancelJob(ctx context.Context, resourceGroupName string, accountName string, transformName string, jobName string, options *JobsClientCancelJobOptions) (JobsClientCancelJobResponse, error) {
	op := mgmt.Operation{
		Name:       "JobsClient.CancelJob",
		Method:     http.MethodPost,
		Path:       accountPath + "/transforms/{transformName}/jobs/{jobName}/cancelJob",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName), mgmt.P("jobName", jobName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return JobsClientCancelJobResponse{}, err
	}
	return JobsClientCancelJobResponse{}, nil
}

// Create - Creates a Job.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - jobName - The Job name.
//   - parameters - The request parameters
//   - options - JobsClientCreateOptions contains the optional parameters for the JobsClient.Create method.
func (client *JobsClient) Create(ctx context.Context, resourceGroupName string, accountName string, transformName string, jobName string, parameters Job, options *JobsClientCreateOptions) (JobsClientCreateResponse, error) {
	op := mgmt.Operation{
		Name:       "JobsClient.Create",
		Method:     http.MethodPut,
		Path:       accountPath + "/transforms/{transformName}/jobs/{jobName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName), mgmt.P("jobName", jobName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusCreated},
	}
	var resp JobsClientCreateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Job); err != nil {
		return JobsClientCreateResponse{}, err
	}
	return resp, nil
}

// Delete - Deletes a Job.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - jobName - The Job name.
//   - options - JobsClientDeleteOptions contains the optional parameters for the JobsClient.Delete method.
func (client *JobsClient) Delete(ctx context.Context, resourceGroupName string, accountName string, transformName string, jobName string, options *JobsClientDeleteOptions) (JobsClientDeleteResponse, error) {
	op := mgmt.Operation{
		Name:       "JobsClient.Delete",
		Method:     http.MethodDelete,
		Path:       accountPath + "/transforms/{transformName}/jobs/{jobName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName), mgmt.P("jobName", jobName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusNoContent},
	}
	if _, err := client.internal.Invoke(ctx, op, nil, nil); err != nil {
		return JobsClientDeleteResponse{}, err
	}
	return JobsClientDeleteResponse{}, nil
}

// Get - Gets a Job.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - jobName - The Job name.
//   - options - JobsClientGetOptions contains the optional parameters for the JobsClient.Get method.
func (client *JobsClient) Get(ctx context.Context, resourceGroupName string, accountName string, transformName string, jobName string, options *JobsClientGetOptions) (JobsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "JobsClient.Get",
		Method:     http.MethodGet,
		Path:       accountPath + "/transforms/{transformName}/jobs/{jobName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName), mgmt.P("jobName", jobName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp JobsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.Job); err != nil {
		return JobsClientGetResponse{}, err
	}
	return resp, nil
}

// NewListPager - Lists all of the Jobs for the Transform.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - options - JobsClientListOptions contains the optional parameters for the JobsClient.NewListPager method.
func (client *JobsClient) NewListPager(resourceGroupName string, accountName string, transformName string, options *JobsClientListOptions) *runtime.Pager[JobsClientListResponse] {
	if options == nil {
		options = &JobsClientListOptions{}
	}
	op := mgmt.Operation{
		Name:       "JobsClient.NewListPager",
		Method:     http.MethodGet,
		Path:       accountPath + "/transforms/{transformName}/jobs",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName)),
		APIVersion: apiVersion,
		Query:      listQuery(options.Filter, nil, options.Orderby),
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page JobsClientListResponse) *string {
		return page.ODataNextLink
	})
}

// Update - Update is only supported for description and priority. Updating Priority will take effect when the Job state is Queued or Scheduled and depending on the timing the priority update may be ignored.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group within the Azure subscription.
//   - accountName - The Media Services account name.
//   - transformName - The Transform name.
//   - jobName - The Job name.
//   - parameters - The request parameters
//   - options - JobsClientUpdateOptions contains the optional parameters for the JobsClient.Update method.
func (client *JobsClient) Update(ctx context.Context, resourceGroupName string, accountName string, transformName string, jobName string, parameters Job, options *JobsClientUpdateOptions) (JobsClientUpdateResponse, error) {
	op := mgmt.Operation{
		Name:       "JobsClient.Update",
		Method:     http.MethodPatch,
		Path:       accountPath + "/transforms/{transformName}/jobs/{jobName}",
		Params:     accountParams(client.subscriptionID, resourceGroupName, accountName, mgmt.P("transformName", transformName), mgmt.P("jobName", jobName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp JobsClientUpdateResponse
	if _, err := client.internal.Invoke(ctx, op, parameters, &resp.Job); err != nil {
		return JobsClientUpdateResponse{}, err
	}
	return resp, nil
}
