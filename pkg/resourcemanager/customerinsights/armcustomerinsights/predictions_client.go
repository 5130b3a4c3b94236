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

// PredictionsClient contains the methods for the Predictions group.
// Don't use this type directly, use ClientFactory.NewPredictionsClient() instead.
type PredictionsClient struct {
	internal       *mgmt.Client
	subscriptionID string
}

// BeginCreateOrUpdate - Creates a prediction or updates an existing prediction in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - predictionName - The name of the Prediction.
//   - parameters - Parameters supplied to the CreateOrUpdate prediction operation.
//   - options - PredictionsClientBeginCreateOrUpdateOptions contains the optional parameters for the PredictionsClient.BeginCreateOrUpdate method.
func (client *PredictionsClient) BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, hubName string, predictionName string, parameters PredictionResourceFormat, options *PredictionsClientBeginCreateOrUpdateOptions) (*runtime.Poller[PredictionsClientCreateOrUpdateResponse], error) {
	if options == nil {
		options = &PredictionsClientBeginCreateOrUpdateOptions{}
	}
	op := mgmt.Operation{
		Name:       "PredictionsClient.BeginCreateOrUpdate",
		Method:     http.MethodPut,
		Path:       hubPath + "/predictions/{predictionName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("predictionName", predictionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[PredictionsClientCreateOrUpdateResponse](ctx, client.internal, op, parameters, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// BeginDelete - Deletes a prediction in the hub.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - predictionName - The name of the Prediction.
//   - options - PredictionsClientBeginDeleteOptions contains the optional parameters for the PredictionsClient.BeginDelete method.
func (client *PredictionsClient) BeginDelete(ctx context.Context, resourceGroupName string, hubName string, predictionName string, options *PredictionsClientBeginDeleteOptions) (*runtime.Poller[PredictionsClientDeleteResponse], error) {
	if options == nil {
		options = &PredictionsClientBeginDeleteOptions{}
	}
	op := mgmt.Operation{
		Name:       "PredictionsClient.BeginDelete",
		Method:     http.MethodDelete,
		Path:       hubPath + "/predictions/{predictionName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("predictionName", predictionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK, http.StatusAccepted},
	}
	return mgmt.NewPoller[PredictionsClientDeleteResponse](ctx, client.internal, op, nil, &mgmt.PollerOptions{
		ResumeToken: options.ResumeToken,
	})
}

// Get - Gets information about the specified prediction.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - predictionName - The name of the Prediction.
//   - options - PredictionsClientGetOptions contains the optional parameters for the PredictionsClient.Get method.
func (client *PredictionsClient) Get(ctx context.Context, resourceGroupName string, hubName string, predictionName string, options *PredictionsClientGetOptions) (PredictionsClientGetResponse, error) {
	op := mgmt.Operation{
		Name:       "PredictionsClient.Get",
		Method:     http.MethodGet,
		Path:       hubPath + "/predictions/{predictionName}",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("predictionName", predictionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp PredictionsClientGetResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.PredictionResourceFormat); err != nil {
		return PredictionsClientGetResponse{}, err
	}
	return resp, nil
}

// GetModelStatus - Gets model status of the prediction.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - predictionName - The name of the Prediction.
//   - options - PredictionsClientGetModelStatusOptions contains the optional parameters for the PredictionsClient.GetModelStatus method.
func (client *PredictionsClient) GetModelStatus(ctx context.Context, resourceGroupName string, hubName string, predictionName string, options *PredictionsClientGetModelStatusOptions) (PredictionsClientGetModelStatusResponse, error) {
	op := mgmt.Operation{
		Name:       "PredictionsClient.GetModelStatus",
		Method:     http.MethodPost,
		Path:       hubPath + "/predictions/{predictionName}/getModelStatus",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("predictionName", predictionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp PredictionsClientGetModelStatusResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.PredictionModelStatus); err != nil {
		return PredictionsClientGetModelStatusResponse{}, err
	}
	return resp, nil
}

// GetTrainingResults - Gets training results.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - predictionName - The name of the Prediction.
//   - options - PredictionsClientGetTrainingResultsOptions contains the optional parameters for the PredictionsClient.GetTrainingResults method.
func (client *PredictionsClient) GetTrainingResults(ctx context.Context, resourceGroupName string, hubName string, predictionName string, options *PredictionsClientGetTrainingResultsOptions) (PredictionsClientGetTrainingResultsResponse, error) {
	op := mgmt.Operation{
		Name:       "PredictionsClient.GetTrainingResults",
		Method:     http.MethodPost,
		Path:       hubPath + "/predictions/{predictionName}/getTrainingResults",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("predictionName", predictionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	var resp PredictionsClientGetTrainingResultsResponse
	if _, err := client.internal.Invoke(ctx, op, nil, &resp.PredictionTrainingResults); err != nil {
		return PredictionsClientGetTrainingResultsResponse{}, err
	}
	return resp, nil
}

// NewListByHubPager - Gets all predictions in the specified hub.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - options - PredictionsClientListByHubOptions contains the optional parameters for the PredictionsClient.NewListByHubPager method.
func (client *PredictionsClient) NewListByHubPager(resourceGroupName string, hubName string, options *PredictionsClientListByHubOptions) *runtime.Pager[PredictionsClientListByHubResponse] {
	op := mgmt.Operation{
		Name:       "PredictionsClient.NewListByHubPager",
		Method:     http.MethodGet,
		Path:       hubPath + "/predictions",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	return mgmt.NewPager(client.internal, op, func(page PredictionsClientListByHubResponse) *string {
		return page.NextLink
	})
}

// ModelStatus - Creates or updates the model status of prediction.
// If the operation fails it returns an *azcore.ResponseError type.
//
//   - resourceGroupName - The name of the resource group.
//   - hubName - The name of the hub.
//   - predictionName - The name of the Prediction.
//   - parameters - Parameters supplied to the create/update prediction model status operation.
//   - options - PredictionsClientModelStatusOptions contains the optional parameters for the PredictionsClient.ModelStatus method.
func (client *PredictionsClient) ModelStatus(ctx context.Context, resourceGroupName string, hubName string, predictionName string, parameters PredictionModelStatus, options *PredictionsClientModelStatusOptions) (PredictionsClientModelStatusResponse, error) {
	op := mgmt.Operation{
		Name:       "PredictionsClient.ModelStatus",
		Method:     http.MethodPost,
		Path:       hubPath + "/predictions/{predictionName}/modelStatus",
		Params:     hubParams(client.subscriptionID, resourceGroupName, hubName, mgmt.P("predictionName", predictionName)),
		APIVersion: apiVersion,
		Statuses:   []int{http.StatusOK},
	}
	if _, err := client.internal.Invoke(ctx, op, parameters, nil); err != nil {
		return PredictionsClientModelStatusResponse{}, err
	}
	return PredictionsClientModelStatusResponse{}, nil
}
