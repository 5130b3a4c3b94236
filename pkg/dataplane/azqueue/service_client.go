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

package azqueue

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// ServiceClient contains the methods for the Service group.
// Don't use this type directly, use Client.NewServiceClient() instead.
type ServiceClient struct {
	internal *mgmt.Client
}

// GetProperties - gets the properties of a storage account's Queue service, including properties for Storage Analytics and
// CORS (Cross-Origin Resource Sharing) rules.
// If the operation fails it returns an *azcore.ResponseError type.
//   - options - ServiceClientGetPropertiesOptions contains the optional parameters for the ServiceClient.GetProperties method.
func (client *ServiceClient) GetProperties(ctx context.Context, options *ServiceClientGetPropertiesOptions) (ServiceClientGetPropertiesResponse, error) {
	if options == nil {
		options = &ServiceClientGetPropertiesOptions{}
	}
	op := newOperation("ServiceClient.GetProperties", http.MethodGet, "/", options.Timeout, options.RequestID)
	op.Query.Set(queryRestype, "service")
	op.Query.Set(queryComp, "properties")
	op.Statuses = []int{http.StatusOK}

	var result ServiceClientGetPropertiesResponse
	resp, err := invoke(ctx, client.internal, op, nil, &result.StorageServiceProperties)
	if err != nil {
		return ServiceClientGetPropertiesResponse{}, err
	}
	result.ResponseHeaders = newResponseHeaders(resp)
	return result, nil
}

// SetProperties - Sets properties for a storage account's Queue service endpoint, including properties for Storage Analytics
// and CORS (Cross-Origin Resource Sharing) rules
// If the operation fails it returns an *azcore.ResponseError type.
//   - storageServiceProperties - The StorageService properties.
//   - options - ServiceClientSetPropertiesOptions contains the optional parameters for the ServiceClient.SetProperties method.
func (client *ServiceClient) SetProperties(ctx context.Context, storageServiceProperties StorageServiceProperties, options *ServiceClientSetPropertiesOptions) (ServiceClientSetPropertiesResponse, error) {
	if options == nil {
		options = &ServiceClientSetPropertiesOptions{}
	}
	op := newOperation("ServiceClient.SetProperties", http.MethodPut, "/", options.Timeout, options.RequestID)
	op.Query.Set(queryRestype, "service")
	op.Query.Set(queryComp, "properties")
	op.Statuses = []int{http.StatusAccepted}

	resp, err := invoke(ctx, client.internal, op, storageServiceProperties, nil)
	if err != nil {
		return ServiceClientSetPropertiesResponse{}, err
	}
	return ServiceClientSetPropertiesResponse{ResponseHeaders: newResponseHeaders(resp)}, nil
}

// GetStatistics - Retrieves statistics related to replication for the Queue service. It is only available on the secondary
// location endpoint when read-access geo-redundant replication is enabled for the storage account.
// If the operation fails it returns an *azcore.ResponseError type.
//   - options - ServiceClientGetStatisticsOptions contains the optional parameters for the ServiceClient.GetStatistics method.
func (client *ServiceClient) GetStatistics(ctx context.Context, options *ServiceClientGetStatisticsOptions) (ServiceClientGetStatisticsResponse, error) {
	if options == nil {
		options = &ServiceClientGetStatisticsOptions{}
	}
	op := newOperation("ServiceClient.GetStatistics", http.MethodGet, "/", options.Timeout, options.RequestID)
	op.Query.Set(queryRestype, "service")
	op.Query.Set(queryComp, "stats")
	op.Statuses = []int{http.StatusOK}

	var result ServiceClientGetStatisticsResponse
	resp, err := invoke(ctx, client.internal, op, nil, &result.StorageServiceStats)
	if err != nil {
		return ServiceClientGetStatisticsResponse{}, err
	}
	result.ResponseHeaders = newResponseHeaders(resp)
	return result, nil
}

// NewListQueuesPager - The List Queues Segment operation returns a list of the queues under the specified account
// Each page after the first is requested with the NextMarker of the previous one. The Marker in options only
// positions the first page.
//   - options - ServiceClientListQueuesOptions contains the optional parameters for the ServiceClient.NewListQueuesPager
//     method.
func (client *ServiceClient) NewListQueuesPager(options *ServiceClientListQueuesOptions) *runtime.Pager[ServiceClientListQueuesResponse] {
	if options == nil {
		options = &ServiceClientListQueuesOptions{}
	}
	return runtime.NewPager(runtime.PagingHandler[ServiceClientListQueuesResponse]{
		More: func(page ServiceClientListQueuesResponse) bool {
			return page.NextMarker != nil && len(*page.NextMarker) > 0
		},
		Fetcher: func(ctx context.Context, page *ServiceClientListQueuesResponse) (ServiceClientListQueuesResponse, error) {
			marker := options.Marker
			if page != nil {
				marker = page.NextMarker
			}
			op := client.listQueuesOperation(options, marker)

			var result ServiceClientListQueuesResponse
			resp, err := invoke(ctx, client.internal, op, nil, &result.ListQueuesSegmentResponse)
			if err != nil {
				return ServiceClientListQueuesResponse{}, err
			}
			result.ResponseHeaders = newResponseHeaders(resp)
			return result, nil
		},
		Tracer: client.internal.Tracer(),
	})
}

func (client *ServiceClient) listQueuesOperation(options *ServiceClientListQueuesOptions, marker *string) mgmt.Operation {
	op := newOperation("ServiceClient.NewListQueuesPager", http.MethodGet, "/", options.Timeout, options.RequestID)
	op.Query.Set(queryComp, "list")
	if options.Prefix != nil {
		op.Query.Set("prefix", *options.Prefix)
	}
	if marker != nil {
		op.Query.Set("marker", *marker)
	}
	if options.Maxresults != nil {
		op.Query.Set("maxresults", strconv.FormatInt(int64(*options.Maxresults), 10))
	}
	if len(options.Include) > 0 {
		include := make([]string, len(options.Include))
		for i, value := range options.Include {
			include[i] = string(value)
		}
		op.Query.Set("include", strings.Join(include, ","))
	}
	op.Statuses = []int{http.StatusOK}
	return op
}
