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

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// QueueClient contains the methods for the Queue group.
// Don't use this type directly, use Client.NewQueueClient() instead.
type QueueClient struct {
	internal *mgmt.Client
}

// Create - creates a new queue under the given account. Creating a queue that already exists with identical metadata
// succeeds with 204 No Content; different metadata fails with QueueAlreadyExists.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - QueueClientCreateOptions contains the optional parameters for the QueueClient.Create method.
func (client *QueueClient) Create(ctx context.Context, queueName string, options *QueueClientCreateOptions) (QueueClientCreateResponse, error) {
	if options == nil {
		options = &QueueClientCreateOptions{}
	}
	op := newOperation("QueueClient.Create", http.MethodPut, "/{queueName}", options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Statuses = []int{http.StatusCreated, http.StatusNoContent}
	setMetadataHeader(op.Header, options.Metadata)

	resp, err := invoke(ctx, client.internal, op, nil, nil)
	if err != nil {
		return QueueClientCreateResponse{}, err
	}
	return QueueClientCreateResponse{ResponseHeaders: newResponseHeaders(resp)}, nil
}

// Delete - operation permanently deletes the specified queue
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - QueueClientDeleteOptions contains the optional parameters for the QueueClient.Delete method.
func (client *QueueClient) Delete(ctx context.Context, queueName string, options *QueueClientDeleteOptions) (QueueClientDeleteResponse, error) {
	if options == nil {
		options = &QueueClientDeleteOptions{}
	}
	op := newOperation("QueueClient.Delete", http.MethodDelete, "/{queueName}", options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Statuses = []int{http.StatusNoContent}

	resp, err := invoke(ctx, client.internal, op, nil, nil)
	if err != nil {
		return QueueClientDeleteResponse{}, err
	}
	return QueueClientDeleteResponse{ResponseHeaders: newResponseHeaders(resp)}, nil
}

// GetProperties - Retrieves user-defined metadata and queue properties on the specified queue. Metadata is associated with
// the queue as name-values pairs.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - QueueClientGetPropertiesOptions contains the optional parameters for the QueueClient.GetProperties method.
func (client *QueueClient) GetProperties(ctx context.Context, queueName string, options *QueueClientGetPropertiesOptions) (QueueClientGetPropertiesResponse, error) {
	if options == nil {
		options = &QueueClientGetPropertiesOptions{}
	}
	op := newOperation("QueueClient.GetProperties", http.MethodGet, "/{queueName}", options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Query.Set(queryComp, "metadata")
	op.Statuses = []int{http.StatusOK}

	resp, err := invoke(ctx, client.internal, op, nil, nil)
	if err != nil {
		return QueueClientGetPropertiesResponse{}, err
	}
	count, err := headerInt32(resp, headerApproximateMessagesCount)
	if err != nil {
		return QueueClientGetPropertiesResponse{}, err
	}
	return QueueClientGetPropertiesResponse{
		ResponseHeaders:          newResponseHeaders(resp),
		ApproximateMessagesCount: count,
		Metadata:                 metadataFromHeader(resp.Header),
	}, nil
}

// SetMetadata - sets user-defined metadata on the specified queue. Metadata is associated with the queue as name-value pairs.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - QueueClientSetMetadataOptions contains the optional parameters for the QueueClient.SetMetadata method.
func (client *QueueClient) SetMetadata(ctx context.Context, queueName string, options *QueueClientSetMetadataOptions) (QueueClientSetMetadataResponse, error) {
	if options == nil {
		options = &QueueClientSetMetadataOptions{}
	}
	op := newOperation("QueueClient.SetMetadata", http.MethodPut, "/{queueName}", options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Query.Set(queryComp, "metadata")
	op.Statuses = []int{http.StatusNoContent}
	setMetadataHeader(op.Header, options.Metadata)

	resp, err := invoke(ctx, client.internal, op, nil, nil)
	if err != nil {
		return QueueClientSetMetadataResponse{}, err
	}
	return QueueClientSetMetadataResponse{ResponseHeaders: newResponseHeaders(resp)}, nil
}

// GetAccessPolicy - returns details about any stored access policies specified on the queue that may be used with Shared
// Access Signatures.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - QueueClientGetAccessPolicyOptions contains the optional parameters for the QueueClient.GetAccessPolicy method.
func (client *QueueClient) GetAccessPolicy(ctx context.Context, queueName string, options *QueueClientGetAccessPolicyOptions) (QueueClientGetAccessPolicyResponse, error) {
	if options == nil {
		options = &QueueClientGetAccessPolicyOptions{}
	}
	op := newOperation("QueueClient.GetAccessPolicy", http.MethodGet, "/{queueName}", options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Query.Set(queryComp, "acl")
	op.Statuses = []int{http.StatusOK}

	var identifiers signedIdentifiers
	resp, err := invoke(ctx, client.internal, op, nil, &identifiers)
	if err != nil {
		return QueueClientGetAccessPolicyResponse{}, err
	}
	return QueueClientGetAccessPolicyResponse{
		ResponseHeaders:   newResponseHeaders(resp),
		SignedIdentifiers: identifiers.Items,
	}, nil
}

// SetAccessPolicy - sets stored access policies for the queue that may be used with Shared Access Signatures
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - QueueClientSetAccessPolicyOptions contains the optional parameters for the QueueClient.SetAccessPolicy method.
func (client *QueueClient) SetAccessPolicy(ctx context.Context, queueName string, options *QueueClientSetAccessPolicyOptions) (QueueClientSetAccessPolicyResponse, error) {
	if options == nil {
		options = &QueueClientSetAccessPolicyOptions{}
	}
	op := newOperation("QueueClient.SetAccessPolicy", http.MethodPut, "/{queueName}", options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Query.Set(queryComp, "acl")
	op.Statuses = []int{http.StatusNoContent}

	resp, err := invoke(ctx, client.internal, op, signedIdentifiers{Items: options.QueueACL}, nil)
	if err != nil {
		return QueueClientSetAccessPolicyResponse{}, err
	}
	return QueueClientSetAccessPolicyResponse{ResponseHeaders: newResponseHeaders(resp)}, nil
}
