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

import "time"

// ResponseHeaders holds the headers every queue service response carries.
type ResponseHeaders struct {
	// RequestID contains the information returned from the x-ms-request-id header response.
	RequestID *string

	// Version contains the information returned from the x-ms-version header response.
	Version *string

	// Date contains the information returned from the Date header response.
	Date *time.Time
}

// ServiceClientGetPropertiesResponse contains the response from method ServiceClient.GetProperties.
type ServiceClientGetPropertiesResponse struct {
	StorageServiceProperties
	ResponseHeaders
}

// ServiceClientSetPropertiesResponse contains the response from method ServiceClient.SetProperties.
type ServiceClientSetPropertiesResponse struct {
	ResponseHeaders
}

// ServiceClientGetStatisticsResponse contains the response from method ServiceClient.GetStatistics.
type ServiceClientGetStatisticsResponse struct {
	StorageServiceStats
	ResponseHeaders
}

// ServiceClientListQueuesResponse contains the response from method ServiceClient.NewListQueuesPager.
type ServiceClientListQueuesResponse struct {
	ListQueuesSegmentResponse
	ResponseHeaders
}

// QueueClientCreateResponse contains the response from method QueueClient.Create.
type QueueClientCreateResponse struct {
	ResponseHeaders
}

// QueueClientDeleteResponse contains the response from method QueueClient.Delete.
type QueueClientDeleteResponse struct {
	ResponseHeaders
}

// QueueClientGetPropertiesResponse contains the response from method QueueClient.GetProperties.
type QueueClientGetPropertiesResponse struct {
	ResponseHeaders

	// ApproximateMessagesCount contains the information returned from the x-ms-approximate-messages-count header response.
	ApproximateMessagesCount *int32

	// Metadata contains the x-ms-meta-* headers, keyed by lower-cased name.
	Metadata map[string]*string
}

// QueueClientSetMetadataResponse contains the response from method QueueClient.SetMetadata.
type QueueClientSetMetadataResponse struct {
	ResponseHeaders
}

// QueueClientGetAccessPolicyResponse contains the response from method QueueClient.GetAccessPolicy.
type QueueClientGetAccessPolicyResponse struct {
	ResponseHeaders

	// a collection of signed identifiers
	SignedIdentifiers []*SignedIdentifier
}

// QueueClientSetAccessPolicyResponse contains the response from method QueueClient.SetAccessPolicy.
type QueueClientSetAccessPolicyResponse struct {
	ResponseHeaders
}

// MessagesClientEnqueueResponse contains the response from method MessagesClient.Enqueue.
type MessagesClientEnqueueResponse struct {
	ResponseHeaders

	// The object returned when calling Put Message on a Queue
	Messages []*EnqueuedMessage
}

// MessagesClientDequeueResponse contains the response from method MessagesClient.Dequeue.
type MessagesClientDequeueResponse struct {
	ResponseHeaders

	// The object returned when calling Get Messages on a Queue
	Messages []*DequeuedMessageItem
}

// MessagesClientPeekResponse contains the response from method MessagesClient.Peek.
type MessagesClientPeekResponse struct {
	ResponseHeaders

	// The object returned when calling Peek Messages on a Queue
	Messages []*PeekedMessageItem
}

// MessagesClientClearResponse contains the response from method MessagesClient.Clear.
type MessagesClientClearResponse struct {
	ResponseHeaders
}

// MessageIDClientUpdateResponse contains the response from method MessageIDClient.Update.
type MessageIDClientUpdateResponse struct {
	ResponseHeaders

	// PopReceipt contains the information returned from the x-ms-popreceipt header response.
	PopReceipt *string

	// TimeNextVisible contains the information returned from the x-ms-time-next-visible header response.
	TimeNextVisible *time.Time
}

// MessageIDClientDeleteResponse contains the response from method MessageIDClient.Delete.
type MessageIDClientDeleteResponse struct {
	ResponseHeaders
}
