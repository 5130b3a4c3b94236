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

package armstorage

// CorsRule - Specifies a CORS rule for the Queue service.
type CorsRule struct {
	// REQUIRED; Required if CorsRule element is present. A list of headers allowed to be part of the cross-origin request.
	AllowedHeaders []*string `json:"allowedHeaders,omitempty"`

	// REQUIRED; Required if CorsRule element is present. A list of HTTP methods that are allowed to be executed by the origin.
	AllowedMethods []*CorsRuleAllowedMethodsItem `json:"allowedMethods,omitempty"`

	// REQUIRED; Required if CorsRule element is present. A list of origin domains that will be allowed via CORS, or "*" to allow all domains
	AllowedOrigins []*string `json:"allowedOrigins,omitempty"`

	// REQUIRED; Required if CorsRule element is present. A list of response headers to expose to CORS clients.
	ExposedHeaders []*string `json:"exposedHeaders,omitempty"`

	// REQUIRED; Required if CorsRule element is present. The number of seconds that the client/browser should cache a preflight response.
	MaxAgeInSeconds *int32 `json:"maxAgeInSeconds,omitempty"`
}

// CorsRules - Sets the CORS rules. You can include up to five CorsRule elements in the request.
type CorsRules struct {
	// The List of CORS rules. You can include up to five CorsRule elements in the request.
	CorsRules []*CorsRule `json:"corsRules,omitempty"`
}

// ListQueue
type ListQueue struct {
	// List Queue resource properties.
	QueueProperties *ListQueueProperties `json:"properties,omitempty"`

	// READ-ONLY; Fully qualified resource ID for the resource.
	ID *string `json:"id,omitempty"`

	// READ-ONLY; The name of the resource
	Name *string `json:"name,omitempty"`

	// READ-ONLY; The type of the resource. E.g. "Microsoft.Storage/storageAccounts"
	Type *string `json:"type,omitempty"`
}

type ListQueueProperties struct {
	// A name-value pair that represents queue metadata.
	Metadata map[string]*string `json:"metadata,omitempty"`
}

// ListQueueResource - Response schema. Contains list of queues returned
type ListQueueResource struct {
	// READ-ONLY; Request URL that can be used to list next page of queues
	NextLink *string `json:"nextLink,omitempty"`

	// READ-ONLY; List of queues returned.
	Value []*ListQueue `json:"value,omitempty"`
}

type ListQueueServices struct {
	// READ-ONLY; List of queue services returned.
	Value []*QueueServiceProperties `json:"value,omitempty"`
}

type QueueProperties struct {
	// A name-value pair that represents queue metadata.
	Metadata map[string]*string `json:"metadata,omitempty"`

	// READ-ONLY; Integer indicating an approximate number of messages in the queue. This number is not lower than the actual number
	// of messages in the queue, but could be higher.
	ApproximateMessageCount *int32 `json:"approximateMessageCount,omitempty"`
}

// QueueServiceProperties - The properties of a storage account’s Queue service.
type QueueServiceProperties struct {
	// The properties of a storage account’s Queue service.
	QueueServiceProperties *QueueServicePropertiesProperties `json:"properties,omitempty"`

	// READ-ONLY; Fully qualified resource ID for the resource.
	ID *string `json:"id,omitempty"`

	// READ-ONLY; The name of the resource
	Name *string `json:"name,omitempty"`

	// READ-ONLY; The type of the resource. E.g. "Microsoft.Storage/storageAccounts"
	Type *string `json:"type,omitempty"`
}

// QueueServicePropertiesProperties - The properties of a storage account’s Queue service.
type QueueServicePropertiesProperties struct {
	// Specifies CORS rules for the Queue service. You can include up to five CorsRule elements in the request. If no CorsRule
	// elements are included in the request body, all CORS rules will be deleted, and CORS will be disabled for the Queue service.
	Cors *CorsRules `json:"cors,omitempty"`
}

type StorageQueue struct {
	// Queue resource properties.
	QueueProperties *QueueProperties `json:"properties,omitempty"`

	// READ-ONLY; Fully qualified resource ID for the resource.
	ID *string `json:"id,omitempty"`

	// READ-ONLY; The name of the resource
	Name *string `json:"name,omitempty"`

	// READ-ONLY; The type of the resource. E.g. "Microsoft.Storage/storageAccounts"
	Type *string `json:"type,omitempty"`
}
