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

const (
	// ServiceVersion is the x-ms-version every request is sent with.
	ServiceVersion = "2018-03-28"

	// DefaultScope is the token scope of the storage data plane.
	DefaultScope = "https://storage.azure.com/.default"
)

// GeoReplicationStatus - The status of the secondary location
type GeoReplicationStatus string

const (
	GeoReplicationStatusBootstrap   GeoReplicationStatus = "bootstrap"
	GeoReplicationStatusLive        GeoReplicationStatus = "live"
	GeoReplicationStatusUnavailable GeoReplicationStatus = "unavailable"
)

// PossibleGeoReplicationStatusValues returns the possible values for the GeoReplicationStatus const type.
func PossibleGeoReplicationStatusValues() []GeoReplicationStatus {
	return []GeoReplicationStatus{
		GeoReplicationStatusBootstrap,
		GeoReplicationStatusLive,
		GeoReplicationStatusUnavailable,
	}
}

// ListQueuesIncludeType selects additional data returned by List Queues.
type ListQueuesIncludeType string

const (
	ListQueuesIncludeTypeMetadata ListQueuesIncludeType = "metadata"
)

// PossibleListQueuesIncludeTypeValues returns the possible values for the ListQueuesIncludeType const type.
func PossibleListQueuesIncludeTypeValues() []ListQueuesIncludeType {
	return []ListQueuesIncludeType{
		ListQueuesIncludeTypeMetadata,
	}
}

// StorageErrorCode values the queue service returns in x-ms-error-code.
const (
	StorageErrorCodeMessageNotFound       = "MessageNotFound"
	StorageErrorCodePopReceiptMismatch    = "PopReceiptMismatch"
	StorageErrorCodeQueueAlreadyExists    = "QueueAlreadyExists"
	StorageErrorCodeQueueNotFound         = "QueueNotFound"
	StorageErrorCodeMissingRequiredHeader = "MissingRequiredHeader"
)
