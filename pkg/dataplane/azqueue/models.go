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
	"encoding/xml"
	"time"
)

// AccessPolicy - An Access policy
type AccessPolicy struct {
	// the date-time the policy expires
	Expiry *time.Time `xml:"Expiry"`

	// the permissions for the acl policy
	Permission *string `xml:"Permission"`

	// the date-time the policy is active
	Start *time.Time `xml:"Start"`
}

// CorsRule - CORS is an HTTP feature that enables a web application running under one domain to access resources in another
// domain. Web browsers implement a security restriction known as same-origin policy that
// prevents a web page from calling APIs in a different domain; CORS provides a secure way to allow one domain (the origin
// domain) to call APIs in another domain
type CorsRule struct {
	// REQUIRED; the request headers that the origin domain may specify on the CORS request.
	AllowedHeaders *string `xml:"AllowedHeaders"`

	// REQUIRED; The methods (HTTP request verbs) that the origin domain may use for a CORS request. (comma separated)
	AllowedMethods *string `xml:"AllowedMethods"`

	// REQUIRED; The origin domains that are permitted to make a request against the storage service via CORS. The origin domain
	// is the domain from which the request originates.
	AllowedOrigins *string `xml:"AllowedOrigins"`

	// REQUIRED; The response headers that may be sent in the response to the CORS request and exposed by the browser to the
	// request issuer
	ExposedHeaders *string `xml:"ExposedHeaders"`

	// REQUIRED; The maximum amount time that a browser should cache the preflight OPTIONS request.
	MaxAgeInSeconds *int32 `xml:"MaxAgeInSeconds"`
}

// DequeuedMessageItem - The object returned in the QueueMessageList array when calling Get Messages on a Queue.
type DequeuedMessageItem struct {
	// REQUIRED; The number of times the message has been dequeued.
	DequeueCount *int64 `xml:"DequeueCount"`

	// REQUIRED; The time that the Message will expire and be automatically deleted.
	ExpirationTime *time.Time `xml:"ExpirationTime"`

	// REQUIRED; The time the Message was inserted into the Queue.
	InsertionTime *time.Time `xml:"InsertionTime"`

	// REQUIRED; The Id of the Message.
	MessageID *string `xml:"MessageId"`

	// REQUIRED; The content of the Message.
	MessageText *string `xml:"MessageText"`

	// REQUIRED; This value is required to delete the Message. If deletion fails using this popreceipt then the message has been
	// dequeued by another client.
	PopReceipt *string `xml:"PopReceipt"`

	// REQUIRED; The time that the message will again become visible in the Queue.
	TimeNextVisible *time.Time `xml:"TimeNextVisible"`
}

// EnqueuedMessage - The object returned in the QueueMessageList array when calling Put Message on a Queue
type EnqueuedMessage struct {
	// REQUIRED; The time that the Message will expire and be automatically deleted.
	ExpirationTime *time.Time `xml:"ExpirationTime"`

	// REQUIRED; The time the Message was inserted into the Queue.
	InsertionTime *time.Time `xml:"InsertionTime"`

	// REQUIRED; The Id of the Message.
	MessageID *string `xml:"MessageId"`

	// REQUIRED; This value is required to delete the Message. If deletion fails using this popreceipt then the message has been
	// dequeued by another client.
	PopReceipt *string `xml:"PopReceipt"`

	// REQUIRED; The time that the message will again become visible in the Queue.
	TimeNextVisible *time.Time `xml:"TimeNextVisible"`
}

// GeoReplication - Geo-Replication information for the Secondary Storage Service
type GeoReplication struct {
	// REQUIRED; A GMT date/time value, to the second. All primary writes preceding this value are guaranteed to be available
	// for read operations at the secondary. Primary writes after this point in time may or may
	// not be available for reads.
	LastSyncTime *time.Time `xml:"LastSyncTime"`

	// REQUIRED; The status of the secondary location
	Status *GeoReplicationStatus `xml:"Status"`
}

// ListQueuesSegmentResponse - The object returned when calling List Queues on a Queue Service.
type ListQueuesSegmentResponse struct {
	// REQUIRED
	MaxResults *int32 `xml:"MaxResults"`

	// REQUIRED
	NextMarker *string `xml:"NextMarker"`

	// REQUIRED
	Prefix *string `xml:"Prefix"`

	// REQUIRED
	ServiceEndpoint *string      `xml:"ServiceEndpoint,attr"`
	Marker          *string      `xml:"Marker"`
	QueueItems      []*QueueItem `xml:"Queues>Queue"`
}

// Logging - Azure Analytics Logging settings.
type Logging struct {
	// REQUIRED; Indicates whether all delete requests should be logged.
	Delete *bool `xml:"Delete"`

	// REQUIRED; Indicates whether all read requests should be logged.
	Read *bool `xml:"Read"`

	// REQUIRED; the retention policy
	RetentionPolicy *RetentionPolicy `xml:"RetentionPolicy"`

	// REQUIRED; The version of Storage Analytics to configure.
	Version *string `xml:"Version"`

	// REQUIRED; Indicates whether all write requests should be logged.
	Write *bool `xml:"Write"`
}

type Metrics struct {
	// REQUIRED; Indicates whether metrics are enabled for the Queue service.
	Enabled *bool `xml:"Enabled"`

	// Indicates whether metrics should generate summary statistics for called API operations.
	IncludeAPIs *bool `xml:"IncludeAPIs"`

	// the retention policy
	RetentionPolicy *RetentionPolicy `xml:"RetentionPolicy"`

	// The version of Storage Analytics to configure.
	Version *string `xml:"Version"`
}

// PeekedMessageItem - The object returned in the QueueMessageList array when calling Peek Messages on a Queue
type PeekedMessageItem struct {
	// REQUIRED; The number of times the message has been dequeued.
	DequeueCount *int64 `xml:"DequeueCount"`

	// REQUIRED; The time that the Message will expire and be automatically deleted.
	ExpirationTime *time.Time `xml:"ExpirationTime"`

	// REQUIRED; The time the Message was inserted into the Queue.
	InsertionTime *time.Time `xml:"InsertionTime"`

	// REQUIRED; The Id of the Message.
	MessageID *string `xml:"MessageId"`

	// REQUIRED; The content of the Message.
	MessageText *string `xml:"MessageText"`
}

// QueueItem - An Azure Storage Queue.
type QueueItem struct {
	// REQUIRED; The name of the Queue.
	Name *string `xml:"Name"`

	// Dictionary of
	Metadata map[string]*string `xml:"Metadata"`
}

// QueueMessage - A Message object which can be stored in a Queue
type QueueMessage struct {
	// REQUIRED; The content of the message
	MessageText *string `xml:"MessageText"`
}

// RetentionPolicy - the retention policy
type RetentionPolicy struct {
	// REQUIRED; Indicates whether a retention policy is enabled for the storage service
	Enabled *bool `xml:"Enabled"`

	// Indicates the number of days that metrics or logging or soft-deleted data should be retained. All data older than this
	// value will be deleted
	Days *int32 `xml:"Days"`
}

// SignedIdentifier - signed identifier
type SignedIdentifier struct {
	// REQUIRED; The access policy
	AccessPolicy *AccessPolicy `xml:"AccessPolicy"`

	// REQUIRED; a unique id
	ID *string `xml:"Id"`
}

// StorageError is the body of a failed data-plane response.
type StorageError struct {
	XMLName xml.Name `xml:"Error"`
	Code    *string  `xml:"Code"`
	Message *string  `xml:"Message"`
}

// StorageServiceProperties - Storage Service Properties.
type StorageServiceProperties struct {
	// The set of CORS rules.
	Cors []*CorsRule `xml:"Cors>CorsRule"`

	// A summary of request statistics grouped by API in hourly aggregates for queues
	HourMetrics *Metrics `xml:"HourMetrics"`

	// Azure Analytics Logging settings
	Logging *Logging `xml:"Logging"`

	// a summary of request statistics grouped by API in minute aggregates for queues
	MinuteMetrics *Metrics `xml:"MinuteMetrics"`
}

// StorageServiceStats - Stats for the storage service.
type StorageServiceStats struct {
	// Geo-Replication information for the Secondary Storage Service
	GeoReplication *GeoReplication `xml:"GeoReplication"`
}
