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

// ServiceClientGetPropertiesOptions contains the optional parameters for the ServiceClient.GetProperties method.
type ServiceClientGetPropertiesOptions struct {
	// Provides a client-generated, opaque value with a 1 KB character limit that is recorded in the analytics logs when storage
	// analytics logging is enabled.
	RequestID *string

	// The timeout parameter is expressed in seconds.
	Timeout *int32
}

// ServiceClientSetPropertiesOptions contains the optional parameters for the ServiceClient.SetProperties method.
type ServiceClientSetPropertiesOptions struct {
	RequestID *string
	Timeout   *int32
}

// ServiceClientGetStatisticsOptions contains the optional parameters for the ServiceClient.GetStatistics method.
type ServiceClientGetStatisticsOptions struct {
	RequestID *string
	Timeout   *int32
}

// ServiceClientListQueuesOptions contains the optional parameters for the ServiceClient.NewListQueuesPager
// method.
type ServiceClientListQueuesOptions struct {
	// Include this parameter to specify that the queues's metadata be returned as part of the response body.
	Include []ListQueuesIncludeType

	// A string value that identifies the portion of the list of queues to be returned with the next listing operation. The operation
	// returns the NextMarker value within the response body if the listing
	// operation did not return all queues remaining to be listed with the current page. The NextMarker value can be used as the
	// value for the marker parameter in a subsequent call to request the next page
	// of list items. The marker value is opaque to the client.
	Marker *string

	// Specifies the maximum number of queues to return. If the request does not specify maxresults, or specifies a value greater
	// than 5000, the server will return up to 5000 items.
	Maxresults *int32

	// Filters the results to return only queues whose name begins with the specified prefix.
	Prefix *string

	RequestID *string
	Timeout   *int32
}

// QueueClientCreateOptions contains the optional parameters for the QueueClient.Create method.
type QueueClientCreateOptions struct {
	// Optional. Include this parameter to specify that the queue's metadata be returned as part of the response body. Note that
	// metadata requested with this parameter must be stored in accordance with the
	// naming restrictions imposed by the 2009-09-19 version of the Queue service. Beginning with this version, all metadata names
	// must adhere to the naming conventions for C# identifiers.
	Metadata map[string]*string

	RequestID *string
	Timeout   *int32
}

// QueueClientDeleteOptions contains the optional parameters for the QueueClient.Delete method.
type QueueClientDeleteOptions struct {
	RequestID *string
	Timeout   *int32
}

// QueueClientGetPropertiesOptions contains the optional parameters for the QueueClient.GetProperties method.
type QueueClientGetPropertiesOptions struct {
	RequestID *string
	Timeout   *int32
}

// QueueClientSetMetadataOptions contains the optional parameters for the QueueClient.SetMetadata method.
type QueueClientSetMetadataOptions struct {
	// Metadata replaces every name-value pair previously set on the queue. A nil map clears it.
	Metadata map[string]*string

	RequestID *string
	Timeout   *int32
}

// QueueClientGetAccessPolicyOptions contains the optional parameters for the QueueClient.GetAccessPolicy method.
type QueueClientGetAccessPolicyOptions struct {
	RequestID *string
	Timeout   *int32
}

// QueueClientSetAccessPolicyOptions contains the optional parameters for the QueueClient.SetAccessPolicy method.
type QueueClientSetAccessPolicyOptions struct {
	// the acls for the queue
	QueueACL []*SignedIdentifier

	RequestID *string
	Timeout   *int32
}

// MessagesClientEnqueueOptions contains the optional parameters for the MessagesClient.Enqueue method.
type MessagesClientEnqueueOptions struct {
	// Optional. Specifies the time-to-live interval for the message, in seconds. Prior to version 2017-07-29, the maximum time-to-live
	// allowed is 7 days. For version 2017-07-29 or later, the maximum
	// time-to-live can be any positive number, as well as -1 indicating that the message does not expire. If this parameter is
	// omitted, the default time-to-live is 7 days.
	MessageTimeToLive *int32

	// Optional. If specified, the request must be made using an x-ms-version of 2011-08-18 or later. If not specified, the default
	// value is 0. Specifies the new visibility timeout value, in seconds,
	// relative to server time. The new value must be larger than or equal to 0, and cannot be larger than 7 days. The visibility
	// timeout of a message cannot be set to a value later than the expiry time.
	// visibilitytimeout should be set to a value smaller than the time-to-live value.
	Visibilitytimeout *int32

	RequestID *string
	Timeout   *int32
}

// MessagesClientDequeueOptions contains the optional parameters for the MessagesClient.Dequeue method.
type MessagesClientDequeueOptions struct {
	// Optional. A nonzero integer value that specifies the number of messages to retrieve from the queue, up to a maximum of
	// 32. If fewer are visible, the visible messages are returned. By default, a
	// single message is retrieved from the queue with this operation.
	NumberOfMessages *int32

	// Optional. Specifies the new visibility timeout value, in seconds, relative to server time. The default value is 30 seconds.
	// A specified value must be larger than or equal to 1 second, and cannot be
	// larger than 7 days, or larger than 2 hours on REST protocol versions prior to version 2011-08-18. The visibility timeout
	// of a message can be set to a value later than the expiry time.
	Visibilitytimeout *int32

	RequestID *string
	Timeout   *int32
}

// MessagesClientPeekOptions contains the optional parameters for the MessagesClient.Peek method.
type MessagesClientPeekOptions struct {
	NumberOfMessages *int32
	RequestID        *string
	Timeout          *int32
}

// MessagesClientClearOptions contains the optional parameters for the MessagesClient.Clear method.
type MessagesClientClearOptions struct {
	RequestID *string
	Timeout   *int32
}

// MessageIDClientUpdateOptions contains the optional parameters for the MessageIDClient.Update method.
type MessageIDClientUpdateOptions struct {
	// A Message object which can be stored in a Queue. When nil only the visibility timeout changes.
	QueueMessage *QueueMessage

	RequestID *string
	Timeout   *int32
}

// MessageIDClientDeleteOptions contains the optional parameters for the MessageIDClient.Delete method.
type MessageIDClientDeleteOptions struct {
	RequestID *string
	Timeout   *int32
}
