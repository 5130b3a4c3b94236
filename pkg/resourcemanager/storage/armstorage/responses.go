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

// QueueClientCreateResponse contains the response from method QueueClient.Create.
type QueueClientCreateResponse struct {
	StorageQueue
}

// QueueClientDeleteResponse contains the response from method QueueClient.Delete.
type QueueClientDeleteResponse struct {
	// placeholder for future response values
}

// QueueClientGetResponse contains the response from method QueueClient.Get.
type QueueClientGetResponse struct {
	StorageQueue
}

// QueueClientListResponse contains the response from method QueueClient.NewListPager.
type QueueClientListResponse struct {
	ListQueueResource
}

// QueueClientUpdateResponse contains the response from method QueueClient.Update.
type QueueClientUpdateResponse struct {
	StorageQueue
}

// QueueServicesClientGetServicePropertiesResponse contains the response from method QueueServicesClient.GetServiceProperties.
type QueueServicesClientGetServicePropertiesResponse struct {
	QueueServiceProperties
}

// QueueServicesClientListResponse contains the response from method QueueServicesClient.NewListPager.
type QueueServicesClientListResponse struct {
	ListQueueServices
}

// QueueServicesClientSetServicePropertiesResponse contains the response from method QueueServicesClient.SetServiceProperties.
type QueueServicesClientSetServicePropertiesResponse struct {
	QueueServiceProperties
}
