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

// AssetsClientCreateOrUpdateResponse contains the response from method AssetsClient.CreateOrUpdate.
type AssetsClientCreateOrUpdateResponse struct {
	Asset
}

// AssetsClientDeleteResponse contains the response from method AssetsClient.Delete.
type AssetsClientDeleteResponse struct {
	// placeholder for future response values
}

// AssetsClientGetEncryptionKeyResponse contains the response from method AssetsClient.GetEncryptionKey.
type AssetsClientGetEncryptionKeyResponse struct {
	StorageEncryptedAssetDecryptionData
}

// AssetsClientGetResponse contains the response from method AssetsClient.Get.
type AssetsClientGetResponse struct {
	Asset
}

// AssetsClientListContainerSasResponse contains the response from method AssetsClient.ListContainerSas.
type AssetsClientListContainerSasResponse struct {
	AssetContainerSas
}

// AssetsClientListResponse contains the response from method AssetsClient.NewListPager.
type AssetsClientListResponse struct {
	AssetCollection
}

// AssetsClientListStreamingLocatorsResponse contains the response from method AssetsClient.ListStreamingLocators.
type AssetsClientListStreamingLocatorsResponse struct {
	ListStreamingLocatorsResponse
}

// AssetsClientUpdateResponse contains the response from method AssetsClient.Update.
type AssetsClientUpdateResponse struct {
	Asset
}

// JobsClientCancelJobResponse contains the response from method JobsClient.CancelJob.
type JobsClientCancelJobResponse struct {
	// placeholder for future response values
}

// JobsClientCreateResponse contains the response from method JobsClient.Create.
type JobsClientCreateResponse struct {
	Job
}

// JobsClientDeleteResponse contains the response from method JobsClient.Delete.
type JobsClientDeleteResponse struct {
	// placeholder for future response values
}

// JobsClientGetResponse contains the response from method JobsClient.Get.
type JobsClientGetResponse struct {
	Job
}

// JobsClientListResponse contains the response from method JobsClient.NewListPager.
type JobsClientListResponse struct {
	JobCollection
}

// JobsClientUpdateResponse contains the response from method JobsClient.Update.
type JobsClientUpdateResponse struct {
	Job
}

// MediaServicesClientCreateOrUpdateResponse contains the response from method MediaServicesClient.CreateOrUpdate.
type MediaServicesClientCreateOrUpdateResponse struct {
	MediaService
}

// MediaServicesClientDeleteResponse contains the response from method MediaServicesClient.Delete.
type MediaServicesClientDeleteResponse struct {
	// placeholder for future response values
}

// MediaServicesClientGetResponse contains the response from method MediaServicesClient.Get.
type MediaServicesClientGetResponse struct {
	MediaService
}

// MediaServicesClientListBySubscriptionResponse contains the response from method MediaServicesClient.NewListBySubscriptionPager.
type MediaServicesClientListBySubscriptionResponse struct {
	MediaServiceCollection
}

// MediaServicesClientListEdgePoliciesResponse contains the response from method MediaServicesClient.ListEdgePolicies.
type MediaServicesClientListEdgePoliciesResponse struct {
	EdgePolicies
}

// MediaServicesClientListResponse contains the response from method MediaServicesClient.NewListPager.
type MediaServicesClientListResponse struct {
	MediaServiceCollection
}

// MediaServicesClientSyncStorageKeysResponse contains the response from method MediaServicesClient.SyncStorageKeys.
type MediaServicesClientSyncStorageKeysResponse struct {
	// placeholder for future response values
}

// MediaServicesClientUpdateResponse contains the response from method MediaServicesClient.Update.
type MediaServicesClientUpdateResponse struct {
	MediaService
}

// OperationsClientListResponse contains the response from method OperationsClient.List.
type OperationsClientListResponse struct {
	OperationCollection
}

// TransformsClientCreateOrUpdateResponse contains the response from method TransformsClient.CreateOrUpdate.
type TransformsClientCreateOrUpdateResponse struct {
	Transform
}

// TransformsClientDeleteResponse contains the response from method TransformsClient.Delete.
type TransformsClientDeleteResponse struct {
	// placeholder for future response values
}

// TransformsClientGetResponse contains the response from method TransformsClient.Get.
type TransformsClientGetResponse struct {
	Transform
}

// TransformsClientListResponse contains the response from method TransformsClient.NewListPager.
type TransformsClientListResponse struct {
	TransformCollection
}

// TransformsClientUpdateResponse contains the response from method TransformsClient.Update.
type TransformsClientUpdateResponse struct {
	Transform
}
