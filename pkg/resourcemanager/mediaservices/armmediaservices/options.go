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

// AssetsClientCreateOrUpdateOptions contains the optional parameters for the AssetsClient.CreateOrUpdate method.
type AssetsClientCreateOrUpdateOptions struct {
	// placeholder for future optional parameters
}

// AssetsClientDeleteOptions contains the optional parameters for the AssetsClient.Delete method.
type AssetsClientDeleteOptions struct {
	// placeholder for future optional parameters
}

// AssetsClientGetEncryptionKeyOptions contains the optional parameters for the AssetsClient.GetEncryptionKey method.
type AssetsClientGetEncryptionKeyOptions struct {
	// placeholder for future optional parameters
}

// AssetsClientGetOptions contains the optional parameters for the AssetsClient.Get method.
type AssetsClientGetOptions struct {
	// placeholder for future optional parameters
}

// AssetsClientListContainerSasOptions contains the optional parameters for the AssetsClient.ListContainerSas method.
type AssetsClientListContainerSasOptions struct {
	// placeholder for future optional parameters
}

// AssetsClientListOptions contains the optional parameters for the AssetsClient.NewListPager method.
type AssetsClientListOptions struct {
	// Restricts the set of items returned.
	Filter *string

	// Specifies the key by which the result collection should be ordered.
	Orderby *string

	// Specifies a non-negative integer n that limits the number of items returned from a collection. The service returns the number of available items up to but not greater than the specified value n.
	Top *int32
}

// AssetsClientListStreamingLocatorsOptions contains the optional parameters for the AssetsClient.ListStreamingLocators method.
type AssetsClientListStreamingLocatorsOptions struct {
	// placeholder for future optional parameters
}

// AssetsClientUpdateOptions contains the optional parameters for the AssetsClient.Update method.
type AssetsClientUpdateOptions struct {
	// placeholder for future optional parameters
}

// JobsClientCancelJobOptions contains the optional parameters for the JobsClient.CancelJob method.
type JobsClientCancelJobOptions struct {
	// placeholder for future optional parameters
}

// JobsClientCreateOptions contains the optional parameters for the JobsClient.Create method.
type JobsClientCreateOptions struct {
	// placeholder for future optional parameters
}

// JobsClientDeleteOptions contains the optional parameters for the JobsClient.Delete method.
type JobsClientDeleteOptions struct {
	// placeholder for future optional parameters
}

// JobsClientGetOptions contains the optional parameters for the JobsClient.Get method.
type JobsClientGetOptions struct {
	// placeholder for future optional parameters
}

// JobsClientListOptions contains the optional parameters for the JobsClient.NewListPager method.
type JobsClientListOptions struct {
	// Restricts the set of items returned.
	Filter *string

	// Specifies the key by which the result collection should be ordered.
	Orderby *string
}

// JobsClientUpdateOptions contains the optional parameters for the JobsClient.Update method.
type JobsClientUpdateOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientCreateOrUpdateOptions contains the optional parameters for the MediaServicesClient.CreateOrUpdate method.
type MediaServicesClientCreateOrUpdateOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientDeleteOptions contains the optional parameters for the MediaServicesClient.Delete method.
type MediaServicesClientDeleteOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientGetOptions contains the optional parameters for the MediaServicesClient.Get method.
type MediaServicesClientGetOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientListBySubscriptionOptions contains the optional parameters for the MediaServicesClient.NewListBySubscriptionPager method.
type MediaServicesClientListBySubscriptionOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientListEdgePoliciesOptions contains the optional parameters for the MediaServicesClient.ListEdgePolicies method.
type MediaServicesClientListEdgePoliciesOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientListOptions contains the optional parameters for the MediaServicesClient.NewListPager method.
type MediaServicesClientListOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientSyncStorageKeysOptions contains the optional parameters for the MediaServicesClient.SyncStorageKeys method.
type MediaServicesClientSyncStorageKeysOptions struct {
	// placeholder for future optional parameters
}

// MediaServicesClientUpdateOptions contains the optional parameters for the MediaServicesClient.Update method.
type MediaServicesClientUpdateOptions struct {
	// placeholder for future optional parameters
}

// OperationsClientListOptions contains the optional parameters for the OperationsClient.List method.
type OperationsClientListOptions struct {
	// placeholder for future optional parameters
}

// TransformsClientCreateOrUpdateOptions contains the optional parameters for the TransformsClient.CreateOrUpdate method.
type TransformsClientCreateOrUpdateOptions struct {
	// placeholder for future optional parameters
}

// TransformsClientDeleteOptions contains the optional parameters for the TransformsClient.Delete method.
type TransformsClientDeleteOptions struct {
	// placeholder for future optional parameters
}

// TransformsClientGetOptions contains the optional parameters for the TransformsClient.Get method.
type TransformsClientGetOptions struct {
	// placeholder for future optional parameters
}

// TransformsClientListOptions contains the optional parameters for the TransformsClient.NewListPager method.
type TransformsClientListOptions struct {
	// Restricts the set of items returned.
	Filter *string

	// Specifies the key by which the result collection should be ordered.
	Orderby *string
}

// TransformsClientUpdateOptions contains the optional parameters for the TransformsClient.Update method.
type TransformsClientUpdateOptions struct {
	// placeholder for future optional parameters
}
