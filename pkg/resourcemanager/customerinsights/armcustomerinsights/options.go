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

package armcustomerinsights

// AuthorizationPoliciesClientCreateOrUpdateOptions contains the optional parameters for the AuthorizationPoliciesClient.CreateOrUpdate method.
type AuthorizationPoliciesClientCreateOrUpdateOptions struct {
	// placeholder for future optional parameters
}

// AuthorizationPoliciesClientGetOptions contains the optional parameters for the AuthorizationPoliciesClient.Get method.
type AuthorizationPoliciesClientGetOptions struct {
	// placeholder for future optional parameters
}

// AuthorizationPoliciesClientListByHubOptions contains the optional parameters for the AuthorizationPoliciesClient.NewListByHubPager method.
type AuthorizationPoliciesClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// AuthorizationPoliciesClientRegeneratePrimaryKeyOptions contains the optional parameters for the AuthorizationPoliciesClient.RegeneratePrimaryKey method.
type AuthorizationPoliciesClientRegeneratePrimaryKeyOptions struct {
	// placeholder for future optional parameters
}

// AuthorizationPoliciesClientRegenerateSecondaryKeyOptions contains the optional parameters for the AuthorizationPoliciesClient.RegenerateSecondaryKey method.
type AuthorizationPoliciesClientRegenerateSecondaryKeyOptions struct {
	// placeholder for future optional parameters
}

// ConnectorMappingsClientCreateOrUpdateOptions contains the optional parameters for the ConnectorMappingsClient.CreateOrUpdate method.
type ConnectorMappingsClientCreateOrUpdateOptions struct {
	// placeholder for future optional parameters
}

// ConnectorMappingsClientDeleteOptions contains the optional parameters for the ConnectorMappingsClient.Delete method.
type ConnectorMappingsClientDeleteOptions struct {
	// placeholder for future optional parameters
}

// ConnectorMappingsClientGetOptions contains the optional parameters for the ConnectorMappingsClient.Get method.
type ConnectorMappingsClientGetOptions struct {
	// placeholder for future optional parameters
}

// ConnectorMappingsClientListByConnectorOptions contains the optional parameters for the ConnectorMappingsClient.NewListByConnectorPager method.
type ConnectorMappingsClientListByConnectorOptions struct {
	// placeholder for future optional parameters
}

// ConnectorsClientBeginCreateOrUpdateOptions contains the optional parameters for the ConnectorsClient.BeginCreateOrUpdate method.
type ConnectorsClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// ConnectorsClientBeginDeleteOptions contains the optional parameters for the ConnectorsClient.BeginDelete method.
type ConnectorsClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// ConnectorsClientGetOptions contains the optional parameters for the ConnectorsClient.Get method.
type ConnectorsClientGetOptions struct {
	// placeholder for future optional parameters
}

// ConnectorsClientListByHubOptions contains the optional parameters for the ConnectorsClient.NewListByHubPager method.
type ConnectorsClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// HubsClientBeginDeleteOptions contains the optional parameters for the HubsClient.BeginDelete method.
type HubsClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// HubsClientCreateOrUpdateOptions contains the optional parameters for the HubsClient.CreateOrUpdate method.
type HubsClientCreateOrUpdateOptions struct {
	// placeholder for future optional parameters
}

// HubsClientGetOptions contains the optional parameters for the HubsClient.Get method.
type HubsClientGetOptions struct {
	// placeholder for future optional parameters
}

// HubsClientListByResourceGroupOptions contains the optional parameters for the HubsClient.NewListByResourceGroupPager method.
type HubsClientListByResourceGroupOptions struct {
	// placeholder for future optional parameters
}

// HubsClientListOptions contains the optional parameters for the HubsClient.NewListPager method.
type HubsClientListOptions struct {
	// placeholder for future optional parameters
}

// HubsClientUpdateOptions contains the optional parameters for the HubsClient.Update method.
type HubsClientUpdateOptions struct {
	// placeholder for future optional parameters
}

// ImagesClientGetUploadURLForDataOptions contains the optional parameters for the ImagesClient.GetUploadURLForData method.
type ImagesClientGetUploadURLForDataOptions struct {
	// placeholder for future optional parameters
}

// ImagesClientGetUploadURLForEntityTypeOptions contains the optional parameters for the ImagesClient.GetUploadURLForEntityType method.
type ImagesClientGetUploadURLForEntityTypeOptions struct {
	// placeholder for future optional parameters
}

// InteractionsClientBeginCreateOrUpdateOptions contains the optional parameters for the InteractionsClient.BeginCreateOrUpdate method.
type InteractionsClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// InteractionsClientGetOptions contains the optional parameters for the InteractionsClient.Get method.
type InteractionsClientGetOptions struct {
	// Locale of profile to retrieve, default is en-us.
	LocaleCode *string
}

// InteractionsClientListByHubOptions contains the optional parameters for the InteractionsClient.NewListByHubPager method.
type InteractionsClientListByHubOptions struct {
	// Locale of profile to retrieve, default is en-us.
	LocaleCode *string
}

// InteractionsClientSuggestRelationshipLinksOptions contains the optional parameters for the InteractionsClient.SuggestRelationshipLinks method.
type InteractionsClientSuggestRelationshipLinksOptions struct {
	// placeholder for future optional parameters
}

// KpiClientBeginCreateOrUpdateOptions contains the optional parameters for the KpiClient.BeginCreateOrUpdate method.
type KpiClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// KpiClientBeginDeleteOptions contains the optional parameters for the KpiClient.BeginDelete method.
type KpiClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// KpiClientGetOptions contains the optional parameters for the KpiClient.Get method.
type KpiClientGetOptions struct {
	// placeholder for future optional parameters
}

// KpiClientListByHubOptions contains the optional parameters for the KpiClient.NewListByHubPager method.
type KpiClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// KpiClientReprocessOptions contains the optional parameters for the KpiClient.Reprocess method.
type KpiClientReprocessOptions struct {
	// placeholder for future optional parameters
}

// LinksClientBeginCreateOrUpdateOptions contains the optional parameters for the LinksClient.BeginCreateOrUpdate method.
type LinksClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// LinksClientBeginDeleteOptions contains the optional parameters for the LinksClient.BeginDelete method.
type LinksClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// LinksClientGetOptions contains the optional parameters for the LinksClient.Get method.
type LinksClientGetOptions struct {
	// placeholder for future optional parameters
}

// LinksClientListByHubOptions contains the optional parameters for the LinksClient.NewListByHubPager method.
type LinksClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// OperationsClientListOptions contains the optional parameters for the OperationsClient.NewListPager method.
type OperationsClientListOptions struct {
	// placeholder for future optional parameters
}

// PredictionsClientBeginCreateOrUpdateOptions contains the optional parameters for the PredictionsClient.BeginCreateOrUpdate method.
type PredictionsClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// PredictionsClientBeginDeleteOptions contains the optional parameters for the PredictionsClient.BeginDelete method.
type PredictionsClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// PredictionsClientGetModelStatusOptions contains the optional parameters for the PredictionsClient.GetModelStatus method.
type PredictionsClientGetModelStatusOptions struct {
	// placeholder for future optional parameters
}

// PredictionsClientGetOptions contains the optional parameters for the PredictionsClient.Get method.
type PredictionsClientGetOptions struct {
	// placeholder for future optional parameters
}

// PredictionsClientGetTrainingResultsOptions contains the optional parameters for the PredictionsClient.GetTrainingResults method.
type PredictionsClientGetTrainingResultsOptions struct {
	// placeholder for future optional parameters
}

// PredictionsClientListByHubOptions contains the optional parameters for the PredictionsClient.NewListByHubPager method.
type PredictionsClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// PredictionsClientModelStatusOptions contains the optional parameters for the PredictionsClient.ModelStatus method.
type PredictionsClientModelStatusOptions struct {
	// placeholder for future optional parameters
}

// ProfilesClientBeginCreateOrUpdateOptions contains the optional parameters for the ProfilesClient.BeginCreateOrUpdate method.
type ProfilesClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// ProfilesClientBeginDeleteOptions contains the optional parameters for the ProfilesClient.BeginDelete method.
type ProfilesClientBeginDeleteOptions struct {
	// Locale of profile to retrieve, default is en-us.
	LocaleCode *string

	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// ProfilesClientGetEnrichingKpisOptions contains the optional parameters for the ProfilesClient.GetEnrichingKpis method.
type ProfilesClientGetEnrichingKpisOptions struct {
	// placeholder for future optional parameters
}

// ProfilesClientGetOptions contains the optional parameters for the ProfilesClient.Get method.
type ProfilesClientGetOptions struct {
	// Locale of profile to retrieve, default is en-us.
	LocaleCode *string
}

// ProfilesClientListByHubOptions contains the optional parameters for the ProfilesClient.NewListByHubPager method.
type ProfilesClientListByHubOptions struct {
	// Locale of profile to retrieve, default is en-us.
	LocaleCode *string
}

// RelationshipLinksClientBeginCreateOrUpdateOptions contains the optional parameters for the RelationshipLinksClient.BeginCreateOrUpdate method.
type RelationshipLinksClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// RelationshipLinksClientBeginDeleteOptions contains the optional parameters for the RelationshipLinksClient.BeginDelete method.
type RelationshipLinksClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// RelationshipLinksClientGetOptions contains the optional parameters for the RelationshipLinksClient.Get method.
type RelationshipLinksClientGetOptions struct {
	// placeholder for future optional parameters
}

// RelationshipLinksClientListByHubOptions contains the optional parameters for the RelationshipLinksClient.NewListByHubPager method.
type RelationshipLinksClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// RelationshipsClientBeginCreateOrUpdateOptions contains the optional parameters for the RelationshipsClient.BeginCreateOrUpdate method.
type RelationshipsClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// RelationshipsClientBeginDeleteOptions contains the optional parameters for the RelationshipsClient.BeginDelete method.
type RelationshipsClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// RelationshipsClientGetOptions contains the optional parameters for the RelationshipsClient.Get method.
type RelationshipsClientGetOptions struct {
	// placeholder for future optional parameters
}

// RelationshipsClientListByHubOptions contains the optional parameters for the RelationshipsClient.NewListByHubPager method.
type RelationshipsClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// RoleAssignmentsClientBeginCreateOrUpdateOptions contains the optional parameters for the RoleAssignmentsClient.BeginCreateOrUpdate method.
type RoleAssignmentsClientBeginCreateOrUpdateOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// RoleAssignmentsClientBeginDeleteOptions contains the optional parameters for the RoleAssignmentsClient.BeginDelete method.
type RoleAssignmentsClientBeginDeleteOptions struct {
	// Resumes the long-running operation from the provided token.
	ResumeToken string
}

// RoleAssignmentsClientGetOptions contains the optional parameters for the RoleAssignmentsClient.Get method.
type RoleAssignmentsClientGetOptions struct {
	// placeholder for future optional parameters
}

// RoleAssignmentsClientListByHubOptions contains the optional parameters for the RoleAssignmentsClient.NewListByHubPager method.
type RoleAssignmentsClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// RolesClientListByHubOptions contains the optional parameters for the RolesClient.NewListByHubPager method.
type RolesClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// ViewsClientCreateOrUpdateOptions contains the optional parameters for the ViewsClient.CreateOrUpdate method.
type ViewsClientCreateOrUpdateOptions struct {
	// placeholder for future optional parameters
}

// ViewsClientDeleteOptions contains the optional parameters for the ViewsClient.Delete method.
type ViewsClientDeleteOptions struct {
	// placeholder for future optional parameters
}

// ViewsClientGetOptions contains the optional parameters for the ViewsClient.Get method.
type ViewsClientGetOptions struct {
	// placeholder for future optional parameters
}

// ViewsClientListByHubOptions contains the optional parameters for the ViewsClient.NewListByHubPager method.
type ViewsClientListByHubOptions struct {
	// placeholder for future optional parameters
}

// WidgetTypesClientGetOptions contains the optional parameters for the WidgetTypesClient.Get method.
type WidgetTypesClientGetOptions struct {
	// placeholder for future optional parameters
}

// WidgetTypesClientListByHubOptions contains the optional parameters for the WidgetTypesClient.NewListByHubPager method.
type WidgetTypesClientListByHubOptions struct {
	// placeholder for future optional parameters
}
