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

import "time"

// AssignmentPrincipal - The AssignmentPrincipal
type AssignmentPrincipal struct {
	// REQUIRED; The principal id being assigned to.
	PrincipalID *string `json:"principalId,omitempty"`

	// REQUIRED; The Type of the principal ID.
	PrincipalType *string `json:"principalType,omitempty"`

	// Other metadata for the principal.
	PrincipalMetadata map[string]*string `json:"principalMetadata,omitempty"`
}

// AuthorizationPolicy - The authorization policy.
type AuthorizationPolicy struct {
	// REQUIRED; The permissions associated with the policy.
	Permissions []*PermissionTypes `json:"permissions,omitempty"`

	// Primary key associated with the policy.
	PrimaryKey *string `json:"primaryKey,omitempty"`

	// Secondary key associated with the policy.
	SecondaryKey *string `json:"secondaryKey,omitempty"`

	// READ-ONLY; Name of the policy.
	PolicyName *string `json:"policyName,omitempty"`
}

// AuthorizationPolicyListResult - The response of list authorization policy operation.
type AuthorizationPolicyListResult struct {
	NextLink *string                              `json:"nextLink,omitempty"`
	Value    []*AuthorizationPolicyResourceFormat `json:"value,omitempty"`
}

// AuthorizationPolicyResourceFormat - The authorization policy resource format.
type AuthorizationPolicyResourceFormat struct {
	Properties *AuthorizationPolicy `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// AzureBlobConnectorProperties - The Azure Blob connector properties.
type AzureBlobConnectorProperties struct {
	// REQUIRED; The connection KeyVault URL.
	ConnectionKeyVaultURL *string `json:"connectionKeyVaultUrl,omitempty"`
}

// CanonicalProfileDefinition - Definition of canonical profile.
type CanonicalProfileDefinition struct {
	CanonicalProfileID *int32                                      `json:"canonicalProfileId,omitempty"`
	Properties         []*CanonicalProfileDefinitionPropertiesItem `json:"properties,omitempty"`
}

// CanonicalProfileDefinitionPropertiesItem - The definition of a canonical profile property.
type CanonicalProfileDefinitionPropertiesItem struct {
	ProfileName         *string                     `json:"profileName,omitempty"`
	ProfilePropertyName *string                     `json:"profilePropertyName,omitempty"`
	Rank                *int32                      `json:"rank,omitempty"`
	Type                *CanonicalPropertyValueType `json:"type,omitempty"`
	Value               *string                     `json:"value,omitempty"`
}

// Connector - Properties of connector.
type Connector struct {
	// REQUIRED; The connector properties. The shape depends on ConnectorType, see
	// AzureBlobConnectorProperties, CrmConnectorProperties and SalesforceConnectorProperties.
	ConnectorProperties map[string]any `json:"connectorProperties,omitempty"`

	// REQUIRED; Type of connector.
	ConnectorType *ConnectorTypes `json:"connectorType,omitempty"`

	ConnectorName *string `json:"connectorName,omitempty"`
	Description   *string `json:"description,omitempty"`
	DisplayName   *string `json:"displayName,omitempty"`

	// If this is an internal connector.
	IsInternal *bool `json:"isInternal,omitempty"`

	// READ-ONLY
	ConnectorID  *int32           `json:"connectorId,omitempty"`
	Created      *time.Time       `json:"created,omitempty"`
	LastModified *time.Time       `json:"lastModified,omitempty"`
	State        *ConnectorStates `json:"state,omitempty"`
	TenantID     *string          `json:"tenantId,omitempty"`
}

// ConnectorListResult - The response of list connector operation.
type ConnectorListResult struct {
	NextLink *string                    `json:"nextLink,omitempty"`
	Value    []*ConnectorResourceFormat `json:"value,omitempty"`
}

// ConnectorMapping - The connector mapping definition.
type ConnectorMapping struct {
	// REQUIRED; Defines which entity type the file should map to.
	EntityType *EntityTypes `json:"entityType,omitempty"`

	// REQUIRED; The mapping entity name.
	EntityTypeName *string `json:"entityTypeName,omitempty"`

	// REQUIRED; The properties of the mapping.
	MappingProperties *ConnectorMappingProperties `json:"mappingProperties,omitempty"`

	ConnectorType *ConnectorTypes `json:"connectorType,omitempty"`
	Description   *string         `json:"description,omitempty"`
	DisplayName   *string         `json:"displayName,omitempty"`

	// READ-ONLY
	ConnectorMappingName *string                 `json:"connectorMappingName,omitempty"`
	ConnectorName        *string                 `json:"connectorName,omitempty"`
	Created              *time.Time              `json:"created,omitempty"`
	DataFormatID         *string                 `json:"dataFormatId,omitempty"`
	LastModified         *time.Time              `json:"lastModified,omitempty"`
	NextRunTime          *time.Time              `json:"nextRunTime,omitempty"`
	RunID                *string                 `json:"runId,omitempty"`
	State                *ConnectorMappingStates `json:"state,omitempty"`
	TenantID             *string                 `json:"tenantId,omitempty"`
}

// ConnectorMappingAvailability - Connector mapping property availability.
type ConnectorMappingAvailability struct {
	// REQUIRED; The interval of the given frequency to use.
	Interval  *int32          `json:"interval,omitempty"`
	Frequency *FrequencyTypes `json:"frequency,omitempty"`
}

// ConnectorMappingCompleteOperation - The complete operation.
type ConnectorMappingCompleteOperation struct {
	CompletionOperationType *CompletionOperationTypes `json:"completionOperationType,omitempty"`

	// The destination folder where files will be moved to once the import is done.
	DestinationFolder *string `json:"destinationFolder,omitempty"`
}

// ConnectorMappingErrorManagement - The error management.
type ConnectorMappingErrorManagement struct {
	// REQUIRED
	ErrorManagementType *ErrorManagementTypes `json:"errorManagementType,omitempty"`

	// The error limit allowed while importing data.
	ErrorLimit *int32 `json:"errorLimit,omitempty"`
}

// ConnectorMappingFormat - Connector mapping property format.
type ConnectorMappingFormat struct {
	// REQUIRED; The type mapping format. Only "TextFormat" is accepted.
	FormatType *string `json:"formatType,omitempty"`

	AcceptLanguage       *string `json:"acceptLanguage,omitempty"`
	ArraySeparator       *string `json:"arraySeparator,omitempty"`
	ColumnDelimiter      *string `json:"columnDelimiter,omitempty"`
	QuoteCharacter       *string `json:"quoteCharacter,omitempty"`
	QuoteEscapeCharacter *string `json:"quoteEscapeCharacter,omitempty"`
}

// ConnectorMappingListResult - The response of list connector mapping operation.
type ConnectorMappingListResult struct {
	NextLink *string                           `json:"nextLink,omitempty"`
	Value    []*ConnectorMappingResourceFormat `json:"value,omitempty"`
}

// ConnectorMappingProperties - The connector mapping properties.
type ConnectorMappingProperties struct {
	// REQUIRED
	Availability      *ConnectorMappingAvailability      `json:"availability,omitempty"`
	CompleteOperation *ConnectorMappingCompleteOperation `json:"completeOperation,omitempty"`
	ErrorManagement   *ConnectorMappingErrorManagement   `json:"errorManagement,omitempty"`
	Format            *ConnectorMappingFormat            `json:"format,omitempty"`
	Structure         []*ConnectorMappingStructure       `json:"structure,omitempty"`

	FileFilter *string `json:"fileFilter,omitempty"`
	FolderPath *string `json:"folderPath,omitempty"`
	HasHeader  *bool   `json:"hasHeader,omitempty"`
}

// ConnectorMappingResourceFormat - The connector mapping resource format.
type ConnectorMappingResourceFormat struct {
	Properties *ConnectorMapping `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// ConnectorMappingStructure - Connector mapping property structure.
type ConnectorMappingStructure struct {
	// REQUIRED
	ColumnName   *string `json:"columnName,omitempty"`
	PropertyName *string `json:"propertyName,omitempty"`

	CustomFormatSpecifier *string `json:"customFormatSpecifier,omitempty"`
	IsEncrypted           *bool   `json:"isEncrypted,omitempty"`
}

// ConnectorResourceFormat - The connector resource format.
type ConnectorResourceFormat struct {
	Properties *Connector `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// CrmConnectorEntities - The CRM connector entities.
type CrmConnectorEntities struct {
	// REQUIRED
	LogicalName *string `json:"logicalName,omitempty"`

	DisplayName *string `json:"displayName,omitempty"`
	IsProfile   *bool   `json:"isProfile,omitempty"`
}

// CrmConnectorProperties - The CRM connector properties.
type CrmConnectorProperties struct {
	// REQUIRED
	Entities        []*CrmConnectorEntities `json:"entities,omitempty"`
	OrganizationID  *string                 `json:"organizationId,omitempty"`
	OrganizationURL *string                 `json:"organizationUrl,omitempty"`

	AccessToken      *string `json:"accessToken,omitempty"`
	ConnectionString *string `json:"connectionString,omitempty"`
}

// DataSource - Data Source is a way for us to know the source of instances. A single type can have data coming in from
// multiple places. In activities we use this to determine precedence rules.
type DataSource struct {
	// READ-ONLY
	DataSourceReferenceID *string         `json:"dataSourceReferenceId,omitempty"`
	DataSourceType        *DataSourceType `json:"dataSourceType,omitempty"`
	ID                    *int32          `json:"id,omitempty"`
	Name                  *string         `json:"name,omitempty"`
	Status                *Status         `json:"status,omitempty"`
}

// DataSourcePrecedence - The data source precedence is a way to know the precedence of each data source.
type DataSourcePrecedence struct {
	DataSource *DataSource `json:"dataSource,omitempty"`

	// the precedence value.
	Precedence *int32 `json:"precedence,omitempty"`
}

// EntityTypeDefinition - Describes an entity. It is shared by profile and interaction types.
type EntityTypeDefinition struct {
	// The attributes for the Type.
	Attributes map[string][]*string `json:"attributes,omitempty"`

	// Localized descriptions for the property.
	Description map[string]*string `json:"description,omitempty"`

	// Localized display names for the property.
	DisplayName map[string]*string `json:"displayName,omitempty"`

	// Any custom localized attributes for the Type.
	LocalizedAttributes map[string]map[string]*string `json:"localizedAttributes,omitempty"`

	LargeImage  *string `json:"largeImage,omitempty"`
	MediumImage *string `json:"mediumImage,omitempty"`
	SmallImage  *string `json:"smallImage,omitempty"`

	// The api entity set name. This becomes the odata entity set name for the entity Type being referred in this object.
	APIEntitySetName *string `json:"apiEntitySetName,omitempty"`

	EntityType *EntityTypes `json:"entityType,omitempty"`

	// The properties of the Profile.
	Fields []*PropertyDefinition `json:"fields,omitempty"`

	// The instance count.
	InstancesCount *int32 `json:"instancesCount,omitempty"`

	// The schema org link. This helps ACI identify and suggest semantic models.
	SchemaItemTypeLink *string `json:"schemaItemTypeLink,omitempty"`

	// The timestamp property name. Represents the time when the interaction or profile update happened.
	TimestampFieldName *string `json:"timestampFieldName,omitempty"`

	// The name of the entity.
	TypeName *string `json:"typeName,omitempty"`

	// READ-ONLY
	LastChangedUTC    *time.Time          `json:"lastChangedUtc,omitempty"`
	ProvisioningState *ProvisioningStates `json:"provisioningState,omitempty"`
	TenantID          *string             `json:"tenantId,omitempty"`
}

// GetImageUploadURLInput - Input type for getting image upload url.
type GetImageUploadURLInput struct {
	// Type of entity. Can be Profile or Interaction.
	EntityType *string `json:"entityType,omitempty"`

	// Name of the entity type.
	EntityTypeName *string `json:"entityTypeName,omitempty"`

	// Relative path of the image.
	RelativePath *string `json:"relativePath,omitempty"`
}

// Hub resource.
type Hub struct {
	Location   *string              `json:"location,omitempty"`
	Properties *HubPropertiesFormat `json:"properties,omitempty"`
	Tags       map[string]*string   `json:"tags,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// HubBillingInfoFormat - Hub billing info.
type HubBillingInfoFormat struct {
	// The maximum number of units can be used. One unit is 10,000 Profiles and 100,000 Interactions.
	MaxUnits *int32 `json:"maxUnits,omitempty"`

	// The minimum number of units will be billed. One unit is 10,000 Profiles and 100,000 Interactions.
	MinUnits *int32 `json:"minUnits,omitempty"`

	// The sku name.
	SKUName *string `json:"skuName,omitempty"`
}

// HubListResult - Response of list hub operation.
type HubListResult struct {
	NextLink *string `json:"nextLink,omitempty"`
	Value    []*Hub  `json:"value,omitempty"`
}

// HubPropertiesFormat - Properties of hub.
type HubPropertiesFormat struct {
	HubBillingInfo *HubBillingInfoFormat `json:"hubBillingInfo,omitempty"`

	// The bit flags for enabled hub features. Bit 0 is set to 1 indicates graph is enabled, or disabled if set to 0. Bit 1
	// is set to 1 indicates the hub is disabled, or enabled if set to 0.
	TenantFeatures *int32 `json:"tenantFeatures,omitempty"`

	// READ-ONLY
	APIEndpoint       *string `json:"apiEndpoint,omitempty"`
	ProvisioningState *string `json:"provisioningState,omitempty"`
	WebEndpoint       *string `json:"webEndpoint,omitempty"`
}

// ImageDefinition - The image definition.
type ImageDefinition struct {
	// Content URL for the image blob.
	ContentURL *string `json:"contentUrl,omitempty"`

	// Whether image exists already.
	ImageExists *bool `json:"imageExists,omitempty"`

	// Relative path of the image.
	RelativePath *string `json:"relativePath,omitempty"`
}

// InteractionListResult - The response of list interaction operation.
type InteractionListResult struct {
	NextLink *string                      `json:"nextLink,omitempty"`
	Value    []*InteractionResourceFormat `json:"value,omitempty"`
}

// InteractionResourceFormat - The interaction resource format.
type InteractionResourceFormat struct {
	Properties *InteractionTypeDefinition `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// InteractionTypeDefinition - The Interaction Type Definition
type InteractionTypeDefinition struct {
	EntityTypeDefinition

	// The data source precedence rules.
	DataSourcePrecedenceRules []*DataSourcePrecedence `json:"dataSourcePrecedenceRules,omitempty"`

	// READ-ONLY; Default data source is specifically used in cases where data source is not specified in an instance.
	DefaultDataSource *DataSource `json:"defaultDataSource,omitempty"`

	// The id property names. Properties which uniquely identify an interaction instance.
	IDPropertyNames []*string `json:"idPropertyNames,omitempty"`

	// An interaction can be tagged as an activity only during create. This enables the interaction to be editable and
	// can enable merging of properties from multiple data sources based on precedence, which is defined at a link level.
	IsActivity *bool `json:"isActivity,omitempty"`

	// Profiles that participated in the interaction.
	ParticipantProfiles []*Participant `json:"participantProfiles,omitempty"`

	// The primary participant property name for an interaction. This is used to logically represent the agent of the interaction.
	PrimaryParticipantProfilePropertyName *string `json:"primaryParticipantProfilePropertyName,omitempty"`
}

// KpiAlias - The KPI alias.
type KpiAlias struct {
	// REQUIRED
	AliasName  *string `json:"aliasName,omitempty"`
	Expression *string `json:"expression,omitempty"`
}

// KpiDefinition - Defines the KPI Threshold limits.
type KpiDefinition struct {
	// REQUIRED; The calculation window.
	CalculationWindow *CalculationWindowTypes `json:"calculationWindow,omitempty"`

	// REQUIRED; The mapping entity type.
	EntityType *EntityTypes `json:"entityType,omitempty"`

	// REQUIRED; The mapping entity name.
	EntityTypeName *string `json:"entityTypeName,omitempty"`

	// REQUIRED; The computation expression for the KPI.
	Expression *string `json:"expression,omitempty"`

	// REQUIRED; The computation function for the KPI.
	Function *KpiFunctions `json:"function,omitempty"`

	Aliases                    []*KpiAlias        `json:"aliases,omitempty"`
	CalculationWindowFieldName *string            `json:"calculationWindowFieldName,omitempty"`
	Description                map[string]*string `json:"description,omitempty"`
	DisplayName                map[string]*string `json:"displayName,omitempty"`
	Extracts                   []*KpiExtract      `json:"extracts,omitempty"`
	Filter                     *string            `json:"filter,omitempty"`
	GroupBy                    []*string          `json:"groupBy,omitempty"`
	ThresHolds                 *KpiThresholds     `json:"thresHolds,omitempty"`
	Unit                       *string            `json:"unit,omitempty"`

	// READ-ONLY
	GroupByMetadata             []*KpiGroupByMetadata             `json:"groupByMetadata,omitempty"`
	KpiName                     *string                           `json:"kpiName,omitempty"`
	ParticipantProfilesMetadata []*KpiParticipantProfilesMetadata `json:"participantProfilesMetadata,omitempty"`
	ProvisioningState           *ProvisioningStates               `json:"provisioningState,omitempty"`
	TenantID                    *string                           `json:"tenantId,omitempty"`
}

// KpiExtract - The KPI extract.
type KpiExtract struct {
	// REQUIRED
	Expression  *string `json:"expression,omitempty"`
	ExtractName *string `json:"extractName,omitempty"`
}

// KpiGroupByMetadata - The KPI GroupBy field metadata.
type KpiGroupByMetadata struct {
	DisplayName map[string]*string `json:"displayName,omitempty"`
	FieldName   *string            `json:"fieldName,omitempty"`
	FieldType   *string            `json:"fieldType,omitempty"`
}

// KpiListResult - The response of list KPI operation.
type KpiListResult struct {
	NextLink *string              `json:"nextLink,omitempty"`
	Value    []*KpiResourceFormat `json:"value,omitempty"`
}

// KpiParticipantProfilesMetadata - The KPI participant profile metadata.
type KpiParticipantProfilesMetadata struct {
	// REQUIRED; Name of the type.
	TypeName *string `json:"typeName,omitempty"`
}

// KpiResourceFormat - The KPI resource format.
type KpiResourceFormat struct {
	Properties *KpiDefinition `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// KpiThresholds - Defines the KPI Threshold limits.
type KpiThresholds struct {
	// REQUIRED
	IncreasingKpi *bool    `json:"increasingKpi,omitempty"`
	LowerLimit    *float64 `json:"lowerLimit,omitempty"`
	UpperLimit    *float64 `json:"upperLimit,omitempty"`
}

// LinkDefinition - The definition of Link.
type LinkDefinition struct {
	// REQUIRED; The properties that represent the participating profile.
	ParticipantPropertyReferences []*ParticipantPropertyReference `json:"participantPropertyReferences,omitempty"`

	// REQUIRED; Name of the source Interaction Type.
	SourceEntityTypeName *string `json:"sourceEntityTypeName,omitempty"`

	// REQUIRED; Name of the target Profile Type.
	TargetEntityTypeName *string `json:"targetEntityTypeName,omitempty"`

	// REQUIRED; Type of source entity.
	SourceEntityType *EntityType `json:"sourceEntityType,omitempty"`

	// REQUIRED; Type of target entity.
	TargetEntityType *EntityType `json:"targetEntityType,omitempty"`

	Description map[string]*string `json:"description,omitempty"`
	DisplayName map[string]*string `json:"displayName,omitempty"`

	// The set of properties mappings between the source and target Types.
	Mappings []*TypePropertiesMapping `json:"mappings,omitempty"`

	// Determines whether this link is supposed to create or delete instances if Link is NOT Reference Only.
	OperationType *InstanceOperationType `json:"operationType,omitempty"`

	// Indicating whether the link is reference only link. This flag is ignored if the Mappings are defined. If the mappings
	// are not defined and it is set to true, links processing will not create or update profiles.
	ReferenceOnly *bool `json:"referenceOnly,omitempty"`

	// READ-ONLY
	LinkName          *string             `json:"linkName,omitempty"`
	ProvisioningState *ProvisioningStates `json:"provisioningState,omitempty"`
	TenantID          *string             `json:"tenantId,omitempty"`
}

// LinkListResult - The response of list link operation.
type LinkListResult struct {
	NextLink *string               `json:"nextLink,omitempty"`
	Value    []*LinkResourceFormat `json:"value,omitempty"`
}

// LinkResourceFormat - The link resource format.
type LinkResourceFormat struct {
	Properties *LinkDefinition `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// Operation - A Customer Insights REST API operation
type Operation struct {
	// The object that represents the operation.
	Display *OperationDisplay `json:"display,omitempty"`

	// READ-ONLY; Operation name: {provider}/{resource}/{operation}
	Name *string `json:"name,omitempty"`
}

// OperationDisplay - The object that represents the operation.
type OperationDisplay struct {
	// READ-ONLY
	Operation *string `json:"operation,omitempty"`
	Provider  *string `json:"provider,omitempty"`
	Resource  *string `json:"resource,omitempty"`
}

// OperationListResult - Result of the request to list Customer Insights operations.
type OperationListResult struct {
	// READ-ONLY
	NextLink *string      `json:"nextLink,omitempty"`
	Value    []*Operation `json:"value,omitempty"`
}

// Participant - Describes a profile type participating in an interaction.
type Participant struct {
	// REQUIRED
	ParticipantName               *string                         `json:"participantName,omitempty"`
	ParticipantPropertyReferences []*ParticipantPropertyReference `json:"participantPropertyReferences,omitempty"`
	ProfileTypeName               *string                         `json:"profileTypeName,omitempty"`

	Description map[string]*string `json:"description,omitempty"`
	DisplayName map[string]*string `json:"displayName,omitempty"`

	// The role that the participant is playing in the interaction.
	Role *string `json:"role,omitempty"`
}

// ParticipantPropertyReference - The participant property reference.
type ParticipantPropertyReference struct {
	// REQUIRED
	SourcePropertyName *string `json:"sourcePropertyName,omitempty"`
	TargetPropertyName *string `json:"targetPropertyName,omitempty"`
}

// Prediction - The prediction definition.
type Prediction struct {
	// REQUIRED; Whether do auto analyze.
	AutoAnalyze *bool `json:"autoAnalyze,omitempty"`

	// REQUIRED; Definition of the link mapping of prediction.
	Mappings *PredictionMappings `json:"mappings,omitempty"`

	// REQUIRED
	NegativeOutcomeExpression *string `json:"negativeOutcomeExpression,omitempty"`
	PositiveOutcomeExpression *string `json:"positiveOutcomeExpression,omitempty"`
	PrimaryProfileType        *string `json:"primaryProfileType,omitempty"`
	ScopeExpression           *string `json:"scopeExpression,omitempty"`
	ScoreLabel                *string `json:"scoreLabel,omitempty"`

	Description              map[string]*string      `json:"description,omitempty"`
	DisplayName              map[string]*string      `json:"displayName,omitempty"`
	Grades                   []*PredictionGradesItem `json:"grades,omitempty"`
	InvolvedInteractionTypes []*string               `json:"involvedInteractionTypes,omitempty"`
	InvolvedKpiTypes         []*string               `json:"involvedKpiTypes,omitempty"`
	InvolvedRelationships    []*string               `json:"involvedRelationships,omitempty"`
	PredictionName           *string                 `json:"predictionName,omitempty"`

	// READ-ONLY
	ProvisioningState       *ProvisioningStates                `json:"provisioningState,omitempty"`
	SystemGeneratedEntities *PredictionSystemGeneratedEntities `json:"systemGeneratedEntities,omitempty"`
	TenantID                *string                            `json:"tenantId,omitempty"`
}

// PredictionDistributionDefinition - The definition of the prediction distribution.
type PredictionDistributionDefinition struct {
	Distributions  []*PredictionDistributionDefinitionDistributionsItem `json:"distributions,omitempty"`
	TotalNegatives *int64                                               `json:"totalNegatives,omitempty"`
	TotalPositives *int64                                               `json:"totalPositives,omitempty"`
}

// PredictionDistributionDefinitionDistributionsItem - The definition of a prediction distribution.
type PredictionDistributionDefinitionDistributionsItem struct {
	Negatives               *int64 `json:"negatives,omitempty"`
	NegativesAboveThreshold *int64 `json:"negativesAboveThreshold,omitempty"`
	Positives               *int64 `json:"positives,omitempty"`
	PositivesAboveThreshold *int64 `json:"positivesAboveThreshold,omitempty"`
	ScoreThreshold          *int32 `json:"scoreThreshold,omitempty"`
}

// PredictionGradesItem - The definition of a prediction grade.
type PredictionGradesItem struct {
	GradeName         *string `json:"gradeName,omitempty"`
	MaxScoreThreshold *int32  `json:"maxScoreThreshold,omitempty"`
	MinScoreThreshold *int32  `json:"minScoreThreshold,omitempty"`
}

// PredictionListResult - The response of list predictions operation.
type PredictionListResult struct {
	NextLink *string                     `json:"nextLink,omitempty"`
	Value    []*PredictionResourceFormat `json:"value,omitempty"`
}

// PredictionMappings - Definition of the link mapping of prediction.
type PredictionMappings struct {
	// REQUIRED
	Grade  *string `json:"grade,omitempty"`
	Reason *string `json:"reason,omitempty"`
	Score  *string `json:"score,omitempty"`
}

// PredictionModelStatus - The prediction model status.
type PredictionModelStatus struct {
	// REQUIRED; Prediction model life cycle.
	Status *PredictionModelLifeCycle `json:"status,omitempty"`

	// READ-ONLY
	Message            *string  `json:"message,omitempty"`
	ModelVersion       *string  `json:"modelVersion,omitempty"`
	PredictionGUIDID   *string  `json:"predictionGuidId,omitempty"`
	PredictionName     *string  `json:"predictionName,omitempty"`
	SignalsUsed        *int32   `json:"signalsUsed,omitempty"`
	TenantID           *string  `json:"tenantId,omitempty"`
	TestSetCount       *int32   `json:"testSetCount,omitempty"`
	TrainingAccuracy   *float64 `json:"trainingAccuracy,omitempty"`
	TrainingSetCount   *int32   `json:"trainingSetCount,omitempty"`
	ValidationSetCount *int32   `json:"validationSetCount,omitempty"`
}

// PredictionResourceFormat - The prediction resource format.
type PredictionResourceFormat struct {
	Properties *Prediction `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// PredictionSystemGeneratedEntities - System generated entities.
type PredictionSystemGeneratedEntities struct {
	GeneratedInteractionTypes []*string                 `json:"generatedInteractionTypes,omitempty"`
	GeneratedKpis             map[string]*KpiDefinition `json:"generatedKpis,omitempty"`
	GeneratedLinks            []*string                 `json:"generatedLinks,omitempty"`
}

// PredictionTrainingResults - The training results of the prediction.
type PredictionTrainingResults struct {
	// READ-ONLY
	CanonicalProfiles           []*CanonicalProfileDefinition     `json:"canonicalProfiles,omitempty"`
	PredictionDistribution      *PredictionDistributionDefinition `json:"predictionDistribution,omitempty"`
	PrimaryProfileInstanceCount *int64                            `json:"primaryProfileInstanceCount,omitempty"`
	ScoreName                   *string                           `json:"scoreName,omitempty"`
	TenantID                    *string                           `json:"tenantId,omitempty"`
}

// ProfileEnumValidValuesFormat - Valid enum values in case of an enum property.
type ProfileEnumValidValuesFormat struct {
	// Localized names of the enum member.
	LocalizedValueNames map[string]*string `json:"localizedValueNames,omitempty"`

	// The integer value of the enum member.
	Value *int32 `json:"value,omitempty"`
}

// ProfileListResult - The response of list profile operation.
type ProfileListResult struct {
	NextLink *string                  `json:"nextLink,omitempty"`
	Value    []*ProfileResourceFormat `json:"value,omitempty"`
}

// ProfileResourceFormat - The profile resource format.
type ProfileResourceFormat struct {
	Properties *ProfileTypeDefinition `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// ProfileTypeDefinition - The profile type definition.
type ProfileTypeDefinition struct {
	EntityTypeDefinition

	// The strong IDs.
	StrongIDs []*StrongID `json:"strongIds,omitempty"`
}

// PropertyDefinition - Property definition.
type PropertyDefinition struct {
	// REQUIRED; Name of the property.
	FieldName *string `json:"fieldName,omitempty"`

	// REQUIRED; Type of the property.
	FieldType *string `json:"fieldType,omitempty"`

	// Array value separator for properties with isArray set.
	ArrayValueSeparator *string                         `json:"arrayValueSeparator,omitempty"`
	EnumValidValues     []*ProfileEnumValidValuesFormat `json:"enumValidValues,omitempty"`
	IsArray             *bool                           `json:"isArray,omitempty"`
	IsEnum              *bool                           `json:"isEnum,omitempty"`
	IsFlagEnum          *bool                           `json:"isFlagEnum,omitempty"`
	IsImage             *bool                           `json:"isImage,omitempty"`
	IsLocalizedString   *bool                           `json:"isLocalizedString,omitempty"`
	IsName              *bool                           `json:"isName,omitempty"`
	IsRequired          *bool                           `json:"isRequired,omitempty"`
	MaxLength           *int32                          `json:"maxLength,omitempty"`
	PropertyID          *string                         `json:"propertyId,omitempty"`
	SchemaItemPropLink  *string                         `json:"schemaItemPropLink,omitempty"`

	// READ-ONLY
	DataSourcePrecedenceRules []*DataSourcePrecedence `json:"dataSourcePrecedenceRules,omitempty"`
	IsAvailableInGraph        *bool                   `json:"isAvailableInGraph,omitempty"`
}

// RelationshipDefinition - The definition of Relationship.
type RelationshipDefinition struct {
	// REQUIRED; Profile type.
	ProfileType *string `json:"profileType,omitempty"`

	// REQUIRED; Related profile being referenced.
	RelatedProfileType *string `json:"relatedProfileType,omitempty"`

	Cardinality *CardinalityTypes  `json:"cardinality,omitempty"`
	Description map[string]*string `json:"description,omitempty"`
	DisplayName map[string]*string `json:"displayName,omitempty"`

	// The expiry date time in UTC.
	ExpiryDateTimeUTC *time.Time `json:"expiryDateTimeUtc,omitempty"`

	// The properties of the Relationship.
	Fields []*PropertyDefinition `json:"fields,omitempty"`

	// Optional property to be used to map fields in profile to their strong ids in related profile.
	LookupMappings []*RelationshipTypeMapping `json:"lookupMappings,omitempty"`

	// READ-ONLY
	ProvisioningState  *ProvisioningStates `json:"provisioningState,omitempty"`
	RelationshipGUIDID *string             `json:"relationshipGuidId,omitempty"`
	RelationshipName   *string             `json:"relationshipName,omitempty"`
	TenantID           *string             `json:"tenantId,omitempty"`
}

// RelationshipLinkDefinition - The definition of relationship link.
type RelationshipLinkDefinition struct {
	// REQUIRED; The InteractionType associated with the Relationship Link.
	InteractionType *string `json:"interactionType,omitempty"`

	// REQUIRED; The property references for the Profile of the Relationship.
	ProfilePropertyReferences []*ParticipantPropertyReference `json:"profilePropertyReferences,omitempty"`

	// REQUIRED; The property references for the Related Profile of the Relationship.
	RelatedProfilePropertyReferences []*ParticipantPropertyReference `json:"relatedProfilePropertyReferences,omitempty"`

	// REQUIRED; The Relationship associated with the Link.
	RelationshipName *string `json:"relationshipName,omitempty"`

	Description map[string]*string `json:"description,omitempty"`
	DisplayName map[string]*string `json:"displayName,omitempty"`

	// The mappings between Interaction and Relationship fields.
	Mappings []*RelationshipLinkFieldMapping `json:"mappings,omitempty"`

	// READ-ONLY
	LinkName           *string             `json:"linkName,omitempty"`
	ProvisioningState  *ProvisioningStates `json:"provisioningState,omitempty"`
	RelationshipGUIDID *string             `json:"relationshipGuidId,omitempty"`
	TenantID           *string             `json:"tenantId,omitempty"`
}

// RelationshipLinkFieldMapping - The fields mapping for Relationships.
type RelationshipLinkFieldMapping struct {
	// REQUIRED
	InteractionFieldName  *string `json:"interactionFieldName,omitempty"`
	RelationshipFieldName *string `json:"relationshipFieldName,omitempty"`

	// Link type.
	LinkType *LinkTypes `json:"linkType,omitempty"`
}

// RelationshipLinkListResult - The response of list relationship link operation.
type RelationshipLinkListResult struct {
	NextLink *string                           `json:"nextLink,omitempty"`
	Value    []*RelationshipLinkResourceFormat `json:"value,omitempty"`
}

// RelationshipLinkResourceFormat - The relationship link resource format.
type RelationshipLinkResourceFormat struct {
	Properties *RelationshipLinkDefinition `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// RelationshipListResult - The response of list relationship operation.
type RelationshipListResult struct {
	NextLink *string                       `json:"nextLink,omitempty"`
	Value    []*RelationshipResourceFormat `json:"value,omitempty"`
}

// RelationshipResourceFormat - The relationship resource format.
type RelationshipResourceFormat struct {
	Properties *RelationshipDefinition `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// RelationshipTypeFieldMapping - Map a field of profile to its corresponding StrongId in Related Profile.
type RelationshipTypeFieldMapping struct {
	// REQUIRED
	ProfileFieldName          *string `json:"profileFieldName,omitempty"`
	RelatedProfileKeyProperty *string `json:"relatedProfileKeyProperty,omitempty"`
}

// RelationshipTypeMapping - Maps fields in Profile to their corresponding StrongIds in Related Profile.
type RelationshipTypeMapping struct {
	// REQUIRED
	FieldMappings []*RelationshipTypeFieldMapping `json:"fieldMappings,omitempty"`
}

// RelationshipsLookup - The definition of suggested relationship for the type.
type RelationshipsLookup struct {
	// READ-ONLY
	ExistingRelationshipName         *string                         `json:"existingRelationshipName,omitempty"`
	ProfileName                      *string                         `json:"profileName,omitempty"`
	ProfilePropertyReferences        []*ParticipantPropertyReference `json:"profilePropertyReferences,omitempty"`
	RelatedProfileName               *string                         `json:"relatedProfileName,omitempty"`
	RelatedProfilePropertyReferences []*ParticipantPropertyReference `json:"relatedProfilePropertyReferences,omitempty"`
}

// ResourceSetDescription - The resource set description.
type ResourceSetDescription struct {
	// The elements included in the set.
	Elements []*string `json:"elements,omitempty"`

	// The elements that are not included in the set, in case elements contains '*' indicating 'all'.
	Exceptions []*string `json:"exceptions,omitempty"`
}

// Role - The Role definition.
type Role struct {
	Description *string `json:"description,omitempty"`
	RoleName    *string `json:"roleName,omitempty"`
}

// RoleAssignment - The Role Assignment definition.
type RoleAssignment struct {
	// REQUIRED; The principals being assigned to.
	Principals []*AssignmentPrincipal `json:"principals,omitempty"`

	// REQUIRED; Type of roles.
	Role *RoleTypes `json:"role,omitempty"`

	ConflationPolicies *ResourceSetDescription `json:"conflationPolicies,omitempty"`
	Connectors         *ResourceSetDescription `json:"connectors,omitempty"`
	Description        map[string]*string      `json:"description,omitempty"`
	DisplayName        map[string]*string      `json:"displayName,omitempty"`
	Interactions       *ResourceSetDescription `json:"interactions,omitempty"`
	Kpis               *ResourceSetDescription `json:"kpis,omitempty"`
	Links              *ResourceSetDescription `json:"links,omitempty"`
	Profiles           *ResourceSetDescription `json:"profiles,omitempty"`
	RelationshipLinks  *ResourceSetDescription `json:"relationshipLinks,omitempty"`
	Relationships      *ResourceSetDescription `json:"relationships,omitempty"`
	RoleAssignments    *ResourceSetDescription `json:"roleAssignments,omitempty"`
	SasPolicies        *ResourceSetDescription `json:"sasPolicies,omitempty"`
	Segments           *ResourceSetDescription `json:"segments,omitempty"`
	Views              *ResourceSetDescription `json:"views,omitempty"`
	WidgetTypes        *ResourceSetDescription `json:"widgetTypes,omitempty"`

	// READ-ONLY
	AssignmentName    *string             `json:"assignmentName,omitempty"`
	ProvisioningState *ProvisioningStates `json:"provisioningState,omitempty"`
	TenantID          *string             `json:"tenantId,omitempty"`
}

// RoleAssignmentListResult - The response of list role assignment operation.
type RoleAssignmentListResult struct {
	NextLink *string                         `json:"nextLink,omitempty"`
	Value    []*RoleAssignmentResourceFormat `json:"value,omitempty"`
}

// RoleAssignmentResourceFormat - The Role Assignment resource format.
type RoleAssignmentResourceFormat struct {
	Properties *RoleAssignment `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// RoleListResult - The response of list role assignment operation.
type RoleListResult struct {
	NextLink *string               `json:"nextLink,omitempty"`
	Value    []*RoleResourceFormat `json:"value,omitempty"`
}

// RoleResourceFormat - The role resource format.
type RoleResourceFormat struct {
	Properties *Role `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// SalesforceConnectorProperties - The Salesforce connector properties.
type SalesforceConnectorProperties struct {
	// REQUIRED
	Salesforcetables []*SalesforceTable         `json:"salesforcetables,omitempty"`
	Usersetting      *SalesforceDiscoverSetting `json:"usersetting,omitempty"`
}

// SalesforceDiscoverSetting - Salesforce discover setting.
type SalesforceDiscoverSetting struct {
	// REQUIRED; The salesforce connection string secret URL.
	SalesforceConnectionStringSecretURL *string `json:"salesforceConnectionStringSecretUrl,omitempty"`
}

// SalesforceTable - Salesforce table.
type SalesforceTable struct {
	// REQUIRED
	TableCategory *string `json:"tableCategory,omitempty"`
	TableName     *string `json:"tableName,omitempty"`
	TableSchema   *string `json:"tableSchema,omitempty"`

	IsProfile    *string `json:"isProfile,omitempty"`
	TableRemarks *string `json:"tableRemarks,omitempty"`
}

// StrongID - Property/Properties which represent a unique ID.
type StrongID struct {
	// REQUIRED
	KeyPropertyNames []*string `json:"keyPropertyNames,omitempty"`
	StrongIDName     *string   `json:"strongIdName,omitempty"`

	Description map[string]*string `json:"description,omitempty"`
	DisplayName map[string]*string `json:"displayName,omitempty"`
}

// SuggestRelationshipLinksResponse - The response of suggest relationship links operation.
type SuggestRelationshipLinksResponse struct {
	// READ-ONLY
	InteractionName        *string                `json:"interactionName,omitempty"`
	SuggestedRelationships []*RelationshipsLookup `json:"suggestedRelationships,omitempty"`
}

// TypePropertiesMapping - Metadata for a Link's property mapping.
type TypePropertiesMapping struct {
	// REQUIRED
	SourcePropertyName *string `json:"sourcePropertyName,omitempty"`
	TargetPropertyName *string `json:"targetPropertyName,omitempty"`

	// Link type.
	LinkType *LinkTypes `json:"linkType,omitempty"`
}

// View - The view in Customer 360 web application.
type View struct {
	// REQUIRED; View definition.
	Definition *string `json:"definition,omitempty"`

	DisplayName map[string]*string `json:"displayName,omitempty"`

	// the user ID.
	UserID *string `json:"userId,omitempty"`

	// READ-ONLY
	Changed  *time.Time `json:"changed,omitempty"`
	Created  *time.Time `json:"created,omitempty"`
	TenantID *string    `json:"tenantId,omitempty"`
	ViewName *string    `json:"viewName,omitempty"`
}

// ViewListResult - The response of list view operation.
type ViewListResult struct {
	NextLink *string               `json:"nextLink,omitempty"`
	Value    []*ViewResourceFormat `json:"value,omitempty"`
}

// ViewResourceFormat - The view resource format.
type ViewResourceFormat struct {
	Properties *View `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// WidgetType - Definition of WidgetType.
type WidgetType struct {
	// REQUIRED; Definition for widget type.
	Definition *string `json:"definition,omitempty"`

	Description *string            `json:"description,omitempty"`
	DisplayName map[string]*string `json:"displayName,omitempty"`
	ImageURL    *string            `json:"imageUrl,omitempty"`
	TenantID    *string            `json:"tenantId,omitempty"`

	// The widget version.
	WidgetVersion *string `json:"widgetVersion,omitempty"`

	// READ-ONLY
	Changed        *time.Time `json:"changed,omitempty"`
	Created        *time.Time `json:"created,omitempty"`
	WidgetTypeName *string    `json:"widgetTypeName,omitempty"`
}

// WidgetTypeListResult - The response of list widget type operation.
type WidgetTypeListResult struct {
	NextLink *string                     `json:"nextLink,omitempty"`
	Value    []*WidgetTypeResourceFormat `json:"value,omitempty"`
}

// WidgetTypeResourceFormat - The WidgetTypeResourceFormat
type WidgetTypeResourceFormat struct {
	Properties *WidgetType `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}
