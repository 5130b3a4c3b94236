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

const (
	moduleName = "armmediaservices"
	apiVersion = "2021-05-01"
)

// AacAudioProfile - The encoding profile to be used when encoding audio with AAC.
type AacAudioProfile string

const (
	// AacAudioProfileAacLc - Specifies that the output audio is to be encoded into AAC Low Complexity profile (AAC-LC).
	AacAudioProfileAacLc AacAudioProfile = "AacLc"
	// AacAudioProfileHeAacV1 - Specifies that the output audio is to be encoded into HE-AAC v1 profile.
	AacAudioProfileHeAacV1 AacAudioProfile = "HeAacV1"
	// AacAudioProfileHeAacV2 - Specifies that the output audio is to be encoded into HE-AAC v2 profile.
	AacAudioProfileHeAacV2 AacAudioProfile = "HeAacV2"
)

// PossibleAacAudioProfileValues returns the possible values for the AacAudioProfile const type.
func PossibleAacAudioProfileValues() []AacAudioProfile {
	return []AacAudioProfile{
		AacAudioProfileAacLc,
		AacAudioProfileHeAacV1,
		AacAudioProfileHeAacV2,
	}
}

// AccountEncryptionKeyType - The type of key used to encrypt the Account Key.
type AccountEncryptionKeyType string

const (
	// AccountEncryptionKeyTypeCustomerKey - The Account Key is encrypted with a Customer Key.
	AccountEncryptionKeyTypeCustomerKey AccountEncryptionKeyType = "CustomerKey"
	// AccountEncryptionKeyTypeSystemKey - The Account Key is encrypted with a System Key.
	AccountEncryptionKeyTypeSystemKey AccountEncryptionKeyType = "SystemKey"
)

// PossibleAccountEncryptionKeyTypeValues returns the possible values for the AccountEncryptionKeyType const type.
func PossibleAccountEncryptionKeyTypeValues() []AccountEncryptionKeyType {
	return []AccountEncryptionKeyType{
		AccountEncryptionKeyTypeCustomerKey,
		AccountEncryptionKeyTypeSystemKey,
	}
}

// ActionType - Indicates the action type.
type ActionType string

const (
	// ActionTypeInternal - An internal action.
	ActionTypeInternal ActionType = "Internal"
)

// PossibleActionTypeValues returns the possible values for the ActionType const type.
func PossibleActionTypeValues() []ActionType {
	return []ActionType{
		ActionTypeInternal,
	}
}

// AnalysisResolution - Specifies the maximum resolution at which your video is analyzed.
type AnalysisResolution string

const (
	AnalysisResolutionSourceResolution   AnalysisResolution = "SourceResolution"
	AnalysisResolutionStandardDefinition AnalysisResolution = "StandardDefinition"
)

// PossibleAnalysisResolutionValues returns the possible values for the AnalysisResolution const type.
func PossibleAnalysisResolutionValues() []AnalysisResolution {
	return []AnalysisResolution{
		AnalysisResolutionSourceResolution,
		AnalysisResolutionStandardDefinition,
	}
}

// AssetContainerPermission - The permissions to set on the SAS URL.
type AssetContainerPermission string

const (
	// AssetContainerPermissionRead - The SAS URL will allow read access to the container.
	AssetContainerPermissionRead AssetContainerPermission = "Read"
	// AssetContainerPermissionReadWrite - The SAS URL will allow read and write access to the container.
	AssetContainerPermissionReadWrite AssetContainerPermission = "ReadWrite"
	// AssetContainerPermissionReadWriteDelete - The SAS URL will allow read, write and delete access to the container.
	AssetContainerPermissionReadWriteDelete AssetContainerPermission = "ReadWriteDelete"
)

// PossibleAssetContainerPermissionValues returns the possible values for the AssetContainerPermission const type.
func PossibleAssetContainerPermissionValues() []AssetContainerPermission {
	return []AssetContainerPermission{
		AssetContainerPermissionRead,
		AssetContainerPermissionReadWrite,
		AssetContainerPermissionReadWriteDelete,
	}
}

// AssetStorageEncryptionFormat - The Asset encryption format. One of None or MediaStorageEncryption.
type AssetStorageEncryptionFormat string

const (
	// AssetStorageEncryptionFormatMediaStorageClientEncryption - The Asset is encrypted with Media Services client-side encryption.
	AssetStorageEncryptionFormatMediaStorageClientEncryption AssetStorageEncryptionFormat = "MediaStorageClientEncryption"
	// AssetStorageEncryptionFormatNone - The Asset does not use client-side storage encryption (this is the only allowed value for new Assets).
	AssetStorageEncryptionFormatNone AssetStorageEncryptionFormat = "None"
)

// PossibleAssetStorageEncryptionFormatValues returns the possible values for the AssetStorageEncryptionFormat const type.
func PossibleAssetStorageEncryptionFormatValues() []AssetStorageEncryptionFormat {
	return []AssetStorageEncryptionFormat{
		AssetStorageEncryptionFormatMediaStorageClientEncryption,
		AssetStorageEncryptionFormatNone,
	}
}

// AttributeFilter - The type of AttributeFilter to apply to the TrackAttribute in order to select the tracks.
type AttributeFilter string

const (
	// AttributeFilterAll - All tracks will be included.
	AttributeFilterAll AttributeFilter = "All"
	// AttributeFilterBottom - The first track will be included when the attribute is sorted in ascending order.
	AttributeFilterBottom AttributeFilter = "Bottom"
	// AttributeFilterTop - The first track will be included when the attribute is sorted in descending order.
	AttributeFilterTop AttributeFilter = "Top"
	// AttributeFilterValueEquals - Any tracks that have an attribute equal to the value given will be included.
	AttributeFilterValueEquals AttributeFilter = "ValueEquals"
)

// PossibleAttributeFilterValues returns the possible values for the AttributeFilter const type.
func PossibleAttributeFilterValues() []AttributeFilter {
	return []AttributeFilter{
		AttributeFilterAll,
		AttributeFilterBottom,
		AttributeFilterTop,
		AttributeFilterValueEquals,
	}
}

// AudioAnalysisMode - Determines the set of audio analysis operations to be performed.
type AudioAnalysisMode string

const (
	// AudioAnalysisModeBasic - This mode performs speech-to-text transcription and generation of a VTT subtitle/caption file.
	AudioAnalysisModeBasic AudioAnalysisMode = "Basic"
	// AudioAnalysisModeStandard - Performs all operations included in the Basic mode, additionally performing language detection and speaker diarization.
	AudioAnalysisModeStandard AudioAnalysisMode = "Standard"
)

// PossibleAudioAnalysisModeValues returns the possible values for the AudioAnalysisMode const type.
func PossibleAudioAnalysisModeValues() []AudioAnalysisMode {
	return []AudioAnalysisMode{
		AudioAnalysisModeBasic,
		AudioAnalysisModeStandard,
	}
}

// BlurType - Blur type
type BlurType string

const (
	// BlurTypeBlack - Black: Black out filter
	BlurTypeBlack BlurType = "Black"
	// BlurTypeBox - Box: debug filter, bounding box only
	BlurTypeBox BlurType = "Box"
	// BlurTypeHigh - High: Confuse blur filter
	BlurTypeHigh BlurType = "High"
	// BlurTypeLow - Low: box-car blur filter
	BlurTypeLow BlurType = "Low"
	// BlurTypeMed - Med: Gaussian blur filter
	BlurTypeMed BlurType = "Med"
)

// PossibleBlurTypeValues returns the possible values for the BlurType const type.
func PossibleBlurTypeValues() []BlurType {
	return []BlurType{
		BlurTypeBlack,
		BlurTypeBox,
		BlurTypeHigh,
		BlurTypeLow,
		BlurTypeMed,
	}
}

// ChannelMapping - Optional designation for single channel audio tracks.
type ChannelMapping string

const (
	// ChannelMappingBackLeft - The Back Left Channel.
	ChannelMappingBackLeft ChannelMapping = "BackLeft"
	// ChannelMappingBackRight - The Back Right Channel.
	ChannelMappingBackRight ChannelMapping = "BackRight"
	// ChannelMappingCenter - The Center Channel.
	ChannelMappingCenter ChannelMapping = "Center"
	// ChannelMappingFrontLeft - The Front Left Channel.
	ChannelMappingFrontLeft ChannelMapping = "FrontLeft"
	// ChannelMappingFrontRight - The Front Right Channel.
	ChannelMappingFrontRight ChannelMapping = "FrontRight"
	// ChannelMappingLowFrequencyEffects - Low Frequency Effects Channel.
	ChannelMappingLowFrequencyEffects ChannelMapping = "LowFrequencyEffects"
	// ChannelMappingStereoLeft - The Left Stereo channel.
	ChannelMappingStereoLeft ChannelMapping = "StereoLeft"
	// ChannelMappingStereoRight - The Right Stereo channel.
	ChannelMappingStereoRight ChannelMapping = "StereoRight"
)

// PossibleChannelMappingValues returns the possible values for the ChannelMapping const type.
func PossibleChannelMappingValues() []ChannelMapping {
	return []ChannelMapping{
		ChannelMappingBackLeft,
		ChannelMappingBackRight,
		ChannelMappingCenter,
		ChannelMappingFrontLeft,
		ChannelMappingFrontRight,
		ChannelMappingLowFrequencyEffects,
		ChannelMappingStereoLeft,
		ChannelMappingStereoRight,
	}
}

// DefaultAction - The behavior for IP access control in Key Delivery.
type DefaultAction string

const (
	// DefaultActionAllow - All public IP addresses are allowed.
	DefaultActionAllow DefaultAction = "Allow"
	// DefaultActionDeny - Public IP addresses are blocked.
	DefaultActionDeny DefaultAction = "Deny"
)

// PossibleDefaultActionValues returns the possible values for the DefaultAction const type.
func PossibleDefaultActionValues() []DefaultAction {
	return []DefaultAction{
		DefaultActionAllow,
		DefaultActionDeny,
	}
}

// DeinterlaceMode - The deinterlacing mode.
type DeinterlaceMode string

const (
	// DeinterlaceModeAutoPixelAdaptive - Apply automatic pixel adaptive de-interlacing on each frame in the input video.
	DeinterlaceModeAutoPixelAdaptive DeinterlaceMode = "AutoPixelAdaptive"
	// DeinterlaceModeOff - Disables de-interlacing of the source video.
	DeinterlaceModeOff DeinterlaceMode = "Off"
)

// PossibleDeinterlaceModeValues returns the possible values for the DeinterlaceMode const type.
func PossibleDeinterlaceModeValues() []DeinterlaceMode {
	return []DeinterlaceMode{
		DeinterlaceModeAutoPixelAdaptive,
		DeinterlaceModeOff,
	}
}

// DeinterlaceParity - The field parity for de-interlacing.
type DeinterlaceParity string

const (
	// DeinterlaceParityAuto - Automatically detect the order of fields
	DeinterlaceParityAuto DeinterlaceParity = "Auto"
	// DeinterlaceParityBottomFieldFirst - Apply bottom field first processing of input video.
	DeinterlaceParityBottomFieldFirst DeinterlaceParity = "BottomFieldFirst"
	// DeinterlaceParityTopFieldFirst - Apply top field first processing of input video.
	DeinterlaceParityTopFieldFirst DeinterlaceParity = "TopFieldFirst"
)

// PossibleDeinterlaceParityValues returns the possible values for the DeinterlaceParity const type.
func PossibleDeinterlaceParityValues() []DeinterlaceParity {
	return []DeinterlaceParity{
		DeinterlaceParityAuto,
		DeinterlaceParityBottomFieldFirst,
		DeinterlaceParityTopFieldFirst,
	}
}

// EncoderNamedPreset - The built-in preset to be used for encoding videos.
type EncoderNamedPreset string

const (
	EncoderNamedPresetAACGoodQualityAudio              EncoderNamedPreset = "AACGoodQualityAudio"
	EncoderNamedPresetAdaptiveStreaming                EncoderNamedPreset = "AdaptiveStreaming"
	EncoderNamedPresetContentAwareEncoding             EncoderNamedPreset = "ContentAwareEncoding"
	EncoderNamedPresetContentAwareEncodingExperimental EncoderNamedPreset = "ContentAwareEncodingExperimental"
	EncoderNamedPresetCopyAllBitrateNonInterleaved     EncoderNamedPreset = "CopyAllBitrateNonInterleaved"
	EncoderNamedPresetH264MultipleBitrate1080p         EncoderNamedPreset = "H264MultipleBitrate1080p"
	EncoderNamedPresetH264MultipleBitrate720p          EncoderNamedPreset = "H264MultipleBitrate720p"
	EncoderNamedPresetH264MultipleBitrateSD            EncoderNamedPreset = "H264MultipleBitrateSD"
	EncoderNamedPresetH264SingleBitrate1080p           EncoderNamedPreset = "H264SingleBitrate1080p"
	EncoderNamedPresetH264SingleBitrate720p            EncoderNamedPreset = "H264SingleBitrate720p"
	EncoderNamedPresetH264SingleBitrateSD              EncoderNamedPreset = "H264SingleBitrateSD"
	EncoderNamedPresetH265AdaptiveStreaming            EncoderNamedPreset = "H265AdaptiveStreaming"
	EncoderNamedPresetH265ContentAwareEncoding         EncoderNamedPreset = "H265ContentAwareEncoding"
	EncoderNamedPresetH265SingleBitrate1080p           EncoderNamedPreset = "H265SingleBitrate1080p"
	EncoderNamedPresetH265SingleBitrate4K              EncoderNamedPreset = "H265SingleBitrate4K"
	EncoderNamedPresetH265SingleBitrate720p            EncoderNamedPreset = "H265SingleBitrate720p"
)

// PossibleEncoderNamedPresetValues returns the possible values for the EncoderNamedPreset const type.
func PossibleEncoderNamedPresetValues() []EncoderNamedPreset {
	return []EncoderNamedPreset{
		EncoderNamedPresetAACGoodQualityAudio,
		EncoderNamedPresetAdaptiveStreaming,
		EncoderNamedPresetContentAwareEncoding,
		EncoderNamedPresetContentAwareEncodingExperimental,
		EncoderNamedPresetCopyAllBitrateNonInterleaved,
		EncoderNamedPresetH264MultipleBitrate1080p,
		EncoderNamedPresetH264MultipleBitrate720p,
		EncoderNamedPresetH264MultipleBitrateSD,
		EncoderNamedPresetH264SingleBitrate1080p,
		EncoderNamedPresetH264SingleBitrate720p,
		EncoderNamedPresetH264SingleBitrateSD,
		EncoderNamedPresetH265AdaptiveStreaming,
		EncoderNamedPresetH265ContentAwareEncoding,
		EncoderNamedPresetH265SingleBitrate1080p,
		EncoderNamedPresetH265SingleBitrate4K,
		EncoderNamedPresetH265SingleBitrate720p,
	}
}

// EntropyMode - The entropy mode to be used for this layer.
type EntropyMode string

const (
	// EntropyModeCabac - Context Adaptive Binary Arithmetic Coder (CABAC) entropy encoding.
	EntropyModeCabac EntropyMode = "Cabac"
	// EntropyModeCavlc - Context Adaptive Variable Length Coder (CAVLC) entropy encoding.
	EntropyModeCavlc EntropyMode = "Cavlc"
)

// PossibleEntropyModeValues returns the possible values for the EntropyMode const type.
func PossibleEntropyModeValues() []EntropyMode {
	return []EntropyMode{
		EntropyModeCabac,
		EntropyModeCavlc,
	}
}

// FaceRedactorMode - This mode provides the ability to choose between the following settings: Analyze, Combined or Redact.
type FaceRedactorMode string

const (
	// FaceRedactorModeAnalyze - Analyze mode detects faces and outputs a metadata file with the results.
	FaceRedactorModeAnalyze FaceRedactorMode = "Analyze"
	// FaceRedactorModeCombined - Combined mode does the Analyze and Redact steps in one pass when editing the analyzed faces is not desired.
	FaceRedactorModeCombined FaceRedactorMode = "Combined"
	// FaceRedactorModeRedact - Redact mode consumes the metadata file from Analyze mode and redacts the found faces.
	FaceRedactorModeRedact FaceRedactorMode = "Redact"
)

// PossibleFaceRedactorModeValues returns the possible values for the FaceRedactorMode const type.
func PossibleFaceRedactorModeValues() []FaceRedactorMode {
	return []FaceRedactorMode{
		FaceRedactorModeAnalyze,
		FaceRedactorModeCombined,
		FaceRedactorModeRedact,
	}
}

// H264Complexity - Tells the encoder how to choose its encoding settings.
type H264Complexity string

const (
	// H264ComplexityBalanced - Tells the encoder to use settings that achieve a balance between speed and quality.
	H264ComplexityBalanced H264Complexity = "Balanced"
	// H264ComplexityQuality - Tells the encoder to use settings that are optimized to produce higher quality output at the expense of slower overall encode time.
	H264ComplexityQuality H264Complexity = "Quality"
	// H264ComplexitySpeed - Tells the encoder to use settings that are optimized for faster encoding.
	H264ComplexitySpeed H264Complexity = "Speed"
)

// PossibleH264ComplexityValues returns the possible values for the H264Complexity const type.
func PossibleH264ComplexityValues() []H264Complexity {
	return []H264Complexity{
		H264ComplexityBalanced,
		H264ComplexityQuality,
		H264ComplexitySpeed,
	}
}

// H264VideoProfile - Which profile of the H.264 standard should be used when encoding this layer.
type H264VideoProfile string

const (
	// H264VideoProfileAuto - Tells the encoder to automatically determine the appropriate H.264 profile.
	H264VideoProfileAuto H264VideoProfile = "Auto"
	// H264VideoProfileBaseline - Baseline profile
	H264VideoProfileBaseline H264VideoProfile = "Baseline"
	// H264VideoProfileHigh - High profile.
	H264VideoProfileHigh H264VideoProfile = "High"
	// H264VideoProfileHigh422 - High 4:2:2 profile.
	H264VideoProfileHigh422 H264VideoProfile = "High422"
	// H264VideoProfileHigh444 - High 4:4:4 predictive profile.
	H264VideoProfileHigh444 H264VideoProfile = "High444"
	// H264VideoProfileMain - Main profile
	H264VideoProfileMain H264VideoProfile = "Main"
)

// PossibleH264VideoProfileValues returns the possible values for the H264VideoProfile const type.
func PossibleH264VideoProfileValues() []H264VideoProfile {
	return []H264VideoProfile{
		H264VideoProfileAuto,
		H264VideoProfileBaseline,
		H264VideoProfileHigh,
		H264VideoProfileHigh422,
		H264VideoProfileHigh444,
		H264VideoProfileMain,
	}
}

// H265Complexity - Tells the encoder how to choose its encoding settings.
type H265Complexity string

const (
	// H265ComplexityBalanced - Tells the encoder to use settings that achieve a balance between speed and quality.
	H265ComplexityBalanced H265Complexity = "Balanced"
	// H265ComplexityQuality - Tells the encoder to use settings that are optimized to produce higher quality output at the expense of slower overall encode time.
	H265ComplexityQuality H265Complexity = "Quality"
	// H265ComplexitySpeed - Tells the encoder to use settings that are optimized for faster encoding.
	H265ComplexitySpeed H265Complexity = "Speed"
)

// PossibleH265ComplexityValues returns the possible values for the H265Complexity const type.
func PossibleH265ComplexityValues() []H265Complexity {
	return []H265Complexity{
		H265ComplexityBalanced,
		H265ComplexityQuality,
		H265ComplexitySpeed,
	}
}

// H265VideoProfile - Which profile of the H.265 standard should be used when encoding this layer.
type H265VideoProfile string

const (
	// H265VideoProfileAuto - Tells the encoder to automatically determine the appropriate H.265 profile.
	H265VideoProfileAuto H265VideoProfile = "Auto"
	// H265VideoProfileMain - Main profile
	H265VideoProfileMain H265VideoProfile = "Main"
)

// PossibleH265VideoProfileValues returns the possible values for the H265VideoProfile const type.
func PossibleH265VideoProfileValues() []H265VideoProfile {
	return []H265VideoProfile{
		H265VideoProfileAuto,
		H265VideoProfileMain,
	}
}

// InsightsType - Defines the type of insights that you want the service to generate.
type InsightsType string

const (
	// InsightsTypeAllInsights - Generate both audio and video insights.
	InsightsTypeAllInsights InsightsType = "AllInsights"
	// InsightsTypeAudioInsightsOnly - Generate audio only insights. Ignore video even if present.
	InsightsTypeAudioInsightsOnly InsightsType = "AudioInsightsOnly"
	// InsightsTypeVideoInsightsOnly - Generate video only insights. Ignore audio if present.
	InsightsTypeVideoInsightsOnly InsightsType = "VideoInsightsOnly"
)

// PossibleInsightsTypeValues returns the possible values for the InsightsType const type.
func PossibleInsightsTypeValues() []InsightsType {
	return []InsightsType{
		InsightsTypeAllInsights,
		InsightsTypeAudioInsightsOnly,
		InsightsTypeVideoInsightsOnly,
	}
}

// JobErrorCategory - Helps with categorization of errors.
type JobErrorCategory string

const (
	// JobErrorCategoryConfiguration - The error is configuration related.
	JobErrorCategoryConfiguration JobErrorCategory = "Configuration"
	// JobErrorCategoryContent - The error is related to data in the input files.
	JobErrorCategoryContent JobErrorCategory = "Content"
	// JobErrorCategoryDownload - The error is download related.
	JobErrorCategoryDownload JobErrorCategory = "Download"
	// JobErrorCategoryService - The error is service related.
	JobErrorCategoryService JobErrorCategory = "Service"
	// JobErrorCategoryUpload - The error is upload related.
	JobErrorCategoryUpload JobErrorCategory = "Upload"
)

// PossibleJobErrorCategoryValues returns the possible values for the JobErrorCategory const type.
func PossibleJobErrorCategoryValues() []JobErrorCategory {
	return []JobErrorCategory{
		JobErrorCategoryConfiguration,
		JobErrorCategoryContent,
		JobErrorCategoryDownload,
		JobErrorCategoryService,
		JobErrorCategoryUpload,
	}
}

// JobErrorCode - Error code describing the error.
type JobErrorCode string

const (
	JobErrorCodeConfigurationUnsupported JobErrorCode = "ConfigurationUnsupported"
	JobErrorCodeContentMalformed         JobErrorCode = "ContentMalformed"
	JobErrorCodeContentUnsupported       JobErrorCode = "ContentUnsupported"
	JobErrorCodeDownloadNotAccessible    JobErrorCode = "DownloadNotAccessible"
	JobErrorCodeDownloadTransientError   JobErrorCode = "DownloadTransientError"
	JobErrorCodeServiceError             JobErrorCode = "ServiceError"
	JobErrorCodeServiceTransientError    JobErrorCode = "ServiceTransientError"
	JobErrorCodeUploadNotAccessible      JobErrorCode = "UploadNotAccessible"
	JobErrorCodeUploadTransientError     JobErrorCode = "UploadTransientError"
)

// PossibleJobErrorCodeValues returns the possible values for the JobErrorCode const type.
func PossibleJobErrorCodeValues() []JobErrorCode {
	return []JobErrorCode{
		JobErrorCodeConfigurationUnsupported,
		JobErrorCodeContentMalformed,
		JobErrorCodeContentUnsupported,
		JobErrorCodeDownloadNotAccessible,
		JobErrorCodeDownloadTransientError,
		JobErrorCodeServiceError,
		JobErrorCodeServiceTransientError,
		JobErrorCodeUploadNotAccessible,
		JobErrorCodeUploadTransientError,
	}
}

// JobRetry - Indicates that it may be possible to retry the Job.
type JobRetry string

const (
	// JobRetryDoNotRetry - Issue needs to be investigated and then the job resubmitted with corrections or retried once the underlying issue has been corrected.
	JobRetryDoNotRetry JobRetry = "DoNotRetry"
	// JobRetryMayRetry - Issue may be resolved after waiting for a period of time and resubmitting the same Job.
	JobRetryMayRetry JobRetry = "MayRetry"
)

// PossibleJobRetryValues returns the possible values for the JobRetry const type.
func PossibleJobRetryValues() []JobRetry {
	return []JobRetry{
		JobRetryDoNotRetry,
		JobRetryMayRetry,
	}
}

// JobState - Describes the state of the JobOutput.
type JobState string

const (
	// JobStateCanceled - The job was canceled. This is a final state for the job.
	JobStateCanceled JobState = "Canceled"
	// JobStateCanceling - The job is in the process of being canceled.
	JobStateCanceling JobState = "Canceling"
	// JobStateError - The job has encountered an error. This is a final state for the job.
	JobStateError JobState = "Error"
	// JobStateFinished - The job is finished. This is a final state for the job.
	JobStateFinished JobState = "Finished"
	// JobStateProcessing - The job is processing.
	JobStateProcessing JobState = "Processing"
	// JobStateQueued - The job is in a queued state, waiting for resources to become available.
	JobStateQueued JobState = "Queued"
	// JobStateScheduled - The job is being scheduled to run on an available resource.
	JobStateScheduled JobState = "Scheduled"
)

// PossibleJobStateValues returns the possible values for the JobState const type.
func PossibleJobStateValues() []JobState {
	return []JobState{
		JobStateCanceled,
		JobStateCanceling,
		JobStateError,
		JobStateFinished,
		JobStateProcessing,
		JobStateQueued,
		JobStateScheduled,
	}
}

// ManagedIdentityType - The identity type.
type ManagedIdentityType string

const (
	// ManagedIdentityTypeNone - No managed identity.
	ManagedIdentityTypeNone ManagedIdentityType = "None"
	// ManagedIdentityTypeSystemAssigned - A system-assigned managed identity.
	ManagedIdentityTypeSystemAssigned ManagedIdentityType = "SystemAssigned"
)

// PossibleManagedIdentityTypeValues returns the possible values for the ManagedIdentityType const type.
func PossibleManagedIdentityTypeValues() []ManagedIdentityType {
	return []ManagedIdentityType{
		ManagedIdentityTypeNone,
		ManagedIdentityTypeSystemAssigned,
	}
}

// OnErrorType - A Transform can define more than one outputs. This property defines what the service should do when one output fails.
type OnErrorType string

const (
	// OnErrorTypeContinueJob - Tells the service that if this TransformOutput fails, then allow any other TransformOutput to continue.
	OnErrorTypeContinueJob OnErrorType = "ContinueJob"
	// OnErrorTypeStopProcessingJob - Tells the service that if this TransformOutput fails, then any other incomplete TransformOutputs can be stopped.
	OnErrorTypeStopProcessingJob OnErrorType = "StopProcessingJob"
)

// PossibleOnErrorTypeValues returns the possible values for the OnErrorType const type.
func PossibleOnErrorTypeValues() []OnErrorType {
	return []OnErrorType{
		OnErrorTypeContinueJob,
		OnErrorTypeStopProcessingJob,
	}
}

// Priority - Sets the relative priority of the TransformOutputs within a Transform.
type Priority string

const (
	// PriorityHigh - Used for TransformOutputs that should take precedence over others.
	PriorityHigh Priority = "High"
	// PriorityLow - Used for TransformOutputs that can be generated after Normal and High priority TransformOutputs.
	PriorityLow Priority = "Low"
	// PriorityNormal - Used for TransformOutputs that can be generated at Normal priority.
	PriorityNormal Priority = "Normal"
)

// PossiblePriorityValues returns the possible values for the Priority const type.
func PossiblePriorityValues() []Priority {
	return []Priority{
		PriorityHigh,
		PriorityLow,
		PriorityNormal,
	}
}

// Rotation - The rotation, if any, to be applied to the input video, before it is encoded.
type Rotation string

const (
	// RotationAuto - Automatically detect and rotate as needed.
	RotationAuto Rotation = "Auto"
	// RotationNone - Do not rotate the video.
	RotationNone Rotation = "None"
	// RotationRotate0 - Rotate 0 degrees clockwise.
	RotationRotate0 Rotation = "Rotate0"
	// RotationRotate180 - Rotate 180 degrees clockwise.
	RotationRotate180 Rotation = "Rotate180"
	// RotationRotate270 - Rotate 270 degrees clockwise.
	RotationRotate270 Rotation = "Rotate270"
	// RotationRotate90 - Rotate 90 degrees clockwise.
	RotationRotate90 Rotation = "Rotate90"
)

// PossibleRotationValues returns the possible values for the Rotation const type.
func PossibleRotationValues() []Rotation {
	return []Rotation{
		RotationAuto,
		RotationNone,
		RotationRotate0,
		RotationRotate180,
		RotationRotate270,
		RotationRotate90,
	}
}

// StorageAccountType - The type of the storage account.
type StorageAccountType string

const (
	// StorageAccountTypePrimary - The primary storage account for the Media Services account.
	StorageAccountTypePrimary StorageAccountType = "Primary"
	// StorageAccountTypeSecondary - A secondary storage account for the Media Services account.
	StorageAccountTypeSecondary StorageAccountType = "Secondary"
)

// PossibleStorageAccountTypeValues returns the possible values for the StorageAccountType const type.
func PossibleStorageAccountTypeValues() []StorageAccountType {
	return []StorageAccountType{
		StorageAccountTypePrimary,
		StorageAccountTypeSecondary,
	}
}

// StorageAuthentication
type StorageAuthentication string

const (
	// StorageAuthenticationManagedIdentity - Managed Identity authentication.
	StorageAuthenticationManagedIdentity StorageAuthentication = "ManagedIdentity"
	// StorageAuthenticationSystem - System authentication.
	StorageAuthenticationSystem StorageAuthentication = "System"
)

// PossibleStorageAuthenticationValues returns the possible values for the StorageAuthentication const type.
func PossibleStorageAuthenticationValues() []StorageAuthentication {
	return []StorageAuthentication{
		StorageAuthenticationManagedIdentity,
		StorageAuthenticationSystem,
	}
}

// StretchMode - The resizing mode - how the input video will be resized to fit the desired output resolution(s).
type StretchMode string

const (
	// StretchModeAutoFit - Pad the output (with either letterbox or pillar box) to honor the output resolution.
	StretchModeAutoFit StretchMode = "AutoFit"
	// StretchModeAutoSize - Override the output resolution, and change it to match the display aspect ratio of the input, without padding.
	StretchModeAutoSize StretchMode = "AutoSize"
	// StretchModeNone - Strictly respect the output resolution without considering the pixel aspect ratio or display aspect ratio of the input video.
	StretchModeNone StretchMode = "None"
)

// PossibleStretchModeValues returns the possible values for the StretchMode const type.
func PossibleStretchModeValues() []StretchMode {
	return []StretchMode{
		StretchModeAutoFit,
		StretchModeAutoSize,
		StretchModeNone,
	}
}

// TrackAttribute - The TrackAttribute to filter the tracks by.
type TrackAttribute string

const (
	// TrackAttributeBitrate - The bitrate of the track.
	TrackAttributeBitrate TrackAttribute = "Bitrate"
	// TrackAttributeLanguage - The language of the track.
	TrackAttributeLanguage TrackAttribute = "Language"
)

// PossibleTrackAttributeValues returns the possible values for the TrackAttribute const type.
func PossibleTrackAttributeValues() []TrackAttribute {
	return []TrackAttribute{
		TrackAttributeBitrate,
		TrackAttributeLanguage,
	}
}

// VideoSyncMode - The Video Sync Mode
type VideoSyncMode string

const (
	// VideoSyncModeAuto - This is the default method.
	VideoSyncModeAuto VideoSyncMode = "Auto"
	// VideoSyncModeCfr - Input frames will be repeated and/or dropped as needed to achieve exactly the requested constant frame rate.
	VideoSyncModeCfr VideoSyncMode = "Cfr"
	// VideoSyncModePassthrough - The presentation timestamps on frames are passed through from the input file to the output file writer.
	VideoSyncModePassthrough VideoSyncMode = "Passthrough"
	// VideoSyncModeVfr - Similar to the Passthrough mode, but if the input has frames that have duplicate timestamps, then only one frame is passed through to the output.
	VideoSyncModeVfr VideoSyncMode = "Vfr"
)

// PossibleVideoSyncModeValues returns the possible values for the VideoSyncMode const type.
func PossibleVideoSyncModeValues() []VideoSyncMode {
	return []VideoSyncMode{
		VideoSyncModeAuto,
		VideoSyncModeCfr,
		VideoSyncModePassthrough,
		VideoSyncModeVfr,
	}
}
