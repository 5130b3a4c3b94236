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

import "encoding/json"

// odataTypePrefix qualifies every @odata.type discriminator value.
const odataTypePrefix = "#Microsoft.Media."

func unmarshalClipTimeClassification(rawMsg json.RawMessage) (ClipTimeClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b ClipTimeClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "AbsoluteClipTime":
		b = &AbsoluteClipTime{}
	case odataTypePrefix + "UtcClipTime":
		b = &UtcClipTime{}
	default:
		b = &ClipTime{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalCodecClassification(rawMsg json.RawMessage) (CodecClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b CodecClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "AacAudio":
		b = &AacAudio{}
	case odataTypePrefix + "Audio":
		b = &Audio{}
	case odataTypePrefix + "CopyAudio":
		b = &CopyAudio{}
	case odataTypePrefix + "CopyVideo":
		b = &CopyVideo{}
	case odataTypePrefix + "H264Video":
		b = &H264Video{}
	case odataTypePrefix + "H265Video":
		b = &H265Video{}
	case odataTypePrefix + "Image":
		b = &Image{}
	case odataTypePrefix + "JpgImage":
		b = &JpgImage{}
	case odataTypePrefix + "PngImage":
		b = &PngImage{}
	case odataTypePrefix + "Video":
		b = &Video{}
	default:
		b = &Codec{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalCodecClassificationArray(rawMsg json.RawMessage) ([]CodecClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]CodecClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalCodecClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}

func unmarshalFormatClassification(rawMsg json.RawMessage) (FormatClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b FormatClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "ImageFormat":
		b = &ImageFormat{}
	case odataTypePrefix + "JpgFormat":
		b = &JpgFormat{}
	case odataTypePrefix + "Mp4Format":
		b = &Mp4Format{}
	case odataTypePrefix + "MultiBitrateFormat":
		b = &MultiBitrateFormat{}
	case odataTypePrefix + "PngFormat":
		b = &PngFormat{}
	case odataTypePrefix + "TransportStreamFormat":
		b = &TransportStreamFormat{}
	default:
		b = &Format{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalFormatClassificationArray(rawMsg json.RawMessage) ([]FormatClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]FormatClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalFormatClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}

func unmarshalInputDefinitionClassification(rawMsg json.RawMessage) (InputDefinitionClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b InputDefinitionClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "FromAllInputFile":
		b = &FromAllInputFile{}
	case odataTypePrefix + "FromEachInputFile":
		b = &FromEachInputFile{}
	case odataTypePrefix + "InputFile":
		b = &InputFile{}
	default:
		b = &InputDefinition{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalInputDefinitionClassificationArray(rawMsg json.RawMessage) ([]InputDefinitionClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]InputDefinitionClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalInputDefinitionClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}

func unmarshalJobInputClassification(rawMsg json.RawMessage) (JobInputClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b JobInputClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "JobInputAsset":
		b = &JobInputAsset{}
	case odataTypePrefix + "JobInputClip":
		b = &JobInputClip{}
	case odataTypePrefix + "JobInputHttp":
		b = &JobInputHTTP{}
	case odataTypePrefix + "JobInputSequence":
		b = &JobInputSequence{}
	case odataTypePrefix + "JobInputs":
		b = &JobInputs{}
	default:
		b = &JobInput{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalJobInputClassificationArray(rawMsg json.RawMessage) ([]JobInputClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]JobInputClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalJobInputClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}

func unmarshalJobOutputClassification(rawMsg json.RawMessage) (JobOutputClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b JobOutputClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "JobOutputAsset":
		b = &JobOutputAsset{}
	default:
		b = &JobOutput{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalJobOutputClassificationArray(rawMsg json.RawMessage) ([]JobOutputClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]JobOutputClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalJobOutputClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}

func unmarshalOverlayClassification(rawMsg json.RawMessage) (OverlayClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b OverlayClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "AudioOverlay":
		b = &AudioOverlay{}
	case odataTypePrefix + "VideoOverlay":
		b = &VideoOverlay{}
	default:
		b = &Overlay{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalOverlayClassificationArray(rawMsg json.RawMessage) ([]OverlayClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]OverlayClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalOverlayClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}

func unmarshalPresetClassification(rawMsg json.RawMessage) (PresetClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b PresetClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "AudioAnalyzerPreset":
		b = &AudioAnalyzerPreset{}
	case odataTypePrefix + "BuiltInStandardEncoderPreset":
		b = &BuiltInStandardEncoderPreset{}
	case odataTypePrefix + "FaceDetectorPreset":
		b = &FaceDetectorPreset{}
	case odataTypePrefix + "StandardEncoderPreset":
		b = &StandardEncoderPreset{}
	case odataTypePrefix + "VideoAnalyzerPreset":
		b = &VideoAnalyzerPreset{}
	default:
		b = &Preset{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalTrackDescriptorClassification(rawMsg json.RawMessage) (TrackDescriptorClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b TrackDescriptorClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "AudioTrackDescriptor":
		b = &AudioTrackDescriptor{}
	case odataTypePrefix + "SelectAudioTrackByAttribute":
		b = &SelectAudioTrackByAttribute{}
	case odataTypePrefix + "SelectAudioTrackById":
		b = &SelectAudioTrackByID{}
	case odataTypePrefix + "SelectVideoTrackByAttribute":
		b = &SelectVideoTrackByAttribute{}
	case odataTypePrefix + "SelectVideoTrackById":
		b = &SelectVideoTrackByID{}
	case odataTypePrefix + "VideoTrackDescriptor":
		b = &VideoTrackDescriptor{}
	default:
		b = &TrackDescriptor{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalTrackDescriptorClassificationArray(rawMsg json.RawMessage) ([]TrackDescriptorClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]TrackDescriptorClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalTrackDescriptorClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}

func unmarshalJobInputClipClassification(rawMsg json.RawMessage) (JobInputClipClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(rawMsg, &m); err != nil {
		return nil, err
	}
	var b JobInputClipClassification
	switch m["@odata.type"] {
	case odataTypePrefix + "JobInputClip":
		b = &JobInputClip{}
	case odataTypePrefix + "JobInputAsset":
		b = &JobInputAsset{}
	case odataTypePrefix + "JobInputHttp":
		b = &JobInputHTTP{}
	default:
		b = &JobInputClip{}
	}
	if err := json.Unmarshal(rawMsg, b); err != nil {
		return nil, err
	}
	return b, nil
}

func unmarshalJobInputClipClassificationArray(rawMsg json.RawMessage) ([]JobInputClipClassification, error) {
	if rawMsg == nil || string(rawMsg) == "null" {
		return nil, nil
	}
	var rawMessages []json.RawMessage
	if err := json.Unmarshal(rawMsg, &rawMessages); err != nil {
		return nil, err
	}
	fArray := make([]JobInputClipClassification, len(rawMessages))
	for index, rawMessage := range rawMessages {
		f, err := unmarshalJobInputClipClassification(rawMessage)
		if err != nil {
			return nil, err
		}
		fArray[index] = f
	}
	return fArray, nil
}
