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

import (
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

// MarshalJSON implements the json.Marshaller interface for type AacAudio.
func (a AacAudio) MarshalJSON() ([]byte, error) {
	type alias AacAudio
	a.ODataType = to.Ptr(odataTypePrefix + "AacAudio")
	return json.Marshal(alias(a))
}

// MarshalJSON implements the json.Marshaller interface for type AbsoluteClipTime.
func (a AbsoluteClipTime) MarshalJSON() ([]byte, error) {
	type alias AbsoluteClipTime
	a.ODataType = to.Ptr(odataTypePrefix + "AbsoluteClipTime")
	return json.Marshal(alias(a))
}

// MarshalJSON implements the json.Marshaller interface for type Audio.
func (a Audio) MarshalJSON() ([]byte, error) {
	type alias Audio
	a.ODataType = to.Ptr(odataTypePrefix + "Audio")
	return json.Marshal(alias(a))
}

// MarshalJSON implements the json.Marshaller interface for type AudioAnalyzerPreset.
func (a AudioAnalyzerPreset) MarshalJSON() ([]byte, error) {
	type alias AudioAnalyzerPreset
	a.ODataType = to.Ptr(odataTypePrefix + "AudioAnalyzerPreset")
	return json.Marshal(alias(a))
}

// MarshalJSON implements the json.Marshaller interface for type AudioOverlay.
func (a AudioOverlay) MarshalJSON() ([]byte, error) {
	type alias AudioOverlay
	a.ODataType = to.Ptr(odataTypePrefix + "AudioOverlay")
	return json.Marshal(alias(a))
}

// MarshalJSON implements the json.Marshaller interface for type AudioTrackDescriptor.
func (a AudioTrackDescriptor) MarshalJSON() ([]byte, error) {
	type alias AudioTrackDescriptor
	a.ODataType = to.Ptr(odataTypePrefix + "AudioTrackDescriptor")
	return json.Marshal(alias(a))
}

// MarshalJSON implements the json.Marshaller interface for type BuiltInStandardEncoderPreset.
func (b BuiltInStandardEncoderPreset) MarshalJSON() ([]byte, error) {
	type alias BuiltInStandardEncoderPreset
	b.ODataType = to.Ptr(odataTypePrefix + "BuiltInStandardEncoderPreset")
	return json.Marshal(alias(b))
}

// MarshalJSON implements the json.Marshaller interface for type CopyAudio.
func (c CopyAudio) MarshalJSON() ([]byte, error) {
	type alias CopyAudio
	c.ODataType = to.Ptr(odataTypePrefix + "CopyAudio")
	return json.Marshal(alias(c))
}

// MarshalJSON implements the json.Marshaller interface for type CopyVideo.
func (c CopyVideo) MarshalJSON() ([]byte, error) {
	type alias CopyVideo
	c.ODataType = to.Ptr(odataTypePrefix + "CopyVideo")
	return json.Marshal(alias(c))
}

// MarshalJSON implements the json.Marshaller interface for type FaceDetectorPreset.
func (f FaceDetectorPreset) MarshalJSON() ([]byte, error) {
	type alias FaceDetectorPreset
	f.ODataType = to.Ptr(odataTypePrefix + "FaceDetectorPreset")
	return json.Marshal(alias(f))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type Filters.
func (f *Filters) UnmarshalJSON(data []byte) error {
	type alias Filters
	aux := struct {
		*alias
		Overlays json.RawMessage `json:"overlays"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if f.Overlays, err = unmarshalOverlayClassificationArray(aux.Overlays); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type FromAllInputFile.
func (f FromAllInputFile) MarshalJSON() ([]byte, error) {
	type alias FromAllInputFile
	f.ODataType = to.Ptr(odataTypePrefix + "FromAllInputFile")
	return json.Marshal(alias(f))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type FromAllInputFile.
func (f *FromAllInputFile) UnmarshalJSON(data []byte) error {
	type alias FromAllInputFile
	aux := struct {
		*alias
		IncludedTracks json.RawMessage `json:"includedTracks"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if f.IncludedTracks, err = unmarshalTrackDescriptorClassificationArray(aux.IncludedTracks); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type FromEachInputFile.
func (f FromEachInputFile) MarshalJSON() ([]byte, error) {
	type alias FromEachInputFile
	f.ODataType = to.Ptr(odataTypePrefix + "FromEachInputFile")
	return json.Marshal(alias(f))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type FromEachInputFile.
func (f *FromEachInputFile) UnmarshalJSON(data []byte) error {
	type alias FromEachInputFile
	aux := struct {
		*alias
		IncludedTracks json.RawMessage `json:"includedTracks"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if f.IncludedTracks, err = unmarshalTrackDescriptorClassificationArray(aux.IncludedTracks); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type H264Video.
func (h H264Video) MarshalJSON() ([]byte, error) {
	type alias H264Video
	h.ODataType = to.Ptr(odataTypePrefix + "H264Video")
	return json.Marshal(alias(h))
}

// MarshalJSON implements the json.Marshaller interface for type H265Video.
func (h H265Video) MarshalJSON() ([]byte, error) {
	type alias H265Video
	h.ODataType = to.Ptr(odataTypePrefix + "H265Video")
	return json.Marshal(alias(h))
}

// MarshalJSON implements the json.Marshaller interface for type Image.
func (i Image) MarshalJSON() ([]byte, error) {
	type alias Image
	i.ODataType = to.Ptr(odataTypePrefix + "Image")
	return json.Marshal(alias(i))
}

// MarshalJSON implements the json.Marshaller interface for type ImageFormat.
func (i ImageFormat) MarshalJSON() ([]byte, error) {
	type alias ImageFormat
	i.ODataType = to.Ptr(odataTypePrefix + "ImageFormat")
	return json.Marshal(alias(i))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type InputDefinition.
func (i *InputDefinition) UnmarshalJSON(data []byte) error {
	type alias InputDefinition
	aux := struct {
		*alias
		IncludedTracks json.RawMessage `json:"includedTracks"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if i.IncludedTracks, err = unmarshalTrackDescriptorClassificationArray(aux.IncludedTracks); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type InputFile.
func (i InputFile) MarshalJSON() ([]byte, error) {
	type alias InputFile
	i.ODataType = to.Ptr(odataTypePrefix + "InputFile")
	return json.Marshal(alias(i))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type InputFile.
func (i *InputFile) UnmarshalJSON(data []byte) error {
	type alias InputFile
	aux := struct {
		*alias
		IncludedTracks json.RawMessage `json:"includedTracks"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if i.IncludedTracks, err = unmarshalTrackDescriptorClassificationArray(aux.IncludedTracks); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type JobInputAsset.
func (j JobInputAsset) MarshalJSON() ([]byte, error) {
	type alias JobInputAsset
	j.ODataType = to.Ptr(odataTypePrefix + "JobInputAsset")
	return json.Marshal(alias(j))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type JobInputAsset.
func (j *JobInputAsset) UnmarshalJSON(data []byte) error {
	type alias JobInputAsset
	aux := struct {
		*alias
		End              json.RawMessage `json:"end"`
		InputDefinitions json.RawMessage `json:"inputDefinitions"`
		Start            json.RawMessage `json:"start"`
	}{alias: (*alias)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if j.End, err = unmarshalClipTimeClassification(aux.End); err != nil {
		return err
	}
	if j.InputDefinitions, err = unmarshalInputDefinitionClassificationArray(aux.InputDefinitions); err != nil {
		return err
	}
	if j.Start, err = unmarshalClipTimeClassification(aux.Start); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type JobInputClip.
func (j JobInputClip) MarshalJSON() ([]byte, error) {
	type alias JobInputClip
	j.ODataType = to.Ptr(odataTypePrefix + "JobInputClip")
	return json.Marshal(alias(j))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type JobInputClip.
func (j *JobInputClip) UnmarshalJSON(data []byte) error {
	type alias JobInputClip
	aux := struct {
		*alias
		End              json.RawMessage `json:"end"`
		InputDefinitions json.RawMessage `json:"inputDefinitions"`
		Start            json.RawMessage `json:"start"`
	}{alias: (*alias)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if j.End, err = unmarshalClipTimeClassification(aux.End); err != nil {
		return err
	}
	if j.InputDefinitions, err = unmarshalInputDefinitionClassificationArray(aux.InputDefinitions); err != nil {
		return err
	}
	if j.Start, err = unmarshalClipTimeClassification(aux.Start); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type JobInputHTTP.
func (j JobInputHTTP) MarshalJSON() ([]byte, error) {
	type alias JobInputHTTP
	j.ODataType = to.Ptr(odataTypePrefix + "JobInputHttp")
	return json.Marshal(alias(j))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type JobInputHTTP.
func (j *JobInputHTTP) UnmarshalJSON(data []byte) error {
	type alias JobInputHTTP
	aux := struct {
		*alias
		End              json.RawMessage `json:"end"`
		InputDefinitions json.RawMessage `json:"inputDefinitions"`
		Start            json.RawMessage `json:"start"`
	}{alias: (*alias)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if j.End, err = unmarshalClipTimeClassification(aux.End); err != nil {
		return err
	}
	if j.InputDefinitions, err = unmarshalInputDefinitionClassificationArray(aux.InputDefinitions); err != nil {
		return err
	}
	if j.Start, err = unmarshalClipTimeClassification(aux.Start); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type JobInputSequence.
func (j JobInputSequence) MarshalJSON() ([]byte, error) {
	type alias JobInputSequence
	j.ODataType = to.Ptr(odataTypePrefix + "JobInputSequence")
	return json.Marshal(alias(j))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type JobInputSequence.
func (j *JobInputSequence) UnmarshalJSON(data []byte) error {
	type alias JobInputSequence
	aux := struct {
		*alias
		Inputs json.RawMessage `json:"inputs"`
	}{alias: (*alias)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if j.Inputs, err = unmarshalJobInputClipClassificationArray(aux.Inputs); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type JobInputs.
func (j JobInputs) MarshalJSON() ([]byte, error) {
	type alias JobInputs
	j.ODataType = to.Ptr(odataTypePrefix + "JobInputs")
	return json.Marshal(alias(j))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type JobInputs.
func (j *JobInputs) UnmarshalJSON(data []byte) error {
	type alias JobInputs
	aux := struct {
		*alias
		Inputs json.RawMessage `json:"inputs"`
	}{alias: (*alias)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if j.Inputs, err = unmarshalJobInputClassificationArray(aux.Inputs); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type JobOutputAsset.
func (j JobOutputAsset) MarshalJSON() ([]byte, error) {
	type alias JobOutputAsset
	j.ODataType = to.Ptr(odataTypePrefix + "JobOutputAsset")
	return json.Marshal(alias(j))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type JobProperties.
func (j *JobProperties) UnmarshalJSON(data []byte) error {
	type alias JobProperties
	aux := struct {
		*alias
		Input   json.RawMessage `json:"input"`
		Outputs json.RawMessage `json:"outputs"`
	}{alias: (*alias)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if j.Input, err = unmarshalJobInputClassification(aux.Input); err != nil {
		return err
	}
	if j.Outputs, err = unmarshalJobOutputClassificationArray(aux.Outputs); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type JpgFormat.
func (j JpgFormat) MarshalJSON() ([]byte, error) {
	type alias JpgFormat
	j.ODataType = to.Ptr(odataTypePrefix + "JpgFormat")
	return json.Marshal(alias(j))
}

// MarshalJSON implements the json.Marshaller interface for type JpgImage.
func (j JpgImage) MarshalJSON() ([]byte, error) {
	type alias JpgImage
	j.ODataType = to.Ptr(odataTypePrefix + "JpgImage")
	return json.Marshal(alias(j))
}

// MarshalJSON implements the json.Marshaller interface for type Mp4Format.
func (m Mp4Format) MarshalJSON() ([]byte, error) {
	type alias Mp4Format
	m.ODataType = to.Ptr(odataTypePrefix + "Mp4Format")
	return json.Marshal(alias(m))
}

// MarshalJSON implements the json.Marshaller interface for type MultiBitrateFormat.
func (m MultiBitrateFormat) MarshalJSON() ([]byte, error) {
	type alias MultiBitrateFormat
	m.ODataType = to.Ptr(odataTypePrefix + "MultiBitrateFormat")
	return json.Marshal(alias(m))
}

// MarshalJSON implements the json.Marshaller interface for type PngFormat.
func (p PngFormat) MarshalJSON() ([]byte, error) {
	type alias PngFormat
	p.ODataType = to.Ptr(odataTypePrefix + "PngFormat")
	return json.Marshal(alias(p))
}

// MarshalJSON implements the json.Marshaller interface for type PngImage.
func (p PngImage) MarshalJSON() ([]byte, error) {
	type alias PngImage
	p.ODataType = to.Ptr(odataTypePrefix + "PngImage")
	return json.Marshal(alias(p))
}

// MarshalJSON implements the json.Marshaller interface for type SelectAudioTrackByAttribute.
func (s SelectAudioTrackByAttribute) MarshalJSON() ([]byte, error) {
	type alias SelectAudioTrackByAttribute
	s.ODataType = to.Ptr(odataTypePrefix + "SelectAudioTrackByAttribute")
	return json.Marshal(alias(s))
}

// MarshalJSON implements the json.Marshaller interface for type SelectAudioTrackByID.
func (s SelectAudioTrackByID) MarshalJSON() ([]byte, error) {
	type alias SelectAudioTrackByID
	s.ODataType = to.Ptr(odataTypePrefix + "SelectAudioTrackById")
	return json.Marshal(alias(s))
}

// MarshalJSON implements the json.Marshaller interface for type SelectVideoTrackByAttribute.
func (s SelectVideoTrackByAttribute) MarshalJSON() ([]byte, error) {
	type alias SelectVideoTrackByAttribute
	s.ODataType = to.Ptr(odataTypePrefix + "SelectVideoTrackByAttribute")
	return json.Marshal(alias(s))
}

// MarshalJSON implements the json.Marshaller interface for type SelectVideoTrackByID.
func (s SelectVideoTrackByID) MarshalJSON() ([]byte, error) {
	type alias SelectVideoTrackByID
	s.ODataType = to.Ptr(odataTypePrefix + "SelectVideoTrackById")
	return json.Marshal(alias(s))
}

// MarshalJSON implements the json.Marshaller interface for type StandardEncoderPreset.
func (s StandardEncoderPreset) MarshalJSON() ([]byte, error) {
	type alias StandardEncoderPreset
	s.ODataType = to.Ptr(odataTypePrefix + "StandardEncoderPreset")
	return json.Marshal(alias(s))
}

// UnmarshalJSON implements the json.Unmarshaller interface for type StandardEncoderPreset.
func (s *StandardEncoderPreset) UnmarshalJSON(data []byte) error {
	type alias StandardEncoderPreset
	aux := struct {
		*alias
		Codecs  json.RawMessage `json:"codecs"`
		Formats json.RawMessage `json:"formats"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if s.Codecs, err = unmarshalCodecClassificationArray(aux.Codecs); err != nil {
		return err
	}
	if s.Formats, err = unmarshalFormatClassificationArray(aux.Formats); err != nil {
		return err
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaller interface for type TransformOutput.
func (t *TransformOutput) UnmarshalJSON(data []byte) error {
	type alias TransformOutput
	aux := struct {
		*alias
		Preset json.RawMessage `json:"preset"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if t.Preset, err = unmarshalPresetClassification(aux.Preset); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements the json.Marshaller interface for type TransportStreamFormat.
func (t TransportStreamFormat) MarshalJSON() ([]byte, error) {
	type alias TransportStreamFormat
	t.ODataType = to.Ptr(odataTypePrefix + "TransportStreamFormat")
	return json.Marshal(alias(t))
}

// MarshalJSON implements the json.Marshaller interface for type UtcClipTime.
func (u UtcClipTime) MarshalJSON() ([]byte, error) {
	type alias UtcClipTime
	u.ODataType = to.Ptr(odataTypePrefix + "UtcClipTime")
	return json.Marshal(alias(u))
}

// MarshalJSON implements the json.Marshaller interface for type Video.
func (v Video) MarshalJSON() ([]byte, error) {
	type alias Video
	v.ODataType = to.Ptr(odataTypePrefix + "Video")
	return json.Marshal(alias(v))
}

// MarshalJSON implements the json.Marshaller interface for type VideoAnalyzerPreset.
func (v VideoAnalyzerPreset) MarshalJSON() ([]byte, error) {
	type alias VideoAnalyzerPreset
	v.ODataType = to.Ptr(odataTypePrefix + "VideoAnalyzerPreset")
	return json.Marshal(alias(v))
}

// MarshalJSON implements the json.Marshaller interface for type VideoOverlay.
func (v VideoOverlay) MarshalJSON() ([]byte, error) {
	type alias VideoOverlay
	v.ODataType = to.Ptr(odataTypePrefix + "VideoOverlay")
	return json.Marshal(alias(v))
}

// MarshalJSON implements the json.Marshaller interface for type VideoTrackDescriptor.
func (v VideoTrackDescriptor) MarshalJSON() ([]byte, error) {
	type alias VideoTrackDescriptor
	v.ODataType = to.Ptr(odataTypePrefix + "VideoTrackDescriptor")
	return json.Marshal(alias(v))
}
