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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

func adaptiveStreamingTransform() Transform {
	return Transform{
		Properties: &TransformProperties{
			Description: to.Ptr("adaptive bitrate ladder with thumbnails"),
			Outputs: []*TransformOutput{
				{
					OnError:          to.Ptr(OnErrorTypeStopProcessingJob),
					RelativePriority: to.Ptr(PriorityNormal),
					Preset: &StandardEncoderPreset{
						Codecs: []CodecClassification{
							&AacAudio{
								Channels:     to.Ptr[int32](2),
								SamplingRate: to.Ptr[int32](48000),
								Bitrate:      to.Ptr[int32](128000),
								Profile:      to.Ptr(AacAudioProfileAacLc),
							},
							&H264Video{
								KeyFrameInterval: to.Ptr("PT2S"),
								Layers: []*H264Layer{
									{Bitrate: to.Ptr[int32](3600000), Width: to.Ptr("1280"), Height: to.Ptr("720"), Label: to.Ptr("HD")},
									{Bitrate: to.Ptr[int32](1600000), Width: to.Ptr("960"), Height: to.Ptr("540"), Label: to.Ptr("SD")},
								},
							},
							&PngImage{
								Start:  to.Ptr("25%"),
								Step:   to.Ptr("25%"),
								Range:  to.Ptr("80%"),
								Layers: []*PngLayer{{Width: to.Ptr("50%"), Height: to.Ptr("50%")}},
							},
						},
						Formats: []FormatClassification{
							&Mp4Format{FilenamePattern: to.Ptr("Video-{Basename}-{Label}-{Bitrate}{Extension}")},
							&PngFormat{FilenamePattern: to.Ptr("Thumbnail-{Basename}-{Index}{Extension}")},
						},
						Filters: &Filters{
							Overlays: []OverlayClassification{
								&VideoOverlay{InputLabel: to.Ptr("logo"), Opacity: to.Ptr(0.5)},
							},
						},
					},
				},
				{
					Preset: &BuiltInStandardEncoderPreset{PresetName: to.Ptr(EncoderNamedPresetAdaptiveStreaming)},
				},
			},
		},
	}
}

func TestTransformMarshalSetsDiscriminators(t *testing.T) {
	data, err := json.Marshal(adaptiveStreamingTransform())
	require.NoError(t, err)

	var document struct {
		Properties struct {
			Outputs []struct {
				Preset struct {
					ODataType string `json:"@odata.type"`
					Codecs    []struct {
						ODataType string `json:"@odata.type"`
					} `json:"codecs"`
					Formats []struct {
						ODataType string `json:"@odata.type"`
					} `json:"formats"`
					Filters struct {
						Overlays []struct {
							ODataType string `json:"@odata.type"`
						} `json:"overlays"`
					} `json:"filters"`
				} `json:"preset"`
			} `json:"outputs"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &document))
	require.Len(t, document.Properties.Outputs, 2)

	standard := document.Properties.Outputs[0].Preset
	assert.Equal(t, "#Microsoft.Media.StandardEncoderPreset", standard.ODataType)
	var codecs, formats []string
	for _, codec := range standard.Codecs {
		codecs = append(codecs, codec.ODataType)
	}
	for _, format := range standard.Formats {
		formats = append(formats, format.ODataType)
	}
	assert.Equal(t, []string{"#Microsoft.Media.AacAudio", "#Microsoft.Media.H264Video", "#Microsoft.Media.PngImage"}, codecs)
	assert.Equal(t, []string{"#Microsoft.Media.Mp4Format", "#Microsoft.Media.PngFormat"}, formats)
	require.Len(t, standard.Filters.Overlays, 1)
	assert.Equal(t, "#Microsoft.Media.VideoOverlay", standard.Filters.Overlays[0].ODataType)
	assert.Equal(t, "#Microsoft.Media.BuiltInStandardEncoderPreset", document.Properties.Outputs[1].Preset.ODataType)
}

func TestTransformRoundTrip(t *testing.T) {
	data, err := json.Marshal(adaptiveStreamingTransform())
	require.NoError(t, err)

	var decoded Transform
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Properties.Outputs, 2)

	standard, ok := decoded.Properties.Outputs[0].Preset.(*StandardEncoderPreset)
	require.True(t, ok, "got %T", decoded.Properties.Outputs[0].Preset)
	require.Len(t, standard.Codecs, 3)
	require.IsType(t, &AacAudio{}, standard.Codecs[0])
	require.IsType(t, &H264Video{}, standard.Codecs[1])
	require.IsType(t, &PngImage{}, standard.Codecs[2])
	require.IsType(t, &Mp4Format{}, standard.Formats[0])
	require.IsType(t, &PngFormat{}, standard.Formats[1])
	require.IsType(t, &VideoOverlay{}, standard.Filters.Overlays[0])

	video := standard.Codecs[1].(*H264Video)
	want := []*H264Layer{
		{Bitrate: to.Ptr[int32](3600000), Width: to.Ptr("1280"), Height: to.Ptr("720"), Label: to.Ptr("HD")},
		{Bitrate: to.Ptr[int32](1600000), Width: to.Ptr("960"), Height: to.Ptr("540"), Label: to.Ptr("SD")},
	}
	if diff := cmp.Diff(want, video.Layers); diff != "" {
		t.Errorf("layers mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "#Microsoft.Media.H264Video", *standard.Codecs[1].GetCodec().ODataType)

	builtIn, ok := decoded.Properties.Outputs[1].Preset.(*BuiltInStandardEncoderPreset)
	require.True(t, ok)
	assert.Equal(t, EncoderNamedPresetAdaptiveStreaming, *builtIn.PresetName)
}

func TestUnknownDiscriminatorDecodesToBase(t *testing.T) {
	const document = `{
		"outputs": [{
			"preset": {
				"@odata.type": "#Microsoft.Media.StandardEncoderPreset",
				"codecs": [{"@odata.type": "#Microsoft.Media.Av1Video", "label": "next-gen"}],
				"formats": [{"@odata.type": "#Microsoft.Media.WebmFormat", "filenamePattern": "{Basename}.webm"}]
			}
		}, {
			"preset": {"@odata.type": "#Microsoft.Media.FuturePreset"}
		}]
	}`
	var properties TransformProperties
	require.NoError(t, json.Unmarshal([]byte(document), &properties))
	require.Len(t, properties.Outputs, 2)

	standard := properties.Outputs[0].Preset.(*StandardEncoderPreset)
	codec, ok := standard.Codecs[0].(*Codec)
	require.True(t, ok, "got %T", standard.Codecs[0])
	assert.Equal(t, "#Microsoft.Media.Av1Video", *codec.ODataType)
	assert.Equal(t, "next-gen", *codec.Label)

	format, ok := standard.Formats[0].(*Format)
	require.True(t, ok, "got %T", standard.Formats[0])
	assert.Equal(t, "{Basename}.webm", *format.FilenamePattern)

	preset, ok := properties.Outputs[1].Preset.(*Preset)
	require.True(t, ok, "got %T", properties.Outputs[1].Preset)
	assert.Equal(t, "#Microsoft.Media.FuturePreset", *preset.ODataType)

	// The preserved discriminator is written back unchanged.
	data, err := json.Marshal(preset)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@odata.type": "#Microsoft.Media.FuturePreset"}`, string(data))
}

func TestJobPropertiesPolymorphicInputs(t *testing.T) {
	tests := []struct {
		name  string
		input JobInputClassification
		check func(t *testing.T, input JobInputClassification)
	}{
		{
			name: "asset with clip times",
			input: &JobInputAsset{
				AssetName: to.Ptr("source"),
				Start:     &AbsoluteClipTime{Time: to.Ptr("PT10S")},
				End:       &UtcClipTime{Time: to.Ptr(testTime)},
			},
			check: func(t *testing.T, input JobInputClassification) {
				asset := input.(*JobInputAsset)
				require.IsType(t, &AbsoluteClipTime{}, asset.Start)
				assert.Equal(t, "PT10S", *asset.Start.(*AbsoluteClipTime).Time)
				require.IsType(t, &UtcClipTime{}, asset.End)
				assert.True(t, testTime.Equal(*asset.End.(*UtcClipTime).Time))
				assert.Equal(t, odataTypePrefix+"JobInputAsset", *asset.GetJobInput().ODataType)
			},
		},
		{
			name: "http with track selection",
			input: &JobInputHTTP{
				BaseURI: to.Ptr("https://contoso.example/media/"),
				Files:   []*string{to.Ptr("intro.mp4")},
				InputDefinitions: []InputDefinitionClassification{
					&InputFile{
						Filename: to.Ptr("intro.mp4"),
						IncludedTracks: []TrackDescriptorClassification{
							&SelectAudioTrackByAttribute{
								Attribute:   to.Ptr(TrackAttributeLanguage),
								Filter:      to.Ptr(AttributeFilterValueEquals),
								FilterValue: to.Ptr("en-US"),
							},
							&SelectVideoTrackByID{TrackID: to.Ptr[int64](1)},
						},
					},
				},
			},
			check: func(t *testing.T, input JobInputClassification) {
				httpInput := input.(*JobInputHTTP)
				require.Len(t, httpInput.InputDefinitions, 1)
				file := httpInput.InputDefinitions[0].(*InputFile)
				require.Len(t, file.IncludedTracks, 2)
				require.IsType(t, &SelectAudioTrackByAttribute{}, file.IncludedTracks[0])
				require.IsType(t, &SelectVideoTrackByID{}, file.IncludedTracks[1])
				assert.Equal(t, int64(1), *file.IncludedTracks[1].(*SelectVideoTrackByID).TrackID)
			},
		},
		{
			name: "sequence of clips",
			input: &JobInputSequence{
				Inputs: []JobInputClipClassification{
					&JobInputAsset{AssetName: to.Ptr("bumper")},
					&JobInputClip{Label: to.Ptr("main")},
				},
			},
			check: func(t *testing.T, input JobInputClassification) {
				sequence := input.(*JobInputSequence)
				require.Len(t, sequence.Inputs, 2)
				require.IsType(t, &JobInputAsset{}, sequence.Inputs[0])
				require.IsType(t, &JobInputClip{}, sequence.Inputs[1])
				assert.Equal(t, "main", *sequence.Inputs[1].GetJobInputClip().Label)
			},
		},
		{
			name: "nested inputs",
			input: &JobInputs{
				Inputs: []JobInputClassification{
					&JobInputAsset{AssetName: to.Ptr("a")},
					&JobInputHTTP{BaseURI: to.Ptr("https://contoso.example/")},
				},
			},
			check: func(t *testing.T, input JobInputClassification) {
				inputs := input.(*JobInputs)
				require.Len(t, inputs.Inputs, 2)
				require.IsType(t, &JobInputAsset{}, inputs.Inputs[0])
				require.IsType(t, &JobInputHTTP{}, inputs.Inputs[1])
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(JobProperties{
				Input:   tt.input,
				Outputs: []JobOutputClassification{&JobOutputAsset{AssetName: to.Ptr("output")}},
			})
			require.NoError(t, err)

			var decoded JobProperties
			require.NoError(t, json.Unmarshal(data, &decoded))
			require.IsType(t, tt.input, decoded.Input)
			tt.check(t, decoded.Input)

			require.Len(t, decoded.Outputs, 1)
			output, ok := decoded.Outputs[0].(*JobOutputAsset)
			require.True(t, ok)
			assert.Equal(t, "output", *output.AssetName)
		})
	}
}

func TestNullPolymorphicFields(t *testing.T) {
	var output TransformOutput
	require.NoError(t, json.Unmarshal([]byte(`{"preset": null, "onError": "ContinueJob"}`), &output))
	assert.Nil(t, output.Preset)
	assert.Equal(t, OnErrorTypeContinueJob, *output.OnError)

	var properties JobProperties
	require.NoError(t, json.Unmarshal([]byte(`{"outputs": []}`), &properties))
	assert.Nil(t, properties.Input)
	assert.Empty(t, properties.Outputs)
}
