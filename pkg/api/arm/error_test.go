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

package arm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudErrorBody_String(t *testing.T) {
	tests := []struct {
		name     string
		body     *CloudErrorBody
		expected string
	}{
		{
			name: "No target",
			body: &CloudErrorBody{
				Code:    "NotFound",
				Message: "The hub 'contoso' was not found.",
			},
			expected: "NotFound: The hub 'contoso' was not found.",
		},
		{
			name: "One detail",
			body: &CloudErrorBody{
				Code:    "code",
				Message: "message",
				Target:  "target",
				Details: []CloudErrorBody{
					{
						Code:    "innercode",
						Message: "innermessage",
						Target:  "innertarget",
					},
				},
			},
			expected: "code: target: message Details: innercode: innertarget: innermessage",
		},
		{
			name: "Two details",
			body: &CloudErrorBody{
				Code:    "code",
				Message: "message",
				Target:  "target",
				Details: []CloudErrorBody{
					{
						Code:    "innercode",
						Message: "innermessage",
						Target:  "innertarget",
					},
					{
						Code:    "innercode2",
						Message: "innermessage2",
						Target:  "innertarget2",
					},
				},
			},
			expected: "code: target: message Details: innercode: innertarget: innermessage, innercode2: innertarget2: innermessage2",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.body.String())
		})
	}
}

func TestParseCloudError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		expectBody *CloudErrorBody
	}{
		{
			name:       "Wrapped error",
			statusCode: http.StatusNotFound,
			body:       `{"error":{"code":"ResourceNotFound","message":"gone"}}`,
			expectBody: &CloudErrorBody{Code: "ResourceNotFound", Message: "gone"},
		},
		{
			name:       "Flat error",
			statusCode: http.StatusBadRequest,
			body:       `{"code":"InvalidParameter","message":"bad name"}`,
			expectBody: &CloudErrorBody{Code: "InvalidParameter", Message: "bad name"},
		},
		{
			name:       "Plain text",
			statusCode: http.StatusBadGateway,
			body:       "upstream unavailable\n",
			expectBody: &CloudErrorBody{Code: "Bad Gateway", Message: "upstream unavailable"},
		},
		{
			name:       "Empty body",
			statusCode: http.StatusInternalServerError,
			body:       "",
			expectBody: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cloudError := ParseCloudError(tt.statusCode, []byte(tt.body))
			assert.Equal(t, tt.statusCode, cloudError.StatusCode)
			assert.Equal(t, tt.expectBody, cloudError.CloudErrorBody)
		})
	}
}

func TestWriteCloudError(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteNotFoundError(recorder, "Microsoft.CustomerInsights/hubs", "contoso")

	result := recorder.Result()
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, "application/json", result.Header.Get(HeaderNameContentType))
	assert.Equal(t, CloudErrorCodeResourceNotFound, result.Header.Get(HeaderNameErrorCode))

	var decoded CloudError
	require.NoError(t, json.NewDecoder(result.Body).Decode(&decoded))
	require.NotNil(t, decoded.CloudErrorBody)
	assert.Equal(t, "The resource 'Microsoft.CustomerInsights/hubs/contoso' was not found.", decoded.Message)
}

func TestWriteUnmarshalError(t *testing.T) {
	type hubProperties struct {
		Tenant string `json:"tenant" validate:"required"`
		Tier   string `json:"tier" validate:"oneof=Basic Premium"`
	}
	type hub struct {
		Properties hubProperties `json:"properties"`
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(hub{Properties: hubProperties{Tier: "Gold"}})
	require.Error(t, err)

	recorder := httptest.NewRecorder()
	WriteUnmarshalError(err, recorder)

	var decoded CloudError
	require.NoError(t, json.NewDecoder(recorder.Result().Body).Decode(&decoded))
	require.Len(t, decoded.Details, 2)
	assert.Equal(t, "Missing required field 'Tenant'", decoded.Details[0].Message)
	assert.Equal(t, "Properties.Tenant", decoded.Details[0].Target)
	assert.Equal(t, "Invalid value 'Gold' for field 'Tier' (must be one of: Basic Premium)", decoded.Details[1].Message)
}
