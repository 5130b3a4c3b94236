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
	"fmt"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

// CloudError codes
const (
	CloudErrorCodeInternalServerError   = "InternalServerError"
	CloudErrorCodeInvalidParameter      = "InvalidParameter"
	CloudErrorCodeInvalidRequestContent = "InvalidRequestContent"
	CloudErrorCodeInvalidResourceType   = "InvalidResourceType"
	CloudErrorCodeNotFound              = "NotFound"
	CloudErrorCodeResourceNotFound      = "ResourceNotFound"
	CloudErrorCodeResourceGroupNotFound = "ResourceGroupNotFound"
	CloudErrorCodeConflict              = "Conflict"
	CloudErrorCodeMethodNotAllowed      = "MethodNotAllowed"
)

// CloudError is the error envelope returned by resource providers. It is
// produced by ParseCloudError on the client side and written by
// WriteCloudError on the server side.
type CloudError struct {
	// The HTTP status code
	StatusCode int `json:"-"`

	// The response body to be converted to JSON
	*CloudErrorBody `json:"error,omitempty"`
}

func (err *CloudError) Error() string {
	var body string

	if err.CloudErrorBody != nil {
		body = ": " + err.CloudErrorBody.String()
	}

	return fmt.Sprintf("%d%s", err.StatusCode, body)
}

// CloudErrorBody represents the structure of the response body for a resource provider error.
// See https://github.com/cloud-and-ai-microsoft/resource-provider-contract/blob/master/v1.0/common-api-details.md#error-response-content
type CloudErrorBody struct {
	// An identifier for the error. Codes are invariant and are intended to be consumed programmatically.
	Code string `json:"code,omitempty"`

	// A message describing the error, intended to be suitable for display in a user interface.
	Message string `json:"message,omitempty"`

	// The target of the particular error. For example, the name of the property in error.
	Target string `json:"target,omitempty"`

	// A list of additional details about the error.
	Details []CloudErrorBody `json:"details,omitempty"`
}

func (body *CloudErrorBody) String() string {
	var b strings.Builder
	b.WriteString(body.Code)
	b.WriteString(": ")
	if len(body.Target) > 0 {
		b.WriteString(body.Target)
		b.WriteString(": ")
	}
	b.WriteString(body.Message)

	if len(body.Details) > 0 {
		b.WriteString(" Details: ")
		for i, innerErr := range body.Details {
			b.WriteString(innerErr.String())
			if i < len(body.Details)-1 {
				b.WriteString(", ")
			}
		}
	}

	return b.String()
}

// NewCloudError returns a new CloudError
func NewCloudError(statusCode int, code, target, format string, a ...any) *CloudError {
	return &CloudError{
		StatusCode: statusCode,
		CloudErrorBody: &CloudErrorBody{
			Code:    code,
			Message: fmt.Sprintf(format, a...),
			Target:  target,
		},
	}
}

// ParseCloudError decodes an error response body. Most resource providers
// wrap the body in an "error" property, some older ones (and the OData style
// used by Media Services) return the code and message at the top level.
// Bodies that are not JSON produce a CloudError with the raw text as message.
func ParseCloudError(statusCode int, body []byte) *CloudError {
	cloudError := &CloudError{StatusCode: statusCode}

	var wrapped struct {
		Error *CloudErrorBody `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error != nil {
		cloudError.CloudErrorBody = wrapped.Error
		return cloudError
	}

	var flat CloudErrorBody
	if err := json.Unmarshal(body, &flat); err == nil && (flat.Code != "" || flat.Message != "") {
		cloudError.CloudErrorBody = &flat
		return cloudError
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		cloudError.CloudErrorBody = &CloudErrorBody{
			Code:    http.StatusText(statusCode),
			Message: text,
		}
	}
	return cloudError
}

// WriteError constructs and writes a CloudError to the given ResponseWriter
func WriteError(w http.ResponseWriter, statusCode int, code, target, format string, a ...any) {
	WriteCloudError(w, NewCloudError(statusCode, code, target, format, a...))
}

// WriteCloudError writes a CloudError to the given ResponseWriter
func WriteCloudError(w http.ResponseWriter, err *CloudError) {
	w.Header()["Content-Type"] = []string{"application/json"}
	if err.CloudErrorBody != nil {
		w.Header()[HeaderNameErrorCode] = []string{err.Code}
	}
	w.WriteHeader(err.StatusCode)
	encoder := json.NewEncoder(w)
	encoder.SetIndent(prefix, indent)
	_ = encoder.Encode(err)
}

// WriteNotFoundError writes a 404 for the named resource.
func WriteNotFoundError(w http.ResponseWriter, resourceType, name string) {
	WriteError(
		w, http.StatusNotFound,
		CloudErrorCodeResourceNotFound, "",
		"The resource '%s/%s' was not found.", resourceType, name)
}

// WriteUnmarshalError writes an appropriate CloudError for JSON unmarshaling or
// static validation errors to the given ResponseWriter
func WriteUnmarshalError(err error, w http.ResponseWriter) {
	switch err := err.(type) {
	case *json.UnmarshalTypeError:
		WriteError(
			w, http.StatusBadRequest,
			CloudErrorCodeInvalidRequestContent,
			err.Field,
			"%s", err.Error())
	case validator.ValidationErrors:
		cloudError := NewCloudError(
			http.StatusBadRequest,
			CloudErrorCodeInvalidRequestContent, "",
			"Content validation failed on one or more fields")
		cloudError.Details = make([]CloudErrorBody, len(err))
		for index, fieldErr := range err {
			message := fmt.Sprintf("Invalid value '%v' for field '%s'", fieldErr.Value(), fieldErr.Field())
			switch fieldErr.Tag() {
			case "required":
				message = fmt.Sprintf("Missing required field '%s'", fieldErr.Field())
			case "oneof":
				message += fmt.Sprintf(" (must be one of: %s)", fieldErr.Param())
			case "url":
				message += " (must be a URL)"
			}
			_, target, _ := strings.Cut(fieldErr.Namespace(), ".")
			cloudError.Details[index] = CloudErrorBody{
				Code:    CloudErrorCodeInvalidRequestContent,
				Message: message,
				Target:  target,
			}
		}
		WriteCloudError(w, cloudError)
	default:
		WriteError(
			w, http.StatusBadRequest,
			CloudErrorCodeInvalidRequestContent,
			"", "%s", err.Error())
	}
}
