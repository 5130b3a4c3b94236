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
	"net/url"
)

const (
	prefix string = ""     // no prefix
	indent string = "    " // 4 spaces
)

// MarshalJSON returns the JSON encoding of v.
//
// Call this function instead of the marshal functions in "encoding/json" for
// HTTP responses to ensure the formatting is consistent.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// WriteJSONResponse writes a JSON response body to the http.ResponseWriter in
// the proper sequence: first setting Content-Type to "application/json", then
// setting the HTTP status code, and finally writing a JSON encoding of body.
//
// The function accepts anything for the body argument that can be marshalled
// to JSON. One special case, however, is a byte slice. A byte slice will be
// written verbatim with the expectation that it was produced by Marshal.
// A nil body writes only the status code.
func WriteJSONResponse(writer http.ResponseWriter, statusCode int, body any) (int, error) {
	if body == nil {
		writer.WriteHeader(statusCode)
		return 0, nil
	}

	var data []byte

	switch v := body.(type) {
	case []byte:
		data = v // write a byte slice verbatim
	default:
		var err error
		data, err = MarshalJSON(body)
		if err != nil {
			return 0, err
		}
	}

	writer.Header().Set(HeaderNameContentType, "application/json")
	writer.WriteHeader(statusCode)
	return writer.Write(data)
}

// PagedResponse is the response format for resource collection requests.
//
// ARM services report the continuation in "nextLink", OData-flavoured
// services such as Media Services use "@odata.nextLink". Only one of them is
// set on a given response.
type PagedResponse struct {
	Value         []json.RawMessage `json:"value"`
	NextLink      string            `json:"nextLink,omitempty"`
	ODataNextLink string            `json:"@odata.nextLink,omitempty"`
}

// NewPagedResponse returns a new PagedResponse instance.
func NewPagedResponse() PagedResponse {
	return PagedResponse{Value: []json.RawMessage{}}
}

// AddValue adds a JSON encoded value to a PagedResponse.
func (r *PagedResponse) AddValue(value json.RawMessage) {
	r.Value = append(r.Value, value)
}

// SetNextLink sets NextLink to a URL with a $skipToken parameter.
// If skipToken is empty, the function does nothing and returns nil.
func (r *PagedResponse) SetNextLink(baseURL, skipToken string) error {
	link, err := skipTokenLink(baseURL, skipToken)
	if err != nil {
		return err
	}
	r.NextLink = link
	return nil
}

// SetODataNextLink is SetNextLink for "@odata.nextLink" collections.
func (r *PagedResponse) SetODataNextLink(baseURL, skipToken string) error {
	link, err := skipTokenLink(baseURL, skipToken)
	if err != nil {
		return err
	}
	r.ODataNextLink = link
	return nil
}

func skipTokenLink(baseURL, skipToken string) (string, error) {
	if skipToken == "" {
		return "", nil
	}

	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return "", err
	}

	values := u.Query()
	values.Set(QuerySkipToken, skipToken)
	u.RawQuery = values.Encode()

	return u.String(), nil
}
