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

package mgmt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/tracing"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

// ErrEmptyParameter is returned, wrapped with the parameter name, when a
// required path parameter is empty. No request is sent in that case.
var ErrEmptyParameter = errors.New("parameter cannot be empty")

// Param is a named path parameter substituted into an operation path.
type Param struct {
	Name  string
	Value string
}

// P is shorthand for a Param.
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// Operation describes one REST call of a provider.
type Operation struct {
	// Name is the span name, "<Client>.<Method>".
	Name string

	Method string

	// Path is the URL path template, with parameters written as {name}.
	Path string

	Params []Param

	APIVersion string

	// Query holds the query parameters besides api-version.
	Query url.Values

	// RequiredQuery names the Query parameters that must not be empty.
	RequiredQuery []string

	// Statuses lists the status codes accepted as success. Anything else is
	// returned as *azcore.ResponseError.
	Statuses []int

	// Header holds extra request headers.
	Header http.Header
}

// Provider returns the resource provider namespace in the path, if any.
func (op Operation) Provider() string {
	return providerFromPath(op.Path)
}

func (op Operation) spanOptions() *runtime.StartSpanOptions {
	attributes := []tracing.Attribute{
		{Key: AttributeKeyAPIVersion, Value: op.APIVersion},
	}
	if provider := op.Provider(); provider != "" {
		attributes = append(attributes, tracing.Attribute{Key: AttributeKeyProvider, Value: provider})
	}
	return &runtime.StartSpanOptions{Attributes: attributes}
}

// URL renders the operation URL against endpoint: every {name} is replaced
// by the escaped parameter value and api-version is set ahead of any other
// query parameter.
func (op Operation) URL(endpoint string) (string, error) {
	path := op.Path
	for _, param := range op.Params {
		if param.Value == "" {
			return "", fmt.Errorf("%s: %w", param.Name, ErrEmptyParameter)
		}
		path = strings.ReplaceAll(path, "{"+param.Name+"}", url.PathEscape(param.Value))
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		return "", fmt.Errorf("operation %s: unresolved path parameter in %q", op.Name, path)
	}

	for _, name := range op.RequiredQuery {
		if op.Query.Get(name) == "" {
			return "", fmt.Errorf("%s: %w", name, ErrEmptyParameter)
		}
	}

	query := make([]string, 0, len(op.Query)+1)
	if op.APIVersion != "" {
		query = append(query, arm.QueryAPIVersion+"="+url.QueryEscape(op.APIVersion))
	}
	if extra := op.Query.Encode(); extra != "" {
		query = append(query, extra)
	}

	u := strings.TrimSuffix(endpoint, "/") + path
	if len(query) > 0 {
		u += "?" + strings.Join(query, "&")
	}
	return u, nil
}

// NewRequest builds the request for op. A non-nil body is encoded as JSON.
func (c *Client) NewRequest(ctx context.Context, op Operation, body any) (*policy.Request, error) {
	u, err := op.URL(c.endpoint)
	if err != nil {
		return nil, err
	}
	req, err := runtime.NewRequest(ctx, op.Method, u)
	if err != nil {
		return nil, err
	}
	raw := req.Raw()
	for name, values := range op.Header {
		for _, value := range values {
			raw.Header.Add(name, value)
		}
	}
	raw.Header[arm.HeaderNameAccept] = []string{"application/json"}
	if body != nil {
		if err := runtime.MarshalAsJSON(req, body); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// providerFromPath returns the namespace following the last "/providers/"
// segment of path.
func providerFromPath(path string) string {
	const segment = "/providers/"
	i := strings.LastIndex(strings.ToLower(path), segment)
	if i < 0 {
		return ""
	}
	rest := path[i+len(segment):]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		rest = rest[:j]
	}
	if strings.HasPrefix(rest, "{") {
		return ""
	}
	return rest
}
