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
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

// NewPager returns a pager whose first page is fetched with op and whose
// following pages are fetched from the continuation link nextLink extracts.
// An empty or nil link ends paging.
func NewPager[T any](c *Client, op Operation, nextLink func(T) *string) *runtime.Pager[T] {
	return runtime.NewPager(runtime.PagingHandler[T]{
		More: func(page T) bool {
			link := nextLink(page)
			return link != nil && *link != ""
		},
		Fetcher: func(ctx context.Context, page *T) (T, error) {
			var zero T
			var err error
			ctx, endSpan := runtime.StartSpan(ctx, op.Name, c.tracer, op.spanOptions())
			defer func() { endSpan(err) }()

			var req *policy.Request
			if page == nil {
				req, err = c.NewRequest(ctx, op, nil)
			} else {
				req, err = c.newNextLinkRequest(ctx, op, *nextLink(*page))
			}
			if err != nil {
				return zero, err
			}

			resp, err := c.pipeline.Do(req)
			if err != nil {
				return zero, err
			}
			if !runtime.HasStatusCode(resp, op.Statuses...) {
				err = runtime.NewResponseError(resp)
				return zero, err
			}

			var result T
			if err = decode(resp, &result); err != nil {
				return zero, err
			}
			return result, nil
		},
		Tracer: c.tracer,
	})
}

// NextLinkURL resolves a continuation link against the endpoint with its
// path reset: relative links replace the endpoint path and absolute links are
// taken verbatim. The api-version of op is added only when the link has none.
func NextLinkURL(endpoint, nextLink, apiVersion string) (string, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	base.Path = ""
	base.RawPath = ""
	base.RawQuery = ""

	ref, err := url.Parse(nextLink)
	if err != nil {
		return "", fmt.Errorf("invalid next link %q: %w", nextLink, err)
	}
	u := base.ResolveReference(ref)

	if apiVersion != "" {
		query := u.Query()
		if !query.Has(arm.QueryAPIVersion) {
			query.Set(arm.QueryAPIVersion, apiVersion)
			u.RawQuery = query.Encode()
		}
	}
	return u.String(), nil
}

func (c *Client) newNextLinkRequest(ctx context.Context, op Operation, nextLink string) (*policy.Request, error) {
	u, err := NextLinkURL(c.endpoint, nextLink, op.APIVersion)
	if err != nil {
		return nil, err
	}
	req, err := runtime.NewRequest(ctx, http.MethodGet, u)
	if err != nil {
		return nil, err
	}
	req.Raw().Header[arm.HeaderNameAccept] = []string{"application/json"}
	for name, values := range op.Header {
		for _, value := range values {
			req.Raw().Header.Add(name, value)
		}
	}
	return req, nil
}
