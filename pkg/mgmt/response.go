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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Do builds the request for op, sends it through the pipeline and checks the
// status code against op.Statuses. The caller owns the returned response.
func (c *Client) Do(ctx context.Context, op Operation, body any) (*http.Response, error) {
	req, err := c.NewRequest(ctx, op, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.pipeline.Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(resp, op.Statuses...) {
		return nil, runtime.NewResponseError(resp)
	}
	return resp, nil
}

// Invoke runs op inside a span named after it. A non-nil out receives the
// decoded JSON response body; an empty body leaves it untouched.
func (c *Client) Invoke(ctx context.Context, op Operation, body, out any) (*http.Response, error) {
	var err error
	ctx, endSpan := runtime.StartSpan(ctx, op.Name, c.tracer, op.spanOptions())
	defer func() { endSpan(err) }()

	resp, err := c.Do(ctx, op, body)
	if err != nil {
		return nil, err
	}
	if out != nil {
		err = decode(resp, out)
	}
	return resp, err
}

func decode(resp *http.Response, out any) error {
	payload, err := runtime.Payload(resp)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	if err := runtime.UnmarshalAsJSON(resp, out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", resp.Request.Method, resp.Request.URL.Path, err)
	}
	return nil
}
