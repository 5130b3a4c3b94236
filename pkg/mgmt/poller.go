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
	"encoding/json"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

// PollerOptions carries the long-running operation settings of a Begin call.
type PollerOptions struct {
	// ResumeToken resumes a poller from a token previously returned by
	// Poller.ResumeToken. No initial request is sent when it is set.
	ResumeToken string

	// FinalStateVia picks where the final result is read from. The zero value
	// lets the poller decide from the method and headers.
	FinalStateVia runtime.FinalStateVia
}

// NewPoller sends the initial request of a long-running operation and
// returns a poller tracking it. The poller follows Azure-AsyncOperation or
// Location headers and falls back to the provisioning state of the resource
// for PUT and PATCH. A 200 or 204 without any of them is already done, and
// so is an accepted 202 to DELETE or POST that names nothing to poll.
func NewPoller[T any](ctx context.Context, c *Client, op Operation, body any, options *PollerOptions) (*runtime.Poller[T], error) {
	if options == nil {
		options = &PollerOptions{}
	}
	if options.ResumeToken != "" {
		return runtime.NewPollerFromResumeToken(options.ResumeToken, c.pipeline, &runtime.NewPollerFromResumeTokenOptions[T]{
			Tracer: c.tracer,
		})
	}

	var err error
	ctx, endSpan := runtime.StartSpan(ctx, op.Name, c.tracer, op.spanOptions())
	defer func() { endSpan(err) }()

	resp, err := c.Do(ctx, op, body)
	if err != nil {
		return nil, err
	}
	pollerOptions := &runtime.NewPollerOptions[T]{
		FinalStateVia: options.FinalStateVia,
		Tracer:        c.tracer,
	}
	if acceptedWithoutMonitor(resp) {
		var handler *acceptedHandler[T]
		if handler, err = newAcceptedHandler[T](resp); err != nil {
			return nil, err
		}
		pollerOptions.Handler = handler
	}
	poller, err := runtime.NewPoller(resp, c.pipeline, pollerOptions)
	return poller, err
}

func acceptedWithoutMonitor(resp *http.Response) bool {
	if resp.StatusCode != http.StatusAccepted {
		return false
	}
	if m := resp.Request.Method; m != http.MethodDelete && m != http.MethodPost {
		return false
	}
	for _, header := range []string{arm.HeaderNameAsyncOperation, arm.HeaderNameOperationLocation, arm.HeaderNameLocation} {
		if resp.Header.Get(header) != "" {
			return false
		}
	}
	return true
}

// acceptedHandler is a completed operation built from a 202 response. The
// result is decoded from the response body, when there is one.
type acceptedHandler[T any] struct {
	resp    *http.Response
	payload []byte
}

func newAcceptedHandler[T any](resp *http.Response) (*acceptedHandler[T], error) {
	defer resp.Body.Close()
	payload, err := runtime.Payload(resp)
	if err != nil {
		return nil, err
	}
	return &acceptedHandler[T]{resp: resp, payload: payload}, nil
}

func (h *acceptedHandler[T]) Done() bool {
	return true
}

func (h *acceptedHandler[T]) Poll(context.Context) (*http.Response, error) {
	return h.resp, nil
}

func (h *acceptedHandler[T]) Result(_ context.Context, out *T) error {
	if len(h.payload) == 0 {
		return nil
	}
	return json.Unmarshal(h.payload, out)
}
