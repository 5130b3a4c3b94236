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
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/internal/utils"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

// loggingPolicy logs each attempt at V(1) and failed responses at error
// level. A logger in the request context takes precedence over the one the
// client was built with.
type loggingPolicy struct {
	logger logr.Logger
}

func newLoggingPolicy(logger logr.Logger) policy.Policy {
	return &loggingPolicy{logger: logger}
}

func (p *loggingPolicy) Do(req *policy.Request) (*http.Response, error) {
	raw := req.Raw()
	logger, err := logr.FromContext(raw.Context())
	if err != nil {
		logger = p.logger
	}

	startTime := time.Now()
	resp, err := req.Next()
	duration := time.Since(startTime)

	values := utils.LogValues{}.
		AddMethod(raw.Method).
		AddPath(raw.URL.Path).
		AddAPIVersion(raw.URL.Query().Get(arm.QueryAPIVersion)).
		AddDuration(duration).
		AddClientRequestID(raw.Header.Get(arm.HeaderNameClientRequestID)).
		AddCorrelationRequestID(raw.Header.Get(arm.HeaderNameCorrelationRequestID))

	if err != nil {
		logger.Error(err, "request failed", values...)
		return resp, err
	}

	values = values.
		AddStatusCode(resp.StatusCode).
		AddRequestID(resp.Header.Get(arm.HeaderNameRequestID))
	logger.V(1).Info("request completed", values...)

	if resp.StatusCode >= http.StatusBadRequest {
		// Payload buffers the body so the caller can still read it.
		payload, payloadErr := runtime.Payload(resp)
		if payloadErr == nil {
			cloudError := arm.ParseCloudError(resp.StatusCode, payload)
			if cloudError.CloudErrorBody != nil {
				values = values.
					AddCloudErrorCode(cloudError.Code).
					AddCloudErrorMessage(cloudError.Message)
			}
		}
		logger.Error(&arm.CloudError{StatusCode: resp.StatusCode}, "request returned an error response", values...)
	}

	return resp, nil
}
