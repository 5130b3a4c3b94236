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

	"github.com/google/uuid"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

// correlationPolicy stamps x-ms-correlation-request-id on every request. The
// value comes from the arm.CorrelationData in the request context, so a
// caller can tie several operations together; otherwise a new one is
// generated per call. Retries of a call reuse the same value.
type correlationPolicy struct{}

func newCorrelationPolicy() policy.Policy {
	return &correlationPolicy{}
}

func (p *correlationPolicy) Do(req *policy.Request) (*http.Response, error) {
	header := req.Raw().Header

	if header.Get(arm.HeaderNameCorrelationRequestID) == "" {
		correlationRequestID := uuid.NewString()
		if data, ok := arm.CorrelationDataFromContext(req.Raw().Context()); ok {
			if data.CorrelationRequestID != "" {
				correlationRequestID = data.CorrelationRequestID
			}
			if data.ClientRequestID != "" && header.Get(arm.HeaderNameClientRequestID) == "" {
				header.Set(arm.HeaderNameClientRequestID, data.ClientRequestID)
			}
		}
		header.Set(arm.HeaderNameCorrelationRequestID, correlationRequestID)
	}

	return req.Next()
}
