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
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CorrelationData groups the identifiers that tie a client call to the
// requests it produces on the service side.
type CorrelationData struct {
	// RequestID is a generated unique identifier for the current operation.
	RequestID uuid.UUID

	// ClientRequestID contains the value of header "x-ms-client-request-id".
	ClientRequestID string `json:"clientRequestId,omitempty"`

	// CorrelationRequestID contains the value of header "x-ms-correlation-request-id".
	CorrelationRequestID string `json:"correlationRequestId,omitempty"`
}

// NewCorrelationData allocates and initializes a new CorrelationData from
// HTTP request headers.
func NewCorrelationData(r *http.Request) *CorrelationData {
	return &CorrelationData{
		RequestID:            uuid.New(),
		ClientRequestID:      r.Header.Get(HeaderNameClientRequestID),
		CorrelationRequestID: r.Header.Get(HeaderNameCorrelationRequestID),
	}
}

// NewClientCorrelationData returns CorrelationData for an outgoing call
// sequence. Every request sent with it shares the correlation request ID.
func NewClientCorrelationData() *CorrelationData {
	requestID := uuid.New()
	return &CorrelationData{
		RequestID:            requestID,
		CorrelationRequestID: requestID.String(),
	}
}

type correlationDataKey struct{}

// ContextWithCorrelationData returns a copy of ctx carrying data.
func ContextWithCorrelationData(ctx context.Context, data *CorrelationData) context.Context {
	return context.WithValue(ctx, correlationDataKey{}, data)
}

// CorrelationDataFromContext returns the CorrelationData stored in ctx, if any.
func CorrelationDataFromContext(ctx context.Context) (*CorrelationData, bool) {
	data, ok := ctx.Value(correlationDataKey{}).(*CorrelationData)
	return data, ok && data != nil
}
