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

package azqueue

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	headerApproximateMessagesCount = "X-Ms-Approximate-Messages-Count"
	headerPopReceipt               = "X-Ms-Popreceipt"
	headerTimeNextVisible          = "X-Ms-Time-Next-Visible"
	headerDate                     = "Date"

	queryComp              = "comp"
	queryRestype           = "restype"
	queryTimeout           = "timeout"
	queryPopReceipt        = "popreceipt"
	queryVisibilityTimeout = "visibilitytimeout"
)

// newOperation returns an operation carrying the service version and the
// timeout and client request ID every operation accepts.
func newOperation(name, method, path string, timeout *int32, requestID *string) mgmt.Operation {
	op := mgmt.Operation{
		Name:   name,
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}
	op.Header.Set(arm.HeaderNameVersion, ServiceVersion)
	if timeout != nil {
		op.Query.Set(queryTimeout, strconv.FormatInt(int64(*timeout), 10))
	}
	if requestID != nil {
		op.Header.Set(arm.HeaderNameClientRequestID, *requestID)
	}
	return op
}

func queueParams(queueName string) []mgmt.Param {
	return []mgmt.Param{mgmt.P("queueName", queueName)}
}

// invoke sends op inside a span named after it and decodes an XML response
// body into out when it is non-nil.
func invoke(ctx context.Context, c *mgmt.Client, op mgmt.Operation, body, out any) (*http.Response, error) {
	var err error
	ctx, endSpan := runtime.StartSpan(ctx, op.Name, c.Tracer(), nil)
	defer func() { endSpan(err) }()

	req, err := newRequest(ctx, c, op, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.Pipeline().Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(resp, op.Statuses...) {
		err = runtime.NewResponseError(resp)
		return nil, err
	}
	if out != nil {
		err = decodeXML(resp, out)
	}
	return resp, err
}

func newRequest(ctx context.Context, c *mgmt.Client, op mgmt.Operation, body any) (*policy.Request, error) {
	u, err := op.URL(c.Endpoint())
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
	raw.Header.Set(arm.HeaderNameAccept, "application/xml")
	if body != nil {
		if err := runtime.MarshalAsXML(req, body); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func decodeXML(resp *http.Response, out any) error {
	payload, err := runtime.Payload(resp)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	if err := runtime.UnmarshalAsXML(resp, out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", resp.Request.Method, resp.Request.URL.Path, err)
	}
	return nil
}

func newResponseHeaders(resp *http.Response) ResponseHeaders {
	return ResponseHeaders{
		RequestID: headerString(resp, arm.HeaderNameRequestID),
		Version:   headerString(resp, arm.HeaderNameVersion),
		Date:      headerTime(resp, headerDate),
	}
}

func headerString(resp *http.Response, name string) *string {
	if value := resp.Header.Get(name); value != "" {
		return &value
	}
	return nil
}

func headerTime(resp *http.Response, name string) *time.Time {
	value := resp.Header.Get(name)
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC1123, value)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func headerInt32(resp *http.Response, name string) (*int32, error) {
	value := resp.Header.Get(name)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s header %q: %w", name, value, err)
	}
	v := int32(n)
	return &v, nil
}

// metadataFromHeader collects the x-ms-meta-* headers, keyed by the
// lower-cased metadata name.
func metadataFromHeader(header http.Header) map[string]*string {
	var metadata map[string]*string
	for name, values := range header {
		if len(values) == 0 || len(name) <= len(arm.HeaderNameMetaPrefix) || !strings.EqualFold(name[:len(arm.HeaderNameMetaPrefix)], arm.HeaderNameMetaPrefix) {
			continue
		}
		if metadata == nil {
			metadata = map[string]*string{}
		}
		value := values[0]
		metadata[strings.ToLower(name[len(arm.HeaderNameMetaPrefix):])] = &value
	}
	return metadata
}

func setMetadataHeader(header http.Header, metadata map[string]*string) {
	for name, value := range metadata {
		if value != nil {
			header.Set(arm.HeaderNameMetaPrefix+name, *value)
		}
	}
}

// StorageErrorFrom decodes the XML error body of a failed response. The code
// falls back to the x-ms-error-code header when the body has none.
func StorageErrorFrom(err error) (*StorageError, bool) {
	var azErr *azcore.ResponseError
	if !errors.As(err, &azErr) || azErr.RawResponse == nil {
		return nil, false
	}
	storageError := &StorageError{}
	if payload, payloadErr := runtime.Payload(azErr.RawResponse); payloadErr == nil && len(payload) > 0 {
		_ = xml.Unmarshal(payload, storageError)
	}
	if storageError.Code == nil && azErr.ErrorCode != "" {
		code := azErr.ErrorCode
		storageError.Code = &code
	}
	return storageError, true
}

// Error implements the error interface for type StorageError.
func (e *StorageError) Error() string {
	var code, message string
	if e.Code != nil {
		code = *e.Code
	}
	if e.Message != nil {
		message = strings.TrimSpace(*e.Message)
	}
	return code + ": " + message
}
