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

package fake

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

func doQueue(t *testing.T, s *QueueServer, method, path, body string, header http.Header) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set(arm.HeaderNameVersion, "2018-03-28")
	for name, values := range header {
		req.Header[name] = values
	}
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestQueueServerRequiresVersionAndAuthorization(t *testing.T) {
	s := NewQueueServer(QueueOptions{})
	defer s.Close()

	tests := []struct {
		name       string
		header     http.Header
		statusCode int
		code       string
	}{
		{
			name:       "missing version",
			header:     http.Header{arm.HeaderNameVersion: {""}},
			statusCode: http.StatusBadRequest,
			code:       "MissingRequiredHeader",
		},
		{
			name:       "missing token",
			header:     http.Header{"Authorization": {""}},
			statusCode: http.StatusUnauthorized,
			code:       "AuthenticationFailed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doQueue(t, s, http.MethodPut, "/orders", "", tt.header)
			assert.Equal(t, tt.statusCode, resp.StatusCode)
			assert.Equal(t, tt.code, resp.Header.Get(arm.HeaderNameErrorCode))

			var storageError struct {
				Code string `xml:"Code"`
			}
			require.NoError(t, xml.Unmarshal(body, &storageError))
			assert.Equal(t, tt.code, storageError.Code)
		})
	}
	assert.Len(t, s.Requests(), 2)
}

func TestQueueServerMessageExpiry(t *testing.T) {
	now := time.Date(2018, time.March, 28, 0, 0, 0, 0, time.UTC)
	s := NewQueueServer(QueueOptions{Now: func() time.Time { return now }})
	defer s.Close()

	resp, _ := doQueue(t, s, http.MethodPut, "/orders", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doQueue(t, s, http.MethodPost, "/orders/messages?messagettl=60", "<QueueMessage><MessageText>hello</MessageText></QueueMessage>", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), "<ExpirationTime>Wed, 28 Mar 2018 00:01:00 GMT</ExpirationTime>")
	assert.Equal(t, 1, s.MessageCount("orders"))

	now = now.Add(time.Minute)
	assert.Equal(t, 0, s.MessageCount("orders"))

	resp, body = doQueue(t, s, http.MethodGet, "/orders/messages?peekonly=true", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(body), "hello")
}

func TestQueueServerAccessPolicyLimit(t *testing.T) {
	s := NewQueueServer(QueueOptions{})
	defer s.Close()

	resp, _ := doQueue(t, s, http.MethodPut, "/orders", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	acl := "<SignedIdentifiers>" + strings.Repeat("<SignedIdentifier><Id>id</Id></SignedIdentifier>", 6) + "</SignedIdentifiers>"
	resp, _ = doQueue(t, s, http.MethodPut, "/orders?comp=acl", acl, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doQueue(t, s, http.MethodPut, "/missing?comp=acl", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "QueueNotFound", resp.Header.Get(arm.HeaderNameErrorCode))
}
