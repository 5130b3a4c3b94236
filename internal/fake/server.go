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

// Package fake implements an in-process Azure Resource Manager endpoint for
// tests. It keeps resources in memory keyed by their path and answers the
// generic ARM contract: PUT/PATCH/GET/DELETE on items, paged GET on
// collections, Azure-AsyncOperation polling and CloudError responses.
package fake

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/uuid"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

const operationStatusPath = "/operationStatuses/"

// Request is a request received by the server.
type Request struct {
	Method string
	// EscapedPath is the path as sent on the wire.
	EscapedPath string
	Query       url.Values
	Header      http.Header
	Body        []byte
	// Correlation holds the identifiers the server assigned and received.
	Correlation *arm.CorrelationData
}

// Options tune how the server answers.
type Options struct {
	// PageSize limits collection pages. Zero returns everything at once.
	PageSize int

	// ODataNextLink writes continuations to "@odata.nextLink" instead of
	// "nextLink".
	ODataNextLink bool

	// AsyncPut answers PUT with an Azure-AsyncOperation header, with status
	// PutStatus or 201.
	AsyncPut bool

	// AsyncDelete answers DELETE with 202 and an Azure-AsyncOperation header.
	AsyncDelete bool

	// PollsBeforeDone is how many operation status polls report
	// InProgress before reporting FinalStatus.
	PollsBeforeDone int

	// FinalStatus is the terminal status asynchronous operations settle
	// on, Succeeded by default. Any other terminal status leaves the
	// resource as it was when the operation started.
	FinalStatus arm.ProvisioningState

	// PutStatus and DeleteStatus override the synchronous status codes,
	// 200 by default.
	PutStatus    int
	DeleteStatus int
}

type operation struct {
	remaining int
	status    arm.ProvisioningState
	done      func(succeeded bool)
}

// Server is a fake ARM endpoint on a TLS listener.
type Server struct {
	*httptest.Server

	options Options

	mu         sync.Mutex
	resources  map[string]json.RawMessage
	operations map[string]*operation
	handlers   map[string]http.HandlerFunc
	requests   []Request
}

// NewServer starts a server. Call Close when done.
func NewServer(options Options) *Server {
	s := &Server{
		options:    options,
		resources:  make(map[string]json.RawMessage),
		operations: make(map[string]*operation),
		handlers:   make(map[string]http.HandlerFunc),
	}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// Credential returns a credential whose tokens the server accepts.
func (s *Server) Credential() azcore.TokenCredential {
	return &azfake.TokenCredential{}
}

// Handle registers handler for an exact method and path, taking precedence
// over the generic resource handling. Paths are matched case-insensitively.
func (s *Server) Handle(method, path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[handlerKey(method, path)] = handler
}

// HandleJSON registers a handler answering with statusCode and body.
func (s *Server) HandleJSON(method, path string, statusCode int, body any) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		_, _ = arm.WriteJSONResponse(w, statusCode, body)
	})
}

// Seed stores a resource at path as if it had been created.
func (s *Server) Seed(path string, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[resourceKey(path)] = decorate(path, data, false)
}

// Resource returns the stored resource at path.
func (s *Server) Resource(path string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.resources[resourceKey(path)]
	return data, ok
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		arm.WriteError(w, http.StatusBadRequest, arm.CloudErrorCodeInvalidRequestContent, "", "%s", err.Error())
		return
	}

	correlation := arm.NewCorrelationData(r)
	w.Header().Set(arm.HeaderNameRequestID, correlation.RequestID.String())
	if correlation.CorrelationRequestID != "" {
		w.Header().Set(arm.HeaderNameCorrelationRequestID, correlation.CorrelationRequestID)
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:      r.Method,
		EscapedPath: r.URL.EscapedPath(),
		Query:       r.URL.Query(),
		Header:      r.Header.Clone(),
		Body:        body,
		Correlation: correlation,
	})
	handler, custom := s.handlers[handlerKey(r.Method, r.URL.Path)]
	s.mu.Unlock()

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		arm.WriteError(w, http.StatusUnauthorized, "AuthenticationFailed", "", "Authentication failed. The 'Authorization' header is missing.")
		return
	}
	if r.URL.Query().Get(arm.QueryAPIVersion) == "" {
		arm.WriteError(w, http.StatusBadRequest, "MissingApiVersionParameter", "", "The api-version query parameter (?api-version=) is required for all requests.")
		return
	}

	if custom {
		r.Body = io.NopCloser(bytes.NewReader(body))
		handler(w, r)
		return
	}

	if strings.HasPrefix(r.URL.Path, operationStatusPath) {
		s.getOperationStatus(w, strings.TrimPrefix(r.URL.Path, operationStatusPath))
		return
	}

	switch r.Method {
	case http.MethodGet:
		if isCollection(r.URL.Path) {
			s.list(w, r)
		} else {
			s.get(w, r)
		}
	case http.MethodPut:
		s.put(w, r, body)
	case http.MethodPatch:
		s.patch(w, r, body)
	case http.MethodDelete:
		s.delete(w, r)
	default:
		arm.WriteError(w, http.StatusMethodNotAllowed, arm.CloudErrorCodeMethodNotAllowed, "", "The method '%s' is not allowed on '%s'.", r.Method, r.URL.Path)
	}
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data, ok := s.resources[resourceKey(r.URL.Path)]
	s.mu.Unlock()
	if !ok {
		writeNotFound(w, r.URL.Path)
		return
	}
	_, _ = arm.WriteJSONResponse(w, http.StatusOK, []byte(data))
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	collection := resourceKey(r.URL.Path)

	s.mu.Lock()
	var keys []string
	for key := range s.resources {
		if inCollection(key, collection) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	values := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		values = append(values, s.resources[key])
	}
	s.mu.Unlock()

	start := 0
	if token := r.URL.Query().Get(arm.QuerySkipToken); token != "" {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n > len(values) {
			arm.WriteError(w, http.StatusBadRequest, arm.CloudErrorCodeInvalidParameter, arm.QuerySkipToken, "Invalid skip token '%s'.", token)
			return
		}
		start = n
	}
	end := len(values)
	if s.options.PageSize > 0 && start+s.options.PageSize < end {
		end = start + s.options.PageSize
	}

	page := arm.NewPagedResponse()
	for _, value := range values[start:end] {
		page.AddValue(value)
	}
	if end < len(values) {
		self := s.URL + r.URL.RequestURI()
		skipToken := strconv.Itoa(end)
		var err error
		if s.options.ODataNextLink {
			err = page.SetODataNextLink(self, skipToken)
		} else {
			err = page.SetNextLink(self, skipToken)
		}
		if err != nil {
			arm.WriteError(w, http.StatusInternalServerError, arm.CloudErrorCodeInternalServerError, "", "%s", err.Error())
			return
		}
	}
	_, _ = arm.WriteJSONResponse(w, http.StatusOK, page)
}

func (s *Server) put(w http.ResponseWriter, r *http.Request, body []byte) {
	var document map[string]any
	if err := json.Unmarshal(body, &document); err != nil {
		arm.WriteUnmarshalError(err, w)
		return
	}
	if err := validateIdentity(body); err != nil {
		arm.WriteError(w, http.StatusBadRequest, arm.CloudErrorCodeInvalidParameter, "identity", "%s", err.Error())
		return
	}

	key := resourceKey(r.URL.Path)
	s.mu.Lock()
	previous, exists := s.resources[key]
	data := decorate(r.URL.Path, body, s.options.AsyncPut)
	s.resources[key] = data
	s.mu.Unlock()

	if s.options.AsyncPut {
		statusCode := s.options.PutStatus
		if statusCode == 0 {
			statusCode = http.StatusCreated
		}
		s.writeAsync(w, r, statusCode, data, func(succeeded bool) {
			s.mu.Lock()
			defer s.mu.Unlock()
			switch {
			case succeeded:
				s.resources[key] = decorate(r.URL.Path, s.resources[key], false)
			case exists:
				s.resources[key] = previous
			default:
				delete(s.resources, key)
			}
		})
		return
	}

	statusCode := s.options.PutStatus
	if statusCode == 0 {
		statusCode = http.StatusOK
		if !exists {
			statusCode = http.StatusCreated
		}
	}
	_, _ = arm.WriteJSONResponse(w, statusCode, []byte(data))
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request, body []byte) {
	key := resourceKey(r.URL.Path)
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.resources[key]
	if !ok {
		writeNotFound(w, r.URL.Path)
		return
	}
	merged, err := jsonpatch.MergePatch(current, body)
	if err != nil {
		arm.WriteError(w, http.StatusBadRequest, arm.CloudErrorCodeInvalidRequestContent, "", "%s", err.Error())
		return
	}
	if err := validateIdentity(merged); err != nil {
		arm.WriteError(w, http.StatusBadRequest, arm.CloudErrorCodeInvalidParameter, "identity", "%s", err.Error())
		return
	}
	s.resources[key] = merged
	_, _ = arm.WriteJSONResponse(w, http.StatusOK, []byte(merged))
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	key := resourceKey(r.URL.Path)
	s.mu.Lock()
	_, ok := s.resources[key]
	removed := make(map[string]json.RawMessage)
	for child, data := range s.resources {
		if child == key || strings.HasPrefix(child, key+"/") {
			removed[child] = data
			delete(s.resources, child)
		}
	}
	s.mu.Unlock()

	if s.options.AsyncDelete && ok {
		s.writeAsync(w, r, http.StatusAccepted, nil, func(succeeded bool) {
			if succeeded {
				return
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			maps.Copy(s.resources, removed)
		})
		return
	}

	statusCode := s.options.DeleteStatus
	switch {
	case !ok:
		statusCode = http.StatusNoContent
	case statusCode == 0:
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)
}

// writeAsync registers an operation and answers with its status URL. done
// runs once the operation reaches a terminal status.
func (s *Server) writeAsync(w http.ResponseWriter, r *http.Request, statusCode int, body json.RawMessage, done func(succeeded bool)) {
	id := uuid.NewString()
	status := s.options.FinalStatus
	if status == "" {
		status = arm.ProvisioningStateSucceeded
	}
	op := &operation{remaining: s.options.PollsBeforeDone, status: status, done: done}
	s.mu.Lock()
	s.operations[id] = op
	s.mu.Unlock()

	statusURL := s.URL + operationStatusPath + id + "?" + arm.QueryAPIVersion + "=" + url.QueryEscape(r.URL.Query().Get(arm.QueryAPIVersion))
	w.Header().Set(arm.HeaderNameAsyncOperation, statusURL)
	if body == nil {
		w.WriteHeader(statusCode)
		return
	}
	_, _ = arm.WriteJSONResponse(w, statusCode, []byte(body))
}

func (s *Server) getOperationStatus(w http.ResponseWriter, id string) {
	s.mu.Lock()
	op, ok := s.operations[id]
	var status arm.ProvisioningState
	var done func(bool)
	if ok {
		status = op.status
		if op.remaining > 0 {
			op.remaining--
			status = arm.ProvisioningStateInProgress
		}
		if status.IsTerminal() {
			done, op.done = op.done, nil
		}
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, operationStatusPath+id)
		return
	}
	if done != nil {
		done(status == arm.ProvisioningStateSucceeded)
	}
	result := arm.OperationStatus{
		ID:     operationStatusPath + id,
		Name:   id,
		Status: status,
	}
	if status.IsTerminal() && status != arm.ProvisioningStateSucceeded {
		result.Error = &arm.CloudErrorBody{
			Code:    arm.CloudErrorCodeInternalServerError,
			Message: "The operation finished with status " + string(status) + ".",
		}
	}
	_, _ = arm.WriteJSONResponse(w, http.StatusOK, result)
}

func writeNotFound(w http.ResponseWriter, path string) {
	resourceType, name := typeAndName(path)
	arm.WriteNotFoundError(w, resourceType, name)
}

func handlerKey(method, path string) string {
	return method + " " + strings.ToLower(path)
}

func resourceKey(path string) string {
	return strings.ToLower(strings.TrimSuffix(path, "/"))
}
