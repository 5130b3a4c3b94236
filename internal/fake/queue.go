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
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

const (
	defaultVisibilityTimeout = 30 * time.Second
	defaultMessageTTL        = 7 * 24 * time.Hour
	maxMessagesPerRequest    = 32
	maxQueueResults          = 5000
)

// neverExpires is the expiration time reported for messages enqueued with
// a time-to-live of -1.
var neverExpires = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// QueueOptions tune how the queue server answers.
type QueueOptions struct {
	// Now returns the current time. It defaults to time.Now and lets tests
	// move the clock to make messages visible again.
	Now func() time.Time
}

type queueMessage struct {
	id           string
	text         string
	popReceipt   string
	inserted     time.Time
	expires      time.Time
	nextVisible  time.Time
	dequeueCount int64
}

type storedQueue struct {
	metadata map[string]string
	acl      []byte
	messages []*queueMessage
}

// QueueServer is a fake Azure Queue Storage endpoint on a TLS listener. It
// keeps queues, messages, metadata and access policies in memory and
// answers with the XML bodies and error codes of the real service.
type QueueServer struct {
	*httptest.Server

	now func() time.Time

	mu         sync.Mutex
	properties []byte
	queues     map[string]*storedQueue
	requests   []Request
}

// NewQueueServer starts a queue server. Call Close when done.
func NewQueueServer(options QueueOptions) *QueueServer {
	s := &QueueServer{
		now:    options.Now,
		queues: make(map[string]*storedQueue),
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// Credential returns a credential whose tokens the server accepts.
func (s *QueueServer) Credential() azcore.TokenCredential {
	return &azfake.TokenCredential{}
}

// Requests returns the requests received so far.
func (s *QueueServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// LastRequest returns the most recent request.
func (s *QueueServer) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// MessageCount returns how many unexpired messages queueName holds,
// visible or not.
func (s *QueueServer) MessageCount(queueName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[queueName]
	if !ok {
		return 0
	}
	return len(s.live(q))
}

func (s *QueueServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeStorageError(w, http.StatusBadRequest, "InvalidInput", err.Error())
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:      r.Method,
		EscapedPath: r.URL.EscapedPath(),
		Query:       r.URL.Query(),
		Header:      r.Header.Clone(),
		Body:        body,
	})
	s.mu.Unlock()

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeStorageError(w, http.StatusUnauthorized, "AuthenticationFailed", "Server failed to authenticate the request.")
		return
	}
	version := r.Header.Get(arm.HeaderNameVersion)
	if version == "" {
		writeStorageError(w, http.StatusBadRequest, "MissingRequiredHeader", "An HTTP header that's mandatory for this request is not specified.")
		return
	}
	w.Header().Set(arm.HeaderNameVersion, version)
	w.Header().Set(arm.HeaderNameRequestID, uuid.NewString())
	if clientRequestID := r.Header.Get(arm.HeaderNameClientRequestID); clientRequestID != "" {
		w.Header().Set(arm.HeaderNameClientRequestID, clientRequestID)
	}

	segments := splitPath(r.URL.Path)
	switch {
	case len(segments) == 0:
		s.serveService(w, r, body)
	case len(segments) == 1:
		s.serveQueue(w, r, segments[0], body)
	case len(segments) == 2 && segments[1] == "messages":
		s.serveMessages(w, r, segments[0], body)
	case len(segments) == 3 && segments[1] == "messages":
		s.serveMessage(w, r, segments[0], segments[2], body)
	default:
		writeStorageError(w, http.StatusBadRequest, "InvalidUri", "The requested URI does not represent any resource on the server.")
	}
}

func (s *QueueServer) serveService(w http.ResponseWriter, r *http.Request, body []byte) {
	query := r.URL.Query()
	switch {
	case r.Method == http.MethodGet && query.Get("comp") == "list":
		s.listQueues(w, r)
	case query.Get("restype") != "service":
		writeStorageError(w, http.StatusBadRequest, "InvalidQueryParameterValue", "Value for one of the query parameters specified in the request URI is invalid.")
	case r.Method == http.MethodGet && query.Get("comp") == "properties":
		s.mu.Lock()
		properties := s.properties
		s.mu.Unlock()
		if properties == nil {
			properties = []byte("<StorageServiceProperties></StorageServiceProperties>")
		}
		writeXML(w, http.StatusOK, properties)
	case r.Method == http.MethodPut && query.Get("comp") == "properties":
		if err := xml.Unmarshal(body, new(struct{})); err != nil {
			writeStorageError(w, http.StatusBadRequest, "InvalidXmlDocument", err.Error())
			return
		}
		s.mu.Lock()
		s.properties = body
		s.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	case r.Method == http.MethodGet && query.Get("comp") == "stats":
		writeXMLValue(w, http.StatusOK, serviceStats{
			GeoReplication: geoReplication{
				Status:       "live",
				LastSyncTime: s.now().UTC().Format(http.TimeFormat),
			},
		})
	default:
		writeStorageError(w, http.StatusMethodNotAllowed, "UnsupportedHttpVerb", "The resource doesn't support the specified HTTP verb.")
	}
}

func (s *QueueServer) listQueues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	prefix := query.Get("prefix")
	marker := query.Get("marker")
	maxResults := maxQueueResults
	if value := query.Get("maxresults"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			writeStorageError(w, http.StatusBadRequest, "OutOfRangeQueryParameterValue", "One of the query parameters specified in the request URI is outside the permissible range.")
			return
		}
		maxResults = min(n, maxQueueResults)
	}
	includeMetadata := slices.Contains(strings.Split(query.Get("include"), ","), "metadata")

	s.mu.Lock()
	defer s.mu.Unlock()
	names := slices.Sorted(maps.Keys(s.queues))

	result := enumerationResults{
		ServiceEndpoint: s.URL + "/",
		Prefix:          prefix,
		Marker:          marker,
		MaxResults:      maxResults,
	}
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) || name < marker {
			continue
		}
		if len(result.Queues) == maxResults {
			result.NextMarker = name
			break
		}
		item := queueItem{Name: name}
		if includeMetadata {
			item.Metadata = &metadataElement{}
			for _, key := range slices.Sorted(maps.Keys(s.queues[name].metadata)) {
				item.Metadata.Items = append(item.Metadata.Items, metadataItem{
					XMLName: xml.Name{Local: key},
					Value:   s.queues[name].metadata[key],
				})
			}
		}
		result.Queues = append(result.Queues, item)
	}
	writeXMLValue(w, http.StatusOK, result)
}

func (s *QueueServer) serveQueue(w http.ResponseWriter, r *http.Request, name string, body []byte) {
	comp := r.URL.Query().Get("comp")

	s.mu.Lock()
	defer s.mu.Unlock()
	q, exists := s.queues[name]

	if r.Method == http.MethodPut && comp == "" {
		metadata := metadataFromRequest(r.Header)
		switch {
		case !exists:
			s.queues[name] = &storedQueue{metadata: metadata}
			w.WriteHeader(http.StatusCreated)
		case maps.Equal(q.metadata, metadata):
			w.WriteHeader(http.StatusNoContent)
		default:
			writeStorageError(w, http.StatusConflict, "QueueAlreadyExists", "The specified queue already exists.")
		}
		return
	}

	if !exists {
		writeQueueNotFound(w)
		return
	}

	switch {
	case r.Method == http.MethodDelete && comp == "":
		delete(s.queues, name)
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodGet && comp == "metadata":
		for key, value := range q.metadata {
			w.Header().Set(arm.HeaderNameMetaPrefix+key, value)
		}
		w.Header().Set("X-Ms-Approximate-Messages-Count", strconv.Itoa(len(s.live(q))))
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut && comp == "metadata":
		q.metadata = metadataFromRequest(r.Header)
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodGet && comp == "acl":
		acl := q.acl
		if acl == nil {
			acl = []byte("<SignedIdentifiers></SignedIdentifiers>")
		}
		writeXML(w, http.StatusOK, acl)
	case r.Method == http.MethodPut && comp == "acl":
		var identifiers struct {
			Items []struct {
				ID string `xml:"Id"`
			} `xml:"SignedIdentifier"`
		}
		if len(body) > 0 {
			if err := xml.Unmarshal(body, &identifiers); err != nil {
				writeStorageError(w, http.StatusBadRequest, "InvalidXmlDocument", err.Error())
				return
			}
		}
		if len(identifiers.Items) > 5 {
			writeStorageError(w, http.StatusBadRequest, "InvalidXmlDocument", "A queue may have at most five stored access policies.")
			return
		}
		q.acl = body
		w.WriteHeader(http.StatusNoContent)
	default:
		writeStorageError(w, http.StatusMethodNotAllowed, "UnsupportedHttpVerb", "The resource doesn't support the specified HTTP verb.")
	}
}

func (s *QueueServer) serveMessages(w http.ResponseWriter, r *http.Request, name string, body []byte) {
	query := r.URL.Query()

	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[name]
	if !ok {
		writeQueueNotFound(w)
		return
	}
	now := s.now().UTC().Truncate(time.Second)

	switch r.Method {
	case http.MethodPost:
		var message struct {
			MessageText string `xml:"MessageText"`
		}
		if err := xml.Unmarshal(body, &message); err != nil {
			writeStorageError(w, http.StatusBadRequest, "InvalidXmlDocument", err.Error())
			return
		}
		visibility, ok := durationQuery(w, query.Get("visibilitytimeout"), 0)
		if !ok {
			return
		}
		ttl, ok := durationQuery(w, query.Get("messagettl"), defaultMessageTTL)
		if !ok {
			return
		}
		m := &queueMessage{
			id:          uuid.NewString(),
			text:        message.MessageText,
			popReceipt:  uuid.NewString(),
			inserted:    now,
			expires:     now.Add(ttl),
			nextVisible: now.Add(visibility),
		}
		if ttl < 0 {
			m.expires = neverExpires
		}
		q.messages = append(q.messages, m)
		writeXMLValue(w, http.StatusCreated, messagesList{Items: []messageEntry{{
			MessageID:       m.id,
			InsertionTime:   m.inserted.Format(http.TimeFormat),
			ExpirationTime:  m.expires.Format(http.TimeFormat),
			PopReceipt:      m.popReceipt,
			TimeNextVisible: m.nextVisible.Format(http.TimeFormat),
		}}})
	case http.MethodGet:
		count := 1
		if value := query.Get("numofmessages"); value != "" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 || n > maxMessagesPerRequest {
				writeStorageError(w, http.StatusBadRequest, "OutOfRangeQueryParameterValue", "One of the query parameters specified in the request URI is outside the permissible range.")
				return
			}
			count = n
		}
		peek := query.Get("peekonly") == "true"
		visibility, ok := durationQuery(w, query.Get("visibilitytimeout"), defaultVisibilityTimeout)
		if !ok {
			return
		}

		list := messagesList{Items: []messageEntry{}}
		for _, m := range s.live(q) {
			if len(list.Items) == count {
				break
			}
			if m.nextVisible.After(now) {
				continue
			}
			entry := messageEntry{
				MessageID:      m.id,
				InsertionTime:  m.inserted.Format(http.TimeFormat),
				ExpirationTime: m.expires.Format(http.TimeFormat),
				MessageText:    m.text,
			}
			if !peek {
				m.dequeueCount++
				m.popReceipt = uuid.NewString()
				m.nextVisible = now.Add(visibility)
				entry.PopReceipt = m.popReceipt
				entry.TimeNextVisible = m.nextVisible.Format(http.TimeFormat)
			}
			entry.DequeueCount = &m.dequeueCount
			list.Items = append(list.Items, entry)
		}
		writeXMLValue(w, http.StatusOK, list)
	case http.MethodDelete:
		q.messages = nil
		w.WriteHeader(http.StatusNoContent)
	default:
		writeStorageError(w, http.StatusMethodNotAllowed, "UnsupportedHttpVerb", "The resource doesn't support the specified HTTP verb.")
	}
}

func (s *QueueServer) serveMessage(w http.ResponseWriter, r *http.Request, name, id string, body []byte) {
	query := r.URL.Query()
	popReceipt := query.Get("popreceipt")
	if popReceipt == "" {
		writeStorageError(w, http.StatusBadRequest, "MissingRequiredQueryParameter", "A query parameter that's mandatory for this request is not specified.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[name]
	if !ok {
		writeQueueNotFound(w)
		return
	}
	index := slices.IndexFunc(s.live(q), func(m *queueMessage) bool { return m.id == id })
	if index < 0 {
		writeStorageError(w, http.StatusNotFound, "MessageNotFound", "The specified message does not exist.")
		return
	}
	m := s.live(q)[index]
	if m.popReceipt != popReceipt {
		writeStorageError(w, http.StatusBadRequest, "PopReceiptMismatch", "The specified pop receipt did not match the pop receipt for a dequeued message.")
		return
	}

	switch r.Method {
	case http.MethodPut:
		visibility, ok := durationQuery(w, query.Get("visibilitytimeout"), -1)
		if !ok {
			return
		}
		if visibility < 0 {
			writeStorageError(w, http.StatusBadRequest, "MissingRequiredQueryParameter", "A query parameter that's mandatory for this request is not specified.")
			return
		}
		if len(body) > 0 {
			var message struct {
				MessageText string `xml:"MessageText"`
			}
			if err := xml.Unmarshal(body, &message); err != nil {
				writeStorageError(w, http.StatusBadRequest, "InvalidXmlDocument", err.Error())
				return
			}
			m.text = message.MessageText
		}
		m.popReceipt = uuid.NewString()
		m.nextVisible = s.now().UTC().Truncate(time.Second).Add(visibility)
		w.Header().Set("X-Ms-Popreceipt", m.popReceipt)
		w.Header().Set("X-Ms-Time-Next-Visible", m.nextVisible.Format(http.TimeFormat))
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		q.messages = slices.DeleteFunc(q.messages, func(candidate *queueMessage) bool { return candidate == m })
		w.WriteHeader(http.StatusNoContent)
	default:
		writeStorageError(w, http.StatusMethodNotAllowed, "UnsupportedHttpVerb", "The resource doesn't support the specified HTTP verb.")
	}
}

// live drops expired messages from q and returns the rest in insertion
// order. The caller holds s.mu.
func (s *QueueServer) live(q *storedQueue) []*queueMessage {
	now := s.now()
	q.messages = slices.DeleteFunc(q.messages, func(m *queueMessage) bool {
		return !m.expires.After(now)
	})
	return q.messages
}

// durationQuery parses a query parameter in seconds. A missing value yields
// fallback; an invalid one writes the error response and reports false.
func durationQuery(w http.ResponseWriter, value string, fallback time.Duration) (time.Duration, bool) {
	if value == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < -1 {
		writeStorageError(w, http.StatusBadRequest, "InvalidQueryParameterValue", "Value for one of the query parameters specified in the request URI is invalid.")
		return 0, false
	}
	return time.Duration(n) * time.Second, true
}

func metadataFromRequest(header http.Header) map[string]string {
	metadata := map[string]string{}
	for name := range header {
		if len(name) > len(arm.HeaderNameMetaPrefix) && strings.EqualFold(name[:len(arm.HeaderNameMetaPrefix)], arm.HeaderNameMetaPrefix) {
			metadata[strings.ToLower(name[len(arm.HeaderNameMetaPrefix):])] = header.Get(name)
		}
	}
	return metadata
}

func writeQueueNotFound(w http.ResponseWriter) {
	writeStorageError(w, http.StatusNotFound, "QueueNotFound", "The specified queue does not exist.")
}

func writeStorageError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set(arm.HeaderNameErrorCode, code)
	writeXMLValue(w, statusCode, storageError{Code: code, Message: message})
}

func writeXMLValue(w http.ResponseWriter, statusCode int, value any) {
	data, err := xml.Marshal(value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeXML(w, statusCode, data)
}

func writeXML(w http.ResponseWriter, statusCode int, data []byte) {
	w.Header().Set(arm.HeaderNameContentType, "application/xml")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(data)
}

type storageError struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}

type serviceStats struct {
	XMLName        xml.Name       `xml:"StorageServiceStats"`
	GeoReplication geoReplication `xml:"GeoReplication"`
}

type geoReplication struct {
	Status       string `xml:"Status"`
	LastSyncTime string `xml:"LastSyncTime"`
}

type enumerationResults struct {
	XMLName         xml.Name    `xml:"EnumerationResults"`
	ServiceEndpoint string      `xml:"ServiceEndpoint,attr"`
	Prefix          string      `xml:"Prefix,omitempty"`
	Marker          string      `xml:"Marker,omitempty"`
	MaxResults      int         `xml:"MaxResults"`
	Queues          []queueItem `xml:"Queues>Queue"`
	NextMarker      string      `xml:"NextMarker"`
}

type queueItem struct {
	Name     string           `xml:"Name"`
	Metadata *metadataElement `xml:"Metadata,omitempty"`
}

type metadataElement struct {
	Items []metadataItem
}

type metadataItem struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type messagesList struct {
	XMLName xml.Name       `xml:"QueueMessagesList"`
	Items   []messageEntry `xml:"QueueMessage"`
}

type messageEntry struct {
	MessageID       string `xml:"MessageId"`
	InsertionTime   string `xml:"InsertionTime"`
	ExpirationTime  string `xml:"ExpirationTime"`
	PopReceipt      string `xml:"PopReceipt,omitempty"`
	TimeNextVisible string `xml:"TimeNextVisible,omitempty"`
	DequeueCount    *int64 `xml:"DequeueCount,omitempty"`
	MessageText     string `xml:"MessageText,omitempty"`
}
