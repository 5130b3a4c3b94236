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
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

func TestNewClientRequiresClient(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)
}

func TestNewClientRequiresStorageScope(t *testing.T) {
	srv := fake.NewQueueServer(fake.QueueOptions{})
	defer srv.Close()

	accountScoped, err := mgmt.NewClientBuilder().WithEndpoint(srv.URL).Build(srv.Credential())
	require.NoError(t, err)
	_, err = NewClient(accountScoped)
	assert.ErrorContains(t, err, "client must request scope "+DefaultScope)

	storageScoped, err := NewClientBuilder(srv.URL).Build(srv.Credential())
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultScope}, storageScoped.Scopes())
	_, err = NewClient(storageScoped)
	require.NoError(t, err)
}

func TestQueueLifecycle(t *testing.T) {
	client, srv, _ := newTestClient(t)
	queues := client.NewQueueClient()
	ctx := context.Background()

	created, err := queues.Create(ctx, "orders", &QueueClientCreateOptions{
		Metadata: map[string]*string{"Owner": to.Ptr("billing")},
	})
	require.NoError(t, err)
	assert.Equal(t, ServiceVersion, *created.Version)
	assert.NotNil(t, created.RequestID)
	assert.Equal(t, "billing", srv.LastRequest().Header.Get("X-Ms-Meta-Owner"))

	_, err = queues.Create(ctx, "orders", &QueueClientCreateOptions{
		Metadata: map[string]*string{"owner": to.Ptr("billing")},
	})
	require.NoError(t, err, "creating with identical metadata succeeds")

	_, err = queues.Create(ctx, "orders", nil)
	assert.Equal(t, StorageErrorCodeQueueAlreadyExists, errorCode(t, err))
	var respErr *azcore.ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusConflict, respErr.StatusCode)
	assert.Equal(t, StorageErrorCodeQueueAlreadyExists, respErr.ErrorCode)

	props, err := queues.GetProperties(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(0), *props.ApproximateMessagesCount)
	if diff := cmp.Diff(map[string]*string{"owner": to.Ptr("billing")}, props.Metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}

	_, err = queues.SetMetadata(ctx, "orders", &QueueClientSetMetadataOptions{
		Metadata: map[string]*string{"tier": to.Ptr("gold")},
	})
	require.NoError(t, err)
	assert.Equal(t, "metadata", srv.LastRequest().Query.Get("comp"))

	props, err = queues.GetProperties(ctx, "orders", nil)
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]*string{"tier": to.Ptr("gold")}, props.Metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}

	_, err = queues.SetMetadata(ctx, "orders", nil)
	require.NoError(t, err)
	props, err = queues.GetProperties(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Nil(t, props.Metadata)

	_, err = queues.Delete(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, srv.LastRequest().Method)
	assert.Equal(t, "/orders", srv.LastRequest().EscapedPath)

	_, err = queues.GetProperties(ctx, "orders", nil)
	assert.Equal(t, StorageErrorCodeQueueNotFound, errorCode(t, err))
	_, err = queues.Delete(ctx, "orders", nil)
	assert.Equal(t, StorageErrorCodeQueueNotFound, errorCode(t, err))
}

func TestListQueuesPager(t *testing.T) {
	client, srv, _ := newTestClient(t)
	ctx := context.Background()
	for _, name := range []string{"audit", "billing-eu", "billing-us", "billing-apac", "orders"} {
		_, err := client.NewQueueClient().Create(ctx, name, &QueueClientCreateOptions{
			Metadata: map[string]*string{"region": to.Ptr(name)},
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		options  *ServiceClientListQueuesOptions
		expected []string
		pages    int
		metadata bool
	}{
		{
			name:     "nil options",
			expected: []string{"audit", "billing-apac", "billing-eu", "billing-us", "orders"},
			pages:    1,
		},
		{
			name:     "prefix with page size",
			options:  &ServiceClientListQueuesOptions{Prefix: to.Ptr("billing-"), Maxresults: to.Ptr[int32](2)},
			expected: []string{"billing-apac", "billing-eu", "billing-us"},
			pages:    2,
		},
		{
			name:     "first page marker and metadata",
			options:  &ServiceClientListQueuesOptions{Marker: to.Ptr("billing-us"), Include: []ListQueuesIncludeType{ListQueuesIncludeTypeMetadata}},
			expected: []string{"billing-us", "orders"},
			pages:    1,
			metadata: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pager := client.NewServiceClient().NewListQueuesPager(tt.options)
			var names []string
			pages := 0
			for pager.More() {
				page, err := pager.NextPage(ctx)
				require.NoError(t, err)
				pages++
				assert.Equal(t, srv.URL+"/", *page.ServiceEndpoint)
				for _, item := range page.QueueItems {
					names = append(names, *item.Name)
					if tt.metadata {
						require.Contains(t, item.Metadata, "region")
						assert.Equal(t, *item.Name, *item.Metadata["region"])
					} else {
						assert.Nil(t, item.Metadata)
					}
				}
			}
			assert.Equal(t, tt.expected, names)
			assert.Equal(t, tt.pages, pages)
			assert.Equal(t, "list", srv.LastRequest().Query.Get("comp"))
		})
	}

	pager := client.NewServiceClient().NewListQueuesPager(&ServiceClientListQueuesOptions{Maxresults: to.Ptr[int32](3)})
	_, err := pager.NextPage(ctx)
	require.NoError(t, err)
	_, err = pager.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "billing-us", srv.LastRequest().Query.Get("marker"), "the second page continues from NextMarker")
	assert.False(t, pager.More())
}

func TestMessages(t *testing.T) {
	client, srv, clock := newTestClient(t)
	ctx := context.Background()
	_, err := client.NewQueueClient().Create(ctx, "orders", nil)
	require.NoError(t, err)

	messages := client.NewMessagesClient()
	first, err := messages.Enqueue(ctx, "orders", QueueMessage{MessageText: to.Ptr("first")}, nil)
	require.NoError(t, err)
	require.Len(t, first.Messages, 1)
	assert.Equal(t, testTime, *first.Messages[0].InsertionTime)
	assert.Equal(t, testTime.Add(7*24*time.Hour), *first.Messages[0].ExpirationTime)
	assert.Equal(t, testTime, *first.Messages[0].TimeNextVisible)
	assert.Contains(t, string(srv.LastRequest().Body), "<MessageText>first</MessageText>")

	_, err = messages.Enqueue(ctx, "orders", QueueMessage{MessageText: to.Ptr("second")}, &MessagesClientEnqueueOptions{
		MessageTimeToLive: to.Ptr[int32](-1),
	})
	require.NoError(t, err)
	assert.Equal(t, "-1", srv.LastRequest().Query.Get("messagettl"))

	peeked, err := messages.Peek(ctx, "orders", &MessagesClientPeekOptions{NumberOfMessages: to.Ptr[int32](32)})
	require.NoError(t, err)
	require.Len(t, peeked.Messages, 2)
	assert.Equal(t, "true", srv.LastRequest().Query.Get("peekonly"))
	assert.Equal(t, int64(0), *peeked.Messages[0].DequeueCount)
	assert.Equal(t, 9999, peeked.Messages[1].ExpirationTime.Year())

	dequeued, err := messages.Dequeue(ctx, "orders", &MessagesClientDequeueOptions{Visibilitytimeout: to.Ptr[int32](60)})
	require.NoError(t, err)
	require.Len(t, dequeued.Messages, 1)
	message := dequeued.Messages[0]
	assert.Equal(t, "first", *message.MessageText)
	assert.Equal(t, int64(1), *message.DequeueCount)
	assert.Equal(t, testTime.Add(time.Minute), *message.TimeNextVisible)

	peeked, err = messages.Peek(ctx, "orders", nil)
	require.NoError(t, err)
	require.Len(t, peeked.Messages, 1)
	assert.Equal(t, "second", *peeked.Messages[0].MessageText, "a dequeued message is invisible")

	messageIDs := client.NewMessageIDClient()
	updated, err := messageIDs.Update(ctx, "orders", *message.MessageID, *message.PopReceipt, 0, &MessageIDClientUpdateOptions{
		QueueMessage: &QueueMessage{MessageText: to.Ptr("first, again")},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PopReceipt)
	assert.NotEqual(t, *message.PopReceipt, *updated.PopReceipt)
	assert.Equal(t, testTime, *updated.TimeNextVisible)
	assert.Equal(t, "0", srv.LastRequest().Query.Get("visibilitytimeout"))

	_, err = messageIDs.Delete(ctx, "orders", *message.MessageID, *message.PopReceipt, nil)
	assert.Equal(t, StorageErrorCodePopReceiptMismatch, errorCode(t, err))

	peeked, err = messages.Peek(ctx, "orders", nil)
	require.NoError(t, err)
	require.Len(t, peeked.Messages, 1)
	assert.Equal(t, "first, again", *peeked.Messages[0].MessageText)

	_, err = messageIDs.Delete(ctx, "orders", *message.MessageID, *updated.PopReceipt, nil)
	require.NoError(t, err)
	_, err = messageIDs.Delete(ctx, "orders", *message.MessageID, *updated.PopReceipt, nil)
	assert.Equal(t, StorageErrorCodeMessageNotFound, errorCode(t, err))

	clock.Advance(time.Hour)
	props, err := client.NewQueueClient().GetProperties(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), *props.ApproximateMessagesCount)

	_, err = messages.Clear(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, srv.MessageCount("orders"))

	dequeued, err = messages.Dequeue(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Empty(t, dequeued.Messages)
}

func TestDequeueVisibilityTimeout(t *testing.T) {
	client, _, clock := newTestClient(t)
	ctx := context.Background()
	_, err := client.NewQueueClient().Create(ctx, "orders", nil)
	require.NoError(t, err)

	messages := client.NewMessagesClient()
	_, err = messages.Enqueue(ctx, "orders", QueueMessage{MessageText: to.Ptr("work")}, &MessagesClientEnqueueOptions{
		Visibilitytimeout: to.Ptr[int32](10),
	})
	require.NoError(t, err)

	dequeued, err := messages.Dequeue(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Empty(t, dequeued.Messages, "the message is not visible yet")

	clock.Advance(10 * time.Second)
	dequeued, err = messages.Dequeue(ctx, "orders", nil)
	require.NoError(t, err)
	require.Len(t, dequeued.Messages, 1)
	assert.Equal(t, clock.Now().Add(30*time.Second), *dequeued.Messages[0].TimeNextVisible)

	clock.Advance(30 * time.Second)
	dequeued, err = messages.Dequeue(ctx, "orders", nil)
	require.NoError(t, err)
	require.Len(t, dequeued.Messages, 1)
	assert.Equal(t, int64(2), *dequeued.Messages[0].DequeueCount)

	_, err = messages.Dequeue(ctx, "orders", &MessagesClientDequeueOptions{NumberOfMessages: to.Ptr[int32](33)})
	var respErr *azcore.ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
}

func TestServiceProperties(t *testing.T) {
	client, srv, _ := newTestClient(t)
	service := client.NewServiceClient()
	ctx := context.Background()

	properties := StorageServiceProperties{
		Cors: []*CorsRule{{
			AllowedHeaders:  to.Ptr("x-ms-meta-*"),
			AllowedMethods:  to.Ptr("GET,PUT"),
			AllowedOrigins:  to.Ptr("https://contoso.com"),
			ExposedHeaders:  to.Ptr("x-ms-request-id"),
			MaxAgeInSeconds: to.Ptr[int32](3600),
		}},
		Logging: &Logging{
			Delete:          to.Ptr(true),
			Read:            to.Ptr(false),
			Write:           to.Ptr(true),
			Version:         to.Ptr("1.0"),
			RetentionPolicy: &RetentionPolicy{Enabled: to.Ptr(true), Days: to.Ptr[int32](7)},
		},
		HourMetrics: &Metrics{
			Enabled:         to.Ptr(true),
			IncludeAPIs:     to.Ptr(true),
			Version:         to.Ptr("1.0"),
			RetentionPolicy: &RetentionPolicy{Enabled: to.Ptr(false)},
		},
	}
	_, err := service.SetProperties(ctx, properties, nil)
	require.NoError(t, err)
	request := srv.LastRequest()
	assert.Equal(t, "service", request.Query.Get("restype"))
	assert.Equal(t, "properties", request.Query.Get("comp"))
	assert.Equal(t, "application/xml", request.Header.Get(arm.HeaderNameContentType))

	got, err := service.GetProperties(ctx, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(properties, got.StorageServiceProperties); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}

	stats, err := service.GetStatistics(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, GeoReplicationStatusLive, *stats.GeoReplication.Status)
	assert.Equal(t, testTime, *stats.GeoReplication.LastSyncTime)
	assert.Equal(t, "stats", srv.LastRequest().Query.Get("comp"))
}

func TestAccessPolicy(t *testing.T) {
	client, srv, _ := newTestClient(t)
	queues := client.NewQueueClient()
	ctx := context.Background()
	_, err := queues.Create(ctx, "orders", nil)
	require.NoError(t, err)

	empty, err := queues.GetAccessPolicy(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Empty(t, empty.SignedIdentifiers)

	acl := []*SignedIdentifier{{
		ID: to.Ptr("MTIzNDU2Nzg5MDEyMzQ1Njc4OTAxMjM0NTY3ODkwMTI="),
		AccessPolicy: &AccessPolicy{
			Start:      to.Ptr(testTime),
			Expiry:     to.Ptr(testTime.Add(24 * time.Hour)),
			Permission: to.Ptr("raup"),
		},
	}}
	_, err = queues.SetAccessPolicy(ctx, "orders", &QueueClientSetAccessPolicyOptions{QueueACL: acl})
	require.NoError(t, err)
	body := string(srv.LastRequest().Body)
	assert.Contains(t, body, "<SignedIdentifiers><SignedIdentifier>")
	assert.Contains(t, body, "<Id>MTIz")

	got, err := queues.GetAccessPolicy(ctx, "orders", nil)
	require.NoError(t, err)
	if diff := cmp.Diff(acl, got.SignedIdentifiers); diff != "" {
		t.Errorf("access policy mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestHeadersAndQuery(t *testing.T) {
	client, srv, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.NewQueueClient().Create(ctx, "orders", &QueueClientCreateOptions{
		Timeout:   to.Ptr[int32](30),
		RequestID: to.Ptr("client-request-1"),
	})
	require.NoError(t, err)

	request := srv.LastRequest()
	assert.Equal(t, ServiceVersion, request.Header.Get(arm.HeaderNameVersion))
	assert.Equal(t, "client-request-1", request.Header.Get(arm.HeaderNameClientRequestID))
	assert.Equal(t, "application/xml", request.Header.Get(arm.HeaderNameAccept))
	assert.Equal(t, "30", request.Query.Get("timeout"))
	assert.Empty(t, request.Query.Get(arm.QueryAPIVersion))
	assert.Empty(t, request.Body)
}

func TestEmptyParameters(t *testing.T) {
	client, srv, _ := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "queue name",
			call: func() error {
				_, err := client.NewQueueClient().Create(ctx, "", nil)
				return err
			},
		},
		{
			name: "message queue name",
			call: func() error {
				_, err := client.NewMessagesClient().Peek(ctx, "", nil)
				return err
			},
		},
		{
			name: "message id",
			call: func() error {
				_, err := client.NewMessageIDClient().Delete(ctx, "orders", "", "receipt", nil)
				return err
			},
		},
		{
			name: "pop receipt",
			call: func() error {
				_, err := client.NewMessageIDClient().Update(ctx, "orders", "id", "", 0, nil)
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), mgmt.ErrEmptyParameter)
		})
	}
	assert.Empty(t, srv.Requests(), "no request is sent for an empty parameter")
}

func TestStorageErrorFrom(t *testing.T) {
	_, ok := StorageErrorFrom(errors.New("boom"))
	assert.False(t, ok)

	client, _, _ := newTestClient(t)
	_, err := client.NewMessagesClient().Clear(context.Background(), "missing", nil)
	storageError, ok := StorageErrorFrom(err)
	require.True(t, ok)
	assert.Equal(t, StorageErrorCodeQueueNotFound, *storageError.Code)
	assert.Equal(t, "QueueNotFound: The specified queue does not exist.", storageError.Error())
}
