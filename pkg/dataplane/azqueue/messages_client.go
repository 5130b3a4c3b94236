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
	"net/http"
	"strconv"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const messagesPath = "/{queueName}/messages"

// MessagesClient contains the methods for the Messages group.
// Don't use this type directly, use Client.NewMessagesClient() instead.
type MessagesClient struct {
	internal *mgmt.Client
}

// Enqueue - The Enqueue operation adds a new message to the back of the message queue. A visibility timeout can also be
// specified to make the message invisible until the visibility timeout expires. A message must be in a format that can be
// included in an XML request with UTF-8 encoding. The encoded message can be up to 64 KB in size for versions 2011-08-18
// and newer, or 8 KB in size for previous versions.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - queueMessage - A Message object which can be stored in a Queue
//   - options - MessagesClientEnqueueOptions contains the optional parameters for the MessagesClient.Enqueue method.
func (client *MessagesClient) Enqueue(ctx context.Context, queueName string, queueMessage QueueMessage, options *MessagesClientEnqueueOptions) (MessagesClientEnqueueResponse, error) {
	if options == nil {
		options = &MessagesClientEnqueueOptions{}
	}
	op := newOperation("MessagesClient.Enqueue", http.MethodPost, messagesPath, options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	setInt32Query(op, queryVisibilityTimeout, options.Visibilitytimeout)
	setInt32Query(op, "messagettl", options.MessageTimeToLive)
	op.Statuses = []int{http.StatusCreated}

	var messages queueMessagesList[EnqueuedMessage]
	resp, err := invoke(ctx, client.internal, op, queueMessage, &messages)
	if err != nil {
		return MessagesClientEnqueueResponse{}, err
	}
	return MessagesClientEnqueueResponse{
		ResponseHeaders: newResponseHeaders(resp),
		Messages:        messages.Items,
	}, nil
}

// Dequeue - The Dequeue operation retrieves one or more messages from the front of the queue.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - MessagesClientDequeueOptions contains the optional parameters for the MessagesClient.Dequeue method.
func (client *MessagesClient) Dequeue(ctx context.Context, queueName string, options *MessagesClientDequeueOptions) (MessagesClientDequeueResponse, error) {
	if options == nil {
		options = &MessagesClientDequeueOptions{}
	}
	op := newOperation("MessagesClient.Dequeue", http.MethodGet, messagesPath, options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	setInt32Query(op, "numofmessages", options.NumberOfMessages)
	setInt32Query(op, queryVisibilityTimeout, options.Visibilitytimeout)
	op.Statuses = []int{http.StatusOK}

	var messages queueMessagesList[DequeuedMessageItem]
	resp, err := invoke(ctx, client.internal, op, nil, &messages)
	if err != nil {
		return MessagesClientDequeueResponse{}, err
	}
	return MessagesClientDequeueResponse{
		ResponseHeaders: newResponseHeaders(resp),
		Messages:        messages.Items,
	}, nil
}

// Peek - The Peek operation retrieves one or more messages from the front of the queue, but does not alter the visibility
// of the message.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - MessagesClientPeekOptions contains the optional parameters for the MessagesClient.Peek method.
func (client *MessagesClient) Peek(ctx context.Context, queueName string, options *MessagesClientPeekOptions) (MessagesClientPeekResponse, error) {
	if options == nil {
		options = &MessagesClientPeekOptions{}
	}
	op := newOperation("MessagesClient.Peek", http.MethodGet, messagesPath, options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Query.Set("peekonly", "true")
	setInt32Query(op, "numofmessages", options.NumberOfMessages)
	op.Statuses = []int{http.StatusOK}

	var messages queueMessagesList[PeekedMessageItem]
	resp, err := invoke(ctx, client.internal, op, nil, &messages)
	if err != nil {
		return MessagesClientPeekResponse{}, err
	}
	return MessagesClientPeekResponse{
		ResponseHeaders: newResponseHeaders(resp),
		Messages:        messages.Items,
	}, nil
}

// Clear - The Clear operation deletes all messages from the specified queue.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - options - MessagesClientClearOptions contains the optional parameters for the MessagesClient.Clear method.
func (client *MessagesClient) Clear(ctx context.Context, queueName string, options *MessagesClientClearOptions) (MessagesClientClearResponse, error) {
	if options == nil {
		options = &MessagesClientClearOptions{}
	}
	op := newOperation("MessagesClient.Clear", http.MethodDelete, messagesPath, options.Timeout, options.RequestID)
	op.Params = queueParams(queueName)
	op.Statuses = []int{http.StatusNoContent}

	resp, err := invoke(ctx, client.internal, op, nil, nil)
	if err != nil {
		return MessagesClientClearResponse{}, err
	}
	return MessagesClientClearResponse{ResponseHeaders: newResponseHeaders(resp)}, nil
}

func setInt32Query(op mgmt.Operation, name string, value *int32) {
	if value != nil {
		op.Query.Set(name, strconv.FormatInt(int64(*value), 10))
	}
}
