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

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// MessageIDClient contains the methods for the MessageID group.
// Don't use this type directly, use Client.NewMessageIDClient() instead.
type MessageIDClient struct {
	internal *mgmt.Client
}

func messageIDOperation(name, method, queueName, messageID, popReceipt string, timeout *int32, requestID *string) mgmt.Operation {
	op := newOperation(name, method, messagesPath+"/{messageid}", timeout, requestID)
	op.Params = []mgmt.Param{
		mgmt.P("queueName", queueName),
		mgmt.P("messageid", messageID),
	}
	op.Query.Set(queryPopReceipt, popReceipt)
	op.RequiredQuery = []string{queryPopReceipt}
	op.Statuses = []int{http.StatusNoContent}
	return op
}

// Update - The Update operation was introduced with version 2011-08-18 of the Queue service API. The Update Message operation
// updates the visibility timeout of a message. You can also use this operation to update the contents of a message. A message
// must be in a format that can be included in an XML request with UTF-8 encoding, and the encoded message can be up to 64KB
// in size.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - messageID - The message ID.
//   - popReceipt - A valid Pop Receipt value returned from an earlier call to the Get Messages or Update Message operation.
//   - visibilitytimeout - Specifies the new visibility timeout value, in seconds, relative to server time. The new value must
//     be larger than or equal to 0, and cannot be larger than 7 days.
//   - options - MessageIDClientUpdateOptions contains the optional parameters for the MessageIDClient.Update method.
func (client *MessageIDClient) Update(ctx context.Context, queueName string, messageID string, popReceipt string, visibilitytimeout int32, options *MessageIDClientUpdateOptions) (MessageIDClientUpdateResponse, error) {
	if options == nil {
		options = &MessageIDClientUpdateOptions{}
	}
	op := messageIDOperation("MessageIDClient.Update", http.MethodPut, queueName, messageID, popReceipt, options.Timeout, options.RequestID)
	setInt32Query(op, queryVisibilityTimeout, &visibilitytimeout)

	var body any
	if options.QueueMessage != nil {
		body = options.QueueMessage
	}
	resp, err := invoke(ctx, client.internal, op, body, nil)
	if err != nil {
		return MessageIDClientUpdateResponse{}, err
	}
	return MessageIDClientUpdateResponse{
		ResponseHeaders: newResponseHeaders(resp),
		PopReceipt:      headerString(resp, headerPopReceipt),
		TimeNextVisible: headerTime(resp, headerTimeNextVisible),
	}, nil
}

// Delete - The Delete operation deletes the specified message.
// If the operation fails it returns an *azcore.ResponseError type.
//   - queueName - The queue name.
//   - messageID - The message ID.
//   - popReceipt - A valid Pop Receipt value returned from an earlier call to the Get Messages or Update Message operation.
//   - options - MessageIDClientDeleteOptions contains the optional parameters for the MessageIDClient.Delete method.
func (client *MessageIDClient) Delete(ctx context.Context, queueName string, messageID string, popReceipt string, options *MessageIDClientDeleteOptions) (MessageIDClientDeleteResponse, error) {
	if options == nil {
		options = &MessageIDClientDeleteOptions{}
	}
	op := messageIDOperation("MessageIDClient.Delete", http.MethodDelete, queueName, messageID, popReceipt, options.Timeout, options.RequestID)

	resp, err := invoke(ctx, client.internal, op, nil, nil)
	if err != nil {
		return MessageIDClientDeleteResponse{}, err
	}
	return MessageIDClientDeleteResponse{ResponseHeaders: newResponseHeaders(resp)}, nil
}
