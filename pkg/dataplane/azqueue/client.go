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

// Package azqueue is the client for the Azure Queue Storage data plane,
// service version 2018-03-28. Requests go through the pipeline of an
// mgmt.Client built for the account endpoint with the storage scope, so the
// logging, metrics and correlation policies apply to queue traffic as well.
//
//	internal, err := azqueue.NewClientBuilder("https://myaccount.queue.core.windows.net").
//		Build(cred)
package azqueue

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// Client creates the clients of each operation group.
type Client struct {
	internal *mgmt.Client
}

// NewClientBuilder returns a builder for the queue endpoint of a storage
// account that requests tokens for DefaultScope.
func NewClientBuilder(accountURL string) *mgmt.ClientBuilder {
	return mgmt.NewClientBuilder().
		WithEndpoint(accountURL).
		WithScopes(DefaultScope)
}

// NewClient returns a Client sending requests through client, which must
// request tokens for DefaultScope.
func NewClient(client *mgmt.Client) (*Client, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if scopes := client.Scopes(); !slices.Contains(scopes, DefaultScope) {
		return nil, fmt.Errorf("client must request scope %s, got %v", DefaultScope, scopes)
	}
	return &Client{internal: client}, nil
}

// NewServiceClient creates a new instance of ServiceClient.
func (c *Client) NewServiceClient() *ServiceClient {
	return &ServiceClient{internal: c.internal}
}

// NewQueueClient creates a new instance of QueueClient.
func (c *Client) NewQueueClient() *QueueClient {
	return &QueueClient{internal: c.internal}
}

// NewMessagesClient creates a new instance of MessagesClient.
func (c *Client) NewMessagesClient() *MessagesClient {
	return &MessagesClient{internal: c.internal}
}

// NewMessageIDClient creates a new instance of MessageIDClient.
func (c *Client) NewMessageIDClient() *MessageIDClient {
	return &MessageIDClient{internal: c.internal}
}
