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

// Package armstorage is the client for the queue services of the
// Microsoft.Storage resource provider, API version 2021-06-01. Queue
// contents are reached through the data-plane client in pkg/dataplane/azqueue.
package armstorage

import (
	"errors"
	"fmt"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// ClientFactory is a client factory used to create any client in this module.
// Don't use this type directly, use NewClientFactory instead.
type ClientFactory struct {
	internal       *mgmt.Client
	subscriptionID string
}

// NewClientFactory creates a new instance of ClientFactory with the specified values.
// The parameter values will be propagated to any client created from this factory.
//   - subscriptionID - The unique identifier for a Microsoft Azure subscription.
//   - client - the management client built with mgmt.NewClientBuilder.
func NewClientFactory(subscriptionID string, client *mgmt.Client) (*ClientFactory, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("subscriptionID: %w", mgmt.ErrEmptyParameter)
	}
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	return &ClientFactory{
		internal:       client,
		subscriptionID: subscriptionID,
	}, nil
}

// NewQueueClient creates a new instance of QueueClient.
func (c *ClientFactory) NewQueueClient() *QueueClient {
	return &QueueClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}
// NewQueueServicesClient creates a new instance of QueueServicesClient.
func (c *ClientFactory) NewQueueServicesClient() *QueueServicesClient {
	return &QueueServicesClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}
