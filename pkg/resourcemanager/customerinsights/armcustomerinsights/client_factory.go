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

// Package armcustomerinsights is the client for the Microsoft.CustomerInsights
// resource provider, API version 2017-04-26.
//
// Every group client shares the *mgmt.Client handed to NewClientFactory.
package armcustomerinsights

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
//   - subscriptionID - Gets subscription credentials which uniquely identify Microsoft Azure subscription. The subscription
//     ID forms part of the URI for every service call.
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

// NewAuthorizationPoliciesClient creates a new instance of AuthorizationPoliciesClient.
func (c *ClientFactory) NewAuthorizationPoliciesClient() *AuthorizationPoliciesClient {
	return &AuthorizationPoliciesClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewConnectorMappingsClient creates a new instance of ConnectorMappingsClient.
func (c *ClientFactory) NewConnectorMappingsClient() *ConnectorMappingsClient {
	return &ConnectorMappingsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewConnectorsClient creates a new instance of ConnectorsClient.
func (c *ClientFactory) NewConnectorsClient() *ConnectorsClient {
	return &ConnectorsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewHubsClient creates a new instance of HubsClient.
func (c *ClientFactory) NewHubsClient() *HubsClient {
	return &HubsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewImagesClient creates a new instance of ImagesClient.
func (c *ClientFactory) NewImagesClient() *ImagesClient {
	return &ImagesClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewInteractionsClient creates a new instance of InteractionsClient.
func (c *ClientFactory) NewInteractionsClient() *InteractionsClient {
	return &InteractionsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewKpiClient creates a new instance of KpiClient.
func (c *ClientFactory) NewKpiClient() *KpiClient {
	return &KpiClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewLinksClient creates a new instance of LinksClient.
func (c *ClientFactory) NewLinksClient() *LinksClient {
	return &LinksClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewOperationsClient creates a new instance of OperationsClient.
func (c *ClientFactory) NewOperationsClient() *OperationsClient {
	return &OperationsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewPredictionsClient creates a new instance of PredictionsClient.
func (c *ClientFactory) NewPredictionsClient() *PredictionsClient {
	return &PredictionsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewProfilesClient creates a new instance of ProfilesClient.
func (c *ClientFactory) NewProfilesClient() *ProfilesClient {
	return &ProfilesClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewRelationshipLinksClient creates a new instance of RelationshipLinksClient.
func (c *ClientFactory) NewRelationshipLinksClient() *RelationshipLinksClient {
	return &RelationshipLinksClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewRelationshipsClient creates a new instance of RelationshipsClient.
func (c *ClientFactory) NewRelationshipsClient() *RelationshipsClient {
	return &RelationshipsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewRoleAssignmentsClient creates a new instance of RoleAssignmentsClient.
func (c *ClientFactory) NewRoleAssignmentsClient() *RoleAssignmentsClient {
	return &RoleAssignmentsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewRolesClient creates a new instance of RolesClient.
func (c *ClientFactory) NewRolesClient() *RolesClient {
	return &RolesClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewViewsClient creates a new instance of ViewsClient.
func (c *ClientFactory) NewViewsClient() *ViewsClient {
	return &ViewsClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}

// NewWidgetTypesClient creates a new instance of WidgetTypesClient.
func (c *ClientFactory) NewWidgetTypesClient() *WidgetTypesClient {
	return &WidgetTypesClient{
		internal:       c.internal,
		subscriptionID: c.subscriptionID,
	}
}
