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

package mgmt

import (
	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/tracing"
)

const (
	// DefaultEndpoint is the Azure Resource Manager endpoint of the public cloud.
	DefaultEndpoint = "https://management.azure.com"

	moduleName = "github.com/Azure/azure-mgmt-go"
)

// Client is the shared runtime behind every provider client. It holds the
// endpoint, the credential and the scopes requested from it, and the pipeline
// that every request of a provider goes through.
//
// A Client is safe for concurrent use.
type Client struct {
	endpoint   string
	scopes     []string
	credential azcore.TokenCredential
	pipeline   runtime.Pipeline
	tracer     tracing.Tracer
	logger     logr.Logger
}

// Endpoint returns the base URL requests are resolved against.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Scopes returns a copy of the token scopes.
func (c *Client) Scopes() []string {
	return append([]string(nil), c.scopes...)
}

// Credential returns the credential the bearer token policy authenticates with.
func (c *Client) Credential() azcore.TokenCredential {
	return c.credential
}

func (c *Client) Pipeline() runtime.Pipeline {
	return c.pipeline
}

func (c *Client) Tracer() tracing.Tracer {
	return c.tracer
}

func (c *Client) Logger() logr.Logger {
	return c.logger
}
