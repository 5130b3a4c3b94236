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
	"fmt"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/tracing/azotel"

	"github.com/Azure/azure-mgmt-go/internal/version"
)

// Cloud environment names accepted by ClientBuilder.WithCloud.
const (
	CloudAzurePublic          = "AzurePublicCloud"
	CloudAzureChina           = "AzureChinaCloud"
	CloudAzureUSGovernment    = "AzureUSGovernmentCloud"
	applicationIDMaxRuneCount = 24
)

var cloudConfigurations = map[string]cloud.Configuration{
	CloudAzurePublic:       cloud.AzurePublic,
	CloudAzureChina:        cloud.AzureChina,
	CloudAzureUSGovernment: cloud.AzureGovernment,
}

// CloudConfiguration returns the azcore configuration of a named cloud.
func CloudConfiguration(name string) (cloud.Configuration, error) {
	configuration, ok := cloudConfigurations[name]
	if !ok {
		return cloud.Configuration{}, errors.Errorf("cloud environment %q is not supported", name)
	}
	return configuration, nil
}

// ClientBuilder can build a Client.
type ClientBuilder struct {
	endpoint         string
	scopes           []string
	cloudEnvironment string
	options          policy.ClientOptions
	logger           logr.Logger
	emitter          Emitter
	tracerProvider   trace.TracerProvider
	applicationID    string
	perCallPolicies  []policy.Policy
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		logger: logr.Discard(),
	}
}

// WithEndpoint overrides the endpoint. It takes precedence over the cloud
// environment.
func (b *ClientBuilder) WithEndpoint(endpoint string) *ClientBuilder {
	b.endpoint = endpoint
	return b
}

// WithScopes overrides the token scopes, which otherwise default to
// "<endpoint>/.default".
func (b *ClientBuilder) WithScopes(scopes ...string) *ClientBuilder {
	b.scopes = scopes
	return b
}

func (b *ClientBuilder) WithCloud(cloudEnvironment string) *ClientBuilder {
	b.cloudEnvironment = cloudEnvironment
	return b
}

func (b *ClientBuilder) WithRetry(retry policy.RetryOptions) *ClientBuilder {
	b.options.Retry = retry
	return b
}

func (b *ClientBuilder) WithTransport(transport policy.Transporter) *ClientBuilder {
	b.options.Transport = transport
	return b
}

func (b *ClientBuilder) WithLogger(logger logr.Logger) *ClientBuilder {
	b.logger = logger
	return b
}

func (b *ClientBuilder) WithMetrics(emitter Emitter) *ClientBuilder {
	b.emitter = emitter
	return b
}

func (b *ClientBuilder) WithTracerProvider(tracerProvider trace.TracerProvider) *ClientBuilder {
	b.tracerProvider = tracerProvider
	return b
}

// WithApplicationID sets the telemetry application ID to
// "<component>/<commit>", truncated to 24 characters as per the Azure SDK
// guidelines.
func (b *ClientBuilder) WithApplicationID(component string) *ClientBuilder {
	b.applicationID = firstN(fmt.Sprintf("%s/%s", component, version.CommitSHA), applicationIDMaxRuneCount)
	return b
}

func (b *ClientBuilder) WithPerCallPolicy(p policy.Policy) *ClientBuilder {
	b.perCallPolicies = append(b.perCallPolicies, p)
	return b
}

func (b *ClientBuilder) Build(credential azcore.TokenCredential) (*Client, error) {
	if credential == nil {
		return nil, errors.Errorf("credential cannot be nil")
	}

	options := b.options
	endpoint := b.endpoint
	var audience string

	if b.cloudEnvironment != "" {
		configuration, err := CloudConfiguration(b.cloudEnvironment)
		if err != nil {
			return nil, err
		}
		options.Cloud = configuration
		if rm, ok := configuration.Services[cloud.ResourceManager]; ok {
			if endpoint == "" {
				endpoint = rm.Endpoint
				audience = rm.Audience
			}
		}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", endpoint)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.Errorf("endpoint %q must be an absolute URL", endpoint)
	}

	scopes := b.scopes
	if len(scopes) == 0 {
		if audience != "" {
			scopes = []string{strings.TrimSuffix(audience, "/") + "/.default"}
		} else {
			scopes = []string{endpoint + "/.default"}
		}
	}

	if b.applicationID != "" {
		options.Telemetry.ApplicationID = b.applicationID
	}
	if b.tracerProvider != nil {
		options.TracingProvider = azotel.NewTracingProvider(b.tracerProvider, nil)
	}

	perRetry := []policy.Policy{
		runtime.NewBearerTokenPolicy(credential, scopes, nil),
		newLoggingPolicy(b.logger),
	}
	if b.emitter != nil {
		perRetry = append(perRetry, newMetricsPolicy(b.emitter))
	}

	pipeline := runtime.NewPipeline(moduleName, version.ModuleVersion, runtime.PipelineOptions{
		PerCall:  append([]policy.Policy{newCorrelationPolicy()}, b.perCallPolicies...),
		PerRetry: perRetry,
	}, &options)

	return &Client{
		endpoint:   endpoint,
		scopes:     scopes,
		credential: credential,
		pipeline:   pipeline,
		tracer:     options.TracingProvider.NewTracer(moduleName, version.ModuleVersion),
		logger:     b.logger,
	}, nil
}

func firstN(str string, n int) string {
	v := []rune(str)
	if n >= len(v) {
		return str
	}

	return string(v[:n])
}
