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

package base

import (
	"context"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/Azure/azure-mgmt-go/internal/config"
	"github.com/Azure/azure-mgmt-go/internal/utils"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// Globals holds what the root command sets up before a subcommand runs.
type Globals struct {
	Profile        *config.Profile
	Metrics        mgmt.Emitter
	TracerProvider trace.TracerProvider
	Transport      policy.Transporter

	// Credential and Endpoint replace the default credential chain and the
	// cloud's Resource Manager endpoint when set.
	Credential azcore.TokenCredential
	Endpoint   string
}

type globalsKey struct{}

func ContextWithGlobals(ctx context.Context, globals *Globals) context.Context {
	return context.WithValue(ctx, globalsKey{}, globals)
}

// GlobalsFromContext returns the globals stored in ctx, or globals holding
// the default profile.
func GlobalsFromContext(ctx context.Context) *Globals {
	if globals, ok := ctx.Value(globalsKey{}).(*Globals); ok && globals != nil {
		if globals.Profile == nil {
			globals.Profile = config.Default()
		}
		return globals
	}
	return &Globals{Profile: config.Default()}
}

// ContextWithCorrelation gives every request of one armctl invocation the
// same correlation request ID and adds it to the logger in ctx.
func ContextWithCorrelation(ctx context.Context) context.Context {
	data := arm.NewClientCorrelationData()
	logger := logr.FromContextOrDiscard(ctx).WithValues(
		utils.LogValues{}.AddCorrelationRequestID(data.CorrelationRequestID)...)
	return arm.ContextWithCorrelationData(logr.NewContext(ctx, logger), data)
}
