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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/internal/config"
	"github.com/Azure/azure-mgmt-go/internal/metrics"
	"github.com/Azure/azure-mgmt-go/internal/tracing"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

// setup loads the profile and starts the telemetry it asks for. The returned
// function flushes spans and stops the metrics endpoint.
func setup(ctx context.Context, configPath string) (*base.Globals, func(context.Context) error, error) {
	logger := logr.FromContextOrDiscard(ctx)

	profile := config.Default()
	if configPath != "" {
		var err error
		if profile, err = config.LoadFromFile(configPath); err != nil {
			return nil, nil, err
		}
		logger.V(1).Info("Loaded profile", "path", configPath)
	}

	tracerProvider, stopTracing, err := tracing.ConfigureOpenTelemetryTracer(ctx, logger, "armctl")
	if err != nil {
		return nil, nil, fmt.Errorf("could not initialize opentelemetry sdk: %w", err)
	}

	globals := &base.Globals{
		Profile:        profile,
		TracerProvider: tracerProvider,
		Transport:      &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	shutdown := []func(context.Context) error{stopTracing}

	if profile.Metrics.Address != "" {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		globals.Metrics = mgmt.NewPrometheusEmitter(registry)

		server, err := metrics.NewServer(profile.Metrics.Address, registry)
		if err != nil {
			return nil, nil, errors.Join(err, stopTracing(ctx))
		}
		go func() {
			logger.Info("Serving metrics", "address", server.Addr())
			if err := server.Serve(); err != nil {
				logger.Error(err, "metrics server failed")
			}
		}()
		shutdown = append(shutdown, server.Shutdown)
	}

	return globals, func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdown {
			errs = append(errs, fn(ctx))
		}
		return errors.Join(errs...)
	}, nil
}
