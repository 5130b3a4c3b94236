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

package inventory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
	"github.com/Azure/azure-mgmt-go/internal/config"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	defaultParallelism = 4
	maxParallelism     = 64
	tracerName         = "github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/inventory"
)

var knownProviders = []string{
	config.ProviderCustomerInsights,
	config.ProviderMediaServices,
	config.ProviderStorage,
}

// StorageAccount names an account whose queues are counted.
type StorageAccount struct {
	ResourceGroup string
	Name          string
}

// RawInventoryOptions represents the initial, unvalidated configuration for inventory operations.
type RawInventoryOptions struct {
	*base.BaseOptions
	Parallelism int
	Providers   []string
	// StorageAccounts holds resourceGroup/name pairs.
	StorageAccounts []string
}

// validatedInventoryOptions is a private struct that enforces the options validation pattern.
type validatedInventoryOptions struct {
	*RawInventoryOptions
	accounts []StorageAccount
}

// ValidatedInventoryOptions represents inventory configuration that has passed validation.
type ValidatedInventoryOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package
	*validatedInventoryOptions
}

// CompletedInventoryOptions represents the final, fully validated and initialized configuration
// for inventory operations.
type CompletedInventoryOptions struct {
	*validatedInventoryOptions

	ResourceGroups   azure.ResourceGroups
	CustomerInsights azure.CustomerInsights
	MediaServices    azure.MediaServices
	StorageQueues    azure.StorageQueues

	Tracer trace.Tracer
	// Metrics is nil when no metrics endpoint is configured.
	Metrics mgmt.Emitter
}

// DefaultInventoryOptions returns a new RawInventoryOptions with default values
func DefaultInventoryOptions() *RawInventoryOptions {
	return &RawInventoryOptions{
		BaseOptions: base.DefaultBaseOptions(),
	}
}

// BindInventoryOptions binds command-line flags to the options
func BindInventoryOptions(opts *RawInventoryOptions, cmd *cobra.Command) error {
	if err := base.BindBaseOptions(opts.BaseOptions, cmd); err != nil {
		return err
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.Parallelism, "parallelism", opts.Parallelism, fmt.Sprintf("number of resource groups inventoried concurrently (default %d)", defaultParallelism))
	flags.StringSliceVar(&opts.Providers, "providers", opts.Providers, "providers to inventory: "+strings.Join(knownProviders, ", "))
	flags.StringSliceVar(&opts.StorageAccounts, "storage-account", opts.StorageAccounts, "resourceGroup/name of a storage account whose queues are counted, repeatable")
	return nil
}

// Validate fills unset options from the profile and validates them.
func (o *RawInventoryOptions) Validate(ctx context.Context) (*ValidatedInventoryOptions, error) {
	if err := base.ValidateBaseOptions(ctx, o.BaseOptions); err != nil {
		return nil, err
	}
	profile := base.GlobalsFromContext(ctx).Profile

	if o.Parallelism == 0 {
		o.Parallelism = profile.Inventory.Parallelism
	}
	if o.Parallelism == 0 {
		o.Parallelism = defaultParallelism
	}
	if o.Parallelism < 1 || o.Parallelism > maxParallelism {
		return nil, fmt.Errorf("parallelism must be between 1 and %d, got: %d", maxParallelism, o.Parallelism)
	}

	if len(o.Providers) == 0 {
		o.Providers = profile.Inventory.Providers
	}
	if len(o.Providers) == 0 {
		o.Providers = knownProviders
	}
	for _, provider := range o.Providers {
		if !slices.Contains(knownProviders, provider) {
			return nil, fmt.Errorf("unknown provider %q, must be one of: %s", provider, strings.Join(knownProviders, ", "))
		}
	}

	var accounts []StorageAccount
	if len(o.StorageAccounts) > 0 {
		for _, pair := range o.StorageAccounts {
			resourceGroup, name, ok := strings.Cut(pair, "/")
			if !ok || resourceGroup == "" || name == "" {
				return nil, fmt.Errorf("invalid storage account %q, expected resourceGroup/name", pair)
			}
			accounts = append(accounts, StorageAccount{ResourceGroup: resourceGroup, Name: name})
		}
	} else {
		for _, account := range profile.Inventory.StorageAccounts {
			accounts = append(accounts, StorageAccount{ResourceGroup: account.ResourceGroup, Name: account.Name})
		}
	}

	return &ValidatedInventoryOptions{
		validatedInventoryOptions: &validatedInventoryOptions{
			RawInventoryOptions: o,
			accounts:            accounts,
		},
	}, nil
}

// Complete performs final initialization to create fully usable inventory options.
func (o *ValidatedInventoryOptions) Complete(ctx context.Context) (*CompletedInventoryOptions, error) {
	clients, err := base.NewClients(ctx, o.BaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}

	globals := base.GlobalsFromContext(ctx)
	tracerProvider := globals.TracerProvider
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}

	return &CompletedInventoryOptions{
		validatedInventoryOptions: o.validatedInventoryOptions,
		ResourceGroups:            clients,
		CustomerInsights:          clients,
		MediaServices:             clients,
		StorageQueues:             clients,
		Tracer:                    tracerProvider.Tracer(tracerName),
		Metrics:                   globals.Metrics,
	}, nil
}
