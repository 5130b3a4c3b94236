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

package customerinsights

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
)

// RawHubOptions represents the initial, unvalidated configuration for hub operations.
type RawHubOptions struct {
	*base.BaseOptions
	HubName string

	requireName bool
}

// validatedHubOptions is a private struct that enforces the options validation pattern.
type validatedHubOptions struct {
	*RawHubOptions
}

// ValidatedHubOptions represents hub configuration that has passed validation.
type ValidatedHubOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package
	*validatedHubOptions
}

// CompletedHubOptions represents the final, fully validated and initialized configuration
// for hub operations.
type CompletedHubOptions struct {
	*validatedHubOptions
	Client azure.CustomerInsights
}

// DefaultHubOptions returns a new RawHubOptions with default values
func DefaultHubOptions() *RawHubOptions {
	return &RawHubOptions{
		BaseOptions: base.DefaultBaseOptions(),
	}
}

// BindHubOptions binds command-line flags to the options. The hub name flag
// is only bound, and required, when requireName is set.
func BindHubOptions(opts *RawHubOptions, cmd *cobra.Command, requireName bool) error {
	if err := base.BindBaseOptions(opts.BaseOptions, cmd); err != nil {
		return err
	}
	opts.requireName = requireName
	if requireName {
		cmd.Flags().StringVar(&opts.HubName, "hub", opts.HubName, "name of the Customer Insights hub")
		if err := cmd.MarkFlagRequired("hub"); err != nil {
			return fmt.Errorf("failed to mark flag %q as required: %w", "hub", err)
		}
	}
	return nil
}

// Validate performs validation on the raw options
func (o *RawHubOptions) Validate(ctx context.Context) (*ValidatedHubOptions, error) {
	if err := base.ValidateBaseOptions(ctx, o.BaseOptions); err != nil {
		return nil, err
	}
	if err := base.RequireResourceGroup(o.BaseOptions); err != nil {
		return nil, err
	}
	if o.requireName && o.HubName == "" {
		return nil, fmt.Errorf("hub name is required")
	}

	return &ValidatedHubOptions{
		validatedHubOptions: &validatedHubOptions{
			RawHubOptions: o,
		},
	}, nil
}

// Complete performs final initialization to create fully usable hub options.
func (o *ValidatedHubOptions) Complete(ctx context.Context) (*CompletedHubOptions, error) {
	clients, err := base.NewClients(ctx, o.BaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}

	return &CompletedHubOptions{
		validatedHubOptions: o.validatedHubOptions,
		Client:              clients,
	}, nil
}

// RawProfileOptions represents the initial, unvalidated configuration for profile operations.
type RawProfileOptions struct {
	*base.BaseOptions
	HubName    string
	LocaleCode string
}

type validatedProfileOptions struct {
	*RawProfileOptions
}

type ValidatedProfileOptions struct {
	*validatedProfileOptions
}

type CompletedProfileOptions struct {
	*validatedProfileOptions
	Client azure.CustomerInsights
}

func DefaultProfileOptions() *RawProfileOptions {
	return &RawProfileOptions{
		BaseOptions: base.DefaultBaseOptions(),
		LocaleCode:  "en-us",
	}
}

func BindProfileOptions(opts *RawProfileOptions, cmd *cobra.Command) error {
	if err := base.BindBaseOptions(opts.BaseOptions, cmd); err != nil {
		return err
	}
	cmd.Flags().StringVar(&opts.HubName, "hub", opts.HubName, "name of the Customer Insights hub")
	cmd.Flags().StringVar(&opts.LocaleCode, "locale-code", opts.LocaleCode, "locale of the localized profile attributes")
	if err := cmd.MarkFlagRequired("hub"); err != nil {
		return fmt.Errorf("failed to mark flag %q as required: %w", "hub", err)
	}
	return nil
}

func (o *RawProfileOptions) Validate(ctx context.Context) (*ValidatedProfileOptions, error) {
	if err := base.ValidateBaseOptions(ctx, o.BaseOptions); err != nil {
		return nil, err
	}
	if err := base.RequireResourceGroup(o.BaseOptions); err != nil {
		return nil, err
	}
	if o.HubName == "" {
		return nil, fmt.Errorf("hub name is required")
	}

	return &ValidatedProfileOptions{
		validatedProfileOptions: &validatedProfileOptions{
			RawProfileOptions: o,
		},
	}, nil
}

func (o *ValidatedProfileOptions) Complete(ctx context.Context) (*CompletedProfileOptions, error) {
	clients, err := base.NewClients(ctx, o.BaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}

	return &CompletedProfileOptions{
		validatedProfileOptions: o.validatedProfileOptions,
		Client:                  clients,
	}, nil
}

// RawKpiOptions represents the initial, unvalidated configuration for KPI operations.
type RawKpiOptions struct {
	*base.BaseOptions
	HubName string
	KpiName string
}

type validatedKpiOptions struct {
	*RawKpiOptions
}

type ValidatedKpiOptions struct {
	*validatedKpiOptions
}

type CompletedKpiOptions struct {
	*validatedKpiOptions
	Client azure.CustomerInsights
}

func DefaultKpiOptions() *RawKpiOptions {
	return &RawKpiOptions{
		BaseOptions: base.DefaultBaseOptions(),
	}
}

func BindKpiOptions(opts *RawKpiOptions, cmd *cobra.Command) error {
	if err := base.BindBaseOptions(opts.BaseOptions, cmd); err != nil {
		return err
	}
	cmd.Flags().StringVar(&opts.HubName, "hub", opts.HubName, "name of the Customer Insights hub")
	cmd.Flags().StringVar(&opts.KpiName, "kpi", opts.KpiName, "name of the KPI")
	for _, flag := range []string{"hub", "kpi"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as required: %w", flag, err)
		}
	}
	return nil
}

func (o *RawKpiOptions) Validate(ctx context.Context) (*ValidatedKpiOptions, error) {
	if err := base.ValidateBaseOptions(ctx, o.BaseOptions); err != nil {
		return nil, err
	}
	if err := base.RequireResourceGroup(o.BaseOptions); err != nil {
		return nil, err
	}
	if o.HubName == "" || o.KpiName == "" {
		return nil, fmt.Errorf("hub and KPI names are required")
	}

	return &ValidatedKpiOptions{
		validatedKpiOptions: &validatedKpiOptions{
			RawKpiOptions: o,
		},
	}, nil
}

func (o *ValidatedKpiOptions) Complete(ctx context.Context) (*CompletedKpiOptions, error) {
	clients, err := base.NewClients(ctx, o.BaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}

	return &CompletedKpiOptions{
		validatedKpiOptions: o.validatedKpiOptions,
		Client:              clients,
	}, nil
}
