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

package mediaservices

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
)

// RawTransformOptions represents the initial, unvalidated configuration for transform operations.
type RawTransformOptions struct {
	*base.BaseOptions
	AccountName string
}

// validatedTransformOptions is a private struct that enforces the options validation pattern.
type validatedTransformOptions struct {
	*RawTransformOptions
}

// ValidatedTransformOptions represents transform configuration that has passed validation.
type ValidatedTransformOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package
	*validatedTransformOptions
}

// CompletedTransformOptions represents the final, fully validated and initialized configuration
// for transform operations.
type CompletedTransformOptions struct {
	*validatedTransformOptions
	Client azure.MediaServices
}

func DefaultTransformOptions() *RawTransformOptions {
	return &RawTransformOptions{
		BaseOptions: base.DefaultBaseOptions(),
	}
}

func BindTransformOptions(opts *RawTransformOptions, cmd *cobra.Command) error {
	if err := base.BindBaseOptions(opts.BaseOptions, cmd); err != nil {
		return err
	}
	bindAccountFlag(&opts.AccountName, cmd)
	return cmd.MarkFlagRequired("account")
}

func (o *RawTransformOptions) Validate(ctx context.Context) (*ValidatedTransformOptions, error) {
	if err := base.ValidateBaseOptions(ctx, o.BaseOptions); err != nil {
		return nil, err
	}
	if err := base.RequireResourceGroup(o.BaseOptions); err != nil {
		return nil, err
	}
	if o.AccountName == "" {
		return nil, fmt.Errorf("account name is required")
	}

	return &ValidatedTransformOptions{
		validatedTransformOptions: &validatedTransformOptions{
			RawTransformOptions: o,
		},
	}, nil
}

func (o *ValidatedTransformOptions) Complete(ctx context.Context) (*CompletedTransformOptions, error) {
	clients, err := base.NewClients(ctx, o.BaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}

	return &CompletedTransformOptions{
		validatedTransformOptions: o.validatedTransformOptions,
		Client:                    clients,
	}, nil
}

// RawJobOptions represents the initial, unvalidated configuration for job operations.
type RawJobOptions struct {
	*base.BaseOptions
	AccountName   string
	TransformName string
	// Filter is an OData $filter expression, used when listing.
	Filter  string
	JobName string

	requireJob bool
}

type validatedJobOptions struct {
	*RawJobOptions
}

type ValidatedJobOptions struct {
	*validatedJobOptions
}

type CompletedJobOptions struct {
	*validatedJobOptions
	Client azure.MediaServices
}

func DefaultJobOptions() *RawJobOptions {
	return &RawJobOptions{
		BaseOptions: base.DefaultBaseOptions(),
	}
}

// BindJobOptions binds command-line flags to the options. Listing binds
// --filter, operating on one job binds the required --job.
func BindJobOptions(opts *RawJobOptions, cmd *cobra.Command, requireJob bool) error {
	if err := base.BindBaseOptions(opts.BaseOptions, cmd); err != nil {
		return err
	}
	bindAccountFlag(&opts.AccountName, cmd)
	cmd.Flags().StringVar(&opts.TransformName, "transform", opts.TransformName, "name of the transform")
	required := []string{"account", "transform"}

	opts.requireJob = requireJob
	if requireJob {
		cmd.Flags().StringVar(&opts.JobName, "job", opts.JobName, "name of the job")
		required = append(required, "job")
	} else {
		cmd.Flags().StringVar(&opts.Filter, "filter", opts.Filter, "OData filter, e.g. \"properties/state eq 'Processing'\"")
	}

	for _, flag := range required {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as required: %w", flag, err)
		}
	}
	return nil
}

func (o *RawJobOptions) Validate(ctx context.Context) (*ValidatedJobOptions, error) {
	if err := base.ValidateBaseOptions(ctx, o.BaseOptions); err != nil {
		return nil, err
	}
	if err := base.RequireResourceGroup(o.BaseOptions); err != nil {
		return nil, err
	}
	if o.AccountName == "" || o.TransformName == "" {
		return nil, fmt.Errorf("account and transform names are required")
	}
	if o.requireJob && o.JobName == "" {
		return nil, fmt.Errorf("job name is required")
	}

	return &ValidatedJobOptions{
		validatedJobOptions: &validatedJobOptions{
			RawJobOptions: o,
		},
	}, nil
}

func (o *ValidatedJobOptions) Complete(ctx context.Context) (*CompletedJobOptions, error) {
	clients, err := base.NewClients(ctx, o.BaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}

	return &CompletedJobOptions{
		validatedJobOptions: o.validatedJobOptions,
		Client:              clients,
	}, nil
}

func bindAccountFlag(account *string, cmd *cobra.Command) {
	cmd.Flags().StringVar(account, "account", *account, "name of the Media Services account")
}
