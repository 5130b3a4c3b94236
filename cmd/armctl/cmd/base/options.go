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
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/output"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	EnvSubscription  = "ARMCTL_SUBSCRIPTION"
	EnvResourceGroup = "ARMCTL_RESOURCE_GROUP"
	EnvOutput        = "ARMCTL_OUTPUT"
	EnvConfig        = "ARMCTL_CONFIG"
	EnvCloud         = "ARMCTL_CLOUD"
)

// BaseOptions represents common options used across multiple commands.
type BaseOptions struct {
	SubscriptionID string
	ResourceGroup  string
	OutputFormat   string
	Cloud          string

	// Out receives command output. Commands set it from cobra before running.
	Out io.Writer
}

// DefaultBaseOptions returns a new BaseOptions with default values
func DefaultBaseOptions() *BaseOptions {
	return &BaseOptions{
		Out: os.Stdout,
	}
}

// BindBaseOptions binds common command-line flags to the base options.
// Environment variables provide the flag defaults; values still unset after
// parsing come from the profile in ValidateBaseOptions.
func BindBaseOptions(opts *BaseOptions, cmd *cobra.Command) error {
	if envSub := os.Getenv(EnvSubscription); envSub != "" {
		opts.SubscriptionID = envSub
	}
	if envRG := os.Getenv(EnvResourceGroup); envRG != "" {
		opts.ResourceGroup = envRG
	}
	if envOutput := os.Getenv(EnvOutput); envOutput != "" {
		opts.OutputFormat = envOutput
	}
	if envCloud := os.Getenv(EnvCloud); envCloud != "" {
		opts.Cloud = envCloud
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.SubscriptionID, "subscription", opts.SubscriptionID, "Azure subscription ID [env: "+EnvSubscription+"]")
	flags.StringVarP(&opts.ResourceGroup, "resource-group", "g", opts.ResourceGroup, "Azure resource group name [env: "+EnvResourceGroup+"]")
	flags.StringVarP(&opts.OutputFormat, "output", "o", opts.OutputFormat, "Output format: table or json [env: "+EnvOutput+"]")
	flags.StringVar(&opts.Cloud, "cloud", opts.Cloud, "Azure cloud: AzurePublicCloud, AzureChinaCloud or AzureUSGovernmentCloud [env: "+EnvCloud+"]")
	return nil
}

// ValidateBaseOptions fills unset options from the profile and validates
// them.
func ValidateBaseOptions(ctx context.Context, opts *BaseOptions) error {
	profile := GlobalsFromContext(ctx).Profile
	if opts.SubscriptionID == "" {
		opts.SubscriptionID = profile.SubscriptionID
	}
	if opts.ResourceGroup == "" {
		opts.ResourceGroup = profile.ResourceGroup
	}
	if opts.OutputFormat == "" {
		opts.OutputFormat = profile.Output
	}
	if opts.OutputFormat == "" {
		opts.OutputFormat = output.FormatTable
	}
	if opts.Cloud == "" {
		opts.Cloud = profile.Cloud
	}
	if opts.Cloud == "" {
		opts.Cloud = mgmt.CloudAzurePublic
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.SubscriptionID == "" {
		return fmt.Errorf("subscription ID is required")
	}
	if _, err := uuid.Parse(opts.SubscriptionID); err != nil {
		return fmt.Errorf("invalid subscription ID %q: %w", opts.SubscriptionID, err)
	}
	if opts.OutputFormat != output.FormatTable && opts.OutputFormat != output.FormatJSON {
		return fmt.Errorf("output format must be 'table' or 'json', got: %s", opts.OutputFormat)
	}
	if _, err := mgmt.CloudConfiguration(opts.Cloud); err != nil {
		return err
	}
	return nil
}

// RequireResourceGroup fails when no resource group was given.
func RequireResourceGroup(opts *BaseOptions) error {
	if opts.ResourceGroup == "" {
		return fmt.Errorf("resource group is required")
	}
	return nil
}

// NewClients creates the Azure clients for validated options.
func NewClients(ctx context.Context, opts *BaseOptions) (*azure.Clients, error) {
	globals := GlobalsFromContext(ctx)

	cred := globals.Credential
	if cred == nil {
		var err error
		if cred, err = azure.GetAzureTokenCredentials(opts.Cloud); err != nil {
			return nil, err
		}
	}

	return azure.NewClients(opts.SubscriptionID, cred, azure.ClientOptions{
		Cloud:          opts.Cloud,
		Endpoint:       globals.Endpoint,
		Transport:      globals.Transport,
		Logger:         logr.FromContextOrDiscard(ctx),
		Metrics:        globals.Metrics,
		TracerProvider: globals.TracerProvider,
	})
}
