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

package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
)

// Queue names are lowercase letters, digits and single hyphens, starting and
// ending with a letter or digit. Length is checked by the struct tags.
var queueNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("queue_name", func(fl validator.FieldLevel) bool {
		return queueNameRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// RawQueueOptions represents the initial, unvalidated configuration for queue operations.
type RawQueueOptions struct {
	*base.BaseOptions
	AccountName string `validate:"required,min=3,max=24,alphanum,lowercase"`
	QueueName   string `validate:"omitempty,min=3,max=63,queue_name"`
	// Prefix restricts listing to queues whose name starts with it.
	Prefix   string
	Metadata map[string]string `validate:"dive,keys,required,endkeys"`

	requireQueue bool
}

// validatedQueueOptions is a private struct that enforces the options validation pattern.
type validatedQueueOptions struct {
	*RawQueueOptions
}

// ValidatedQueueOptions represents queue configuration that has passed validation.
type ValidatedQueueOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package
	*validatedQueueOptions
}

// CompletedQueueOptions represents the final, fully validated and initialized configuration
// for queue operations.
type CompletedQueueOptions struct {
	*validatedQueueOptions
	Client azure.StorageQueues
}

// DefaultQueueOptions returns a new RawQueueOptions with default values
func DefaultQueueOptions() *RawQueueOptions {
	return &RawQueueOptions{
		BaseOptions: base.DefaultBaseOptions(),
	}
}

// BindQueueOptions binds command-line flags to the options. Listing binds
// --prefix; create and delete bind the required --queue, create also binds
// --metadata.
func BindQueueOptions(opts *RawQueueOptions, cmd *cobra.Command, requireQueue, withMetadata bool) error {
	if err := base.BindBaseOptions(opts.BaseOptions, cmd); err != nil {
		return err
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.AccountName, "account", opts.AccountName, "name of the storage account")
	required := []string{"account"}

	opts.requireQueue = requireQueue
	if requireQueue {
		flags.StringVar(&opts.QueueName, "queue", opts.QueueName, "name of the queue")
		required = append(required, "queue")
	} else {
		flags.StringVar(&opts.Prefix, "prefix", opts.Prefix, "only list queues whose name starts with this prefix")
	}
	if withMetadata {
		flags.StringToStringVar(&opts.Metadata, "metadata", opts.Metadata, "queue metadata as key=value pairs")
	}

	for _, flag := range required {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as required: %w", flag, err)
		}
	}
	return nil
}

// Validate performs validation on the raw options
func (o *RawQueueOptions) Validate(ctx context.Context) (*ValidatedQueueOptions, error) {
	if err := base.ValidateBaseOptions(ctx, o.BaseOptions); err != nil {
		return nil, err
	}
	if err := base.RequireResourceGroup(o.BaseOptions); err != nil {
		return nil, err
	}
	if o.requireQueue && o.QueueName == "" {
		return nil, fmt.Errorf("queue name is required")
	}
	if err := validate.Struct(o); err != nil {
		return nil, queueValidationError(err)
	}

	return &ValidatedQueueOptions{
		validatedQueueOptions: &validatedQueueOptions{
			RawQueueOptions: o,
		},
	}, nil
}

// Complete performs final initialization to create fully usable queue options.
func (o *ValidatedQueueOptions) Complete(ctx context.Context) (*CompletedQueueOptions, error) {
	clients, err := base.NewClients(ctx, o.BaseOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}

	return &CompletedQueueOptions{
		validatedQueueOptions: o.validatedQueueOptions,
		Client:                clients,
	}, nil
}

func queueValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.StructField() {
		case "AccountName":
			messages = append(messages, fmt.Sprintf("invalid storage account name %q: must be 3 to 24 lowercase letters or digits", fieldErr.Value()))
		case "QueueName":
			messages = append(messages, fmt.Sprintf("invalid queue name %q: must be 3 to 63 lowercase letters, digits or single hyphens", fieldErr.Value()))
		default:
			messages = append(messages, fmt.Sprintf("invalid %s (%s)", fieldErr.Namespace(), fieldErr.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
