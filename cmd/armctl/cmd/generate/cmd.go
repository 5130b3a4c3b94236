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

package generate

import (
	"context"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-openapi/spec"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/internal/codegen"
)

// RawGenerateOptions represents the initial, unvalidated configuration for model generation.
type RawGenerateOptions struct {
	SwaggerPath string
	Package     string
	// OutputPath is the generated file. Empty writes to Out.
	OutputPath string

	Out io.Writer
}

// validatedGenerateOptions is a private struct that enforces the options validation pattern.
type validatedGenerateOptions struct {
	*RawGenerateOptions
}

// ValidatedGenerateOptions represents generation configuration that has passed validation.
type ValidatedGenerateOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package
	*validatedGenerateOptions
}

// CompletedGenerateOptions holds the loaded Swagger document.
type CompletedGenerateOptions struct {
	*validatedGenerateOptions
	Document *spec.Swagger
}

func DefaultGenerateOptions() *RawGenerateOptions {
	return &RawGenerateOptions{
		Out: os.Stdout,
	}
}

func BindGenerateOptions(opts *RawGenerateOptions, cmd *cobra.Command) error {
	flags := cmd.Flags()
	flags.StringVar(&opts.SwaggerPath, "swagger", opts.SwaggerPath, "path to the Swagger 2.0 document")
	flags.StringVar(&opts.Package, "package", opts.Package, "name of the generated Go package")
	flags.StringVar(&opts.OutputPath, "out", opts.OutputPath, "file to write, standard output when empty")
	for _, flag := range []string{"swagger", "package"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as required: %w", flag, err)
		}
	}
	return nil
}

func (o *RawGenerateOptions) Validate(ctx context.Context) (*ValidatedGenerateOptions, error) {
	if o.SwaggerPath == "" {
		return nil, fmt.Errorf("swagger path is required")
	}
	if !token.IsIdentifier(o.Package) {
		return nil, fmt.Errorf("package name %q is not a valid Go identifier", o.Package)
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}

	return &ValidatedGenerateOptions{
		validatedGenerateOptions: &validatedGenerateOptions{
			RawGenerateOptions: o,
		},
	}, nil
}

func (o *ValidatedGenerateOptions) Complete(ctx context.Context) (*CompletedGenerateOptions, error) {
	doc, err := codegen.Load(o.SwaggerPath)
	if err != nil {
		return nil, err
	}

	return &CompletedGenerateOptions{
		validatedGenerateOptions: o.validatedGenerateOptions,
		Document:                 doc,
	}, nil
}

func NewGenerateCommand(group string) (*cobra.Command, error) {
	generateCmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate client code",
		GroupID: group,
	}

	opts := DefaultGenerateOptions()
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "Generate Go models and enums from a Swagger document",
		Long: `Generate the models and enums of a resource provider package from the
definitions of a Swagger 2.0 document.

Polymorphic definitions become Classification interfaces, x-ms-enum
definitions become string types with a Possible<Type>Values function.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			return opts.Run(cmd.Context())
		},
	}
	if err := BindGenerateOptions(opts, modelsCmd); err != nil {
		return nil, err
	}

	generateCmd.AddCommand(modelsCmd)
	return generateCmd, nil
}

func (opts *RawGenerateOptions) Run(ctx context.Context) error {
	validated, err := opts.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	completed, err := validated.Complete(ctx)
	if err != nil {
		return fmt.Errorf("completion failed: %w", err)
	}

	return completed.Run(ctx)
}

func (o *CompletedGenerateOptions) Run(ctx context.Context) error {
	source, err := codegen.Generate(o.Document, o.Package)
	if err != nil {
		return err
	}

	if o.OutputPath == "" {
		_, err := o.Out.Write(source)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(o.OutputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(o.OutputPath, source, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.OutputPath, err)
	}
	logr.FromContextOrDiscard(ctx).Info("Generated models", "path", o.OutputPath, "bytes", len(source))
	return nil
}
