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
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dusted-go/logging/prettylog"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/customerinsights"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/generate"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/inventory"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/mediaservices"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/storage"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/version"
)

// Command group IDs
const (
	mainGroupID   = "main"
	helperGroupID = "helper"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := createLogger(0)

	// Create a root context with the logger and signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		logVerbosity int
		configPath   = os.Getenv(base.EnvConfig)
		shutdown     = func(context.Context) error { return nil }
	)

	cmd := &cobra.Command{
		Use:   "armctl",
		Short: "Azure Resource Manager operations CLI",
		Long: `armctl drives the Customer Insights, Media Services and Storage
management clients.

It lists and inspects resources across resource groups, runs the common
day-two operations on them, and generates Go models from Swagger documents.`,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := createLogger(logVerbosity)
			ctx = base.ContextWithCorrelation(logr.NewContext(ctx, logger))

			globals, cleanup, err := setup(ctx, configPath)
			if err != nil {
				return err
			}
			shutdown = cleanup

			cmd.SetContext(base.ContextWithGlobals(ctx, globals))
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	cmd.PersistentFlags().IntVarP(&logVerbosity, "verbosity", "v", 0, "set the verbosity level")
	cmd.PersistentFlags().StringVar(&configPath, "config", configPath, "path to a profile file [env: "+base.EnvConfig+"]")

	// Define command groups
	cmd.AddGroup(&cobra.Group{
		ID:    mainGroupID,
		Title: "Main Commands:",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    helperGroupID,
		Title: "Helper Commands:",
	})

	// Add main subcommands
	mainCommands := []func(string) (*cobra.Command, error){
		inventory.NewInventoryCommand,
		customerinsights.NewCustomerInsightsCommand,
		mediaservices.NewMediaServicesCommand,
		storage.NewStorageCommand,
	}
	for _, newCmd := range mainCommands {
		c, err := newCmd(mainGroupID)
		if err != nil {
			logger.Error(err, "failed to create command")
			os.Exit(1)
		}
		cmd.AddCommand(c)
	}

	// Add helper subcommands
	helperCommands := []func(string) (*cobra.Command, error){
		generate.NewGenerateCommand,
		version.NewCommand,
	}
	for _, newCmd := range helperCommands {
		c, err := newCmd(helperGroupID)
		if err != nil {
			logger.Error(err, "failed to create command")
			os.Exit(1)
		}
		cmd.AddCommand(c)
	}

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	err := cmd.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error(shutdownErr, "failed to shut down telemetry")
	}

	if err != nil {
		logger.Error(err, "command failed")
		os.Exit(1)
	}
}

func createLogger(verbosity int) logr.Logger {
	prettyHandler := prettylog.NewHandler(&slog.HandlerOptions{
		Level:       slog.Level(verbosity * -1),
		AddSource:   false,
		ReplaceAttr: nil,
	})
	return logr.FromSlogHandler(prettyHandler)
}
