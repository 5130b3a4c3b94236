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

	"github.com/go-logr/logr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/output"
	"github.com/Azure/azure-mgmt-go/internal/config"
	"github.com/Azure/azure-mgmt-go/internal/tracing"
	"github.com/Azure/azure-mgmt-go/internal/utils"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	metricInventoryResources = "armctl_inventory_resources"

	// Returned when the subscription is not registered for a provider; the
	// provider then has no resources to count.
	errorCodeMissingRegistration = "MissingSubscriptionRegistration"
)

// ResourceGroupInventory holds the resource counts of one resource group.
// Counts of providers that were not inventoried are nil.
type ResourceGroupInventory struct {
	ResourceGroup string `json:"resourceGroup"`
	Hubs          *int   `json:"hubs,omitempty"`
	MediaServices *int   `json:"mediaServices,omitempty"`
	Queues        *int   `json:"queues,omitempty"`
}

// Inventory is the result of the inventory command.
type Inventory struct {
	SubscriptionID string                    `json:"subscriptionId"`
	ResourceGroups []*ResourceGroupInventory `json:"resourceGroups"`
	Totals         ResourceGroupInventory    `json:"totals"`
}

func NewInventoryCommand(group string) (*cobra.Command, error) {
	opts := DefaultInventoryOptions()

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Count resources across resource groups",
		Long: `Count Customer Insights hubs, Media Services accounts and storage queues
in every resource group of a subscription.

Resource groups are inventoried concurrently. Pass --resource-group to
restrict the inventory to a single group.`,
		GroupID: group,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			return opts.Run(cmd.Context())
		},
	}

	if err := BindInventoryOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (opts *RawInventoryOptions) Run(ctx context.Context) error {
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

func (o *CompletedInventoryOptions) Run(ctx context.Context) error {
	inventory, err := o.Collect(ctx)
	if err != nil {
		return err
	}
	return output.Write(o.Out, o.OutputFormat, inventory.result())
}

// Collect counts the resources of every resource group, at most Parallelism
// groups at a time. The first failure cancels the remaining work.
func (o *CompletedInventoryOptions) Collect(ctx context.Context) (*Inventory, error) {
	logger := logr.FromContextOrDiscard(ctx)

	ctx, span := o.Tracer.Start(ctx, "inventory")
	defer span.End()
	span.SetAttributes(tracing.CommandKey.String("armctl inventory"))
	tracing.SetScopeAttributes(span, o.SubscriptionID, o.ResourceGroup)

	resourceGroups := []string{o.ResourceGroup}
	if o.ResourceGroup == "" {
		var err error
		if resourceGroups, err = o.ResourceGroups.ListResourceGroups(ctx); err != nil {
			return nil, recordError(span, err)
		}
	}
	logger.V(1).Info("Inventorying resource groups", "count", len(resourceGroups), "parallelism", o.Parallelism)

	inventory := &Inventory{
		SubscriptionID: o.SubscriptionID,
		ResourceGroups: make([]*ResourceGroupInventory, len(resourceGroups)),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(o.Parallelism)
	for i, resourceGroup := range resourceGroups {
		group.Go(func() error {
			result, err := o.inventoryResourceGroup(groupCtx, resourceGroup)
			if err != nil {
				return fmt.Errorf("failed to inventory resource group %s: %w", resourceGroup, err)
			}
			inventory.ResourceGroups[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, recordError(span, err)
	}

	inventory.Totals = ResourceGroupInventory{ResourceGroup: "Total"}
	for _, result := range inventory.ResourceGroups {
		inventory.Totals.Hubs = addCount(inventory.Totals.Hubs, result.Hubs)
		inventory.Totals.MediaServices = addCount(inventory.Totals.MediaServices, result.MediaServices)
		inventory.Totals.Queues = addCount(inventory.Totals.Queues, result.Queues)
	}
	return inventory, nil
}

func (o *CompletedInventoryOptions) inventoryResourceGroup(ctx context.Context, resourceGroup string) (*ResourceGroupInventory, error) {
	ctx, span := o.Tracer.Start(ctx, "inventory.resourceGroup")
	defer span.End()
	tracing.SetScopeAttributes(span, o.SubscriptionID, resourceGroup)

	result := &ResourceGroupInventory{ResourceGroup: resourceGroup}
	for _, provider := range o.Providers {
		var (
			count *int
			err   error
		)
		switch provider {
		case config.ProviderCustomerInsights:
			count, err = o.count(ctx, provider, resourceGroup, func(ctx context.Context) (int, error) {
				hubs, err := o.CustomerInsights.ListHubs(ctx, resourceGroup)
				return len(hubs), err
			})
			result.Hubs = count
		case config.ProviderMediaServices:
			count, err = o.count(ctx, provider, resourceGroup, func(ctx context.Context) (int, error) {
				accounts, err := o.MediaServices.ListAccounts(ctx, resourceGroup)
				return len(accounts), err
			})
			result.MediaServices = count
		case config.ProviderStorage:
			accounts := o.accountsIn(resourceGroup)
			if len(accounts) == 0 {
				continue
			}
			count, err = o.count(ctx, provider, resourceGroup, func(ctx context.Context) (int, error) {
				total := 0
				for _, account := range accounts {
					queues, err := o.StorageQueues.ListQueues(ctx, resourceGroup, account, "")
					if err != nil {
						return 0, fmt.Errorf("storage account %s: %w", account, err)
					}
					total += len(queues)
				}
				return total, nil
			})
			result.Queues = count
		}
		if err != nil {
			return nil, recordError(span, err)
		}
	}
	return result, nil
}

// count runs list in its own span and reports the result as a gauge.
func (o *CompletedInventoryOptions) count(ctx context.Context, provider, resourceGroup string, list func(context.Context) (int, error)) (*int, error) {
	ctx, span := o.Tracer.Start(ctx, "inventory."+provider, trace.WithAttributes(tracing.ProviderKey.String(provider)))
	defer span.End()

	n, err := list(ctx)
	if mgmt.HasErrorCode(err, errorCodeMissingRegistration) {
		logr.FromContextOrDiscard(ctx).V(1).Info("Subscription is not registered for provider",
			utils.LogValues{}.AddProvider(provider).AddSubscriptionID(o.SubscriptionID)...)
		n, err = 0, nil
	}
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(tracing.ResourceCountKey.Int(n))
	if o.Metrics != nil {
		o.Metrics.EmitGauge(metricInventoryResources, float64(n), map[string]string{
			"provider":       provider,
			"resource_group": resourceGroup,
		})
	}
	return &n, nil
}

// accountsIn returns the configured storage accounts of resourceGroup.
// Resource group names are case-insensitive.
func (o *CompletedInventoryOptions) accountsIn(resourceGroup string) []string {
	var names []string
	for _, account := range o.accounts {
		if strings.EqualFold(account.ResourceGroup, resourceGroup) {
			names = append(names, account.Name)
		}
	}
	return names
}

func (inventory *Inventory) result() output.Result {
	result := output.Result{
		Value:  inventory,
		Header: table.Row{"Resource Group", "Hubs", "Media Services", "Queues"},
	}
	rows := slices.Clone(inventory.ResourceGroups)
	slices.SortFunc(rows, func(a, b *ResourceGroupInventory) int {
		return strings.Compare(strings.ToLower(a.ResourceGroup), strings.ToLower(b.ResourceGroup))
	})
	for _, row := range rows {
		result.Rows = append(result.Rows, row.row())
	}
	result.Footer = inventory.Totals.row()
	return result
}

func (r *ResourceGroupInventory) row() table.Row {
	return table.Row{r.ResourceGroup, output.Deref(r.Hubs), output.Deref(r.MediaServices), output.Deref(r.Queues)}
}

func addCount(total, n *int) *int {
	if n == nil {
		return total
	}
	sum := *n
	if total != nil {
		sum += *total
	}
	return &sum
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
