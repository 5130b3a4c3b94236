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

	"github.com/go-logr/logr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/output"
	"github.com/Azure/azure-mgmt-go/internal/utils"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/customerinsights/armcustomerinsights"
)

const (
	hubsGroupID     = "hubs"
	profilesGroupID = "profiles"
	kpiGroupID      = "kpi"
)

func NewCustomerInsightsCommand(group string) (*cobra.Command, error) {
	ciCmd := &cobra.Command{
		Use:     "customerinsights",
		Aliases: []string{"ci"},
		Short:   "Manage Customer Insights hubs",
		Long:    "Inspect and manage Microsoft.CustomerInsights hubs, their profiles and KPIs.",
		GroupID: group,
	}
	ciCmd.AddGroup(
		&cobra.Group{ID: hubsGroupID, Title: "Hub Commands:"},
		&cobra.Group{ID: profilesGroupID, Title: "Profile Commands:"},
		&cobra.Group{ID: kpiGroupID, Title: "KPI Commands:"},
	)

	for _, newCmd := range []func() (*cobra.Command, error){
		newHubsCommand,
		newProfilesCommand,
		newKpiCommand,
	} {
		c, err := newCmd()
		if err != nil {
			return nil, err
		}
		ciCmd.AddCommand(c)
	}
	return ciCmd, nil
}

func newHubsCommand() (*cobra.Command, error) {
	hubsCmd := &cobra.Command{
		Use:     "hubs",
		Short:   "Manage hubs",
		GroupID: hubsGroupID,
	}

	listOpts := DefaultHubOptions()
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the hubs of a resource group",
		RunE: func(cmd *cobra.Command, args []string) error {
			listOpts.Out = cmd.OutOrStdout()
			return listOpts.Run(cmd.Context(), (*CompletedHubOptions).List)
		},
	}
	if err := BindHubOptions(listOpts, listCmd, false); err != nil {
		return nil, err
	}

	getOpts := DefaultHubOptions()
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show a hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			getOpts.Out = cmd.OutOrStdout()
			return getOpts.Run(cmd.Context(), (*CompletedHubOptions).Get)
		},
	}
	if err := BindHubOptions(getOpts, getCmd, true); err != nil {
		return nil, err
	}

	deleteOpts := DefaultHubOptions()
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a hub and wait for the deletion to finish",
		RunE: func(cmd *cobra.Command, args []string) error {
			deleteOpts.Out = cmd.OutOrStdout()
			return deleteOpts.Run(cmd.Context(), (*CompletedHubOptions).Delete)
		},
	}
	if err := BindHubOptions(deleteOpts, deleteCmd, true); err != nil {
		return nil, err
	}

	hubsCmd.AddCommand(listCmd, getCmd, deleteCmd)
	return hubsCmd, nil
}

func newProfilesCommand() (*cobra.Command, error) {
	profilesCmd := &cobra.Command{
		Use:     "profiles",
		Short:   "Inspect profile types",
		GroupID: profilesGroupID,
	}

	opts := DefaultProfileOptions()
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the profile types of a hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			return opts.Run(cmd.Context())
		},
	}
	if err := BindProfileOptions(opts, listCmd); err != nil {
		return nil, err
	}

	profilesCmd.AddCommand(listCmd)
	return profilesCmd, nil
}

func newKpiCommand() (*cobra.Command, error) {
	kpiCmd := &cobra.Command{
		Use:     "kpi",
		Short:   "Operate on KPIs",
		GroupID: kpiGroupID,
	}

	opts := DefaultKpiOptions()
	reprocessCmd := &cobra.Command{
		Use:   "reprocess",
		Short: "Request reprocessing of a KPI",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			return opts.Run(cmd.Context())
		},
	}
	if err := BindKpiOptions(opts, reprocessCmd); err != nil {
		return nil, err
	}

	kpiCmd.AddCommand(reprocessCmd)
	return kpiCmd, nil
}

func (opts *RawHubOptions) Run(ctx context.Context, action func(*CompletedHubOptions, context.Context) error) error {
	validated, err := opts.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	completed, err := validated.Complete(ctx)
	if err != nil {
		return fmt.Errorf("completion failed: %w", err)
	}

	return action(completed, ctx)
}

func (o *CompletedHubOptions) List(ctx context.Context) error {
	hubs, err := o.Client.ListHubs(ctx, o.ResourceGroup)
	if err != nil {
		return err
	}
	logr.FromContextOrDiscard(ctx).
		WithValues(utils.LogValues{}.AddResourceGroup(o.ResourceGroup)...).
		V(1).Info("Listed hubs", "count", len(hubs))

	result := output.Result{Value: hubs, Header: hubHeader}
	for _, hub := range hubs {
		result.Rows = append(result.Rows, hubRow(hub))
	}
	return output.Write(o.Out, o.OutputFormat, result)
}

func (o *CompletedHubOptions) Get(ctx context.Context) error {
	hub, err := o.Client.GetHub(ctx, o.ResourceGroup, o.HubName)
	if err != nil {
		return err
	}
	if hub.ID != nil {
		logr.FromContextOrDiscard(ctx).V(1).Info("Retrieved hub", utils.LogValues{}.AddLogValuesForResourceIDString(*hub.ID)...)
	}
	return output.Write(o.Out, o.OutputFormat, output.Result{
		Value:  hub,
		Header: hubHeader,
		Rows:   []table.Row{hubRow(hub)},
	})
}

func (o *CompletedHubOptions) Delete(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("Deleting hub", utils.LogValues{}.
		AddSubscriptionID(o.SubscriptionID).
		AddResourceGroup(o.ResourceGroup).
		AddResourceName(o.HubName)...)
	if err := o.Client.DeleteHub(ctx, o.ResourceGroup, o.HubName); err != nil {
		return err
	}
	_, err := fmt.Fprintf(o.Out, "Deleted hub %s\n", o.HubName)
	return err
}

var hubHeader = table.Row{"Name", "Location", "Provisioning State", "API Endpoint"}

func hubRow(hub *armcustomerinsights.Hub) table.Row {
	row := table.Row{output.Deref(hub.Name), output.Deref(hub.Location), "-", "-"}
	if props := hub.Properties; props != nil {
		row[2] = output.Deref(props.ProvisioningState)
		row[3] = output.Deref(props.APIEndpoint)
	}
	return row
}

func (opts *RawProfileOptions) Run(ctx context.Context) error {
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

func (o *CompletedProfileOptions) Run(ctx context.Context) error {
	profiles, err := o.Client.ListProfiles(ctx, o.ResourceGroup, o.HubName, o.LocaleCode)
	if err != nil {
		return err
	}

	result := output.Result{
		Value:  profiles,
		Header: table.Row{"Name", "Type Name", "Entity Type", "Instances"},
	}
	for _, profile := range profiles {
		row := table.Row{output.Deref(profile.Name), "-", "-", "-"}
		if props := profile.Properties; props != nil {
			row[1] = output.Deref(props.TypeName)
			row[2] = output.Deref(props.EntityType)
			row[3] = output.Deref(props.InstancesCount)
		}
		result.Rows = append(result.Rows, row)
	}
	return output.Write(o.Out, o.OutputFormat, result)
}

func (opts *RawKpiOptions) Run(ctx context.Context) error {
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

func (o *CompletedKpiOptions) Run(ctx context.Context) error {
	if err := o.Client.ReprocessKpi(ctx, o.ResourceGroup, o.HubName, o.KpiName); err != nil {
		return err
	}
	_, err := fmt.Fprintf(o.Out, "Reprocessing of KPI %s in hub %s accepted\n", o.KpiName, o.HubName)
	return err
}
