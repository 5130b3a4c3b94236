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

	"github.com/go-logr/logr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/output"
	"github.com/Azure/azure-mgmt-go/internal/utils"
)

const (
	transformsGroupID = "transforms"
	jobsGroupID       = "jobs"
)

func NewMediaServicesCommand(group string) (*cobra.Command, error) {
	msCmd := &cobra.Command{
		Use:     "mediaservices",
		Aliases: []string{"media"},
		Short:   "Manage Media Services transforms and jobs",
		Long:    "Inspect Microsoft.Media transforms and manage the encoding jobs submitted to them.",
		GroupID: group,
	}
	msCmd.AddGroup(
		&cobra.Group{ID: transformsGroupID, Title: "Transform Commands:"},
		&cobra.Group{ID: jobsGroupID, Title: "Job Commands:"},
	)

	transformsCmd := &cobra.Command{
		Use:     "transforms",
		Short:   "Inspect transforms",
		GroupID: transformsGroupID,
	}
	transformOpts := DefaultTransformOptions()
	listTransformsCmd := &cobra.Command{
		Use:   "list",
		Short: "List the transforms of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			transformOpts.Out = cmd.OutOrStdout()
			return transformOpts.Run(cmd.Context())
		},
	}
	if err := BindTransformOptions(transformOpts, listTransformsCmd); err != nil {
		return nil, err
	}
	transformsCmd.AddCommand(listTransformsCmd)

	jobsCmd := &cobra.Command{
		Use:     "jobs",
		Short:   "Manage jobs",
		GroupID: jobsGroupID,
	}
	listOpts := DefaultJobOptions()
	listJobsCmd := &cobra.Command{
		Use:   "list",
		Short: "List the jobs of a transform",
		RunE: func(cmd *cobra.Command, args []string) error {
			listOpts.Out = cmd.OutOrStdout()
			return listOpts.Run(cmd.Context(), (*CompletedJobOptions).List)
		},
	}
	if err := BindJobOptions(listOpts, listJobsCmd, false); err != nil {
		return nil, err
	}
	cancelOpts := DefaultJobOptions()
	cancelJobCmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			cancelOpts.Out = cmd.OutOrStdout()
			return cancelOpts.Run(cmd.Context(), (*CompletedJobOptions).Cancel)
		},
	}
	if err := BindJobOptions(cancelOpts, cancelJobCmd, true); err != nil {
		return nil, err
	}
	jobsCmd.AddCommand(listJobsCmd, cancelJobCmd)

	msCmd.AddCommand(transformsCmd, jobsCmd)
	return msCmd, nil
}

func (opts *RawTransformOptions) Run(ctx context.Context) error {
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

func (o *CompletedTransformOptions) Run(ctx context.Context) error {
	transforms, err := o.Client.ListTransforms(ctx, o.ResourceGroup, o.AccountName)
	if err != nil {
		return err
	}

	result := output.Result{
		Value:  transforms,
		Header: table.Row{"Name", "Outputs", "Description", "Last Modified"},
	}
	for _, transform := range transforms {
		row := table.Row{output.Deref(transform.Name), 0, "-", "-"}
		if props := transform.Properties; props != nil {
			row[1] = len(props.Outputs)
			row[2] = output.Deref(props.Description)
			row[3] = output.Deref(props.LastModified)
		}
		result.Rows = append(result.Rows, row)
	}
	return output.Write(o.Out, o.OutputFormat, result)
}

func (opts *RawJobOptions) Run(ctx context.Context, action func(*CompletedJobOptions, context.Context) error) error {
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

func (o *CompletedJobOptions) List(ctx context.Context) error {
	jobs, err := o.Client.ListJobs(ctx, o.ResourceGroup, o.AccountName, o.TransformName, o.Filter)
	if err != nil {
		return err
	}

	result := output.Result{
		Value:  jobs,
		Header: table.Row{"Name", "State", "Priority", "Created"},
	}
	for _, job := range jobs {
		row := table.Row{output.Deref(job.Name), "-", "-", "-"}
		if props := job.Properties; props != nil {
			row[1] = output.Deref(props.State)
			row[2] = output.Deref(props.Priority)
			row[3] = output.Deref(props.Created)
		}
		result.Rows = append(result.Rows, row)
	}
	return output.Write(o.Out, o.OutputFormat, result)
}

func (o *CompletedJobOptions) Cancel(ctx context.Context) error {
	logr.FromContextOrDiscard(ctx).Info("Canceling job", utils.LogValues{}.
		AddOperation("cancelJob").
		AddResourceGroup(o.ResourceGroup).
		AddResourceName(o.JobName)...)
	if err := o.Client.CancelJob(ctx, o.ResourceGroup, o.AccountName, o.TransformName, o.JobName); err != nil {
		return err
	}
	_, err := fmt.Fprintf(o.Out, "Cancellation of job %s requested\n", o.JobName)
	return err
}
