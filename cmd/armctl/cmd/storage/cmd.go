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
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/output"
	"github.com/Azure/azure-mgmt-go/internal/utils"
)

const queuesGroupID = "queues"

func NewStorageCommand(group string) (*cobra.Command, error) {
	storageCmd := &cobra.Command{
		Use:     "storage",
		Short:   "Manage storage account queues",
		Long:    "Manage the queues of Microsoft.Storage accounts through the Resource Manager.",
		GroupID: group,
	}
	storageCmd.AddGroup(&cobra.Group{
		ID:    queuesGroupID,
		Title: "Queue Commands:",
	})

	queuesCmd := &cobra.Command{
		Use:     "queues",
		Short:   "Manage queues",
		GroupID: queuesGroupID,
	}

	for _, sub := range []struct {
		use          string
		short        string
		requireQueue bool
		withMetadata bool
		action       func(*CompletedQueueOptions, context.Context) error
	}{
		{use: "list", short: "List the queues of a storage account", action: (*CompletedQueueOptions).List},
		{use: "create", short: "Create a queue", requireQueue: true, withMetadata: true, action: (*CompletedQueueOptions).Create},
		{use: "delete", short: "Delete a queue", requireQueue: true, action: (*CompletedQueueOptions).Delete},
	} {
		opts := DefaultQueueOptions()
		cmd := &cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				opts.Out = cmd.OutOrStdout()
				return opts.Run(cmd.Context(), sub.action)
			},
		}
		if err := BindQueueOptions(opts, cmd, sub.requireQueue, sub.withMetadata); err != nil {
			return nil, err
		}
		queuesCmd.AddCommand(cmd)
	}

	storageCmd.AddCommand(queuesCmd)
	return storageCmd, nil
}

func (opts *RawQueueOptions) Run(ctx context.Context, action func(*CompletedQueueOptions, context.Context) error) error {
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

func (o *CompletedQueueOptions) List(ctx context.Context) error {
	queues, err := o.Client.ListQueues(ctx, o.ResourceGroup, o.AccountName, o.Prefix)
	if err != nil {
		return err
	}

	result := output.Result{
		Value:  queues,
		Header: table.Row{"Name", "Metadata"},
	}
	for _, queue := range queues {
		var metadata map[string]*string
		if queue.QueueProperties != nil {
			metadata = queue.QueueProperties.Metadata
		}
		result.Rows = append(result.Rows, table.Row{output.Deref(queue.Name), formatMetadata(metadata)})
	}
	return output.Write(o.Out, o.OutputFormat, result)
}

func (o *CompletedQueueOptions) Create(ctx context.Context) error {
	var metadata map[string]*string
	if len(o.Metadata) > 0 {
		metadata = make(map[string]*string, len(o.Metadata))
		for key, value := range o.Metadata {
			metadata[key] = to.Ptr(value)
		}
	}

	logr.FromContextOrDiscard(ctx).Info("Creating queue", queueLogValues(o)...)
	queue, err := o.Client.CreateQueue(ctx, o.ResourceGroup, o.AccountName, o.QueueName, metadata)
	if err != nil {
		return err
	}

	row := table.Row{output.Deref(queue.Name), "-", "-"}
	if props := queue.QueueProperties; props != nil {
		row[1] = formatMetadata(props.Metadata)
		row[2] = output.Deref(props.ApproximateMessageCount)
	}
	return output.Write(o.Out, o.OutputFormat, output.Result{
		Value:  queue,
		Header: table.Row{"Name", "Metadata", "Approximate Messages"},
		Rows:   []table.Row{row},
	})
}

func (o *CompletedQueueOptions) Delete(ctx context.Context) error {
	logr.FromContextOrDiscard(ctx).Info("Deleting queue", queueLogValues(o)...)
	if err := o.Client.DeleteQueue(ctx, o.ResourceGroup, o.AccountName, o.QueueName); err != nil {
		return err
	}
	_, err := fmt.Fprintf(o.Out, "Deleted queue %s\n", o.QueueName)
	return err
}

func queueLogValues(o *CompletedQueueOptions) utils.LogValues {
	return utils.LogValues{}.
		AddResourceGroup(o.ResourceGroup).
		AddResourceType("Microsoft.Storage/storageAccounts/queueServices/queues").
		AddResourceName(o.QueueName)
}

// formatMetadata renders metadata as sorted key=value pairs.
func formatMetadata(metadata map[string]*string) string {
	if len(metadata) == 0 {
		return "-"
	}
	pairs := make([]string, 0, len(metadata))
	for _, key := range slices.Sorted(maps.Keys(metadata)) {
		value := ""
		if metadata[key] != nil {
			value = *metadata[key]
		}
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, ",")
}
