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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/mediaservices/armmediaservices"
)

const testSubscriptionID = "00000000-0000-0000-0000-000000000000"

func newJobOptions(client azure.MediaServices, out *bytes.Buffer, format string) *CompletedJobOptions {
	raw := &RawJobOptions{
		BaseOptions: &base.BaseOptions{
			SubscriptionID: testSubscriptionID,
			ResourceGroup:  "rg",
			OutputFormat:   format,
			Out:            out,
		},
		AccountName:   "studio",
		TransformName: "encode",
	}
	return &CompletedJobOptions{
		validatedJobOptions: &validatedJobOptions{RawJobOptions: raw},
		Client:              client,
	}
}

func TestTransformsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockMediaServices(ctrl)
	client.EXPECT().ListTransforms(gomock.Any(), "rg", "studio").Return([]*armmediaservices.Transform{
		{
			Name: to.Ptr("encode"),
			Properties: &armmediaservices.TransformProperties{
				Description: to.Ptr("adaptive streaming"),
				Outputs:     []*armmediaservices.TransformOutput{{}, {}},
			},
		},
	}, nil)

	var out bytes.Buffer
	raw := &RawTransformOptions{
		BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID, ResourceGroup: "rg", OutputFormat: "table", Out: &out},
		AccountName: "studio",
	}
	completed := &CompletedTransformOptions{
		validatedTransformOptions: &validatedTransformOptions{RawTransformOptions: raw},
		Client:                    client,
	}
	require.NoError(t, completed.Run(t.Context()))
	assert.Contains(t, out.String(), "adaptive streaming")
	assert.Regexp(t, `│\s+2\s+│`, out.String())
}

func TestJobsList(t *testing.T) {
	jobs := []*armmediaservices.Job{
		{
			Name: to.Ptr("job-1"),
			Properties: &armmediaservices.JobProperties{
				State:    to.Ptr(armmediaservices.JobStateProcessing),
				Priority: to.Ptr(armmediaservices.PriorityHigh),
			},
		},
		{Name: to.Ptr("job-2")},
	}

	for _, tc := range []struct {
		name   string
		format string
		filter string
		check  func(t *testing.T, out []byte)
	}{
		{
			name:   "table without filter",
			format: "table",
			check: func(t *testing.T, out []byte) {
				assert.Contains(t, string(out), "Processing")
				assert.Contains(t, string(out), "High")
				assert.Contains(t, string(out), "job-2")
			},
		},
		{
			name:   "json with filter",
			format: "json",
			filter: "properties/state eq 'Processing'",
			check: func(t *testing.T, out []byte) {
				var decoded []map[string]any
				require.NoError(t, json.Unmarshal(out, &decoded))
				require.Len(t, decoded, 2)
				assert.Equal(t, "job-1", decoded[0]["name"])
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := azure.NewMockMediaServices(ctrl)
			client.EXPECT().ListJobs(gomock.Any(), "rg", "studio", "encode", tc.filter).Return(jobs, nil)

			var out bytes.Buffer
			opts := newJobOptions(client, &out, tc.format)
			opts.Filter = tc.filter
			require.NoError(t, opts.List(t.Context()))
			tc.check(t, out.Bytes())
		})
	}
}

func TestJobsCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockMediaServices(ctrl)
	client.EXPECT().CancelJob(gomock.Any(), "rg", "studio", "encode", "job-1").Return(nil)

	var out bytes.Buffer
	opts := newJobOptions(client, &out, "table")
	opts.JobName = "job-1"
	require.NoError(t, opts.Cancel(t.Context()))
	assert.Equal(t, "Cancellation of job job-1 requested\n", out.String())
}

func TestJobValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		opts    *RawJobOptions
		wantErr string
	}{
		{
			name: "missing transform",
			opts: &RawJobOptions{
				BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID, ResourceGroup: "rg"},
				AccountName: "studio",
			},
			wantErr: "account and transform names are required",
		},
		{
			name: "cancel without job",
			opts: &RawJobOptions{
				BaseOptions:   &base.BaseOptions{SubscriptionID: testSubscriptionID, ResourceGroup: "rg"},
				AccountName:   "studio",
				TransformName: "encode",
				requireJob:    true,
			},
			wantErr: "job name is required",
		},
		{
			name: "invalid output",
			opts: &RawJobOptions{
				BaseOptions:   &base.BaseOptions{SubscriptionID: testSubscriptionID, ResourceGroup: "rg", OutputFormat: "yaml"},
				AccountName:   "studio",
				TransformName: "encode",
			},
			wantErr: "output format must be 'table' or 'json'",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.opts.Validate(t.Context())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCommandTree(t *testing.T) {
	cmd, err := NewMediaServicesCommand("")
	require.NoError(t, err)

	for _, path := range [][]string{
		{"transforms", "list"},
		{"jobs", "list"},
		{"jobs", "cancel"},
	} {
		found, _, err := cmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], found.Name())
	}

	cancel, _, err := cmd.Find([]string{"jobs", "cancel"})
	require.NoError(t, err)
	assert.NotNil(t, cancel.Flags().Lookup("job"))
	assert.Nil(t, cancel.Flags().Lookup("filter"))
}
