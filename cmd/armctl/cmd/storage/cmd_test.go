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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/storage/armstorage"
)

const testSubscriptionID = "00000000-0000-0000-0000-000000000000"

func rawQueueOptions(out *bytes.Buffer) *RawQueueOptions {
	return &RawQueueOptions{
		BaseOptions: &base.BaseOptions{
			SubscriptionID: testSubscriptionID,
			ResourceGroup:  "rg",
			OutputFormat:   "table",
			Out:            out,
		},
		AccountName: "contosodata",
	}
}

func completed(raw *RawQueueOptions, client azure.StorageQueues) *CompletedQueueOptions {
	return &CompletedQueueOptions{
		validatedQueueOptions: &validatedQueueOptions{RawQueueOptions: raw},
		Client:                client,
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name         string
		mutate       func(o *RawQueueOptions)
		requireQueue bool
		wantErr      string
	}{
		{
			name: "list",
		},
		{
			name:         "valid queue name",
			mutate:       func(o *RawQueueOptions) { o.QueueName = "a-b" },
			requireQueue: true,
		},
		{
			name:         "queue required",
			requireQueue: true,
			wantErr:      "queue name is required",
		},
		{
			name:    "account with uppercase",
			mutate:  func(o *RawQueueOptions) { o.AccountName = "ContosoData" },
			wantErr: `invalid storage account name "ContosoData"`,
		},
		{
			name:    "account too short",
			mutate:  func(o *RawQueueOptions) { o.AccountName = "ab" },
			wantErr: "invalid storage account name",
		},
		{
			name:         "consecutive hyphens",
			mutate:       func(o *RawQueueOptions) { o.QueueName = "orders--eu" },
			requireQueue: true,
			wantErr:      `invalid queue name "orders--eu"`,
		},
		{
			name:         "trailing hyphen",
			mutate:       func(o *RawQueueOptions) { o.QueueName = "orders-" },
			requireQueue: true,
			wantErr:      "invalid queue name",
		},
		{
			name:         "queue too short",
			mutate:       func(o *RawQueueOptions) { o.QueueName = "ab" },
			requireQueue: true,
			wantErr:      "invalid queue name",
		},
		{
			name:    "empty metadata key",
			mutate:  func(o *RawQueueOptions) { o.Metadata = map[string]string{"": "x"} },
			wantErr: "invalid",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			opts := rawQueueOptions(&out)
			opts.requireQueue = tc.requireQueue
			if tc.mutate != nil {
				tc.mutate(opts)
			}
			_, err := opts.Validate(t.Context())
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockStorageQueues(ctrl)
	client.EXPECT().ListQueues(gomock.Any(), "rg", "contosodata", "ord").Return([]*armstorage.ListQueue{
		{
			Name: to.Ptr("orders"),
			QueueProperties: &armstorage.ListQueueProperties{
				Metadata: map[string]*string{"team": to.Ptr("billing"), "env": to.Ptr("prod")},
			},
		},
		{Name: to.Ptr("ordersdlq")},
	}, nil)

	var out bytes.Buffer
	raw := rawQueueOptions(&out)
	raw.Prefix = "ord"
	require.NoError(t, completed(raw, client).List(t.Context()))
	assert.Contains(t, out.String(), "env=prod,team=billing")
	assert.Contains(t, out.String(), "ordersdlq")
}

func TestCreateConvertsMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockStorageQueues(ctrl)
	client.EXPECT().
		CreateQueue(gomock.Any(), "rg", "contosodata", "orders", map[string]*string{"team": to.Ptr("billing")}).
		Return(&armstorage.StorageQueue{
			Name: to.Ptr("orders"),
			QueueProperties: &armstorage.QueueProperties{
				Metadata:                map[string]*string{"team": to.Ptr("billing")},
				ApproximateMessageCount: to.Ptr[int32](0),
			},
		}, nil)

	var out bytes.Buffer
	raw := rawQueueOptions(&out)
	raw.QueueName = "orders"
	raw.Metadata = map[string]string{"team": "billing"}
	require.NoError(t, completed(raw, client).Create(t.Context()))
	assert.Contains(t, out.String(), "team=billing")
}

func TestCreateWithoutMetadataSendsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockStorageQueues(ctrl)
	client.EXPECT().
		CreateQueue(gomock.Any(), "rg", "contosodata", "orders", gomock.Nil()).
		Return(&armstorage.StorageQueue{Name: to.Ptr("orders")}, nil)

	var out bytes.Buffer
	raw := rawQueueOptions(&out)
	raw.QueueName = "orders"
	require.NoError(t, completed(raw, client).Create(t.Context()))
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := azure.NewMockStorageQueues(ctrl)
	client.EXPECT().DeleteQueue(gomock.Any(), "rg", "contosodata", "orders").Return(nil)

	var out bytes.Buffer
	raw := rawQueueOptions(&out)
	raw.QueueName = "orders"
	require.NoError(t, completed(raw, client).Delete(t.Context()))
	assert.Equal(t, "Deleted queue orders\n", out.String())
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "-", formatMetadata(nil))
	assert.Equal(t, "a=,b=2", formatMetadata(map[string]*string{"b": to.Ptr("2"), "a": nil}))
}
