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
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-mgmt-go/internal/config"
)

const testSubscriptionID = "00000000-0000-0000-0000-000000000000"

func TestBindBaseOptionsPrecedence(t *testing.T) {
	t.Setenv(EnvSubscription, testSubscriptionID)
	t.Setenv(EnvResourceGroup, "env-rg")
	t.Setenv(EnvOutput, "json")
	t.Setenv(EnvCloud, "")

	opts := DefaultBaseOptions()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	require.NoError(t, BindBaseOptions(opts, cmd))
	cmd.SetArgs([]string{"-g", "flag-rg"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, testSubscriptionID, opts.SubscriptionID)
	assert.Equal(t, "flag-rg", opts.ResourceGroup)
	assert.Equal(t, "json", opts.OutputFormat)
	assert.Empty(t, opts.Cloud)
}

func TestValidateBaseOptions(t *testing.T) {
	profile := config.Default()
	profile.SubscriptionID = "11111111-1111-1111-1111-111111111111"
	profile.ResourceGroup = "profile-rg"
	profile.Output = "json"
	profileCtx := ContextWithGlobals(context.Background(), &Globals{Profile: profile})

	for _, tc := range []struct {
		name    string
		ctx     context.Context
		opts    BaseOptions
		want    BaseOptions
		wantErr string
	}{
		{
			name: "defaults",
			ctx:  context.Background(),
			opts: BaseOptions{SubscriptionID: testSubscriptionID},
			want: BaseOptions{SubscriptionID: testSubscriptionID, OutputFormat: "table", Cloud: "AzurePublicCloud"},
		},
		{
			name: "profile fills unset values",
			ctx:  profileCtx,
			opts: BaseOptions{ResourceGroup: "flag-rg"},
			want: BaseOptions{
				SubscriptionID: "11111111-1111-1111-1111-111111111111",
				ResourceGroup:  "flag-rg",
				OutputFormat:   "json",
				Cloud:          "AzurePublicCloud",
			},
		},
		{
			name:    "missing subscription",
			ctx:     context.Background(),
			wantErr: "subscription ID is required",
		},
		{
			name:    "invalid subscription",
			ctx:     context.Background(),
			opts:    BaseOptions{SubscriptionID: "not-a-uuid"},
			wantErr: `invalid subscription ID "not-a-uuid"`,
		},
		{
			name:    "invalid output",
			ctx:     context.Background(),
			opts:    BaseOptions{SubscriptionID: testSubscriptionID, OutputFormat: "yaml"},
			wantErr: "output format must be 'table' or 'json', got: yaml",
		},
		{
			name:    "unknown cloud",
			ctx:     context.Background(),
			opts:    BaseOptions{SubscriptionID: testSubscriptionID, Cloud: "AzureStackCloud"},
			wantErr: "AzureStackCloud",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.opts
			err := ValidateBaseOptions(tc.ctx, &opts)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, opts.Out)
			opts.Out = nil
			assert.Equal(t, tc.want, opts)
		})
	}
}

func TestRequireResourceGroup(t *testing.T) {
	require.EqualError(t, RequireResourceGroup(&BaseOptions{}), "resource group is required")
	require.NoError(t, RequireResourceGroup(&BaseOptions{ResourceGroup: "rg"}))
}

func TestGlobalsFromContext(t *testing.T) {
	globals := GlobalsFromContext(context.Background())
	require.NotNil(t, globals.Profile)
	assert.Equal(t, config.Default(), globals.Profile)

	stored := &Globals{}
	assert.Same(t, stored, GlobalsFromContext(ContextWithGlobals(context.Background(), stored)))
	assert.NotNil(t, stored.Profile)
}
