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
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/Azure/azure-mgmt-go/cmd/armctl/cmd/base"
	"github.com/Azure/azure-mgmt-go/cmd/armctl/internal/azure"
	"github.com/Azure/azure-mgmt-go/internal/config"
	"github.com/Azure/azure-mgmt-go/internal/tracing"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/customerinsights/armcustomerinsights"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/mediaservices/armmediaservices"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/storage/armstorage"
)

const testSubscriptionID = "00000000-0000-0000-0000-000000000000"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

type mocks struct {
	resourceGroups   *azure.MockResourceGroups
	customerInsights *azure.MockCustomerInsights
	mediaServices    *azure.MockMediaServices
	storageQueues    *azure.MockStorageQueues
}

func newCompleted(t *testing.T, raw *RawInventoryOptions, accounts []StorageAccount, metrics mgmt.Emitter) (*CompletedInventoryOptions, *mocks, *tracetest.SpanRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		resourceGroups:   azure.NewMockResourceGroups(ctrl),
		customerInsights: azure.NewMockCustomerInsights(ctrl),
		mediaServices:    azure.NewMockMediaServices(ctrl),
		storageQueues:    azure.NewMockStorageQueues(ctrl),
	}
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return &CompletedInventoryOptions{
		validatedInventoryOptions: &validatedInventoryOptions{RawInventoryOptions: raw, accounts: accounts},
		ResourceGroups:            m.resourceGroups,
		CustomerInsights:          m.customerInsights,
		MediaServices:             m.mediaServices,
		StorageQueues:             m.storageQueues,
		Tracer:                    provider.Tracer(tracerName),
		Metrics:                   metrics,
	}, m, recorder
}

func newRaw(out *bytes.Buffer, providers ...string) *RawInventoryOptions {
	if len(providers) == 0 {
		providers = knownProviders
	}
	return &RawInventoryOptions{
		BaseOptions: &base.BaseOptions{
			SubscriptionID: testSubscriptionID,
			OutputFormat:   "json",
			Out:            out,
		},
		Parallelism: 2,
		Providers:   providers,
	}
}

func hubs(n int) []*armcustomerinsights.Hub {
	return make([]*armcustomerinsights.Hub, n)
}

func TestCollect(t *testing.T) {
	var out bytes.Buffer
	registry := prometheus.NewRegistry()
	completed, m, recorder := newCompleted(t, newRaw(&out),
		[]StorageAccount{{ResourceGroup: "RG-A", Name: "contosodata"}, {ResourceGroup: "rg-c", Name: "unused"}},
		mgmt.NewPrometheusEmitter(registry))

	m.resourceGroups.EXPECT().ListResourceGroups(gomock.Any()).Return([]string{"rg-b", "rg-a"}, nil)
	m.customerInsights.EXPECT().ListHubs(gomock.Any(), "rg-a").Return(hubs(2), nil)
	m.customerInsights.EXPECT().ListHubs(gomock.Any(), "rg-b").Return(hubs(1), nil)
	m.mediaServices.EXPECT().ListAccounts(gomock.Any(), "rg-a").Return([]*armmediaservices.MediaService{{}}, nil)
	m.mediaServices.EXPECT().ListAccounts(gomock.Any(), "rg-b").Return(nil, nil)
	m.storageQueues.EXPECT().ListQueues(gomock.Any(), "rg-a", "contosodata", "").Return(make([]*armstorage.ListQueue, 3), nil)

	require.NoError(t, completed.Run(t.Context()))

	var inventory Inventory
	require.NoError(t, json.Unmarshal(out.Bytes(), &inventory))
	require.Len(t, inventory.ResourceGroups, 2)

	byName := map[string]*ResourceGroupInventory{}
	for _, rg := range inventory.ResourceGroups {
		byName[rg.ResourceGroup] = rg
	}
	assert.Equal(t, 2, *byName["rg-a"].Hubs)
	assert.Equal(t, 1, *byName["rg-a"].MediaServices)
	assert.Equal(t, 3, *byName["rg-a"].Queues)
	assert.Equal(t, 1, *byName["rg-b"].Hubs)
	assert.Equal(t, 0, *byName["rg-b"].MediaServices)
	assert.Nil(t, byName["rg-b"].Queues, "no storage account is configured for rg-b")

	assert.Equal(t, 3, *inventory.Totals.Hubs)
	assert.Equal(t, 1, *inventory.Totals.MediaServices)
	assert.Equal(t, 3, *inventory.Totals.Queues)

	count, err := testutil.GatherAndCount(registry, metricInventoryResources)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	names := map[string]int{}
	for _, span := range recorder.Ended() {
		names[span.Name()]++
		if span.Name() == "inventory.storage" {
			assert.Contains(t, span.Attributes(), tracing.ResourceCountKey.Int(3))
			assert.Contains(t, span.Attributes(), tracing.ProviderKey.String(config.ProviderStorage))
		}
		if span.Name() == "inventory" {
			assert.Contains(t, span.Attributes(), attribute.String("armctl.subscription.id", testSubscriptionID))
		}
	}
	assert.Equal(t, map[string]int{
		"inventory":                  1,
		"inventory.resourceGroup":    2,
		"inventory.customerinsights": 2,
		"inventory.mediaservices":    2,
		"inventory.storage":          1,
	}, names)
}

func TestCollectSingleResourceGroup(t *testing.T) {
	var out bytes.Buffer
	raw := newRaw(&out, config.ProviderCustomerInsights)
	raw.ResourceGroup = "rg-a"
	completed, m, _ := newCompleted(t, raw, nil, nil)

	m.customerInsights.EXPECT().ListHubs(gomock.Any(), "rg-a").Return(hubs(4), nil)

	inventory, err := completed.Collect(t.Context())
	require.NoError(t, err)
	require.Len(t, inventory.ResourceGroups, 1)
	assert.Equal(t, 4, *inventory.ResourceGroups[0].Hubs)
	assert.Nil(t, inventory.ResourceGroups[0].MediaServices)
	assert.Nil(t, inventory.Totals.MediaServices)
}

func TestCollectTreatsMissingRegistrationAsEmpty(t *testing.T) {
	var out bytes.Buffer
	completed, m, _ := newCompleted(t, newRaw(&out, config.ProviderMediaServices), nil, nil)

	m.resourceGroups.EXPECT().ListResourceGroups(gomock.Any()).Return([]string{"rg-a"}, nil)
	m.mediaServices.EXPECT().ListAccounts(gomock.Any(), "rg-a").Return(nil, &azcore.ResponseError{
		ErrorCode:  errorCodeMissingRegistration,
		StatusCode: http.StatusConflict,
	})

	inventory, err := completed.Collect(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, *inventory.ResourceGroups[0].MediaServices)
}

func TestCollectFailure(t *testing.T) {
	var out bytes.Buffer
	raw := newRaw(&out, config.ProviderCustomerInsights)
	raw.Parallelism = 1
	completed, m, recorder := newCompleted(t, raw, nil, nil)

	m.resourceGroups.EXPECT().ListResourceGroups(gomock.Any()).Return([]string{"rg-a"}, nil)
	m.customerInsights.EXPECT().ListHubs(gomock.Any(), "rg-a").Return(nil, errors.New("boom"))

	_, err := completed.Collect(t.Context())
	require.Error(t, err)
	assert.EqualError(t, err, "failed to inventory resource group rg-a: boom")
	assert.Empty(t, out.String())

	for _, span := range recorder.Ended() {
		assert.NotEmpty(t, span.Events(), "span %s should record the error", span.Name())
	}
}

func TestValidate(t *testing.T) {
	profile := config.Default()
	profile.Inventory.Parallelism = 8
	profile.Inventory.StorageAccounts = []config.StorageAccount{{ResourceGroup: "rg-a", Name: "contosodata"}}
	ctx := base.ContextWithGlobals(t.Context(), &base.Globals{Profile: profile})

	for _, tc := range []struct {
		name    string
		opts    *RawInventoryOptions
		check   func(t *testing.T, validated *ValidatedInventoryOptions)
		wantErr string
	}{
		{
			name: "profile defaults",
			opts: &RawInventoryOptions{BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID}},
			check: func(t *testing.T, validated *ValidatedInventoryOptions) {
				assert.Equal(t, 8, validated.Parallelism)
				assert.Equal(t, knownProviders, validated.Providers)
				assert.Equal(t, []StorageAccount{{ResourceGroup: "rg-a", Name: "contosodata"}}, validated.accounts)
			},
		},
		{
			name: "flags override profile",
			opts: &RawInventoryOptions{
				BaseOptions:     &base.BaseOptions{SubscriptionID: testSubscriptionID},
				Parallelism:     2,
				Providers:       []string{config.ProviderStorage},
				StorageAccounts: []string{"rg-b/fabrikamdata"},
			},
			check: func(t *testing.T, validated *ValidatedInventoryOptions) {
				assert.Equal(t, 2, validated.Parallelism)
				assert.Equal(t, []string{config.ProviderStorage}, validated.Providers)
				assert.Equal(t, []StorageAccount{{ResourceGroup: "rg-b", Name: "fabrikamdata"}}, validated.accounts)
			},
		},
		{
			name: "parallelism out of range",
			opts: &RawInventoryOptions{
				BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID},
				Parallelism: 65,
			},
			wantErr: "parallelism must be between 1 and 64",
		},
		{
			name: "unknown provider",
			opts: &RawInventoryOptions{
				BaseOptions: &base.BaseOptions{SubscriptionID: testSubscriptionID},
				Providers:   []string{"compute"},
			},
			wantErr: `unknown provider "compute"`,
		},
		{
			name: "malformed storage account",
			opts: &RawInventoryOptions{
				BaseOptions:     &base.BaseOptions{SubscriptionID: testSubscriptionID},
				StorageAccounts: []string{"contosodata"},
			},
			wantErr: `invalid storage account "contosodata"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			validated, err := tc.opts.Validate(ctx)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, validated)
		})
	}
}

func TestTableOutputIsSortedWithTotals(t *testing.T) {
	two, three := 2, 3
	inventory := &Inventory{
		ResourceGroups: []*ResourceGroupInventory{
			{ResourceGroup: "rg-b", Hubs: &three},
			{ResourceGroup: "RG-A", Hubs: &two},
		},
		Totals: ResourceGroupInventory{ResourceGroup: "Total", Hubs: addCount(&two, &three)},
	}

	result := inventory.result()
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "RG-A", result.Rows[0][0])
	assert.Equal(t, "rg-b", result.Rows[1][0])
	assert.Equal(t, 5, result.Footer[1])
	assert.Equal(t, "-", result.Footer[2])
	assert.Equal(t, "rg-b", inventory.ResourceGroups[0].ResourceGroup, "sorting must not reorder the JSON value")
}
