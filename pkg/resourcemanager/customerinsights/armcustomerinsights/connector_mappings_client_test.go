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

package armcustomerinsights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

func TestConnectorMappings(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewConnectorMappingsClient()
	ctx := context.Background()

	mapping := ConnectorMappingResourceFormat{
		Properties: &ConnectorMapping{
			EntityType:     to(EntityTypesInteraction),
			EntityTypeName: to("TestInteractionType1"),
			DisplayName:    to("testMapping"),
			MappingProperties: &ConnectorMappingProperties{
				FolderPath: to("http://sample.dne/file"),
				FileFilter: to("unknown"),
				HasHeader:  to(false),
				ErrorManagement: &ConnectorMappingErrorManagement{
					ErrorManagementType: to(ErrorManagementTypesStopImport),
					ErrorLimit:          to[int32](10),
				},
				Format: &ConnectorMappingFormat{
					FormatType:      to("TextFormat"),
					ColumnDelimiter: to("|"),
				},
				Availability: &ConnectorMappingAvailability{
					Frequency: to(FrequencyTypesHour),
					Interval:  to[int32](5),
				},
				Structure: []*ConnectorMappingStructure{
					{PropertyName: to("unknwon1"), ColumnName: to("unknown1"), IsEncrypted: to(false)},
				},
				CompleteOperation: &ConnectorMappingCompleteOperation{
					CompletionOperationType: to(CompletionOperationTypesDeleteFile),
					DestinationFolder:       to("fakePath"),
				},
			},
		},
	}

	created, err := client.CreateOrUpdate(ctx, "rg", "contoso", "blob", "testMapping", mapping, nil)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft.CustomerInsights/hubs/connectors/mappings", *created.Type)
	assert.Equal(t, testHubPath+"/connectors/blob/mappings/testMapping", srv.LastRequest().EscapedPath)

	mappings, err := mgmt.Collect(ctx, client.NewListByConnectorPager("rg", "contoso", "blob", nil), func(page ConnectorMappingsClientListByConnectorResponse) []*ConnectorMappingResourceFormat {
		return page.Value
	})
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, FrequencyTypesHour, *mappings[0].Properties.MappingProperties.Availability.Frequency)

	_, err = client.Delete(ctx, "rg", "contoso", "blob", "testMapping", nil)
	require.NoError(t, err)
	// Deleting again answers 204, which is accepted.
	_, err = client.Delete(ctx, "rg", "contoso", "blob", "testMapping", nil)
	require.NoError(t, err)

	_, err = client.Get(ctx, "rg", "contoso", "blob", "testMapping", nil)
	assert.True(t, mgmt.IsNotFound(err))
}

func TestConnectorsDeleteCascades(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{AsyncDelete: true})
	ctx := context.Background()

	srv.Seed(testHubPath+"/connectors/blob", ConnectorResourceFormat{Properties: &Connector{
		ConnectorType:       to(ConnectorTypesAzureBlob),
		ConnectorProperties: map[string]any{"connectionKeyVaultUrl": map[string]any{"organizationId": "XXX"}},
	}})
	srv.Seed(testHubPath+"/connectors/blob/mappings/m1", ConnectorMappingResourceFormat{})

	connector, err := factory.NewConnectorsClient().Get(ctx, "rg", "contoso", "blob", nil)
	require.NoError(t, err)
	assert.Equal(t, ConnectorTypesAzureBlob, *connector.Properties.ConnectorType)
	assert.Contains(t, connector.Properties.ConnectorProperties, "connectionKeyVaultUrl")

	poller, err := factory.NewConnectorsClient().BeginDelete(ctx, "rg", "contoso", "blob", nil)
	require.NoError(t, err)
	_, err = poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)

	_, ok := srv.Resource(testHubPath + "/connectors/blob/mappings/m1")
	assert.False(t, ok)
}
