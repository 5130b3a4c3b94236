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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-mgmt-go/internal/fake"
)

func TestAuthorizationPoliciesRegenerateKeys(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewAuthorizationPoliciesClient()
	ctx := context.Background()
	policyPath := testHubPath + "/authorizationPolicies/reader"

	created, err := client.CreateOrUpdate(ctx, "rg", "contoso", "reader", AuthorizationPolicyResourceFormat{
		Properties: &AuthorizationPolicy{Permissions: []*PermissionTypes{to(PermissionTypesRead), to(PermissionTypesWrite)}},
	}, nil)
	require.NoError(t, err)
	assert.Len(t, created.Properties.Permissions, 2)

	srv.HandleJSON(http.MethodPost, policyPath+"/regeneratePrimaryKey", http.StatusOK, AuthorizationPolicy{
		PolicyName: to("reader"), PrimaryKey: to("primary-2"),
	})
	srv.HandleJSON(http.MethodPost, policyPath+"/regenerateSecondaryKey", http.StatusOK, AuthorizationPolicy{
		PolicyName: to("reader"), SecondaryKey: to("secondary-2"),
	})

	primary, err := client.RegeneratePrimaryKey(ctx, "rg", "contoso", "reader", nil)
	require.NoError(t, err)
	assert.Equal(t, "primary-2", *primary.PrimaryKey)

	secondary, err := client.RegenerateSecondaryKey(ctx, "rg", "contoso", "reader", nil)
	require.NoError(t, err)
	assert.Equal(t, "secondary-2", *secondary.SecondaryKey)
	assert.Equal(t, policyPath+"/regenerateSecondaryKey", srv.LastRequest().EscapedPath)
}

func TestImagesUploadURL(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewImagesClient()
	ctx := context.Background()

	srv.HandleJSON(http.MethodPost, testHubPath+"/images/getEntityTypeImageUploadUrl", http.StatusOK, ImageDefinition{
		ImageExists: to(false), ContentURL: to("https://images.example/upload"), RelativePath: to("images/profile1.png"),
	})
	srv.HandleJSON(http.MethodPost, testHubPath+"/images/getDataImageUploadUrl", http.StatusOK, ImageDefinition{
		ImageExists: to(true), RelativePath: to("images/data.png"),
	})

	input := GetImageUploadURLInput{EntityType: to("Profile"), EntityTypeName: to("Contact"), RelativePath: to("images/profile1.png")}
	entity, err := client.GetUploadURLForEntityType(ctx, "rg", "contoso", input, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/upload", *entity.ContentURL)
	assert.JSONEq(t, `{"entityType":"Profile","entityTypeName":"Contact","relativePath":"images/profile1.png"}`, string(srv.LastRequest().Body))

	data, err := client.GetUploadURLForData(ctx, "rg", "contoso", GetImageUploadURLInput{RelativePath: to("images/data.png")}, nil)
	require.NoError(t, err)
	assert.True(t, *data.ImageExists)
}

func TestInteractionsSuggestRelationshipLinks(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{PutStatus: http.StatusOK})
	client := factory.NewInteractionsClient()
	ctx := context.Background()

	poller, err := client.BeginCreateOrUpdate(ctx, "rg", "contoso", "Purchase", InteractionResourceFormat{
		Properties: &InteractionTypeDefinition{
			EntityTypeDefinition: EntityTypeDefinition{TypeName: to("Purchase")},
			IDPropertyNames:      []*string{to("TestInteractionType6358")},
			IsActivity:           to(false),
		},
	}, nil)
	require.NoError(t, err)
	_, err = poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)

	interaction, err := client.Get(ctx, "rg", "contoso", "Purchase", &InteractionsClientGetOptions{LocaleCode: to("en-gb")})
	require.NoError(t, err)
	assert.Equal(t, "Purchase", *interaction.Properties.TypeName)
	assert.Equal(t, "en-gb", srv.LastRequest().Query.Get("locale-code"))

	srv.HandleJSON(http.MethodPost, testHubPath+"/interactions/Purchase/suggestRelationshipLinks", http.StatusOK, SuggestRelationshipLinksResponse{
		InteractionName: to("Purchase"),
		SuggestedRelationships: []*RelationshipsLookup{{
			ProfileName:        to("Customer"),
			RelatedProfileName: to("Store"),
			ProfilePropertyReferences: []*ParticipantPropertyReference{
				{SourcePropertyName: to("CustomerId"), TargetPropertyName: to("Id")},
			},
		}},
	})
	suggested, err := client.SuggestRelationshipLinks(ctx, "rg", "contoso", "Purchase", nil)
	require.NoError(t, err)
	require.Len(t, suggested.SuggestedRelationships, 1)
	assert.Equal(t, "Store", *suggested.SuggestedRelationships[0].RelatedProfileName)
}
