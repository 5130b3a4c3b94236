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
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

func TestViewsUserID(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{PutStatus: http.StatusOK})
	client := factory.NewViewsClient()
	ctx := context.Background()

	_, err := client.CreateOrUpdate(ctx, "rg", "contoso", "overview", ViewResourceFormat{
		Properties: &View{
			UserID:      to("user@contoso.com"),
			Definition:  to(`{"widgets":[]}`),
			DisplayName: map[string]*string{"en": to("Overview")},
		},
	}, nil)
	require.NoError(t, err)
	assert.False(t, srv.LastRequest().Query.Has("userId"))

	view, err := client.Get(ctx, "rg", "contoso", "overview", "user@contoso.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "Overview", *view.Properties.DisplayName["en"])
	assert.Equal(t, "user@contoso.com", srv.LastRequest().Query.Get("userId"))

	views, err := mgmt.Collect(ctx, client.NewListByHubPager("rg", "contoso", "*", nil), func(page ViewsClientListByHubResponse) []*ViewResourceFormat {
		return page.Value
	})
	require.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "*", srv.LastRequest().Query.Get("userId"))

	_, err = client.Delete(ctx, "rg", "contoso", "overview", "user@contoso.com", nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, srv.LastRequest().Method)
	assert.Equal(t, "user@contoso.com", srv.LastRequest().Query.Get("userId"))
}

func TestViewsRequireUserID(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewViewsClient()
	ctx := context.Background()

	_, err := client.Get(ctx, "rg", "contoso", "overview", "", nil)
	require.ErrorIs(t, err, mgmt.ErrEmptyParameter)

	_, err = client.Delete(ctx, "rg", "contoso", "overview", "", nil)
	require.ErrorIs(t, err, mgmt.ErrEmptyParameter)

	pager := client.NewListByHubPager("rg", "contoso", "", nil)
	require.True(t, pager.More())
	_, err = pager.NextPage(ctx)
	require.ErrorIs(t, err, mgmt.ErrEmptyParameter)

	assert.Empty(t, srv.Requests())
}
