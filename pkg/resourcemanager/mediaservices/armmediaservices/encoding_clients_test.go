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

package armmediaservices

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"

	"github.com/Azure/azure-mgmt-go/internal/fake"
	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

func TestTransformsLifecycle(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewTransformsClient()
	ctx := context.Background()

	created, err := client.CreateOrUpdate(ctx, "media-rg", "contosomedia", "adaptive", adaptiveStreamingTransform(), nil)
	require.NoError(t, err)
	assert.Equal(t, "adaptive", *created.Name)
	assert.Equal(t, "Microsoft.Media/mediaservices/transforms", *created.Type)

	put := srv.LastRequest()
	assert.Equal(t, http.MethodPut, put.Method)
	assert.Equal(t, testAccountPath+"/transforms/adaptive", put.EscapedPath)
	assert.Equal(t, apiVersion, put.Query.Get(arm.QueryAPIVersion))
	assert.Contains(t, string(put.Body), `"@odata.type":"#Microsoft.Media.StandardEncoderPreset"`)

	got, err := client.Get(ctx, "media-rg", "contosomedia", "adaptive", nil)
	require.NoError(t, err)
	require.Len(t, got.Properties.Outputs, 2)
	standard, ok := got.Properties.Outputs[0].Preset.(*StandardEncoderPreset)
	require.True(t, ok, "got %T", got.Properties.Outputs[0].Preset)
	require.Len(t, standard.Codecs, 3)
	assert.IsType(t, &H264Video{}, standard.Codecs[1])

	updated, err := client.Update(ctx, "media-rg", "contosomedia", "adaptive", Transform{
		Properties: &TransformProperties{Description: to.Ptr("renamed")},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, srv.LastRequest().Method)
	assert.Equal(t, "renamed", *updated.Properties.Description)

	_, err = client.Delete(ctx, "media-rg", "contosomedia", "adaptive", nil)
	require.NoError(t, err)

	// Deleting a missing transform answers 204, which is accepted.
	_, err = client.Delete(ctx, "media-rg", "contosomedia", "adaptive", nil)
	require.NoError(t, err)

	_, err = client.Get(ctx, "media-rg", "contosomedia", "adaptive", nil)
	require.Error(t, err)
	assert.True(t, mgmt.IsNotFound(err))
}

func TestTransformsListODataNextLink(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{PageSize: 2, ODataNextLink: true})
	client := factory.NewTransformsClient()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		srv.Seed(testAccountPath+"/transforms/"+name, adaptiveStreamingTransform())
	}

	pager := client.NewListPager("media-rg", "contosomedia", &TransformsClientListOptions{
		Filter:  to.Ptr("properties.created gt 2021-05-01T00:00:00Z"),
		Orderby: to.Ptr("name desc"),
	})
	var names []string
	pages := 0
	for pager.More() {
		page, err := pager.NextPage(ctx)
		require.NoError(t, err)
		pages++
		for _, transform := range page.Value {
			names = append(names, *transform.Name)
		}
	}
	assert.Equal(t, 3, pages)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names)

	first := srv.Requests()[0]
	assert.Equal(t, "properties.created gt 2021-05-01T00:00:00Z", first.Query.Get("$filter"))
	assert.Equal(t, "name desc", first.Query.Get("$orderby"))
	assert.Empty(t, first.Query.Get("$top"))
}

func TestTransformsListNilOptions(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	transforms, err := mgmt.Collect(context.Background(), factory.NewTransformsClient().NewListPager("media-rg", "contosomedia", nil), func(page TransformsClientListResponse) []*Transform {
		return page.Value
	})
	require.NoError(t, err)
	assert.Empty(t, transforms)

	query := srv.LastRequest().Query
	assert.Equal(t, []string{apiVersion}, query[arm.QueryAPIVersion])
	assert.Len(t, query, 1)
}

func TestJobsLifecycle(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewJobsClient()
	ctx := context.Background()
	jobPath := testAccountPath + "/transforms/adaptive/jobs/job-1"

	job := Job{
		Properties: &JobProperties{
			Input: &JobInputHTTP{
				BaseURI: to.Ptr("https://contoso.example/media/"),
				Files:   []*string{to.Ptr("intro.mp4")},
			},
			Outputs:  []JobOutputClassification{&JobOutputAsset{AssetName: to.Ptr("job-1-output")}},
			Priority: to.Ptr(PriorityHigh),
			CorrelationData: map[string]*string{
				"ticket": to.Ptr("42"),
			},
		},
	}
	created, err := client.Create(ctx, "media-rg", "contosomedia", "adaptive", "job-1", job, nil)
	require.NoError(t, err)
	assert.Equal(t, "job-1", *created.Name)
	input, ok := created.Properties.Input.(*JobInputHTTP)
	require.True(t, ok, "got %T", created.Properties.Input)
	assert.Equal(t, "https://contoso.example/media/", *input.BaseURI)

	// Jobs are created once; a second PUT answers 200, which Create does not accept.
	_, err = client.Create(ctx, "media-rg", "contosomedia", "adaptive", "job-1", job, nil)
	var azErr *azcore.ResponseError
	require.ErrorAs(t, err, &azErr)
	assert.Equal(t, http.StatusOK, azErr.StatusCode)

	srv.Handle(http.MethodPost, jobPath+"/cancelJob", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	_, err = client.CancelJob(ctx, "media-rg", "contosomedia", "adaptive", "job-1", nil)
	require.NoError(t, err)
	assert.Equal(t, jobPath+"/cancelJob", srv.LastRequest().EscapedPath)
	assert.Empty(t, srv.LastRequest().Body)

	jobs, err := mgmt.Collect(ctx, client.NewListPager("media-rg", "contosomedia", "adaptive", &JobsClientListOptions{Filter: to.Ptr("properties.state eq 'Processing'")}), func(page JobsClientListResponse) []*Job {
		return page.Value
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "properties.state eq 'Processing'", srv.LastRequest().Query.Get("$filter"))

	_, err = client.Delete(ctx, "media-rg", "contosomedia", "adaptive", "job-1", nil)
	require.NoError(t, err)
}

func TestJobsEmptyParameter(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	_, err := factory.NewJobsClient().Get(context.Background(), "media-rg", "contosomedia", "adaptive", "", nil)
	require.ErrorIs(t, err, mgmt.ErrEmptyParameter)
	assert.ErrorContains(t, err, "jobName")
	assert.Empty(t, srv.Requests())
}

func TestJobsGetError(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	srv.Handle(http.MethodGet, testAccountPath+"/transforms/adaptive/jobs/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": "BadRequest", "message": "The job name is malformed."},
		})
	})

	_, err := factory.NewJobsClient().Get(context.Background(), "media-rg", "contosomedia", "adaptive", "broken", nil)
	require.Error(t, err)
	assert.True(t, mgmt.HasErrorCode(err, "BadRequest"))

	cloudError, ok := mgmt.CloudErrorFrom(err)
	require.True(t, ok)
	assert.Equal(t, "The job name is malformed.", cloudError.Message)
}
