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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-mgmt-go/internal/fake"
)

func TestPredictionsModelStatus(t *testing.T) {
	factory, srv := newTestFactory(t, fake.Options{})
	client := factory.NewPredictionsClient()
	ctx := context.Background()
	predictionPath := testHubPath + "/predictions/sample"

	srv.HandleJSON(http.MethodPost, predictionPath+"/getModelStatus", http.StatusOK, PredictionModelStatus{
		Status:           to(PredictionModelLifeCycleTraining),
		PredictionName:   to("sample"),
		TrainingAccuracy: to(0.83),
		SignalsUsed:      to[int32](12),
	})
	srv.HandleJSON(http.MethodPost, predictionPath+"/getTrainingResults", http.StatusOK, PredictionTrainingResults{
		ScoreName:                   to("score"),
		PrimaryProfileInstanceCount: to[int64](1000),
		PredictionDistribution: &PredictionDistributionDefinition{
			TotalPositives: to[int64](10),
			TotalNegatives: to[int64](90),
		},
		CanonicalProfiles: []*CanonicalProfileDefinition{{
			CanonicalProfileID: to[int32](1),
			Properties: []*CanonicalProfileDefinitionPropertiesItem{
				{ProfileName: to("Customer"), Type: to(CanonicalPropertyValueTypeNumeric)},
			},
		}},
	})
	var posted PredictionModelStatus
	srv.Handle(http.MethodPost, predictionPath+"/modelStatus", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	status, err := client.GetModelStatus(ctx, "rg", "contoso", "sample", nil)
	require.NoError(t, err)
	assert.Equal(t, PredictionModelLifeCycleTraining, *status.Status)
	assert.InDelta(t, 0.83, *status.TrainingAccuracy, 1e-9)

	results, err := client.GetTrainingResults(ctx, "rg", "contoso", "sample", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), *results.PrimaryProfileInstanceCount)
	assert.Equal(t, CanonicalPropertyValueTypeNumeric, *results.CanonicalProfiles[0].Properties[0].Type)

	_, err = client.ModelStatus(ctx, "rg", "contoso", "sample", PredictionModelStatus{Status: to(PredictionModelLifeCycleActive)}, nil)
	require.NoError(t, err)
	require.NotNil(t, posted.Status)
	assert.Equal(t, PredictionModelLifeCycleActive, *posted.Status)
}

func TestPredictionsLifecycle(t *testing.T) {
	factory, _ := newTestFactory(t, fake.Options{PutStatus: http.StatusOK})
	client := factory.NewPredictionsClient()
	ctx := context.Background()

	poller, err := client.BeginCreateOrUpdate(ctx, "rg", "contoso", "sample", PredictionResourceFormat{
		Properties: &Prediction{
			AutoAnalyze:               to(true),
			PrimaryProfileType:        to("Customer"),
			ScopeExpression:           to("*"),
			NegativeOutcomeExpression: to("Customers.FirstName = 'Mike'"),
			PositiveOutcomeExpression: to("Customers.FirstName = 'David'"),
			ScoreLabel:                to("score label"),
			Mappings:                  &PredictionMappings{Score: to("sample_score"), Grade: to("sample_grade"), Reason: to("sample_reason")},
			Grades:                    []*PredictionGradesItem{},
		},
	}, nil)
	require.NoError(t, err)
	created, err := poller.PollUntilDone(ctx, pollOptions)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft.CustomerInsights/hubs/predictions", *created.Type)

	got, err := client.Get(ctx, "rg", "contoso", "sample", nil)
	require.NoError(t, err)
	assert.Equal(t, "sample_score", *got.Properties.Mappings.Score)

	deleter, err := client.BeginDelete(ctx, "rg", "contoso", "sample", nil)
	require.NoError(t, err)
	assert.True(t, deleter.Done())
}
