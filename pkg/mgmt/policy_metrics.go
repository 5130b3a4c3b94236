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

package mgmt

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

// metricsPolicy records every attempt, retries included. Transport errors
// are counted with code "0".
type metricsPolicy struct {
	emitter Emitter
}

func newMetricsPolicy(emitter Emitter) policy.Policy {
	return &metricsPolicy{emitter: emitter}
}

func (p *metricsPolicy) Do(req *policy.Request) (*http.Response, error) {
	raw := req.Raw()
	startTime := time.Now()

	resp, err := req.Next()

	duration := time.Since(startTime).Seconds()

	code := 0
	if resp != nil {
		code = resp.StatusCode
	}
	apiVersion := raw.URL.Query().Get(arm.QueryAPIVersion)
	provider := providerFromPath(raw.URL.Path)

	p.emitter.AddCounter(metricRequestsTotal, 1.0, map[string]string{
		"method":      raw.Method,
		"api_version": apiVersion,
		"code":        strconv.Itoa(code),
		"provider":    provider,
	})
	p.emitter.EmitGauge(metricRequestDuration, duration, map[string]string{
		"method":      raw.Method,
		"api_version": apiVersion,
		"provider":    provider,
	})

	return resp, err
}
