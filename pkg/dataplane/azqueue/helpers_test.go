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

package azqueue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/Azure/azure-mgmt-go/internal/fake"
)

var testTime = time.Date(2018, time.March, 28, 9, 30, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestClient(t *testing.T) (*Client, *fake.QueueServer, *testClock) {
	t.Helper()
	clock := &testClock{now: testTime}
	srv := fake.NewQueueServer(fake.QueueOptions{Now: clock.Now})
	t.Cleanup(srv.Close)

	internal, err := NewClientBuilder(srv.URL).
		WithTransport(srv.Client()).
		WithRetry(policy.RetryOptions{MaxRetries: -1}).
		Build(srv.Credential())
	require.NoError(t, err)

	client, err := NewClient(internal)
	require.NoError(t, err)
	return client, srv, clock
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	storageError, ok := StorageErrorFrom(err)
	require.True(t, ok, "expected a response error, got %v", err)
	require.NotNil(t, storageError.Code)
	return *storageError.Code
}
