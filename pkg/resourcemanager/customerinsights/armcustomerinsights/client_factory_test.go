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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

func TestNewClientFactory(t *testing.T) {
	client, err := mgmt.NewClientBuilder().Build(&azfake.TokenCredential{})
	require.NoError(t, err)

	_, err = NewClientFactory("", client)
	require.ErrorIs(t, err, mgmt.ErrEmptyParameter)

	_, err = NewClientFactory(testSubscription, nil)
	require.Error(t, err)

	factory, err := NewClientFactory(testSubscription, client)
	require.NoError(t, err)

	profiles := factory.NewProfilesClient()
	assert.Same(t, client, profiles.internal)
	assert.Equal(t, testSubscription, profiles.subscriptionID)
}
