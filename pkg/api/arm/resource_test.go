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

package arm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvisioningStateIsTerminal(t *testing.T) {
	tests := []struct {
		state    ProvisioningState
		terminal bool
	}{
		{ProvisioningStateSucceeded, true},
		{ProvisioningStateFailed, true},
		{ProvisioningStateCanceled, true},
		{"succeeded", true},
		{ProvisioningStateAccepted, false},
		{ProvisioningStateInProgress, false},
		{ProvisioningStateDeleting, false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.state.IsTerminal())
		})
	}
}

func TestManagedServiceIdentityValidate(t *testing.T) {
	tests := []struct {
		name      string
		identity  ManagedServiceIdentity
		expectErr bool
	}{
		{
			name:     "System assigned",
			identity: ManagedServiceIdentity{Type: ManagedServiceIdentityTypeSystemAssigned},
		},
		{
			name: "User assigned",
			identity: ManagedServiceIdentity{
				Type:                   ManagedServiceIdentityTypeUserAssigned,
				UserAssignedIdentities: map[string]*UserAssignedIdentity{"id": {}},
			},
		},
		{
			name: "User identities without user type",
			identity: ManagedServiceIdentity{
				Type:                   ManagedServiceIdentityTypeNone,
				UserAssignedIdentities: map[string]*UserAssignedIdentity{"id": {}},
			},
			expectErr: true,
		},
		{
			name:      "Unknown type",
			identity:  ManagedServiceIdentity{Type: "Bogus"},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.identity.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
