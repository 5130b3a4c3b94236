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
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
)

// ManagedServiceIdentity is the identity block shared by tracked resources.
type ManagedServiceIdentity struct {
	PrincipalID            string                           `json:"principalId,omitempty"`
	TenantID               string                           `json:"tenantId,omitempty"`
	Type                   ManagedServiceIdentityType       `json:"type"`
	UserAssignedIdentities map[string]*UserAssignedIdentity `json:"userAssignedIdentities,omitempty"`
}

// UserAssignedIdentity - User assigned identity properties https://azure.github.io/typespec-azure/docs/libraries/azure-resource-manager/reference/data-types/#Azure.ResourceManager.CommonTypes.UserAssignedIdentity
type UserAssignedIdentity struct {
	ClientID    *string `json:"clientId,omitempty"`
	PrincipalID *string `json:"principalId,omitempty"`
}

type ManagedServiceIdentityType string

const (
	ManagedServiceIdentityTypeNone                       ManagedServiceIdentityType = "None"
	ManagedServiceIdentityTypeSystemAssigned             ManagedServiceIdentityType = "SystemAssigned"
	ManagedServiceIdentityTypeSystemAssignedUserAssigned ManagedServiceIdentityType = "SystemAssigned,UserAssigned"
	ManagedServiceIdentityTypeUserAssigned               ManagedServiceIdentityType = "UserAssigned"
)

var (
	ValidManagedServiceIdentityTypes = sets.New[ManagedServiceIdentityType](
		ManagedServiceIdentityTypeNone,
		ManagedServiceIdentityTypeSystemAssigned,
		ManagedServiceIdentityTypeSystemAssignedUserAssigned,
		ManagedServiceIdentityTypeUserAssigned)
)

// Validate checks the identity type and that user-assigned identities are
// only present when the type asks for them.
func (i *ManagedServiceIdentity) Validate() error {
	if !ValidManagedServiceIdentityTypes.Has(i.Type) {
		return fmt.Errorf("invalid managed service identity type %q", i.Type)
	}
	wantsUserAssigned := i.Type == ManagedServiceIdentityTypeUserAssigned ||
		i.Type == ManagedServiceIdentityTypeSystemAssignedUserAssigned
	if !wantsUserAssigned && len(i.UserAssignedIdentities) > 0 {
		return fmt.Errorf("user assigned identities are not allowed with identity type %q", i.Type)
	}
	return nil
}
