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
	"time"
)

// OperationStatus is the document returned by the URL in an
// Azure-AsyncOperation header. Pollers read Status until it is terminal.
type OperationStatus struct {
	ID              string            `json:"id,omitempty"`
	Name            string            `json:"name,omitempty"`
	Status          ProvisioningState `json:"status"`
	StartTime       *time.Time        `json:"startTime,omitempty"`
	EndTime         *time.Time        `json:"endTime,omitempty"`
	PercentComplete float64           `json:"percentComplete,omitempty"`
	Error           *CloudErrorBody   `json:"error,omitempty"`
}

// OperationDisplay is the localized description of a provider operation.
type OperationDisplay struct {
	Provider    string `json:"provider,omitempty"`
	Resource    string `json:"resource,omitempty"`
	Operation   string `json:"operation,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProviderOperation is one entry of a provider's operations list.
type ProviderOperation struct {
	Name    string            `json:"name,omitempty"`
	Display *OperationDisplay `json:"display,omitempty"`
	Origin  string            `json:"origin,omitempty"`
}
