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
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.StatusCode == http.StatusNotFound
}

// HasErrorCode reports whether err is a response with the given error code.
func HasErrorCode(err error, code string) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.ErrorCode == code
}

// CloudErrorFrom decodes the ARM error envelope of a failed response,
// including details that azcore.ResponseError does not expose.
func CloudErrorFrom(err error) (*arm.CloudError, bool) {
	var azErr *azcore.ResponseError
	if !errors.As(err, &azErr) || azErr.RawResponse == nil {
		return nil, false
	}
	payload, payloadErr := runtime.Payload(azErr.RawResponse)
	if payloadErr != nil {
		payload = nil
	}
	cloudError := arm.ParseCloudError(azErr.StatusCode, payload)
	if cloudError.CloudErrorBody == nil && azErr.ErrorCode != "" {
		cloudError.CloudErrorBody = &arm.CloudErrorBody{Code: azErr.ErrorCode}
	}
	return cloudError, true
}
