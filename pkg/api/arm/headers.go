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

const (
	// Standard HTTP header names used by the ARM contract
	HeaderNameAccept      = "Accept"
	HeaderNameContentType = "Content-Type"
	HeaderNameLocation    = "Location"
	HeaderNameRetryAfter  = "Retry-After"

	// Azure-specific HTTP header names
	HeaderNameAsyncOperation    = "Azure-AsyncOperation"
	HeaderNameOperationLocation = "Operation-Location"

	// Microsoft-specific HTTP header names
	HeaderNameErrorCode             = "X-Ms-Error-Code"
	HeaderNameRequestID             = "X-Ms-Request-Id"
	HeaderNameClientRequestID       = "X-Ms-Client-Request-Id"
	HeaderNameCorrelationRequestID  = "X-Ms-Correlation-Request-Id"
	HeaderNameReturnClientRequestID = "X-Ms-Return-Client-Request-Id"
	HeaderNameVersion               = "X-Ms-Version"
	HeaderNameMetaPrefix            = "X-Ms-Meta-"
)

const (
	// QueryAPIVersion is the query parameter every ARM request carries.
	QueryAPIVersion = "api-version"

	// QuerySkipToken is the continuation parameter ARM services embed in nextLink.
	QuerySkipToken = "$skipToken"
)
