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

package utils

import (
	"strconv"
	"strings"
	"time"

	azcorearm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// LogValues is a slice of key/value pairs for use with logger.WithValues.
// It supports method chaining for a fluent API:
//
//	logger.WithValues(
//	    utils.LogValues{}.
//	        AddOperation(val).
//	        AddResourceGroup(val).
//	        AddResourceName(val)...)
//
// Keeping the key names in one place keeps log queries stable across
// packages.
type LogValues []any

func (lv LogValues) AddAPIVersion(value string) LogValues {
	return append(lv, "api_version", strings.ToLower(value))
}

func (lv LogValues) AddRequestID(value string) LogValues {
	return append(lv, "request_id", value)
}

// AddClientRequestID adds the "client_request_id" key.
func (lv LogValues) AddClientRequestID(value string) LogValues {
	return append(lv, "client_request_id", value)
}

// AddCorrelationRequestID adds the "correlation_request_id" key.
func (lv LogValues) AddCorrelationRequestID(value string) LogValues {
	return append(lv, "correlation_request_id", value)
}

// AddCloudErrorCode adds the "cloud_error_code" key with the lowercased value.
func (lv LogValues) AddCloudErrorCode(value string) LogValues {
	return append(lv, "cloud_error_code", strings.ToLower(value))
}

// AddCloudErrorMessage adds the "cloud_error_message" key.
func (lv LogValues) AddCloudErrorMessage(value string) LogValues {
	return append(lv, "cloud_error_message", value)
}

// AddMethod adds the "method" key with the lowercased value.
func (lv LogValues) AddMethod(value string) LogValues {
	return append(lv, "method", strings.ToLower(value))
}

// AddOperation adds the "operation" key with the lowercased value.
func (lv LogValues) AddOperation(value string) LogValues {
	return append(lv, "operation", strings.ToLower(value))
}

// AddPath adds the "path" key with the lowercased value.
func (lv LogValues) AddPath(value string) LogValues {
	return append(lv, "path", strings.ToLower(value))
}

// AddProvider adds the "provider" key with the lowercased value.
func (lv LogValues) AddProvider(value string) LogValues {
	return append(lv, "provider", strings.ToLower(value))
}

func (lv LogValues) AddStatusCode(value int) LogValues {
	return append(lv, "status_code", strconv.Itoa(value))
}

func (lv LogValues) AddDuration(value time.Duration) LogValues {
	return append(lv, "duration_ms", value.Milliseconds())
}

// AddResourceGroup adds the "resource_group" key with the lowercased value.
func (lv LogValues) AddResourceGroup(value string) LogValues {
	return append(lv, "resource_group", strings.ToLower(value))
}

// AddResourceID adds the "resource_id" key with the lowercased value.
func (lv LogValues) AddResourceID(value string) LogValues {
	return append(lv, "resource_id", strings.ToLower(value))
}

// AddResourceName adds the "resource_name" key with the lowercased value.
func (lv LogValues) AddResourceName(value string) LogValues {
	return append(lv, "resource_name", strings.ToLower(value))
}

func (lv LogValues) AddResourceType(value string) LogValues {
	return append(lv, "resource_type", strings.ToLower(value))
}

// AddSubscriptionID adds the "subscription_id" key with the lowercased value.
func (lv LogValues) AddSubscriptionID(value string) LogValues {
	return append(lv, "subscription_id", strings.ToLower(value))
}

// AddLogValuesForResourceID adds common logging key/value pairs from a resource ID.
// It adds: subscription_id, resource_group, resource_type, resource_name, and resource_id.
func (lv LogValues) AddLogValuesForResourceID(resourceID *azcorearm.ResourceID) LogValues {
	if resourceID == nil {
		return lv
	}
	return lv.AddSubscriptionID(resourceID.SubscriptionID).
		AddResourceGroup(resourceID.ResourceGroupName).
		AddResourceType(resourceID.ResourceType.String()).
		AddResourceName(resourceID.Name).
		AddResourceID(resourceID.String())
}

// AddLogValuesForResourceIDString parses a resource ID string and adds common logging key/value pairs.
// If parsing fails, only the resource_id is added.
func (lv LogValues) AddLogValuesForResourceIDString(resourceIDString string) LogValues {
	resourceID, err := azcorearm.ParseResourceID(resourceIDString)
	if err != nil {
		return lv.AddResourceID(resourceIDString)
	}
	return lv.AddLogValuesForResourceID(resourceID)
}
