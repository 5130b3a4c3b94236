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

package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// CommandKey is the span's attribute Key reporting the armctl command
	// path, e.g. "armctl inventory".
	CommandKey = attribute.Key("armctl.command")

	// SubscriptionIDKey is the span's attribute Key reporting the
	// subscription the command operates on.
	SubscriptionIDKey = attribute.Key("armctl.subscription.id")

	// ResourceGroupNameKey is the span's attribute Key reporting the resource
	// group name a unit of work is scoped to.
	ResourceGroupNameKey = attribute.Key("armctl.resource_group.name")

	// ProviderKey is the span's attribute Key reporting the resource
	// provider namespace being inventoried.
	ProviderKey = attribute.Key("armctl.provider")

	// ResourceCountKey is the span's attribute Key reporting how many
	// resources a listing returned.
	ResourceCountKey = attribute.Key("armctl.resource.count")
)

// SetScopeAttributes sets attributes on the span to identify the
// subscription and resource group of a unit of work. Empty values are
// skipped.
func SetScopeAttributes(span trace.Span, subscriptionID, resourceGroup string) {
	addAttributeIfPresent(span, SubscriptionIDKey, subscriptionID)
	addAttributeIfPresent(span, ResourceGroupNameKey, resourceGroup)
}

func addAttributeIfPresent(span trace.Span, key attribute.Key, value string) {
	if value != "" {
		span.SetAttributes(key.String(value))
	}
}
