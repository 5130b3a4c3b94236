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

package fake

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/Azure/azure-mgmt-go/pkg/api/arm"
)

const (
	segmentProviders      = "providers"
	segmentResourceGroups = "resourcegroups"
)

// isCollection reports whether path names a collection. ARM paths alternate
// type and name segments after the provider namespace, so collections have
// an odd number of segments there.
func isCollection(path string) bool {
	segments := splitPath(path)
	if i := lastIndexFold(segments, segmentProviders); i >= 0 {
		return (len(segments)-i-2)%2 == 1
	}
	return len(segments)%2 == 1
}

// inCollection reports whether the resource at key belongs to collection.
// Subscription-level collections also include resources of every resource
// group.
func inCollection(key, collection string) bool {
	if parent(key) == collection {
		return true
	}
	if strings.Contains(collection, "/"+segmentResourceGroups+"/") {
		return false
	}
	return parent(stripResourceGroup(key)) == collection
}

// typeAndName derives the resource type, e.g. "Microsoft.Storage/storageAccounts/queueServices",
// and the resource name from an item path.
func typeAndName(path string) (string, string) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return "", ""
	}
	name := segments[len(segments)-1]
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	i := lastIndexFold(segments, segmentProviders)
	if i < 0 || i+1 >= len(segments) {
		if len(segments) >= 2 {
			return segments[len(segments)-2], name
		}
		return "", name
	}
	types := []string{segments[i+1]}
	for j := i + 2; j < len(segments); j += 2 {
		types = append(types, segments[j])
	}
	return strings.Join(types, "/"), name
}

// decorate sets the read-only envelope fields on a stored resource. A
// pending resource reports provisioningState Provisioning; once settled, a
// resource that reports a provisioning state reports Succeeded.
func decorate(path string, data []byte, pending bool) json.RawMessage {
	var document map[string]any
	if err := json.Unmarshal(data, &document); err != nil || document == nil {
		return data
	}

	resourceType, name := typeAndName(path)
	document["id"] = path
	document["name"] = name
	document["type"] = resourceType

	properties, _ := document["properties"].(map[string]any)
	switch {
	case pending:
		if properties == nil {
			properties = map[string]any{}
			document["properties"] = properties
		}
		properties["provisioningState"] = string(arm.ProvisioningStateProvisioning)
	case properties != nil && properties["provisioningState"] != nil:
		properties["provisioningState"] = string(arm.ProvisioningStateSucceeded)
	}

	out, err := json.Marshal(document)
	if err != nil {
		return data
	}
	return out
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func lastIndexFold(segments []string, value string) int {
	for i := len(segments) - 1; i >= 0; i-- {
		if strings.EqualFold(segments[i], value) {
			return i
		}
	}
	return -1
}

func parent(key string) string {
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		return key[:i]
	}
	return ""
}

func stripResourceGroup(key string) string {
	segments := splitPath(key)
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] == segmentResourceGroups {
			segments = append(segments[:i], segments[i+2:]...)
			break
		}
	}
	return "/" + strings.Join(segments, "/")
}

// validateIdentity rejects an "identity" block ARM would refuse.
func validateIdentity(body []byte) error {
	var document struct {
		Identity *arm.ManagedServiceIdentity `json:"identity"`
	}
	if err := json.Unmarshal(body, &document); err != nil || document.Identity == nil {
		return nil
	}
	return document.Identity.Validate()
}
