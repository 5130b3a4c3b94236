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
	"net/url"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	subscriptionPath  = "/subscriptions/{subscriptionId}"
	resourceGroupPath = subscriptionPath + "/resourceGroups/{resourceGroupName}"
	hubPath           = resourceGroupPath + "/providers/Microsoft.CustomerInsights/hubs/{hubName}"

	queryLocaleCode = "locale-code"
	queryUserID     = "userId"
)

func hubParams(subscriptionID, resourceGroupName, hubName string, params ...mgmt.Param) []mgmt.Param {
	return append([]mgmt.Param{
		mgmt.P("subscriptionId", subscriptionID),
		mgmt.P("resourceGroupName", resourceGroupName),
		mgmt.P("hubName", hubName),
	}, params...)
}

func localeCodeQuery(localeCode *string) url.Values {
	code := defaultLocaleCode
	if localeCode != nil {
		code = *localeCode
	}
	return url.Values{queryLocaleCode: []string{code}}
}

func userIDQuery(userID string) url.Values {
	return url.Values{queryUserID: []string{userID}}
}
