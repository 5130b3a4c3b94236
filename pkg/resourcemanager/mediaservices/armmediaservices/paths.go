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

package armmediaservices

import (
	"net/url"
	"strconv"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	subscriptionPath  = "/subscriptions/{subscriptionId}"
	resourceGroupPath = subscriptionPath + "/resourceGroups/{resourceGroupName}"
	accountPath       = resourceGroupPath + "/providers/Microsoft.Media/mediaservices/{accountName}"

	queryFilter  = "$filter"
	queryTop     = "$top"
	queryOrderBy = "$orderby"
)

func accountParams(subscriptionID, resourceGroupName, accountName string, params ...mgmt.Param) []mgmt.Param {
	return append([]mgmt.Param{
		mgmt.P("subscriptionId", subscriptionID),
		mgmt.P("resourceGroupName", resourceGroupName),
		mgmt.P("accountName", accountName),
	}, params...)
}

// listQuery renders the OData collection options that are set.
func listQuery(filter *string, top *int32, orderBy *string) url.Values {
	query := url.Values{}
	if filter != nil {
		query.Set(queryFilter, *filter)
	}
	if top != nil {
		query.Set(queryTop, strconv.FormatInt(int64(*top), 10))
	}
	if orderBy != nil {
		query.Set(queryOrderBy, *orderBy)
	}
	return query
}
