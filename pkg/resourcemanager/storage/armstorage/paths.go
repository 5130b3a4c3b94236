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

package armstorage

import (
	"net/url"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
)

const (
	accountPath      = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Storage/storageAccounts/{accountName}"
	queueServicePath = accountPath + "/queueServices/{queueServiceName}"

	queryMaxPageSize = "$maxpagesize"
	queryFilter      = "$filter"
)

// accountParams also binds queueServiceName, which paths outside a queue
// service leave unused.
func accountParams(subscriptionID, resourceGroupName, accountName string, params ...mgmt.Param) []mgmt.Param {
	return append([]mgmt.Param{
		mgmt.P("subscriptionId", subscriptionID),
		mgmt.P("resourceGroupName", resourceGroupName),
		mgmt.P("accountName", accountName),
		mgmt.P("queueServiceName", queueServiceName),
	}, params...)
}

func queueListQuery(maxPageSize, filter *string) url.Values {
	query := url.Values{}
	if maxPageSize != nil {
		query.Set(queryMaxPageSize, *maxPageSize)
	}
	if filter != nil {
		query.Set(queryFilter, *filter)
	}
	return query
}
