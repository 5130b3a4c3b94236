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
	"context"
	"iter"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Items flattens the pages of pager into their items. Iteration stops after
// the first error, which is yielded with a nil item.
//
//	for hub, err := range mgmt.Items(ctx, pager, func(p armcustomerinsights.HubsClientListResponse) []*armcustomerinsights.Hub {
//		return p.Value
//	}) {
//		...
//	}
func Items[P, T any](ctx context.Context, pager *runtime.Pager[P], values func(P) []*T) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, item := range values(page) {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Collect gathers every item of pager.
func Collect[P, T any](ctx context.Context, pager *runtime.Pager[P], values func(P) []*T) ([]*T, error) {
	var all []*T
	for item, err := range Items(ctx, pager, values) {
		if err != nil {
			return nil, err
		}
		all = append(all, item)
	}
	return all, nil
}
