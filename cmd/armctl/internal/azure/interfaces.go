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

package azure

//go:generate go tool mockgen -typed -source=interfaces.go -destination=mock_interfaces.go -package azure

import (
	"context"

	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/customerinsights/armcustomerinsights"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/mediaservices/armmediaservices"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/storage/armstorage"
)

// ResourceGroups lists the resource groups of the subscription.
type ResourceGroups interface {
	ListResourceGroups(ctx context.Context) ([]string, error)
}

// CustomerInsights is the subset of Microsoft.CustomerInsights used by armctl.
type CustomerInsights interface {
	ListHubs(ctx context.Context, resourceGroup string) ([]*armcustomerinsights.Hub, error)
	GetHub(ctx context.Context, resourceGroup, hubName string) (*armcustomerinsights.Hub, error)
	// DeleteHub waits for the deletion to finish.
	DeleteHub(ctx context.Context, resourceGroup, hubName string) error
	// ListProfiles uses the service default locale when localeCode is empty.
	ListProfiles(ctx context.Context, resourceGroup, hubName, localeCode string) ([]*armcustomerinsights.ProfileResourceFormat, error)
	ReprocessKpi(ctx context.Context, resourceGroup, hubName, kpiName string) error
}

// MediaServices is the subset of Microsoft.Media used by armctl.
type MediaServices interface {
	ListAccounts(ctx context.Context, resourceGroup string) ([]*armmediaservices.MediaService, error)
	ListTransforms(ctx context.Context, resourceGroup, accountName string) ([]*armmediaservices.Transform, error)
	// ListJobs passes filter as $filter when it is not empty.
	ListJobs(ctx context.Context, resourceGroup, accountName, transformName, filter string) ([]*armmediaservices.Job, error)
	CancelJob(ctx context.Context, resourceGroup, accountName, transformName, jobName string) error
}

// StorageQueues manages the queues of a storage account through Microsoft.Storage.
type StorageQueues interface {
	ListQueues(ctx context.Context, resourceGroup, accountName, prefix string) ([]*armstorage.ListQueue, error)
	CreateQueue(ctx context.Context, resourceGroup, accountName, queueName string, metadata map[string]*string) (*armstorage.StorageQueue, error)
	DeleteQueue(ctx context.Context, resourceGroup, accountName, queueName string) error
}
