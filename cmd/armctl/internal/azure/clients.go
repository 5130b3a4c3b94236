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

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/tracing/azotel"

	"github.com/Azure/azure-mgmt-go/pkg/mgmt"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/customerinsights/armcustomerinsights"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/mediaservices/armmediaservices"
	"github.com/Azure/azure-mgmt-go/pkg/resourcemanager/storage/armstorage"
)

const (
	applicationID        = "armctl"
	defaultPollFrequency = 10 * time.Second
)

// ClientOptions configure the clients built by NewClients. The zero value
// talks to the public cloud.
type ClientOptions struct {
	// Cloud is one of the mgmt.Cloud* environment names.
	Cloud string
	// Endpoint overrides the Resource Manager endpoint of Cloud.
	Endpoint string

	Transport      policy.Transporter
	Retry          *policy.RetryOptions
	Logger         logr.Logger
	Metrics        mgmt.Emitter
	TracerProvider trace.TracerProvider

	// PollFrequency is the interval between long-running operation polls.
	PollFrequency time.Duration
}

// Clients implements every interface of this package on top of the
// provider packages and armresources.
type Clients struct {
	resourceGroups *armresources.ResourceGroupsClient
	hubs           *armcustomerinsights.HubsClient
	profiles       *armcustomerinsights.ProfilesClient
	kpi            *armcustomerinsights.KpiClient
	mediaServices  *armmediaservices.MediaServicesClient
	transforms     *armmediaservices.TransformsClient
	jobs           *armmediaservices.JobsClient
	queues         *armstorage.QueueClient
	pollFrequency  time.Duration
}

var (
	_ ResourceGroups   = (*Clients)(nil)
	_ CustomerInsights = (*Clients)(nil)
	_ MediaServices    = (*Clients)(nil)
	_ StorageQueues    = (*Clients)(nil)
)

// NewClients creates the clients for subscriptionID. The provider packages
// share one mgmt.Client; armresources gets an equivalent pipeline.
func NewClients(subscriptionID string, cred azcore.TokenCredential, options ClientOptions) (*Clients, error) {
	builder := mgmt.NewClientBuilder().
		WithApplicationID(applicationID).
		WithLogger(options.Logger)
	if options.Cloud != "" {
		builder.WithCloud(options.Cloud)
	}
	if options.Endpoint != "" {
		builder.WithEndpoint(options.Endpoint)
	}
	if options.Transport != nil {
		builder.WithTransport(options.Transport)
	}
	if options.Retry != nil {
		builder.WithRetry(*options.Retry)
	}
	if options.Metrics != nil {
		builder.WithMetrics(options.Metrics)
	}
	if options.TracerProvider != nil {
		builder.WithTracerProvider(options.TracerProvider)
	}
	client, err := builder.Build(cred)
	if err != nil {
		return nil, fmt.Errorf("failed to create management client: %w", err)
	}

	armOptions, err := newARMClientOptions(options)
	if err != nil {
		return nil, err
	}
	resourceGroups, err := armresources.NewResourceGroupsClient(subscriptionID, cred, armOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}

	customerInsights, err := armcustomerinsights.NewClientFactory(subscriptionID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Customer Insights client: %w", err)
	}
	mediaServices, err := armmediaservices.NewClientFactory(subscriptionID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Media Services client: %w", err)
	}
	storage, err := armstorage.NewClientFactory(subscriptionID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}

	pollFrequency := options.PollFrequency
	if pollFrequency <= 0 {
		pollFrequency = defaultPollFrequency
	}
	return &Clients{
		resourceGroups: resourceGroups,
		hubs:           customerInsights.NewHubsClient(),
		profiles:       customerInsights.NewProfilesClient(),
		kpi:            customerInsights.NewKpiClient(),
		mediaServices:  mediaServices.NewMediaServicesClient(),
		transforms:     mediaServices.NewTransformsClient(),
		jobs:           mediaServices.NewJobsClient(),
		queues:         storage.NewQueueClient(),
		pollFrequency:  pollFrequency,
	}, nil
}

func newARMClientOptions(options ClientOptions) (*arm.ClientOptions, error) {
	cloudName := options.Cloud
	if cloudName == "" {
		cloudName = mgmt.CloudAzurePublic
	}
	configuration, err := mgmt.CloudConfiguration(cloudName)
	if err != nil {
		return nil, err
	}
	if options.Endpoint != "" {
		configuration = cloud.Configuration{
			ActiveDirectoryAuthorityHost: configuration.ActiveDirectoryAuthorityHost,
			Services: map[cloud.ServiceName]cloud.ServiceConfiguration{
				cloud.ResourceManager: {
					Endpoint: options.Endpoint,
					Audience: options.Endpoint,
				},
			},
		}
	}

	armOptions := &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud:     configuration,
			Transport: options.Transport,
			Telemetry: policy.TelemetryOptions{ApplicationID: applicationID},
		},
	}
	if options.Retry != nil {
		armOptions.Retry = *options.Retry
	}
	if options.TracerProvider != nil {
		armOptions.TracingProvider = azotel.NewTracingProvider(options.TracerProvider, nil)
	}
	return armOptions, nil
}

func (c *Clients) ListResourceGroups(ctx context.Context) ([]string, error) {
	groups, err := mgmt.Collect(ctx, c.resourceGroups.NewListPager(nil), func(page armresources.ResourceGroupsClientListResponse) []*armresources.ResourceGroup {
		return page.Value
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list resource groups: %w", err)
	}
	names := make([]string, 0, len(groups))
	for _, group := range groups {
		if group.Name != nil {
			names = append(names, *group.Name)
		}
	}
	return names, nil
}

func (c *Clients) ListHubs(ctx context.Context, resourceGroup string) ([]*armcustomerinsights.Hub, error) {
	hubs, err := mgmt.Collect(ctx, c.hubs.NewListByResourceGroupPager(resourceGroup, nil), func(page armcustomerinsights.HubsClientListByResourceGroupResponse) []*armcustomerinsights.Hub {
		return page.Value
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list hubs in %s: %w", resourceGroup, err)
	}
	return hubs, nil
}

func (c *Clients) GetHub(ctx context.Context, resourceGroup, hubName string) (*armcustomerinsights.Hub, error) {
	resp, err := c.hubs.Get(ctx, resourceGroup, hubName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get hub %s: %w", hubName, err)
	}
	return &resp.Hub, nil
}

func (c *Clients) DeleteHub(ctx context.Context, resourceGroup, hubName string) error {
	poller, err := c.hubs.BeginDelete(ctx, resourceGroup, hubName, nil)
	if err != nil {
		return fmt.Errorf("failed to delete hub %s: %w", hubName, err)
	}
	if _, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: c.pollFrequency}); err != nil {
		return fmt.Errorf("failed waiting for hub %s deletion: %w", hubName, err)
	}
	return nil
}

func (c *Clients) ListProfiles(ctx context.Context, resourceGroup, hubName, localeCode string) ([]*armcustomerinsights.ProfileResourceFormat, error) {
	options := &armcustomerinsights.ProfilesClientListByHubOptions{}
	if localeCode != "" {
		options.LocaleCode = to.Ptr(localeCode)
	}
	profiles, err := mgmt.Collect(ctx, c.profiles.NewListByHubPager(resourceGroup, hubName, options), func(page armcustomerinsights.ProfilesClientListByHubResponse) []*armcustomerinsights.ProfileResourceFormat {
		return page.Value
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles of hub %s: %w", hubName, err)
	}
	return profiles, nil
}

func (c *Clients) ReprocessKpi(ctx context.Context, resourceGroup, hubName, kpiName string) error {
	if _, err := c.kpi.Reprocess(ctx, resourceGroup, hubName, kpiName, nil); err != nil {
		return fmt.Errorf("failed to reprocess kpi %s: %w", kpiName, err)
	}
	return nil
}

func (c *Clients) ListAccounts(ctx context.Context, resourceGroup string) ([]*armmediaservices.MediaService, error) {
	accounts, err := mgmt.Collect(ctx, c.mediaServices.NewListPager(resourceGroup, nil), func(page armmediaservices.MediaServicesClientListResponse) []*armmediaservices.MediaService {
		return page.Value
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list media services accounts in %s: %w", resourceGroup, err)
	}
	return accounts, nil
}

func (c *Clients) ListTransforms(ctx context.Context, resourceGroup, accountName string) ([]*armmediaservices.Transform, error) {
	transforms, err := mgmt.Collect(ctx, c.transforms.NewListPager(resourceGroup, accountName, nil), func(page armmediaservices.TransformsClientListResponse) []*armmediaservices.Transform {
		return page.Value
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transforms of %s: %w", accountName, err)
	}
	return transforms, nil
}

func (c *Clients) ListJobs(ctx context.Context, resourceGroup, accountName, transformName, filter string) ([]*armmediaservices.Job, error) {
	options := &armmediaservices.JobsClientListOptions{}
	if filter != "" {
		options.Filter = to.Ptr(filter)
	}
	jobs, err := mgmt.Collect(ctx, c.jobs.NewListPager(resourceGroup, accountName, transformName, options), func(page armmediaservices.JobsClientListResponse) []*armmediaservices.Job {
		return page.Value
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs of transform %s: %w", transformName, err)
	}
	return jobs, nil
}

func (c *Clients) CancelJob(ctx context.Context, resourceGroup, accountName, transformName, jobName string) error {
	if _, err := c.jobs.CancelJob(ctx, resourceGroup, accountName, transformName, jobName, nil); err != nil {
		return fmt.Errorf("failed to cancel job %s: %w", jobName, err)
	}
	return nil
}

func (c *Clients) ListQueues(ctx context.Context, resourceGroup, accountName, prefix string) ([]*armstorage.ListQueue, error) {
	options := &armstorage.QueueClientListOptions{}
	if prefix != "" {
		options.Filter = to.Ptr(prefix)
	}
	queues, err := mgmt.Collect(ctx, c.queues.NewListPager(resourceGroup, accountName, options), func(page armstorage.QueueClientListResponse) []*armstorage.ListQueue {
		return page.Value
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queues of %s: %w", accountName, err)
	}
	return queues, nil
}

func (c *Clients) CreateQueue(ctx context.Context, resourceGroup, accountName, queueName string, metadata map[string]*string) (*armstorage.StorageQueue, error) {
	queue := armstorage.StorageQueue{}
	if len(metadata) > 0 {
		queue.QueueProperties = &armstorage.QueueProperties{Metadata: metadata}
	}
	resp, err := c.queues.Create(ctx, resourceGroup, accountName, queueName, queue, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create queue %s: %w", queueName, err)
	}
	return &resp.StorageQueue, nil
}

func (c *Clients) DeleteQueue(ctx context.Context, resourceGroup, accountName, queueName string) error {
	if _, err := c.queues.Delete(ctx, resourceGroup, accountName, queueName, nil); err != nil {
		return fmt.Errorf("failed to delete queue %s: %w", queueName, err)
	}
	return nil
}
