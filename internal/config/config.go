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

// Package config loads armctl profiles: YAML files that preset the cloud,
// subscription and output of every command and pick what inventory lists.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"dario.cat/mergo"
	validator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	CloudAzurePublic       = "AzurePublicCloud"
	CloudAzureChina        = "AzureChinaCloud"
	CloudAzureUSGovernment = "AzureUSGovernmentCloud"

	OutputTable = "table"
	OutputJSON  = "json"

	ProviderCustomerInsights = "customerinsights"
	ProviderMediaServices    = "mediaservices"
	ProviderStorage          = "storage"
)

// Profile is the content of a profile file. Zero fields keep the defaults.
type Profile struct {
	Cloud          string    `yaml:"cloud" validate:"omitempty,oneof=AzurePublicCloud AzureChinaCloud AzureUSGovernmentCloud"`
	SubscriptionID string    `yaml:"subscription" validate:"omitempty,uuid"`
	ResourceGroup  string    `yaml:"resourceGroup"`
	Output         string    `yaml:"output" validate:"omitempty,oneof=table json"`
	Inventory      Inventory `yaml:"inventory"`
	Metrics        Metrics   `yaml:"metrics"`
}

// Inventory configures the inventory command.
type Inventory struct {
	Providers       []string         `yaml:"providers" validate:"dive,oneof=customerinsights mediaservices storage"`
	Parallelism     int              `yaml:"parallelism" validate:"omitempty,min=1,max=64"`
	StorageAccounts []StorageAccount `yaml:"storageAccounts" validate:"dive"`
}

// StorageAccount names an account whose queues inventory counts.
type StorageAccount struct {
	ResourceGroup string `yaml:"resourceGroup" validate:"required"`
	Name          string `yaml:"name" validate:"required,min=3,max=24,alphanum,lowercase"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	// Address is the listen address of /metrics. Empty disables it.
	Address string `yaml:"address" validate:"omitempty,hostname_port"`
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Cloud:  CloudAzurePublic,
		Output: OutputTable,
		Inventory: Inventory{
			Providers:   []string{ProviderCustomerInsights, ProviderMediaServices, ProviderStorage},
			Parallelism: 4,
		},
	}
}

// LoadFromFile reads the profile at path over the defaults and validates
// the result.
func LoadFromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile")
	}
	profile, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid profile %s", path)
	}
	return profile, nil
}

// Parse decodes a profile document over the defaults and validates the
// result. Unknown keys are rejected.
func Parse(data []byte) (*Profile, error) {
	var file Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to parse profile")
	}

	profile := Default()
	if err := mergo.Merge(profile, file, mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, "failed to merge profile")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// Validate checks the profile against its field constraints.
func (p *Profile) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(p); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fieldMessage(fieldErr))
			}
			return errors.Errorf("invalid profile: %s", strings.Join(messages, "; "))
		}
		return errors.Wrap(err, "invalid profile")
	}
	return nil
}

func fieldMessage(fieldErr validator.FieldError) string {
	_, field, _ := strings.Cut(fieldErr.Namespace(), ".")
	switch fieldErr.Tag() {
	case "required":
		return "missing required field '" + field + "'"
	case "oneof":
		return "field '" + field + "' must be one of: " + fieldErr.Param()
	default:
		return "invalid value for field '" + field + "' (" + fieldErr.Tag() + ")"
	}
}
