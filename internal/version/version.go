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

package version

// These variables are set during build via ldflags, e.g.
//
//	-ldflags "-X github.com/Azure/azure-mgmt-go/internal/version.CommitSHA=$(git rev-parse HEAD)"
var (
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// ModuleVersion is the semantic version reported in the User-Agent of every
// request sent by the clients in this module.
const ModuleVersion = "v0.4.0"

type VersionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   ModuleVersion,
		Commit:    CommitSHA,
		BuildDate: BuildDate,
	}
}
