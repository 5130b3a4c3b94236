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

// Package output renders command results as a table or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Result is what a command prints. Value is encoded for JSON output; Header
// and Rows are used for table output.
type Result struct {
	Value  any
	Header table.Row
	Rows   []table.Row
	// Footer, when set, is rendered below the rows of a table.
	Footer table.Row
}

// Write renders result to w in format.
func Write(w io.Writer, format string, result Result) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result.Value); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	case FormatTable, "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(result.Header)
		t.AppendRows(result.Rows)
		if len(result.Footer) > 0 {
			t.AppendFooter(result.Footer)
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Deref returns the value of p, or "-" when p is nil.
func Deref[T any](p *T) any {
	if p == nil {
		return "-"
	}
	return *p
}
