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

package codegen

import (
	"strings"
	"text/template"
)

var modelsTemplate = template.Must(template.New("models").Funcs(template.FuncMap{
	"receiver": func(name string) string { return strings.ToLower(name[:1]) },
}).Parse(`// Code generated by armctl generate models. DO NOT EDIT.

package {{ .Package }}
{{ if .Imports }}
import (
{{- range .Imports }}
	"{{ . }}"
{{- end }}
)
{{ end }}
{{- range .Interfaces }}
// {{ .Name }} provides polymorphic access to related types.
// Call the interface's Get{{ .Base }}() method to access the common type.
// Use a type switch to determine the concrete type. The possible types are:
{{- range .Types }}
// - *{{ . }}
{{- end }}
type {{ .Name }} interface {
	// Get{{ .Base }} returns the {{ .Base }} content of the underlying type.
	Get{{ .Base }}() *{{ .Base }}
}
{{ end }}
{{- range .Structs }}
{{ if .Doc }}// {{ .Name }} - {{ .Doc }}
{{ end -}}
type {{ .Name }} struct {
{{- range $i, $f := .Fields }}
{{- if and $i $f.Doc }}
{{ end }}
{{- if $f.Doc }}
	// {{ $f.Doc }}
{{- end }}
	{{ $f.Name }} {{ $f.Type }} ` + "`" + `json:"{{ $f.JSONName }},omitempty"` + "`" + `
{{- end }}
}
{{- $st := . }}
{{- range .Implements }}

// Get{{ .Base }} implements the {{ .Base }}Classification interface for type {{ $st.Name }}.
{{- if .Self }}
func ({{ receiver $st.Name }} *{{ $st.Name }}) Get{{ .Base }}() *{{ .Base }} { return {{ receiver $st.Name }} }
{{- else }}
func ({{ receiver $st.Name }} *{{ $st.Name }}) Get{{ .Base }}() *{{ .Base }} {
	return &{{ .Base }}{
{{- range .Fields }}
		{{ . }}: {{ receiver $st.Name }}.{{ . }},
{{- end }}
	}
}
{{- end }}
{{- end }}
{{ end }}
{{- range $e := .Enums }}
{{ if $e.Doc }}// {{ $e.Name }} - {{ $e.Doc }}
{{ end -}}
type {{ $e.Name }} string

const (
{{- range $e.Values }}
	{{ .Const }} {{ $e.Name }} = {{ printf "%q" .Value }}
{{- end }}
)

// Possible{{ $e.Name }}Values returns the possible values for the {{ $e.Name }} const type.
func Possible{{ $e.Name }}Values() []{{ $e.Name }} {
	return []{{ $e.Name }}{
{{- range $e.Values }}
		{{ .Const }},
{{- end }}
	}
}
{{ end -}}
`))
