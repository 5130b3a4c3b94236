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

// Package codegen turns the definitions of a Swagger 2.0 document into Go
// models shaped like the provider packages of this module: pointer fields
// with omitempty JSON tags, string enums with Possible*Values helpers and
// Classification interfaces for discriminated types.
package codegen

import (
	"bytes"
	"go/format"
	"maps"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/go-openapi/loads"
	"github.com/go-openapi/spec"
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"

	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	extensionEnum               = "x-ms-enum"
	extensionClientFlatten      = "x-ms-client-flatten"
	extensionDiscriminatorValue = "x-ms-discriminator-value"
)

// Load reads a Swagger 2.0 document, in JSON or YAML, from path.
func Load(path string) (*spec.Swagger, error) {
	doc, err := loads.Spec(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return doc.Spec(), nil
}

// Generate renders the models of doc as a formatted Go source file of
// package pkg.
func Generate(doc *spec.Swagger, pkg string) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("document cannot be nil")
	}
	if pkg == "" {
		return nil, errors.New("package name cannot be empty")
	}
	g := &generator{
		definitions: doc.Definitions,
		enums:       map[string]*enumType{},
		imports:     sets.New[string](),
		constants:   sets.New[string](),
	}
	file, err := g.build(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := modelsTemplate.Execute(&buf, file); err != nil {
		return nil, errors.Wrap(err, "failed to render models")
	}
	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to format models:\n%s", buf.String())
	}
	return source, nil
}

type modelsFile struct {
	Package    string
	Imports    []string
	Interfaces []*interfaceType
	Structs    []*structType
	Enums      []*enumType
}

type interfaceType struct {
	Name  string
	Base  string
	Types []string
}

type structType struct {
	Name string
	Doc  string
	// Implements lists the Classification interfaces the type satisfies,
	// by base type name.
	Implements []*implementation
	Fields     []*field
}

type implementation struct {
	Base   string
	Fields []string
	// Self is set when the struct is the base type itself.
	Self bool
}

type field struct {
	Name     string
	Type     string
	JSONName string
	Doc      string
}

type enumType struct {
	Name   string
	Doc    string
	Values []enumValue
}

type enumValue struct {
	Const string
	Value string
}

type property struct {
	jsonName string
	schema   spec.Schema
	required bool
}

type generator struct {
	definitions spec.Definitions
	enums       map[string]*enumType
	imports     sets.Set[string]
	constants   sets.Set[string]
}

func (g *generator) build(pkg string) (*modelsFile, error) {
	file := &modelsFile{Package: pkg}
	names := slices.Sorted(maps.Keys(g.definitions))

	bases := map[string][]string{}
	for _, name := range names {
		if base := g.rootBase(name); base != "" && base != name {
			bases[base] = append(bases[base], name)
		}
	}

	for _, name := range names {
		schema := g.definitions[name]
		if isEnum(schema) {
			g.enum(enumName(name, schema), schema)
			continue
		}

		properties, err := g.properties(name, sets.New[string]())
		if err != nil {
			return nil, err
		}
		st := &structType{Name: swag.ToGoName(name), Doc: docText(schema.Description)}
		for _, p := range properties {
			st.Fields = append(st.Fields, g.field(st.Name, p))
		}
		slices.SortFunc(st.Fields, func(a, b *field) int { return strings.Compare(a.Name, b.Name) })

		if base := g.rootBase(name); base != "" {
			baseName := swag.ToGoName(base)
			impl := &implementation{Base: baseName, Self: base == name}
			if !impl.Self {
				baseProperties, err := g.properties(base, sets.New[string]())
				if err != nil {
					return nil, err
				}
				for _, p := range baseProperties {
					impl.Fields = append(impl.Fields, swag.ToGoName(p.jsonName))
				}
				slices.Sort(impl.Fields)
			}
			st.Implements = append(st.Implements, impl)
		}
		file.Structs = append(file.Structs, st)
	}

	for _, base := range slices.Sorted(maps.Keys(bases)) {
		it := &interfaceType{Name: swag.ToGoName(base) + "Classification", Base: swag.ToGoName(base)}
		it.Types = append(it.Types, swag.ToGoName(base))
		for _, derived := range bases[base] {
			it.Types = append(it.Types, swag.ToGoName(derived))
		}
		file.Interfaces = append(file.Interfaces, it)
	}

	for _, name := range slices.Sorted(maps.Keys(g.enums)) {
		file.Enums = append(file.Enums, g.enums[name])
	}
	file.Imports = sets.List(g.imports)
	return file, nil
}

// properties collects the properties of a definition with allOf parents
// and x-ms-client-flatten properties inlined. visiting guards against
// reference cycles.
func (g *generator) properties(name string, visiting sets.Set[string]) ([]property, error) {
	if visiting.Has(name) {
		return nil, errors.Errorf("definition %s references itself through allOf or x-ms-client-flatten", name)
	}
	schema, ok := g.definitions[name]
	if !ok {
		return nil, errors.Errorf("definition %s not found", name)
	}
	visiting.Insert(name)
	defer visiting.Delete(name)

	var result []property
	seen := sets.New[string]()
	add := func(ps ...property) {
		for _, p := range ps {
			if !seen.Has(p.jsonName) {
				seen.Insert(p.jsonName)
				result = append(result, p)
			}
		}
	}

	for _, parent := range schema.AllOf {
		if ref := refName(parent.Ref); ref != "" {
			inherited, err := g.properties(ref, visiting)
			if err != nil {
				return nil, err
			}
			add(inherited...)
			continue
		}
		add(ownProperties(parent)...)
	}

	for _, p := range ownProperties(schema) {
		if flatten, _ := p.schema.Extensions.GetBool(extensionClientFlatten); flatten {
			if ref := refName(p.schema.Ref); ref != "" && !isEnum(g.definitions[ref]) {
				inlined, err := g.properties(ref, visiting)
				if err != nil {
					return nil, err
				}
				add(inlined...)
				continue
			}
		}
		add(p)
	}
	return result, nil
}

func ownProperties(schema spec.Schema) []property {
	required := sets.New(schema.Required...)
	names := slices.Sorted(maps.Keys(schema.Properties))
	result := make([]property, 0, len(names))
	for _, name := range names {
		result = append(result, property{
			jsonName: name,
			schema:   schema.Properties[name],
			required: required.Has(name),
		})
	}
	return result
}

func (g *generator) field(owner string, p property) *field {
	var doc []string
	switch {
	case p.required:
		doc = append(doc, "REQUIRED")
	case p.schema.ReadOnly:
		doc = append(doc, "READ-ONLY")
	}
	if description := docText(p.schema.Description); description != "" {
		doc = append(doc, description)
	}
	return &field{
		Name:     swag.ToGoName(p.jsonName),
		Type:     g.goType(p.schema, owner+swag.ToGoName(p.jsonName)),
		JSONName: p.jsonName,
		Doc:      strings.Join(doc, "; "),
	}
}

// goType maps a schema onto a Go type. inlineEnumName names enums declared
// inline without x-ms-enum.
func (g *generator) goType(schema spec.Schema, inlineEnumName string) string {
	if ref := refName(schema.Ref); ref != "" {
		target := g.definitions[ref]
		switch {
		case isEnum(target):
			return "*" + g.enum(enumName(ref, target), target)
		case target.Discriminator != "":
			return swag.ToGoName(ref) + "Classification"
		default:
			return "*" + swag.ToGoName(ref)
		}
	}
	if isEnum(schema) {
		return "*" + g.enum(enumName(inlineEnumName, schema), schema)
	}

	switch {
	case schema.Type.Contains("string"):
		switch schema.Format {
		case "date-time", "date-time-rfc1123":
			g.imports.Insert("time")
			return "*time.Time"
		case "byte", "base64url":
			return "[]byte"
		}
		return "*string"
	case schema.Type.Contains("integer"):
		if schema.Format == "int64" {
			return "*int64"
		}
		return "*int32"
	case schema.Type.Contains("number"):
		if schema.Format == "float" {
			return "*float32"
		}
		return "*float64"
	case schema.Type.Contains("boolean"):
		return "*bool"
	case schema.Type.Contains("array"):
		if schema.Items == nil || schema.Items.Schema == nil {
			return "[]any"
		}
		return "[]" + g.goType(*schema.Items.Schema, inlineEnumName+"Item")
	}

	if additional := schema.AdditionalProperties; additional != nil {
		if additional.Schema != nil {
			return "map[string]" + g.goType(*additional.Schema, inlineEnumName+"Value")
		}
		if additional.Allows {
			return "map[string]any"
		}
	}
	return "any"
}

// enum registers the enum name, if new, and returns its name.
func (g *generator) enum(name string, schema spec.Schema) string {
	if _, ok := g.enums[name]; ok {
		return name
	}
	e := &enumType{Name: name, Doc: docText(schema.Description)}
	values := sets.New[string]()
	for _, raw := range schema.Enum {
		value, ok := raw.(string)
		if !ok || values.Has(value) {
			continue
		}
		values.Insert(value)
		suffix := swag.ToGoName(value)
		if suffix == "" {
			continue
		}
		e.Values = append(e.Values, enumValue{Const: g.constant(name + suffix), Value: value})
	}
	g.enums[name] = e
	return name
}

// constant reserves a constant name. Values that map to the same Go name,
// such as "Standard_LRS" and "StandardLRS", get a numeric suffix.
func (g *generator) constant(name string) string {
	candidate := name
	for i := 2; g.constants.Has(candidate); i++ {
		candidate = name + strconv.Itoa(i)
	}
	g.constants.Insert(candidate)
	return candidate
}

// docText collapses a description onto a single comment line.
func docText(description string) string {
	return strings.Join(strings.Fields(description), " ")
}

// rootBase returns the discriminated definition name inherits from, or
// name itself when it declares the discriminator. It is empty for types
// outside any hierarchy.
func (g *generator) rootBase(name string) string {
	visited := sets.New[string]()
	for current := name; current != "" && !visited.Has(current); {
		visited.Insert(current)
		schema, ok := g.definitions[current]
		if !ok {
			return ""
		}
		if schema.Discriminator != "" {
			return current
		}
		parent := ""
		for _, s := range schema.AllOf {
			if ref := refName(s.Ref); ref != "" {
				parent = ref
				break
			}
		}
		current = parent
	}
	return ""
}

func isEnum(schema spec.Schema) bool {
	return len(schema.Enum) > 0 && (len(schema.Type) == 0 || schema.Type.Contains("string"))
}

// enumName prefers the x-ms-enum name over fallback.
func enumName(fallback string, schema spec.Schema) string {
	if raw, ok := schema.Extensions[extensionEnum]; ok {
		if options, ok := raw.(map[string]any); ok {
			if name, ok := options["name"].(string); ok && name != "" {
				return swag.ToGoName(name)
			}
		}
	}
	return swag.ToGoName(fallback)
}

func refName(ref spec.Ref) string {
	u := ref.GetURL()
	if u == nil || u.Fragment == "" {
		return ""
	}
	return path.Base(u.Fragment)
}
