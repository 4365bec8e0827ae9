/**
 * Copyright (c) 2026, The FormsGraph Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package fieldtypes implements per-kind field validation and record
// conversion. Each field kind (text, email, number, ...) is one FieldType
// variant; the Registry selects the variant by the kind tag stored on the
// field definition.
package fieldtypes

import (
	"context"
	"fmt"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// FieldType validates submitted raw values for one field kind and converts
// them into typed record values.
//
// ValidateField returns zero or more error messages. An empty message marks a
// violation whose wording is left to the form's invalid-error template (the
// caller substitutes the field caption). ConvertToRecord returns zero or more
// typed values; an empty input list yields an empty value list so that absent
// fields clear any previously stored values.
type FieldType interface {
	// Name is the kind tag this variant is registered under.
	Name() string

	ValidateField(ctx context.Context, form *forms.Form, field *forms.Field, inputs []string) []string

	ConvertToRecord(ctx context.Context, field *forms.Field, inputs []string) []interface{}
}

// Registry maps field-kind tags to their FieldType variant.
type Registry struct {
	types map[string]FieldType
}

// NewRegistry creates a registry pre-populated with the built-in field kinds.
func NewRegistry() *Registry {
	r := &Registry{types: map[string]FieldType{}}
	r.Register(Text{kind: "text"})
	r.Register(Text{kind: "textarea"})
	r.Register(Text{kind: "hidden"})
	r.Register(Email{})
	r.Register(Number{})
	r.Register(Date{})
	r.Register(Checkbox{})
	r.Register(Options{kind: "dropdown"})
	r.Register(Options{kind: "radio"})
	r.Register(Options{kind: "checkboxList", multiple: true})
	return r
}

// Register adds or replaces the variant for a kind tag.
func (r *Registry) Register(t FieldType) {
	r.types[t.Name()] = t
}

// ByField returns the variant for a field's kind tag. An unknown tag is a
// definition error surfaced to the orchestrator's fault boundary.
func (r *Registry) ByField(field *forms.Field) (FieldType, error) {
	t, ok := r.types[field.Type]
	if !ok {
		return nil, fmt.Errorf("fieldtypes: field %q has unknown type %q", field.Alias, field.Type)
	}
	return t, nil
}

// firstValue returns the first non-empty submitted value, with ok reporting
// whether anything non-empty was submitted.
func firstValue(inputs []string) (string, bool) {
	for _, input := range inputs {
		if input != "" {
			return input, true
		}
	}
	return "", false
}
