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

// Package forms defines the form-definition model: a Form is an ordered list
// of Pages, each Page groups FieldSets, a FieldSet groups Containers (with an
// optional visibility Condition), and a Container holds the Fields a caller
// can submit values for.
package forms

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultInvalidErrorMessage is the fallback template used when a field-type
// validator reports a violation without a message. "{0}" is substituted with
// the field's caption.
const DefaultInvalidErrorMessage = "Please provide a valid value for {0}"

// Form is a submittable questionnaire definition. Field identifiers and
// aliases are unique within a form; the Store enforces this on Add.
type Form struct {
	ID   uuid.UUID
	Name string

	// InvalidErrorMessage is the form-level template for blank validation
	// messages. Empty means DefaultInvalidErrorMessage.
	InvalidErrorMessage string

	Pages []*Page
}

// Page is one step of a multi-page form.
type Page struct {
	Caption   string
	FieldSets []*FieldSet
}

// FieldSet groups containers of fields and is the unit at which visibility
// conditions apply.
type FieldSet struct {
	ID        uuid.UUID
	Caption   string
	Condition *Condition
	Containers []*Container
}

// Container is a layout column inside a FieldSet.
type Container struct {
	Caption string
	Width   int
	Fields  []*Field
}

// Field is a single submittable value definition. Type is the field-kind tag
// that selects the validator/converter variant (see the fieldtypes package).
type Field struct {
	ID       uuid.UUID
	Alias    string
	Caption  string
	Type     string
	Required bool

	// Pattern is an optional regular expression a submitted value must match.
	Pattern string

	// PreValues are the selectable options for option-backed field kinds
	// (dropdown, radio, checkboxList).
	PreValues []string

	// Settings are free-form per-field settings of the field kind (e.g. a
	// placeholder text or a maximum length).
	Settings map[string]string

	// Values are the field's prior/current stored values. They seed condition
	// evaluation when the caller did not submit a value for the field.
	Values []string
}

// AllFields flattens the page/fieldset/container hierarchy into the form's
// full field list, in definition order.
func (f *Form) AllFields() []*Field {
	var fields []*Field
	for _, page := range f.Pages {
		for _, fieldSet := range page.FieldSets {
			for _, container := range fieldSet.Containers {
				fields = append(fields, container.Fields...)
			}
		}
	}
	return fields
}

// FieldByAlias finds a field by its alias. Returns nil if the form has no
// such field.
func (f *Form) FieldByAlias(alias string) *Field {
	for _, field := range f.AllFields() {
		if field.Alias == alias {
			return field
		}
	}
	return nil
}

// InvalidErrorMessageOrDefault returns the form's blank-message template,
// falling back to DefaultInvalidErrorMessage.
func (f *Form) InvalidErrorMessageOrDefault() string {
	if strings.TrimSpace(f.InvalidErrorMessage) == "" {
		return DefaultInvalidErrorMessage
	}
	return f.InvalidErrorMessage
}

// FormatInvalidError renders the blank-message template for a field. The
// template's "{0}" placeholder is substituted with the field's caption.
func (f *Form) FormatInvalidError(field *Field) string {
	return strings.ReplaceAll(f.InvalidErrorMessageOrDefault(), "{0}", field.Caption)
}
