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

package submission

import (
	"strings"

	"github.com/google/uuid"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// FieldValue is one submitted (field, value) pair. Field references the
// target field by UUID or by alias, at the caller's choice.
type FieldValue struct {
	Field string
	Value string
}

// Values is the raw value mapping of one submission, keyed by the field
// reference exactly as the caller supplied it.
type Values map[string]string

// BuildValues folds the submitted pairs into a mapping. Duplicate field
// references resolve last-write-wins.
func BuildValues(fields []FieldValue) Values {
	values := make(Values, len(fields))
	for _, fv := range fields {
		values[fv.Field] = fv.Value
	}
	return values
}

// Lookup finds the submitted raw value for a field, trying the field's id
// first and falling back to its alias. ok is false when the field was not
// submitted at all.
func (v Values) Lookup(field *forms.Field) (value string, ok bool) {
	if value, ok = v[field.ID.String()]; ok {
		return value, true
	}
	value, ok = v[field.Alias]
	return value, ok
}

// Inputs returns the candidate input list for a field: a single-element list
// when the field was submitted, an empty list otherwise. Absent fields still
// flow through conversion so a resubmission can clear stored values.
func (v Values) Inputs(field *forms.Field) []string {
	if value, ok := v.Lookup(field); ok {
		return []string{value}
	}
	return nil
}

// CurrentValues builds the per-field value view conditions are evaluated
// against: each field's stored values joined with ", ", overlaid with the
// value the caller submitted for it.
func (v Values) CurrentValues(form *forms.Form) map[uuid.UUID]string {
	current := map[uuid.UUID]string{}
	for _, field := range form.AllFields() {
		current[field.ID] = strings.Join(field.Values, ", ")
		if value, ok := v.Lookup(field); ok {
			current[field.ID] = value
		}
	}
	return current
}
