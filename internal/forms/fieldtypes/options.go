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

package fieldtypes

import (
	"context"
	"fmt"
	"strings"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// Options handles the option-backed kinds (dropdown, radio, checkboxList).
// Submitted values must come from the field's prevalue list. The multiple
// flag allows comma-separated multi-selection (checkboxList).
type Options struct {
	kind     string
	multiple bool
}

// Name implements FieldType.
func (o Options) Name() string { return o.kind }

// ValidateField implements FieldType.
func (o Options) ValidateField(ctx context.Context, form *forms.Form, field *forms.Field, inputs []string) []string {
	selected := o.selections(inputs)
	if len(selected) == 0 {
		if field.Required {
			return []string{""}
		}
		return nil
	}

	var errors []string
	for _, value := range selected {
		if !containsValue(field.PreValues, value) {
			errors = append(errors, fmt.Sprintf("%s does not allow the value %q", field.Caption, value))
		}
	}
	return errors
}

// ConvertToRecord implements FieldType.
func (o Options) ConvertToRecord(ctx context.Context, field *forms.Field, inputs []string) []interface{} {
	selected := o.selections(inputs)
	values := make([]interface{}, 0, len(selected))
	for _, value := range selected {
		values = append(values, value)
	}
	return values
}

// selections normalizes the raw inputs into the list of chosen options.
func (o Options) selections(inputs []string) []string {
	var selected []string
	for _, input := range inputs {
		if !o.multiple {
			if input != "" {
				selected = append(selected, input)
			}
			continue
		}
		for _, part := range strings.Split(input, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				selected = append(selected, part)
			}
		}
	}
	if !o.multiple && len(selected) > 1 {
		selected = selected[:1]
	}
	return selected
}

func containsValue(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
