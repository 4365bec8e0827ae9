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
	"regexp"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// Text handles the free-text field kinds (text, textarea, hidden). A
// required field must carry a non-empty value; an optional Pattern on the
// field definition constrains the value format.
type Text struct {
	kind string
}

// Name implements FieldType.
func (t Text) Name() string { return t.kind }

// ValidateField implements FieldType.
func (t Text) ValidateField(ctx context.Context, form *forms.Form, field *forms.Field, inputs []string) []string {
	value, ok := firstValue(inputs)
	if !ok {
		if field.Required {
			// Blank message: the submitter substitutes the form's template.
			return []string{""}
		}
		return nil
	}

	if field.Pattern != "" {
		re, err := regexp.Compile(field.Pattern)
		if err != nil {
			return []string{fmt.Sprintf("The field %s has an invalid validation pattern", field.Caption)}
		}
		if !re.MatchString(value) {
			return []string{""}
		}
	}
	return nil
}

// ConvertToRecord implements FieldType.
func (t Text) ConvertToRecord(ctx context.Context, field *forms.Field, inputs []string) []interface{} {
	values := make([]interface{}, 0, len(inputs))
	for _, input := range inputs {
		if input == "" {
			continue
		}
		values = append(values, input)
	}
	return values
}
