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
	"strings"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// Checkbox is a single boolean toggle. A required checkbox must be checked.
type Checkbox struct{}

// Name implements FieldType.
func (Checkbox) Name() string { return "checkbox" }

// ValidateField implements FieldType.
func (Checkbox) ValidateField(ctx context.Context, form *forms.Form, field *forms.Field, inputs []string) []string {
	if field.Required && !checked(inputs) {
		return []string{""}
	}
	return nil
}

// ConvertToRecord implements FieldType.
func (Checkbox) ConvertToRecord(ctx context.Context, field *forms.Field, inputs []string) []interface{} {
	if _, ok := firstValue(inputs); !ok {
		return nil
	}
	return []interface{}{checked(inputs)}
}

func checked(inputs []string) bool {
	value, ok := firstValue(inputs)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
