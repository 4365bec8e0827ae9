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
	"strconv"
	"strings"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// Number accepts a single decimal value and stores it as float64.
type Number struct{}

// Name implements FieldType.
func (Number) Name() string { return "number" }

// ValidateField implements FieldType.
func (Number) ValidateField(ctx context.Context, form *forms.Form, field *forms.Field, inputs []string) []string {
	value, ok := firstValue(inputs)
	if !ok {
		if field.Required {
			return []string{""}
		}
		return nil
	}

	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return []string{fmt.Sprintf("%s must be a number", field.Caption)}
	}
	return nil
}

// ConvertToRecord implements FieldType.
func (Number) ConvertToRecord(ctx context.Context, field *forms.Field, inputs []string) []interface{} {
	value, ok := firstValue(inputs)
	if !ok {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		// Conversion runs after validation; keep the raw value rather than
		// dropping the submission data.
		return []interface{}{value}
	}
	return []interface{}{n}
}
