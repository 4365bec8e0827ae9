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
	"time"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// dateLayouts are the accepted input formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// Date accepts a single date value and stores it normalized to RFC 3339.
type Date struct{}

// Name implements FieldType.
func (Date) Name() string { return "date" }

// ValidateField implements FieldType.
func (Date) ValidateField(ctx context.Context, form *forms.Form, field *forms.Field, inputs []string) []string {
	value, ok := firstValue(inputs)
	if !ok {
		if field.Required {
			return []string{""}
		}
		return nil
	}

	if _, ok := parseDate(value); !ok {
		return []string{fmt.Sprintf("%s must be a valid date", field.Caption)}
	}
	return nil
}

// ConvertToRecord implements FieldType.
func (Date) ConvertToRecord(ctx context.Context, field *forms.Field, inputs []string) []interface{} {
	value, ok := firstValue(inputs)
	if !ok {
		return nil
	}
	if t, ok := parseDate(value); ok {
		return []interface{}{t.Format(time.RFC3339)}
	}
	return []interface{}{value}
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
