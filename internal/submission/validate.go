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
	"context"
	"strings"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// validateForm walks every page and field set of the form, skips field sets
// whose condition evaluates to not-visible under the supplied values, and
// validates the fields of the visible ones. All errors across all fields are
// accumulated; nothing short-circuits. Blank validator messages are replaced
// with the form's formatted default so no error ever surfaces empty.
func (s *Submitter) validateForm(ctx context.Context, form *forms.Form, values Values) ([]FieldError, error) {
	current := values.CurrentValues(form)

	var errors []FieldError
	for _, page := range form.Pages {
		for _, fieldSet := range page.FieldSets {
			if !fieldSet.Condition.IsVisible(current) {
				// Invisible fields never block submission.
				continue
			}

			for _, container := range fieldSet.Containers {
				for _, field := range container.Fields {
					fieldType, err := s.fieldTypes.ByField(field)
					if err != nil {
						return nil, err
					}

					for _, message := range fieldType.ValidateField(ctx, form, field, values.Inputs(field)) {
						if strings.TrimSpace(message) == "" {
							message = form.FormatInvalidError(field)
						}
						errors = append(errors, FieldError{Field: field.Alias, Message: message})
					}
				}
			}
		}
	}
	return errors, nil
}
