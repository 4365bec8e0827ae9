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
	"fmt"
	"strings"

	"github.com/formsgraph/formsgraph/internal/content"
	"github.com/formsgraph/formsgraph/internal/forms"
	"github.com/formsgraph/formsgraph/internal/records"
)

// assemble converts the raw value mapping into a typed record. Every field
// of the form is processed, including absent ones, so a field without input
// stores an empty value list. The record carries the originating page, the
// caller's network origin and, when the caller is authenticated and resolves
// to a member, the member's key.
func (s *Submitter) assemble(ctx context.Context, form *forms.Form, values Values, page *content.Page, req Request) (*records.Record, error) {
	record := records.New(form.ID)
	record.PageID = page.ID
	record.IP = req.RemoteAddr

	if strings.TrimSpace(req.Username) != "" {
		member, err := s.members.GetByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("resolve member %q: %w", req.Username, err)
		}
		if member != nil {
			record.MemberKey = member.Key.String()
		}
	}

	for _, field := range form.AllFields() {
		fieldType, err := s.fieldTypes.ByField(field)
		if err != nil {
			return nil, err
		}
		record.SetFieldValues(field, fieldType.ConvertToRecord(ctx, field, values.Inputs(field)))
	}
	return record, nil
}
