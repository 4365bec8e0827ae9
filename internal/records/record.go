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

// Package records models persisted form submissions. A Record owns its
// RecordFields exclusively; the form definition it refers to is owned by the
// form store and never mutated from here.
package records

import (
	"time"

	"github.com/google/uuid"

	"github.com/formsgraph/formsgraph/internal/forms"
)

// State of a record. The submission pipeline only ever creates records in
// StateSubmitted; other states belong to back-office tooling.
type State string

// Record states.
const (
	StateSubmitted State = "Submitted"
	StateApproved  State = "Approved"
	StateRejected  State = "Rejected"
)

// Record is one persisted submission of a form.
type Record struct {
	// ID is assigned once at creation and immutable thereafter.
	ID uuid.UUID

	Form      uuid.UUID
	State     State
	PageID    int
	IP        string
	MemberKey string
	CreatedAt time.Time

	// Fields maps field id to the converted values for that field.
	Fields map[uuid.UUID]*RecordField
}

// RecordField holds the converted value list for one field of a record. A
// field kind may be multi-valued (e.g. checkboxList), hence the list.
type RecordField struct {
	FieldID uuid.UUID
	Alias   string
	Values  []interface{}
}

// New creates an empty record for a form with a fresh identifier.
func New(form uuid.UUID) *Record {
	return &Record{
		ID:        uuid.New(),
		Form:      form,
		State:     StateSubmitted,
		CreatedAt: time.Now().UTC(),
		Fields:    map[uuid.UUID]*RecordField{},
	}
}

// SetFieldValues stores the converted values for a field, reusing an
// existing RecordField (clearing its values first) or creating one.
func (r *Record) SetFieldValues(field *forms.Field, values []interface{}) {
	rf, ok := r.Fields[field.ID]
	if !ok {
		rf = &RecordField{FieldID: field.ID, Alias: field.Alias}
		r.Fields[field.ID] = rf
	}
	rf.Values = rf.Values[:0]
	rf.Values = append(rf.Values, values...)
}
