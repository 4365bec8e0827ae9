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
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FieldError is one validation error scoped to a field alias. A blank Field
// marks a request-level error.
type FieldError struct {
	Field   string
	Message string
}

// Result is the submission envelope: either Success with a record id, or
// Failure with one or more errors. Exactly one variant is populated.
type Result struct {
	Success bool
	ID      uuid.UUID
	Errors  []FieldError
}

// Failure builds a single-message failure envelope.
func Failure(message string) Result {
	return Result{Errors: []FieldError{{Message: message}}}
}

// FieldFailure builds a per-field failure envelope.
func FieldFailure(errors []FieldError) Result {
	return Result{Errors: errors}
}

// Success builds a success envelope carrying the persisted record id.
func Success(id uuid.UUID) Result {
	return Result{Success: true, ID: id}
}

// Envelope shapes the result into its JSON-ready form:
//
//	{"success": false, "errors": [{"error": ...}]}
//	{"success": false, "errors": [{"field": ..., "error": ...}, ...]}
//	{"success": true, "id": ...}
func (r Result) Envelope() map[string]interface{} {
	if r.Success {
		return map[string]interface{}{
			"success": true,
			"id":      r.ID.String(),
		}
	}

	errors := make([]interface{}, 0, len(r.Errors))
	for _, e := range r.Errors {
		entry := map[string]interface{}{"error": e.Message}
		if e.Field != "" {
			entry["field"] = e.Field
		}
		errors = append(errors, entry)
	}
	return map[string]interface{}{
		"success": false,
		"errors":  errors,
	}
}

// MarshalJSON serializes the envelope form.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Envelope())
}
