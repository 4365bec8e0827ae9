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

package submission_test

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/formsgraph/formsgraph/internal/submission"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Result", func() {
	It("serializes a request-level failure", func() {
		data, err := json.Marshal(submission.Failure("The form ID specified could not be found"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(data).Should(MatchJSON(
			`{"success": false, "errors": [{"error": "The form ID specified could not be found"}]}`))
	})

	It("serializes field failures with their aliases", func() {
		result := submission.FieldFailure([]submission.FieldError{
			{Field: "name", Message: "Please provide a valid value for Name"},
			{Field: "email", Message: "Email must be a valid email address"},
		})
		data, err := json.Marshal(result)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(data).Should(MatchJSON(`{
			"success": false,
			"errors": [
				{"field": "name", "error": "Please provide a valid value for Name"},
				{"field": "email", "error": "Email must be a valid email address"}
			]
		}`))
	})

	It("serializes success with the record id", func() {
		id := uuid.MustParse("d0fb1c9a-36f1-4c4c-8b42-07f71d2f2f60")
		data, err := json.Marshal(submission.Success(id))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(data).Should(MatchJSON(
			`{"success": true, "id": "d0fb1c9a-36f1-4c4c-8b42-07f71d2f2f60"}`))
	})
})

var _ = Describe("Values", func() {
	It("folds duplicate pairs last-write-wins", func() {
		values := submission.BuildValues([]submission.FieldValue{
			{Field: "name", Value: "first"},
			{Field: "name", Value: "second"},
		})
		Expect(values).Should(HaveLen(1))
		Expect(values["name"]).Should(Equal("second"))
	})
})
