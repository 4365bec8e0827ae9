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

package fieldtypes_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/formsgraph/formsgraph/internal/forms"
	"github.com/formsgraph/formsgraph/internal/forms/fieldtypes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var (
		ctx      = context.Background()
		registry *fieldtypes.Registry
		form     *forms.Form
	)

	BeforeEach(func() {
		registry = fieldtypes.NewRegistry()
		form = &forms.Form{ID: uuid.New(), Name: "Test"}
	})

	field := func(kind string, required bool) *forms.Field {
		return &forms.Field{
			ID:       uuid.New(),
			Alias:    "field",
			Caption:  "Field",
			Type:     kind,
			Required: required,
		}
	}

	validate := func(f *forms.Field, inputs ...string) []string {
		t, err := registry.ByField(f)
		Expect(err).ShouldNot(HaveOccurred())
		return t.ValidateField(ctx, form, f, inputs)
	}

	convert := func(f *forms.Field, inputs ...string) []interface{} {
		t, err := registry.ByField(f)
		Expect(err).ShouldNot(HaveOccurred())
		return t.ConvertToRecord(ctx, f, inputs)
	}

	It("errors on an unknown field kind", func() {
		_, err := registry.ByField(field("slider", false))
		Expect(err).Should(HaveOccurred())
	})

	Describe("text kinds", func() {
		It("accepts any value for an optional field", func() {
			Expect(validate(field("text", false), "hello")).Should(BeEmpty())
			Expect(validate(field("text", false))).Should(BeEmpty())
		})

		It("flags a missing required value with a blank message", func() {
			Expect(validate(field("text", true))).Should(Equal([]string{""}))
			Expect(validate(field("textarea", true), "")).Should(Equal([]string{""}))
		})

		It("enforces the field pattern", func() {
			f := field("text", false)
			f.Pattern = `^\d{4}$`
			Expect(validate(f, "1234")).Should(BeEmpty())
			Expect(validate(f, "12x4")).Should(Equal([]string{""}))
		})

		It("converts values dropping empties", func() {
			Expect(convert(field("hidden", false), "", "a", "b")).
				Should(Equal([]interface{}{"a", "b"}))
		})
	})

	Describe("email", func() {
		It("accepts a well-formed address", func() {
			Expect(validate(field("email", true), "jo@example.com")).Should(BeEmpty())
		})

		It("rejects a malformed address with a worded message", func() {
			errs := validate(field("email", false), "not-an-address")
			Expect(errs).Should(HaveLen(1))
			Expect(errs[0]).Should(ContainSubstring("valid email address"))
		})
	})

	Describe("number", func() {
		It("accepts decimals", func() {
			Expect(validate(field("number", false), "3.14")).Should(BeEmpty())
		})

		It("rejects non-numeric input", func() {
			errs := validate(field("number", false), "three")
			Expect(errs).Should(HaveLen(1))
			Expect(errs[0]).Should(ContainSubstring("must be a number"))
		})

		It("converts to float64", func() {
			Expect(convert(field("number", false), "42")).Should(Equal([]interface{}{42.0}))
		})
	})

	Describe("date", func() {
		It("accepts several layouts", func() {
			Expect(validate(field("date", false), "2026-08-31")).Should(BeEmpty())
			Expect(validate(field("date", false), "31/08/2026")).Should(BeEmpty())
		})

		It("rejects an unparseable date", func() {
			errs := validate(field("date", false), "yesterday")
			Expect(errs).Should(HaveLen(1))
			Expect(errs[0]).Should(ContainSubstring("valid date"))
		})

		It("normalizes stored values to RFC 3339", func() {
			Expect(convert(field("date", false), "2026-08-31")).
				Should(Equal([]interface{}{"2026-08-31T00:00:00Z"}))
		})
	})

	Describe("checkbox", func() {
		It("requires a truthy value when required", func() {
			Expect(validate(field("checkbox", true), "on")).Should(BeEmpty())
			Expect(validate(field("checkbox", true), "false")).Should(Equal([]string{""}))
			Expect(validate(field("checkbox", true))).Should(Equal([]string{""}))
		})

		It("converts to a boolean", func() {
			Expect(convert(field("checkbox", false), "yes")).Should(Equal([]interface{}{true}))
			Expect(convert(field("checkbox", false), "0")).Should(Equal([]interface{}{false}))
			Expect(convert(field("checkbox", false))).Should(BeEmpty())
		})
	})

	Describe("option kinds", func() {
		options := func(kind string) *forms.Field {
			f := field(kind, false)
			f.PreValues = []string{"red", "green", "blue"}
			return f
		}

		It("accepts a listed option", func() {
			Expect(validate(options("dropdown"), "red")).Should(BeEmpty())
			Expect(validate(options("radio"), "green")).Should(BeEmpty())
		})

		It("rejects an unlisted option", func() {
			errs := validate(options("dropdown"), "magenta")
			Expect(errs).Should(HaveLen(1))
			Expect(errs[0]).Should(ContainSubstring("magenta"))
		})

		It("splits checkboxList selections on commas", func() {
			Expect(validate(options("checkboxList"), "red, blue")).Should(BeEmpty())
			Expect(convert(options("checkboxList"), "red, blue")).
				Should(Equal([]interface{}{"red", "blue"}))
		})

		It("keeps only the first selection for single-choice kinds", func() {
			Expect(convert(options("dropdown"), "red", "green")).
				Should(Equal([]interface{}{"red"}))
		})

		It("flags a required field with nothing selected", func() {
			f := options("radio")
			f.Required = true
			Expect(validate(f)).Should(Equal([]string{""}))
		})
	})
})
