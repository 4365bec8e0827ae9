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

package forms_test

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/formsgraph/formsgraph/internal/forms"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newForm(id, name string, fields ...*forms.Field) *forms.Form {
	return &forms.Form{
		ID:   uuid.MustParse(id),
		Name: name,
		Pages: []*forms.Page{{
			Caption: "Page 1",
			FieldSets: []*forms.FieldSet{{
				ID:         uuid.New(),
				Containers: []*forms.Container{{Fields: fields}},
			}},
		}},
	}
}

var _ = Describe("Store", func() {
	var store *forms.Store

	BeforeEach(func() {
		store = forms.NewStore()
	})

	Describe("Add", func() {
		It("indexes a form by id and by name", func() {
			form := newForm("7c4fc17c-6a6c-41cb-8d0d-6c17e01dbb45", "Contact",
				&forms.Field{ID: uuid.New(), Alias: "name", Type: "text"})
			Expect(store.Add(form)).Should(Succeed())

			Expect(store.Get(form.ID)).Should(Equal(form))
			Expect(store.GetByName("Contact")).Should(Equal(form))
		})

		It("rejects a form without an id", func() {
			err := store.Add(&forms.Form{Name: "Anonymous"})
			Expect(err).Should(HaveOccurred())
		})

		It("rejects a form without a name", func() {
			err := store.Add(&forms.Form{ID: uuid.New(), Name: "   "})
			Expect(err).Should(HaveOccurred())
		})

		It("rejects duplicate field ids within a form", func() {
			id := uuid.New()
			form := newForm("7c4fc17c-6a6c-41cb-8d0d-6c17e01dbb45", "Contact",
				&forms.Field{ID: id, Alias: "one", Type: "text"},
				&forms.Field{ID: id, Alias: "two", Type: "text"})
			Expect(store.Add(form)).ShouldNot(Succeed())
		})

		It("rejects duplicate field aliases within a form", func() {
			form := newForm("7c4fc17c-6a6c-41cb-8d0d-6c17e01dbb45", "Contact",
				&forms.Field{ID: uuid.New(), Alias: "same", Type: "text"},
				&forms.Field{ID: uuid.New(), Alias: "same", Type: "text"})
			Expect(store.Add(form)).ShouldNot(Succeed())
		})

		It("rejects a second form with the same id", func() {
			first := newForm("7c4fc17c-6a6c-41cb-8d0d-6c17e01dbb45", "First")
			second := newForm("7c4fc17c-6a6c-41cb-8d0d-6c17e01dbb45", "Second")
			Expect(store.Add(first)).Should(Succeed())
			Expect(store.Add(second)).ShouldNot(Succeed())
		})
	})

	Describe("All", func() {
		It("returns forms ordered by name", func() {
			Expect(store.Add(newForm("0f9ab09f-1f85-4b4f-9b5b-7ca11cbaca18", "Zulu"))).Should(Succeed())
			Expect(store.Add(newForm("2b8baa87-8beb-488f-9b2b-527a23c2d677", "Alpha"))).Should(Succeed())

			all := store.All()
			Expect(all).Should(HaveLen(2))
			Expect(all[0].Name).Should(Equal("Alpha"))
			Expect(all[1].Name).Should(Equal("Zulu"))
		})
	})

	Describe("LoadDir", func() {
		const document = `
id: 0d72b1cd-88ba-46a1-9f5e-f86c875c6af8
name: Contact Us
invalidErrorMessage: Please enter a valid value for {0}
pages:
  - caption: Main
    fieldSets:
      - id: 778980a9-6d15-4bb2-8f30-0b749b0aa72e
        caption: Your details
        condition:
          enabled: true
          actionType: show
          logicType: all
          rules:
            - field: 3fa197bb-1dbd-48d5-9cb8-eceadee6f82e
              operator: is
              value: "yes"
        containers:
          - width: 12
            fields:
              - id: 3fa197bb-1dbd-48d5-9cb8-eceadee6f82e
                alias: wantsReply
                caption: Want a reply?
                type: checkbox
              - id: 5827e9a4-9417-4c9b-8f3c-11d534be7a43
                alias: email
                caption: Email
                type: email
                required: true
                settings:
                  placeholder: you@example.com
`

		It("loads YAML documents from a directory", func() {
			dir, err := os.MkdirTemp("", "forms")
			Expect(err).ShouldNot(HaveOccurred())
			defer os.RemoveAll(dir)

			Expect(os.WriteFile(filepath.Join(dir, "contact.yaml"), []byte(document), 0o600)).
				Should(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600)).
				Should(Succeed())

			Expect(store.LoadDir(dir)).Should(Succeed())

			form := store.GetByName("Contact Us")
			Expect(form).ShouldNot(BeNil())
			Expect(form.ID).Should(Equal(uuid.MustParse("0d72b1cd-88ba-46a1-9f5e-f86c875c6af8")))
			Expect(form.AllFields()).Should(HaveLen(2))

			fieldSet := form.Pages[0].FieldSets[0]
			Expect(fieldSet.Condition).ShouldNot(BeNil())
			Expect(fieldSet.Condition.Enabled).Should(BeTrue())
			Expect(fieldSet.Condition.Rules).Should(HaveLen(1))
			Expect(fieldSet.Condition.Rules[0].Field).
				Should(Equal(uuid.MustParse("3fa197bb-1dbd-48d5-9cb8-eceadee6f82e")))

			email := form.FieldByAlias("email")
			Expect(email).ShouldNot(BeNil())
			Expect(email.Required).Should(BeTrue())
			Expect(email.Settings).Should(HaveKeyWithValue("placeholder", "you@example.com"))
		})

		It("fails on a malformed field id", func() {
			dir, err := os.MkdirTemp("", "forms")
			Expect(err).ShouldNot(HaveOccurred())
			defer os.RemoveAll(dir)

			broken := `
id: not-a-guid
name: Broken
`
			Expect(os.WriteFile(filepath.Join(dir, "broken.yml"), []byte(broken), 0o600)).
				Should(Succeed())
			Expect(store.LoadDir(dir)).ShouldNot(Succeed())
		})
	})
})

var _ = Describe("Form", func() {
	It("formats the invalid error message with the field caption", func() {
		form := &forms.Form{InvalidErrorMessage: "Value for {0} is wrong"}
		field := &forms.Field{Alias: "email", Caption: "Email address"}
		Expect(form.FormatInvalidError(field)).Should(Equal("Value for Email address is wrong"))
	})

	It("falls back to the default template", func() {
		form := &forms.Form{}
		field := &forms.Field{Caption: "Email address"}
		Expect(form.FormatInvalidError(field)).
			Should(Equal("Please provide a valid value for Email address"))
	})
})
