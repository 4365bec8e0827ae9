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

package records_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/formsgraph/formsgraph/internal/forms"
	"github.com/formsgraph/formsgraph/internal/records"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		ctx   context.Context
		store *records.Store
		form  *forms.Form
	)

	nameField := &forms.Field{
		ID:    uuid.MustParse("54f14a27-84f5-4a2c-b7ce-1bc3b4c29ae7"),
		Alias: "name",
		Type:  "text",
	}
	agreed := &forms.Field{
		ID:    uuid.MustParse("9a8d6a19-a1c5-4f09-8cf9-5df4ac15f572"),
		Alias: "agreed",
		Type:  "checkbox",
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		store, err = records.Open(ctx, ":memory:")
		Expect(err).ShouldNot(HaveOccurred())

		form = &forms.Form{ID: uuid.New(), Name: "Consent"}
	})

	AfterEach(func() {
		Expect(store.Close()).Should(Succeed())
	})

	It("round-trips a record with its fields", func() {
		record := records.New(form.ID)
		record.PageID = 1055
		record.IP = "203.0.113.7"
		record.MemberKey = uuid.New().String()
		record.SetFieldValues(nameField, []interface{}{"Ada"})
		record.SetFieldValues(agreed, []interface{}{true})

		Expect(store.Submit(ctx, record, form)).Should(Succeed())

		loaded, err := store.Get(ctx, record.ID)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(loaded).ShouldNot(BeNil())
		Expect(loaded.Form).Should(Equal(form.ID))
		Expect(loaded.State).Should(Equal(records.StateSubmitted))
		Expect(loaded.PageID).Should(Equal(1055))
		Expect(loaded.IP).Should(Equal("203.0.113.7"))
		Expect(loaded.MemberKey).Should(Equal(record.MemberKey))
		Expect(loaded.CreatedAt.Unix()).Should(Equal(record.CreatedAt.Unix()))

		Expect(loaded.Fields).Should(HaveLen(2))
		Expect(loaded.Fields[nameField.ID].Alias).Should(Equal("name"))
		Expect(loaded.Fields[nameField.ID].Values).Should(Equal([]interface{}{"Ada"}))
		Expect(loaded.Fields[agreed.ID].Values).Should(Equal([]interface{}{true}))
	})

	It("stores empty value lists for cleared fields", func() {
		record := records.New(form.ID)
		record.SetFieldValues(nameField, nil)
		Expect(store.Submit(ctx, record, form)).Should(Succeed())

		loaded, err := store.Get(ctx, record.ID)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(loaded.Fields[nameField.ID].Values).Should(BeEmpty())
	})

	It("returns nil for an unknown record", func() {
		loaded, err := store.Get(ctx, uuid.New())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(loaded).Should(BeNil())
	})

	It("rejects a duplicate record id", func() {
		record := records.New(form.ID)
		Expect(store.Submit(ctx, record, form)).Should(Succeed())
		Expect(store.Submit(ctx, record, form)).ShouldNot(Succeed())
	})

	It("counts records per form", func() {
		other := uuid.New()
		Expect(store.Submit(ctx, records.New(form.ID), form)).Should(Succeed())
		Expect(store.Submit(ctx, records.New(form.ID), form)).Should(Succeed())
		Expect(store.Submit(ctx, records.New(other), form)).Should(Succeed())

		count, err := store.CountForForm(ctx, form.ID)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(count).Should(Equal(2))
	})
})
