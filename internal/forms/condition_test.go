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
	"github.com/google/uuid"

	"github.com/formsgraph/formsgraph/internal/forms"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Condition", func() {
	fieldID := uuid.MustParse("34b2e281-44dd-41a9-b569-80aa1ae2ff74")
	otherID := uuid.MustParse("dd4779ba-c9e0-44a9-89b7-8a3b6353e847")

	values := func(v string) map[uuid.UUID]string {
		return map[uuid.UUID]string{fieldID: v}
	}

	Describe("IsVisible", func() {
		It("is visible when the condition is nil", func() {
			var condition *forms.Condition
			Expect(condition.IsVisible(nil)).Should(BeTrue())
		})

		It("is visible when the condition is disabled", func() {
			condition := &forms.Condition{
				Enabled:    false,
				ActionType: forms.ActionShow,
				Rules: []forms.ConditionRule{
					{Field: fieldID, Operator: forms.OperatorIs, Value: "never"},
				},
			}
			Expect(condition.IsVisible(values("something else"))).Should(BeTrue())
		})

		It("shows the field set when a show condition matches", func() {
			condition := &forms.Condition{
				Enabled:    true,
				ActionType: forms.ActionShow,
				LogicType:  forms.LogicAll,
				Rules: []forms.ConditionRule{
					{Field: fieldID, Operator: forms.OperatorIs, Value: "yes"},
				},
			}
			Expect(condition.IsVisible(values("yes"))).Should(BeTrue())
			Expect(condition.IsVisible(values("no"))).Should(BeFalse())
		})

		It("hides the field set when a hide condition matches", func() {
			condition := &forms.Condition{
				Enabled:    true,
				ActionType: forms.ActionHide,
				LogicType:  forms.LogicAll,
				Rules: []forms.ConditionRule{
					{Field: fieldID, Operator: forms.OperatorIs, Value: "yes"},
				},
			}
			Expect(condition.IsVisible(values("yes"))).Should(BeFalse())
			Expect(condition.IsVisible(values("no"))).Should(BeTrue())
		})

		It("never matches with an empty rule list", func() {
			show := &forms.Condition{Enabled: true, ActionType: forms.ActionShow}
			hide := &forms.Condition{Enabled: true, ActionType: forms.ActionHide}
			Expect(show.IsVisible(values("anything"))).Should(BeFalse())
			Expect(hide.IsVisible(values("anything"))).Should(BeTrue())
		})

		It("requires every rule to match with \"all\" logic", func() {
			condition := &forms.Condition{
				Enabled:    true,
				ActionType: forms.ActionShow,
				LogicType:  forms.LogicAll,
				Rules: []forms.ConditionRule{
					{Field: fieldID, Operator: forms.OperatorIs, Value: "yes"},
					{Field: otherID, Operator: forms.OperatorIs, Value: "also"},
				},
			}
			Expect(condition.IsVisible(map[uuid.UUID]string{
				fieldID: "yes",
				otherID: "also",
			})).Should(BeTrue())
			Expect(condition.IsVisible(map[uuid.UUID]string{
				fieldID: "yes",
				otherID: "nope",
			})).Should(BeFalse())
		})

		It("requires one rule to match with \"any\" logic", func() {
			condition := &forms.Condition{
				Enabled:    true,
				ActionType: forms.ActionShow,
				LogicType:  forms.LogicAny,
				Rules: []forms.ConditionRule{
					{Field: fieldID, Operator: forms.OperatorIs, Value: "yes"},
					{Field: otherID, Operator: forms.OperatorIs, Value: "also"},
				},
			}
			Expect(condition.IsVisible(map[uuid.UUID]string{
				fieldID: "no",
				otherID: "also",
			})).Should(BeTrue())
			Expect(condition.IsVisible(map[uuid.UUID]string{
				fieldID: "no",
				otherID: "nope",
			})).Should(BeFalse())
		})

		It("treats a missing field value as empty", func() {
			condition := &forms.Condition{
				Enabled:    true,
				ActionType: forms.ActionShow,
				LogicType:  forms.LogicAll,
				Rules: []forms.ConditionRule{
					{Field: fieldID, Operator: forms.OperatorIs, Value: ""},
				},
			}
			Expect(condition.IsVisible(map[uuid.UUID]string{})).Should(BeTrue())
		})
	})

	Describe("ConditionRule.Matches", func() {
		rule := func(op forms.Operator, operand string) forms.ConditionRule {
			return forms.ConditionRule{Field: fieldID, Operator: op, Value: operand}
		}

		It("compares equality and inequality", func() {
			Expect(rule(forms.OperatorIs, "a").Matches("a")).Should(BeTrue())
			Expect(rule(forms.OperatorIs, "a").Matches("b")).Should(BeFalse())
			Expect(rule(forms.OperatorIsNot, "a").Matches("b")).Should(BeTrue())
			Expect(rule(forms.OperatorIsNot, "a").Matches("a")).Should(BeFalse())
		})

		It("compares numbers numerically", func() {
			Expect(rule(forms.OperatorGreaterThen, "9").Matches("10")).Should(BeTrue())
			Expect(rule(forms.OperatorLessThen, "10").Matches("9")).Should(BeTrue())
			Expect(rule(forms.OperatorGreaterThen, "10").Matches("9")).Should(BeFalse())
		})

		It("compares non-numeric values lexically", func() {
			Expect(rule(forms.OperatorGreaterThen, "apple").Matches("banana")).Should(BeTrue())
			Expect(rule(forms.OperatorLessThen, "banana").Matches("apple")).Should(BeTrue())
		})

		It("matches substrings, prefixes and suffixes", func() {
			Expect(rule(forms.OperatorContains, "ell").Matches("hello")).Should(BeTrue())
			Expect(rule(forms.OperatorStartsWith, "he").Matches("hello")).Should(BeTrue())
			Expect(rule(forms.OperatorEndsWith, "lo").Matches("hello")).Should(BeTrue())
			Expect(rule(forms.OperatorContains, "xyz").Matches("hello")).Should(BeFalse())
		})

		It("does not match an unknown operator", func() {
			Expect(rule(forms.Operator("between"), "a").Matches("a")).Should(BeFalse())
		})
	})
})
