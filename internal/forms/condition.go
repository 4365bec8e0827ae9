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

package forms

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ActionType says whether a matched condition shows or hides its field set.
type ActionType string

// Supported condition actions.
const (
	ActionShow ActionType = "show"
	ActionHide ActionType = "hide"
)

// LogicType combines the outcomes of a condition's rules.
type LogicType string

// Supported rule combinators.
const (
	LogicAll LogicType = "all"
	LogicAny LogicType = "any"
)

// Operator compares a field's current value against a rule's operand.
type Operator string

// Supported rule operators. Comparisons are string comparisons unless both
// operands parse as numbers, in which case they compare numerically.
const (
	OperatorIs          Operator = "is"
	OperatorIsNot       Operator = "isNot"
	OperatorGreaterThen Operator = "greaterThen"
	OperatorLessThen    Operator = "lessThen"
	OperatorContains    Operator = "contains"
	OperatorStartsWith  Operator = "startsWith"
	OperatorEndsWith    Operator = "endsWith"
)

// ConditionRule is a single predicate over the current value of one field.
type ConditionRule struct {
	Field    uuid.UUID
	Operator Operator
	Value    string
}

// Condition is a declarative visibility predicate for a FieldSet, evaluated
// against the full current value mapping of the form.
type Condition struct {
	Enabled    bool
	ActionType ActionType
	LogicType  LogicType
	Rules      []ConditionRule
}

// IsVisible reports whether the owning field set is shown given the current
// field values. A nil or disabled condition is always visible. A condition
// without rules never matches, which leaves a "show" action hidden and a
// "hide" action visible.
func (c *Condition) IsVisible(values map[uuid.UUID]string) bool {
	if c == nil || !c.Enabled {
		return true
	}

	matched := c.matches(values)
	if c.ActionType == ActionHide {
		return !matched
	}
	return matched
}

func (c *Condition) matches(values map[uuid.UUID]string) bool {
	if len(c.Rules) == 0 {
		return false
	}

	for _, rule := range c.Rules {
		ok := rule.Matches(values[rule.Field])
		if c.LogicType == LogicAny {
			if ok {
				return true
			}
		} else if !ok {
			return false
		}
	}
	return c.LogicType != LogicAny
}

// Matches evaluates the rule against one field value.
func (r ConditionRule) Matches(value string) bool {
	switch r.Operator {
	case OperatorIs:
		return value == r.Value
	case OperatorIsNot:
		return value != r.Value
	case OperatorGreaterThen:
		return compareValues(value, r.Value) > 0
	case OperatorLessThen:
		return compareValues(value, r.Value) < 0
	case OperatorContains:
		return strings.Contains(value, r.Value)
	case OperatorStartsWith:
		return strings.HasPrefix(value, r.Value)
	case OperatorEndsWith:
		return strings.HasSuffix(value, r.Value)
	}
	return false
}

// compareValues orders two values numerically when both parse as floats and
// lexically otherwise.
func compareValues(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
