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

package graph

import (
	"context"

	"github.com/botobag/artemis/graphql"

	"github.com/formsgraph/formsgraph/internal/submission"
)

var fieldValueInputType = graphql.MustNewInputObject(&graphql.InputObjectConfig{
	Name:        "FieldValueInput",
	Description: "A submitted value keyed by field id or alias.",
	Fields: graphql.InputFields{
		"field": {
			Type:        graphql.NonNullOfType(graphql.String()),
			Description: "Field id or alias the value is for.",
		},
		"value": {
			Type:        graphql.T(graphql.String()),
			Description: "Raw value as entered by the submitter.",
		},
	},
})

// decodeFieldValues converts the coerced "fields" argument into the
// submission-layer pairs. Entries keep their submitted order so duplicate
// fields resolve last-write-wins downstream.
func decodeFieldValues(raw interface{}) []submission.FieldValue {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	values := make([]submission.FieldValue, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		field, _ := m["field"].(string)
		value, _ := m["value"].(string)
		values = append(values, submission.FieldValue{Field: field, Value: value})
	}
	return values
}

func (s *Schema) submitMutationType() graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name:        "UmbracoFormsMutation",
		Description: "Mutations for the forms graph.",
		Fields: graphql.Fields{
			"submit": {
				Type:        graphql.T(jsonType),
				Description: "Submit field values to a form and return the outcome envelope.",
				Args: graphql.ArgumentConfigMap{
					"formId": {
						Type:        graphql.NonNullOfType(graphql.ID()),
						Description: "Id of the form being submitted.",
					},
					"umbracoPageId": {
						Type:        graphql.NonNullOfType(graphql.ID()),
						Description: "Reference to the page hosting the form.",
					},
					"fields": {
						Type:        graphql.ListOf(graphql.NonNullOfType(fieldValueInputType)),
						Description: "Submitted field values.",
					},
				},
				Resolver: graphql.FieldResolverFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
						args := info.ArgumentValues()
						formID, _ := args.Get("formId").(string)
						pageRef, _ := args.Get("umbracoPageId").(string)

						reqInfo := RequestInfoFrom(ctx)
						result := s.submitter.Submit(ctx, submission.Request{
							FormID:     formID,
							PageRef:    pageRef,
							Fields:     decodeFieldValues(args.Get("fields")),
							RemoteAddr: reqInfo.RemoteAddr,
							Username:   reqInfo.Username,
						})
						return result.Envelope(), nil
					}),
			},
		},
	})
}

func (s *Schema) mutationType() graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"umbracoForms": {
				Type: graphql.T(s.submitMutationType()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return namespace{}, nil
				}),
			},
		},
	})
}
