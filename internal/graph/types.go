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
	"sort"

	"github.com/botobag/artemis/graphql"

	"github.com/formsgraph/formsgraph/internal/datasources"
	"github.com/formsgraph/formsgraph/internal/forms"
	"github.com/formsgraph/formsgraph/internal/prevalues"
	"github.com/formsgraph/formsgraph/internal/workflows"
)

// resolve adapts a plain resolver body to graphql.FieldResolverFunc.
func resolve(fn func(ctx context.Context, source interface{}) (interface{}, error)) graphql.FieldResolver {
	return graphql.FieldResolverFunc(
		func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
			return fn(ctx, source)
		})
}

// keyValuePair is the source value of StringKeyValuePair fields.
type keyValuePair struct {
	Key   string
	Value string
}

func sortedPairs(m map[string]string) []keyValuePair {
	pairs := make([]keyValuePair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, keyValuePair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// Graph types of the forms domain. The type tree mirrors the definition
// model: Form → Page → FieldSet → FieldsetContainer → Field, with
// FieldCondition/FieldConditionRule hanging off the field set.
var (
	stringKeyValuePairType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "StringKeyValuePair",
		Fields: graphql.Fields{
			"key": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(keyValuePair).Key, nil
				}),
			},
			"value": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(keyValuePair).Value, nil
				}),
			},
		},
	})

	fieldConditionRuleType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FieldConditionRule",
		Fields: graphql.Fields{
			"field": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(forms.ConditionRule).Field.String(), nil
				}),
			},
			"operator": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return string(source.(forms.ConditionRule).Operator), nil
				}),
			},
			"value": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(forms.ConditionRule).Value, nil
				}),
			},
		},
	})

	fieldConditionType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FieldCondition",
		Fields: graphql.Fields{
			"enabled": {
				Type: graphql.T(graphql.Boolean()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Condition).Enabled, nil
				}),
			},
			"actionType": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return string(source.(*forms.Condition).ActionType), nil
				}),
			},
			"logicType": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return string(source.(*forms.Condition).LogicType), nil
				}),
			},
			"rules": {
				Type: graphql.ListOfType(fieldConditionRuleType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Condition).Rules, nil
				}),
			},
		},
	})

	fieldGraphType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Field",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Field).ID.String(), nil
				}),
			},
			"alias": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Field).Alias, nil
				}),
			},
			"caption": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Field).Caption, nil
				}),
			},
			"fieldType": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Field).Type, nil
				}),
			},
			"required": {
				Type: graphql.T(graphql.Boolean()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Field).Required, nil
				}),
			},
			"preValues": {
				Type: graphql.ListOf(graphql.T(graphql.String())),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Field).PreValues, nil
				}),
			},
			"settings": {
				Type: graphql.ListOfType(stringKeyValuePairType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return sortedPairs(source.(*forms.Field).Settings), nil
				}),
			},
			"values": {
				Type: graphql.ListOf(graphql.T(graphql.String())),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Field).Values, nil
				}),
			},
		},
	})

	fieldsetContainerType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FieldsetContainer",
		Fields: graphql.Fields{
			"caption": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Container).Caption, nil
				}),
			},
			"width": {
				Type: graphql.T(graphql.Int()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Container).Width, nil
				}),
			},
			"fields": {
				Type: graphql.ListOfType(fieldGraphType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Container).Fields, nil
				}),
			},
		},
	})

	fieldSetType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FieldSet",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.FieldSet).ID.String(), nil
				}),
			},
			"caption": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.FieldSet).Caption, nil
				}),
			},
			"condition": {
				Type: graphql.T(fieldConditionType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					condition := source.(*forms.FieldSet).Condition
					if condition == nil {
						return nil, nil
					}
					return condition, nil
				}),
			},
			"containers": {
				Type: graphql.ListOfType(fieldsetContainerType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.FieldSet).Containers, nil
				}),
			},
		},
	})

	pageType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Page",
		Fields: graphql.Fields{
			"caption": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Page).Caption, nil
				}),
			},
			"fieldSets": {
				Type: graphql.ListOfType(fieldSetType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Page).FieldSets, nil
				}),
			},
		},
	})

	formType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Form",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Form).ID.String(), nil
				}),
			},
			"name": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Form).Name, nil
				}),
			},
			"pages": {
				Type: graphql.ListOfType(pageType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Form).Pages, nil
				}),
			},
			"allFields": {
				Type: graphql.ListOfType(fieldGraphType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*forms.Form).AllFields(), nil
				}),
			},
		},
	})

	workflowType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Workflow",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*workflows.Workflow).ID.String(), nil
				}),
			},
			"name": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*workflows.Workflow).Name, nil
				}),
			},
			"typeName": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*workflows.Workflow).TypeName, nil
				}),
			},
			"active": {
				Type: graphql.T(graphql.Boolean()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*workflows.Workflow).Active, nil
				}),
			},
			"sortOrder": {
				Type: graphql.T(graphql.Int()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*workflows.Workflow).SortOrder, nil
				}),
			},
			"form": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*workflows.Workflow).FormID.String(), nil
				}),
			},
		},
	})

	formDataSourceMappingType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FormDataSourceMapping",
		Fields: graphql.Fields{
			"alias": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(datasources.Mapping).Alias, nil
				}),
			},
			"dataSourceField": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(datasources.Mapping).DataSourceField, nil
				}),
			},
			"defaultValue": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(datasources.Mapping).DefaultValue, nil
				}),
			},
		},
	})

	formDataSourceInfoType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FormDataSourceInfo",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(datasources.Info).ID.String(), nil
				}),
			},
			"name": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(datasources.Info).Name, nil
				}),
			},
		},
	})

	formDataSourceType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FormDataSource",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*datasources.FormDataSource).ID.String(), nil
				}),
			},
			"name": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*datasources.FormDataSource).Name, nil
				}),
			},
			"typeName": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*datasources.FormDataSource).TypeName, nil
				}),
			},
			"type": {
				Type: graphql.T(formDataSourceInfoType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*datasources.FormDataSource).Type, nil
				}),
			},
			"mappings": {
				Type: graphql.ListOfType(formDataSourceMappingType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*datasources.FormDataSource).Mappings, nil
				}),
			},
		},
	})

	fieldPreValueSourceType = graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "FieldPreValueSource",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.T(graphql.ID()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*prevalues.FieldPreValueSource).ID.String(), nil
				}),
			},
			"name": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*prevalues.FieldPreValueSource).Name, nil
				}),
			},
			"typeName": {
				Type: graphql.T(graphql.String()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*prevalues.FieldPreValueSource).TypeName, nil
				}),
			},
			"values": {
				Type: graphql.ListOf(graphql.T(graphql.String())),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return source.(*prevalues.FieldPreValueSource).Values, nil
				}),
			},
		},
	})
)
