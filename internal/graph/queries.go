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
	"github.com/google/uuid"
)

// idArgument reads a string "id" argument and parses it as a UUID. The second
// return value reports whether the argument parsed; an unknown or malformed id
// resolves to null rather than a field error.
func idArgument(info graphql.ResolveInfo) (uuid.UUID, bool) {
	s, ok := info.ArgumentValues().Get("id").(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

var idArg = graphql.ArgumentConfigMap{
	"id": {
		Type:        graphql.NonNullOfType(graphql.ID()),
		Description: "Unique identifier of the entity to look up.",
	},
}

func (s *Schema) formsQueryType() graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name:        "FormsQuery",
		Description: "Access to form definitions.",
		Fields: graphql.Fields{
			"all": {
				Type: graphql.ListOfType(formType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return s.forms.All(), nil
				}),
			},
			"byId": {
				Type: graphql.T(formType),
				Args: idArg,
				Resolver: graphql.FieldResolverFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
						id, ok := idArgument(info)
						if !ok {
							return nil, nil
						}
						form := s.forms.Get(id)
						if form == nil {
							return nil, nil
						}
						return form, nil
					}),
			},
			"byName": {
				Type: graphql.T(formType),
				Args: graphql.ArgumentConfigMap{
					"name": {
						Type:        graphql.NonNullOfType(graphql.String()),
						Description: "Name of the form to look up.",
					},
				},
				Resolver: graphql.FieldResolverFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
						name, ok := info.ArgumentValues().Get("name").(string)
						if !ok {
							return nil, nil
						}
						form := s.forms.GetByName(name)
						if form == nil {
							return nil, nil
						}
						return form, nil
					}),
			},
		},
	})
}

func (s *Schema) dataSourcesQueryType() graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name:        "DataSourcesQuery",
		Description: "Access to form data source definitions.",
		Fields: graphql.Fields{
			"all": {
				Type: graphql.ListOfType(formDataSourceType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return s.dataSources.All(), nil
				}),
			},
			"byId": {
				Type: graphql.T(formDataSourceType),
				Args: idArg,
				Resolver: graphql.FieldResolverFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
						id, ok := idArgument(info)
						if !ok {
							return nil, nil
						}
						ds := s.dataSources.Get(id)
						if ds == nil {
							return nil, nil
						}
						return ds, nil
					}),
			},
		},
	})
}

func (s *Schema) workflowsQueryType() graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name:        "WorkflowsQuery",
		Description: "Access to workflow definitions.",
		Fields: graphql.Fields{
			"all": {
				Type: graphql.ListOfType(workflowType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return s.workflows.All(), nil
				}),
			},
			"byId": {
				Type: graphql.T(workflowType),
				Args: idArg,
				Resolver: graphql.FieldResolverFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
						id, ok := idArgument(info)
						if !ok {
							return nil, nil
						}
						wf := s.workflows.Get(id)
						if wf == nil {
							return nil, nil
						}
						return wf, nil
					}),
			},
		},
	})
}

func (s *Schema) preValueSourcesQueryType() graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name:        "PreValueSourcesQuery",
		Description: "Access to field pre-value source definitions.",
		Fields: graphql.Fields{
			"all": {
				Type: graphql.ListOfType(fieldPreValueSourceType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return s.preValues.All(), nil
				}),
			},
			"byId": {
				Type: graphql.T(fieldPreValueSourceType),
				Args: idArg,
				Resolver: graphql.FieldResolverFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
						id, ok := idArgument(info)
						if !ok {
							return nil, nil
						}
						pvs := s.preValues.Get(id)
						if pvs == nil {
							return nil, nil
						}
						return pvs, nil
					}),
			},
		},
	})
}

// namespace is the source value for the umbracoForms namespace fields. Its
// children resolve from the schema's stores, so the value itself only needs
// to be non-null.
type namespace struct{}

func (s *Schema) queryType() graphql.Object {
	umbracoFormsType := graphql.MustNewObject(&graphql.ObjectConfig{
		Name:        "UmbracoFormsQuery",
		Description: "Root namespace for the forms graph.",
		Fields: graphql.Fields{
			"forms": {
				Type: graphql.T(s.formsQueryType()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return namespace{}, nil
				}),
			},
			"dataSources": {
				Type: graphql.T(s.dataSourcesQueryType()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return namespace{}, nil
				}),
			},
			"workflows": {
				Type: graphql.T(s.workflowsQueryType()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return namespace{}, nil
				}),
			},
			"preValueSources": {
				Type: graphql.T(s.preValueSourcesQueryType()),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return namespace{}, nil
				}),
			},
		},
	})

	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"umbracoForms": {
				Type: graphql.T(umbracoFormsType),
				Resolver: resolve(func(ctx context.Context, source interface{}) (interface{}, error) {
					return namespace{}, nil
				}),
			},
		},
	})
}
