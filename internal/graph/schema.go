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

// Package graph defines the GraphQL surface of the forms service: the type
// tree for form definitions and catalogs, the umbracoForms query namespace,
// and the submit mutation.
package graph

import (
	"errors"

	"github.com/botobag/artemis/graphql"

	"github.com/formsgraph/formsgraph/internal/datasources"
	"github.com/formsgraph/formsgraph/internal/forms"
	"github.com/formsgraph/formsgraph/internal/prevalues"
	"github.com/formsgraph/formsgraph/internal/submission"
	"github.com/formsgraph/formsgraph/internal/workflows"
)

// Config carries the stores and services the graph resolves against.
type Config struct {
	Forms       *forms.Store
	DataSources *datasources.Service
	Workflows   *workflows.Service
	PreValues   *prevalues.Service
	Submitter   *submission.Submitter
}

// Schema is the built GraphQL schema plus the collaborators its resolvers
// close over.
type Schema struct {
	schema *graphql.Schema

	forms       *forms.Store
	dataSources *datasources.Service
	workflows   *workflows.Service
	preValues   *prevalues.Service
	submitter   *submission.Submitter
}

// NewSchema builds the schema. All collaborators are required; resolvers
// assume they are non-nil.
func NewSchema(cfg Config) (*Schema, error) {
	switch {
	case cfg.Forms == nil:
		return nil, errors.New("graph: Forms store is required")
	case cfg.DataSources == nil:
		return nil, errors.New("graph: DataSources service is required")
	case cfg.Workflows == nil:
		return nil, errors.New("graph: Workflows service is required")
	case cfg.PreValues == nil:
		return nil, errors.New("graph: PreValues service is required")
	case cfg.Submitter == nil:
		return nil, errors.New("graph: Submitter is required")
	}

	s := &Schema{
		forms:       cfg.Forms,
		dataSources: cfg.DataSources,
		workflows:   cfg.Workflows,
		preValues:   cfg.PreValues,
		submitter:   cfg.Submitter,
	}

	schema, err := graphql.NewSchema(&graphql.SchemaConfig{
		Query:    s.queryType(),
		Mutation: s.mutationType(),
	})
	if err != nil {
		return nil, err
	}
	s.schema = schema
	return s, nil
}

// Schema returns the underlying GraphQL schema for execution.
func (s *Schema) Schema() *graphql.Schema {
	return s.schema
}
