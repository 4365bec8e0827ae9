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

// Package server exposes the forms graph over HTTP: a GraphQL endpoint plus
// the bearer-token middleware that identifies the submitting member.
package server

import (
	"io"
	"net/http"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/parser"
	"github.com/botobag/artemis/graphql/token"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/formsgraph/formsgraph/internal/graph"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// graphqlRequest is the body of a POST to the GraphQL endpoint.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler serves GraphQL operations over HTTP against one schema.
type GraphQLHandler struct {
	log    *zap.Logger
	schema *graph.Schema
}

// NewGraphQLHandler builds the handler for a schema.
func NewGraphQLHandler(log *zap.Logger, schema *graph.Schema) *GraphQLHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &GraphQLHandler{log: log, schema: schema}
}

// ServeHTTP implements http.Handler. Operations are accepted as a JSON POST
// body or, for queries, as a "query" URL parameter.
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	document, err := parser.Parse(token.NewSource(&token.SourceConfig{
		Body: token.SourceBody([]byte(req.Query)),
	}), parser.ParseOptions{})
	if err != nil {
		h.writeErrors(w, http.StatusBadRequest, graphql.ErrorsOf(err.Error()))
		return
	}

	operation, errs := executor.Prepare(executor.PrepareParams{
		Schema:               *h.schema.Schema(),
		Document:             document,
		OperationName:        req.OperationName,
		DefaultFieldResolver: executor.NewDefaultFieldResolver(),
	})
	if errs.HaveOccurred() {
		h.writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	result := <-operation.Execute(r.Context(), executor.ExecuteParams{
		VariableValues: req.Variables,
	})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := result.MarshalJSONTo(w); err != nil {
		h.log.Error("could not write execution result", zap.Error(err))
	}
}

func (h *GraphQLHandler) parseRequest(w http.ResponseWriter, r *http.Request) (graphqlRequest, bool) {
	var req graphqlRequest
	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
		req.OperationName = r.URL.Query().Get("operationName")

	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "could not read request body", http.StatusBadRequest)
			return req, false
		}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "request body is not valid JSON", http.StatusBadRequest)
			return req, false
		}

	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	if req.Query == "" {
		http.Error(w, "no GraphQL query in request", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// writeErrors responds with a GraphQL error result and the given status.
func (h *GraphQLHandler) writeErrors(w http.ResponseWriter, status int, errs graphql.Errors) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	result := executor.ExecutionResult{Errors: errs}
	if err := result.MarshalJSONTo(w); err != nil {
		h.log.Error("could not write error result", zap.Error(err))
	}
}
