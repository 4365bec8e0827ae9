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

package server_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/formsgraph/formsgraph/internal/server"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Router", func() {
	var router http.Handler

	BeforeEach(func() {
		router = server.NewRouter(nil, newTestSchema(), "test-secret")
	})

	It("answers the health probe", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		Expect(w.Code).Should(Equal(http.StatusOK))
	})

	It("executes a query POSTed as JSON", func() {
		body := `{"query": "{ umbracoForms { forms { all { name } } } }"}`
		r := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).Should(HavePrefix("application/json"))
		Expect(w.Body.String()).Should(MatchJSON(
			`{"data": {"umbracoForms": {"forms": {"all": [{"name": "Newsletter"}]}}}}`))
	})

	It("executes a query passed as a URL parameter", func() {
		query := url.QueryEscape(`{ umbracoForms { forms { byName(name: "Newsletter") { id } } } }`)
		r := httptest.NewRequest(http.MethodGet, "/graphql?query="+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Body.String()).Should(MatchJSON(
			`{"data": {"umbracoForms": {"forms": {"byName": {"id": "9cbe5fd6-4494-4b06-b631-1f0e15b25fd7"}}}}}`))
	})

	It("rejects a body that is not JSON", func() {
		r := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		Expect(w.Code).Should(Equal(http.StatusBadRequest))
	})

	It("rejects a request without a query", func() {
		r := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		Expect(w.Code).Should(Equal(http.StatusBadRequest))
	})

	It("rejects unsupported methods", func() {
		r := httptest.NewRequest(http.MethodPut, "/graphql", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		Expect(w.Code).Should(Equal(http.StatusMethodNotAllowed))
	})

	It("reports syntax errors in the query", func() {
		body := `{"query": "{ umbracoForms {"}`
		r := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		Expect(w.Code).Should(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).Should(ContainSubstring("errors"))
	})
})
