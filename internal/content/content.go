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

// Package content provides published-page lookup and the request-routing
// context used while submitting a form. Pages are addressable three ways: by
// UUID key, by integer id, or by a "umb://document/<guid>" descriptor.
package content

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DocumentUDIPrefix is the scheme+type prefix of a document descriptor.
const DocumentUDIPrefix = "umb://document/"

// Page is a published content node a submission can be associated with.
type Page struct {
	ID   int
	Key  uuid.UUID
	Name string

	// URL is the page's public route. Empty means the page is not routable.
	URL string
}

// Store indexes published pages by key and by integer id.
type Store struct {
	mu    sync.RWMutex
	byKey map[uuid.UUID]*Page
	byID  map[int]*Page
}

// NewStore creates an empty content store.
func NewStore() *Store {
	return &Store{
		byKey: map[uuid.UUID]*Page{},
		byID:  map[int]*Page{},
	}
}

// Add registers a page.
func (s *Store) Add(page *Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey[page.Key] = page
	s.byID[page.ID] = page
}

// ByKey returns the page with the given UUID key, or nil.
func (s *Store) ByKey(key uuid.UUID) *Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byKey[key]
}

// ByID returns the page with the given integer id, or nil.
func (s *Store) ByID(id int) *Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// Resolve looks a page up from a raw reference. The reference is tried, in
// order, as a UUID, an integer id, and a document descriptor; the first form
// that parses and resolves to an existing page wins. This order is fixed:
// a value satisfying several forms resolves by first match, not best match.
func (s *Store) Resolve(ref string) *Page {
	if key, err := uuid.Parse(ref); err == nil {
		if page := s.ByKey(key); page != nil {
			return page
		}
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if page := s.ByID(id); page != nil {
			return page
		}
	}
	if key, ok := ParseDocumentUDI(ref); ok {
		if page := s.ByKey(key); page != nil {
			return page
		}
	}
	return nil
}

// ParseDocumentUDI parses a "umb://document/<guid>" descriptor. The guid
// part may be dashed or the compact 32-hex-digit form.
func ParseDocumentUDI(ref string) (uuid.UUID, bool) {
	if !strings.HasPrefix(ref, DocumentUDIPrefix) {
		return uuid.Nil, false
	}
	key, err := uuid.Parse(strings.TrimPrefix(ref, DocumentUDIPrefix))
	if err != nil {
		return uuid.Nil, false
	}
	return key, true
}
