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

// Package prevalues is the read-only catalog of prevalue-source definitions
// (providers of selectable options for option-backed fields) exposed through
// the graph.
package prevalues

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// FieldPreValueSource provides the selectable options of option-backed
// fields from an external definition.
type FieldPreValueSource struct {
	ID       uuid.UUID
	Name     string
	TypeName string
	Values   []string
}

// Service indexes prevalue-source definitions by id.
type Service struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*FieldPreValueSource
}

// NewService creates an empty prevalue-source catalog.
func NewService() *Service {
	return &Service{byID: map[uuid.UUID]*FieldPreValueSource{}}
}

// Add registers a prevalue-source definition.
func (s *Service) Add(src *FieldPreValueSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[src.ID] = src
}

// Get returns the prevalue source with the given id, or nil.
func (s *Service) Get(id uuid.UUID) *FieldPreValueSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// All returns every prevalue source ordered by name.
func (s *Service) All() []*FieldPreValueSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*FieldPreValueSource, 0, len(s.byID))
	for _, src := range s.byID {
		all = append(all, src)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
