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

// Package workflows is the read-only catalog of post-submission workflow
// definitions exposed through the graph. Executing workflows is out of
// scope; the graph only looks them up.
package workflows

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Workflow is a post-submission action definition attached to a form.
type Workflow struct {
	ID        uuid.UUID
	Name      string
	TypeName  string
	Active    bool
	SortOrder int
	FormID    uuid.UUID
}

// Service indexes workflow definitions by id.
type Service struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Workflow
}

// NewService creates an empty workflow catalog.
func NewService() *Service {
	return &Service{byID: map[uuid.UUID]*Workflow{}}
}

// Add registers a workflow definition.
func (s *Service) Add(w *Workflow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[w.ID] = w
}

// Get returns the workflow with the given id, or nil.
func (s *Service) Get(id uuid.UUID) *Workflow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// All returns every workflow ordered by sort order, then name.
func (s *Service) All() []*Workflow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*Workflow, 0, len(s.byID))
	for _, w := range s.byID {
		all = append(all, w)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].SortOrder != all[j].SortOrder {
			return all[i].SortOrder < all[j].SortOrder
		}
		return all[i].Name < all[j].Name
	})
	return all
}
