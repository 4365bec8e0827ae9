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

// Package datasources is the read-only catalog of external value-provider
// definitions exposed through the graph. Fetching data from a source is out
// of scope; the graph only looks definitions up.
package datasources

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Mapping binds one form field alias to a field of the external source.
type Mapping struct {
	Alias           string
	DataSourceField string
	DefaultValue    string
}

// Info describes the provider kind a data source is built on.
type Info struct {
	ID   uuid.UUID
	Name string
}

// FormDataSource is an external value-provider definition.
type FormDataSource struct {
	ID       uuid.UUID
	Name     string
	TypeName string
	Type     Info
	Mappings []Mapping
}

// Service indexes data source definitions by id.
type Service struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*FormDataSource
}

// NewService creates an empty data source catalog.
func NewService() *Service {
	return &Service{byID: map[uuid.UUID]*FormDataSource{}}
}

// Add registers a data source definition.
func (s *Service) Add(ds *FormDataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[ds.ID] = ds
}

// Get returns the data source with the given id, or nil.
func (s *Service) Get(id uuid.UUID) *FormDataSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// All returns every data source ordered by name.
func (s *Service) All() []*FormDataSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*FormDataSource, 0, len(s.byID))
	for _, ds := range s.byID {
		all = append(all, ds)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
