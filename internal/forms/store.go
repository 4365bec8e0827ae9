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

package forms

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store holds form definitions indexed by id and by name. Definitions are
// read-only once added; concurrent readers need no coordination beyond the
// store's own lock.
type Store struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Form
	byName map[string]*Form
}

// NewStore creates an empty form store.
func NewStore() *Store {
	return &Store{
		byID:   map[uuid.UUID]*Form{},
		byName: map[string]*Form{},
	}
}

// LoadDir reads every *.yaml/*.yml document under dir as a form definition
// and adds it to the store.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("forms: read definitions directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("forms: read %s: %w", path, err)
		}

		form, err := ParseForm(data)
		if err != nil {
			return fmt.Errorf("forms: parse %s: %w", path, err)
		}
		if err := s.Add(form); err != nil {
			return fmt.Errorf("forms: %s: %w", path, err)
		}
	}
	return nil
}

// Add validates a form definition and indexes it. A form must have an id, a
// name, and field ids/aliases unique within the form.
func (s *Store) Add(form *Form) error {
	if form.ID == uuid.Nil {
		return fmt.Errorf("form %q has no id", form.Name)
	}
	if strings.TrimSpace(form.Name) == "" {
		return fmt.Errorf("form %s has no name", form.ID)
	}

	seenIDs := map[uuid.UUID]struct{}{}
	seenAliases := map[string]struct{}{}
	for _, field := range form.AllFields() {
		if field.ID == uuid.Nil {
			return fmt.Errorf("form %q: field %q has no id", form.Name, field.Alias)
		}
		if strings.TrimSpace(field.Alias) == "" {
			return fmt.Errorf("form %q: field %s has no alias", form.Name, field.ID)
		}
		if _, ok := seenIDs[field.ID]; ok {
			return fmt.Errorf("form %q: duplicate field id %s", form.Name, field.ID)
		}
		if _, ok := seenAliases[field.Alias]; ok {
			return fmt.Errorf("form %q: duplicate field alias %q", form.Name, field.Alias)
		}
		seenIDs[field.ID] = struct{}{}
		seenAliases[field.Alias] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[form.ID]; ok {
		return fmt.Errorf("duplicate form id %s", form.ID)
	}
	if _, ok := s.byName[form.Name]; ok {
		return fmt.Errorf("duplicate form name %q", form.Name)
	}
	s.byID[form.ID] = form
	s.byName[form.Name] = form
	return nil
}

// Get returns the form with the given id, or nil.
func (s *Store) Get(id uuid.UUID) *Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// GetByName returns the form with the given name, or nil.
func (s *Store) GetByName(name string) *Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byName[name]
}

// All returns every form, ordered by name.
func (s *Store) All() []*Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*Form, 0, len(s.byID))
	for _, form := range s.byID {
		all = append(all, form)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
