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

// Package members resolves authenticated identities to member accounts so a
// submission can be attributed to the member that made it.
package members

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Member is a registered site member.
type Member struct {
	Key      uuid.UUID
	Username string
	Name     string
	Email    string
}

// Manager looks members up by username.
type Manager struct {
	mu         sync.RWMutex
	byUsername map[string]*Member
}

// NewManager creates an empty member manager.
func NewManager() *Manager {
	return &Manager{byUsername: map[string]*Member{}}
}

// Add registers a member, assigning a key if it has none.
func (m *Manager) Add(member *Member) {
	if member.Key == uuid.Nil {
		member.Key = uuid.New()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUsername[member.Username] = member
}

// GetByUsername resolves a username to a member. A blank username or a miss
// resolves to nil without error; submissions stay anonymous in that case.
func (m *Manager) GetByUsername(ctx context.Context, username string) (*Member, error) {
	if strings.TrimSpace(username) == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byUsername[username], nil
}
