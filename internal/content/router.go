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

package content

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
)

// RouterContext is a request-routing context scoped to one page URL. It must
// be released on every exit path of the operation that acquired it; Release
// is idempotent.
type RouterContext struct {
	url      string
	released atomic.Bool
	factory  *RouterContextFactory
}

// URL bound to this context.
func (c *RouterContext) URL() string { return c.url }

// Release returns the context to its factory. Releasing twice is a no-op.
func (c *RouterContext) Release() {
	if c.released.CompareAndSwap(false, true) {
		c.factory.release(c)
	}
}

// RouterContextFactory hands out routing contexts. The active count lets
// tests and diagnostics verify that every acquired context is released.
type RouterContextFactory struct {
	log    *zap.Logger
	active atomic.Int64
}

// NewRouterContextFactory creates a factory logging through log.
func NewRouterContextFactory(log *zap.Logger) *RouterContextFactory {
	if log == nil {
		log = zap.NewNop()
	}
	return &RouterContextFactory{log: log}
}

// Ensure acquires a routing context for url. An empty url is a contract
// violation of the caller (the page gate runs first).
func (f *RouterContextFactory) Ensure(ctx context.Context, url string) (*RouterContext, error) {
	if url == "" {
		return nil, errors.New("content: routing context requires a URL")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.active.Add(1)
	f.log.Debug("routing context acquired", zap.String("url", url))
	return &RouterContext{url: url, factory: f}, nil
}

// Active reports how many contexts are currently held.
func (f *RouterContextFactory) Active() int64 {
	return f.active.Load()
}

func (f *RouterContextFactory) release(c *RouterContext) {
	f.active.Add(-1)
	f.log.Debug("routing context released", zap.String("url", c.url))
}
