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

// Command formsgraphd serves form definitions and submissions over GraphQL.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/formsgraph/formsgraph/internal/config"
	"github.com/formsgraph/formsgraph/internal/content"
	"github.com/formsgraph/formsgraph/internal/datasources"
	"github.com/formsgraph/formsgraph/internal/forms"
	"github.com/formsgraph/formsgraph/internal/forms/fieldtypes"
	"github.com/formsgraph/formsgraph/internal/graph"
	"github.com/formsgraph/formsgraph/internal/members"
	"github.com/formsgraph/formsgraph/internal/prevalues"
	"github.com/formsgraph/formsgraph/internal/records"
	"github.com/formsgraph/formsgraph/internal/server"
	"github.com/formsgraph/formsgraph/internal/submission"
	"github.com/formsgraph/formsgraph/internal/workflows"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func run() error {
	cfg := config.Load()

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	formStore := forms.NewStore()
	if err := formStore.LoadDir(cfg.FormsDir); err != nil {
		return err
	}
	log.Info("loaded form definitions", zap.Int("forms", len(formStore.All())))

	pages := content.NewStore()
	memberDir := members.NewManager()
	workflowSvc := workflows.NewService()
	dataSourceSvc := datasources.NewService()
	preValueSvc := prevalues.NewService()
	if cfg.SitePath != "" {
		err := loadSite(cfg.SitePath, site{
			pages:       pages,
			members:     memberDir,
			workflows:   workflowSvc,
			dataSources: dataSourceSvc,
			preValues:   preValueSvc,
		})
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recordStore, err := records.Open(ctx, cfg.RecordsPath)
	if err != nil {
		return err
	}
	defer recordStore.Close()

	submitter := submission.NewSubmitter(
		log.Named("submission"),
		formStore,
		fieldtypes.NewRegistry(),
		pages,
		content.NewRouterContextFactory(log.Named("router")),
		memberDir,
		recordStore,
	)

	schema, err := graph.NewSchema(graph.Config{
		Forms:       formStore,
		DataSources: dataSourceSvc,
		Workflows:   workflowSvc,
		PreValues:   preValueSvc,
		Submitter:   submitter,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(log.Named("http"), schema, cfg.JWTSecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
