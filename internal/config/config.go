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

// Package config reads service configuration from the environment.
package config

import "os"

// Config is the service configuration.
type Config struct {
	// HTTPAddr is the listen address of the HTTP server.
	HTTPAddr string

	// FormsDir is the directory holding form definition documents.
	FormsDir string

	// SitePath is an optional YAML document describing published pages,
	// members and the workflow, data source and pre-value catalogs.
	SitePath string

	// RecordsPath is the SQLite database file for submitted records.
	RecordsPath string

	// JWTSecret signs and verifies member tokens.
	JWTSecret string

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string
}

// Load reads configuration from the environment, with development defaults.
func Load() *Config {
	return &Config{
		HTTPAddr:    getEnv("FORMSGRAPH_ADDR", ":8080"),
		FormsDir:    getEnv("FORMSGRAPH_FORMS_DIR", "forms"),
		SitePath:    getEnv("FORMSGRAPH_SITE_PATH", ""),
		RecordsPath: getEnv("FORMSGRAPH_RECORDS_PATH", "records.db"),
		JWTSecret:   getEnv("FORMSGRAPH_JWT_SECRET", "formsgraph-dev-secret-change-me"),
		LogLevel:    getEnv("FORMSGRAPH_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
