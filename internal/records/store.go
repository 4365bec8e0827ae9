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

package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	_ "modernc.org/sqlite"

	"github.com/formsgraph/formsgraph/internal/forms"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persists records in SQLite. Converted field values are stored as one
// JSON array per record field.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the record database at path and
// initializes the schema. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("records: open sqlite: %w", err)
	}
	store := NewStore(db)
	if err := store.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewStore wraps an existing database handle. Call Init before use.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init creates the record tables if they do not exist.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS records (
			id         TEXT PRIMARY KEY,
			form_id    TEXT NOT NULL,
			state      TEXT NOT NULL,
			page_id    INTEGER NOT NULL,
			ip         TEXT NOT NULL DEFAULT '',
			member_key TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_form ON records(form_id);

		CREATE TABLE IF NOT EXISTS record_fields (
			record_id TEXT NOT NULL REFERENCES records(id) ON DELETE CASCADE,
			field_id  TEXT NOT NULL,
			alias     TEXT NOT NULL,
			values_json TEXT NOT NULL,
			PRIMARY KEY (record_id, field_id)
		);
	`)
	if err != nil {
		return fmt.Errorf("records: init schema: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Submit persists a record and its fields in one transaction, associated
// with the given form. The record keeps the identifier it was created with.
func (s *Store) Submit(ctx context.Context, record *Record, form *forms.Form) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("records: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO records (id, form_id, state, page_id, ip, member_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID.String(), record.Form.String(), string(record.State),
		record.PageID, record.IP, record.MemberKey,
		record.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("records: insert record: %w", err)
	}

	for _, rf := range record.Fields {
		values := rf.Values
		if values == nil {
			values = []interface{}{}
		}
		blob, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("records: encode field %s: %w", rf.Alias, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO record_fields (record_id, field_id, alias, values_json)
			 VALUES (?, ?, ?, ?)`,
			record.ID.String(), rf.FieldID.String(), rf.Alias, string(blob))
		if err != nil {
			return fmt.Errorf("records: insert field %s: %w", rf.Alias, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("records: commit: %w", err)
	}
	return nil
}

// Get loads a record by id. Returns nil when the record does not exist.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, form_id, state, page_id, ip, member_key, created_at
		 FROM records WHERE id = ?`, id.String())

	var (
		record    Record
		idStr     string
		formStr   string
		createdAt string
	)
	err := row.Scan(&idStr, &formStr, (*string)(&record.State), &record.PageID,
		&record.IP, &record.MemberKey, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("records: load %s: %w", id, err)
	}

	if record.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("records: corrupt record id %q: %w", idStr, err)
	}
	if record.Form, err = uuid.Parse(formStr); err != nil {
		return nil, fmt.Errorf("records: corrupt form id %q: %w", formStr, err)
	}
	if record.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("records: corrupt timestamp %q: %w", createdAt, err)
	}

	record.Fields = map[uuid.UUID]*RecordField{}
	rows, err := s.db.QueryContext(ctx,
		`SELECT field_id, alias, values_json FROM record_fields WHERE record_id = ?`,
		id.String())
	if err != nil {
		return nil, fmt.Errorf("records: load fields of %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rf       RecordField
			fieldStr string
			blob     string
		)
		if err := rows.Scan(&fieldStr, &rf.Alias, &blob); err != nil {
			return nil, fmt.Errorf("records: scan field of %s: %w", id, err)
		}
		if rf.FieldID, err = uuid.Parse(fieldStr); err != nil {
			return nil, fmt.Errorf("records: corrupt field id %q: %w", fieldStr, err)
		}
		if err := json.UnmarshalFromString(blob, &rf.Values); err != nil {
			return nil, fmt.Errorf("records: decode values of %s: %w", rf.Alias, err)
		}
		record.Fields[rf.FieldID] = &rf
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: iterate fields of %s: %w", id, err)
	}
	return &record, nil
}

// CountForForm reports how many records exist for a form.
func (s *Store) CountForForm(ctx context.Context, formID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE form_id = ?`, formID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("records: count for form %s: %w", formID, err)
	}
	return count, nil
}
