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

// Package submission implements the form-submission pipeline: resolve the
// form, evaluate field-set visibility, validate visible fields, resolve the
// page and its routing context, assemble a record, and persist it. Every
// outcome is one of three envelope shapes; diagnostic detail for unexpected
// failures goes to the log only.
package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/formsgraph/formsgraph/internal/content"
	"github.com/formsgraph/formsgraph/internal/forms"
	"github.com/formsgraph/formsgraph/internal/forms/fieldtypes"
	"github.com/formsgraph/formsgraph/internal/members"
	"github.com/formsgraph/formsgraph/internal/records"
)

// Failure messages surfaced to callers. Input errors name what to correct;
// the generic message deliberately carries no internal detail.
const (
	msgFormNotFound   = "The form ID specified could not be found"
	msgNoFieldValues  = "You must specify one or more field values"
	msgPageNotFound   = "Could not find the umbracoPageId specified"
	msgPageNotRouted  = "The page specified does not have a routable URL to associate with the form request"
	msgUnspecifiedErr = "An unspecified error occurred. Check the logs for more details."
)

// FormResolver resolves a form definition by id.
type FormResolver interface {
	Get(id uuid.UUID) *forms.Form
}

// PageResolver resolves a raw page reference to a published page.
type PageResolver interface {
	Resolve(ref string) *content.Page
}

// RouterFactory acquires a routing context scoped to a page URL.
type RouterFactory interface {
	Ensure(ctx context.Context, url string) (*content.RouterContext, error)
}

// MemberResolver resolves an authenticated username to a member account.
type MemberResolver interface {
	GetByUsername(ctx context.Context, username string) (*members.Member, error)
}

// RecordSink persists an assembled record for a form.
type RecordSink interface {
	Submit(ctx context.Context, record *records.Record, form *forms.Form) error
}

// Request is one submission attempt.
type Request struct {
	// FormID is the form's UUID in string form.
	FormID string

	// PageRef is the originating page reference: a UUID, an integer id, or a
	// document descriptor.
	PageRef string

	// Fields are the submitted (field, value) pairs.
	Fields []FieldValue

	// RemoteAddr is the submitter's network origin.
	RemoteAddr string

	// Username of the authenticated caller; empty for anonymous submissions.
	Username string
}

// Submitter orchestrates the submission pipeline.
type Submitter struct {
	log        *zap.Logger
	forms      FormResolver
	fieldTypes *fieldtypes.Registry
	pages      PageResolver
	router     RouterFactory
	members    MemberResolver
	sink       RecordSink
}

// NewSubmitter wires a submitter from its collaborators.
func NewSubmitter(
	log *zap.Logger,
	formResolver FormResolver,
	registry *fieldtypes.Registry,
	pages PageResolver,
	router RouterFactory,
	members MemberResolver,
	sink RecordSink,
) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{
		log:        log,
		forms:      formResolver,
		fieldTypes: registry,
		pages:      pages,
		router:     router,
		members:    members,
		sink:       sink,
	}
}

// Submit runs the pipeline for one request. It never returns an error:
// every failure, including unexpected ones, is folded into the envelope.
// Unexpected failures are logged with the form and page identifiers.
func (s *Submitter) Submit(ctx context.Context, req Request) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("form submission panicked",
				zap.String("formId", req.FormID),
				zap.String("umbracoPageId", req.PageRef),
				zap.Any("panic", r))
			result = Failure(msgUnspecifiedErr)
		}
	}()

	result, err := s.submit(ctx, req)
	if err != nil {
		s.log.Error("could not submit form",
			zap.String("formId", req.FormID),
			zap.String("umbracoPageId", req.PageRef),
			zap.Error(err))
		return Failure(msgUnspecifiedErr)
	}
	return result
}

func (s *Submitter) submit(ctx context.Context, req Request) (Result, error) {
	// Gate 1: the form id must parse and resolve.
	formID, err := uuid.Parse(req.FormID)
	if err != nil {
		return Failure(msgFormNotFound), nil
	}
	form := s.forms.Get(formID)
	if form == nil {
		return Failure(msgFormNotFound), nil
	}

	// Gate 2: at least one field value.
	if len(req.Fields) == 0 {
		return Failure(msgNoFieldValues), nil
	}

	// The raw value mapping; duplicates resolve last-write-wins.
	values := BuildValues(req.Fields)

	// Gates 3: visibility-aware validation across the whole form. All
	// errors are accumulated before returning so the caller gets the
	// complete set in one round trip.
	fieldErrors, err := s.validateForm(ctx, form, values)
	if err != nil {
		return Result{}, err
	}
	if len(fieldErrors) > 0 {
		return FieldFailure(fieldErrors), nil
	}

	// Gate 4: the page reference must resolve.
	page := s.pages.Resolve(req.PageRef)
	if page == nil {
		return Failure(msgPageNotFound), nil
	}

	// Gate 5: the page must be routable.
	if page.URL == "" {
		return Failure(msgPageNotRouted), nil
	}

	// The routing context is scoped to this operation only.
	routerCtx, err := s.router.Ensure(ctx, page.URL)
	if err != nil {
		return Result{}, fmt.Errorf("ensure routing context for %q: %w", page.URL, err)
	}
	defer routerCtx.Release()

	record, err := s.assemble(ctx, form, values, page, req)
	if err != nil {
		return Result{}, err
	}

	if err := s.sink.Submit(ctx, record, form); err != nil {
		return Result{}, fmt.Errorf("persist record: %w", err)
	}

	return Success(record.ID), nil
}
