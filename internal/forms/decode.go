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

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Document shapes for YAML form definitions. Identifiers are decoded as
// strings and parsed explicitly; yaml.v3 has no text-unmarshal fallback for
// UUID values.

type formDoc struct {
	ID                  string    `yaml:"id"`
	Name                string    `yaml:"name"`
	InvalidErrorMessage string    `yaml:"invalidErrorMessage"`
	Pages               []pageDoc `yaml:"pages"`
}

type pageDoc struct {
	Caption   string        `yaml:"caption"`
	FieldSets []fieldSetDoc `yaml:"fieldSets"`
}

type fieldSetDoc struct {
	ID         string         `yaml:"id"`
	Caption    string         `yaml:"caption"`
	Condition  *conditionDoc  `yaml:"condition"`
	Containers []containerDoc `yaml:"containers"`
}

type conditionDoc struct {
	Enabled    bool      `yaml:"enabled"`
	ActionType string    `yaml:"actionType"`
	LogicType  string    `yaml:"logicType"`
	Rules      []ruleDoc `yaml:"rules"`
}

type ruleDoc struct {
	Field    string `yaml:"field"`
	Operator string `yaml:"operator"`
	Value    string `yaml:"value"`
}

type containerDoc struct {
	Caption string     `yaml:"caption"`
	Width   int        `yaml:"width"`
	Fields  []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	ID        string            `yaml:"id"`
	Alias     string            `yaml:"alias"`
	Caption   string            `yaml:"caption"`
	Type      string            `yaml:"type"`
	Required  bool              `yaml:"required"`
	Pattern   string            `yaml:"pattern"`
	PreValues []string          `yaml:"preValues"`
	Settings  map[string]string `yaml:"settings"`
	Values    []string          `yaml:"values"`
}

// ParseForm decodes one YAML form definition document.
func ParseForm(data []byte) (*Form, error) {
	var doc formDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.build()
}

func parseGUID(what, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", what, err)
	}
	return id, nil
}

func (doc *formDoc) build() (*Form, error) {
	id, err := parseGUID("form id", doc.ID)
	if err != nil {
		return nil, err
	}
	form := &Form{
		ID:                  id,
		Name:                doc.Name,
		InvalidErrorMessage: doc.InvalidErrorMessage,
	}
	for _, p := range doc.Pages {
		page, err := p.build()
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", doc.Name, err)
		}
		form.Pages = append(form.Pages, page)
	}
	return form, nil
}

func (doc *pageDoc) build() (*Page, error) {
	page := &Page{Caption: doc.Caption}
	for _, fs := range doc.FieldSets {
		fieldSet, err := fs.build()
		if err != nil {
			return nil, err
		}
		page.FieldSets = append(page.FieldSets, fieldSet)
	}
	return page, nil
}

func (doc *fieldSetDoc) build() (*FieldSet, error) {
	id, err := parseGUID("field set id", doc.ID)
	if err != nil {
		return nil, err
	}
	fieldSet := &FieldSet{ID: id, Caption: doc.Caption}
	if doc.Condition != nil {
		condition, err := doc.Condition.build()
		if err != nil {
			return nil, fmt.Errorf("field set %q: %w", doc.Caption, err)
		}
		fieldSet.Condition = condition
	}
	for _, c := range doc.Containers {
		container, err := c.build()
		if err != nil {
			return nil, fmt.Errorf("field set %q: %w", doc.Caption, err)
		}
		fieldSet.Containers = append(fieldSet.Containers, container)
	}
	return fieldSet, nil
}

func (doc *conditionDoc) build() (*Condition, error) {
	condition := &Condition{
		Enabled:    doc.Enabled,
		ActionType: ActionType(doc.ActionType),
		LogicType:  LogicType(doc.LogicType),
	}
	for _, r := range doc.Rules {
		field, err := parseGUID("condition rule field", r.Field)
		if err != nil {
			return nil, err
		}
		condition.Rules = append(condition.Rules, ConditionRule{
			Field:    field,
			Operator: Operator(r.Operator),
			Value:    r.Value,
		})
	}
	return condition, nil
}

func (doc *containerDoc) build() (*Container, error) {
	container := &Container{Caption: doc.Caption, Width: doc.Width}
	for _, f := range doc.Fields {
		field, err := f.build()
		if err != nil {
			return nil, err
		}
		container.Fields = append(container.Fields, field)
	}
	return container, nil
}

func (doc *fieldDoc) build() (*Field, error) {
	id, err := parseGUID(fmt.Sprintf("field %q id", doc.Alias), doc.ID)
	if err != nil {
		return nil, err
	}
	return &Field{
		ID:        id,
		Alias:     doc.Alias,
		Caption:   doc.Caption,
		Type:      doc.Type,
		Required:  doc.Required,
		Pattern:   doc.Pattern,
		PreValues: doc.PreValues,
		Settings:  doc.Settings,
		Values:    doc.Values,
	}, nil
}
