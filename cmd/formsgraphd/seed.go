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

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/formsgraph/formsgraph/internal/content"
	"github.com/formsgraph/formsgraph/internal/datasources"
	"github.com/formsgraph/formsgraph/internal/members"
	"github.com/formsgraph/formsgraph/internal/prevalues"
	"github.com/formsgraph/formsgraph/internal/workflows"
)

// siteDoc is the YAML document describing the published pages, the member
// directory and the workflow, data source and pre-value catalogs the graph
// serves. Identifiers are decoded as strings and parsed explicitly.
type siteDoc struct {
	Pages           []sitePageDoc       `yaml:"pages"`
	Members         []siteMemberDoc     `yaml:"members"`
	Workflows       []siteWorkflowDoc   `yaml:"workflows"`
	DataSources     []siteDataSourceDoc `yaml:"dataSources"`
	PreValueSources []sitePreValueDoc   `yaml:"preValueSources"`
}

type sitePageDoc struct {
	ID   int    `yaml:"id"`
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type siteMemberDoc struct {
	Key      string `yaml:"key"`
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
}

type siteWorkflowDoc struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	TypeName  string `yaml:"typeName"`
	Active    bool   `yaml:"active"`
	SortOrder int    `yaml:"sortOrder"`
	FormID    string `yaml:"formId"`
}

type siteDataSourceDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	TypeName string `yaml:"typeName"`
	Type     struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"type"`
	Mappings []struct {
		Alias           string `yaml:"alias"`
		DataSourceField string `yaml:"dataSourceField"`
		DefaultValue    string `yaml:"defaultValue"`
	} `yaml:"mappings"`
}

type sitePreValueDoc struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	TypeName string   `yaml:"typeName"`
	Values   []string `yaml:"values"`
}

// site bundles the stores a seed document populates.
type site struct {
	pages       *content.Store
	members     *members.Manager
	workflows   *workflows.Service
	dataSources *datasources.Service
	preValues   *prevalues.Service
}

// loadSite populates the site stores from the YAML document at path.
func loadSite(path string, dst site) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read site document: %w", err)
	}

	var doc siteDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse site document: %w", err)
	}

	for _, p := range doc.Pages {
		key, err := uuid.Parse(p.Key)
		if err != nil {
			return fmt.Errorf("page %q key: %w", p.Name, err)
		}
		dst.pages.Add(&content.Page{ID: p.ID, Key: key, Name: p.Name, URL: p.URL})
	}

	for _, m := range doc.Members {
		key := uuid.Nil
		if m.Key != "" {
			if key, err = uuid.Parse(m.Key); err != nil {
				return fmt.Errorf("member %q key: %w", m.Username, err)
			}
		}
		dst.members.Add(&members.Member{Key: key, Username: m.Username, Name: m.Name, Email: m.Email})
	}

	for _, w := range doc.Workflows {
		id, err := uuid.Parse(w.ID)
		if err != nil {
			return fmt.Errorf("workflow %q id: %w", w.Name, err)
		}
		formID := uuid.Nil
		if w.FormID != "" {
			if formID, err = uuid.Parse(w.FormID); err != nil {
				return fmt.Errorf("workflow %q formId: %w", w.Name, err)
			}
		}
		dst.workflows.Add(&workflows.Workflow{
			ID:        id,
			Name:      w.Name,
			TypeName:  w.TypeName,
			Active:    w.Active,
			SortOrder: w.SortOrder,
			FormID:    formID,
		})
	}

	for _, d := range doc.DataSources {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return fmt.Errorf("data source %q id: %w", d.Name, err)
		}
		typeID := uuid.Nil
		if d.Type.ID != "" {
			if typeID, err = uuid.Parse(d.Type.ID); err != nil {
				return fmt.Errorf("data source %q type id: %w", d.Name, err)
			}
		}
		ds := &datasources.FormDataSource{
			ID:       id,
			Name:     d.Name,
			TypeName: d.TypeName,
			Type:     datasources.Info{ID: typeID, Name: d.Type.Name},
		}
		for _, m := range d.Mappings {
			ds.Mappings = append(ds.Mappings, datasources.Mapping{
				Alias:           m.Alias,
				DataSourceField: m.DataSourceField,
				DefaultValue:    m.DefaultValue,
			})
		}
		dst.dataSources.Add(ds)
	}

	for _, p := range doc.PreValueSources {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return fmt.Errorf("pre-value source %q id: %w", p.Name, err)
		}
		dst.preValues.Add(&prevalues.FieldPreValueSource{
			ID:       id,
			Name:     p.Name,
			TypeName: p.TypeName,
			Values:   p.Values,
		})
	}

	return nil
}
