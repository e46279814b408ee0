// Package templates serves the read-only catalogue of starter forms.
package templates

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"Backend-FormCraft/src/models"
	"Backend-FormCraft/src/services/forms"
)

var ErrTemplateNotFound = errors.New("template not found")

//go:embed catalogue.json
var catalogueJSON []byte

type Catalogue struct {
	items []models.FormTemplate
	byID  map[string]int
}

// Load parses the embedded catalogue and validates every template schema.
func Load() (*Catalogue, error) {
	return Parse(catalogueJSON)
}

func Parse(data []byte) (*Catalogue, error) {
	var items []models.FormTemplate
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse template catalogue: %w", err)
	}
	c := &Catalogue{items: items, byID: make(map[string]int, len(items))}
	for i, t := range items {
		if t.ID == "" {
			return nil, fmt.Errorf("template %d has no id", i)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		if err := forms.ValidateFields(t.Form.Fields); err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		c.byID[t.ID] = i
	}
	return c, nil
}

func (c *Catalogue) List() []models.TemplateSummary {
	out := make([]models.TemplateSummary, len(c.items))
	for i, t := range c.items {
		out[i] = models.TemplateSummary{ID: t.ID, Name: t.Name, Description: t.Description}
	}
	return out
}

// Get returns a copy so callers cannot modify the catalogue.
func (c *Catalogue) Get(id string) (*models.FormTemplate, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	tpl := c.items[i]
	tpl.Form.Fields = append([]models.Field(nil), tpl.Form.Fields...)
	return &tpl, nil
}
