// Package catalogue serves the read-only food reference dataset. A built-in
// list ships embedded in the binary; a YAML file can replace it. The log
// never writes to the catalogue.
package catalogue

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plateful/foodlog/internal/model"
)

//go:embed foods.yaml
var embeddedFoods []byte

type Provider struct {
	items []model.CatalogueItem
	byID  map[string]model.CatalogueItem
}

// Embedded returns the provider backed by the built-in food list.
func Embedded() (*Provider, error) {
	return parse(embeddedFoods)
}

// LoadFile returns a provider backed by a YAML food list on disk.
func LoadFile(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue file: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalogue file %s: %w", path, err)
	}
	return p, nil
}

// Load returns LoadFile(path) when path is non-empty, the embedded
// catalogue otherwise.
func Load(path string) (*Provider, error) {
	if strings.TrimSpace(path) != "" {
		return LoadFile(path)
	}
	return Embedded()
}

func parse(data []byte) (*Provider, error) {
	var items []model.CatalogueItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	byID := make(map[string]model.CatalogueItem, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalogue item %q has no id", item.Name)
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalogue item id %q", item.ID)
		}
		byID[item.ID] = item
	}
	return &Provider{items: items, byID: byID}, nil
}

// Item returns the item with the given id.
func (p *Provider) Item(id string) (model.CatalogueItem, bool) {
	item, ok := p.byID[id]
	return item, ok
}

// Items returns all items in file order.
func (p *Provider) Items() []model.CatalogueItem {
	out := make([]model.CatalogueItem, len(p.items))
	copy(out, p.items)
	return out
}

// Search returns items whose name or id contains query (case-insensitive)
// and, when tag is non-empty, carry that tag. Empty query matches all.
func (p *Provider) Search(query, tag string) []model.CatalogueItem {
	query = strings.ToLower(strings.TrimSpace(query))
	tag = strings.ToLower(strings.TrimSpace(tag))
	out := make([]model.CatalogueItem, 0)
	for _, item := range p.items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.ID), query) {
			continue
		}
		if tag != "" && !hasTag(item, tag) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func hasTag(item model.CatalogueItem, tag string) bool {
	for _, t := range item.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
