// Package catalog loads and serves the read-only restaurant presets.
//
// Presets ship compiled into the binary; an external JSON file can replace
// them at startup. A malformed source is never fatal: the caller gets an
// empty catalog plus the error, and the application degrades to custom
// (per-item) restaurants only.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tkarolak/dinesplit/internal/models"
)

//go:embed restaurants.json
var defaultSource []byte

// Catalog is an immutable collection of restaurant presets.
type Catalog struct {
	presets []models.RestaurantPreset
	byName  map[string]*models.RestaurantPreset
}

// source is the JSON shape of a preset file.
type source struct {
	Restaurants []models.RestaurantPreset `json:"restaurants"`
}

// Default returns the catalog built from the embedded preset file.
// The embedded file is validated at build time by the package tests, so an
// error here indicates a broken build.
func Default() (*Catalog, error) {
	return parse(defaultSource)
}

// LoadFile reads presets from an external JSON file. On any failure it
// returns an empty, usable catalog along with the error.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return empty(), fmt.Errorf("failed to read preset file: %w", err)
	}
	return parse(data)
}

func empty() *Catalog {
	return &Catalog{byName: map[string]*models.RestaurantPreset{}}
}

func parse(data []byte) (*Catalog, error) {
	var src source
	if err := json.Unmarshal(data, &src); err != nil {
		return empty(), fmt.Errorf("failed to parse preset source: %w", err)
	}

	c := &Catalog{
		presets: src.Restaurants,
		byName:  make(map[string]*models.RestaurantPreset, len(src.Restaurants)),
	}
	for i := range c.presets {
		p := &c.presets[i]
		if p.PricingModel == "" {
			p.PricingModel = models.PricingPerItem
		}
		if err := validate(p); err != nil {
			return empty(), fmt.Errorf("preset %q: %w", p.Name, err)
		}
		c.byName[p.Name] = p
	}
	return c, nil
}

func validate(p *models.RestaurantPreset) error {
	if p.Name == "" {
		return fmt.Errorf("missing name")
	}
	switch p.PricingModel {
	case models.PricingPerItem:
	case models.PricingCourseBased:
		cp := p.CoursePricing
		if cp.OneCourse <= 0 || cp.TwoCourse <= 0 || cp.ThreeCourse <= 0 {
			return fmt.Errorf("course-based preset must define all three course prices")
		}
	default:
		return fmt.Errorf("unrecognized pricing model %q", p.PricingModel)
	}
	for _, item := range p.Menu {
		if item.Name == "" {
			return fmt.Errorf("menu item with empty name")
		}
		if item.UnitCost < 0 {
			return fmt.Errorf("menu item %q has negative price", item.Name)
		}
		if !models.ValidCategory(item.Category) {
			return fmt.Errorf("menu item %q has unknown category %q", item.Name, item.Category)
		}
	}
	return nil
}

// List returns all presets in file order.
func (c *Catalog) List() []models.RestaurantPreset {
	return c.presets
}

// Get returns the preset with the given name, or nil when the name is
// unknown or empty (a custom restaurant).
func (c *Catalog) Get(name string) *models.RestaurantPreset {
	return c.byName[name]
}

// Len returns the number of loaded presets.
func (c *Catalog) Len() int {
	return len(c.presets)
}
