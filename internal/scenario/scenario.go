package scenario

import (
	"errors"
	"fmt"

	"github.com/abhisek/crittersort/internal/dataset"
)

// ErrUnknownScenario is returned by Catalog.Lookup for keys it does not hold.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is a named preset of class distributions.
type Scenario struct {
	Key         string              `yaml:"key"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	A           dataset.ClassParams `yaml:"a"`
	B           dataset.ClassParams `yaml:"b"`

	// Threshold, when set, replaces the threshold on selection.
	Threshold *float64 `yaml:"threshold"`
}

// Builtin returns the presets shipped with the sorter, in menu order.
func Builtin() []Scenario {
	return []Scenario{
		{
			Key:         "easy",
			Name:        "Easy separation",
			Description: "Two tight herds far apart. Any threshold in the gap scores perfectly.",
			A:           dataset.ClassParams{Center: 7, Spread: 2, Count: 50},
			B:           dataset.ClassParams{Center: 22, Spread: 2, Count: 50},
		},
		{
			Key:         "tricky",
			Name:        "Tricky overlap",
			Description: "Wide herds that share the middle. No threshold gets everyone right.",
			A:           dataset.ClassParams{Center: 13, Spread: 4, Count: 50},
			B:           dataset.ClassParams{Center: 17, Spread: 4, Count: 50},
		},
		{
			Key:         "unbalanced",
			Name:        "Unbalanced herds",
			Description: "Four A critters for every B. Watch what accuracy hides.",
			A:           dataset.ClassParams{Center: 10, Spread: 3, Count: 80},
			B:           dataset.ClassParams{Center: 20, Spread: 3, Count: 20},
		},
	}
}

// Catalog is an ordered set of scenarios with unique keys.
type Catalog struct {
	items []Scenario
	index map[string]int
}

// NewCatalog builds a catalog from scenarios. Later entries replace earlier
// ones with the same key while keeping the original position.
func NewCatalog(scenarios ...[]Scenario) *Catalog {
	c := &Catalog{index: make(map[string]int)}
	for _, group := range scenarios {
		for _, sc := range group {
			if i, ok := c.index[sc.Key]; ok {
				c.items[i] = sc
				continue
			}
			c.index[sc.Key] = len(c.items)
			c.items = append(c.items, sc)
		}
	}
	return c
}

// All returns the scenarios in order.
func (c *Catalog) All() []Scenario {
	out := make([]Scenario, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of scenarios.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup finds a scenario by key.
func (c *Catalog) Lookup(key string) (Scenario, error) {
	i, ok := c.index[key]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, key)
	}
	return c.items[i], nil
}

// At returns the scenario at position i (0-based).
func (c *Catalog) At(i int) (Scenario, bool) {
	if i < 0 || i >= len(c.items) {
		return Scenario{}, false
	}
	return c.items[i], true
}
