package profilestore

import (
	"sort"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// Catalog serves profile groups to the resolver. Lookup precedence is
// inline groups from the schedule file, then persisted groups, then the
// built-in DEFAULT. DEFAULT is always available even with persistence
// disabled, so profile resolution can never fail outright.
type Catalog struct {
	inline map[string]schema.ProfileGroup
	store  contract.GroupStore // may be nil
}

var _ contract.ProfileStore = &Catalog{} // Compile-time check

// NewCatalog builds a catalog over an optional group store and the inline
// groups carried by the schedule. Inline groups shadow persisted ones of the
// same name; nothing shadows DEFAULT.
func NewCatalog(store contract.GroupStore, inline []schema.ProfileGroup) *Catalog {
	c := &Catalog{inline: make(map[string]schema.ProfileGroup, len(inline)), store: store}
	for _, g := range inline {
		if g.Name == "" || g.Name == schema.DefaultGroupName {
			continue
		}
		c.inline[g.Name] = g
	}
	return c
}

// Group returns the named group and whether it exists.
func (c *Catalog) Group(name string) (schema.ProfileGroup, bool) {
	if name == schema.DefaultGroupName {
		return schema.DefaultProfileGroup(), true
	}
	if g, ok := c.inline[name]; ok {
		return g, true
	}
	if c.store != nil {
		g, ok, err := c.store.LoadGroup(name)
		if err == nil && ok {
			return g, true
		}
	}
	return schema.ProfileGroup{}, false
}

// GroupNames returns all known group names, DEFAULT first and the rest
// sorted.
func (c *Catalog) GroupNames() []string {
	seen := map[string]bool{schema.DefaultGroupName: true}
	var rest []string
	for name := range c.inline {
		if !seen[name] {
			seen[name] = true
			rest = append(rest, name)
		}
	}
	if c.store != nil {
		if persisted, err := c.store.ListGroups(); err == nil {
			for _, name := range persisted {
				if !seen[name] {
					seen[name] = true
					rest = append(rest, name)
				}
			}
		}
	}
	sort.Strings(rest)
	return append([]string{schema.DefaultGroupName}, rest...)
}
