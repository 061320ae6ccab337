package orbit

import "slices"

// School is one listing entry.
type School struct {
	ID   string
	Name string
	City string
}

// Catalog is a fixed, ordered set of schools.
type Catalog struct {
	schools []School
	byID    map[string]School
}

// NewCatalog indexes schools by ID. Later duplicates win.
func NewCatalog(schools ...School) *Catalog {
	c := &Catalog{
		schools: slices.Clone(schools),
		byID:    make(map[string]School, len(schools)),
	}
	for _, s := range schools {
		c.byID[s.ID] = s
	}
	return c
}

// DefaultCatalog is the demo listing.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		School{ID: "mit", Name: "Massachusetts Institute of Technology", City: "Cambridge, MA"},
		School{ID: "stanford", Name: "Stanford University", City: "Stanford, CA"},
		School{ID: "yale", Name: "Yale University", City: "New Haven, CT"},
		School{ID: "uchicago", Name: "University of Chicago", City: "Chicago, IL"},
		School{ID: "ucla", Name: "University of California, Los Angeles", City: "Los Angeles, CA"},
		School{ID: "columbia", Name: "Columbia University", City: "New York, NY"},
	)
}

// All returns the schools in listing order.
func (c *Catalog) All() []School {
	return slices.Clone(c.schools)
}

// Lookup finds a school by ID.
func (c *Catalog) Lookup(id string) (School, bool) {
	s, ok := c.byID[id]
	return s, ok
}
