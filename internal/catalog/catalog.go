package catalog

import (
	"fmt"
	"os"
	"pathfinder/internal/model"
)

// Catalog is an immutable snapshot of parsed programs and their UG/PG
// partitions. Slices returned by its methods are shared and must not be
// modified by callers.
type Catalog struct {
	all        []Program
	eligible   []Program
	ug         []Program
	pg         []Program
	excluded   []Program
	validNames map[string]struct{}
}

// Stats summarizes a snapshot.
type Stats struct {
	Total         int      `json:"total"`
	Undergraduate int      `json:"undergraduate"`
	Postgraduate  int      `json:"postgraduate"`
	Excluded      int      `json:"excluded"`
	Orphans       []string `json:"orphans"`
	UnknownCodes  []string `json:"unknownCodes"`
}

// New partitions programs once. Every non-placeholder program lands in
// exactly one of UG or PG.
func New(programs []Program) *Catalog {
	c := &Catalog{
		all:        append([]Program(nil), programs...),
		validNames: make(map[string]struct{}, len(programs)),
	}
	for _, p := range c.all {
		if isPlaceholder(p.Name) {
			c.excluded = append(c.excluded, p)
			continue
		}
		c.validNames[p.Name] = struct{}{}
		c.eligible = append(c.eligible, p)
		if IsPostgraduate(p.Category) {
			c.pg = append(c.pg, p)
		} else {
			c.ug = append(c.ug, p)
		}
	}
	return c
}

// LoadFile parses a weights CSV file into a snapshot.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	programs, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return New(programs), nil
}

// All returns every parsed program in source order.
func (c *Catalog) All() []Program { return c.all }

// Eligible returns every program that may be recommended, regardless of
// partition, in source order. Custom catalogs are scored against this list.
func (c *Catalog) Eligible() []Program { return c.eligible }

// Undergraduate returns the UG partition.
func (c *Catalog) Undergraduate() []Program { return c.ug }

// Postgraduate returns the PG partition.
func (c *Catalog) Postgraduate() []Program { return c.pg }

// Programs returns the partition a quiz track recommends from: students
// finishing class 12 get undergraduate programs, graduates get postgraduate
// ones.
func (c *Catalog) Programs(track model.Track) []Program {
	if track == model.TrackUndergraduate {
		return c.pg
	}
	return c.ug
}

// IsValid reports whether name is a program name of this snapshot.
func (c *Catalog) IsValid(name string) bool {
	_, ok := c.validNames[name]
	return ok
}

// Len returns the number of parsed programs.
func (c *Catalog) Len() int { return len(c.all) }

// Stats reports partition sizes, programs that landed in neither partition
// and codes that were placed by the fallback rule.
func (c *Catalog) Stats() Stats {
	covered := make(map[string]struct{}, len(c.ug)+len(c.pg))
	for _, p := range c.ug {
		covered[p.ID] = struct{}{}
	}
	for _, p := range c.pg {
		covered[p.ID] = struct{}{}
	}

	s := Stats{
		Total:         len(c.all),
		Undergraduate: len(c.ug),
		Postgraduate:  len(c.pg),
		Excluded:      len(c.excluded),
		Orphans:       []string{},
		UnknownCodes:  []string{},
	}
	seen := make(map[string]struct{})
	for _, p := range c.all {
		if _, ok := covered[p.ID]; !ok {
			s.Orphans = append(s.Orphans, fmt.Sprintf("[%s] %s", p.Category, p.Name))
		}
		if IsKnownCode(p.Category) {
			continue
		}
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			s.UnknownCodes = append(s.UnknownCodes, p.Category)
		}
	}
	return s
}
