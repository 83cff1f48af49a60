package catalog

import (
	_ "embed"
	"sync"
)

//go:embed data/courses_weights.csv
var defaultCSV string

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the snapshot built from the bundled weights CSV. It is
// parsed on first use and shared afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(ParseString(defaultCSV))
	})
	return defaultCatalog
}
