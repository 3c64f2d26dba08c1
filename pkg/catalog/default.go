package catalog

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed default.yaml
var defaultSource []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the built-in catalog distilled from the UI testing
// guide. It goes through the same load-time validation as user-supplied
// catalogs and is built once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(bytes.NewReader(defaultSource))
	})
	return defaultCat, defaultErr
}
