// Package roomdata provides the embedded room blueprint catalog and
// utilities for loading it.
package roomdata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
