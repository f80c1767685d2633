// Package unitdata provides embedded unit definitions and utilities for
// loading them.
package unitdata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
