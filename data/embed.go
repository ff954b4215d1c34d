// Package data provides embedded demo dungeons and utilities for loading them.
package data

import "embed"

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing demo data.
func FS() embed.FS {
	return dataFS
}
