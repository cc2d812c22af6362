// Package gamedata provides embedded monster and item definitions and the colour palette.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
