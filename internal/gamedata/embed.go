// Package gamedata provides the embedded upgrade catalogue and color theme.
package gamedata

import "embed"

// dataFS holds upgrades.json and theme.json, compiled into the binary.
//
//go:embed *.json
var dataFS embed.FS
