package views

import "embed"

// FS holds the HTML templates served by the web UI.
//
//go:embed *.html
var FS embed.FS
