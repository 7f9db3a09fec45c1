// Package web embeds the HTML templates served by the router.
package web

import "embed"

// Templates holds template/*.html.
//
//go:embed template/*.html
var Templates embed.FS
