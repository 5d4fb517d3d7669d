// Package web embeds the public site: HTML pages, the stylesheet, the browser
// script and slider images.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static returns the site rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static is embedded at build time; Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}
