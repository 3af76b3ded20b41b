// Package web serves the embedded browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler returns an http.Handler serving the embedded client assets.
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}

	return http.FileServer(http.FS(sub))
}
