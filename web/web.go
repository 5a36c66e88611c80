// Package web embeds the storefront's templates and static assets so the
// server binary is self-contained.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed views/*.html
var viewsFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Views returns the template files rooted at the views directory.
func Views() http.FileSystem {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Static returns the static assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
