// Package web holds the browser chat page served at "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// Static returns the page assets rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic(err)
	}
	return sub
}

// Index returns the chat page
func Index() []byte {
	b, err := fs.ReadFile(staticFS, "static/index.html")
	if err != nil {
		panic(err)
	}
	return b
}
