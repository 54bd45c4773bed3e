package assets

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var embedded embed.FS

// FS serves the stylesheet and logo with the "static" prefix stripped.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
