package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed public
var content embed.FS

// PublicFS returns the prebuilt frontend bundle.
func PublicFS() fs.FS {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		log.Fatalf("failed to create public sub-filesystem: %v", err)
	}
	return sub
}
