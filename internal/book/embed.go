package book

import (
	"embed"
	"io/fs"
)

//go:embed content
var embedded embed.FS

// DefaultContent returns the book that ships inside the binary.
func DefaultContent() fs.FS {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
