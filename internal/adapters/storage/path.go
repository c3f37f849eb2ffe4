package storage

import (
	"path"
	"strings"
)

const Folder = "posts"

// ObjectPath is where an uploaded file named filename is stored.
func ObjectPath(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" || name == ".." {
		name = "upload"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return Folder + "/" + name
}
