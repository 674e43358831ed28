// Package writer lands generated markup into the destination project.
// It is the single chokepoint that mutates the project tree, and it
// never replaces an existing file.
package writer

import (
	"os"
	"path/filepath"
	"strings"
)

// Folder is the destination subtree for one write.
type Folder string

const (
	FolderComponents Folder = "components"
	FolderPages      Folder = "pages"
)

// Intent describes one pending write. It is created on command
// invocation, consumed synchronously, and never stored.
type Intent struct {
	FileName string
	Folder   Folder
	ShowDiff bool
}

// acceptedExtensions are the two markup extensions a destination file
// may carry. Anything else is coerced to the default.
var acceptedExtensions = map[string]bool{
	".tsx": true,
	".jsx": true,
}

const defaultExtension = ".tsx"

// normalizeFileName coerces the extension when the caller did not
// already supply an accepted one.
func normalizeFileName(name string) string {
	if acceptedExtensions[strings.ToLower(filepath.Ext(name))] {
		return name
	}
	return name + defaultExtension
}

// DetermineTargetFolder picks a destination before writing: an existing
// components subtree wins over a pages subtree, and components is the
// default when neither exists.
func DetermineTargetFolder(root string) Folder {
	if dirExists(folderPath(root, FolderComponents)) {
		return FolderComponents
	}
	if dirExists(folderPath(root, FolderPages)) {
		return FolderPages
	}
	return FolderComponents
}

// folderPath resolves a target folder under the project's src directory
// when one exists, and under the root otherwise.
func folderPath(root string, folder Folder) string {
	src := filepath.Join(root, "src")
	if dirExists(src) {
		return filepath.Join(src, string(folder))
	}
	return filepath.Join(root, string(folder))
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
