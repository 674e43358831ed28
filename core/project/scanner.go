// Package project inspects a destination project for utility-class
// configuration and reusable components. Read-only; the safe writer is
// the only path that mutates the project tree.
package project

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// tailwindConfigNames are the conventional config file names probed in
// the project root.
var tailwindConfigNames = []string{
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
	"tailwind.config.ts",
}

// componentDirs are the conventional locations searched for reusable
// components, in priority order.
var componentDirs = []string{
	filepath.Join("src", "components"),
	"components",
	filepath.Join("app", "components"),
}

// componentExtensions mark component-like files.
var componentExtensions = map[string]bool{
	".tsx": true,
	".jsx": true,
}

// Component is a reusable component already present in the project.
// Uniqueness is by Path; two components may share a Name.
type Component struct {
	Name string
	Path string
}

// Scanner performs read-only inspection of one project root.
type Scanner struct {
	root string
}

// NewScanner builds a Scanner over the given project root.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Root returns the project root the scanner inspects.
func (s *Scanner) Root() string {
	return s.root
}

// HasTailwind reports whether the project carries a Tailwind config file
// or declares tailwindcss as a package dependency.
func (s *Scanner) HasTailwind() bool {
	for _, name := range tailwindConfigNames {
		if _, err := os.Stat(filepath.Join(s.root, name)); err == nil {
			return true
		}
	}
	return s.hasTailwindDependency()
}

func (s *Scanner) hasTailwindDependency() bool {
	data, err := os.ReadFile(filepath.Join(s.root, "package.json"))
	if err != nil {
		return false
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return false
	}

	_, dep := pkg.Dependencies["tailwindcss"]
	_, dev := pkg.DevDependencies["tailwindcss"]
	return dep || dev
}

// ListComponents recursively lists component-like files under the
// conventional components directories, reported relative to the project
// root. A missing directory contributes nothing.
func (s *Scanner) ListComponents() []Component {
	var found []Component
	for _, dir := range componentDirs {
		abs := filepath.Join(s.root, dir)
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}

		filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if !componentExtensions[filepath.Ext(d.Name())] {
				return nil
			}
			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				return nil
			}
			found = append(found, Component{
				Name: strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
				Path: filepath.ToSlash(rel),
			})
			return nil
		})
	}
	return found
}
