package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkerrigan/figgen/core/errors"
)

// Confirmer asks the user a yes/no question. Declining aborts the write
// with no filesystem mutation.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// StdinConfirmer reads a y/N answer from an input stream.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints the prompt and treats anything but y/yes as a decline.
func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Result reports where a write landed, or that the user backed out.
type Result struct {
	Path      string
	Cancelled bool
}

// Writer performs confirmed, non-destructive writes under one project
// root.
type Writer struct {
	root    string
	confirm Confirmer
	diff    *DiffRenderer
}

// New builds a Writer for the project root.
func New(root string, confirm Confirmer, diff *DiffRenderer) *Writer {
	return &Writer{root: root, confirm: confirm, diff: diff}
}

// Write lands content at the path described by intent. An occupied
// destination always fails with AlreadyExists — after showing what would
// have changed when a preview was requested — and an explicit
// confirmation gates every actual write.
func (w *Writer) Write(content string, intent Intent) (Result, error) {
	dir := folderPath(w.root, intent.Folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", dir, err)
	}

	target := filepath.Join(dir, normalizeFileName(intent.FileName))
	rel := w.relativeToRoot(target)

	if existing, err := os.ReadFile(target); err == nil {
		if intent.ShowDiff {
			w.preview(rel, string(existing), content)
		}
		return Result{}, errors.AlreadyExists(rel)
	}

	if intent.ShowDiff {
		w.preview(rel, "", content)
	}

	ok, err := w.confirm.Confirm(fmt.Sprintf("Write %s?", rel))
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Cancelled: true}, nil
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", rel, err)
	}
	return Result{Path: target}, nil
}

// preview materializes the proposed content as a scratch file (with its
// deletion already scheduled) and renders the diff. Scratch failures
// degrade to rendering from memory; the preview is advisory, the confirm
// gate is not.
func (w *Writer) preview(title, oldContent, newContent string) {
	_, _ = writeScratch(newContent)
	w.diff.Render(title, oldContent, newContent)
}

// FileExists probes a candidate destination before generation so callers
// can pick a different name up front.
func (w *Writer) FileExists(name string, folder Folder) bool {
	target := filepath.Join(folderPath(w.root, folder), normalizeFileName(name))
	_, err := os.Stat(target)
	return err == nil
}

func (w *Writer) relativeToRoot(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
