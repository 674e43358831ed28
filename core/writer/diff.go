package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// scratchTTL is how long preview scratch files live before best-effort
// deletion.
const scratchTTL = 30 * time.Second

// DiffRenderer renders old-vs-new previews to a terminal stream.
type DiffRenderer struct {
	out io.Writer

	added   *color.Color
	removed *color.Color
	header  *color.Color
}

// NewDiffRenderer builds a renderer writing to out.
func NewDiffRenderer(out io.Writer) *DiffRenderer {
	return &DiffRenderer{
		out:     out,
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		header:  color.New(color.FgCyan, color.Bold),
	}
}

// Render prints a line diff between old and new content under the given
// title. Old is empty for a brand-new file, which shows the first
// version as pure addition.
func (r *DiffRenderer) Render(title, oldContent, newContent string) {
	r.header.Fprintf(r.out, "--- %s\n", title)

	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				r.added.Fprintf(r.out, "+ %s\n", line)
			case diffmatchpatch.DiffDelete:
				r.removed.Fprintf(r.out, "- %s\n", line)
			default:
				fmt.Fprintf(r.out, "  %s\n", line)
			}
		}
	}
}

func splitLines(text string) []string {
	trimmed := strings.TrimSuffix(text, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// writeScratch materializes preview content as a scratch file and
// schedules its deletion. Deletion failures are swallowed; scratch
// cleanup must never surface to the user.
func writeScratch(content string) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("figgen-%s.tsx", uuid.NewString()))
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", err
	}
	time.AfterFunc(scratchTTL, func() {
		_ = os.Remove(path)
	})
	return path, nil
}
