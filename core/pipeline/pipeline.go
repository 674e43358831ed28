// Package pipeline sequences one end-to-end generation request: project
// scan, layout fetch, synthesis, safe write. The chain is strictly
// sequential and the first failure aborts the rest.
package pipeline

import (
	"context"

	"github.com/mkerrigan/figgen/core/figma"
	"github.com/mkerrigan/figgen/core/project"
	"github.com/mkerrigan/figgen/core/synth"
	"github.com/mkerrigan/figgen/core/writer"
)

// LayoutFetcher retrieves a layout subtree for a parsed reference.
type LayoutFetcher interface {
	FetchLayout(ctx context.Context, ref figma.Reference) (*figma.Node, error)
}

// Generator produces validated markup for a generation request.
type Generator interface {
	Generate(ctx context.Context, req synth.GenerationRequest) (string, error)
}

// FileWriter lands content under the destination project.
type FileWriter interface {
	Write(content string, intent writer.Intent) (writer.Result, error)
}

// Pipeline wires the collaborators for one invocation. Configuration is
// read fresh by the caller on every run; nothing here survives between
// invocations.
type Pipeline struct {
	scanner  *project.Scanner
	fetcher  LayoutFetcher
	gen      Generator
	writer   FileWriter
	progress func(stage string)

	// NameOverride replaces the derived file name when set.
	NameOverride string

	// ShowDiff turns the write preview on. Off in the default flow; the
	// confirm prompt already gates the mutation.
	ShowDiff bool
}

// New builds a Pipeline. progress may be nil.
func New(scanner *project.Scanner, fetcher LayoutFetcher, gen Generator, fw FileWriter, progress func(string)) *Pipeline {
	if progress == nil {
		progress = func(string) {}
	}
	return &Pipeline{
		scanner:  scanner,
		fetcher:  fetcher,
		gen:      gen,
		writer:   fw,
		progress: progress,
	}
}

// Run executes one generation request against the given layout
// reference. Errors come back already classified; the caller only picks
// the matching remediation.
func (p *Pipeline) Run(ctx context.Context, reference string) (writer.Result, error) {
	p.progress("scanning project")
	tokens := p.scanner.StyleTokens()
	components := p.scanner.ListComponents()

	p.progress("fetching layout")
	ref, err := figma.ParseReference(reference)
	if err != nil {
		return writer.Result{}, err
	}
	node, err := p.fetcher.FetchLayout(ctx, ref)
	if err != nil {
		return writer.Result{}, err
	}

	p.progress("generating markup")
	markup, err := p.gen.Generate(ctx, synth.GenerationRequest{
		Node:       node,
		Tokens:     tokens,
		Components: components,
	})
	if err != nil {
		return writer.Result{}, err
	}

	p.progress("writing component")
	name := p.NameOverride
	if name == "" {
		name = DeriveFileName(node.Name)
	}
	intent := writer.Intent{
		FileName: name,
		Folder:   writer.DetermineTargetFolder(p.scanner.Root()),
		ShowDiff: p.ShowDiff,
	}
	return p.writer.Write(markup, intent)
}
