// Package synth turns a fetched layout subtree into validated JSX markup
// styled only with Tailwind utility classes. The generative backend is
// untrusted free text; the validator here is the enforcement boundary.
package synth

import (
	"github.com/mkerrigan/figgen/core/figma"
	"github.com/mkerrigan/figgen/core/project"
)

// GenerationRequest is the immutable bundle passed once into synthesis.
// It is not persisted beyond the single request/response cycle.
type GenerationRequest struct {
	// Node is the root of the layout subtree to convert.
	Node *figma.Node

	// Tokens are contextual style hints; empty when the destination
	// project reports no utility-class usage.
	Tokens project.TokenCatalog

	// Components are reusable components already in the project.
	Components []project.Component
}
