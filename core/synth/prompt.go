package synth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

// SystemInstruction is the fixed system-level instruction. Prompting
// alone cannot be trusted to hold these constraints; the validator
// re-checks every one of them.
var SystemInstruction = strings.TrimSpace(dedent.Dedent(`
	You are an expert front-end engineer converting Figma layouts into React components.
	You style exclusively with Tailwind utility classes inside className attributes.
	You never use inline style attributes, <style> blocks, styled-components, CSS-in-JS,
	CSS modules, or stylesheet imports of any kind.
	Respond with the JSX component source only. No explanations, no commentary.
`))

var promptTemplate = dedent.Dedent(`
	Convert the following Figma layout into a single React component styled with Tailwind utility classes.

	Layout tree (Figma JSON):
	%s

	Reusable components already in this project:
	%s

	Tailwind style tokens available (hints, not exhaustive):
	%s

	Rules:
	- Reuse a listed component when a layout node clearly matches it, importing it from its listed path.
	- Infer flexbox (or grid) from each container's auto-layout: layoutMode, axis alignment, padding, itemSpacing, wrap.
	- Map every pixel measurement to the nearest allowed Tailwind class; never invent arbitrary values.
	- Target roughly 80%% visual fidelity. Approximation is expected; exactness is not.
`)

// BuildPrompt composes the user instruction from a generation request.
func BuildPrompt(req GenerationRequest) (string, error) {
	tree, err := json.MarshalIndent(req.Node, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal layout tree: %w", err)
	}

	catalog := "none"
	if len(req.Components) > 0 {
		var b strings.Builder
		for _, c := range req.Components {
			fmt.Fprintf(&b, "- %s (%s)\n", c.Name, c.Path)
		}
		catalog = strings.TrimRight(b.String(), "\n")
	}

	tokens := "{}"
	if !req.Tokens.Empty() {
		data, err := json.MarshalIndent(req.Tokens, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal style tokens: %w", err)
		}
		tokens = string(data)
	}

	return strings.TrimSpace(fmt.Sprintf(promptTemplate, tree, catalog, tokens)), nil
}

// StripFences removes one surrounding markdown code fence, with or
// without a language tag, leaving anything else untouched.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}
	if strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return trimmed
	}
	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
