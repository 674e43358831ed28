package synth

import (
	"context"
	"errors"
	"testing"

	figerrors "github.com/mkerrigan/figgen/core/errors"
	"github.com/mkerrigan/figgen/core/figma"
	"github.com/mkerrigan/figgen/core/project"
	"github.com/mkerrigan/figgen/core/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	response string
	err      error
	lastReq  *providers.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Synthesize(ctx context.Context, req *providers.Request) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func sampleRequest() GenerationRequest {
	return GenerationRequest{
		Node: &figma.Node{
			ID:   "1:1",
			Name: "Hero Section",
			Type: figma.NodeTypeFrame,
			Children: []*figma.Node{
				{ID: "1:2", Name: "Title", Type: figma.NodeTypeText, Characters: "Hello"},
			},
		},
		Tokens: project.TokenCatalog{"spacing": {"4": "1rem"}},
		Components: []project.Component{
			{Name: "Button", Path: "src/components/Button.tsx"},
		},
	}
}

func TestGenerateStripsFencesAndValidates(t *testing.T) {
	p := &fakeProvider{response: "```tsx\n<div className=\"flex p-4\">Hello</div>\n```"}
	s := NewSynthesizer(p, DefaultOptions())

	markup, err := s.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, `<div className="flex p-4">Hello</div>`, markup)

	require.NotNil(t, p.lastReq)
	assert.Equal(t, SystemInstruction, p.lastReq.System)
}

func TestGenerateRejectsConstraintViolations(t *testing.T) {
	p := &fakeProvider{response: `<div style={{ padding: 16 }} />`}
	s := NewSynthesizer(p, DefaultOptions())

	_, err := s.Generate(context.Background(), sampleRequest())
	var fe *figerrors.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, figerrors.KindValidationRejected, fe.Kind)
	assert.Equal(t, RuleInlineStyle, fe.Rule)
}

func TestGeneratePropagatesBackendFailure(t *testing.T) {
	p := &fakeProvider{err: figerrors.ServiceError("openai", 429, "rate limited")}
	s := NewSynthesizer(p, DefaultOptions())

	_, err := s.Generate(context.Background(), sampleRequest())
	var fe *figerrors.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, figerrors.KindServiceError, fe.Kind)
}

func TestBuildPromptEmbedsContext(t *testing.T) {
	prompt, err := BuildPrompt(sampleRequest())
	require.NoError(t, err)

	assert.Contains(t, prompt, `"name": "Hero Section"`)
	assert.Contains(t, prompt, "- Button (src/components/Button.tsx)")
	assert.Contains(t, prompt, `"spacing"`)
	assert.Contains(t, prompt, "80% visual fidelity")
}

func TestBuildPromptEmptyCatalogs(t *testing.T) {
	req := GenerationRequest{Node: &figma.Node{ID: "1:1", Name: "Frame", Type: figma.NodeTypeFrame}}

	prompt, err := BuildPrompt(req)
	require.NoError(t, err)
	assert.Contains(t, prompt, "none")
	assert.Contains(t, prompt, "{}")
}
