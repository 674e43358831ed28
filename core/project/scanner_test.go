package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestHasTailwindByConfigFile(t *testing.T) {
	root := t.TempDir()
	assert.False(t, NewScanner(root).HasTailwind())

	writeFile(t, root, "tailwind.config.ts", "export default {}")
	assert.True(t, NewScanner(root).HasTailwind())
}

func TestHasTailwindByPackageDependency(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"devDependencies": {"tailwindcss": "^3.4.0"}}`)
	assert.True(t, NewScanner(root).HasTailwind())

	other := t.TempDir()
	writeFile(t, other, "package.json", `{"dependencies": {"react": "^18.0.0"}}`)
	assert.False(t, NewScanner(other).HasTailwind())
}

func TestHasTailwindIgnoresMalformedPackageJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", "{not json")
	assert.False(t, NewScanner(root).HasTailwind())
}

func TestListComponents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/components/Button.tsx", "export const Button = () => null")
	writeFile(t, root, "src/components/forms/Input.jsx", "export const Input = () => null")
	writeFile(t, root, "src/components/styles.css", "")
	writeFile(t, root, "src/pages/Home.tsx", "export const Home = () => null")

	components := NewScanner(root).ListComponents()
	require.Len(t, components, 2)

	byPath := map[string]string{}
	for _, c := range components {
		byPath[c.Path] = c.Name
	}
	assert.Equal(t, "Button", byPath["src/components/Button.tsx"])
	assert.Equal(t, "Input", byPath["src/components/forms/Input.jsx"])
}

func TestListComponentsSameNameDifferentPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/components/Card.tsx", "")
	writeFile(t, root, "src/components/legacy/Card.tsx", "")

	components := NewScanner(root).ListComponents()
	assert.Len(t, components, 2)
}

func TestListComponentsMissingDir(t *testing.T) {
	assert.Empty(t, NewScanner(t.TempDir()).ListComponents())
}

func TestStyleTokens(t *testing.T) {
	root := t.TempDir()
	assert.True(t, NewScanner(root).StyleTokens().Empty())

	writeFile(t, root, "tailwind.config.js", "module.exports = {}")
	tokens := NewScanner(root).StyleTokens()
	assert.False(t, tokens.Empty())
	assert.Contains(t, tokens, "spacing")
	assert.Contains(t, tokens, "corner-radius")
}
