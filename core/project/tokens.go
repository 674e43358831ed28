package project

// TokenCatalog maps, per style category, semantic token names to
// platform-formatted values. It is contextual hinting only; the
// generator never treats it as exhaustive.
type TokenCatalog map[string]map[string]string

// Empty reports whether the catalog carries no tokens at all.
func (t TokenCatalog) Empty() bool {
	for _, category := range t {
		if len(category) > 0 {
			return false
		}
	}
	return true
}

// StyleTokens returns the default Tailwind token hints when the project
// uses Tailwind, and an empty catalog otherwise.
func (s *Scanner) StyleTokens() TokenCatalog {
	if !s.HasTailwind() {
		return TokenCatalog{}
	}
	return defaultTailwindTokens()
}

func defaultTailwindTokens() TokenCatalog {
	return TokenCatalog{
		"spacing": {
			"1": "0.25rem",
			"2": "0.5rem",
			"4": "1rem",
			"6": "1.5rem",
			"8": "2rem",
		},
		"color": {
			"slate-500": "#64748b",
			"gray-900":  "#111827",
			"white":     "#ffffff",
			"blue-500":  "#3b82f6",
			"red-500":   "#ef4444",
		},
		"font-size": {
			"text-sm":   "0.875rem",
			"text-base": "1rem",
			"text-lg":   "1.125rem",
			"text-xl":   "1.25rem",
		},
		"corner-radius": {
			"rounded":      "0.25rem",
			"rounded-md":   "0.375rem",
			"rounded-lg":   "0.5rem",
			"rounded-full": "9999px",
		},
	}
}
