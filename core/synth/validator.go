package synth

import (
	"regexp"
	"strings"

	"github.com/mkerrigan/figgen/core/errors"
)

// Validation rule names, surfaced verbatim to the user so they know
// exactly which constraint the generated output violated.
const (
	RuleEmptyOutput      = "empty-output"
	RuleNoMarkup         = "no-markup"
	RuleInlineStyle      = "inline-style"
	RuleStyleBlock       = "style-block"
	RuleCSSInJS          = "css-in-js"
	RuleCSSSyntaxInClass = "css-syntax-in-class"
	RuleStylesheetImport = "stylesheet-import"
)

var (
	markupElementPattern = regexp.MustCompile(`<[A-Za-z][A-Za-z0-9.]*[\s/>]`)

	// Inline per-element style attributes, object or string form.
	inlineStylePattern = regexp.MustCompile("(?:^|[\\s<{(\"'])style\\s*=\\s*[{\"']")

	styleBlockPattern = regexp.MustCompile(`<style[\s>]`)

	// CSS-in-JS authoring: runtime styled-component constructors,
	// template-literal style blocks, styling-hook factories.
	cssInJSPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bstyled\s*[.(]`),
		regexp.MustCompile("\\bcss\\s*`"),
		regexp.MustCompile(`\b(?:makeStyles|createUseStyles|createGlobalStyle|injectGlobal)\s*\(`),
	}

	classValuePattern = regexp.MustCompile("(?:className|class)\\s*=\\s*\\{?\\s*[\"'`]([^\"'`]*)[\"'`]")

	// Stylesheet files, CSS modules, dynamic stylesheet requires.
	stylesheetImportPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*import\s+[^\n]*['"][^'"]+\.(?:css|scss|sass|less)['"]`),
		regexp.MustCompile(`['"][^'"]+\.module\.(?:css|scss|sass|less)['"]`),
		regexp.MustCompile(`\brequire\s*\(\s*['"][^'"]+\.(?:css|scss|sass|less)['"]`),
	}
)

// Validate runs the ordered gate over cleaned output and fails closed:
// the first violated rule short-circuits the rest. Only output that
// survives every check may be written.
func Validate(markup string) error {
	if strings.TrimSpace(markup) == "" {
		return errors.ValidationRejected(RuleEmptyOutput, "the backend returned no content")
	}

	if !markupElementPattern.MatchString(markup) {
		return errors.ValidationRejected(RuleNoMarkup, "output contains no markup elements")
	}

	if loc := inlineStylePattern.FindString(markup); loc != "" {
		return errors.ValidationRejected(RuleInlineStyle, "inline style attributes are not allowed")
	}

	if styleBlockPattern.MatchString(markup) {
		return errors.ValidationRejected(RuleStyleBlock, "raw <style> blocks are not allowed")
	}

	for _, p := range cssInJSPatterns {
		if m := p.FindString(markup); m != "" {
			return errors.ValidationRejected(RuleCSSInJS, "CSS-in-JS is not allowed: "+strings.TrimSpace(m))
		}
	}

	for _, m := range classValuePattern.FindAllStringSubmatch(markup, -1) {
		if strings.ContainsAny(m[1], ":;") {
			return errors.ValidationRejected(RuleCSSSyntaxInClass,
				"class value contains CSS syntax instead of bare utility tokens: "+m[1])
		}
	}

	for _, p := range stylesheetImportPatterns {
		if m := p.FindString(markup); m != "" {
			return errors.ValidationRejected(RuleStylesheetImport, "stylesheet imports are not allowed: "+strings.TrimSpace(m))
		}
	}

	return nil
}
