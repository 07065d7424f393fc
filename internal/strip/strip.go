// Package strip blanks out CSS comments and HTML comment markers while
// keeping line numbers stable.
package strip

import "regexp"

var patterns []*regexp.Regexp

func init() {
	raw := []string{
		// Block comments, possibly spanning lines
		`/\*[\s\S]*?\*/`,
		// Unterminated block comment runs to the end of input
		`/\*[\s\S]*$`,
		// CDO/CDC tokens left over from <style> blocks
		`<!--|-->`,
	}
	for _, r := range raw {
		patterns = append(patterns, regexp.MustCompile(r))
	}
}

// Comments replaces comments in text with spaces. Newlines inside a
// comment are kept so offsets map to the same line before and after.
func Comments(text string) string {
	for _, p := range patterns {
		text = p.ReplaceAllStringFunc(text, blank)
	}
	return text
}

func blank(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] != '\n' {
			b[i] = ' '
		}
	}
	return string(b)
}
