package stylesheet

import (
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/dshills/specificity/internal/specificity"
	"github.com/dshills/specificity/internal/strip"
)

// Conditional group at-rules whose blocks hold ordinary style rules.
// Every other at-rule block is skipped.
var groupingRules = []string{"media", "supports", "document", "layer", "container"}

var importantPattern = regexp.MustCompile(`(?i)\s*!\s*important\s*$`)

type parser struct {
	src      string
	i        int
	newlines []int
	order    int
	rules    []Rule
}

// Parse strips comments from raw and returns one Rule per selector in
// source order. Malformed input is skipped, never rejected.
func Parse(raw string) []Rule {
	p := &parser{src: strip.Comments(raw)}
	for i := 0; i < len(p.src); i++ {
		if p.src[i] == '\n' {
			p.newlines = append(p.newlines, i)
		}
	}
	p.block("", false)
	return p.rules
}

func (p *parser) line(offset int) int {
	return sort.SearchInts(p.newlines, offset) + 1
}

func (p *parser) whitespace() {
	for p.i < len(p.src) && unicode.IsSpace(rune(p.src[p.i])) {
		p.i++
	}
}

// block reads rules until the end of input, or until the closing brace
// of the enclosing group when nested.
func (p *parser) block(media string, nested bool) {
	for {
		p.whitespace()
		if p.i >= len(p.src) {
			return
		}
		switch p.src[p.i] {
		case '}':
			if nested {
				return
			}
			p.i++
		case '@':
			p.atRule(media)
		default:
			p.styleRule(media)
		}
	}
}

func (p *parser) styleRule(media string) {
	start := p.i
	prelude, stop := p.until("{;}")
	switch stop {
	case ';':
		p.i++
		return
	case '}', 0:
		return
	}
	p.i++
	body, _ := p.until("}")
	if p.i < len(p.src) {
		p.i++
	}

	decls := parseDeclarations(body)
	for _, sel := range splitTop(prelude, ',') {
		text := strings.Join(strings.Fields(sel.text), " ")
		p.rules = append(p.rules, Rule{
			Selector:     text,
			Specificity:  specificity.FromSelector(text),
			Media:        media,
			Line:         p.line(start + sel.offset),
			Order:        p.order,
			Declarations: slices.Clone(decls),
		})
		p.order++
	}
}

func (p *parser) atRule(media string) {
	p.i++
	prelude, stop := p.until("{;}")
	switch stop {
	case ';':
		p.i++
		return
	case '}', 0:
		return
	}
	p.i++

	if !slices.Contains(groupingRules, atRuleName(prelude)) {
		p.skipBlock()
		return
	}
	cond := "@" + strings.Join(strings.Fields(prelude), " ")
	if media != "" {
		cond = media + " " + cond
	}
	p.block(cond, true)
	if p.i < len(p.src) {
		p.i++
	}
}

// skipBlock consumes input up to and including the brace that closes the
// block just opened.
func (p *parser) skipBlock() {
	depth := 1
	for depth > 0 {
		_, stop := p.until("{}")
		if stop == 0 {
			return
		}
		if stop == '{' {
			depth++
		} else {
			depth--
		}
		p.i++
	}
}

// until advances to the next byte in stops that is outside quotes,
// parentheses and brackets. It returns the text consumed and the stop
// byte, or 0 at end of input.
func (p *parser) until(stops string) (string, byte) {
	start := p.i
	depth := 0
	for p.i < len(p.src) {
		ch := p.src[p.i]
		switch {
		case ch == '"' || ch == '\'':
			p.skipString(ch)
			continue
		case ch == '\\':
			p.i += 2
			continue
		case ch == '(' || ch == '[':
			depth++
		case (ch == ')' || ch == ']') && depth > 0:
			depth--
		case depth == 0 && strings.IndexByte(stops, ch) >= 0:
			return p.src[start:p.i], ch
		}
		p.i++
	}
	p.i = len(p.src)
	return p.src[start:], 0
}

func (p *parser) skipString(quote byte) {
	p.i++
	for p.i < len(p.src) {
		switch p.src[p.i] {
		case '\\':
			p.i += 2
			continue
		case quote, '\n':
			p.i++
			return
		}
		p.i++
	}
}

func atRuleName(prelude string) string {
	end := strings.IndexFunc(prelude, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-')
	})
	if end < 0 {
		end = len(prelude)
	}
	return strings.ToLower(prelude[:end])
}

func parseDeclarations(body string) []Declaration {
	var decls []Declaration
	for _, part := range splitTop(body, ';') {
		idx := strings.IndexByte(part.text, ':')
		if idx <= 0 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(part.text[:idx]))
		val := strings.TrimSpace(part.text[idx+1:])
		important := false
		if loc := importantPattern.FindStringIndex(val); loc != nil {
			important = true
			val = strings.TrimSpace(val[:loc[0]])
		}
		if prop == "" || val == "" {
			continue
		}
		decls = append(decls, Declaration{Property: prop, Value: val, Important: important})
	}
	return decls
}

type piece struct {
	text   string
	offset int
}

// splitTop splits s on sep where sep is outside quotes, parentheses and
// brackets. Blank pieces are dropped; offsets point at the trimmed text.
func splitTop(s string, sep byte) []piece {
	var out []piece
	var quote byte
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == '\\':
			i++
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '(' || ch == '[':
			depth++
		case (ch == ')' || ch == ']') && depth > 0:
			depth--
		case ch == sep && depth == 0:
			out = appendPiece(out, s, start, i)
			start = i + 1
		}
	}
	if start < len(s) {
		out = appendPiece(out, s, start, len(s))
	}
	return out
}

func appendPiece(out []piece, s string, start, end int) []piece {
	text := s[start:end]
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return out
	}
	return append(out, piece{text: trimmed, offset: start + strings.Index(text, trimmed)})
}
