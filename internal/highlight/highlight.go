// Package highlight classifies editor text into the span classes the IDE
// overlay paints: comments, strings, numbers, keywords and builtins.
package highlight

import (
	"html"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

type Class string

const (
	Plain   Class = ""
	Comment Class = "com"
	String  Class = "str"
	Number  Class = "num"
	Keyword Class = "kw"
	Builtin Class = "fn"
)

// Span is a run of text sharing one class.
type Span struct {
	Class Class  `json:"class,omitempty"`
	Text  string `json:"text"`
}

var keywords = set(
	"and", "break", "do", "else", "elseif", "end", "false", "for", "function", "goto", "if", "in",
	"local", "nil", "not", "or", "repeat", "return", "then", "true", "until", "while",
)

var builtins = set(
	"print", "warn", "error", "require", "pairs", "ipairs", "next", "type", "tostring", "tonumber",
	"assert", "pcall", "xpcall",
	"Instance", "Vector3", "CFrame", "UDim2", "Color3", "Enum",
	"game", "workspace", "script", "Players", "ReplicatedStorage",
)

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Tokens splits src into classed spans. Concatenating every Span.Text
// gives back src exactly.
func Tokens(src string) []Span {
	if spans, ok := chromaTokens(src); ok {
		return spans
	}
	return regexTokens(src)
}

func chromaTokens(src string) ([]Span, bool) {
	lexer := lexers.Get("lua")
	if lexer == nil {
		return nil, false
	}
	// EnsureLF is left off so CRLF input round-trips byte for byte.
	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, src)
	if err != nil {
		return nil, false
	}

	var b spanBuilder
	for _, tok := range it.Tokens() {
		b.add(classify(tok), tok.Value)
	}
	spans := b.spans
	// chroma may append a newline the source did not have
	if n := len(spans); n > 0 && !strings.HasSuffix(src, "\n") {
		last := &spans[n-1]
		if strings.HasSuffix(last.Text, "\n") {
			last.Text = strings.TrimSuffix(last.Text, "\n")
			if last.Text == "" {
				spans = spans[:n-1]
			}
		}
	}
	return spans, true
}

func classify(tok chroma.Token) Class {
	switch {
	case tok.Type.InCategory(chroma.Comment):
		return Comment
	case tok.Type.InSubCategory(chroma.LiteralString):
		return String
	case tok.Type.InSubCategory(chroma.LiteralNumber):
		return Number
	case keywords[tok.Value]:
		return Keyword
	case builtins[tok.Value]:
		return Builtin
	}
	return Plain
}

var tokenRe = regexp.MustCompile(`(?m)--.*$|"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'|\b\d+(?:\.\d+)?\b|\b[A-Za-z_]\w*\b`)

// regexTokens is the fallback when chroma cannot tokenise src.
func regexTokens(src string) []Span {
	var b spanBuilder
	last := 0
	for _, m := range tokenRe.FindAllStringIndex(src, -1) {
		b.add(Plain, src[last:m[0]])
		tok := src[m[0]:m[1]]
		var c Class
		switch {
		case strings.HasPrefix(tok, "--"):
			c = Comment
		case tok[0] == '"' || tok[0] == '\'':
			c = String
		case tok[0] >= '0' && tok[0] <= '9':
			c = Number
		case keywords[tok]:
			c = Keyword
		case builtins[tok]:
			c = Builtin
		}
		b.add(c, tok)
		last = m[1]
	}
	b.add(Plain, src[last:])
	return b.spans
}

type spanBuilder struct {
	spans []Span
}

func (b *spanBuilder) add(c Class, text string) {
	if text == "" {
		return
	}
	if n := len(b.spans); n > 0 && b.spans[n-1].Class == c {
		b.spans[n-1].Text += text
		return
	}
	b.spans = append(b.spans, Span{Class: c, Text: text})
}

// HTML renders spans as escaped markup for the overlay layer.
func HTML(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Class == Plain {
			sb.WriteString(html.EscapeString(s.Text))
			continue
		}
		sb.WriteString(`<span class="t-`)
		sb.WriteString(string(s.Class))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(s.Text))
		sb.WriteString(`</span>`)
	}
	return sb.String()
}

// Suggestion is one entry of the editor's quick-insert bar.
type Suggestion struct {
	Label  string `json:"label"`
	Insert string `json:"insert"`
}

// Suggestions returns the quick-insert snippets in display order.
func Suggestions() []Suggestion {
	return []Suggestion{
		{Label: "local", Insert: "local "},
		{Label: "function", Insert: "function "},
		{Label: "end", Insert: "end"},
		{Label: "if then end", Insert: "if  then\n\t\nend"},
		{Label: `print("...")`, Insert: `print("")`},
		{Label: `warn("...")`, Insert: `warn("")`},
		{Label: "Instance.new", Insert: "local part = Instance.new(\"Part\")\npart.Parent = workspace\n"},
	}
}
