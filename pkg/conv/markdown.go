package conv

import (
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock | parser.HardLineBreak
	htmlFlags  = html.FlagsNone
	docPolicy  = bluemonday.NewPolicy()
)

func init() {
	docPolicy.AllowElements("p", "br", "b", "strong", "i", "em", "code", "pre", "ul", "ol", "li", "blockquote")
	docPolicy.AllowAttrs("href").OnElements("a")
}

// MarkdownToText renders a markdown docstring as plain terminal text.
// Text without markup comes back unchanged apart from surrounding whitespace.
// Line breaks are kept. Raw HTML is not interpreted, so placeholders such
// as <arg> are printed as written.
func MarkdownToText(md string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}

	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags:          htmlFlags,
		RenderNodeHook: rawHTMLAsText,
	})
	rendered := markdown.Render(p.Parse([]byte(md)), renderer)

	text, err := html2text.FromString(string(docPolicy.SanitizeBytes(rendered)), html2text.Options{
		OmitLinks: true,
	})
	if err != nil {
		return md
	}
	return strings.TrimSpace(text)
}

// rawHTMLAsText renders inline and block HTML as escaped text.
func rawHTMLAsText(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	switch n := node.(type) {
	case *ast.HTMLSpan:
		html.EscapeHTML(w, n.Literal)
		return ast.GoToNext, true
	case *ast.HTMLBlock:
		io.WriteString(w, "<p>")
		html.EscapeHTML(w, n.Literal)
		io.WriteString(w, "</p>\n")
		return ast.GoToNext, true
	}
	return ast.GoToNext, false
}
