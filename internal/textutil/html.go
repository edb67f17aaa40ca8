package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Named entities the upstream API leaves unescaped inside JSON strings.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&lt;", "<",
	"&gt;", ">",
	"&ldquo;", `"`,
	"&rdquo;", `"`,
	"&lsquo;", "'",
	"&rsquo;", "'",
	"&sect;", "§",
	"&para;", "¶",
	"&mdash;", "—",
	"&ndash;", "-",
	" ", " ",
)

var (
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
	lineSpaceRe  = regexp.MustCompile(`[ \t]+`)
)

// Elements that terminate a visual block; their boundaries become newlines
// so paragraph structure survives stripping.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "blockquote": true,
	"li": true, "tr": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "pre": true,
}

// StripHTML converts judgment markup to plain text, preserving paragraph
// breaks. Line-break and block-closing tags become newlines, every other
// tag is removed, entities are decoded, and repeated blank lines and
// horizontal whitespace collapse.
func StripHTML(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// Malformed beyond parsing: fall back to naive tag removal.
		return Clean(regexp.MustCompile(`<[^>]*>`).ReplaceAllString(markup, " "))
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "br":
				buf.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteString("\n\n")
		}
	}
	walk(doc)

	return Clean(buf.String())
}

// Clean decodes leftover entities and collapses whitespace without
// disturbing paragraph breaks.
func Clean(text string) string {
	text = entityReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = lineSpaceRe.ReplaceAllString(text, " ")

	// Trim spaces around line breaks, then collapse blank-line runs.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// Block is a paragraph-level slice of the original markup, keeping the
// structural id attribute (when present) alongside the stripped text.
type Block struct {
	ID   string // id attribute from the source element, e.g. "p_14"
	Text string
}

// Blocks splits judgment markup into paragraph-level blocks before
// stripping, so structural paragraph ids survive for numbering.
func Blocks(markup string) []Block {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return []Block{{Text: StripHTML(markup)}}
	}

	var blocks []Block
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "p" || n.Data == "blockquote") {
			var id string
			for _, attr := range n.Attr {
				if attr.Key == "id" || attr.Key == "data-structure" {
					id = attr.Val
					break
				}
			}
			text := Clean(nodeText(n))
			if text != "" {
				blocks = append(blocks, Block{ID: id, Text: text})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(blocks) == 0 {
		if text := StripHTML(markup); text != "" {
			for _, para := range strings.Split(text, "\n\n") {
				if para = strings.TrimSpace(para); para != "" {
					blocks = append(blocks, Block{Text: para})
				}
			}
		}
	}
	return blocks
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
