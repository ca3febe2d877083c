package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"lector-pages/internal/domain"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// EPUBExtractor extracts the text of an EPUB's spine in reading order.
type EPUBExtractor struct{}

// NewEPUBExtractor creates an EPUB extractor
func NewEPUBExtractor() *EPUBExtractor {
	return &EPUBExtractor{}
}

func (e *EPUBExtractor) Format() domain.Format { return domain.FormatEPUB }

func (e *EPUBExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	rdr, err := epub.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open epub: %w", err)
	}
	if len(rdr.Rootfiles) == 0 {
		return "", fmt.Errorf("no rootfiles found in epub")
	}

	book := rdr.Rootfiles[0]
	chapters := make([]string, 0, len(book.Spine.Itemrefs))
	for _, ref := range book.Spine.Itemrefs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if ref.Item == nil {
			continue
		}
		rc, err := ref.Item.Open()
		if err != nil {
			// Best-effort: skip missing items.
			continue
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		if t := normalizeText(htmlToText(b)); t != "" {
			chapters = append(chapters, t)
		}
	}

	return strings.Join(chapters, "\n\n"), nil
}

var (
	blockTags = map[string]bool{
		"p": true, "div": true, "section": true, "article": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"li": true, "ul": true, "ol": true, "blockquote": true,
	}
	skipTags = map[string]bool{
		"script": true, "style": true, "head": true, "title": true, "nav": true,
	}
)

func htmlToText(b []byte) string {
	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil || doc == nil {
		return ""
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tag := strings.ToLower(n.Data)
			if skipTags[tag] {
				return
			}
			if tag == "br" {
				sb.WriteString("\n")
			}
			if blockTags[tag] {
				sb.WriteString("\n\n")
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") && !strings.HasSuffix(sb.String(), " ") {
					sb.WriteString(" ")
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[strings.ToLower(n.Data)] {
			sb.WriteString("\n\n")
		}
	}
	walk(doc)

	return sb.String()
}

// normalizeText trims lines and collapses runs of blank lines to at most two.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			blank++
			if blank <= 2 {
				out = append(out, "")
			}
			continue
		}
		blank = 0
		out = append(out, t)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
