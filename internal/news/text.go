package news

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlainText strips markup from s, unescapes entities and collapses whitespace.
// Some sources put HTML fragments into descriptions. Tags that are not HTML
// elements and unterminated tags are kept as text, so "x<y" survives.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseSpaces(s)
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			// An unterminated tag at the end is returned as raw bytes
			if tokenizer.Err() == io.EOF && skip == 0 {
				sb.WriteString(html.UnescapeString(string(tokenizer.Raw())))
			}
			return collapseSpaces(sb.String())
		}

		if tt == html.StartTagToken || tt == html.EndTagToken || tt == html.SelfClosingTagToken {
			name, _ := tokenizer.TagName()
			if atom.Lookup(name) == 0 {
				if skip == 0 {
					sb.WriteString(html.UnescapeString(string(tokenizer.Raw())))
				}
				continue
			}

			switch tt {
			case html.StartTagToken:
				switch string(name) {
				case "script", "style":
					skip++
				case "br", "p", "div", "li":
					sb.WriteByte(' ')
				}
			case html.EndTagToken:
				switch string(name) {
				case "script", "style":
					if skip > 0 {
						skip--
					}
				case "p", "div", "li":
					sb.WriteByte(' ')
				}
			default:
				sb.WriteByte(' ')
			}
			continue
		}

		if tt == html.TextToken && skip == 0 {
			sb.Write(tokenizer.Text())
		}
	}
}

// unescapeText decodes entities and collapses whitespace without touching markup
func unescapeText(s string) string {
	return collapseSpaces(html.UnescapeString(s))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
