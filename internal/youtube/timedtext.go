package youtube

import (
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// timedtext mirrors the caption XML served from a track's baseUrl:
//
//	<transcript><text start="0.0" dur="2.5">hello</text>...</transcript>
type timedtext struct {
	Texts []timedtextNode `xml:"text"`
}

type timedtextNode struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	// innerxml keeps inline markup like <i> intact; entities stay escaped
	// until unescaped below.
	Body string `xml:",innerxml"`
}

var markupPattern = regexp.MustCompile(`<[^>]+>`)

// parseTimedtext converts caption XML into snippets, preserving start and
// duration verbatim. With preserveFormatting false, inline HTML-style markup
// is stripped from each line; otherwise the text is left intact. Lines that
// are empty after cleanup are dropped.
func parseTimedtext(data []byte, preserveFormatting bool) ([]Snippet, error) {
	var tt timedtext
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}

	snippets := make([]Snippet, 0, len(tt.Texts))
	for _, n := range tt.Texts {
		text := n.Body
		if !preserveFormatting {
			text = markupPattern.ReplaceAllString(text, "")
		}
		text = strings.TrimSpace(html.UnescapeString(text))
		if text == "" {
			continue
		}
		snippets = append(snippets, Snippet{Text: text, Start: n.Start, Duration: n.Dur})
	}
	return snippets, nil
}
