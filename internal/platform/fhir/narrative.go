package fhir

import "strings"

// escapeXHTML escapes the characters that are structural in XHTML. Quotes and
// apostrophes are left alone so that disclaimer text survives byte-for-byte
// inside the narrative div.
func escapeXHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// NewNarrative builds a generated narrative whose div contains one paragraph
// per input string, in order. Empty paragraphs are skipped.
func NewNarrative(paragraphs ...string) *Narrative {
	var b strings.Builder
	b.WriteString(`<div xmlns="http://www.w3.org/1999/xhtml">`)
	for _, p := range paragraphs {
		if p == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(escapeXHTML(p))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
	return &Narrative{Status: "generated", Div: b.String()}
}

// ReportNarrative builds the narrative for a DiagnosticReport: a title, the
// finding lines as a list, and the limitations disclaimer verbatim in its own
// paragraph. The disclaimer must never be paraphrased or dropped here.
func ReportNarrative(title string, lines []string, limitations string) *Narrative {
	var b strings.Builder
	b.WriteString(`<div xmlns="http://www.w3.org/1999/xhtml">`)
	if title != "" {
		b.WriteString("<h1>")
		b.WriteString(escapeXHTML(title))
		b.WriteString("</h1>")
	}
	if len(lines) > 0 {
		b.WriteString("<ul>")
		for _, line := range lines {
			b.WriteString("<li>")
			b.WriteString(escapeXHTML(line))
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}
	if limitations != "" {
		b.WriteString("<p>")
		b.WriteString(escapeXHTML(limitations))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
	return &Narrative{Status: "generated", Div: b.String()}
}
