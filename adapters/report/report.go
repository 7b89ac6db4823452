// Package report renders assessment records as markdown and, via gomarkdown,
// as HTML fragments for the demo UI.
package report

import (
	"fmt"
	"strings"

	"safetycalc/ports"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Renderer builds markdown and HTML views over flattened records
type Renderer struct{}

var _ ports.ReportRenderer = (*Renderer)(nil)

// NewRenderer creates a report renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Markdown renders records as a single markdown document, one section per
// record in input order
func (r *Renderer) Markdown(records []ports.ResultRecord) []byte {
	var b strings.Builder
	b.WriteString("# Safety Assessment Report\n\n")
	if len(records) == 0 {
		b.WriteString("No assessments to report.\n")
		return []byte(b.String())
	}

	for _, rec := range records {
		writeRecord(&b, rec)
	}
	return []byte(b.String())
}

// HTML converts the markdown rendering to an HTML fragment
func (r *Renderer) HTML(records []ports.ResultRecord) []byte {
	md := r.Markdown(records)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(md, p, renderer)
}

func writeRecord(b *strings.Builder, rec ports.ResultRecord) {
	fmt.Fprintf(b, "## %s\n\n", rec.Title)
	fmt.Fprintf(b, "- **Engine:** %s\n", rec.Engine)
	fmt.Fprintf(b, "- **Assessment ID:** %s\n", rec.ID)
	fmt.Fprintf(b, "- **Assessed:** %s\n", rec.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(b, "- **Risk:** %s\n\n", rec.RiskLabel)

	if len(rec.Fields) > 0 {
		b.WriteString("| Metric | Value |\n|---|---|\n")
		for _, f := range rec.Fields {
			fmt.Fprintf(b, "| %s | %s |\n", f.Label, f.Value)
		}
		b.WriteString("\n")
	}

	writeCompliance(b, rec)

	if len(rec.Recommendations) > 0 {
		b.WriteString("### Recommendations\n\n")
		for i, text := range rec.Recommendations {
			fmt.Fprintf(b, "%d. %s\n", i+1, text)
		}
		b.WriteString("\n")
	}
}

func writeCompliance(b *strings.Builder, rec ports.ResultRecord) {
	c := rec.Compliance
	if len(c.Violations) == 0 && len(c.Warnings) == 0 && len(c.Compliant) == 0 {
		return
	}
	b.WriteString("### Compliance\n\n")
	for _, v := range c.Violations {
		fmt.Fprintf(b, "- ❌ %s\n", v)
	}
	for _, w := range c.Warnings {
		fmt.Fprintf(b, "- ⚠️ %s\n", w)
	}
	for _, ok := range c.Compliant {
		fmt.Fprintf(b, "- ✅ %s\n", ok)
	}
	b.WriteString("\n")
}
