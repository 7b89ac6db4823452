package report

import (
	"strings"
	"testing"
	"time"

	"safetycalc/domain/core"
	"safetycalc/ports"
)

func sampleRecord() ports.ResultRecord {
	rec := ports.ResultRecord{
		ID:        "rec-1",
		Engine:    "noise-exposure",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Title:     "Noise exposure at 95 dBA",
		RiskLabel: "High Risk",
		Fields: []ports.Field{
			{Label: "Daily dose", Value: "200.0%"},
			{Label: "TWA", Value: "95.0 dBA"},
		},
		Recommendations: core.Recommendations{
			"Implement hearing conservation program",
			"Provide hearing protection",
		},
	}
	rec.Compliance.AddViolation("Exposure exceeds permissible limit")
	rec.Compliance.AddWarning("Approaching action level")
	rec.Compliance.AddCompliant("Audiometric testing scheduled")
	return rec
}

// ============================================================
// Markdown rendering
// ============================================================

func TestMarkdownContainsRecordSections(t *testing.T) {
	md := string(NewRenderer().Markdown([]ports.ResultRecord{sampleRecord()}))

	for _, want := range []string{
		"# Safety Assessment Report",
		"## Noise exposure at 95 dBA",
		"**Engine:** noise-exposure",
		"**Risk:** High Risk",
		"| Daily dose | 200.0% |",
		"| TWA | 95.0 dBA |",
		"### Compliance",
		"❌ Exposure exceeds permissible limit",
		"⚠️ Approaching action level",
		"✅ Audiometric testing scheduled",
		"### Recommendations",
		"1. Implement hearing conservation program",
		"2. Provide hearing protection",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownEmptyRecordList(t *testing.T) {
	md := string(NewRenderer().Markdown(nil))
	if !strings.Contains(md, "No assessments to report.") {
		t.Errorf("empty report should carry the placeholder line, got:\n%s", md)
	}
}

func TestMarkdownOmitsEmptyComplianceSection(t *testing.T) {
	rec := sampleRecord()
	rec.Compliance = core.ComplianceReport{}
	md := string(NewRenderer().Markdown([]ports.ResultRecord{rec}))
	if strings.Contains(md, "### Compliance") {
		t.Error("compliance section should be omitted when the report is empty")
	}
}

func TestMarkdownPreservesRecordOrder(t *testing.T) {
	first := sampleRecord()
	first.Title = "First assessment"
	second := sampleRecord()
	second.Title = "Second assessment"

	md := string(NewRenderer().Markdown([]ports.ResultRecord{first, second}))
	if strings.Index(md, "First assessment") > strings.Index(md, "Second assessment") {
		t.Error("records should render in input order")
	}
}

// ============================================================
// HTML rendering
// ============================================================

func TestHTMLRendersHeadingsAndTables(t *testing.T) {
	html := string(NewRenderer().HTML([]ports.ResultRecord{sampleRecord()}))

	if !strings.Contains(html, "<h2") {
		t.Error("HTML output should contain record headings")
	}
	if !strings.Contains(html, "<table>") {
		t.Error("HTML output should render the metrics table")
	}
	if !strings.Contains(html, "Noise exposure at 95 dBA") {
		t.Error("HTML output should carry the record title")
	}
}
