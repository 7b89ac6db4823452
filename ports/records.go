package ports

import (
	"time"

	"safetycalc/domain/core"
)

// Field is one labeled value of a rendered assessment
type Field struct {
	Label string
	Value string
}

// ResultRecord is the presentation-neutral form of any engine result.
// Renderers (excel, markdown, ui) consume records, never typed results.
type ResultRecord struct {
	ID              core.AssessmentID
	Engine          string
	CreatedAt       time.Time
	Title           string
	RiskLabel       string
	Fields          []Field
	Compliance      core.ComplianceReport
	Recommendations core.Recommendations
}

// WorkbookWriter persists records as a spreadsheet workbook
type WorkbookWriter interface {
	Write(path string, records []ResultRecord) error
}

// ReportRenderer renders records as a human-readable document
type ReportRenderer interface {
	Markdown(records []ResultRecord) []byte
	HTML(records []ResultRecord) []byte
}
