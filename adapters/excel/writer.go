// Package excel writes assessment records to an Excel workbook using
// excelize. One Summary sheet plus detail sheets for compliance findings
// and recommendations.
package excel

import (
	"fmt"

	"safetycalc/internal/errors"
	"safetycalc/ports"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet         = "Summary"
	complianceSheet      = "Compliance"
	recommendationsSheet = "Recommendations"

	timestampLayout = "2006-01-02 15:04:05"
)

// WorkbookWriter renders ResultRecords into a multi-sheet workbook
type WorkbookWriter struct{}

var _ ports.WorkbookWriter = (*WorkbookWriter)(nil)

// NewWorkbookWriter creates a workbook writer
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// Write builds the workbook and saves it to path
func (w *WorkbookWriter) Write(path string, records []ports.ResultRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	// excelize creates Sheet1 by default; rename it to the summary sheet
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return errors.ExportError("failed to create summary sheet", err)
	}
	if _, err := f.NewSheet(complianceSheet); err != nil {
		return errors.ExportError("failed to create compliance sheet", err)
	}
	if _, err := f.NewSheet(recommendationsSheet); err != nil {
		return errors.ExportError("failed to create recommendations sheet", err)
	}

	if err := w.writeSummary(f, records); err != nil {
		return err
	}
	if err := w.writeCompliance(f, records); err != nil {
		return err
	}
	if err := w.writeRecommendations(f, records); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExportError(fmt.Sprintf("failed to save workbook to %s", path), err)
	}
	return nil
}

// writeSummary writes one row per record: identity columns followed by the
// record's own field labels and values. Field sets differ per engine so the
// labels are written inline rather than as shared headers.
func (w *WorkbookWriter) writeSummary(f *excelize.File, records []ports.ResultRecord) error {
	headers := []string{"ID", "Engine", "Created At", "Title", "Risk"}
	if err := writeRow(f, summarySheet, 1, toInterfaces(headers)); err != nil {
		return err
	}
	for i, rec := range records {
		row := []interface{}{
			string(rec.ID),
			rec.Engine,
			rec.CreatedAt.UTC().Format(timestampLayout),
			rec.Title,
			rec.RiskLabel,
		}
		for _, fld := range rec.Fields {
			row = append(row, fld.Label, fld.Value)
		}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *WorkbookWriter) writeCompliance(f *excelize.File, records []ports.ResultRecord) error {
	headers := []string{"ID", "Engine", "Status", "Finding"}
	if err := writeRow(f, complianceSheet, 1, toInterfaces(headers)); err != nil {
		return err
	}
	rowIdx := 2
	for _, rec := range records {
		for _, v := range rec.Compliance.Violations {
			if err := writeRow(f, complianceSheet, rowIdx, []interface{}{string(rec.ID), rec.Engine, "Violation", v}); err != nil {
				return err
			}
			rowIdx++
		}
		for _, v := range rec.Compliance.Warnings {
			if err := writeRow(f, complianceSheet, rowIdx, []interface{}{string(rec.ID), rec.Engine, "Warning", v}); err != nil {
				return err
			}
			rowIdx++
		}
		for _, v := range rec.Compliance.Compliant {
			if err := writeRow(f, complianceSheet, rowIdx, []interface{}{string(rec.ID), rec.Engine, "Compliant", v}); err != nil {
				return err
			}
			rowIdx++
		}
	}
	return nil
}

func (w *WorkbookWriter) writeRecommendations(f *excelize.File, records []ports.ResultRecord) error {
	headers := []string{"ID", "Engine", "Priority", "Recommendation"}
	if err := writeRow(f, recommendationsSheet, 1, toInterfaces(headers)); err != nil {
		return err
	}
	rowIdx := 2
	for _, rec := range records {
		for i, text := range rec.Recommendations {
			if err := writeRow(f, recommendationsSheet, rowIdx, []interface{}{string(rec.ID), rec.Engine, i + 1, text}); err != nil {
				return err
			}
			rowIdx++
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return errors.ExportError("failed to compute cell coordinates", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return errors.ExportError(fmt.Sprintf("failed to write cell %s on %s", cell, sheet), err)
		}
	}
	return nil
}

func toInterfaces(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
