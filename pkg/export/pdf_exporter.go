package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ituna-edu/portal-api/internal/models"
)

// PDFExporter renders student progress reports into printable PDFs.
type PDFExporter struct {
	schoolName string
}

// NewPDFExporter constructs a PDF exporter branded with the school name.
func NewPDFExporter(schoolName string) *PDFExporter {
	if schoolName == "" {
		schoolName = "Ituna Secondary School"
	}
	return &PDFExporter{schoolName: schoolName}
}

// RenderProgressReport creates a PDF for one report term of a student.
func (e *PDFExporter) RenderProgressReport(student models.Student, report models.ProgressReport) ([]byte, error) {
	if student.Name == "" {
		return nil, fmt.Errorf("student name required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, e.schoolName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Progress Report", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(40, 7, "Student", "", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, student.Name, "", 1, "", false, 0, "")

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(40, 7, "Grade", "", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%d", student.Grade), "", 1, "", false, 0, "")

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(40, 7, "Term", "", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, report.Term, "", 1, "", false, 0, "")

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(40, 7, "Issued", "", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, report.Date, "", 1, "", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Overall Performance", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Overall grade: %d%%    Attendance: %d%%", student.OverallGrade, student.Attendance), "", 1, "", false, 0, "")
	pdf.Ln(4)

	if len(student.AcademicHistory) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Academic Record", "", 1, "", false, 0, "")

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(60, 7, "Subject", "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 7, "Teacher", "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, "Grade", "1", 1, "C", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, record := range student.AcademicHistory[0].Records {
			pdf.CellFormat(60, 7, record.Subject, "1", 0, "", false, 0, "")
			pdf.CellFormat(70, 7, record.Teacher, "1", 0, "", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d", record.Grade), "1", 1, "C", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Teacher Comment", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, report.TeacherComment, "", "", false)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
