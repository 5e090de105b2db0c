package bankacct

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// PDFStatement is a LineSink that lays out rendered history lines on A4 pages.
// Nothing is written until Output is called.
type PDFStatement struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	lines int
}

var (
	_ LineSink = (*PDFStatement)(nil)
)

func NewPDFStatement(title string) *PDFStatement {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	// core fonts are cp1252; the translator maps UTF-8 symbols such as € into it
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}
	pdf.SetFont("Courier", "", 10)
	return &PDFStatement{
		pdf: pdf,
		tr:  tr,
	}
}

func (s *PDFStatement) WriteLine(text string) {
	border := ""
	if s.lines == 0 {
		border = "B"
	}
	s.pdf.CellFormat(0, 6, s.tr(text), border, 1, "L", false, 0, "")
	s.lines++
}

// Lines reports how many lines have been written so far.
func (s *PDFStatement) Lines() int {
	return s.lines
}

// Output closes the document and writes it to w.
func (s *PDFStatement) Output(w io.Writer) error {
	return s.pdf.Output(w)
}
