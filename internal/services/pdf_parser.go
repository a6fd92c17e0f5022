package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minFirstPageText is the amount of text on the first page below which a
// document is considered to have no extractable text.
const minFirstPageText = 100

type PDFInspector interface {
	Inspect(src Source) (*PreflightResult, error)
}

// PreflightResult is an advisory local check. It never blocks a submission;
// the checker does its own validation.
type PreflightResult struct {
	IsValidPDF     bool
	IsReadable     bool
	HasText        bool
	PageCount      int
	PageCountValid bool
}

// Warnings lists the failed checks in user-facing wording.
func (r *PreflightResult) Warnings() []string {
	var warnings []string
	if !r.IsValidPDF {
		return []string{"File bukan PDF yang valid atau rusak"}
	}
	if !r.IsReadable {
		warnings = append(warnings, "PDF tidak memiliki halaman yang dapat dibaca")
	}
	if !r.HasText {
		warnings = append(warnings, "Halaman pertama tidak memiliki teks yang dapat diekstrak")
	}
	if !r.PageCountValid {
		warnings = append(warnings, fmt.Sprintf("Jumlah halaman (%d) kurang dari batas minimum", r.PageCount))
	}
	return warnings
}

type pdfInspector struct {
	minPages int
}

func NewPDFInspector(minPages int) PDFInspector {
	return &pdfInspector{minPages: minPages}
}

func (p *pdfInspector) Inspect(src Source) (result *PreflightResult, err error) {
	if src == nil {
		return nil, fmt.Errorf("no file to inspect")
	}

	f, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result = &PreflightResult{}

	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			result = &PreflightResult{}
			err = nil
		}
	}()

	r, err := pdf.NewReader(f, src.Size())
	if err != nil {
		return result, nil
	}
	result.IsValidPDF = true

	totalPage := r.NumPage()
	result.PageCount = totalPage
	result.IsReadable = totalPage > 0
	result.PageCountValid = totalPage >= p.minPages

	if totalPage > 0 {
		page := r.Page(1)
		if !page.V.IsNull() {
			text, err := page.GetPlainText(nil)
			if err == nil && len(strings.TrimSpace(text)) > minFirstPageText {
				result.HasText = true
			}
		}
	}

	return result, nil
}
