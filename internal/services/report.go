package services

import (
	"strconv"
	"strings"

	"alfredoptarigan/thesis-checker/internal/models"
)

type StatusClass string

const (
	StatusPositive StatusClass = "positive"
	StatusNegative StatusClass = "negative"
	StatusWarning  StatusClass = "warning"
)

// passScore is the lowest score classified as positive when the checker
// gives no explicit compliance status.
const passScore = 80

const locationPlaceholder = "-"

// Report is the normalized form of an AnalysisResult. Every default is
// applied here so renderers never see a missing field.
type Report struct {
	Score            float64
	Status           StatusClass
	ComplianceStatus string
	MissingSections  []string
	FormatIssues     []string
	PageIssues       []PageIssueLine
	Suggestions      []string
	Metadata         *ReportMetadata
}

type PageIssueLine struct {
	Location string
	Issue    string
}

type ReportMetadata struct {
	TotalPages float64
	CheckID    string
}

// ReportSection is one listing panel of the report.
type ReportSection struct {
	Title       string
	EmptyNotice string
	Items       []string
}

// ResolveReport applies the field resolution policy to a checker result.
// envelopeCheckID is used when the result itself carries no check id.
func ResolveReport(result *models.AnalysisResult, envelopeCheckID string) Report {
	var fa models.FormatAnalysis
	if result != nil && result.FormatAnalysis != nil {
		fa = *result.FormatAnalysis
	}

	report := Report{
		MissingSections: copyList(fa.MissingSections),
		FormatIssues:    copyList(fa.FormatIssues),
		PageIssues:      make([]PageIssueLine, 0, len(fa.PageIssues)),
		Suggestions:     make([]string, 0, len(fa.Recommendations)+len(fa.MasalahPUEBI)),
	}

	if fa.OverallScore.Valid {
		report.Score = fa.OverallScore.Value
	}

	if fa.ComplianceStatus.Valid {
		report.ComplianceStatus = strings.TrimSpace(fa.ComplianceStatus.Text)
		switch report.ComplianceStatus {
		case "PASS":
			report.Status = StatusPositive
		case "FAIL":
			report.Status = StatusNegative
		default:
			report.Status = StatusWarning
		}
	} else if report.Score > passScore {
		report.Status = StatusPositive
	} else {
		report.Status = StatusNegative
	}

	for _, pi := range fa.PageIssues {
		location := locationPlaceholder
		if pi.Page.Valid {
			location = pi.Page.Text
		} else if pi.Section.Valid {
			location = pi.Section.Text
		}
		report.PageIssues = append(report.PageIssues, PageIssueLine{
			Location: location,
			Issue:    pi.Issue.Text,
		})
	}

	report.Suggestions = append(report.Suggestions, fa.Recommendations...)
	report.Suggestions = append(report.Suggestions, fa.MasalahPUEBI...)

	if result != nil && result.PDFMetadata != nil && result.PDFMetadata.TotalPages.Valid {
		checkID := result.CheckID.Text
		if !result.CheckID.Valid {
			checkID = strings.TrimSpace(envelopeCheckID)
		}
		if checkID != "" {
			report.Metadata = &ReportMetadata{
				TotalPages: result.PDFMetadata.TotalPages.Value,
				CheckID:    checkID,
			}
		}
	}

	return report
}

func (r Report) ScoreText() string {
	return formatNumber(r.Score)
}

func (r Report) StatusLabel() string {
	switch r.Status {
	case StatusPositive:
		return "✅ Format sesuai panduan"
	case StatusWarning:
		return "⚠️ Perlu revisi"
	default:
		return "❌ Format belum sesuai panduan"
	}
}

// CSSClass keeps the class names of the original stylesheet.
func (r Report) CSSClass() string {
	switch r.Status {
	case StatusPositive:
		return "status-pass"
	case StatusWarning:
		return "status-warning"
	default:
		return "status-fail"
	}
}

func (r Report) Sections() []ReportSection {
	pageLines := make([]string, 0, len(r.PageIssues))
	for _, pi := range r.PageIssues {
		pageLines = append(pageLines, "Halaman/Bagian: "+pi.Location+" - "+pi.Issue)
	}

	return []ReportSection{
		{
			Title:       "📑 Bagian yang Belum Ada",
			EmptyNotice: "✅ Semua bagian wajib sudah ada",
			Items:       r.MissingSections,
		},
		{
			Title:       "📝 Masalah Format",
			EmptyNotice: "✅ Tidak ada masalah format",
			Items:       r.FormatIssues,
		},
		{
			Title:       "📄 Detail Halaman/Bagian Bermasalah",
			EmptyNotice: "✅ Tidak ada masalah pada halaman/bagian spesifik",
			Items:       pageLines,
		},
		{
			Title:       "💡 Saran & Rekomendasi (termasuk PUEBI)",
			EmptyNotice: "✅ Tidak ada saran perbaikan",
			Items:       r.Suggestions,
		},
	}
}

func (m ReportMetadata) TotalPagesText() string {
	return formatNumber(m.TotalPages)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func copyList(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
