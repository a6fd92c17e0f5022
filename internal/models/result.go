package models

// CheckRequest is the body of POST /api/check-document.
type CheckRequest struct {
	DocumentBase64 string      `json:"document_base64"`
	StudentInfo    StudentInfo `json:"student_info"`
}

type StudentInfo struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Degree    string `json:"degree,omitempty"`
}

// OutcomeEnvelope is the checker's reply. Result is meaningful when Success
// is true, Error otherwise.
type OutcomeEnvelope struct {
	Success bool            `json:"success"`
	CheckID FlexText        `json:"check_id"`
	Result  *AnalysisResult `json:"result,omitempty"`
	Error   FlexText        `json:"error"`
}

type AnalysisResult struct {
	CheckID        FlexText        `json:"check_id"`
	PDFMetadata    *PDFMetadata    `json:"pdf_metadata,omitempty"`
	FormatAnalysis *FormatAnalysis `json:"format_analysis,omitempty"`
}

type PDFMetadata struct {
	TotalPages Number `json:"total_pages"`
}

// FormatAnalysis carries both response dialects of the checker: the flat one
// (recommendations, page_issues, masalah_puebi) and the richer one
// (compliance_status, missing_sections, format_issues). Every field but
// OverallScore may be absent.
type FormatAnalysis struct {
	OverallScore     Number     `json:"overall_score"`
	ComplianceStatus FlexText   `json:"compliance_status"`
	MissingSections  StringList `json:"missing_sections"`
	FormatIssues     StringList `json:"format_issues"`
	PageIssues       PageIssues `json:"page_issues"`
	Recommendations  StringList `json:"recommendations"`
	MasalahPUEBI     StringList `json:"masalah_puebi"`
}

// PageIssue is located either by page or by section.
type PageIssue struct {
	Page    FlexText `json:"page"`
	Section FlexText `json:"section"`
	Issue   FlexText `json:"issue"`
}
