package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"unicode"
)

// ResultRenderer turns a report or an error message into the content of the
// report region.
type ResultRenderer interface {
	RenderReport(report Report) (string, error)
	RenderError(message string) string
}

var reportTemplate = template.Must(template.New("report").Parse(`<div class="result-summary {{.CSSClass}}">
  <div class="score">Skor: {{.ScoreText}}/100</div>
  <div class="status">{{.StatusLabel}}{{with .ComplianceStatus}} ({{.}}){{end}}</div>
</div>
<div class="result-details">
{{- with .Metadata}}
  <div class="section metadata">
    <h4>ℹ️ Informasi Dokumen</h4>
    <p>Jumlah halaman: {{.TotalPagesText}}</p>
    <p>ID pemeriksaan: {{.CheckID}}</p>
  </div>
{{- end}}
{{- range .Sections}}
  <div class="section">
    <h4>{{.Title}}</h4>
    {{- if .Items}}
    <ul>
      {{- range .Items}}
      <li>{{.}}</li>
      {{- end}}
    </ul>
    {{- else}}
    <p class="success">{{.EmptyNotice}}</p>
    {{- end}}
  </div>
{{- end}}
</div>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<div class="error">
  <h4>❌ Terjadi Kesalahan</h4>
  <p>{{.}}</p>
</div>
`))

type htmlRenderer struct{}

// NewHTMLRenderer renders HTML fragments. Every service-supplied string is
// escaped by html/template.
func NewHTMLRenderer() ResultRenderer {
	return &htmlRenderer{}
}

func (r *htmlRenderer) RenderReport(report Report) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func (r *htmlRenderer) RenderError(message string) string {
	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, message); err != nil {
		return `<div class="error"><h4>❌ Terjadi Kesalahan</h4><p>` + template.HTMLEscapeString(genericErrorMessage) + `</p></div>`
	}
	return buf.String()
}

type textRenderer struct{}

// NewTextRenderer renders plain text for a terminal. Control characters in
// service-supplied strings are replaced so they cannot drive the terminal.
func NewTextRenderer() ResultRenderer {
	return &textRenderer{}
}

func (r *textRenderer) RenderReport(report Report) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Skor: %s/100\n", report.ScoreText())
	b.WriteString(report.StatusLabel())
	if report.ComplianceStatus != "" {
		fmt.Fprintf(&b, " (%s)", sanitizeText(report.ComplianceStatus))
	}
	b.WriteString("\n")

	if m := report.Metadata; m != nil {
		b.WriteString("\nℹ️ Informasi Dokumen\n")
		fmt.Fprintf(&b, "  Jumlah halaman: %s\n", m.TotalPagesText())
		fmt.Fprintf(&b, "  ID pemeriksaan: %s\n", sanitizeText(m.CheckID))
	}

	for _, section := range report.Sections() {
		fmt.Fprintf(&b, "\n%s\n", section.Title)
		if len(section.Items) == 0 {
			fmt.Fprintf(&b, "  %s\n", section.EmptyNotice)
			continue
		}
		for _, item := range section.Items {
			fmt.Fprintf(&b, "  - %s\n", sanitizeText(item))
		}
	}

	return b.String(), nil
}

func (r *textRenderer) RenderError(message string) string {
	return "❌ Terjadi Kesalahan\n" + sanitizeText(message) + "\n"
}

func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
