package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/thesis-checker/internal/config"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	DegreeEnabled  bool
	DegreeRequired bool
	StudentName    string
	StudentID      string
	Degree         string
	Alert          string
	Warnings       []string
	ReportVisible  bool
	Report         template.HTML
}

type PageHandler struct {
	degree config.DegreeMode
}

func NewPageHandler(degree config.DegreeMode) *PageHandler {
	return &PageHandler{degree: degree}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return renderPage(c, fiber.StatusOK, newPageData(h.degree))
}

func newPageData(degree config.DegreeMode) pageData {
	return pageData{
		DegreeEnabled:  degree.Enabled(),
		DegreeRequired: degree == config.DegreeRequired,
	}
}

func renderPage(c *fiber.Ctx, status int, data pageData) error {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
