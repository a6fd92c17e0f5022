package handlers

import (
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/thesis-checker/internal/config"
	"alfredoptarigan/thesis-checker/internal/services"
)

type CheckHandler struct {
	encoder   services.EncoderService
	builder   *services.RequestBuilder
	client    services.CheckerClient
	inspector services.PDFInspector
	degree    config.DegreeMode
}

// NewCheckHandler wires the submission form to the checker. A nil inspector
// disables the PDF preflight.
func NewCheckHandler(
	encoder services.EncoderService,
	client services.CheckerClient,
	inspector services.PDFInspector,
	degree config.DegreeMode,
) *CheckHandler {
	return &CheckHandler{
		encoder:   encoder,
		builder:   services.NewRequestBuilder(degree),
		client:    client,
		inspector: inspector,
		degree:    degree,
	}
}

// HandleCheck handles POST /check
func (h *CheckHandler) HandleCheck(c *fiber.Ctx) error {
	input := services.SubmissionInput{
		StudentName: c.FormValue("studentName"),
		StudentID:   c.FormValue("studentId"),
	}
	if h.degree.Enabled() {
		input.Degree = c.FormValue("degree")
	}

	// A missing file part is a validation failure, not a request error.
	if header, err := c.FormFile("pdfFile"); err == nil {
		input.File = services.NewUploadSource(header)
	}

	data := newPageData(h.degree)
	data.StudentName = input.StudentName
	data.StudentID = input.StudentID
	data.Degree = input.Degree

	// Preflight reads the upload on its own, before the submission starts.
	if h.inspector != nil && h.builder.Validate(input) == nil {
		data.Warnings = h.preflight(input.File)
	}

	screen := services.NewScreen()
	controller := services.NewSubmissionController(
		h.encoder,
		h.builder,
		h.client,
		services.NewHTMLRenderer(),
		screen,
	)

	err := controller.Submit(c.UserContext(), input)
	snapshot := screen.Snapshot()

	data.Alert = snapshot.Alert
	data.ReportVisible = snapshot.ReportVisible
	// Content is produced by html/template and already escaped.
	data.Report = template.HTML(snapshot.Content)

	status := fiber.StatusOK
	if services.IsValidationError(err) {
		status = fiber.StatusBadRequest
	}

	return renderPage(c, status, data)
}

func (h *CheckHandler) preflight(src services.Source) []string {
	result, err := h.inspector.Inspect(src)
	if err != nil {
		log.Printf("⚠️  PDF preflight failed for %s: %v\n", src.Name(), err)
		return nil
	}

	log.Printf("🔎 Preflight %s: valid=%t pages=%d text=%t\n", src.Name(), result.IsValidPDF, result.PageCount, result.HasText)
	return result.Warnings()
}
