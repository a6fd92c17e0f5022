package services

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/thesis-checker/internal/models"
)

type capturedRequest struct {
	contentType string
	requestID   string
	body        models.CheckRequest
}

// startChecker serves handler at the check endpoint on a loopback port.
func startChecker(t *testing.T, handler fiber.Handler) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/api/check-document", handler)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestCheckDocumentPostsJSONAndDecodesEnvelope(t *testing.T) {
	captured := make(chan capturedRequest, 1)
	baseURL := startChecker(t, func(c *fiber.Ctx) error {
		var req models.CheckRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing document_base64 in request"})
		}
		captured <- capturedRequest{
			contentType: c.Get(fiber.HeaderContentType),
			requestID:   c.Get("X-Request-ID"),
			body:        req,
		}
		return c.JSON(fiber.Map{
			"success":  true,
			"check_id": "c-1",
			"result": fiber.Map{
				"check_id":        "c-1",
				"pdf_metadata":    fiber.Map{"total_pages": 60},
				"format_analysis": fiber.Map{"overall_score": 88, "compliance_status": "PASS"},
			},
		})
	})

	client := NewCheckerClient(baseURL, 5*time.Second)
	req := &models.CheckRequest{
		DocumentBase64: "data:application/pdf;base64,JVBERi0=",
		StudentInfo:    models.StudentInfo{Name: "Sari", StudentID: "123"},
	}

	envelope, err := client.CheckDocument(context.Background(), req)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !envelope.Success || envelope.Result == nil || envelope.Result.FormatAnalysis.OverallScore.Value != 88 {
		t.Fatalf("envelope: %+v", envelope)
	}

	got := <-captured
	if got.contentType != fiber.MIMEApplicationJSON {
		t.Fatalf("content type: %q", got.contentType)
	}
	if _, err := uuid.Parse(got.requestID); err != nil {
		t.Fatalf("request id %q: %v", got.requestID, err)
	}
	if got.body.DocumentBase64 != req.DocumentBase64 || got.body.StudentInfo.StudentID != "123" {
		t.Fatalf("body: %+v", got.body)
	}
}

func TestCheckDocumentKeepsServiceReportedErrors(t *testing.T) {
	baseURL := startChecker(t, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error: boom"})
	})

	envelope, err := NewCheckerClient(baseURL, 5*time.Second).CheckDocument(context.Background(), &models.CheckRequest{})
	if err != nil {
		t.Fatalf("a JSON error body is not a transport failure: %v", err)
	}
	if envelope.Success || envelope.Error.Text != "Internal server error: boom" {
		t.Fatalf("envelope: %+v", envelope)
	}
}

func TestCheckDocumentFillsMissingErrorFromStatus(t *testing.T) {
	baseURL := startChecker(t, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{})
	})

	envelope, err := NewCheckerClient(baseURL, 5*time.Second).CheckDocument(context.Background(), &models.CheckRequest{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if envelope.Error.Text != "HTTP 400 Bad Request" {
		t.Fatalf("error: %+v", envelope.Error)
	}
}

func TestCheckDocumentReplacesObjectErrorWithStatus(t *testing.T) {
	baseURL := startChecker(t, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "error": fiber.Map{"code": 502}})
	})

	envelope, err := NewCheckerClient(baseURL, 5*time.Second).CheckDocument(context.Background(), &models.CheckRequest{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if envelope.Error.Text != "HTTP 502 Bad Gateway" {
		t.Fatalf("error: %+v", envelope.Error)
	}
}

func TestCheckDocumentRejectsNonJSONBody(t *testing.T) {
	baseURL := startChecker(t, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).SendString("<html>Bad Gateway</html>")
	})

	_, err := NewCheckerClient(baseURL, 5*time.Second).CheckDocument(context.Background(), &models.CheckRequest{})
	var transportErr *TransportError
	if !errors.As(err, &transportErr) || transportErr.Op != "decode response" {
		t.Fatalf("expected decode TransportError, got %v", err)
	}
}

func TestCheckDocumentNetworkFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	_, err = NewCheckerClient("http://"+addr, 2*time.Second).CheckDocument(context.Background(), &models.CheckRequest{})
	var transportErr *TransportError
	if !errors.As(err, &transportErr) || transportErr.Op != "send request" {
		t.Fatalf("expected send TransportError, got %v", err)
	}
}

func TestCheckDocumentHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCheckerClient("http://127.0.0.1:1", time.Second).CheckDocument(ctx, &models.CheckRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
