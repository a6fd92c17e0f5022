package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/thesis-checker/internal/models"
)

const checkDocumentPath = "/api/check-document"

type CheckerClient interface {
	CheckDocument(ctx context.Context, req *models.CheckRequest) (*models.OutcomeEnvelope, error)
}

type checkerClient struct {
	baseURL string
	timeout time.Duration
}

func NewCheckerClient(baseURL string, timeout time.Duration) CheckerClient {
	return &checkerClient{
		baseURL: baseURL,
		timeout: timeout,
	}
}

// CheckDocument posts the request and decodes the reply envelope. The HTTP
// status is not inspected: the checker reports its own failures in the body.
func (c *checkerClient) CheckDocument(ctx context.Context, req *models.CheckRequest) (*models.OutcomeEnvelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Op: "send request", Err: err}
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, &TransportError{Op: "send request", Err: context.DeadlineExceeded}
		}
	}

	requestID := uuid.New().String()
	agent := fiber.Post(c.baseURL + checkDocumentPath)
	agent.Set("X-Request-ID", requestID)
	agent.JSON(req)
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	log.Printf("📤 [%s] POST %s%s\n", requestID, c.baseURL, checkDocumentPath)
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, &TransportError{Op: "send request", Err: errors.Join(errs...)}
	}
	log.Printf("📥 [%s] %d (%d bytes)\n", requestID, status, len(body))

	var envelope models.OutcomeEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &TransportError{
			Op:  "decode response",
			Err: fmt.Errorf("HTTP %d: %w", status, err),
		}
	}

	if !envelope.Success && !envelope.Error.Valid {
		envelope.Error = models.NewFlexText(fmt.Sprintf("HTTP %d %s", status, http.StatusText(status)))
	}

	return &envelope, nil
}
