package services

import (
	"errors"
	"strings"
)

const genericErrorMessage = "Terjadi kesalahan yang tidak diketahui"

// PresentError turns any failure into the message shown in the failure panel.
// It never panics; if the error cannot be formatted the generic message is used.
func PresentError(err error) (message string) {
	defer func() {
		if recover() != nil {
			message = genericErrorMessage
		}
	}()

	if err == nil {
		return genericErrorMessage
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		if strings.TrimSpace(serviceErr.Message) == "" {
			return genericErrorMessage
		}
		return serviceErr.Message
	}

	if IsValidationError(err) {
		return err.Error()
	}

	text := err.Error()
	if strings.TrimSpace(text) == "" {
		return genericErrorMessage
	}
	return "Terjadi kesalahan: " + text
}
