package services

import (
	"strings"

	"alfredoptarigan/thesis-checker/internal/config"
	"alfredoptarigan/thesis-checker/internal/models"
)

// SubmissionInput is what the user entered for one submission.
type SubmissionInput struct {
	File        Source
	StudentName string
	StudentID   string
	Degree      string
}

type RequestBuilder struct {
	degree config.DegreeMode
}

func NewRequestBuilder(degree config.DegreeMode) *RequestBuilder {
	return &RequestBuilder{degree: degree}
}

// Validate checks the file first, then the identity fields. It does not read
// the file.
func (b *RequestBuilder) Validate(input SubmissionInput) error {
	if input.File == nil || input.File.Size() == 0 {
		return MissingFileError{}
	}

	var missing []string
	if strings.TrimSpace(input.StudentName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.StudentID) == "" {
		missing = append(missing, "student_id")
	}
	if b.degree == config.DegreeRequired && strings.TrimSpace(input.Degree) == "" {
		missing = append(missing, "degree")
	}
	if len(missing) > 0 {
		return MissingStudentInfoError{Fields: missing}
	}

	return nil
}

// Build assembles the request body around an already encoded document.
func (b *RequestBuilder) Build(input SubmissionInput, payload string) (*models.CheckRequest, error) {
	if err := b.Validate(input); err != nil {
		return nil, err
	}

	info := models.StudentInfo{
		Name:      strings.TrimSpace(input.StudentName),
		StudentID: strings.TrimSpace(input.StudentID),
	}
	if b.degree.Enabled() {
		info.Degree = strings.TrimSpace(input.Degree)
	}

	return &models.CheckRequest{
		DocumentBase64: payload,
		StudentInfo:    info,
	}, nil
}
