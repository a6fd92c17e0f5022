package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

type EncoderService interface {
	Encode(ctx context.Context, src Source) (string, error)
}

type encoderService struct{}

func NewEncoderService() EncoderService {
	return &encoderService{}
}

// Encode reads the whole document and returns it as a base64 data URL.
// On failure the payload is always empty and the error is a *ReadError.
func (e *encoderService) Encode(ctx context.Context, src Source) (string, error) {
	if src == nil {
		return "", &ReadError{Err: errors.New("no file selected")}
	}
	if err := ctx.Err(); err != nil {
		return "", &ReadError{Name: src.Name(), Err: err}
	}

	f, err := src.Open()
	if err != nil {
		return "", &ReadError{Name: src.Name(), Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &ReadError{Name: src.Name(), Err: err}
	}

	if err := ctx.Err(); err != nil {
		return "", &ReadError{Name: src.Name(), Err: err}
	}

	mediaType := pickMediaType(src.ContentType(), src.Name(), data)
	return makeDataURL(mediaType, base64.StdEncoding.EncodeToString(data)), nil
}

const octetStream = "application/octet-stream"

func makeDataURL(mediaType, b64 string) string {
	return "data:" + mediaType + ";base64," + b64
}

// DecodePayload reverses Encode. A bare base64 string without the data URL
// prefix is accepted too, with an empty media type.
func DecodePayload(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var mediaType string
	if strings.HasPrefix(s, "data:") {
		idx := strings.IndexByte(s, ',')
		if idx < 0 {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		meta := s[len("data:"):idx]
		if semi := strings.IndexByte(meta, ';'); semi >= 0 {
			mediaType = meta[:semi]
		} else {
			mediaType = meta
		}
		s = s[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, mediaType, nil
}

// pickMediaType prefers the declared type, then the file extension, then sniffing.
func pickMediaType(declared, name string, data []byte) string {
	// Generic upload types say nothing about the document.
	if mt, _, err := mime.ParseMediaType(strings.TrimSpace(declared)); err == nil && mt != octetStream {
		return mt
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		if mt, _, err := mime.ParseMediaType(byExt); err == nil {
			return mt
		}
	}
	if len(data) > 0 {
		if mt, _, err := mime.ParseMediaType(http.DetectContentType(data)); err == nil {
			return mt
		}
	}
	return octetStream
}
