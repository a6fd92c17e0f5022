package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// File is an opened document. Both multipart uploads and local files satisfy it.
type File interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
}

// Source is the user-selected document before it is read.
type Source interface {
	Name() string
	Size() int64
	ContentType() string
	Open() (File, error)
}

type uploadSource struct {
	header *multipart.FileHeader
}

// NewUploadSource wraps a file posted through the submission form.
// A nil header yields a nil Source.
func NewUploadSource(header *multipart.FileHeader) Source {
	if header == nil {
		return nil
	}
	return &uploadSource{header: header}
}

func (s *uploadSource) Name() string { return s.header.Filename }

func (s *uploadSource) Size() int64 { return s.header.Size }

func (s *uploadSource) ContentType() string {
	return s.header.Header.Get("Content-Type")
}

func (s *uploadSource) Open() (File, error) {
	f, err := s.header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	return f, nil
}

type fileSource struct {
	path string
	size int64
}

// NewFileSource describes a document on the local filesystem.
func NewFileSource(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &fileSource{path: path, size: info.Size()}, nil
}

func (s *fileSource) Name() string { return filepath.Base(s.path) }

func (s *fileSource) Size() int64 { return s.size }

func (s *fileSource) ContentType() string { return "" }

func (s *fileSource) Open() (File, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
