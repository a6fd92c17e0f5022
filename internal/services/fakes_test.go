package services

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"alfredoptarigan/thesis-checker/internal/models"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// brokenFile fails every read, like a revoked file handle.
type brokenFile struct{}

func (brokenFile) Read([]byte) (int, error)          { return 0, errors.New("handle revoked") }
func (brokenFile) ReadAt([]byte, int64) (int, error) { return 0, errors.New("handle revoked") }
func (brokenFile) Seek(int64, int) (int64, error)    { return 0, nil }
func (brokenFile) Close() error                      { return nil }

type memSource struct {
	name        string
	contentType string
	data        []byte
	size        int64
	openErr     error
	broken      bool
}

func newMemSource(name string, data []byte) *memSource {
	return &memSource{name: name, data: data, size: int64(len(data))}
}

func (s *memSource) Name() string        { return s.name }
func (s *memSource) Size() int64         { return s.size }
func (s *memSource) ContentType() string { return s.contentType }

func (s *memSource) Open() (File, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	if s.broken {
		return brokenFile{}, nil
	}
	return memFile{bytes.NewReader(s.data)}, nil
}

type fakeClient struct {
	mu       sync.Mutex
	calls    int
	requests []*models.CheckRequest
	envelope *models.OutcomeEnvelope
	err      error
	panicMsg string
	started  chan struct{}
	release  chan struct{}
}

func (f *fakeClient) CheckDocument(ctx context.Context, req *models.CheckRequest) (*models.OutcomeEnvelope, error) {
	f.mu.Lock()
	f.calls++
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.envelope, f.err
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var pdfBytes = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")
