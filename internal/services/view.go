package services

import (
	"fmt"
	"io"
	"sync"
)

// View is the surface a submission writes to: a loading indicator, a
// user-facing alert, and the single report region.
type View interface {
	Alert(message string)
	SetLoading(loading bool)
	HideReport()
	ShowResults(content string)
}

// Screen is an in-memory View. The web handler renders its final state into
// the page; Events records every call in order.
type Screen struct {
	mu            sync.Mutex
	loading       bool
	reportVisible bool
	content       string
	alert         string
	events        []string
}

func NewScreen() *Screen {
	return &Screen{}
}

func (s *Screen) Alert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = message
	s.events = append(s.events, "alert")
}

func (s *Screen) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
	if loading {
		s.events = append(s.events, "loading:on")
	} else {
		s.events = append(s.events, "loading:off")
	}
}

func (s *Screen) HideReport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reportVisible = false
	s.events = append(s.events, "report:hide")
}

func (s *Screen) ShowResults(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	s.reportVisible = true
	s.events = append(s.events, "report:show")
}

// Snapshot is a copy of the screen state.
type Snapshot struct {
	Loading       bool
	ReportVisible bool
	Content       string
	Alert         string
	Events        []string
}

func (s *Screen) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Loading:       s.loading,
		ReportVisible: s.reportVisible,
		Content:       s.content,
		Alert:         s.alert,
		Events:        append([]string(nil), s.events...),
	}
}

type terminalView struct {
	out io.Writer
}

// NewTerminalView writes alerts, progress and reports to out.
func NewTerminalView(out io.Writer) View {
	return &terminalView{out: out}
}

func (v *terminalView) Alert(message string) {
	fmt.Fprintf(v.out, "⚠️  %s\n", sanitizeText(message))
}

func (v *terminalView) SetLoading(loading bool) {
	if loading {
		fmt.Fprintln(v.out, "⏳ Memeriksa dokumen...")
	}
}

func (v *terminalView) HideReport() {}

func (v *terminalView) ShowResults(content string) {
	fmt.Fprintln(v.out, content)
}
