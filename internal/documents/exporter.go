package documents

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
)

const isoDate = "2006-01-02"

// Exporter turns laid out forms into PDF bytes and hands them out as a
// download, a file or a base64 payload.
type Exporter struct {
	renderer pdf.Renderer
	logger   *zap.Logger
	clock    func() time.Time
}

// NewExporter creates an exporter. A nil renderer selects the gofpdf one.
func NewExporter(renderer pdf.Renderer, logger *zap.Logger) *Exporter {
	if renderer == nil {
		renderer = pdf.NewRenderer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{renderer: renderer, logger: logger, clock: time.Now}
}

// Filename returns {Label}_{Subject_Name}_{YYYY-MM-DD}.pdf. The date is the
// form's own date, or today when the form has none.
func (e *Exporter) Filename(form *forms.Form) string {
	date := strings.TrimSpace(form.Date)
	if date == "" {
		date = e.clock().Format(isoDate)
	}
	return fmt.Sprintf("%s_%s_%s.pdf", form.Type.Label(), filenameSubject(form.SubjectName), date)
}

// FilenameWithExt is Filename with ext (".csv", ".xlsx") in place of .pdf.
func (e *Exporter) FilenameWithExt(form *forms.Form, ext string) string {
	return e.Title(form) + ext
}

// Title is the filename without its extension.
func (e *Exporter) Title(form *forms.Form) string {
	return strings.TrimSuffix(e.Filename(form), ".pdf")
}

// filenameSubject replaces whitespace runs with underscores and drops
// characters that are unsafe in filenames and headers.
func filenameSubject(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return -1
		}
		return r
	}, name)
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return forms.DefaultSubjectName
	}
	return strings.Join(parts, "_")
}

// Render serializes the form. Failures are logged with their cause and
// reported as a *GenerateError.
func (e *Exporter) Render(form *forms.Form) ([]byte, error) {
	if form == nil || form.Document == nil {
		e.logger.Error("Cannot render empty form")
		return nil, &GenerateError{}
	}
	data, err := pdf.RenderBytes(e.renderer, form.Document)
	if err != nil {
		e.logger.Error("Failed to render PDF",
			zap.String("document_type", string(form.Type)),
			zap.Error(err))
		return nil, &GenerateError{Type: form.Type}
	}
	return data, nil
}

// Download writes the PDF as an attachment.
func (e *Exporter) Download(w http.ResponseWriter, form *forms.Form) error {
	data, err := e.Render(form)
	if err != nil {
		return err
	}

	filename := e.Filename(form)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		e.logger.Warn("Failed to write PDF response",
			zap.String("filename", filename),
			zap.Error(err))
	}
	return nil
}

// SaveFile writes the PDF into dir and returns its path.
func (e *Exporter) SaveFile(dir string, form *forms.Form) (string, error) {
	data, err := e.Render(form)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, e.Filename(form))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	e.logger.Info("PDF saved",
		zap.String("document_type", string(form.Type)),
		zap.String("path", path),
		zap.Int("bytes", len(data)))
	return path, nil
}

// Payload renders the form and encodes it for the patient documents API.
func (e *Exporter) Payload(form *forms.Form) (*DocumentExport, error) {
	data, err := e.Render(form)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]string, len(form.Metadata))
	for k, v := range form.Metadata {
		metadata[k] = v
	}
	return &DocumentExport{
		Base64PDF:    base64.StdEncoding.EncodeToString(data),
		Title:        e.Title(form),
		DocumentType: form.Type,
		Metadata:     metadata,
	}, nil
}
