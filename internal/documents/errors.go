package documents

import (
	"errors"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
)

var (
	// ErrGeneratePDF is matched by every generation failure returned from
	// the Exporter, whatever the document type.
	ErrGeneratePDF = errors.New("failed to generate PDF")

	ErrDeliveryFailed  = errors.New("document delivery failed")
	ErrNoEndpoint      = errors.New("patient documents endpoint is not configured")
	ErrArchiveDisabled = errors.New("archive bucket is not configured")
)

// GenerateError is the caller-facing generation failure. The underlying
// cause is logged, never returned.
type GenerateError struct {
	Type forms.DocumentType
}

func (e *GenerateError) Error() string {
	switch e.Type {
	case forms.TypeLaborMonitoring:
		return "failed to generate labor monitoring PDF"
	case forms.TypeReferral:
		return "failed to generate referral PDF for document storage"
	case forms.TypeApgar:
		return "failed to generate APGAR score PDF"
	default:
		return ErrGeneratePDF.Error()
	}
}

func (e *GenerateError) Is(target error) bool {
	return target == ErrGeneratePDF
}
