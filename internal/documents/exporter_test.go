package documents

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/nullable"
)

var fixedNow = time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

func testGenerator() *forms.Generator {
	g := forms.DefaultGenerator()
	g.Clock = func() time.Time { return fixedNow }
	return g
}

func testExporter() *Exporter {
	e := NewExporter(nil, nil)
	e.clock = func() time.Time { return fixedNow }
	return e
}

func prenatalInput() forms.PrenatalInput {
	s := nullable.NewString
	return forms.PrenatalInput{
		Facility:       forms.Facility{Name: s("St. Anne Lying-In"), Address: s("Cebu City")},
		Patient:        &forms.Patient{FirstName: s("Maria"), LastName: s("Cruz")},
		FormDate:       s("2025-06-01"),
		GestationalAge: s("28 weeks"),
	}
}

func TestExporter_Filename(t *testing.T) {
	e := testExporter()

	form := testGenerator().Prenatal(prenatalInput())
	assert.Equal(t, "Prenatal_Form_Maria_Cruz_2025-06-01.pdf", e.Filename(form))
	assert.Equal(t, "Prenatal_Form_Maria_Cruz_2025-06-01", e.Title(form))

	tests := []struct {
		form *forms.Form
		want string
	}{
		{&forms.Form{Type: forms.TypeLaborMonitoring, SubjectName: "Ana  Maria Reyes"}, "Labor_Monitoring_Ana_Maria_Reyes_2025-06-02.pdf"},
		{&forms.Form{Type: forms.TypeReferral, SubjectName: "", Date: "2025-03-10"}, "Referral_Form_Patient_2025-03-10.pdf"},
		{&forms.Form{Type: forms.TypeApgar, SubjectName: "Baby/Cruz", Date: "2025-05-30"}, "APGAR_Score_BabyCruz_2025-05-30.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Filename(tt.form))
	}
}

func TestExporter_Payload(t *testing.T) {
	form := testGenerator().Prenatal(prenatalInput())

	payload, err := testExporter().Payload(form)
	require.NoError(t, err)

	assert.Equal(t, forms.TypePrenatal, payload.DocumentType)
	assert.Equal(t, "Prenatal_Form_Maria_Cruz_2025-06-01", payload.Title)
	assert.Equal(t, "2025-06-01", payload.Metadata["form_date"])

	data, err := base64.StdEncoding.DecodeString(payload.Base64PDF)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "base64PDF")
	assert.Equal(t, "prenatal_form", decoded["document_type"])

	payload.Metadata["form_date"] = "changed"
	assert.Equal(t, "2025-06-01", form.Metadata["form_date"], "payload owns its own metadata")
}

var pdfDates = regexp.MustCompile(`/(CreationDate|ModDate) \([^)]*\)`)

func TestExporter_RenderIsDeterministic(t *testing.T) {
	e := testExporter()
	first, err := e.Render(testGenerator().Prenatal(prenatalInput()))
	require.NoError(t, err)
	second, err := e.Render(testGenerator().Prenatal(prenatalInput()))
	require.NoError(t, err)

	assert.Equal(t, pdfDates.ReplaceAll(first, nil), pdfDates.ReplaceAll(second, nil))
}

func TestExporter_NormalizesErrors(t *testing.T) {
	tests := []struct {
		docType forms.DocumentType
		message string
	}{
		{forms.TypePrenatal, "failed to generate PDF"},
		{forms.TypeLaborMonitoring, "failed to generate labor monitoring PDF"},
		{forms.TypeReferral, "failed to generate referral PDF for document storage"},
		{forms.TypeApgar, "failed to generate APGAR score PDF"},
	}
	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			renderer := new(MockRenderer)
			cause := errors.New("font table corrupted")
			renderer.On("Render", mock.Anything, mock.Anything).Return(cause)

			e := NewExporter(renderer, nil)
			form := testGenerator().Prenatal(prenatalInput())
			form.Type = tt.docType

			_, err := e.Payload(form)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.ErrorIs(t, err, ErrGeneratePDF)
			assert.NotErrorIs(t, err, cause)

			_, err = e.SaveFile(t.TempDir(), form)
			assert.ErrorIs(t, err, ErrGeneratePDF)
			renderer.AssertExpectations(t)
		})
	}
}

func TestExporter_Download(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, testExporter().Download(rec, testGenerator().Prenatal(prenatalInput())))

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Prenatal_Form_Maria_Cruz_2025-06-01.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-", rec.Body.String()[:5])
}

func TestExporter_SaveFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := testExporter().SaveFile(dir, testGenerator().Prenatal(prenatalInput()))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Prenatal_Form_Maria_Cruz_2025-06-01.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}
