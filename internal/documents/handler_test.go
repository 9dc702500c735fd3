package documents

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/nullable"
)

func setupRouter(delivery *DeliveryManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(testGenerator(), testExporter(), delivery, nil)
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const prenatalBody = `{
	"facility": {"name": "St. Anne Lying-In", "address": null},
	"patient": {"first_name": "Maria", "last_name": "Cruz", "age": 27},
	"form_date": "2025-06-01",
	"gestational_age": "28 weeks"
}`

func TestHandler_PrenatalPDF(t *testing.T) {
	rec := post(setupRouter(nil), "/api/v1/forms/prenatal", prenatalBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Prenatal_Form_Maria_Cruz_2025-06-01.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestHandler_PrenatalPayload(t *testing.T) {
	rec := post(setupRouter(nil), "/api/v1/forms/prenatal?format=payload", prenatalBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload DocumentExport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "prenatal_form", string(payload.DocumentType))
	assert.Equal(t, "2025-06-01", payload.Metadata["form_date"])
	assert.NotEmpty(t, payload.Base64PDF)
}

func TestHandler_MissingSubject(t *testing.T) {
	router := setupRouter(nil)

	tests := []struct {
		path string
		body string
		want string
	}{
		{"/api/v1/forms/prenatal", `{"form_date": "2025-06-01"}`, "patient is required"},
		{"/api/v1/forms/labor-monitoring", `{"entries": []}`, "patient is required"},
		{"/api/v1/forms/referral", `{"facility": {}}`, "referral is required"},
		{"/api/v1/forms/apgar", `{}`, "newborn or patient is required"},
		{"/api/v1/forms/prenatal", `not json`, "invalid request body"},
	}
	for _, tt := range tests {
		rec := post(router, tt.path, tt.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tt.path)
		assert.Contains(t, rec.Body.String(), tt.want)
	}
}

func TestHandler_UnsupportedFormat(t *testing.T) {
	rec := post(setupRouter(nil), "/api/v1/forms/referral?format=docx", `{"referral": {}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_LaborSpreadsheets(t *testing.T) {
	body := `{"patient": {"first_name": "Maria", "last_name": "Cruz"},
		"entries": [{"date": "2025-01-15", "time": "08:30:00", "temperature": 36.8}]}`
	router := setupRouter(nil)

	rec := post(router, "/api/v1/forms/labor-monitoring?format=csv", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Date,Time,Temp,Pulse,Resp,BP,FHT/Location\n01/15/25,08:30,36.8,,,,\n", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Labor_Monitoring_Maria_Cruz_2025-06-02.csv")

	rec = post(router, "/api/v1/forms/labor-monitoring?format=xlsx", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestHandler_DeliverPayload(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	router := setupRouter(NewDeliveryManager(DeliveryConfig{Endpoint: srv.URL, RetryDelay: time.Millisecond}, nil, nil))
	rec := post(router, "/api/v1/forms/referral?format=payload&deliver=true",
		`{"referral": {"case_number": "RF-0042", "patient": {"first_name": "Maria"}}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Empty(t, rec.Header().Get("X-Archive-Key"))
}

func TestHandler_DeliverWithoutEndpoint(t *testing.T) {
	rec := post(setupRouter(nil), "/api/v1/forms/referral?format=payload&deliver=true", `{"referral": {}}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_LaborSpreadsheetUsesConfiguredFacility(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := testGenerator()
	g.Facility = forms.Facility{Name: nullable.NewString("Default Birthing Home")}
	router := gin.New()
	NewHandler(g, testExporter(), nil, nil).RegisterRoutes(router.Group("/api/v1"))

	body := `{"patient": {"first_name": "Maria", "last_name": "Cruz"}, "entries": []}`
	rec := post(router, "/api/v1/forms/labor-monitoring?format=xlsx", body)
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Patient", "A1")
	require.NoError(t, err)
	name, err := f.GetCellValue("Patient", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Facility", label)
	assert.Equal(t, "Default Birthing Home", name)
}
