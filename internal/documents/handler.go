package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/internal/reports/export"
)

const (
	FormatPDF     = "pdf"
	FormatPayload = "payload"
	FormatXLSX    = "xlsx"
	FormatCSV     = "csv"
)

type Handler struct {
	generator *forms.Generator
	exporter  *Exporter
	delivery  *DeliveryManager
	logger    *zap.Logger
}

// NewHandler wires the form endpoints. delivery may be nil, in which case
// deliver=true requests are rejected.
func NewHandler(generator *forms.Generator, exporter *Exporter, delivery *DeliveryManager, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		generator: generator,
		exporter:  exporter,
		delivery:  delivery,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	f := rg.Group("/forms")
	{
		f.POST("/prenatal", h.Prenatal)
		f.POST("/labor-monitoring", h.LaborMonitoring)
		f.POST("/referral", h.Referral)
		f.POST("/apgar", h.Apgar)
	}
}

func (h *Handler) Prenatal(c *gin.Context) {
	var in forms.PrenatalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if in.Patient == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient is required"})
		return
	}
	h.respond(c, h.generator.Prenatal(in))
}

func (h *Handler) LaborMonitoring(c *gin.Context) {
	var in forms.LaborInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if in.Patient == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient is required"})
		return
	}

	switch format(c) {
	case FormatXLSX:
		h.spreadsheet(c, in)
		return
	case FormatCSV:
		h.csv(c, in)
		return
	}
	h.respond(c, h.generator.LaborMonitoring(in))
}

func (h *Handler) Referral(c *gin.Context) {
	var in forms.ReferralInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if in.Referral == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "referral is required"})
		return
	}
	h.respond(c, h.generator.Referral(in))
}

func (h *Handler) Apgar(c *gin.Context) {
	var in forms.ApgarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if in.Newborn == nil && in.Mother == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newborn or patient is required"})
		return
	}
	h.respond(c, h.generator.Apgar(in))
}

func format(c *gin.Context) string {
	return strings.ToLower(c.DefaultQuery("format", FormatPDF))
}

// respond sends the form as a PDF download or as a payload, optionally
// delivering the payload first.
func (h *Handler) respond(c *gin.Context, form *forms.Form) {
	switch format(c) {
	case FormatPDF:
		if err := h.exporter.Download(c.Writer, form); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	case FormatPayload:
		payload, err := h.exporter.Payload(form)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if c.Query("deliver") == "true" {
			archived, err := h.deliver(c.Request.Context(), payload)
			if err != nil {
				status := http.StatusBadGateway
				if errors.Is(err, ErrNoEndpoint) {
					status = http.StatusServiceUnavailable
				}
				c.JSON(status, gin.H{"error": err.Error()})
				return
			}
			if archived != nil {
				c.Header("X-Archive-Key", archived.Key)
			}
		}
		c.JSON(http.StatusOK, payload)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q", format(c))})
	}
}

func (h *Handler) deliver(ctx context.Context, payload *DocumentExport) (*Archived, error) {
	if h.delivery == nil {
		return nil, ErrNoEndpoint
	}
	if err := h.delivery.DeliverToAPI(ctx, payload); err != nil {
		return nil, err
	}
	if !h.delivery.storage.Enabled() {
		return nil, nil
	}
	return h.delivery.DeliverToS3(ctx, payload)
}

func (h *Handler) spreadsheet(c *gin.Context, in forms.LaborInput) {
	exporter, err := export.NewExcelExporter(export.DefaultExcelOptions())
	if err != nil {
		h.logger.Error("Failed to create workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate spreadsheet"})
		return
	}
	defer exporter.Close()

	data, err := exporter.Export(h.monitoringSheet(in))
	if err != nil {
		h.logger.Error("Failed to export monitoring sheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate spreadsheet"})
		return
	}
	h.attachment(c, in, ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) csv(c *gin.Context, in forms.LaborInput) {
	var buf bytes.Buffer
	if err := export.NewCSVExporter(&buf, export.DefaultCSVOptions()).Export(h.monitoringSheet(in)); err != nil {
		h.logger.Error("Failed to export monitoring sheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate spreadsheet"})
		return
	}
	h.attachment(c, in, ".csv", "text/csv; charset=utf-8", buf.Bytes())
}

// monitoringSheet fills in the configured facility the same way the PDF
// sheet does.
func (h *Handler) monitoringSheet(in forms.LaborInput) export.MonitoringSheet {
	in.Facility = h.generator.ResolveFacility(in.Facility)
	return export.NewMonitoringSheet(in)
}

func (h *Handler) attachment(c *gin.Context, in forms.LaborInput, ext, contentType string, data []byte) {
	form := &forms.Form{
		Type:        forms.TypeLaborMonitoring,
		SubjectName: in.Patient.ShortName(),
	}
	name := h.exporter.FilenameWithExt(form, ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}
