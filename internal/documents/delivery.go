package documents

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DeliveryConfig configures where generated documents are sent.
type DeliveryConfig struct {
	Endpoint   string
	APIToken   string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DeliveryManager forwards generated documents to the patient documents
// API and the archive bucket.
type DeliveryManager struct {
	config     DeliveryConfig
	httpClient *http.Client
	storage    *StorageProvider
	logger     *zap.Logger
}

// NewDeliveryManager creates a new delivery manager. storage may be nil
// when archiving is disabled.
func NewDeliveryManager(config DeliveryConfig, storage *StorageProvider, logger *zap.Logger) *DeliveryManager {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeliveryManager{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		storage:    storage,
		logger:     logger,
	}
}

// DeliverToAPI posts the export as JSON to the patient documents endpoint,
// retrying transport errors and non-2xx responses.
func (d *DeliveryManager) DeliverToAPI(ctx context.Context, export *DocumentExport) error {
	if d.config.Endpoint == "" {
		return ErrNoEndpoint
	}

	payload, err := json.Marshal(export)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	retries := d.config.MaxRetries
	if retries <= 0 {
		retries = 1
	}

	d.logger.Info("Delivering document",
		zap.String("url", d.config.Endpoint),
		zap.String("title", export.Title),
		zap.String("document_type", string(export.DocumentType)))

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", ErrDeliveryFailed, ctx.Err())
			case <-time.After(d.config.RetryDelay * time.Duration(attempt)):
			}
		}

		status, err := d.post(ctx, payload)
		if err != nil {
			lastErr = err
			d.logger.Warn("Document delivery failed, retrying",
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}
		if status >= 200 && status < 300 {
			d.logger.Info("Document delivered",
				zap.String("title", export.Title),
				zap.Int("status_code", status))
			return nil
		}

		lastErr = fmt.Errorf("endpoint returned status %d", status)
		d.logger.Warn("Document delivery returned non-success status",
			zap.Int("attempt", attempt+1),
			zap.Int("status_code", status))
		if status >= 400 && status < 500 && status != http.StatusTooManyRequests {
			break
		}
	}

	return fmt.Errorf("%w: %w", ErrDeliveryFailed, lastErr)
}

func (d *DeliveryManager) post(ctx context.Context, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if d.config.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+d.config.APIToken)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// DeliverToS3 decodes the export and stores an archive copy of the PDF.
func (d *DeliveryManager) DeliverToS3(ctx context.Context, export *DocumentExport) (*Archived, error) {
	if !d.storage.Enabled() {
		return nil, ErrArchiveDisabled
	}

	data, err := base64.StdEncoding.DecodeString(export.Base64PDF)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PDF payload: %w", err)
	}

	archived, err := d.storage.Archive(ctx, export.DocumentType, export.Title+".pdf", data, export.Metadata)
	if err != nil {
		d.logger.Error("Failed to archive document",
			zap.String("title", export.Title),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	d.logger.Info("Document archived",
		zap.String("bucket", archived.Bucket),
		zap.String("key", archived.Key))
	return archived, nil
}
