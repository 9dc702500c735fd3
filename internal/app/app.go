// Package app wires configuration into the form services shared by the
// HTTP server and the command line tool.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Cyannimazing/BCSystem-sub000/internal/config"
	"github.com/Cyannimazing/BCSystem-sub000/internal/documents"
	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/nullable"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/storage"
)

type Services struct {
	Generator *forms.Generator
	Exporter  *documents.Exporter
	Delivery  *documents.DeliveryManager
}

// NewLogger builds a development logger in development mode and a JSON
// production logger otherwise, at the configured level.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.IsDev() {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid logging.level: %w", err)
		}
		zcfg.Level = level
	}
	return zcfg.Build()
}

// NewServices builds the generator, exporter and delivery manager. The S3
// client is only created when an archive bucket is configured.
func NewServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	generator := forms.NewGenerator(cfg.Layout(), cfg.PDF.LaborMinRows)
	generator.Facility = forms.Facility{
		Name:    optional(cfg.Facility.Name),
		Address: optional(cfg.Facility.Address),
	}

	var archive *documents.StorageProvider
	if cfg.Archive.Bucket != "" {
		client, err := storage.NewS3Client(ctx, storage.S3Config{
			Region:          cfg.Archive.Region,
			Endpoint:        cfg.Archive.Endpoint,
			AccessKeyID:     cfg.Archive.AccessKeyID,
			SecretAccessKey: cfg.Archive.SecretAccessKey,
			UsePathStyle:    cfg.Archive.UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		archive = documents.NewStorageProvider(client, cfg.Archive.Bucket, cfg.Archive.Prefix, cfg.Archive.PresignTTL)
		logger.Info("Archive enabled", zap.String("bucket", cfg.Archive.Bucket))
	}

	delivery := documents.NewDeliveryManager(documents.DeliveryConfig{
		Endpoint:   cfg.Delivery.Endpoint,
		APIToken:   cfg.Delivery.APIToken,
		Timeout:    cfg.Delivery.Timeout,
		MaxRetries: cfg.Delivery.MaxRetries,
		RetryDelay: cfg.Delivery.RetryDelay,
	}, archive, logger.Named("delivery"))

	return &Services{
		Generator: generator,
		Exporter:  documents.NewExporter(pdf.NewRenderer(), logger.Named("exporter")),
		Delivery:  delivery,
	}, nil
}

func optional(s string) nullable.String {
	if s == "" {
		return nullable.String{}
	}
	return nullable.NewString(s)
}
