package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Cyannimazing/BCSystem-sub000/internal/app"
	"github.com/Cyannimazing/BCSystem-sub000/internal/config"
	"github.com/Cyannimazing/BCSystem-sub000/internal/documents"
	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/internal/reports/export"
)

var errMissingSubject = errors.New("input has no subject")

// formKind decodes one input type and lays it out.
type formKind struct {
	name  string
	short string
	build func(g *forms.Generator, data []byte) (*forms.Form, error)
}

var formKinds = []formKind{
	{
		name:  "prenatal",
		short: "Prenatal examination form",
		build: func(g *forms.Generator, data []byte) (*forms.Form, error) {
			var in forms.PrenatalInput
			if err := json.Unmarshal(data, &in); err != nil {
				return nil, err
			}
			if in.Patient == nil {
				return nil, fmt.Errorf("%w: patient is required", errMissingSubject)
			}
			return g.Prenatal(in), nil
		},
	},
	{
		name:  "labor",
		short: "Labor monitoring sheet",
		build: func(g *forms.Generator, data []byte) (*forms.Form, error) {
			in, err := decodeLabor(data)
			if err != nil {
				return nil, err
			}
			return g.LaborMonitoring(in), nil
		},
	},
	{
		name:  "referral",
		short: "Patient referral form",
		build: func(g *forms.Generator, data []byte) (*forms.Form, error) {
			var in forms.ReferralInput
			if err := json.Unmarshal(data, &in); err != nil {
				return nil, err
			}
			if in.Referral == nil {
				return nil, fmt.Errorf("%w: referral is required", errMissingSubject)
			}
			return g.Referral(in), nil
		},
	},
	{
		name:  "apgar",
		short: "Newborn APGAR score sheet",
		build: func(g *forms.Generator, data []byte) (*forms.Form, error) {
			var in forms.ApgarInput
			if err := json.Unmarshal(data, &in); err != nil {
				return nil, err
			}
			if in.Newborn == nil && in.Mother == nil {
				return nil, fmt.Errorf("%w: newborn or patient is required", errMissingSubject)
			}
			return g.Apgar(in), nil
		},
	},
}

func decodeLabor(data []byte) (forms.LaborInput, error) {
	var in forms.LaborInput
	if err := json.Unmarshal(data, &in); err != nil {
		return in, err
	}
	if in.Patient == nil {
		return in, fmt.Errorf("%w: patient is required", errMissingSubject)
	}
	return in, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func run(ctx context.Context, kind formKind, opts *options, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	logger, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}

	data, err := readInput(opts.input, stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	format := strings.ToLower(opts.format)
	if opts.deliver {
		format = documents.FormatPayload
	}

	if kind.name == "labor" && (format == documents.FormatXLSX || format == documents.FormatCSV) {
		in, err := decodeLabor(data)
		if err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}
		in.Facility = services.Generator.ResolveFacility(in.Facility)
		return writeSheet(services.Exporter, in, format, opts.outDir, stdout)
	}

	form, err := kind.build(services.Generator, data)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	switch format {
	case documents.FormatPDF:
		path, err := services.Exporter.SaveFile(opts.outDir, form)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, path)
		return nil
	case documents.FormatPayload:
		payload, err := services.Exporter.Payload(form)
		if err != nil {
			return err
		}
		if opts.deliver {
			if err := services.Delivery.DeliverToAPI(ctx, payload); err != nil {
				return err
			}
			if archived, err := services.Delivery.DeliverToS3(ctx, payload); err == nil {
				logger.Info("Archived", zap.String("key", archived.Key))
			} else if !errors.Is(err, documents.ErrArchiveDisabled) {
				return err
			}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}
}

func writeSheet(exporter *documents.Exporter, in forms.LaborInput, format, dir string, stdout io.Writer) error {
	sheet := export.NewMonitoringSheet(in)

	var data []byte
	switch format {
	case documents.FormatXLSX:
		xlsx, err := export.NewExcelExporter(export.DefaultExcelOptions())
		if err != nil {
			return err
		}
		defer xlsx.Close()
		if data, err = xlsx.Export(sheet); err != nil {
			return err
		}
	default:
		var buf bytes.Buffer
		if err := export.NewCSVExporter(&buf, export.DefaultCSVOptions()).Export(sheet); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	name := exporter.FilenameWithExt(&forms.Form{
		Type:        forms.TypeLaborMonitoring,
		SubjectName: in.Patient.ShortName(),
	}, "."+format)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintln(stdout, path)
	return nil
}
