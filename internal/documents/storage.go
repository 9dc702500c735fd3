package documents

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/storage"
)

// StorageProvider keeps archive copies of generated PDFs in S3.
type StorageProvider struct {
	s3         storage.S3Client
	bucket     string
	prefix     string
	presignTTL time.Duration
	newID      func() string
	now        func() time.Time
}

func NewStorageProvider(s3 storage.S3Client, bucket, prefix string, presignTTL time.Duration) *StorageProvider {
	return &StorageProvider{
		s3:         s3,
		bucket:     bucket,
		prefix:     prefix,
		presignTTL: presignTTL,
		newID:      func() string { return uuid.NewString() },
		now:        time.Now,
	}
}

// Enabled reports whether an archive bucket is configured.
func (p *StorageProvider) Enabled() bool {
	return p != nil && p.s3 != nil && p.bucket != ""
}

// GenerateS3Key returns {prefix}/{type}/{yyyy}/{mm}/{id}_{filename}.
func (p *StorageProvider) GenerateS3Key(docType forms.DocumentType, filename string) string {
	now := p.now()
	return path.Join(
		p.prefix,
		string(docType),
		now.Format("2006"),
		now.Format("01"),
		fmt.Sprintf("%s_%s", p.newID(), filename),
	)
}

// Archive uploads data under a fresh key and, when configured, returns a
// presigned download URL with it.
func (p *StorageProvider) Archive(ctx context.Context, docType forms.DocumentType, filename string, data []byte, metadata map[string]string) (*Archived, error) {
	if !p.Enabled() {
		return nil, ErrArchiveDisabled
	}

	key := p.GenerateS3Key(docType, filename)
	err := p.s3.Upload(ctx, p.bucket, key, bytes.NewReader(data), storage.UploadOptions{
		ContentType: "application/pdf",
		Metadata:    metadata,
	})
	if err != nil {
		return nil, err
	}

	archived := &Archived{Bucket: p.bucket, Key: key}
	if p.presignTTL > 0 {
		url, err := p.s3.GetPresignedURL(ctx, p.bucket, key, p.presignTTL)
		if err != nil {
			return nil, err
		}
		archived.URL = url
	}
	return archived, nil
}
