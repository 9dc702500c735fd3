package documents

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/storage"
)

// MockS3Client is a mock implementation of storage.S3Client
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) Upload(ctx context.Context, bucket, key string, body io.Reader, opts storage.UploadOptions) error {
	data, _ := io.ReadAll(body)
	args := m.Called(ctx, bucket, key, data, opts)
	return args.Error(0)
}

func (m *MockS3Client) Download(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockS3Client) Delete(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

func (m *MockS3Client) GetPresignedURL(ctx context.Context, bucket, key string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, expiration)
	return args.String(0), args.Error(1)
}

// MockRenderer is a mock implementation of pdf.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(w io.Writer, doc *pdf.Document) error {
	args := m.Called(w, doc)
	return args.Error(0)
}
